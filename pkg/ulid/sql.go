package ulid

import (
	"database/sql/driver"
	"encoding/hex"
	"fmt"
	"strings"
)

// Value implements driver.Valuer. The identifier travels as its 16-byte
// binary form, suitable for a fixed-width binary column.
func (id ULID) Value() (driver.Value, error) {
	return id.Bytes(), nil
}

// Scan implements sql.Scanner. It accepts the 16-byte binary column value
// as []byte or string (some drivers hand BLOB columns back as string) and,
// for convenience, the 26-character canonical text form.
func (id *ULID) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		if len(v) == EncodedSize {
			return id.UnmarshalText(v)
		}
		return id.UnmarshalBinary(v)
	case string:
		if len(v) == Size {
			return id.UnmarshalBinary([]byte(v))
		}
		u, err := Parse(v)
		if err != nil {
			return err
		}
		*id = u
		return nil
	default:
		return fmt.Errorf("ulid: cannot scan %T into ULID", src)
	}
}

// SQLLiteral renders the identifier as a hex binary literal (X'…' with 32
// hex digits) for embedding in textual SQL.
func (id ULID) SQLLiteral() string {
	return "X'" + strings.ToUpper(hex.EncodeToString(id[:])) + "'"
}
