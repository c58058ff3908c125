package ulid

import (
	"fmt"
)

// Alphabet is the Crockford base32 alphabet used by the canonical form.
// I, L, O and U are excluded to avoid visual ambiguity; the index of a
// character is its 5-bit digit value.
const Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

const invalidDigit = 0xFF

// dec maps an ASCII byte to its 5-bit digit value, case-insensitively.
// I/L decode as 1 and O decodes as 0 (visual-confusable aliasing carried
// for compatibility with encoders that relied on it); U stays invalid.
var dec = func() (t [256]byte) {
	for i := range t {
		t[i] = invalidDigit
	}
	for v, c := range []byte(Alphabet) {
		t[c] = byte(v)
		if c >= 'A' {
			t[c+'a'-'A'] = byte(v)
		}
	}
	for _, c := range []byte("Oo") {
		t[c] = 0
	}
	for _, c := range []byte("IiLl") {
		t[c] = 1
	}
	return
}()

// AppendFormat appends the 26-character canonical form to dst. The leading
// character covers only the top 3 bits of the timestamp; every other
// character is a full 5-bit group spanning at most two adjacent bytes.
func (id ULID) AppendFormat(dst []byte) []byte {
	at := len(dst)
	dst = append(dst, make([]byte, EncodedSize)...)
	b := dst[at:]

	// timestamp, 10 characters
	b[0] = Alphabet[(id[0]&224)>>5]
	b[1] = Alphabet[id[0]&31]
	b[2] = Alphabet[(id[1]&248)>>3]
	b[3] = Alphabet[(id[1]&7)<<2|(id[2]&192)>>6]
	b[4] = Alphabet[(id[2]&62)>>1]
	b[5] = Alphabet[(id[2]&1)<<4|(id[3]&240)>>4]
	b[6] = Alphabet[(id[3]&15)<<1|(id[4]&128)>>7]
	b[7] = Alphabet[(id[4]&124)>>2]
	b[8] = Alphabet[(id[4]&3)<<3|(id[5]&224)>>5]
	b[9] = Alphabet[id[5]&31]

	// randomness, 16 characters
	b[10] = Alphabet[(id[6]&248)>>3]
	b[11] = Alphabet[(id[6]&7)<<2|(id[7]&192)>>6]
	b[12] = Alphabet[(id[7]&62)>>1]
	b[13] = Alphabet[(id[7]&1)<<4|(id[8]&240)>>4]
	b[14] = Alphabet[(id[8]&15)<<1|(id[9]&128)>>7]
	b[15] = Alphabet[(id[9]&124)>>2]
	b[16] = Alphabet[(id[9]&3)<<3|(id[10]&224)>>5]
	b[17] = Alphabet[id[10]&31]
	b[18] = Alphabet[(id[11]&248)>>3]
	b[19] = Alphabet[(id[11]&7)<<2|(id[12]&192)>>6]
	b[20] = Alphabet[(id[12]&62)>>1]
	b[21] = Alphabet[(id[12]&1)<<4|(id[13]&240)>>4]
	b[22] = Alphabet[(id[13]&15)<<1|(id[14]&128)>>7]
	b[23] = Alphabet[(id[14]&124)>>2]
	b[24] = Alphabet[(id[14]&3)<<3|(id[15]&224)>>5]
	b[25] = Alphabet[id[15]&31]

	return dst
}

// String returns the 26-character canonical form.
func (id ULID) String() string {
	return string(id.AppendFormat(make([]byte, 0, EncodedSize)))
}

// Parse decodes the 26-character canonical form. Input is case-insensitive;
// I and L are accepted as 1 and O as 0. It fails with ErrInvalidFormat when
// the length is wrong, a character falls outside the alphabet, or the
// leading digit exceeds 7 (which would overflow 128 bits).
func Parse(s string) (ULID, error) {
	var id ULID
	if len(s) != EncodedSize {
		return id, fmt.Errorf("%w: length %d, want %d", ErrInvalidFormat, len(s), EncodedSize)
	}
	for i := 0; i < EncodedSize; i++ {
		if dec[s[i]] == invalidDigit {
			return id, fmt.Errorf("%w: character %q at index %d", ErrInvalidFormat, s[i], i)
		}
	}
	if dec[s[0]] > 7 {
		return id, fmt.Errorf("%w: leading character %q overflows 128 bits", ErrInvalidFormat, s[0])
	}

	// timestamp, bytes 0-5
	id[0] = dec[s[0]]<<5 | dec[s[1]]
	id[1] = dec[s[2]]<<3 | dec[s[3]]>>2
	id[2] = dec[s[3]]<<6 | dec[s[4]]<<1 | dec[s[5]]>>4
	id[3] = dec[s[5]]<<4 | dec[s[6]]>>1
	id[4] = dec[s[6]]<<7 | dec[s[7]]<<2 | dec[s[8]]>>3
	id[5] = dec[s[8]]<<5 | dec[s[9]]

	// randomness, bytes 6-15
	id[6] = dec[s[10]]<<3 | dec[s[11]]>>2
	id[7] = dec[s[11]]<<6 | dec[s[12]]<<1 | dec[s[13]]>>4
	id[8] = dec[s[13]]<<4 | dec[s[14]]>>1
	id[9] = dec[s[14]]<<7 | dec[s[15]]<<2 | dec[s[16]]>>3
	id[10] = dec[s[16]]<<5 | dec[s[17]]
	id[11] = dec[s[18]]<<3 | dec[s[19]]>>2
	id[12] = dec[s[19]]<<6 | dec[s[20]]<<1 | dec[s[21]]>>4
	id[13] = dec[s[21]]<<4 | dec[s[22]]>>1
	id[14] = dec[s[22]]<<7 | dec[s[23]]<<2 | dec[s[24]]>>3
	id[15] = dec[s[24]]<<5 | dec[s[25]]

	return id, nil
}

// MustParse is Parse, panicking on malformed input. Intended for constants
// and tests.
func MustParse(s string) ULID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// MarshalText returns the canonical form, satisfying encoding.TextMarshaler
// (and, through it, encoding/json and friends).
func (id ULID) MarshalText() ([]byte, error) {
	return id.AppendFormat(nil), nil
}

// UnmarshalText parses the canonical form, satisfying encoding.TextUnmarshaler.
func (id *ULID) UnmarshalText(b []byte) error {
	u, err := Parse(string(b))
	if err != nil {
		return err
	}
	*id = u
	return nil
}
