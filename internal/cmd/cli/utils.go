package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ultimicro/ulid/internal/config"
	"github.com/ultimicro/ulid/pkg/ulid"
)

// parseIdentifier accepts the 26-character canonical form or the
// 32-hex-digit binary form.
func parseIdentifier(s string) (ulid.ULID, error) {
	s = strings.TrimSpace(s)
	switch len(s) {
	case ulid.EncodedSize:
		return ulid.Parse(s)
	case ulid.Size * 2:
		b, err := hex.DecodeString(s)
		if err != nil {
			return ulid.Zero, fmt.Errorf("invalid hex identifier: %w", err)
		}
		return ulid.FromBytes(b)
	default:
		return ulid.Zero, fmt.Errorf("identifier must be 26 canonical or 32 hex characters, got %d", len(s))
	}
}

// parseAt interprets a --at value as unix milliseconds or RFC3339.
func parseAt(at string) (uint64, error) {
	if ms, err := strconv.ParseUint(at, 10, 64); err == nil {
		return ms, nil
	}
	if t, err := time.Parse(time.RFC3339, at); err == nil {
		return uint64(t.UnixMilli()), nil
	}
	return 0, fmt.Errorf("invalid --at; expected ms or RFC3339")
}

// identifierView is the JSON shape used by inspect and --format json.
type identifierView struct {
	Canonical   string `json:"canonical"`
	Hex         string `json:"hex"`
	TimestampMs uint64 `json:"timestampMs"`
	Time        string `json:"time"`
	Randomness  string `json:"randomness"`
}

func viewOf(id ulid.ULID) identifierView {
	return identifierView{
		Canonical:   id.String(),
		Hex:         hex.EncodeToString(id.Bytes()),
		TimestampMs: id.Timestamp(),
		Time:        id.Time().Format(time.RFC3339Nano),
		Randomness:  hex.EncodeToString(id.Randomness()),
	}
}

func writeIdentifier(w io.Writer, id ulid.ULID, format string) error {
	switch format {
	case config.FormatCanonical:
		_, err := fmt.Fprintln(w, id.String())
		return err
	case config.FormatHex:
		_, err := fmt.Fprintln(w, hex.EncodeToString(id.Bytes()))
		return err
	case config.FormatJSON:
		return json.NewEncoder(w).Encode(viewOf(id))
	default:
		return fmt.Errorf("invalid --format %q; use canonical|hex|json", format)
	}
}
