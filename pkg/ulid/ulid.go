package ulid

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

const (
	// Size is the length of the binary representation in bytes.
	Size = 16
	// RandomnessSize is the length of the randomness payload in bytes.
	RandomnessSize = 10
	// EncodedSize is the length of the canonical text representation.
	EncodedSize = 26
)

// Timestamp bounds: milliseconds since the Unix epoch, 48 bits.
const (
	MinTimestamp uint64 = 0
	MaxTimestamp uint64 = 1<<48 - 1
)

var (
	// ErrTimestampRange reports a timestamp outside [MinTimestamp, MaxTimestamp].
	ErrTimestampRange = errors.New("ulid: timestamp outside 48-bit range")
	// ErrRandomnessSize reports a randomness payload that is not exactly 10 bytes.
	ErrRandomnessSize = errors.New("ulid: randomness must be exactly 10 bytes")
	// ErrDataSize reports a binary form that is not exactly 16 bytes.
	ErrDataSize = errors.New("ulid: binary form must be exactly 16 bytes")
	// ErrBufferSize reports a destination buffer too small to hold the binary form.
	ErrBufferSize = errors.New("ulid: destination buffer too small")
	// ErrInvalidFormat reports a string that is not a canonical ULID.
	ErrInvalidFormat = errors.New("ulid: invalid canonical form")
	// ErrMonotonicOverflow reports an 80-bit randomness increment that would
	// wrap within a single millisecond.
	ErrMonotonicOverflow = errors.New("ulid: randomness overflow within the same millisecond")
)

// ULID is a 128-bit, lexicographically sortable identifier encoded as 16
// bytes big-endian: [6 bytes ms_timestamp][10 bytes randomness].
type ULID [Size]byte

// Zero is the all-zero identifier: timestamp 0, randomness 0. It is a valid
// value (the null sentinel), not an error state.
var Zero ULID

// FromParts builds an identifier from a millisecond timestamp and exactly
// RandomnessSize bytes of randomness.
func FromParts(ms uint64, randomness []byte) (ULID, error) {
	var id ULID
	if ms > MaxTimestamp {
		return id, fmt.Errorf("%w: %d", ErrTimestampRange, ms)
	}
	if len(randomness) != RandomnessSize {
		return id, fmt.Errorf("%w: got %d", ErrRandomnessSize, len(randomness))
	}
	putTimestamp(&id, ms)
	copy(id[6:], randomness)
	return id, nil
}

// FromBytes builds an identifier from its 16-byte binary form. Any 16-byte
// sequence is structurally valid; no further validation is performed.
func FromBytes(b []byte) (ULID, error) {
	var id ULID
	if len(b) != Size {
		return id, fmt.Errorf("%w: got %d", ErrDataSize, len(b))
	}
	copy(id[:], b)
	return id, nil
}

func putTimestamp(id *ULID, ms uint64) {
	binary.BigEndian.PutUint16(id[0:2], uint16(ms>>32))
	binary.BigEndian.PutUint32(id[2:6], uint32(ms))
}

// Timestamp returns the milliseconds since the Unix epoch stored in bytes
// 0-5, zero-extended to 64 bits.
func (id ULID) Timestamp() uint64 {
	return uint64(binary.BigEndian.Uint16(id[0:2]))<<32 |
		uint64(binary.BigEndian.Uint32(id[2:6]))
}

// Time returns the timestamp as a UTC time.Time.
func (id ULID) Time() time.Time {
	return time.UnixMilli(int64(id.Timestamp())).UTC()
}

// Randomness returns a copy of the 10-byte randomness payload.
func (id ULID) Randomness() []byte {
	b := make([]byte, RandomnessSize)
	copy(b, id[6:])
	return b
}

// Bytes returns the raw 16-byte representation.
func (id ULID) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, id[:])
	return b
}

// Write copies the binary form into dst, which must hold at least Size bytes.
func (id ULID) Write(dst []byte) error {
	if len(dst) < Size {
		return fmt.Errorf("%w: need %d, have %d", ErrBufferSize, Size, len(dst))
	}
	copy(dst, id[:])
	return nil
}

// Compare returns -1, 0 or 1 based on byte-wise comparison. Byte order is
// equivalent to ordering by the (timestamp, randomness) tuple.
func (id ULID) Compare(other ULID) int {
	return bytes.Compare(id[:], other[:])
}

// IsZero reports whether the identifier is the null sentinel.
func (id ULID) IsZero() bool {
	return id == Zero
}

// Hash returns a 64-bit digest of the binary form. Equal identifiers hash
// equal; ULID values are also directly comparable and usable as map keys.
func (id ULID) Hash() uint64 {
	return xxhash.Sum64(id[:])
}

// MarshalBinary returns the 16-byte binary form.
func (id ULID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// UnmarshalBinary sets the identifier from its 16-byte binary form.
func (id *ULID) UnmarshalBinary(b []byte) error {
	u, err := FromBytes(b)
	if err != nil {
		return err
	}
	*id = u
	return nil
}
