// Package ulid implements 128-bit Universally Unique Lexicographically
// Sortable Identifiers.
//
// # Format
//
// A ULID is 16 bytes big-endian: [6 bytes ms_timestamp][10 bytes randomness].
// Byte-wise comparison of the binary form is equivalent to comparing the
// (timestamp, randomness) pair, so IDs sort chronologically. The canonical
// text form is 26 characters of Crockford base32 and sorts the same way.
//
// # Monotonicity
//
// A Generator is one stream of IDs. Within a single millisecond it does not
// draw independent randomness for every call; instead it increments the
// previous 80-bit randomness by one, so same-millisecond IDs from one stream
// are strictly increasing. When the increment would wrap past 80 bits the
// call fails with ErrMonotonicOverflow and the stream state is left intact.
//
// Usage
//
//	g := ulid.NewGenerator()
//	id, err := g.New()
//	b := id.Bytes()   // 16-byte representation
//	s := id.String()  // 26-character canonical form
package ulid
