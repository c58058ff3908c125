package ulid

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
	"time"
)

// Now returns the current time in milliseconds since the Unix epoch. It is
// a variable so tests can pin the clock.
var Now = func() uint64 { return uint64(time.Now().UnixMilli()) }

// Generator is one stream of monotonically increasing ULIDs. A zero-value
// Generator is ready to use; the mutex makes a single stream safe to share,
// though independent goroutines are better served by one Generator each.
type Generator struct {
	mu       sync.Mutex
	primed   bool
	lastMs   uint64
	lastRand [RandomnessSize]byte
	entropy  io.Reader
}

// NewGenerator creates a Generator drawing randomness from crypto/rand.
func NewGenerator() *Generator {
	return &Generator{entropy: rand.Reader}
}

// New generates an identifier at the current wall clock.
func (g *Generator) New() (ULID, error) {
	return g.NewAt(Now())
}

// NewAt generates an identifier for the given millisecond timestamp. When
// the timestamp equals the previous call's, the previous randomness plus one
// is used instead of a fresh draw, keeping same-millisecond outputs strictly
// increasing. On any error the stream state is unchanged.
func (g *Generator) NewAt(ms uint64) (ULID, error) {
	var id ULID
	if ms > MaxTimestamp {
		return id, fmt.Errorf("%w: %d", ErrTimestampRange, ms)
	}

	// Entropy is drawn before looking at stream state: in the common case
	// the millisecond has advanced and the draw is used as-is.
	var rnd [RandomnessSize]byte
	src := g.entropy
	if src == nil {
		src = rand.Reader
	}
	if _, err := io.ReadFull(src, rnd[:]); err != nil {
		return id, fmt.Errorf("ulid: entropy read: %w", err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.primed && g.lastMs == ms {
		rnd = g.lastRand
		if !increment(&rnd) {
			return id, ErrMonotonicOverflow
		}
	}
	g.primed = true
	g.lastMs = ms
	g.lastRand = rnd

	putTimestamp(&id, ms)
	copy(id[6:], rnd[:])
	return id, nil
}

// increment adds one to the 80-bit big-endian value in place, reporting
// false when the carry ripples past the most significant byte.
func increment(b *[RandomnessSize]byte) bool {
	for i := RandomnessSize - 1; i >= 0; i-- {
		b[i]++
		if b[i] != 0 {
			return true
		}
	}
	return false
}

var defaultGenerator = NewGenerator()

// New generates an identifier from the shared process-wide stream.
func New() (ULID, error) {
	return defaultGenerator.New()
}

// MustNew is New, panicking when entropy cannot be read or the shared
// stream overflows within a millisecond.
func MustNew() ULID {
	id, err := New()
	if err != nil {
		panic(err)
	}
	return id
}
