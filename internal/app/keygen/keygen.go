// Package keygen produces keys for short links.
package keygen

import (
	"math/rand"
	"sync"
	"time"
)

// Generator is the interface that wraps the Generate method.
//
// Generate returns a new key. Implementations must be safe for concurrent use
// and must not block on external I/O.
type Generator interface {
	Generate() uint32
}

// Func adapts an ordinary function to the Generator interface.
type Func func() uint32

// Generate calls f().
func (f Func) Generate() uint32 {
	return f()
}

// Random draws keys uniformly from the whole uint32 range.
type Random struct {
	mu  sync.Mutex
	src *rand.Rand
}

// check that Random implements Generator
var _ Generator = (*Random)(nil)

// NewRandom returns a Random seeded from the current time.
func NewRandom() *Random {
	return NewRandomSeed(time.Now().UnixNano())
}

// NewRandomSeed returns a Random with a fixed seed.
func NewRandomSeed(seed int64) *Random {
	return &Random{src: rand.New(rand.NewSource(seed))}
}

func (g *Random) Generate() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.src.Uint32()
}

// Sequence replays a fixed list of keys, wrapping around at the end.
type Sequence struct {
	mu   sync.Mutex
	keys []uint32
	next int
}

// check that Sequence implements Generator
var _ Generator = (*Sequence)(nil)

// NewSequence returns a Sequence over keys. It panics if keys is empty.
func NewSequence(keys ...uint32) *Sequence {
	if len(keys) == 0 {
		panic("keygen: empty sequence")
	}
	return &Sequence{keys: append([]uint32(nil), keys...)}
}

func (g *Sequence) Generate() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	key := g.keys[g.next]
	g.next = (g.next + 1) % len(g.keys)
	return key
}
