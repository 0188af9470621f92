package randen

import "math/rand/v2"

// Randen64 is Randen instantiated for 64-bit output words, the instantiation
// named throughout spec §6.4 and §8. It satisfies math/rand/v2's Source
// interface, so it drops directly into rand.New.
type Randen64 struct {
	Generator[uint64]
}

// Uint64 returns the next 64-bit output word.
func (r *Randen64) Uint64() uint64 {
	return r.NextWord()
}

var _ rand.Source = (*Randen64)(nil)

// Randen32 is Randen instantiated for 32-bit output words.
type Randen32 struct {
	Generator[uint32]
}

// Uint32 returns the next 32-bit output word.
func (r *Randen32) Uint32() uint32 {
	return r.NextWord()
}
