// Package seedseq provides concrete implementations of randen.SeedSequence
// (spec §6.2): the engine's single external collaborator, responsible for
// turning a small amount of caller-supplied entropy into the 32-bit word
// buffer a Seed call absorbs.
package seedseq

import "crypto/rand"

// Ints deterministically expands a short list of seed integers into
// however many words a Generator asks for, via a splitmix64-style mixer.
// Equal-length equal-valued Ints produce identical output, which is what
// makes the reseed-independence and discard-equivalence scenarios in spec
// §8 reproducible: the same {1,2,3,4,5,6,7} always yields the same stream.
//
// A short seed (even a single value) is safe to use here: the mixer, not
// the seed's bit length, is what spreads the entropy across the requested
// buffer.
type Ints []uint32

// Generate fills buf by running a splitmix64 counter seeded from s across
// the buffer, folding in each seed value in turn so every word depends on
// the whole seed rather than just s[i%len(s)].
func (s Ints) Generate(buf []uint32) {
	if len(s) == 0 {
		for i := range buf {
			buf[i] = 0
		}
		return
	}

	var acc uint64
	for _, v := range s {
		acc = splitmix64(acc + uint64(v))
	}

	for i := range buf {
		acc = splitmix64(acc)
		buf[i] = uint32(acc >> 32)
	}
}

// splitmix64 is Vigna's fixed-increment mixer, used here purely as a
// deterministic entropy spreader, not for any cryptographic property.
func splitmix64(x uint64) uint64 {
	z := x + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// OSEntropy draws its buffer from crypto/rand, giving each Seed call
// fresh, non-reproducible entropy. Use this for production seeding;
// use Ints only where a reproducible stream is wanted, such as tests
// or the discard-equivalence scenarios.
type OSEntropy struct{}

// Generate fills buf with bytes read from crypto/rand.Reader, panicking if
// the OS entropy source fails: per spec §6.3, a seed sequence failure is a
// programmer/environment error, not a value the engine can propagate.
func (OSEntropy) Generate(buf []uint32) {
	raw := make([]byte, len(buf)*4)
	if _, err := rand.Read(raw); err != nil {
		panic("seedseq: OSEntropy: crypto/rand failed: " + err.Error())
	}
	for i := range buf {
		buf[i] = uint32(raw[i*4]) | uint32(raw[i*4+1])<<8 | uint32(raw[i*4+2])<<16 | uint32(raw[i*4+3])<<24
	}
}
