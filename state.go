package randen

import (
	"github.com/dgryski/go-randen/internal/mem"
	"github.com/dgryski/go-randen/internal/permutation"
)

const (
	// StateBytes is the size of the sponge state: 2048 bits.
	StateBytes = permutation.Width

	// CapacityBytes is the size of the inner (secret, never-revealed)
	// region of the state: 128 bits.
	CapacityBytes = 16

	// RateBytes is the size of the outer (rate) region of the state that
	// Absorb XORs into and Generate exposes for output.
	RateBytes = StateBytes - CapacityBytes
)

// state is the 2048-bit sponge state. The first CapacityBytes bytes are the
// inner region: Absorb never writes there, and no method reads it back out
// directly. The rest is the outer region.
type state struct {
	block [StateBytes]byte
}

// absorb XORs seed, which must be exactly RateBytes long, into the outer
// region, leaving the inner region untouched. It does not run the
// permutation.
func (s *state) absorb(seed []byte) {
	if len(seed) != RateBytes {
		panic("randen: seed buffer must be exactly RateBytes long")
	}
	mem.XOR(s.block[CapacityBytes:], s.block[CapacityBytes:], seed)
}

// generate advances the sponge by one squeeze: applying the permutation to
// the full state, then XORing the pre-permutation inner region back into
// the post-permutation inner region. That feedback step is what gives
// backtracking resistance (spec §4.4 step 3, §1(b)): an attacker who
// compromises the full post-generate state — inner region included — is
// trying to invert a known bijection P, but the value it needs to invert
// from is state_post XOR inner_pre, not state_post alone, and inner_pre is
// exactly the secret such an attacker lacks. Without this step P is just a
// public, fully invertible permutation and the prior outer region (prior
// outputs) falls straight out of P⁻¹.
func (s *state) generate() {
	var innerPre [CapacityBytes]byte
	copy(innerPre[:], s.block[:CapacityBytes])

	permutation.Permute(&s.block)

	mem.XOR(s.block[:CapacityBytes], s.block[:CapacityBytes], innerPre[:])
}
