// Package altengines provides the reference generators the root
// benchmarks compare Randen against (spec §1's "alternative reference
// engines" framing). None of these are used by the core engine; they exist
// solely so the benchmark suite can put Randen's throughput in context
// against a well-known stream cipher-based CSPRNG and a plain OS-entropy
// reader.
package altengines

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand/v2"
)

// Source is the minimal contract the benchmark suite drives every
// alternative engine through.
type Source interface {
	Uint64() uint64
}

// ChaCha8 wraps math/rand/v2's ChaCha8, the standard library's own
// cryptographically secure, backtracking-resistant stream generator. It is
// Randen's closest well-known relative: both are wide-block, ARX/AES-round
// permutations feeding a squeeze-style output buffer.
type ChaCha8 struct {
	src *mathrand.ChaCha8
}

// NewChaCha8 seeds a ChaCha8 engine from a fixed 32-byte key, matching the
// deterministic-seed style the rest of this repo's benchmarks and tests
// use so that runs are comparable across invocations.
func NewChaCha8(seed [32]byte) *ChaCha8 {
	return &ChaCha8{src: mathrand.NewChaCha8(seed)}
}

// Uint64 returns the next 64-bit output word.
func (c *ChaCha8) Uint64() uint64 {
	return c.src.Uint64()
}

// OSCSPRNG draws directly from crypto/rand.Reader, buffering reads to
// amortize the syscall cost. It represents the "just ask the OS" baseline:
// unlike Randen or ChaCha8, its per-word cost is dominated by occasional
// batched syscalls rather than arithmetic.
type OSCSPRNG struct {
	buf []byte
	pos int
}

// NewOSCSPRNG returns an OSCSPRNG that refills bufBytes at a time.
func NewOSCSPRNG(bufBytes int) *OSCSPRNG {
	if bufBytes < 8 {
		bufBytes = 8
	}
	return &OSCSPRNG{buf: make([]byte, bufBytes), pos: bufBytes}
}

// Uint64 returns the next 64-bit output word, refilling the buffer from
// crypto/rand.Reader when exhausted.
func (o *OSCSPRNG) Uint64() uint64 {
	if o.pos+8 > len(o.buf) {
		if _, err := rand.Read(o.buf); err != nil {
			panic("altengines: OSCSPRNG: crypto/rand failed: " + err.Error())
		}
		o.pos = 0
	}
	v := binary.LittleEndian.Uint64(o.buf[o.pos:])
	o.pos += 8
	return v
}
