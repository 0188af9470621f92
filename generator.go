package randen

import (
	"encoding/binary"
	"unsafe"
)

// byteOrder is the word-level counterpart to the RANDEN_LE convention used
// throughout internal/vector: words are read and written little-endian,
// independent of host CPU endianness.
var byteOrder = binary.LittleEndian

// word is the set of output types a Generator can emit (spec §4.5, §6.1).
type word interface {
	~uint32 | ~uint64
}

// Generator is Randen's engine: a sponge state plus a read cursor into its
// outer region, parameterized by output word width T. Use Randen32 or
// Randen64 rather than this type directly; Go disallows attaching Uint32 /
// Uint64 convenience methods to one generic instantiation among several, so
// those live on the concrete wrapper types in engines.go.
//
// The zero value is ready to use: an unset next reads as 0, which NextWord
// treats the same as "past the end of the buffer" (see its bounds check),
// so the first call Generates from the zeroed state exactly as the
// reference engine's explicit next_ = kStateT constructor does, without
// requiring next's zero value to itself equal stateWords.
type Generator[T word] struct {
	state state
	next  uint64
}

// stateWords is state_T: the state block's size in units of T.
func stateWords[T word]() uint64 {
	var z T
	return uint64(StateBytes) / uint64(unsafe.Sizeof(z))
}

// capacityWords is capacity_T: the inner region's size in units of T.
func capacityWords[T word]() uint64 {
	var z T
	return uint64(CapacityBytes) / uint64(unsafe.Sizeof(z))
}

// readWord reads the T at word index i of the state block.
func readWord[T word](s *state, i uint64) T {
	off := i * uint64(unsafe.Sizeof(T(0)))
	switch any(T(0)).(type) {
	case uint32:
		return T(byteOrder.Uint32(s.block[off:]))
	case uint64:
		return T(byteOrder.Uint64(s.block[off:]))
	default:
		panic("randen: unsupported word type")
	}
}

// normalize treats an out-of-range next (only reachable via the zero
// value, whose next is 0 and therefore inside the inner region) as an
// empty buffer, matching the reference engine's explicit next_ = kStateT
// constructor without requiring the zero value of uint64 to equal it.
func (g *Generator[T]) normalize() {
	if g.next < capacityWords[T]() {
		g.next = stateWords[T]()
	}
}

// NextWord returns the next output word, refilling the state with a fresh
// Generate call whenever the outer region is exhausted (spec §4.5).
func (g *Generator[T]) NextWord() T {
	g.normalize()
	if g.next >= stateWords[T]() {
		g.state.generate()
		g.next = capacityWords[T]()
	}
	v := readWord[T](&g.state, g.next)
	g.next++
	return v
}

// Seed consumes RateBytes/4 32-bit words from seq, absorbs them into the
// outer region, and runs one Generate so the next NextWord call returns a
// freshly squeezed word (spec §4.5, §6.2).
func (g *Generator[T]) Seed(seq SeedSequence) {
	var words [RateBytes / 4]uint32
	seq.Generate(words[:])

	var buf [RateBytes]byte
	for i, w := range words {
		byteOrder.PutUint32(buf[i*4:], w)
	}

	g.state.absorb(buf[:])
	g.state.generate()
	g.next = capacityWords[T]()
}

// Discard skips the next n outputs without emitting them, with the same
// observable effect as calling NextWord n times and discarding the results
// (spec §4.5).
func (g *Generator[T]) Discard(n uint64) {
	g.normalize()
	stateT, capacityT := stateWords[T](), capacityWords[T]()
	rateT := stateT - capacityT

	remaining := stateT - g.next
	if n <= remaining {
		g.next += n
		return
	}
	n -= remaining

	for n > rateT {
		g.state.generate()
		g.next = capacityT
		n -= rateT
	}

	if n > 0 {
		g.state.generate()
		g.next = capacityT + n
	} else {
		g.next = stateT
	}
}

// SeedSequence is the engine's one external collaborator (spec §6.2): any
// source able to fill a caller-provided buffer with entropy. The engine
// requests exactly RateBytes/4 = 60 words per Seed call, and never inspects,
// retains, or exposes the sequence beyond that one call.
type SeedSequence interface {
	Generate(buf []uint32)
}
