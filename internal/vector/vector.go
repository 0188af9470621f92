// Package vector implements Randen's 128-bit vector primitive: aligned
// load/store of a lane, XOR, and a single AES round. It is the narrow
// contract the permutation layer is built on (spec §4.1) — callers never
// reach past Load/Store/Xor/AES into how a lane is represented in memory.
package vector

import (
	"encoding/binary"

	"github.com/dgryski/go-randen/internal/aesround"
)

// V is an opaque 128-bit lane. The zero value is the all-zero lane.
type V struct {
	lo, hi uint64
}

// Load reads lane i (the 16 bytes at offset i*16) of block.
func Load(block []byte, i int) V {
	off := i * 16
	return V{
		lo: binary.LittleEndian.Uint64(block[off:]),
		hi: binary.LittleEndian.Uint64(block[off+8:]),
	}
}

// Store writes v into lane i (the 16 bytes at offset i*16) of block.
func Store(v V, block []byte, i int) {
	off := i * 16
	binary.LittleEndian.PutUint64(block[off:], v.lo)
	binary.LittleEndian.PutUint64(block[off+8:], v.hi)
}

// Xor returns the bitwise XOR of v and w.
func (v V) Xor(w V) V {
	return V{lo: v.lo ^ w.lo, hi: v.hi ^ w.hi}
}

// AES computes one AES round with a as state and k as round key:
// SubBytes, ShiftRows, MixColumns, AddRoundKey.
func AES(a, k V) V {
	return fromBytes(aesround.Round(a.bytes(), k.bytes()))
}

// bytes renders v as 16 bytes, little-endian across the full 128 bits: byte
// i holds bits [8i, 8i+8) of the 128-bit integer (hi<<64 | lo). This is the
// RANDEN_LE convention on a little-endian host, and since Go always encodes
// explicitly rather than reinterpreting host memory, it holds on every
// target regardless of actual CPU endianness.
func (v V) bytes() [16]byte {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[0:8], v.lo)
	binary.LittleEndian.PutUint64(b[8:16], v.hi)
	return b
}

func fromBytes(b [16]byte) V {
	return V{
		lo: binary.LittleEndian.Uint64(b[0:8]),
		hi: binary.LittleEndian.Uint64(b[8:16]),
	}
}

// FromBytes builds a lane directly from 16 raw bytes, little-endian across
// the full 128 bits. Used by the permutation layer to materialize its fixed
// round-key table.
func FromBytes(b [16]byte) V {
	return fromBytes(b)
}
