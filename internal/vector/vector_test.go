package vector

import (
	"bytes"
	"testing"
)

func TestLoadStore(t *testing.T) {
	block := make([]byte, 64)
	for i := range block {
		block[i] = byte(i)
	}

	for lane := range 4 {
		v := Load(block, lane)
		out := make([]byte, 64)
		Store(v, out, lane)
		if got, want := out[lane*16:lane*16+16], block[lane*16:lane*16+16]; !bytes.Equal(got, want) {
			t.Errorf("lane %d round-trip = %x, want %x", lane, got, want)
		}
	}
}

func TestXor(t *testing.T) {
	a := make([]byte, 16)
	b := make([]byte, 16)
	for i := range a {
		a[i] = byte(i)
		b[i] = byte(0xff - i)
	}

	va, vb := Load(a, 0), Load(b, 0)
	got := make([]byte, 16)
	Store(va.Xor(vb), got, 0)

	for i := range got {
		if want := a[i] ^ b[i]; got[i] != want {
			t.Errorf("Xor byte %d = %#x, want %#x", i, got[i], want)
		}
	}

	// XOR is its own inverse.
	back := make([]byte, 16)
	Store(va.Xor(vb).Xor(vb), back, 0)
	if !bytes.Equal(back, a) {
		t.Errorf("Xor(Xor(a,b),b) = %x, want %x", back, a)
	}
}

// TestAES pins the vector primitive's AES operation to the canonical test
// vector from spec §4.1: AES(message, key) with
//
//	message = RANDEN_LE(0x8899AABBCCDDEEFF, 0x0123456789ABCDEF)
//	key     = RANDEN_LE(0x0022446688AACCEE, 0x1133557799BBDDFF)
//
// expects 0x28E4EE1884504333 ‖ 0x16AB0E57DFC442ED. RANDEN_LE(hi, lo) on a
// little-endian host lays out the two 64-bit halves as {lo, hi}, which is
// exactly what Load/Store already assume (see bytes' doc comment).
func TestAES(t *testing.T) {
	message := make([]byte, 16)
	copy(message, []byte{
		0xEF, 0xCD, 0xAB, 0x89, 0x67, 0x45, 0x23, 0x01, // lo = 0x0123456789ABCDEF, LE
		0xFF, 0xEE, 0xDD, 0xCC, 0xBB, 0xAA, 0x99, 0x88, // hi = 0x8899AABBCCDDEEFF, LE
	})
	key := make([]byte, 16)
	copy(key, []byte{
		0xFF, 0xDD, 0xBB, 0x99, 0x77, 0x55, 0x33, 0x11, // lo = 0x1133557799BBDDFF, LE
		0xEE, 0xCC, 0xAA, 0x88, 0x66, 0x44, 0x22, 0x00, // hi = 0x0022446688AACCEE, LE
	})
	want := []byte{
		0xED, 0x42, 0xC4, 0xDF, 0x57, 0x0E, 0xAB, 0x16, // lo = 0x16AB0E57DFC442ED, LE
		0x33, 0x43, 0x50, 0x84, 0x18, 0xEE, 0xE4, 0x28, // hi = 0x28E4EE1884504333, LE
	}

	v := AES(Load(message, 0), Load(key, 0))
	got := make([]byte, 16)
	Store(v, got, 0)

	if !bytes.Equal(got, want) {
		t.Errorf("AES(message, key) = %x, want %x", got, want)
	}
}
