package randen_test

import (
	"testing"

	"github.com/dgryski/go-randen"
	"github.com/dgryski/go-randen/internal/altengines"
	"github.com/dgryski/go-randen/seedseq"
)

func BenchmarkRanden64(b *testing.B) {
	var r randen.Randen64
	r.Seed(seedseq.Ints{1, 2, 3, 4, 5, 6, 7})

	for _, length := range lengths {
		b.Run(length.name, func(b *testing.B) {
			n := length.n / 8
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))
			for b.Loop() {
				for range n {
					_ = r.Uint64()
				}
			}
		})
	}
}

func BenchmarkRanden32(b *testing.B) {
	var r randen.Randen32
	r.Seed(seedseq.Ints{1, 2, 3, 4, 5, 6, 7})

	for _, length := range lengths {
		b.Run(length.name, func(b *testing.B) {
			n := length.n / 4
			b.ReportAllocs()
			b.SetBytes(int64(n * 4))
			for b.Loop() {
				for range n {
					_ = r.Uint32()
				}
			}
		})
	}
}

func BenchmarkChaCha8(b *testing.B) {
	var seed [32]byte
	seed[0] = 1
	src := altengines.NewChaCha8(seed)

	for _, length := range lengths {
		b.Run(length.name, func(b *testing.B) {
			n := length.n / 8
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))
			for b.Loop() {
				for range n {
					_ = src.Uint64()
				}
			}
		})
	}
}

func BenchmarkOSCSPRNG(b *testing.B) {
	src := altengines.NewOSCSPRNG(4096)

	for _, length := range lengths {
		b.Run(length.name, func(b *testing.B) {
			n := length.n / 8
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))
			for b.Loop() {
				for range n {
					_ = src.Uint64()
				}
			}
		})
	}
}

var lengths = []struct {
	name string
	n    int
}{
	{"16B", 16},
	{"64B", 64},
	{"256B", 256},
	{"1KiB", 1024},
	{"16KiB", 16 * 1024},
	{"1MiB", 1024 * 1024},
}
