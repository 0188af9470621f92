// Package randen implements Randen, a deterministic, backtracking-resistant
// pseudorandom generator built on a sponge construction over an AES-round
// Simpira-like permutation.
//
// Randen targets cryptographic-grade output indistinguishability at PRG
// throughput: an attacker who compromises a Generator's state at time t
// cannot recover words it emitted at any earlier time, yet generation costs
// little more than 128 single AES rounds (16 rounds of 8 lane pairs) per
// 240-byte buffer refill — competitive with non-cryptographic generators
// like PCG or Mersenne Twister.
//
// Randen is not an entropy source (it does not harvest randomness from the
// environment), not an authenticated encryption primitive, and makes no
// claim to cryptographic security beyond the heuristic arguments inherited
// from Simpira-v2 and Reverie, the constructions it's based on. A Generator
// is owned by a single goroutine; nothing in this package is safe for
// concurrent use without external synchronization.
//
// [Reverie]: https://eprint.iacr.org/2016/886
// [Simpira-v2]: https://eprint.iacr.org/2016/122.pdf
package randen
