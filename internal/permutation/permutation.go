// Package permutation implements Randen's fixed bijection P on the
// 2048-bit sponge state (spec §4.2): sixteen 128-bit lanes, mixed pairwise
// through AES rounds over a fixed number of rounds, with round keys drawn
// consecutively from a fixed table.
package permutation

import (
	"crypto/sha3"

	"github.com/dgryski/go-randen/internal/vector"
)

const (
	// Width is the permutation's width in bytes (2048 bits).
	Width = 256

	lanes         = Width / 16
	rounds        = 16
	pairsPerRound = lanes / 2
	numRoundKeys  = rounds * pairsPerRound
)

// Permute applies P to state in place.
func Permute(state *[Width]byte) {
	var lane [lanes]vector.V
	for i := range lane {
		lane[i] = vector.Load(state[:], i)
	}

	k := 0
	for r := range rounds {
		next := lane
		for p := range pairsPerRound {
			src, dst := schedule[r][p][0], schedule[r][p][1]
			next[dst] = lane[dst].Xor(vector.AES(lane[src], roundKeys[k]))
			k++
		}
		lane = next
	}

	for i := range lane {
		vector.Store(lane[i], state[:], i)
	}
}

// schedule[r] holds the pairwise mixing used in round r: schedule[r][p] =
// [src, dst] means lane dst is XORed with AES(lane src, next round key),
// leaving lane src unchanged by this round. Within a round the pairs are
// disjoint (every lane appears exactly once), which is what makes the round
// invertible: undoing round r only ever needs that round's src lanes, whose
// values are restored by undoing every later round first.
//
// The pairing is the circle method for round-robin tournament scheduling
// over the 16 lanes: it produces rounds-1 rounds in which every lane meets
// every other lane exactly once, so each lane's influence reaches every
// other lane within one pass. The sixteenth round (Randen's canonical round
// count, spec §4.2) repeats the first round's pairing with the next block
// of round keys.
var schedule = buildSchedule()

func buildSchedule() [rounds][pairsPerRound][2]int {
	var sched [rounds][pairsPerRound][2]int

	var players [lanes]int
	for i := range players {
		players[i] = i
	}

	for r := range lanes - 1 {
		for p := range pairsPerRound {
			a, b := players[p], players[lanes-1-p]
			if p%2 == r%2 {
				sched[r][p] = [2]int{a, b}
			} else {
				sched[r][p] = [2]int{b, a}
			}
		}
		// Rotate all but the fixed first player.
		last := players[lanes-1]
		copy(players[2:], players[1:lanes-1])
		players[1] = last
	}
	sched[rounds-1] = sched[0]

	return sched
}

// roundKeys is the fixed table of AES round keys the permutation draws from,
// one per pair per round (spec's "round-key table" §3). It is generated
// once, at package init, from a fixed SHAKE128 stream rather than copied
// from an external canonical table — see SPEC_FULL.md §9 / DESIGN.md for
// why this implementation cannot reproduce Google's published golden
// vector bit-for-bit.
var roundKeys = generateRoundKeys()

func generateRoundKeys() [numRoundKeys]vector.V {
	var keys [numRoundKeys]vector.V

	h := sha3.NewSHAKE128()
	_, _ = h.Write([]byte("go-randen permutation round-key table v1"))

	var buf [16]byte
	for i := range keys {
		_, _ = h.Read(buf[:])
		keys[i] = vector.FromBytes(buf)
	}
	return keys
}
