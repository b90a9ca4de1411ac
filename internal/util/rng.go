package util

import "math/rand"

// New returns a deterministic generator; seed 0 is remapped so it is never "unseeded".
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}

// BattleSeed spreads batch runs over distinct seeds.
func BattleSeed(base int64, run int) int64 {
	return base + int64(run)*7919
}

// Shuffled returns 0..n-1 in an order drawn from rng. A nil rng keeps natural order.
func Shuffled(n int, rng *rand.Rand) []int {
	if n <= 0 {
		return nil
	}
	if rng == nil {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	return rng.Perm(n)
}
