// Package pso - RNG utilities.
//
// Goals:
//   - Determinism: same seed ⇒ identical run across platforms and worker counts.
//   - Encapsulation: a single seed policy; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each particle owns the stream
//     returned by particleRNG and nobody else touches it.
package pso

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed with
// a SplitMix64 finalizer, so neighbouring stream ids give unrelated seeds.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// particleRNG returns the private stream of particle idx for a run seeded
// with seed. It depends only on (seed, idx), never on scheduling.
//
// Complexity: O(1).
func particleRNG(seed int64, idx int) *rand.Rand {
	var parent = seed
	if parent == 0 {
		parent = defaultRNGSeed
	}

	return rand.New(rand.NewSource(deriveSeed(parent, uint64(idx))))
}

// shuffleInPlace performs a Fisher–Yates shuffle of a using rng.
// If rng==nil, the default deterministic stream is used.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace(a []int, rng *rand.Rand) {
	var n = len(a)
	if n <= 1 {
		return
	}
	var r = rng
	if r == nil {
		r = rngFromSeed(0)
	}

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
