// Package randutil builds the per-episode random sources used by the
// environment and the rollout workers.
package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both PCG words are derived from the one seed so that equal seeds always
// produce equal streams.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewEntropy returns a *rand.Rand seeded from the runtime's entropy source.
func NewEntropy() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Derive returns a seed for an independent stream labelled by stream. Rollouts
// use it to give the agent policy a PRNG that does not share draws with the env.
func Derive(seed int64, stream uint64) int64 {
	return int64(mix(uint64(seed) ^ mix(stream+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
