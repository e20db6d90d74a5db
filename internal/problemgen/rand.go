package problemgen

import (
	"math/rand/v2"
)

// Rand is the source of randomness threaded through every generator call.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform integer in [0, n). Panics if n <= 0.
	IntN(n int) int
}

// NewRand returns a PCG-backed source. A zero seed draws one from the
// runtime's entropy source, so repeated runs differ.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// between returns a uniform integer in [lo, hi].
func between(r Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

// ByteReader adapts a Rand to io.Reader so byte-oriented consumers, such as
// UUID generation, draw from the same deterministic stream.
type ByteReader struct {
	R Rand
}

func (b ByteReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(b.R.IntN(256))
	}
	return len(p), nil
}
