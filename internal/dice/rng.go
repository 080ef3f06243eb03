package dice

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Sides is the number of faces on a die.
const Sides = 6

// RandomSource abstracts the dice entropy so runs can be seeded for
// reproduction or left on OS entropy.

type RandomSource interface {
	Face() int // uniform in [1, Sides]
}

// crypto random: default when no seed is given
type cryptoRNG struct{}

func (cryptoRNG) Face() int {
	// rejection sampling keeps the mapping to six faces unbiased
	const limit = uint64(1<<64-1) / Sides * Sides
	var buf [8]byte
	for {
		if _, err := cryptoRand.Read(buf[:]); err != nil {
			// back to math/rand/v2
			return rand.IntN(Sides) + 1
		}
		u := binary.BigEndian.Uint64(buf[:])
		if u < limit {
			return int(u%Sides) + 1
		}
	}
}

func DefaultRNG() RandomSource { return cryptoRNG{} }

// Replicable RNG (e.g. Monte Carlo)
type seededRNG struct{ r *rand.Rand }

func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) Face() int { return s.r.IntN(Sides) + 1 }

// workerStream derives the independent stream for one batch worker from the
// top-level seed. Stream 0 belongs to NewSeededRNG, so single-trial draws
// and batch workers never share a sequence.
func workerStream(seed uint64, worker int) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, uint64(worker)+1))}
}
