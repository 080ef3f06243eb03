package dice

import (
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"
)

// Batch holds the outcomes of many independent trials, one row per trial.
// Rows share one flat backing array so a ten-million-trial run costs a
// single allocation.
type Batch struct {
	Config Config
	Sims   int
	Seed   uint64 // effective top-level seed, recorded even for unseeded runs

	rows []int // Sims * Config.Rolls, row-major
}

// Row returns the outcome of trial i. The slice aliases the batch and must
// not be mutated.
func (b *Batch) Row(i int) Outcome {
	r := b.Config.Rolls
	return Outcome(b.rows[i*r : (i+1)*r : (i+1)*r])
}

// BatchParams controls one batch run.
type BatchParams struct {
	Config  Config
	Sims    int     // number of independent trials, >= 1
	Seed    *uint64 // nil draws a fresh seed; set makes the run reproducible
	Workers int     // <= 0 means one per CPU
}

// RunBatch runs Sims independent trials and collects their outcomes.
// Trials are split across workers in contiguous row ranges; each worker owns
// its slice of the batch and a PCG stream derived from the top-level seed
// and its worker index, so the only synchronization is the final wait.
func RunBatch(p BatchParams) (*Batch, error) {
	if err := p.Config.Validate(); err != nil {
		return nil, err
	}
	if p.Sims < 1 {
		return nil, fmt.Errorf("sims must be >= 1, got %d: %w", p.Sims, ErrInvalidConfig)
	}

	seed := rand.Uint64()
	if p.Seed != nil {
		seed = *p.Seed
	}
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > p.Sims {
		workers = p.Sims
	}

	b := &Batch{
		Config: p.Config,
		Sims:   p.Sims,
		Seed:   seed,
		rows:   make([]int, p.Sims*p.Config.Rolls),
	}

	per := p.Sims / workers
	extra := p.Sims % workers
	var wg sync.WaitGroup
	start := 0
	for w := 0; w < workers; w++ {
		n := per
		if w < extra {
			n++
		}
		wg.Add(1)
		go func(w, start, n int) {
			defer wg.Done()
			rng := workerStream(seed, w)
			rolls := p.Config.Rolls
			for i := start; i < start+n; i++ {
				simulateTrialInto(p.Config, rng, b.rows[i*rolls:(i+1)*rolls])
			}
		}(w, start, n)
		start += n
	}
	wg.Wait()
	return b, nil
}
