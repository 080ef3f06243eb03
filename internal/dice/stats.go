package dice

import (
	"math"
	"sort"
)

// Stats summarizes the hit counts observed at one roll index.
type Stats struct {
	Mean   float64 `json:"mean"`
	Var    float64 `json:"var"`
	StdDev float64 `json:"stddev"`
	P50    float64 `json:"p50"`
	P90    float64 `json:"p90"`
	P99    float64 `json:"p99"`
}

// ColumnStats computes summary stats for every roll index of a batch.
func ColumnStats(b *Batch) []Stats {
	if b == nil || b.Sims < 1 {
		return nil
	}
	rolls := b.Config.Rolls
	out := make([]Stats, rolls)
	xs := make([]int, b.Sims)
	for r := 0; r < rolls; r++ {
		for i := 0; i < b.Sims; i++ {
			xs[i] = b.rows[i*rolls+r]
		}
		out[r] = calcStats(xs)
	}
	return out
}

// calcStats computes mean/variance/percentiles for integer samples.
// It sorts xs in place.
func calcStats(xs []int) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}
	// mean
	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	mean := sum / float64(n)

	// variance (population)
	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}
	variance := acc / float64(n)
	stddev := math.Sqrt(variance)

	// percentiles
	sort.Ints(xs)
	percentile := func(p float64) float64 {
		if n == 1 || p <= 0 {
			return float64(xs[0])
		}
		if p >= 1 {
			return float64(xs[n-1])
		}
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		f := pos - float64(i)
		if i+1 >= n {
			return float64(xs[i])
		}
		return float64(xs[i])*(1-f) + float64(xs[i+1])*f
	}

	return Stats{
		Mean:   mean,
		Var:    variance,
		StdDev: stddev,
		P50:    percentile(0.50),
		P90:    percentile(0.90),
		P99:    percentile(0.99),
	}
}
