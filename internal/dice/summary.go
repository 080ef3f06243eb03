package dice

import "fmt"

// FreqTable counts, per roll index, how many trials ended that roll with
// each possible hit count. The hit domain [0, Dice] is dense: counts that
// never occurred are explicit zeros, so downstream tables keep every row.
type FreqTable struct {
	Dice  int
	Sims  int
	Cells [][]int // Cells[roll][hits]
}

// PctTable is a FreqTable normalized by the trial count. Every roll column
// sums to 1 within floating-point tolerance.
type PctTable struct {
	Dice  int
	Cells [][]float64 // Cells[roll][hits], each in [0,1]
}

// Frequencies tallies a batch into per-roll histograms. It is a pure
// function of the batch: identical input yields identical output.
func Frequencies(b *Batch) (*FreqTable, error) {
	if b == nil || b.Sims < 1 {
		return nil, fmt.Errorf("frequencies need a non-empty batch: %w", ErrInvalidConfig)
	}
	cells := make([][]int, b.Config.Rolls)
	for r := range cells {
		cells[r] = make([]int, b.Config.Dice+1)
	}
	for i := 0; i < b.Sims; i++ {
		for r, hits := range b.Row(i) {
			cells[r][hits]++
		}
	}
	return &FreqTable{Dice: b.Config.Dice, Sims: b.Sims, Cells: cells}, nil
}

// Percentages divides every frequency cell by the trial count. A zero trial
// count is rejected here so it can never surface as NaN or Inf downstream.
func Percentages(f *FreqTable) (*PctTable, error) {
	if f == nil || f.Sims < 1 {
		return nil, fmt.Errorf("percentages need a positive trial count: %w", ErrInvalidConfig)
	}
	cells := make([][]float64, len(f.Cells))
	for r, col := range f.Cells {
		cells[r] = make([]float64, len(col))
		for h, n := range col {
			cells[r][h] = float64(n) / float64(f.Sims)
		}
	}
	return &PctTable{Dice: f.Dice, Cells: cells}, nil
}
