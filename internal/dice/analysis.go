package dice

// Params configures one full analysis run.
type Params struct {
	Dice      int
	Rolls     int
	Face      int     // 0 means DefaultFace
	Sims      int     // number of independent trials, >= 1
	Seed      *uint64 // nil uses fresh entropy; set makes the run reproducible
	Workers   int     // <= 0 means one per CPU
	KeepBatch bool    // retain raw outcomes on the result for inspection
}

// Result bundles the summaries of one analysis run.
type Result struct {
	Config      Config
	Sims        int
	Seed        uint64
	Percentages *PctTable
	Frequencies *FreqTable
	Stats       []Stats
	Batch       *Batch // nil unless Params.KeepBatch
}

// Analyze is the single entry point: run a batch, tally it into frequency
// and percentage tables, and summarize each roll column.
func Analyze(p Params) (*Result, error) {
	batch, err := RunBatch(BatchParams{
		Config:  Config{Dice: p.Dice, Rolls: p.Rolls, Face: p.Face},
		Sims:    p.Sims,
		Seed:    p.Seed,
		Workers: p.Workers,
	})
	if err != nil {
		return nil, err
	}
	freq, err := Frequencies(batch)
	if err != nil {
		return nil, err
	}
	pct, err := Percentages(freq)
	if err != nil {
		return nil, err
	}
	res := &Result{
		Config:      batch.Config,
		Sims:        batch.Sims,
		Seed:        batch.Seed,
		Percentages: pct,
		Frequencies: freq,
		Stats:       ColumnStats(batch),
	}
	if p.KeepBatch {
		res.Batch = batch
	}
	return res, nil
}
