package dice

// Outcome is the cumulative hit count after each roll of one trial. It is
// non-decreasing and never exceeds the configured dice count.
type Outcome []int

// SimulateTrial rolls cfg.Dice dice cfg.Rolls times, keeping every die that
// shows the target face and re-rolling the rest, and returns the cumulative
// hit count after each roll. A nil rng uses the default crypto source.
func SimulateTrial(cfg Config, rng RandomSource) (Outcome, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	out := make(Outcome, cfg.Rolls)
	simulateTrialInto(cfg, rng, out)
	return out, nil
}

// simulateTrialInto is the allocation-free core shared with RunBatch.
// cfg must already be validated.
func simulateTrialInto(cfg Config, rng RandomSource, out []int) {
	face := cfg.targetFace()
	remaining := cfg.Dice
	hits := 0
	for roll := range out {
		// kept dice are out of play; once remaining is 0 every later
		// roll draws nothing and the count stays flat
		for i := 0; i < remaining; i++ {
			if rng.Face() == face {
				hits++
			}
		}
		remaining = cfg.Dice - hits
		out[roll] = hits
	}
}
