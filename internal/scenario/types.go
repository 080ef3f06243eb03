// types.go
package scenario

import "github.com/jmcgill/tokyo-sim/internal/dice"

// DefaultSims is used when neither the scenario nor the defaults block set
// a simulation count.
const DefaultSims = 100000

// File is the raw scenarios document loaded from YAML.
type File struct {
	Version   string     `yaml:"version"`
	Defaults  Defaults   `yaml:"defaults,omitempty"`
	Scenarios []Scenario `yaml:"scenarios"`
	Notes     string     `yaml:"notes,omitempty"`
}

// Defaults fill any scenario field left unset.
type Defaults struct {
	Sims    *int     `yaml:"sims,omitempty"`
	Workers *int     `yaml:"workers,omitempty"`
	Palette string   `yaml:"palette,omitempty"`
	Min     *float64 `yaml:"min,omitempty"`
	Max     *float64 `yaml:"max,omitempty"`
}

// Scenario is one named analysis run.
type Scenario struct {
	Name    string   `yaml:"name"`
	Title   string   `yaml:"title,omitempty"`
	Dice    int      `yaml:"dice"`
	Rolls   int      `yaml:"rolls"`
	Face    int      `yaml:"face,omitempty"` // 0 means the default hit face
	Sims    *int     `yaml:"sims,omitempty"`
	Seed    *uint64  `yaml:"seed,omitempty"`
	Workers *int     `yaml:"workers,omitempty"`
	Palette string   `yaml:"palette,omitempty"` // "blue" or "red"
	Min     *float64 `yaml:"min,omitempty"`     // color scale clamp
	Max     *float64 `yaml:"max,omitempty"`
	Out     string   `yaml:"out,omitempty"` // heatmap filename; empty skips rendering
}

// Params converts a resolved scenario into engine parameters.
func (s Scenario) Params() dice.Params {
	p := dice.Params{
		Dice:  s.Dice,
		Rolls: s.Rolls,
		Face:  s.Face,
		Sims:  DefaultSims,
	}
	if s.Sims != nil {
		p.Sims = *s.Sims
	}
	if s.Seed != nil {
		seed := *s.Seed
		p.Seed = &seed
	}
	if s.Workers != nil {
		p.Workers = *s.Workers
	}
	return p
}
