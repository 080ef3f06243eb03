// overrides.go
package scenario

// Overrides carries per-request parameter overrides applied on top of a
// named scenario, e.g. query parameters on the HTTP surface.
type Overrides struct {
	Sims    *int
	Seed    *uint64
	Workers *int
}

// Apply returns a copy of s with the overrides applied.
func (o Overrides) Apply(s Scenario) Scenario {
	if o.Sims != nil {
		v := *o.Sims
		s.Sims = &v
	}
	if o.Seed != nil {
		v := *o.Seed
		s.Seed = &v
	}
	if o.Workers != nil {
		v := *o.Workers
		s.Workers = &v
	}
	return s
}
