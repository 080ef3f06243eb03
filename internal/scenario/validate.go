package scenario

import (
	"fmt"
	"strings"

	"github.com/jmcgill/tokyo-sim/internal/dice"
)

// Validate checks semantic constraints of a scenarios file. All violations
// are collected into a single error so a broken file is fixable in one pass.
func Validate(f File) error {
	var errs []string

	if f.Defaults.Sims != nil && *f.Defaults.Sims < 1 {
		errs = append(errs, "defaults.sims must be >= 1")
	}
	if !validPalette(f.Defaults.Palette) {
		errs = append(errs, "defaults.palette must be one of: blue, red")
	}

	seen := make(map[string]bool)
	for i, s := range f.Scenarios {
		where := fmt.Sprintf("scenarios[%d]", i)
		if s.Name == "" {
			errs = append(errs, where+": name is required")
		} else if seen[s.Name] {
			errs = append(errs, where+": duplicate name "+s.Name)
		}
		seen[s.Name] = true

		if s.Dice < 0 {
			errs = append(errs, where+": dice must be >= 0")
		}
		if s.Rolls < 1 {
			errs = append(errs, where+": rolls must be >= 1")
		}
		if s.Face != 0 && (s.Face < 1 || s.Face > dice.Sides) {
			errs = append(errs, fmt.Sprintf("%s: face must be in [1,%d]", where, dice.Sides))
		}
		if s.Sims != nil && *s.Sims < 1 {
			errs = append(errs, where+": sims must be >= 1")
		}
		if s.Min != nil && (*s.Min < 0 || *s.Min > 1) {
			errs = append(errs, where+": min must be in [0,1]")
		}
		if s.Max != nil && (*s.Max < 0 || *s.Max > 1) {
			errs = append(errs, where+": max must be in [0,1]")
		}
		if s.Min != nil && s.Max != nil && *s.Min >= *s.Max {
			errs = append(errs, where+": min must be < max")
		}
		if !validPalette(s.Palette) {
			errs = append(errs, where+": palette must be one of: blue, red")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("scenario validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validPalette(p string) bool {
	switch p {
	case "", "blue", "red":
		return true
	}
	return false
}
