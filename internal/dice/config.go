package dice

import "fmt"

// DefaultFace is the face that counts as a hit when none is configured,
// matching the "ones are hits" King of Tokyo convention.
const DefaultFace = 1

// Config describes one trial: how many dice a player starts with, how many
// rolls they get, and which face counts as a hit.
type Config struct {
	Dice  int // dice at the start of a trial, >= 0
	Rolls int // rolls per trial, >= 1
	Face  int // target face in [1, Sides]; 0 means DefaultFace
}

func (c Config) targetFace() int {
	if c.Face == 0 {
		return DefaultFace
	}
	return c.Face
}

// Validate checks the configuration invariants before any simulation work.
func (c Config) Validate() error {
	if c.Dice < 0 {
		return fmt.Errorf("dice must be >= 0, got %d: %w", c.Dice, ErrInvalidConfig)
	}
	if c.Rolls < 1 {
		return fmt.Errorf("rolls must be >= 1, got %d: %w", c.Rolls, ErrInvalidConfig)
	}
	if f := c.targetFace(); f < 1 || f > Sides {
		return fmt.Errorf("face must be in [1,%d], got %d: %w", Sides, f, ErrInvalidConfig)
	}
	return nil
}
