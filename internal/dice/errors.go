package dice

import "errors"

// ErrInvalidConfig marks caller input that violates a simulation constraint.
// Every failure wraps it with the offending parameter and the constraint it
// broke, and is raised before any simulation work starts.
var ErrInvalidConfig = errors.New("invalid simulation configuration")
