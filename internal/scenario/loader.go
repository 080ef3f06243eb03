package scenario

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Loader reads the scenarios file, validates it, and resolves the defaults
// block into every scenario. Results are cached until Invalidate.
type Loader struct {
	path string

	mu       sync.RWMutex
	resolved []Scenario
	byName   map[string]Scenario
}

// NewLoader creates a loader for the given scenarios file.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Path returns the file this loader reads.
func (l *Loader) Path() string { return l.path }

// Load returns all scenarios with defaults applied, in file order.
func (l *Loader) Load() ([]Scenario, error) {
	l.mu.RLock()
	if l.byName != nil {
		out := l.resolved
		l.mu.RUnlock()
		return out, nil
	}
	l.mu.RUnlock()

	f, err := readYAML(l.path)
	if err != nil {
		return nil, fmt.Errorf("read scenarios: %w", err)
	}
	if err := Validate(f); err != nil {
		return nil, err
	}

	resolved := make([]Scenario, len(f.Scenarios))
	byName := make(map[string]Scenario, len(f.Scenarios))
	for i, s := range f.Scenarios {
		r := applyDefaults(s, f.Defaults)
		resolved[i] = r
		byName[r.Name] = r
	}

	l.mu.Lock()
	l.resolved = resolved
	l.byName = byName
	l.mu.Unlock()

	return resolved, nil
}

// Get returns one scenario by name.
func (l *Loader) Get(name string) (Scenario, error) {
	if _, err := l.Load(); err != nil {
		return Scenario{}, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	s, ok := l.byName[name]
	if !ok {
		return Scenario{}, fmt.Errorf("scenario %q not found in %s", name, l.path)
	}
	return s, nil
}

// Invalidate clears the cache. Call after hot-reload detects changes.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.resolved = nil
	l.byName = nil
}

// readYAML loads the scenarios file. A missing file is an error here: there
// is no layered fallback, the file is the whole configuration.
func readYAML(path string) (File, error) {
	var f File
	b, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	if err := yaml.Unmarshal(b, &f); err != nil {
		return File{}, err
	}
	return f, nil
}

// applyDefaults fills unset scenario fields from the defaults block.
func applyDefaults(s Scenario, d Defaults) Scenario {
	if s.Sims == nil && d.Sims != nil {
		v := *d.Sims
		s.Sims = &v
	}
	if s.Workers == nil && d.Workers != nil {
		v := *d.Workers
		s.Workers = &v
	}
	if s.Palette == "" {
		s.Palette = d.Palette
	}
	if s.Min == nil && d.Min != nil {
		v := *d.Min
		s.Min = &v
	}
	if s.Max == nil && d.Max != nil {
		v := *d.Max
		s.Max = &v
	}
	return s
}
