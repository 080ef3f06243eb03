package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleYAML = `version: "1"
defaults:
  sims: 50000
  palette: blue
  min: 0.0
  max: 0.4
scenarios:
  - name: six-four
    title: 6 dice, 4 rolls
    dice: 6
    rolls: 4
    out: six-four.png
  - name: seven-four
    title: 7 dice, 4 rolls
    dice: 7
    rolls: 4
    sims: 200000
    seed: 42
    palette: red
`

func writeScenarios(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoaderAppliesDefaults(t *testing.T) {
	l := NewLoader(writeScenarios(t, sampleYAML))
	scenarios, err := l.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(scenarios) != 2 {
		t.Fatalf("got %d scenarios, want 2", len(scenarios))
	}

	six := scenarios[0]
	if six.Sims == nil || *six.Sims != 50000 {
		t.Fatalf("defaults.sims not applied: %+v", six.Sims)
	}
	if six.Palette != "blue" {
		t.Fatalf("defaults.palette not applied: %q", six.Palette)
	}
	if six.Min == nil || *six.Min != 0.0 || six.Max == nil || *six.Max != 0.4 {
		t.Fatal("defaults.min/max not applied")
	}

	seven := scenarios[1]
	if *seven.Sims != 200000 {
		t.Fatalf("scenario sims must win over default, got %d", *seven.Sims)
	}
	if seven.Palette != "red" {
		t.Fatalf("scenario palette must win over default, got %q", seven.Palette)
	}
	if seven.Seed == nil || *seven.Seed != 42 {
		t.Fatal("seed not loaded")
	}
}

func TestLoaderGet(t *testing.T) {
	l := NewLoader(writeScenarios(t, sampleYAML))
	s, err := l.Get("seven-four")
	if err != nil {
		t.Fatal(err)
	}
	if s.Dice != 7 || s.Rolls != 4 {
		t.Fatalf("wrong scenario returned: %+v", s)
	}
	if _, err := l.Get("nope"); err == nil {
		t.Fatal("unknown scenario must error")
	}
}

func TestLoaderMissingFile(t *testing.T) {
	l := NewLoader(filepath.Join(t.TempDir(), "absent.yaml"))
	if _, err := l.Load(); err == nil {
		t.Fatal("missing file must error")
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	bad := `scenarios:
  - name: ""
    dice: -1
    rolls: 0
    face: 9
  - name: dup
    dice: 6
    rolls: 1
  - name: dup
    dice: 6
    rolls: 1
    palette: green
`
	l := NewLoader(writeScenarios(t, bad))
	_, err := l.Load()
	if err == nil {
		t.Fatal("invalid file must error")
	}
	for _, want := range []string{"name is required", "dice must be >= 0", "rolls must be >= 1", "face must be in", "duplicate name dup", "palette must be one of"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q missing %q", err, want)
		}
	}
}

func TestScenarioParams(t *testing.T) {
	sims := 777
	seed := uint64(5)
	s := Scenario{Name: "x", Dice: 6, Rolls: 3, Sims: &sims, Seed: &seed}
	p := s.Params()
	if p.Sims != 777 || p.Seed == nil || *p.Seed != 5 || p.Dice != 6 || p.Rolls != 3 {
		t.Fatalf("params conversion wrong: %+v", p)
	}

	p = Scenario{Name: "y", Dice: 2, Rolls: 1}.Params()
	if p.Sims != DefaultSims {
		t.Fatalf("sims default = %d, want %d", p.Sims, DefaultSims)
	}
}

func TestOverridesApply(t *testing.T) {
	base := Scenario{Name: "x", Dice: 6, Rolls: 3}
	sims := 10
	seed := uint64(9)
	got := Overrides{Sims: &sims, Seed: &seed}.Apply(base)
	if got.Sims == nil || *got.Sims != 10 || got.Seed == nil || *got.Seed != 9 {
		t.Fatalf("overrides not applied: %+v", got)
	}
	if base.Sims != nil {
		t.Fatal("Apply must not mutate the input scenario")
	}
}
