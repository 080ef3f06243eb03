package main

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmcgill/tokyo-sim/internal/scenario"
)

func testAPI(t *testing.T) *api {
	t.Helper()
	dir := t.TempDir()
	body := `scenarios:
  - name: demo
    title: demo run
    dice: 6
    rolls: 2
    sims: 2000
    seed: 42
    out: demo.png
`
	path := filepath.Join(dir, "scenarios.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return &api{loader: scenario.NewLoader(path), outDir: dir, maxSims: 100000}
}

func get(t *testing.T, h http.HandlerFunc, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestHandleSimulate(t *testing.T) {
	a := testAPI(t)
	rec := get(t, a.handleSimulate, "/simulate?dice=6&rolls=1&sims=6000&seed=42")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp simulateResp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Seed != 42 || resp.Sims != 6000 {
		t.Fatalf("echoed params wrong: %+v", resp)
	}
	if len(resp.Percentages) != 1 || len(resp.Percentages[0]) != 7 {
		t.Fatalf("table shape wrong: %v", resp.Percentages)
	}
	var sum float64
	for _, v := range resp.Percentages[0] {
		sum += v
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Fatalf("column sums to %f", sum)
	}
}

func TestHandleSimulateRejectsBadInput(t *testing.T) {
	a := testAPI(t)
	for _, url := range []string{
		"/simulate?rolls=1&sims=10",            // missing dice
		"/simulate?dice=6&sims=10",             // missing rolls
		"/simulate?dice=6&rolls=1",             // missing sims
		"/simulate?dice=-1&rolls=1&sims=10",    // invalid config
		"/simulate?dice=6&rolls=1&sims=999999", // over the server cap
		"/simulate?dice=abc&rolls=1&sims=10",   // unparsable
	} {
		if rec := get(t, a.handleSimulate, url); rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", url, rec.Code)
		}
	}
}

func TestHandleTrial(t *testing.T) {
	a := testAPI(t)
	rec := get(t, a.handleTrial, "/trial?dice=6&rolls=4&seed=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp trialResp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Outcome) != 4 {
		t.Fatalf("outcome length = %d, want 4", len(resp.Outcome))
	}
}

func TestHandleScenario(t *testing.T) {
	a := testAPI(t)
	rec := get(t, a.handleScenario, "/scenario?name=demo&render=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp scenarioResp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Name != "demo" || resp.Image == "" {
		t.Fatalf("scenario response wrong: %+v", resp)
	}
	if _, err := os.Stat(resp.Image); err != nil {
		t.Fatalf("rendered image missing: %v", err)
	}
	if len(resp.Labels) != 2 {
		t.Fatalf("labels missing from scenario response")
	}

	if rec := get(t, a.handleScenario, "/scenario?name=absent"); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown scenario status = %d, want 404", rec.Code)
	}
}

func TestHandleScenarioOverrides(t *testing.T) {
	a := testAPI(t)
	rec := get(t, a.handleScenario, "/scenario?name=demo&sims=500&seed=7")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp scenarioResp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Sims != 500 || resp.Seed != 7 {
		t.Fatalf("overrides not applied: sims=%d seed=%d", resp.Sims, resp.Seed)
	}
}
