package main

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jmcgill/tokyo-sim/internal/dice"
	"github.com/jmcgill/tokyo-sim/internal/heatmap"
	"github.com/jmcgill/tokyo-sim/internal/scenario"
)

type api struct {
	loader  *scenario.Loader
	outDir  string
	maxSims int
}

type trialResp struct {
	Outcome []int  `json:"outcome,omitempty"`
	Err     string `json:"err,omitempty"`
}

type simulateResp struct {
	Dice        int          `json:"dice"`
	Rolls       int          `json:"rolls"`
	Face        int          `json:"face"`
	Sims        int          `json:"sims"`
	Seed        uint64       `json:"seed"`
	Percentages [][]float64  `json:"percentages"` // [roll][hits]
	Frequencies [][]int      `json:"frequencies,omitempty"`
	Labels      [][]string   `json:"labels,omitempty"`
	Stats       []dice.Stats `json:"stats,omitempty"`
	Err         string       `json:"err,omitempty"`
}

type scenarioResp struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
	simulateResp
}

func parseInt(r *http.Request, key string) (int, bool, string) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return 0, false, ""
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, "invalid " + key
	}
	return v, true, ""
}

func parseUint(r *http.Request, key string) (uint64, bool, string) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return 0, false, ""
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false, "invalid " + key
	}
	return v, true, ""
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// one trial outcome
func (a *api) handleTrial(w http.ResponseWriter, r *http.Request) {
	diceCount, ok, msg := parseInt(r, "dice")
	if !ok {
		writeJSON(w, http.StatusBadRequest, trialResp{Err: firstNonEmpty(msg, "missing param dice")})
		return
	}
	rolls, ok, msg := parseInt(r, "rolls")
	if !ok {
		writeJSON(w, http.StatusBadRequest, trialResp{Err: firstNonEmpty(msg, "missing param rolls")})
		return
	}
	face, _, msg := parseInt(r, "face")
	if msg != "" {
		writeJSON(w, http.StatusBadRequest, trialResp{Err: msg})
		return
	}

	rng := dice.DefaultRNG()
	if seed, ok, msg := parseUint(r, "seed"); msg != "" {
		writeJSON(w, http.StatusBadRequest, trialResp{Err: msg})
		return
	} else if ok {
		rng = dice.NewSeededRNG(seed)
	}

	out, err := dice.SimulateTrial(dice.Config{Dice: diceCount, Rolls: rolls, Face: face}, rng)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, trialResp{Err: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, trialResp{Outcome: out})
}

// full batch simulation with summaries
func (a *api) handleSimulate(w http.ResponseWriter, r *http.Request) {
	params, errMsg := a.paramsFromQuery(r)
	if errMsg != "" {
		writeJSON(w, http.StatusBadRequest, simulateResp{Err: errMsg})
		return
	}
	a.respondAnalysis(w, r, params, nil)
}

// named scenario with query overrides, optionally rendered
func (a *api) handleScenario(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, scenarioResp{simulateResp: simulateResp{Err: "missing param name"}})
		return
	}
	s, err := a.loader.Get(name)
	if err != nil {
		writeJSON(w, http.StatusNotFound, scenarioResp{Name: name, simulateResp: simulateResp{Err: err.Error()}})
		return
	}

	var o scenario.Overrides
	if v, ok, msg := parseInt(r, "sims"); msg != "" {
		writeJSON(w, http.StatusBadRequest, scenarioResp{Name: name, simulateResp: simulateResp{Err: msg}})
		return
	} else if ok {
		o.Sims = &v
	}
	if v, ok, msg := parseUint(r, "seed"); msg != "" {
		writeJSON(w, http.StatusBadRequest, scenarioResp{Name: name, simulateResp: simulateResp{Err: msg}})
		return
	} else if ok {
		o.Seed = &v
	}
	if v, ok, msg := parseInt(r, "workers"); msg != "" {
		writeJSON(w, http.StatusBadRequest, scenarioResp{Name: name, simulateResp: simulateResp{Err: msg}})
		return
	} else if ok {
		o.Workers = &v
	}
	s = o.Apply(s)

	a.respondAnalysis(w, r, s.Params(), &s)
}

// paramsFromQuery builds engine params for /simulate. dice, rolls and sims
// are required; face, seed and workers are optional.
func (a *api) paramsFromQuery(r *http.Request) (dice.Params, string) {
	var p dice.Params
	var ok bool
	var msg string

	if p.Dice, ok, msg = parseInt(r, "dice"); !ok {
		return p, firstNonEmpty(msg, "missing param dice")
	}
	if p.Rolls, ok, msg = parseInt(r, "rolls"); !ok {
		return p, firstNonEmpty(msg, "missing param rolls")
	}
	if p.Sims, ok, msg = parseInt(r, "sims"); !ok {
		return p, firstNonEmpty(msg, "missing param sims")
	}
	if p.Face, _, msg = parseInt(r, "face"); msg != "" {
		return p, msg
	}
	if p.Workers, _, msg = parseInt(r, "workers"); msg != "" {
		return p, msg
	}
	if seed, ok, msg := parseUint(r, "seed"); msg != "" {
		return p, msg
	} else if ok {
		p.Seed = &seed
	}
	return p, ""
}

// respondAnalysis runs the engine and writes the JSON summary. When s is a
// scenario with an output file and render=1, it also writes the heatmap.
func (a *api) respondAnalysis(w http.ResponseWriter, r *http.Request, p dice.Params, s *scenario.Scenario) {
	if p.Sims > a.maxSims {
		writeJSON(w, http.StatusBadRequest, simulateResp{
			Err: "sims exceeds server limit of " + strconv.Itoa(a.maxSims),
		})
		return
	}

	start := time.Now()
	res, err := dice.Analyze(p)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, simulateResp{Err: err.Error()})
		return
	}
	log.WithFields(log.Fields{
		"dice":  res.Config.Dice,
		"rolls": res.Config.Rolls,
		"sims":  res.Sims,
		"seed":  res.Seed,
		"took":  time.Since(start).Round(time.Millisecond).String(),
	}).Info("analysis done")

	resp := simulateResp{
		Dice:        res.Config.Dice,
		Rolls:       res.Config.Rolls,
		Face:        res.Config.Face,
		Sims:        res.Sims,
		Seed:        res.Seed,
		Percentages: res.Percentages.Cells,
		Stats:       res.Stats,
	}
	if r.URL.Query().Get("freq") == "1" {
		resp.Frequencies = res.Frequencies.Cells
	}
	if r.URL.Query().Get("labels") == "1" || s != nil {
		resp.Labels = dice.Labels(res.Percentages)
	}

	if s == nil {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	out := scenarioResp{Name: s.Name, simulateResp: resp}
	if r.URL.Query().Get("render") == "1" {
		if s.Out == "" {
			out.Err = "scenario has no output file configured"
			writeJSON(w, http.StatusBadRequest, out)
			return
		}
		path := filepath.Join(a.outDir, s.Out)
		err := heatmap.Render(res.Percentages, heatmap.Params{
			Title:   s.Title,
			Labels:  resp.Labels,
			Palette: heatmap.Palette(s.Palette),
			Min:     s.Min,
			Max:     s.Max,
		}, path)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, scenarioResp{Name: s.Name, simulateResp: simulateResp{Err: err.Error()}})
			return
		}
		log.WithFields(log.Fields{"scenario": s.Name, "out": path}).Info("heatmap written")
		out.Image = path
	}
	writeJSON(w, http.StatusOK, out)
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
