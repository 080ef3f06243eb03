package main

import (
	"flag"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jmcgill/tokyo-sim/internal/dice"
	"github.com/jmcgill/tokyo-sim/internal/heatmap"
	"github.com/jmcgill/tokyo-sim/internal/scenario"
)

func main() {
	cfgPath := flag.String("config", "scenarios.yaml", "scenarios file")
	outDir := flag.String("out", ".", "directory for heatmap images")
	only := flag.String("scenario", "", "run a single scenario by name")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	loader := scenario.NewLoader(*cfgPath)
	scenarios, err := loader.Load()
	if err != nil {
		log.Fatalf("load scenarios: %v", err)
	}
	if *only != "" {
		s, err := loader.Get(*only)
		if err != nil {
			log.Fatal(err)
		}
		scenarios = []scenario.Scenario{s}
	}
	if len(scenarios) == 0 {
		log.Fatalf("no scenarios in %s", *cfgPath)
	}

	for _, s := range scenarios {
		run(s, *outDir)
	}
}

func run(s scenario.Scenario, outDir string) {
	start := time.Now()
	res, err := dice.Analyze(s.Params())
	if err != nil {
		log.WithField("scenario", s.Name).Fatalf("analyze: %v", err)
	}

	last := res.Stats[len(res.Stats)-1]
	log.WithFields(log.Fields{
		"scenario":  s.Name,
		"sims":      res.Sims,
		"seed":      res.Seed,
		"mean_hits": last.Mean,
		"took":      time.Since(start).Round(time.Millisecond).String(),
	}).Info("analysis done")

	if s.Out == "" {
		return
	}
	path := filepath.Join(outDir, s.Out)
	err = heatmap.Render(res.Percentages, heatmap.Params{
		Title:   s.Title,
		Labels:  dice.Labels(res.Percentages),
		Palette: heatmap.Palette(s.Palette),
		Min:     s.Min,
		Max:     s.Max,
	}, path)
	if err != nil {
		log.WithField("scenario", s.Name).Fatalf("render: %v", err)
	}
	log.WithFields(log.Fields{"scenario": s.Name, "out": path}).Info("heatmap written")
}
