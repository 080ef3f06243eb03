package main

import (
	"net/http"
	"time"

	"github.com/caarlos0/env/v11"
	log "github.com/sirupsen/logrus"

	"github.com/jmcgill/tokyo-sim/internal/scenario"
)

type serverConfig struct {
	Addr      string        `env:"ADDR" envDefault:":8080"`
	Scenarios string        `env:"SCENARIOS_FILE" envDefault:"scenarios.yaml"`
	OutDir    string        `env:"OUTPUT_DIR" envDefault:"."`
	MaxSims   int           `env:"MAX_SIMS" envDefault:"10000000"`
	Reload    time.Duration `env:"RELOAD_INTERVAL" envDefault:"5s"`
}

func main() {
	log.SetFormatter(&log.JSONFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})

	var cfg serverConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse env: %v", err)
	}

	loader := scenario.NewLoader(cfg.Scenarios)
	watcher := scenario.NewWatcher(loader, cfg.Reload, func(path string) {
		log.WithField("file", path).Info("scenarios changed, cache invalidated")
	})
	watcher.Start()
	defer watcher.Stop()

	a := &api{loader: loader, outDir: cfg.OutDir, maxSims: cfg.MaxSims}
	mux := http.NewServeMux()
	mux.HandleFunc("/trial", a.handleTrial)
	mux.HandleFunc("/simulate", a.handleSimulate)
	mux.HandleFunc("/scenario", a.handleScenario)

	log.WithField("addr", cfg.Addr).Info("listening")
	log.Fatal(http.ListenAndServe(cfg.Addr, mux))
}
