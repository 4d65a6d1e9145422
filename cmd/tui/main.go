package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"factorish.dev/internal/sim/tuning"
	"factorish.dev/internal/sim/world"
)

func main() {
	var (
		configDir  = flag.String("configs", "./configs", "config directory")
		tuningPath = flag.String("tuning", "", "path to tuning.yaml (default: <configs>/tuning.yaml)")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "[tui] ", log.LstdFlags)

	tp := strings.TrimSpace(*tuningPath)
	if tp == "" {
		tp = filepath.Join(*configDir, "tuning.yaml")
	}
	tune, err := tuning.Load(tp)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Fatalf("load tuning: %v", err)
		}
		tune = tuning.Defaults()
	}
	cfg, err := world.ConfigFromTuning(tune)
	if err != nil {
		logger.Fatalf("world config: %v", err)
	}
	w, err := world.New(cfg)
	if err != nil {
		logger.Fatalf("world: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		logger.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()

	a := newApp(screen, w)
	a.run(time.Second / time.Duration(max(tune.TickRateHz, 1)))
}
