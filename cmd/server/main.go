package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	persistlog "factorish.dev/internal/persistence/log"
	"factorish.dev/internal/sim/loop"
	"factorish.dev/internal/sim/tuning"
	"factorish.dev/internal/sim/world"
	"factorish.dev/internal/transport/ws"
)

func main() {
	var (
		addr        = flag.String("addr", ":8080", "http listen address")
		configDir   = flag.String("configs", "./configs", "config directory")
		dataDir     = flag.String("data", "./data", "runtime data directory")
		tuningPath  = flag.String("tuning", "", "path to tuning.yaml (default: <configs>/tuning.yaml)")
		disableDB   = flag.Bool("disable_db", false, "disable the sqlite tick/audit index")
		disableLogs = flag.Bool("disable_logs", false, "disable the zstd tick/audit logs")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[server] ", log.LstdFlags|log.Lmicroseconds)

	tp := strings.TrimSpace(*tuningPath)
	if tp == "" {
		tp = filepath.Join(*configDir, "tuning.yaml")
	}
	tune, err := tuning.Load(tp)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Fatalf("load tuning: %v", err)
		}
		logger.Printf("tuning not found (%s); using defaults", tp)
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
	width, height := w.Size()
	logger.Printf("world %dx%d tile_size=%d structures=%d", width, height, w.TileSize(), len(w.Structures()))

	_ = os.MkdirAll(*dataDir, 0o755)

	// Optional: read-model index backend (does not affect sim determinism).
	idx, err := openRuntimeIndex(*dataDir, *disableDB)
	if err != nil {
		logger.Fatalf("open index backend: %v", err)
	}
	if idx != nil {
		defer idx.Close()
		if err := idx.UpsertTuning(tune); err != nil {
			logger.Printf("index backend: upsert tuning: %v", err)
		}
	}

	ticks := multiTickLogger{}
	audits := multiAuditLogger{}
	if !*disableLogs {
		tickLog := persistlog.NewTickLogger(*dataDir)
		auditLog := persistlog.NewAuditLogger(*dataDir)
		defer tickLog.Close()
		defer auditLog.Close()
		ticks = append(ticks, tickLog)
		audits = append(audits, auditLog)
	}
	if idx != nil {
		ticks = append(ticks, idx)
		audits = append(audits, idx)
	}
	if len(ticks) > 0 {
		w.SetTickLogger(ticks)
		w.SetAuditLogger(audits)
	}

	l := loop.New(w, loop.Config{TickRateHz: tune.TickRateHz, DeltaTime: tune.DeltaTime, Logger: logger})
	frames := newFrameCache(l)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(200)
		_, _ = rw.Write([]byte("ok"))
	})
	mux.HandleFunc("/metrics", metricsHandler(frames, idx))
	mux.HandleFunc("/admin/v1/frame", frameHandler(frames))
	if envBool("FACTORISH_ENABLE_PPROF_HTTP", false) {
		mux.HandleFunc("/debug/pprof/", pprof.Index)
		mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	} else {
		logger.Printf("pprof endpoints disabled (FACTORISH_ENABLE_PPROF_HTTP=false)")
	}
	wsSrv := ws.NewServer(l, logger)
	wsSrv.MaxCmdsPerSecond = envInt("FACTORISH_WS_MAX_CMDS_PER_SEC", ws.DefaultMaxCmdsPerSecond)
	mux.HandleFunc("/v1/ws", wsSrv.Handler())

	srv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := signalContext()
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := l.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		frames.run(gctx)
		return nil
	})
	g.Go(func() error {
		logger.Printf("listening on %s", *addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel2()
		return srv.Shutdown(ctx2)
	})
	if err := g.Wait(); err != nil {
		logger.Printf("server stopped: %v", err)
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-ch
		cancel()
	}()
	return ctx, cancel
}
