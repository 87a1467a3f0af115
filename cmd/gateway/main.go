package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	api "github.com/mind-engage/serendipity-ink/internal/api/http"
	auth "github.com/mind-engage/serendipity-ink/internal/auth/middleware"
	"github.com/mind-engage/serendipity-ink/internal/config"
	"github.com/mind-engage/serendipity-ink/internal/grading"
	"github.com/mind-engage/serendipity-ink/internal/learner"
	"github.com/mind-engage/serendipity-ink/internal/logger"
)

func main() {
	cfg, cfgErr := config.Load()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	if cfgErr != nil {
		log.Fatal("config", "error", cfgErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Grading ---
	ruleOpts, err := grading.LoadRulesFile(cfg.GradingRulesFile)
	if err != nil {
		log.Fatal("load grading rules", "path", cfg.GradingRulesFile, "error", err)
	}
	grader := grading.NewDefaultGrader(ruleOpts...)

	// --- Sessions (memory only) ---
	store := learner.NewInMemoryStore(grader, learner.WithTTL(cfg.SessionTTL))
	authSvc := auth.NewAuthService(cfg.AuthSecret, cfg.SessionTTL)
	go sweep(ctx, store, cfg.SessionSweepInterval, log)

	r := api.NewRouter(api.RouterDeps{
		Store:       store,
		Auth:        authSvc,
		Log:         log,
		CORSOrigins: cfg.CORSOrigins(),
		LogRequests: cfg.LogRequests,
	})

	s := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown", "error", err)
		}
	}()

	log.Info("listening", "addr", cfg.HTTPAddr, "mode", cfg.Mode, "extra_rules", len(ruleOpts))
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("listen", "error", err)
	}
	log.Info("stopped")
}

func sweep(ctx context.Context, store learner.Store, every time.Duration, log *logger.Logger) {
	if every <= 0 {
		return
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if n := store.Sweep(now); n > 0 {
				log.Debug("expired sessions evicted", "count", n, "remaining", store.Len())
			}
		}
	}
}
