package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"jobboard/internal/apperrors"
	"jobboard/internal/catalog"
	"jobboard/internal/config"
	"jobboard/internal/httpapi"
	"jobboard/internal/logging"
	"jobboard/internal/logos"
	"jobboard/internal/metrics"
	"jobboard/internal/scheduler"
	"jobboard/internal/store"
	"jobboard/internal/view"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "jobboard: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Data dir holds the user config, the logo cache and the instance lock.
	dataDir := os.Getenv("JOBBOARD_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		return fmt.Errorf("config bootstrap failed: %w", err)
	}
	cfg, err := config.Load(userCfgPath)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", userCfgPath, err)
	}
	if err := config.OverlayEnv(&cfg); err != nil {
		return err
	}
	cfg, vr := config.NormalizeAndValidate(cfg)

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	for _, w := range vr.Warnings {
		logger.Warn("config", zap.String("warning", w))
	}
	if !vr.OK() {
		for _, e := range vr.Errors {
			logger.Error("config", zap.String("error", e))
		}
		return fmt.Errorf("invalid config %s", userCfgPath)
	}

	lock, err := store.LockDataDir(dataDir)
	if err != nil {
		return err
	}
	defer func() { _ = lock.Unlock() }()

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Error("catalog load failed", zap.String("path", cfg.Catalog.Path), zap.Error(err), apperrors.StackField(err))
		return fmt.Errorf("catalog load failed: %w", err)
	}
	metrics.CatalogJobs.Set(float64(cat.Len()))
	logger.Info("catalog loaded", zap.Int("jobs", cat.Len()), zap.String("path", cfg.Catalog.Path))

	renderer, err := view.New(view.Options{SiteTitle: cfg.Site.Title, BaseURL: cfg.Site.BaseURL})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := httpapi.Deps{
		Jobs:     cat,
		Renderer: renderer,
		Logger:   logger,
	}

	if cfg.Logos.Enabled {
		dbPath := filepath.Join(dataDir, "logos.db")
		db, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := store.Migrate(db.Pool); err != nil {
			return fmt.Errorf("migrate %s: %w", dbPath, err)
		}

		cache := logos.New(db.Pool, logos.Options{
			RequestsPerSecond: cfg.Logos.RequestsPerSecond,
			Burst:             cfg.Logos.Burst,
			MaxBytes:          cfg.Logos.MaxBytes,
			WarmParallelism:   cfg.Logos.WarmParallelism,
			AllowHosts:        cfg.Logos.AllowHosts,
		}, logger)
		if err := cache.Load(ctx); err != nil {
			return err
		}
		// Cached logos are skipped, so later runs only retry failures.
		// stopWarm is deferred last so it runs before db.Close.
		stopWarm := scheduler.Start(ctx, time.Duration(cfg.Logos.RetryMinutes)*time.Minute, "logo-warm", logger, func(ctx context.Context) error {
			return cache.Warm(ctx, cat.LogoURLs())
		})
		defer stopWarm()

		deps.Logos = cache
		deps.DB = db.Pool
	}

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return err
	}
	logger.Info("jobboard listening", zap.String("addr", "http://"+ln.Addr().String()), zap.String("data_dir", dataDir))

	srv := &http.Server{
		Handler:           httpapi.NewHandler(deps),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
