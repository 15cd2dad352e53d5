package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/net/netutil"
	"golang.org/x/sync/errgroup"

	"paper-insights/internal/domain/ports"
)

// Refresher reloads the datasets behind the API.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Watcher runs until its context is cancelled.
type Watcher interface {
	Run(ctx context.Context) error
}

// Settings holds the lifecycle knobs of the App.
type Settings struct {
	Addr            string
	Schedule        string
	MaxConnections  int
	ShutdownTimeout time.Duration
}

// App manages the lifecycle of the API server and its dataset refreshes.
type App struct {
	cron      *cron.Cron
	refresher Refresher
	watcher   Watcher
	handler   http.Handler
	logger    ports.Logger
	settings  Settings
}

// New constructs an App instance. A nil watcher disables file watching and an
// empty schedule disables periodic refreshes.
func New(refresher Refresher, watcher Watcher, handler http.Handler, logger ports.Logger, settings Settings) *App {
	if settings.ShutdownTimeout <= 0 {
		settings.ShutdownTimeout = 5 * time.Second
	}
	return &App{
		cron:      cron.New(),
		refresher: refresher,
		watcher:   watcher,
		handler:   handler,
		logger:    logger,
		settings:  settings,
	}
}

// Run listens on the configured address and serves until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.settings.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", a.settings.Addr, err)
	}
	return a.Serve(ctx, ln)
}

// Serve loads the datasets once, then serves HTTP on ln while the scheduler
// and watcher keep the datasets fresh. It returns after a graceful shutdown.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	if a.settings.MaxConnections > 0 {
		ln = netutil.LimitListener(ln, a.settings.MaxConnections)
	}

	if err := a.scheduleJob(); err != nil {
		_ = ln.Close()
		return err
	}

	a.logger.Info(ctx, "loading datasets")
	if err := a.refresher.Refresh(ctx); err != nil {
		a.logger.Error(ctx, "initial dataset load failed", "error", err)
	}

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Handler:           a.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
	}

	if a.settings.Schedule != "" {
		a.logger.Info(ctx, "starting scheduler", "cron", a.settings.Schedule)
		a.cron.Start()
	}

	if a.watcher != nil {
		eg.Go(func() error {
			if err := a.watcher.Run(egctx); err != nil {
				a.logger.Error(egctx, "data watcher stopped", "error", err)
			}
			return nil
		})
	}

	eg.Go(func() error {
		a.logger.Info(ctx, "http server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.settings.ShutdownTimeout)
		defer cancel()

		stopCtx := a.cron.Stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		select {
		case <-stopCtx.Done():
		case <-shutdownCtx.Done():
		}
		a.logger.Info(context.Background(), "server stopped")
		return nil
	})

	return eg.Wait()
}

func (a *App) scheduleJob() error {
	if a.settings.Schedule == "" {
		return nil
	}
	_, err := a.cron.AddFunc(a.settings.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := a.refresher.Refresh(ctx); err != nil {
			a.logger.Error(ctx, "scheduled dataset refresh failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", a.settings.Schedule, err)
	}
	return nil
}
