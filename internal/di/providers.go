package di

import (
	"context"
	"os"

	"paper-insights/internal/adapter/httpapi"
	"paper-insights/internal/adapter/logging"
	"paper-insights/internal/adapter/store"
	"paper-insights/internal/adapter/watcher"
	"paper-insights/internal/app"
	"paper-insights/internal/config"
	"paper-insights/internal/domain/model"
	"paper-insights/internal/domain/ports"
	"paper-insights/internal/usecase"
)

func provideLogger(cfg *config.Config) *logging.SLogger {
	return logging.NewJSON(os.Stdout, cfg.LogLevel)
}

func provideStore(cfg *config.Config, logger ports.Logger) (*store.Store, func(), error) {
	s, err := store.Open(context.Background(), cfg.DatabasePath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := s.Close(); err != nil {
			logger.Error(context.Background(), "failed to close store", "error", err)
		}
	}
	return s, cleanup, nil
}

func provideDatasetPaths(cfg *config.Config) usecase.DatasetPaths {
	return usecase.DatasetPaths{
		Citations:    cfg.CitationsPath(),
		Affiliations: cfg.AffiliationsPath(),
	}
}

func provideMetrics(cfg *config.Config, logger ports.Logger) *usecase.Metrics {
	return usecase.NewMetrics(cfg.RandomSeed, logger)
}

func provideCitationConfig(cfg *config.Config) usecase.CitationNetworkConfig {
	return usecase.CitationNetworkConfig{
		Years:       model.YearRange{Min: cfg.CitationMinYear, Max: cfg.CitationMaxYear},
		Institution: cfg.Institution,
	}
}

func provideCollaborationConfig(cfg *config.Config) usecase.CollaborationNetworkConfig {
	return usecase.CollaborationNetworkConfig{
		PaperLimit:  cfg.CollaborationPaperLimit,
		Institution: cfg.Institution,
	}
}

func provideRouterConfig(cfg *config.Config) httpapi.RouterConfig {
	return httpapi.RouterConfig{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		RequestTimeout: cfg.RequestTimeout,
	}
}

// provideWatcher returns a nil interface when watching is disabled so App can
// tell the difference.
func provideWatcher(cfg *config.Config, refresher *usecase.DatasetRefresher, logger ports.Logger) app.Watcher {
	if !cfg.WatchData {
		return nil
	}
	paths := refresher.Paths()
	return watcher.New([]string{paths.Citations, paths.Affiliations}, refresher, logger, watcher.DefaultDebounce)
}

func provideSettings(cfg *config.Config) app.Settings {
	return app.Settings{
		Addr:            cfg.HTTPAddr,
		Schedule:        cfg.ReloadCron,
		MaxConnections:  cfg.MaxConnections,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}
}
