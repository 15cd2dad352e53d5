//go:build wireinject

package di

import (
	"github.com/google/wire"

	"paper-insights/internal/adapter/csvdata"
	"paper-insights/internal/adapter/httpapi"
	"paper-insights/internal/adapter/logging"
	"paper-insights/internal/adapter/store"
	"paper-insights/internal/app"
	"paper-insights/internal/config"
	"paper-insights/internal/domain/ports"
	"paper-insights/internal/usecase"
)

var baseSet = wire.NewSet(
	config.Load,
	provideLogger,
	wire.Bind(new(ports.Logger), new(*logging.SLogger)),
	provideStore,
	wire.Bind(new(ports.CitationStore), new(*store.Store)),
	wire.Bind(new(ports.AffiliationStore), new(*store.Store)),
	wire.Bind(new(ports.DatasetWriter), new(*store.Store)),
	csvdata.NewReader,
	wire.Bind(new(ports.DatasetReader), new(csvdata.Reader)),
	provideDatasetPaths,
	usecase.NewDatasetRefresher,
	wire.Bind(new(app.Refresher), new(*usecase.DatasetRefresher)),
	provideMetrics,
	provideCitationConfig,
	usecase.NewCitationNetwork,
	provideCollaborationConfig,
	usecase.NewCollaborationNetwork,
)

// InitializeApp wires the API server together.
func InitializeApp() (*app.App, func(), error) {
	wire.Build(
		baseSet,
		httpapi.NewHandlers,
		wire.Bind(new(httpapi.MetricsProvider), new(*usecase.Metrics)),
		wire.Bind(new(httpapi.CitationNetworkBuilder), new(*usecase.CitationNetwork)),
		wire.Bind(new(httpapi.CollaborationNetworkBuilder), new(*usecase.CollaborationNetwork)),
		provideRouterConfig,
		httpapi.NewRouter,
		provideWatcher,
		provideSettings,
		app.New,
	)
	return nil, nil, nil
}

// InitializeExport wires the offline export job together.
func InitializeExport() (*app.ExportJob, func(), error) {
	wire.Build(
		baseSet,
		usecase.NewExporter,
		wire.Bind(new(app.Exporter), new(*usecase.Exporter)),
		app.NewExportJob,
	)
	return nil, nil, nil
}
