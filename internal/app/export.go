package app

import (
	"context"
	"fmt"
)

// Exporter writes the API payloads to a directory.
type Exporter interface {
	Export(ctx context.Context, dir string) error
}

// ExportJob loads the datasets and writes every API payload to disk.
type ExportJob struct {
	refresher Refresher
	exporter  Exporter
}

// NewExportJob constructs an ExportJob.
func NewExportJob(refresher Refresher, exporter Exporter) *ExportJob {
	return &ExportJob{refresher: refresher, exporter: exporter}
}

// Run refreshes the datasets once and exports into dir.
func (j *ExportJob) Run(ctx context.Context, dir string) error {
	if err := j.refresher.Refresh(ctx); err != nil {
		return fmt.Errorf("load datasets: %w", err)
	}
	return j.exporter.Export(ctx, dir)
}
