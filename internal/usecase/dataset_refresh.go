package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"paper-insights/internal/domain/model"
	"paper-insights/internal/domain/ports"
)

// DatasetPaths locates the CSV exports on disk.
type DatasetPaths struct {
	Citations    string
	Affiliations string
}

// DatasetRefresher reloads the CSV exports into the store.
type DatasetRefresher struct {
	mu     sync.Mutex
	reader ports.DatasetReader
	writer ports.DatasetWriter
	logger ports.Logger
	paths  DatasetPaths
}

// NewDatasetRefresher constructs a DatasetRefresher.
func NewDatasetRefresher(reader ports.DatasetReader, writer ports.DatasetWriter, logger ports.Logger, paths DatasetPaths) *DatasetRefresher {
	return &DatasetRefresher{
		reader: reader,
		writer: writer,
		logger: logger,
		paths:  paths,
	}
}

// Paths returns the files the refresher reads.
func (d *DatasetRefresher) Paths() DatasetPaths {
	return d.paths
}

// Refresh reads both exports concurrently and swaps them into the store. A
// missing file marks its dataset missing; any other failure keeps the
// previously loaded rows and is returned.
func (d *DatasetRefresher) Refresh(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	start := time.Now()
	var (
		citations    *model.CitationBatch
		affiliations *model.AffiliationBatch
		citeErr      error
		affilErr     error
	)

	// Read failures are kept per dataset so one bad file does not block the other.
	var g errgroup.Group
	g.Go(func() error {
		citations, citeErr = d.reader.ReadCitations(d.paths.Citations)
		return nil
	})
	g.Go(func() error {
		affiliations, affilErr = d.reader.ReadAffiliations(d.paths.Affiliations)
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}

	var errs []error
	if err := d.applyCitations(ctx, citations, citeErr); err != nil {
		errs = append(errs, err)
	}
	if err := d.applyAffiliations(ctx, affiliations, affilErr); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	d.logger.Info(ctx, "datasets refreshed", "duration", time.Since(start))
	return nil
}

func (d *DatasetRefresher) applyCitations(ctx context.Context, batch *model.CitationBatch, readErr error) error {
	path := d.paths.Citations
	if readErr != nil {
		return d.handleReadError(ctx, model.DatasetCitations, path, readErr)
	}
	if err := d.writer.ReplaceCitations(ctx, path, batch.Records); err != nil {
		return fmt.Errorf("store citations: %w", err)
	}
	d.logger.Info(ctx, "citations loaded", "path", path, "rows", len(batch.Records), "skipped", batch.Skipped)
	return nil
}

func (d *DatasetRefresher) applyAffiliations(ctx context.Context, batch *model.AffiliationBatch, readErr error) error {
	path := d.paths.Affiliations
	if readErr != nil {
		return d.handleReadError(ctx, model.DatasetAffiliations, path, readErr)
	}
	if err := d.writer.ReplaceAffiliations(ctx, path, batch.Records); err != nil {
		return fmt.Errorf("store affiliations: %w", err)
	}
	d.logger.Info(ctx, "affiliations loaded", "path", path, "rows", len(batch.Records), "unpositioned", batch.Unpositioned)
	return nil
}

func (d *DatasetRefresher) handleReadError(ctx context.Context, dataset model.Dataset, path string, err error) error {
	if errors.Is(err, model.ErrDatasetNotFound) {
		d.logger.Warn(ctx, "dataset file missing", "dataset", string(dataset), "path", path)
		if markErr := d.writer.MarkMissing(ctx, dataset, path); markErr != nil {
			return fmt.Errorf("mark %s missing: %w", dataset, markErr)
		}
		return nil
	}
	d.logger.Error(ctx, "failed to read dataset", "dataset", string(dataset), "path", path, "error", err)
	readErr := fmt.Errorf("read %s: %w", dataset, err)
	if markErr := d.writer.MarkFailed(ctx, dataset, path, err); markErr != nil {
		return errors.Join(readErr, fmt.Errorf("mark %s failed: %w", dataset, markErr))
	}
	return readErr
}
