package ports

import (
	"context"

	"paper-insights/internal/domain/model"
)

// DatasetReader parses the CSV exports from disk.
type DatasetReader interface {
	ReadCitations(path string) (*model.CitationBatch, error)
	ReadAffiliations(path string) (*model.AffiliationBatch, error)
}

// DatasetWriter swaps freshly read datasets into the store.
type DatasetWriter interface {
	ReplaceCitations(ctx context.Context, path string, records []model.CitationRecord) error
	ReplaceAffiliations(ctx context.Context, path string, records []model.AffiliationRecord) error
	MarkMissing(ctx context.Context, dataset model.Dataset, path string) error
	MarkFailed(ctx context.Context, dataset model.Dataset, path string, cause error) error
}
