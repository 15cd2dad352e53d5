package ports

import (
	"context"

	"paper-insights/internal/domain/model"
)

// CitationStore answers queries over the loaded citation export.
type CitationStore interface {
	Citations(ctx context.Context, years model.YearRange) ([]model.CitationRecord, error)
	CitationPairs(ctx context.Context, years model.YearRange) ([]model.CitationPair, error)
}
