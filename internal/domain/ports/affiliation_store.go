package ports

import (
	"context"

	"paper-insights/internal/domain/model"
)

// AffiliationStore answers queries over the loaded authorship export. Only the
// first paperLimit distinct papers, in file order, are considered.
type AffiliationStore interface {
	AuthorStats(ctx context.Context, paperLimit int) ([]model.AuthorStats, error)
	CollaborationPairs(ctx context.Context, paperLimit int) ([]model.CollaborationPair, error)
}
