package store

import (
	"context"
	"fmt"

	"paper-insights/internal/domain/model"
)

// usableAffiliations keeps rows of the sampled papers that have a cleaned
// position and both ids.
const usableAffiliations = `
	WITH usable AS (
		SELECT paper_id, author_id, position
		FROM affiliations
		WHERE paper_rank < ?
		  AND position IS NOT NULL
		  AND paper_id <> ''
		  AND author_id <> ''
	)`

// AuthorStats counts distinct papers per author, split by first and
// corresponding authorship.
func (s *Store) AuthorStats(ctx context.Context, paperLimit int) ([]model.AuthorStats, error) {
	if err := s.requireLoaded(ctx, model.DatasetAffiliations); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, usableAffiliations+`
		SELECT author_id,
		       COUNT(DISTINCT paper_id),
		       COUNT(DISTINCT CASE WHEN position = ? THEN paper_id END),
		       COUNT(DISTINCT CASE WHEN position = ? THEN paper_id END)
		FROM usable
		GROUP BY author_id
		ORDER BY author_id`,
		paperLimit, model.PositionFirst, model.PositionCorresponding)
	if err != nil {
		return nil, fmt.Errorf("query author stats: %w", err)
	}
	defer rows.Close()

	var stats []model.AuthorStats
	for rows.Next() {
		var st model.AuthorStats
		if err := rows.Scan(&st.AuthorID, &st.PapersPublished, &st.FirstAuthorPapers, &st.CorrAuthorPapers); err != nil {
			return nil, fmt.Errorf("scan author stats: %w", err)
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

// CollaborationPairs counts the distinct papers each pair of authors shares.
func (s *Store) CollaborationPairs(ctx context.Context, paperLimit int) ([]model.CollaborationPair, error) {
	if err := s.requireLoaded(ctx, model.DatasetAffiliations); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, usableAffiliations+`
		SELECT a.author_id, b.author_id, COUNT(DISTINCT a.paper_id)
		FROM usable a
		JOIN usable b ON a.paper_id = b.paper_id AND a.author_id < b.author_id
		GROUP BY a.author_id, b.author_id
		ORDER BY a.author_id, b.author_id`, paperLimit)
	if err != nil {
		return nil, fmt.Errorf("query collaboration pairs: %w", err)
	}
	defer rows.Close()

	var pairs []model.CollaborationPair
	for rows.Next() {
		var p model.CollaborationPair
		if err := rows.Scan(&p.SourceAuthorID, &p.TargetAuthorID, &p.SharedPapers); err != nil {
			return nil, fmt.Errorf("scan collaboration pair: %w", err)
		}
		pairs = append(pairs, p)
	}
	return pairs, rows.Err()
}
