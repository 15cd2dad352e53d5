package store

import (
	"context"
	"fmt"

	"paper-insights/internal/domain/model"
)

// Citations returns the citation rows whose year is inside years, in file order.
func (s *Store) Citations(ctx context.Context, years model.YearRange) ([]model.CitationRecord, error) {
	if err := s.requireLoaded(ctx, model.DatasetCitations); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT citing, cited, year, ref_year
		FROM citations
		WHERE year BETWEEN ? AND ?
		ORDER BY seq`, years.Min, years.Max)
	if err != nil {
		return nil, fmt.Errorf("query citations: %w", err)
	}
	defer rows.Close()

	var records []model.CitationRecord
	for rows.Next() {
		var r model.CitationRecord
		if err := rows.Scan(&r.CitingPaperID, &r.CitedPaperID, &r.Year, &r.RefYear); err != nil {
			return nil, fmt.Errorf("scan citation: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// CitationPairs groups the rows inside years by (cited, citing) and counts them.
func (s *Store) CitationPairs(ctx context.Context, years model.YearRange) ([]model.CitationPair, error) {
	if err := s.requireLoaded(ctx, model.DatasetCitations); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT cited, citing, COUNT(*)
		FROM citations
		WHERE year BETWEEN ? AND ?
		GROUP BY cited, citing
		ORDER BY cited, citing`, years.Min, years.Max)
	if err != nil {
		return nil, fmt.Errorf("query citation pairs: %w", err)
	}
	defer rows.Close()

	var pairs []model.CitationPair
	for rows.Next() {
		var p model.CitationPair
		if err := rows.Scan(&p.CitedPaperID, &p.CitingPaperID, &p.Times); err != nil {
			return nil, fmt.Errorf("scan citation pair: %w", err)
		}
		pairs = append(pairs, p)
	}
	return pairs, rows.Err()
}
