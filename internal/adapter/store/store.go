// Package store keeps the loaded CSV exports in an embedded SQLite database
// and answers the aggregate queries the network builders need.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"paper-insights/internal/domain/model"
	"paper-insights/internal/domain/ports"
)

// Store is a SQLite-backed dataset store.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

var (
	_ ports.CitationStore    = (*Store)(nil)
	_ ports.AffiliationStore = (*Store)(nil)
	_ ports.DatasetWriter    = (*Store)(nil)
)

// Open opens (or creates) the database at path and bootstraps the schema.
// ":memory:" keeps everything in process.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// An in-memory database lives and dies with its connection, and SQLite
	// allows a single writer anyway.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return &Store{db: db, path: path, now: time.Now}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database location.
func (s *Store) Path() string {
	return s.path
}

// ReplaceCitations swaps the citation dataset for records in one transaction.
func (s *Store) ReplaceCitations(ctx context.Context, path string, records []model.CitationRecord) error {
	return s.replace(ctx, model.DatasetCitations, path, len(records), func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO citations (citing, cited, year, ref_year) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, r := range records {
			if _, err := stmt.ExecContext(ctx, r.CitingPaperID, r.CitedPaperID, r.Year, r.RefYear); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplaceAffiliations swaps the authorship dataset for records in one
// transaction. Each row is tagged with the first-appearance rank of its paper.
func (s *Store) ReplaceAffiliations(ctx context.Context, path string, records []model.AffiliationRecord) error {
	return s.replace(ctx, model.DatasetAffiliations, path, len(records), func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO affiliations (paper_id, author_id, institution_id, position, paper_rank) VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		ranks := make(map[string]int)
		for _, r := range records {
			rank, ok := ranks[r.PaperID]
			if !ok {
				rank = len(ranks)
				ranks[r.PaperID] = rank
			}

			var position sql.NullInt64
			if r.Position != nil {
				position = sql.NullInt64{Int64: int64(*r.Position), Valid: true}
			}

			if _, err := stmt.ExecContext(ctx, r.PaperID, r.AuthorID, r.InstitutionID, position, rank); err != nil {
				return err
			}
		}
		return nil
	})
}

// MarkMissing drops a dataset's rows and records that its file was absent.
func (s *Store) MarkMissing(ctx context.Context, dataset model.Dataset, path string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	table, err := tableFor(dataset)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("clear %s: %w", dataset, err)
	}
	if err := s.upsertDataset(ctx, tx, dataset, path, false, 0); err != nil {
		return err
	}
	return tx.Commit()
}

// MarkFailed records that the file at path could not be read. Rows from an
// earlier successful load are kept and keep being served.
func (s *Store) MarkFailed(ctx context.Context, dataset model.Dataset, path string, cause error) error {
	if _, err := tableFor(dataset); err != nil {
		return err
	}
	reason := "unknown error"
	if cause != nil {
		reason = cause.Error()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO datasets (name, path, loaded, row_count, updated_at, failure)
		VALUES (?, ?, 0, 0, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			path = CASE WHEN datasets.loaded = 1 THEN datasets.path ELSE excluded.path END,
			updated_at = excluded.updated_at,
			failure = excluded.failure`,
		string(dataset), path, s.now().UTC().Format(time.RFC3339), reason)
	if err != nil {
		return fmt.Errorf("record %s failure: %w", dataset, err)
	}
	return nil
}

func (s *Store) replace(ctx context.Context, dataset model.Dataset, path string, rows int, insert func(*sql.Tx) error) error {
	table, err := tableFor(dataset)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("clear %s: %w", dataset, err)
	}
	if err := insert(tx); err != nil {
		return fmt.Errorf("insert %s: %w", dataset, err)
	}
	if err := s.upsertDataset(ctx, tx, dataset, path, true, rows); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", dataset, err)
	}
	return nil
}

func (s *Store) upsertDataset(ctx context.Context, tx *sql.Tx, dataset model.Dataset, path string, loaded bool, rows int) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO datasets (name, path, loaded, row_count, updated_at, failure)
		VALUES (?, ?, ?, ?, ?, '')
		ON CONFLICT(name) DO UPDATE SET
			path = excluded.path,
			loaded = excluded.loaded,
			row_count = excluded.row_count,
			updated_at = excluded.updated_at,
			failure = ''`,
		string(dataset), path, boolToInt(loaded), rows, s.now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("record %s status: %w", dataset, err)
	}
	return nil
}

// DatasetStatus describes the last load of a dataset. Failure holds the error
// of the last read attempt and is empty when it succeeded or the file was
// missing.
type DatasetStatus struct {
	Dataset   model.Dataset
	Path      string
	Loaded    bool
	Rows      int
	UpdatedAt time.Time
	Failure   string
}

// Status returns the recorded state of a dataset. A dataset with no recorded
// load attempt reports ErrDatasetNotLoaded.
func (s *Store) Status(ctx context.Context, dataset model.Dataset) (DatasetStatus, error) {
	st := DatasetStatus{Dataset: dataset}
	var updated string
	err := s.db.QueryRowContext(ctx,
		`SELECT path, loaded, row_count, updated_at, failure FROM datasets WHERE name = ?`, string(dataset)).
		Scan(&st.Path, &st.Loaded, &st.Rows, &updated, &st.Failure)
	if errors.Is(err, sql.ErrNoRows) {
		return st, fmt.Errorf("%s: %w", dataset, model.ErrDatasetNotLoaded)
	}
	if err != nil {
		return st, fmt.Errorf("query %s status: %w", dataset, err)
	}
	st.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
	return st, nil
}

func (s *Store) requireLoaded(ctx context.Context, dataset model.Dataset) error {
	st, err := s.Status(ctx, dataset)
	if err != nil {
		return err
	}
	switch {
	case st.Loaded:
		return nil
	case st.Failure != "":
		return fmt.Errorf("load %s from %s: %s", dataset, st.Path, st.Failure)
	default:
		return &model.DatasetError{Dataset: dataset, Path: st.Path}
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func tableFor(dataset model.Dataset) (string, error) {
	switch dataset {
	case model.DatasetCitations:
		return "citations", nil
	case model.DatasetAffiliations:
		return "affiliations", nil
	default:
		return "", fmt.Errorf("unknown dataset %q", dataset)
	}
}
