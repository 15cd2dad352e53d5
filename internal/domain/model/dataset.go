package model

import (
	"errors"
	"fmt"
)

// Dataset names a CSV export the service reads.
type Dataset string

const (
	DatasetCitations    Dataset = "citations"
	DatasetAffiliations Dataset = "affiliations"
)

// ErrDatasetNotFound reports that a dataset file is absent.
var ErrDatasetNotFound = errors.New("dataset not found")

// ErrDatasetNotLoaded reports that no load of a dataset has been attempted yet.
var ErrDatasetNotLoaded = errors.New("dataset not loaded")

// DatasetError carries the dataset and file path behind ErrDatasetNotFound.
type DatasetError struct {
	Dataset Dataset
	Path    string
}

func (e *DatasetError) Error() string {
	return fmt.Sprintf("%s dataset not found at %s", e.Dataset, e.Path)
}

// Unwrap lets errors.Is match ErrDatasetNotFound.
func (e *DatasetError) Unwrap() error {
	return ErrDatasetNotFound
}

// YearRange is an inclusive range of publication years.
type YearRange struct {
	Min int
	Max int
}

// Contains reports whether year falls inside the range.
func (r YearRange) Contains(year int) bool {
	return year >= r.Min && year <= r.Max
}

// CitationRecord is one row of the citation export.
type CitationRecord struct {
	CitingPaperID string
	CitedPaperID  string
	Year          int
	RefYear       int
}

// CitationPair aggregates how often one paper cites another.
type CitationPair struct {
	CitedPaperID  string
	CitingPaperID string
	Times         int
}

// AffiliationRecord is one row of the authorship export. Position is nil when
// the raw author_position value could not be interpreted.
type AffiliationRecord struct {
	PaperID       string
	AuthorID      string
	InstitutionID string
	Position      *int
}

// AuthorStats summarises the distinct papers an author appears on.
type AuthorStats struct {
	AuthorID          string
	PapersPublished   int
	FirstAuthorPapers int
	CorrAuthorPapers  int
}

// CollaborationPair counts the papers two authors share. SourceAuthorID sorts
// before TargetAuthorID.
type CollaborationPair struct {
	SourceAuthorID string
	TargetAuthorID string
	SharedPapers   int
}

// Author position codes after cleaning.
const (
	PositionFirst         = 1
	PositionMiddle        = 2
	PositionCorresponding = -1
)

// CitationBatch is the result of reading a citation export.
type CitationBatch struct {
	Records []CitationRecord
	Skipped int
}

// AffiliationBatch is the result of reading an authorship export.
type AffiliationBatch struct {
	Records []AffiliationRecord
	// Unpositioned counts rows whose author_position could not be cleaned.
	Unpositioned int
}
