// Package csvdata reads the bibliometric CSV exports the service is built on.
package csvdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"paper-insights/internal/domain/model"
	"paper-insights/internal/domain/ports"
)

var citationColumns = []string{"citing_paperid", "cited_paperid", "year", "ref_year"}

var affiliationColumns = []string{"paperid", "authorid", "author_position"}

// Reader implements ports.DatasetReader on top of encoding/csv.
type Reader struct{}

var _ ports.DatasetReader = Reader{}

// NewReader creates a CSV dataset reader.
func NewReader() Reader {
	return Reader{}
}

// ReadCitations parses a citation export. Rows without both paper ids or with
// a non-integer year are skipped and counted.
func (Reader) ReadCitations(path string) (*model.CitationBatch, error) {
	batch := &model.CitationBatch{}
	err := readRows(path, model.DatasetCitations, citationColumns, func(get func(string) string) {
		citing := strings.TrimSpace(get("citing_paperid"))
		cited := strings.TrimSpace(get("cited_paperid"))
		year, okYear := parseInt(get("year"))
		refYear, okRef := parseInt(get("ref_year"))
		if citing == "" || cited == "" || !okYear || !okRef {
			batch.Skipped++
			return
		}
		batch.Records = append(batch.Records, model.CitationRecord{
			CitingPaperID: citing,
			CitedPaperID:  cited,
			Year:          year,
			RefYear:       refYear,
		})
	})
	if err != nil {
		return nil, err
	}
	return batch, nil
}

// ReadAffiliations parses an authorship export. Every row is kept so paper
// sampling sees the file order; unusable positions are left nil.
func (Reader) ReadAffiliations(path string) (*model.AffiliationBatch, error) {
	batch := &model.AffiliationBatch{}
	err := readRows(path, model.DatasetAffiliations, affiliationColumns, func(get func(string) string) {
		rec := model.AffiliationRecord{
			PaperID:       strings.TrimSpace(get("paperid")),
			AuthorID:      strings.TrimSpace(get("authorid")),
			InstitutionID: strings.TrimSpace(get("institutionid")),
		}
		if pos, ok := CleanAuthorPosition(get("author_position")); ok {
			rec.Position = &pos
		} else {
			batch.Unpositioned++
		}
		batch.Records = append(batch.Records, rec)
	})
	if err != nil {
		return nil, err
	}
	return batch, nil
}

func readRows(path string, dataset model.Dataset, required []string, row func(get func(string) string)) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &model.DatasetError{Dataset: dataset, Path: path}
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.ReuseRecord = true

	header, err := r.Read()
	if err == io.EOF {
		return fmt.Errorf("%s: empty file", path)
	}
	if err != nil {
		return fmt.Errorf("read header of %s: %w", path, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		index[strings.ToLower(name)] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return fmt.Errorf("%s: missing column %q", path, col)
		}
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		row(func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		})
	}
}

// parseInt accepts plain integers and integral floats such as "2021.0", which
// is how spreadsheet tools often export year columns.
func parseInt(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
