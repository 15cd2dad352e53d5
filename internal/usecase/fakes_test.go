package usecase

import (
	"context"
	"sync"

	"paper-insights/internal/domain/model"
)

type fakeCitationStore struct {
	records []model.CitationRecord
	pairs   []model.CitationPair
	err     error
}

func (f *fakeCitationStore) Citations(_ context.Context, years model.YearRange) ([]model.CitationRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.CitationRecord
	for _, r := range f.records {
		if years.Contains(r.Year) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeCitationStore) CitationPairs(_ context.Context, _ model.YearRange) ([]model.CitationPair, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.pairs, nil
}

type fakeAffiliationStore struct {
	stats []model.AuthorStats
	pairs []model.CollaborationPair
	err   error
	limit int
}

func (f *fakeAffiliationStore) AuthorStats(_ context.Context, paperLimit int) ([]model.AuthorStats, error) {
	f.limit = paperLimit
	return f.stats, f.err
}

func (f *fakeAffiliationStore) CollaborationPairs(_ context.Context, _ int) ([]model.CollaborationPair, error) {
	return f.pairs, f.err
}

type fakeReader struct {
	citations    *model.CitationBatch
	affiliations *model.AffiliationBatch
	citeErr      error
	affilErr     error
}

func (f *fakeReader) ReadCitations(string) (*model.CitationBatch, error) {
	return f.citations, f.citeErr
}

func (f *fakeReader) ReadAffiliations(string) (*model.AffiliationBatch, error) {
	return f.affiliations, f.affilErr
}

type fakeWriter struct {
	mu           sync.Mutex
	citations    []model.CitationRecord
	affiliations []model.AffiliationRecord
	missing      map[model.Dataset]string
	failed       map[model.Dataset]error
	replaceErr   error
}

func (f *fakeWriter) ReplaceCitations(_ context.Context, _ string, records []model.CitationRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.citations = records
	return nil
}

func (f *fakeWriter) ReplaceAffiliations(_ context.Context, _ string, records []model.AffiliationRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.affiliations = records
	return nil
}

func (f *fakeWriter) MarkMissing(_ context.Context, dataset model.Dataset, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.missing == nil {
		f.missing = make(map[model.Dataset]string)
	}
	f.missing[dataset] = path
	return nil
}

func (f *fakeWriter) MarkFailed(_ context.Context, dataset model.Dataset, _ string, cause error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failed == nil {
		f.failed = make(map[model.Dataset]error)
	}
	f.failed[dataset] = cause
	return nil
}
