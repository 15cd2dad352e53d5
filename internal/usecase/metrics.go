package usecase

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"paper-insights/internal/domain/model"
	"paper-insights/internal/domain/ports"
)

const (
	paperCountFirstYear = 2014
	paperCountLastYear  = 2023
	paperCountMin       = 5
	paperCountMax       = 35 // exclusive

	patentBuckets  = 15
	patentPaperMin = 5
	patentPaperMax = 55 // exclusive
)

// Metrics produces the dashboard's summary series. The figures are sampled
// placeholders until a publication-count export exists.
type Metrics struct {
	mu     sync.Mutex
	rnd    *rand.Rand
	logger ports.Logger
}

// NewMetrics constructs Metrics. A zero seed seeds from the clock.
func NewMetrics(seed int64, logger ports.Logger) *Metrics {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Metrics{
		rnd:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}
}

// PaperCounts returns one entry per year from 2014 through 2023.
func (m *Metrics) PaperCounts(ctx context.Context) ([]model.PaperCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	counts := make([]model.PaperCount, 0, paperCountLastYear-paperCountFirstYear+1)
	for year := paperCountFirstYear; year <= paperCountLastYear; year++ {
		counts = append(counts, model.PaperCount{
			Year:  year,
			Count: m.between(paperCountMin, paperCountMax),
		})
	}
	return counts, nil
}

// PatentCitations returns one entry per patent count bucket from 0 through 14.
func (m *Metrics) PatentCitations(ctx context.Context) ([]model.PatentCitation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	citations := make([]model.PatentCitation, 0, patentBuckets)
	for i := 0; i < patentBuckets; i++ {
		citations = append(citations, model.PatentCitation{
			PatentCount: i,
			PaperCount:  m.between(patentPaperMin, patentPaperMax),
		})
	}
	return citations, nil
}

// between returns a value in [lo, hi). Callers hold m.mu.
func (m *Metrics) between(lo, hi int) int {
	return lo + m.rnd.Intn(hi-lo)
}
