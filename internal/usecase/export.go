package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"paper-insights/internal/domain/ports"
)

// Export file names, one per API route.
const (
	PaperCountsFile             = "paper-counts.json"
	PatentCitationsFile         = "patent-citations.json"
	CitationNetworkFile         = "citation-network.json"
	EnhancedCitationNetworkFile = "enhanced-citation-network.json"
	CollaborationNetworkFile    = "collaboration-network.json"
)

// Exporter writes every API payload to disk so the dashboard can be served
// from static files.
type Exporter struct {
	metrics        *Metrics
	citations      *CitationNetwork
	collaborations *CollaborationNetwork
	logger         ports.Logger
}

// NewExporter constructs an Exporter.
func NewExporter(metrics *Metrics, citations *CitationNetwork, collaborations *CollaborationNetwork, logger ports.Logger) *Exporter {
	return &Exporter{
		metrics:        metrics,
		citations:      citations,
		collaborations: collaborations,
		logger:         logger,
	}
}

// Export writes the payloads into dir, creating it if needed. Network payloads
// that failed to build are still written with their error message.
func (e *Exporter) Export(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	paperCounts, err := e.metrics.PaperCounts(ctx)
	if err != nil {
		return fmt.Errorf("paper counts: %w", err)
	}
	patents, err := e.metrics.PatentCitations(ctx)
	if err != nil {
		return fmt.Errorf("patent citations: %w", err)
	}

	citationNet, citeErr := e.citations.Build(ctx)
	enhancedNet, enhancedErr := e.citations.BuildEnhanced(ctx)
	collabNet, collabErr := e.collaborations.Build(ctx)

	payloads := []struct {
		name string
		data any
	}{
		{PaperCountsFile, paperCounts},
		{PatentCitationsFile, patents},
		{CitationNetworkFile, citationNet},
		{EnhancedCitationNetworkFile, enhancedNet},
		{CollaborationNetworkFile, collabNet},
	}

	for _, p := range payloads {
		if err := writeJSON(filepath.Join(dir, p.name), p.data); err != nil {
			return err
		}
	}

	if citeErr != nil {
		e.logger.Warn(ctx, "citation network exported with error", "error", citeErr)
	}
	if enhancedErr != nil {
		e.logger.Warn(ctx, "enhanced citation network exported with error", "error", enhancedErr)
	}
	if collabErr != nil {
		e.logger.Warn(ctx, "collaboration network exported with error", "error", collabErr)
	}
	e.logger.Info(ctx, "export completed", "dir", dir, "files", len(payloads))
	return nil
}

func writeJSON(path string, data any) error {
	body, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	body = append(body, '\n')
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
