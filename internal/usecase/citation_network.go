package usecase

import (
	"context"
	"errors"
	"fmt"

	"paper-insights/internal/domain/model"
	"paper-insights/internal/domain/ports"
)

const (
	enhancedTopic       = "Computer Science"
	impactPerCitation   = 0.8
	impactBaseline      = 2.0
	citationMissingText = "The CSV file for the citation network could not be found. Please check the path: %s"
	citationFailedText  = "Data processing failed: %v"
)

// CitationNetworkConfig controls which rows feed the citation graph.
type CitationNetworkConfig struct {
	Years       model.YearRange
	Institution string
}

// CitationNetwork builds the paper citation graph from the citation store.
type CitationNetwork struct {
	store       ports.CitationStore
	logger      ports.Logger
	years       model.YearRange
	institution string
}

// NewCitationNetwork constructs a CitationNetwork use case.
func NewCitationNetwork(store ports.CitationStore, logger ports.Logger, cfg CitationNetworkConfig) *CitationNetwork {
	return &CitationNetwork{
		store:       store,
		logger:      logger,
		years:       cfg.Years,
		institution: cfg.Institution,
	}
}

// Build returns the citation graph. On failure the returned network carries
// an error message and empty node and link lists alongside the error.
func (c *CitationNetwork) Build(ctx context.Context) (model.CitationNetwork, error) {
	return c.build(ctx, false)
}

// BuildEnhanced is Build with a topic and impact score on every node.
func (c *CitationNetwork) BuildEnhanced(ctx context.Context) (model.CitationNetwork, error) {
	return c.build(ctx, true)
}

type paperInfo struct {
	citingYear   int
	cites        bool
	refYear      int
	cited        bool
	citedByCount int
}

func (c *CitationNetwork) build(ctx context.Context, enhanced bool) (model.CitationNetwork, error) {
	records, err := c.store.Citations(ctx, c.years)
	if err != nil {
		return c.failure(ctx, err)
	}
	pairs, err := c.store.CitationPairs(ctx, c.years)
	if err != nil {
		return c.failure(ctx, err)
	}

	papers := make(map[string]*paperInfo)
	info := func(id string) *paperInfo {
		p, ok := papers[id]
		if !ok {
			p = &paperInfo{}
			papers[id] = p
		}
		return p
	}

	// Citing ids come first in appearance order, then ids that are only cited.
	order := make([]string, 0)
	listed := make(map[string]struct{})
	for _, r := range records {
		citing := info(r.CitingPaperID)
		if !citing.cites {
			citing.cites = true
			citing.citingYear = r.Year
		}
		if _, ok := listed[r.CitingPaperID]; !ok {
			listed[r.CitingPaperID] = struct{}{}
			order = append(order, r.CitingPaperID)
		}

		cited := info(r.CitedPaperID)
		if !cited.cited {
			cited.cited = true
			cited.refYear = r.RefYear
		}
		cited.citedByCount++
	}
	for _, r := range records {
		if _, ok := listed[r.CitedPaperID]; !ok {
			listed[r.CitedPaperID] = struct{}{}
			order = append(order, r.CitedPaperID)
		}
	}

	network := model.CitationNetwork{
		Nodes: make([]model.PaperNode, 0, len(order)),
		Links: make([]model.CitationLink, 0, len(pairs)),
	}

	for _, id := range order {
		p := papers[id]
		node := model.PaperNode{
			ID:            id,
			Name:          "Paper_" + id,
			PublishYear:   p.publishYear(),
			CitationCount: p.citedByCount,
			Institution:   c.institution,
		}
		if enhanced {
			score := float64(p.citedByCount)*impactPerCitation + impactBaseline
			node.Topic = enhancedTopic
			node.ImpactScore = &score
		}
		network.Nodes = append(network.Nodes, node)
	}

	for _, pair := range pairs {
		citing, okCiting := papers[pair.CitingPaperID]
		cited, okCited := papers[pair.CitedPaperID]
		if !okCiting || !okCited || !citing.cites || !cited.cited {
			continue
		}
		network.Links = append(network.Links, model.CitationLink{
			Source:     pair.CitedPaperID,
			Target:     pair.CitingPaperID,
			Value:      pair.Times,
			CitingYear: citing.citingYear,
			CitedYear:  cited.refYear,
			YearDiff:   citing.citingYear - cited.refYear,
		})
	}

	return network, nil
}

func (p *paperInfo) publishYear() int {
	if p.cites {
		return p.citingYear
	}
	return p.refYear
}

func (c *CitationNetwork) failure(ctx context.Context, err error) (model.CitationNetwork, error) {
	network := model.CitationNetwork{
		Nodes: []model.PaperNode{},
		Links: []model.CitationLink{},
	}

	var dsErr *model.DatasetError
	if errors.As(err, &dsErr) {
		network.Error = fmt.Sprintf(citationMissingText, dsErr.Path)
		c.logger.Warn(ctx, "citation dataset unavailable", "path", dsErr.Path)
	} else {
		network.Error = fmt.Sprintf(citationFailedText, err)
		c.logger.Error(ctx, "failed to build citation network", "error", err)
	}
	return network, err
}
