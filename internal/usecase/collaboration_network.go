package usecase

import (
	"context"
	"errors"
	"fmt"

	"paper-insights/internal/domain/model"
	"paper-insights/internal/domain/ports"
)

const (
	maxHIndex                = 15
	collaborationMissingText = "The CSV file for the author collaboration network could not be found.：%s"
	collaborationFailedText  = "Author collaboration network data processing failed：%v"
)

// CollaborationNetworkConfig controls the sample behind the collaboration graph.
type CollaborationNetworkConfig struct {
	PaperLimit  int
	Institution string
}

// CollaborationNetwork builds the author co-authorship graph.
type CollaborationNetwork struct {
	store       ports.AffiliationStore
	logger      ports.Logger
	paperLimit  int
	institution string
}

// NewCollaborationNetwork constructs a CollaborationNetwork use case.
func NewCollaborationNetwork(store ports.AffiliationStore, logger ports.Logger, cfg CollaborationNetworkConfig) *CollaborationNetwork {
	return &CollaborationNetwork{
		store:       store,
		logger:      logger,
		paperLimit:  cfg.PaperLimit,
		institution: cfg.Institution,
	}
}

// Build returns the collaboration graph over the first PaperLimit papers.
// On failure the returned network carries an error message alongside the error.
func (c *CollaborationNetwork) Build(ctx context.Context) (model.CollaborationNetwork, error) {
	stats, err := c.store.AuthorStats(ctx, c.paperLimit)
	if err != nil {
		return c.failure(ctx, err)
	}
	pairs, err := c.store.CollaborationPairs(ctx, c.paperLimit)
	if err != nil {
		return c.failure(ctx, err)
	}

	network := model.CollaborationNetwork{
		Nodes: make([]model.AuthorNode, 0, len(stats)),
		Links: make([]model.CollaborationLink, 0, len(pairs)),
	}

	authors := make(map[string]struct{}, len(stats))
	for _, st := range stats {
		authors[st.AuthorID] = struct{}{}
		network.Nodes = append(network.Nodes, model.AuthorNode{
			ID:                st.AuthorID,
			Name:              "Author_" + st.AuthorID,
			Department:        c.institution,
			PapersPublished:   st.PapersPublished,
			FirstAuthorPapers: st.FirstAuthorPapers,
			CorrAuthorPapers:  st.CorrAuthorPapers,
			HIndex:            min(st.PapersPublished, maxHIndex),
		})
	}

	for _, pair := range pairs {
		_, okSource := authors[pair.SourceAuthorID]
		_, okTarget := authors[pair.TargetAuthorID]
		if !okSource || !okTarget {
			continue
		}
		network.Links = append(network.Links, model.CollaborationLink{
			Source:           pair.SourceAuthorID,
			Target:           pair.TargetAuthorID,
			Value:            pair.SharedPapers,
			CoAuthoredPapers: pair.SharedPapers,
		})
	}

	return network, nil
}

func (c *CollaborationNetwork) failure(ctx context.Context, err error) (model.CollaborationNetwork, error) {
	network := model.CollaborationNetwork{
		Nodes: []model.AuthorNode{},
		Links: []model.CollaborationLink{},
	}

	var dsErr *model.DatasetError
	if errors.As(err, &dsErr) {
		network.Error = fmt.Sprintf(collaborationMissingText, dsErr.Path)
		c.logger.Warn(ctx, "affiliation dataset unavailable", "path", dsErr.Path)
	} else {
		network.Error = fmt.Sprintf(collaborationFailedText, err)
		c.logger.Error(ctx, "failed to build collaboration network", "error", err)
	}
	return network, err
}
