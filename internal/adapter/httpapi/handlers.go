// Package httpapi exposes the dashboard JSON API over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"paper-insights/internal/domain/model"
	"paper-insights/internal/domain/ports"
)

// MetricsProvider serves the summary series.
type MetricsProvider interface {
	PaperCounts(ctx context.Context) ([]model.PaperCount, error)
	PatentCitations(ctx context.Context) ([]model.PatentCitation, error)
}

// CitationNetworkBuilder serves the citation graphs.
type CitationNetworkBuilder interface {
	Build(ctx context.Context) (model.CitationNetwork, error)
	BuildEnhanced(ctx context.Context) (model.CitationNetwork, error)
}

// CollaborationNetworkBuilder serves the co-authorship graph.
type CollaborationNetworkBuilder interface {
	Build(ctx context.Context) (model.CollaborationNetwork, error)
}

// Handlers provides HTTP handlers for the API routes.
type Handlers struct {
	metrics        MetricsProvider
	citations      CitationNetworkBuilder
	collaborations CollaborationNetworkBuilder
	logger         ports.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(metrics MetricsProvider, citations CitationNetworkBuilder, collaborations CollaborationNetworkBuilder, logger ports.Logger) *Handlers {
	return &Handlers{
		metrics:        metrics,
		citations:      citations,
		collaborations: collaborations,
		logger:         logger,
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// PaperCounts handles GET /api/paper-counts.
func (h *Handlers) PaperCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.metrics.PaperCounts(r.Context())
	if err != nil {
		h.logger.Error(r.Context(), "paper counts failed", "error", err)
		h.writeJSON(w, r, http.StatusInternalServerError, errorBody{Error: err.Error()})
		return
	}
	h.writeJSON(w, r, http.StatusOK, counts)
}

// PatentCitations handles GET /api/patent-citations.
func (h *Handlers) PatentCitations(w http.ResponseWriter, r *http.Request) {
	citations, err := h.metrics.PatentCitations(r.Context())
	if err != nil {
		h.logger.Error(r.Context(), "patent citations failed", "error", err)
		h.writeJSON(w, r, http.StatusInternalServerError, errorBody{Error: err.Error()})
		return
	}
	h.writeJSON(w, r, http.StatusOK, citations)
}

// The network handlers answer 200 even when the graph could not be built: the
// dashboard reads the error field next to empty nodes and links.

// CitationNetwork handles GET /api/citation-network.
func (h *Handlers) CitationNetwork(w http.ResponseWriter, r *http.Request) {
	network, _ := h.citations.Build(r.Context())
	h.writeJSON(w, r, http.StatusOK, network)
}

// EnhancedCitationNetwork handles GET /api/enhanced-citation-network.
func (h *Handlers) EnhancedCitationNetwork(w http.ResponseWriter, r *http.Request) {
	network, _ := h.citations.BuildEnhanced(r.Context())
	h.writeJSON(w, r, http.StatusOK, network)
}

// CollaborationNetwork handles GET /api/collaboration-network.
func (h *Handlers) CollaborationNetwork(w http.ResponseWriter, r *http.Request) {
	network, _ := h.collaborations.Build(r.Context())
	h.writeJSON(w, r, http.StatusOK, network)
}

func (h *Handlers) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusNotFound, errorBody{Error: "not found"})
}

func (h *Handlers) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusMethodNotAllowed, errorBody{Error: "method not allowed"})
}

func (h *Handlers) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error(r.Context(), "failed to encode response", "path", r.URL.Path, "error", err)
	}
}
