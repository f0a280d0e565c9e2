package rest

import (
	"net/http"
	"strings"

	"github.com/beatvard/beatvard-backend/internal/domain/catalog"
)

// CatalogHandler serves read-only catalog endpoints.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates the handler over a catalog snapshot.
func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

type beatsResponse struct {
	Beats []catalog.Beat `json:"beats"`
	Total int            `json:"total"`
}

// Beats handles GET /api/v1/beats. Filters come from query parameters:
// tags is a comma-separated tag selection, q a free-text query.
func (h *CatalogHandler) Beats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
		return
	}

	spec := catalog.FilterSpec{
		SearchQuery: r.URL.Query().Get("q"),
	}
	if tags := r.URL.Query().Get("tags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				spec.SelectedTags = append(spec.SelectedTags, tag)
			}
		}
	}

	visible := catalog.Filter(h.catalog.Beats(), spec)
	writeJSON(w, http.StatusOK, beatsResponse{Beats: visible, Total: len(visible)})
}

// Tags handles GET /api/v1/tags and returns the controlled tag vocabulary.
func (h *CatalogHandler) Tags(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"tags": catalog.KnownTags})
}
