// internal/server/handlers/search.go

package handlers

import (
	"net/http"
	"time"

	"odyssey/internal/domain/discover"
	"odyssey/internal/domain/journal"
)

// SearchHandler handles unified search HTTP requests
type SearchHandler struct {
	service discover.Service
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(service discover.Service) *SearchHandler {
	return &SearchHandler{
		service: service,
	}
}

// Search runs a unified search across posts, users and locations
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	filter := discover.SearchFilter{
		Username: r.URL.Query().Get("username"),
		Category: r.URL.Query().Get("category"),
	}

	// Parse sort mode
	switch r.URL.Query().Get("sort") {
	case "popular":
		filter.Sort = journal.SortPopular
	case "trending":
		filter.Sort = journal.SortTrending
	default:
		filter.Sort = journal.SortRecent
	}

	// Parse date range (inclusive bounds)
	if fromStr := r.URL.Query().Get("date_from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid date_from", err)
			return
		}
		filter.DateFrom = &from
	}

	if toStr := r.URL.Query().Get("date_to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid date_to", err)
			return
		}
		filter.DateTo = &to
	}

	result, err := h.service.Search(r.Context(), query, filter)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to search", err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}
