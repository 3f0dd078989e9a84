// internal/server/handlers/discover.go

package handlers

import (
	"net/http"
	"strconv"

	"odyssey/internal/domain/discover"
)

// DiscoverHandler handles discovery HTTP requests
type DiscoverHandler struct {
	service discover.Service
}

// NewDiscoverHandler creates a new discover handler
func NewDiscoverHandler(service discover.Service) *DiscoverHandler {
	return &DiscoverHandler{
		service: service,
	}
}

// GetTrendingLocations returns trending locations over the trailing week
func (h *DiscoverHandler) GetTrendingLocations(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, 10)

	trending, err := h.service.TrendingLocations(r.Context(), limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to get trending locations", err)
		return
	}

	respondWithJSON(w, http.StatusOK, trending)
}

// GetPopularDestinations returns the most-posted destinations
func (h *DiscoverHandler) GetPopularDestinations(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, 10)

	destinations, err := h.service.PopularDestinations(r.Context(), limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to get popular destinations", err)
		return
	}

	respondWithJSON(w, http.StatusOK, destinations)
}

// GetRecommendedPlaces returns recently active places
func (h *DiscoverHandler) GetRecommendedPlaces(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, 10)

	places, err := h.service.RecommendedPlaces(r.Context(), limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to get recommended places", err)
		return
	}

	respondWithJSON(w, http.StatusOK, places)
}

// parseLimit reads a positive limit query parameter, falling back to a default
func parseLimit(r *http.Request, defaultLimit int) int {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return defaultLimit
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		return defaultLimit
	}

	return limit
}
