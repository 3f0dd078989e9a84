// internal/server/handlers/mapview.go

package handlers

import (
	"net/http"

	"odyssey/internal/domain/geo"
)

// MapHandler handles map-related HTTP requests
type MapHandler struct {
	mapper geo.Mapper
}

// NewMapHandler creates a new map handler
func NewMapHandler(mapper geo.Mapper) *MapHandler {
	return &MapHandler{
		mapper: mapper,
	}
}

// GetPostLocations returns clustered post locations with viewport parameters
func (h *MapHandler) GetPostLocations(w http.ResponseWriter, r *http.Request) {
	view, err := h.mapper.PostLocations(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to get post locations", err)
		return
	}

	respondWithJSON(w, http.StatusOK, view)
}
