package handler

import (
	"context"
	"net/http"

	"industrial-land-api/internal/models"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles free-text location search requests
type SearchHandler struct {
	service SearchService
}

// SearchService interface for dependency injection
type SearchService interface {
	Search(context.Context, string) ([]models.LocationRecord, error)
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(svc SearchService) *SearchHandler {
	return &SearchHandler{service: svc}
}

// Search handles GET /locations/search requests
//
// @Summary      Search locations
// @Description  Case-insensitive substring search over name, district, state and suitability labels. Name matches rank first, then district, state and label matches.
// @Tags         locations
// @Produce      json
// @Param        q    query     string  true  "Search text"
// @Success      200  {array}   models.LocationRecord
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /locations/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'q'"})
		return
	}

	locations, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		respondError(c, err, "no locations found")
		return
	}

	c.JSON(http.StatusOK, locations)
}
