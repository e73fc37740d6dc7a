package handler

import (
	"context"
	"net/http"
	"strconv"

	"industrial-land-api/internal/models"

	"github.com/gin-gonic/gin"
)

// NearestHandler handles nearest-location requests
type NearestHandler struct {
	service NearestService
}

// NearestService interface for dependency injection
type NearestService interface {
	Nearest(context.Context, float64, float64) (*models.NearestLocation, error)
}

// NewNearestHandler creates a new nearest handler
func NewNearestHandler(svc NearestService) *NearestHandler {
	return &NearestHandler{service: svc}
}

// Nearest handles GET /locations/nearest requests
//
// @Summary      Nearest location
// @Description  Returns the geolocated record closest to the coordinate, with its great-circle distance.
// @Tags         locations
// @Produce      json
// @Param        lat  query     number  true  "Latitude"
// @Param        lon  query     number  true  "Longitude"
// @Success      200  {object}  models.NearestLocation
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /locations/nearest [get]
func (h *NearestHandler) Nearest(c *gin.Context) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")

	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'lat' and 'lon'"})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return
	}

	location, err := h.service.Nearest(c.Request.Context(), lat, lon)
	if err != nil {
		respondError(c, err, "no location found near the specified coordinates")
		return
	}

	c.JSON(http.StatusOK, location)
}
