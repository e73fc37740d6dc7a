package handler

import (
	"context"
	"net/http"
	"strconv"

	"industrial-land-api/internal/catalog"
	"industrial-land-api/internal/middleware"
	"industrial-land-api/internal/service"

	"github.com/gin-gonic/gin"
)

// MapHandler serves GeoJSON for the map view
type MapHandler struct {
	service MapService
}

// MapService interface for dependency injection
type MapService interface {
	Features(context.Context, catalog.Criteria) (*service.MapFeatures, error)
}

// NewMapHandler creates a new map handler
func NewMapHandler(svc MapService) *MapHandler {
	return &MapHandler{service: svc}
}

// Features handles GET /map/features requests
//
// @Summary      Map features
// @Description  Filtered records as a GeoJSON FeatureCollection. Records without coordinates are left out and counted in X-Unplaced-Count.
// @Tags         map
// @Produce      json
// @Param        state      query     string  false  "State, exact match"
// @Param        district   query     string  false  "District, exact match"
// @Param        industry   query     string  false  "Suitability label, exact match"
// @Param        min_price  query     number  false  "Minimum land price"
// @Param        max_price  query     number  false  "Maximum land price"
// @Success      200        {object}  object
// @Header       200        {integer}  X-Unplaced-Count  "Matching records without coordinates"
// @Failure      400        {object}  ErrorResponse
// @Failure      500        {object}  ErrorResponse
// @Router       /map/features [get]
func (h *MapHandler) Features(c *gin.Context) {
	crit, msg := criteriaFromQuery(c)
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	result, err := h.service.Features(c.Request.Context(), crit)
	if err != nil {
		respondError(c, err, "no locations found")
		return
	}

	c.Header(middleware.UnplacedCountHeader, strconv.Itoa(result.Unplaced))
	c.JSON(http.StatusOK, result.Collection)
}
