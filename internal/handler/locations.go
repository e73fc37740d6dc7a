package handler

import (
	"context"
	"net/http"
	"strconv"

	"industrial-land-api/internal/catalog"
	"industrial-land-api/internal/models"

	"github.com/gin-gonic/gin"
)

// LocationHandler handles record-level catalog queries
type LocationHandler struct {
	service LocationService
}

// LocationService interface for dependency injection
type LocationService interface {
	Filter(context.Context, catalog.Criteria) ([]models.LocationRecord, error)
	ByIndustry(context.Context, string) ([]models.LocationRecord, error)
	ByLocation(context.Context, string, *string) ([]models.LocationRecord, error)
	Get(context.Context, int) (*models.LocationRecord, error)
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(svc LocationService) *LocationHandler {
	return &LocationHandler{service: svc}
}

// List handles GET /locations requests
//
// @Summary      Filter locations
// @Description  Returns the records matching every supplied filter. Omitted filters impose no constraint; the price range is inclusive.
// @Tags         locations
// @Produce      json
// @Param        state      query     string  false  "State, exact match"
// @Param        district   query     string  false  "District, exact match"
// @Param        industry   query     string  false  "Suitability label, exact match"
// @Param        min_price  query     number  false  "Minimum land price"
// @Param        max_price  query     number  false  "Maximum land price"
// @Success      200        {array}   models.LocationRecord
// @Failure      400        {object}  ErrorResponse
// @Failure      500        {object}  ErrorResponse
// @Router       /locations [get]
func (h *LocationHandler) List(c *gin.Context) {
	crit, msg := criteriaFromQuery(c)
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	locations, err := h.service.Filter(c.Request.Context(), crit)
	if err != nil {
		respondError(c, err, "no locations found")
		return
	}

	c.JSON(http.StatusOK, locations)
}

// ByIndustry handles GET /locations/by-industry requests
//
// @Summary      Locations by industry
// @Description  Returns every record whose suitability labels contain the industry type. Matching is exact and case-sensitive.
// @Tags         locations
// @Produce      json
// @Param        type  query     string  true  "Industry type"
// @Success      200   {array}   models.LocationRecord
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /locations/by-industry [get]
func (h *LocationHandler) ByIndustry(c *gin.Context) {
	industry, ok := c.GetQuery("type")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'type'"})
		return
	}

	locations, err := h.service.ByIndustry(c.Request.Context(), industry)
	if err != nil {
		respondError(c, err, "no locations found")
		return
	}

	c.JSON(http.StatusOK, locations)
}

// ByLocation handles GET /locations/by-location requests
//
// @Summary      Locations by state and district
// @Description  Returns the records in the state and, when given, the district.
// @Tags         locations
// @Produce      json
// @Param        state     query     string  true   "State"
// @Param        district  query     string  false  "District"
// @Success      200       {array}   models.LocationRecord
// @Failure      400       {object}  ErrorResponse
// @Failure      500       {object}  ErrorResponse
// @Router       /locations/by-location [get]
func (h *LocationHandler) ByLocation(c *gin.Context) {
	state, ok := c.GetQuery("state")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'state'"})
		return
	}

	locations, err := h.service.ByLocation(c.Request.Context(), state, optionalQuery(c, "district"))
	if err != nil {
		respondError(c, err, "no locations found")
		return
	}

	c.JSON(http.StatusOK, locations)
}

// Get handles GET /locations/:id requests
//
// @Summary      Location details
// @Tags         locations
// @Produce      json
// @Param        id   path      int  true  "Location ID"
// @Success      200  {object}  models.LocationRecord
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /locations/{id} [get]
func (h *LocationHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location id"})
		return
	}

	location, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "location not found")
		return
	}

	c.JSON(http.StatusOK, location)
}
