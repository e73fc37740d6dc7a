package handler

import (
	"context"
	"net/http"

	"industrial-land-api/internal/models"

	"github.com/gin-gonic/gin"
)

// InsightHandler serves aggregate and dashboard data
type InsightHandler struct {
	service InsightService
}

// InsightService interface for dependency injection
type InsightService interface {
	RecordCount(context.Context) int
	IndustryCounts(context.Context, string, *string) []models.IndustryCount
	States(context.Context) []string
	Districts(context.Context) []string
	Industries(context.Context) []string
	IndustryTypes(context.Context) []models.IndustryType
	StateSummaries(context.Context) []models.StateIndustrySummary
	CountrySales(context.Context) []models.CountrySales
	GrowthTrend(context.Context) []models.GrowthPoint
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(svc InsightService) *InsightHandler {
	return &InsightHandler{service: svc}
}

// HealthResponse reports liveness and catalog size.
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Records int    `json:"records" example:"12"`
}

// Health handles GET /health requests
//
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health [get]
func (h *InsightHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Records: h.service.RecordCount(c.Request.Context())})
}

// IndustryCounts handles GET /insights/industry-counts requests
//
// @Summary      Industry counts for a region
// @Description  Counts suitability labels across the records in the state and, when given, the district. Highest count first.
// @Tags         insights
// @Produce      json
// @Param        state     query     string  true   "State"
// @Param        district  query     string  false  "District"
// @Success      200       {array}   models.IndustryCount
// @Failure      400       {object}  ErrorResponse
// @Router       /insights/industry-counts [get]
func (h *InsightHandler) IndustryCounts(c *gin.Context) {
	state, ok := c.GetQuery("state")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'state'"})
		return
	}

	c.JSON(http.StatusOK, h.service.IndustryCounts(c.Request.Context(), state, optionalQuery(c, "district")))
}

// States handles GET /insights/states requests
//
// @Summary      Distinct states
// @Tags         insights
// @Produce      json
// @Success      200  {array}  string
// @Router       /insights/states [get]
func (h *InsightHandler) States(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.States(c.Request.Context()))
}

// Districts handles GET /insights/districts requests
//
// @Summary      Distinct districts
// @Tags         insights
// @Produce      json
// @Success      200  {array}  string
// @Router       /insights/districts [get]
func (h *InsightHandler) Districts(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Districts(c.Request.Context()))
}

// Industries handles GET /insights/industries requests
//
// @Summary      Distinct suitability labels
// @Tags         insights
// @Produce      json
// @Success      200  {array}  string
// @Router       /insights/industries [get]
func (h *InsightHandler) Industries(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Industries(c.Request.Context()))
}

// IndustryTypes handles GET /insights/industry-types requests
//
// @Summary      Suggested industry types
// @Tags         insights
// @Produce      json
// @Success      200  {array}  models.IndustryType
// @Router       /insights/industry-types [get]
func (h *InsightHandler) IndustryTypes(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.IndustryTypes(c.Request.Context()))
}

// StateSummaries handles GET /insights/state-summaries requests
//
// @Summary      Per-state industry summaries
// @Tags         insights
// @Produce      json
// @Success      200  {array}  models.StateIndustrySummary
// @Router       /insights/state-summaries [get]
func (h *InsightHandler) StateSummaries(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.StateSummaries(c.Request.Context()))
}

// CountrySales handles GET /insights/country-sales requests
//
// @Summary      Demand by country
// @Tags         insights
// @Produce      json
// @Success      200  {array}  models.CountrySales
// @Router       /insights/country-sales [get]
func (h *InsightHandler) CountrySales(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.CountrySales(c.Request.Context()))
}

// GrowthTrend handles GET /insights/growth-trend requests
//
// @Summary      Monthly sector growth
// @Tags         insights
// @Produce      json
// @Success      200  {array}  models.GrowthPoint
// @Router       /insights/growth-trend [get]
func (h *InsightHandler) GrowthTrend(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.GrowthTrend(c.Request.Context()))
}
