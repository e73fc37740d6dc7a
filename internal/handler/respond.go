package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"industrial-land-api/internal/catalog"
	"industrial-land-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error" example:"missing required query parameter 'q'"`
}

// respondError maps service errors to status codes. notFound is the message for
// service.ErrNotFound.
func respondError(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	default:
		_ = c.Error(err)
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// optionalQuery distinguishes an absent parameter (nil) from an empty one.
func optionalQuery(c *gin.Context, name string) *string {
	if v, ok := c.GetQuery(name); ok {
		return &v
	}
	return nil
}

func optionalFloat(c *gin.Context, name string, fallback float64) (float64, bool) {
	s, ok := c.GetQuery(name)
	if !ok || s == "" {
		return fallback, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// criteriaFromQuery reads state, district, industry, min_price and max_price. Omitted
// parameters impose no constraint.
func criteriaFromQuery(c *gin.Context) (catalog.Criteria, string) {
	crit := catalog.Criteria{
		State:        optionalQuery(c, "state"),
		District:     optionalQuery(c, "district"),
		IndustryType: optionalQuery(c, "industry"),
		PriceRange:   catalog.AnyPrice,
	}

	var ok bool
	if crit.PriceRange.Min, ok = optionalFloat(c, "min_price", catalog.AnyPrice.Min); !ok {
		return crit, "invalid min_price format"
	}
	if crit.PriceRange.Max, ok = optionalFloat(c, "max_price", catalog.AnyPrice.Max); !ok {
		return crit, "invalid max_price format"
	}
	return crit, ""
}
