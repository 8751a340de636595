// Package handler exposes the places search endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rehabcade/spin-to-eat-v2/internal/geo"
	"github.com/rehabcade/spin-to-eat-v2/internal/places/service"
	"github.com/rehabcade/spin-to-eat-v2/internal/places/transport"
	"github.com/rehabcade/spin-to-eat-v2/platform/httpkit"
	"github.com/rehabcade/spin-to-eat-v2/platform/validator"
)

// Handler handles HTTP requests for places.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// New creates a new places handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Search returns a randomized list of nearby food-and-drink POIs.
// GET /api/v1/places/search
func (h *Handler) Search(c *gin.Context) {
	var req transport.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	// lat and lon only count as the coordinate form when both are present;
	// one without the other is treated as absent and validated downstream.
	var coords *geo.Point
	if req.Lat != nil && req.Lon != nil {
		coords = &geo.Point{Lat: *req.Lat, Lon: *req.Lon}
	}

	openNow := true
	if req.OpenNow != nil {
		openNow = *req.OpenNow
	}

	in := service.SearchInput{
		Location: service.LocationQuery{
			Place:        req.PlaceName(),
			Coords:       coords,
			RadiusMeters: req.Radius,
		},
		Categories: service.NormalizeCategories(req.CategoryList()),
		Limit:      req.Limit,
		OpenNow:    openNow,
	}

	result, err := h.svc.Search(c.Request.Context(), in)
	if httpkit.HandleError(c, err) {
		return
	}

	c.Header("Cache-Control", result.CacheControl)
	httpkit.OK(c, result)
}

// ProviderInfo reports the configured POI provider.
// GET /api/v1/places/provider
func (h *Handler) ProviderInfo(c *gin.Context) {
	httpkit.OK(c, h.svc.ProviderInfo())
}
