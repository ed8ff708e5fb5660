package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/bizmandi/storefront/pkg/api/errors"
	"github.com/bizmandi/storefront/pkg/catalog"
	"github.com/bizmandi/storefront/pkg/metrics"
	"github.com/bizmandi/storefront/pkg/models"
	"github.com/bizmandi/storefront/pkg/session"
)

// CatalogHandler resolves product-listing URLs into filter queries and
// manages the session-scoped browsing preferences that feed into them
type CatalogHandler struct {
	filterTypes map[string]catalog.FacetKind
	sessions    *session.Store
	metrics     *metrics.Metrics
	validator   *validator.Validate
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(filterTypes map[string]catalog.FacetKind, sessions *session.Store, m *metrics.Metrics) *CatalogHandler {
	return &CatalogHandler{
		filterTypes: filterTypes,
		sessions:    sessions,
		metrics:     m,
		validator:   validator.New(),
	}
}

// sessionID identifies the caller's browsing session. Preferences are
// optional, so an absent header just means no stored preferences.
func sessionID(c echo.Context) string {
	return c.Request().Header.Get("X-Session-ID")
}

// ResolveListing godoc
// @Summary Resolve a product listing URL into a filter query
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body models.ResolveListingRequest true "Routed URL segments"
// @Success 200 {object} models.ResolveListingResponse
// @Failure 400 {object} models.ErrorResponse "Unparseable segments"
// @Router /catalog/resolve [post]
func (h *CatalogHandler) ResolveListing(c echo.Context) error {
	var req models.ResolveListingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	search, rest := catalog.ExtractSearch(req.Segments)
	url, query, ok := catalog.SplitRoute(rest)
	if !ok {
		h.metrics.RecordListingResolved(false)
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "unparseable_url",
			Message: "The listing URL could not be resolved",
		})
	}

	fq, ok := catalog.ResolveParams(url, query, h.filterTypes, catalog.NormalizeSearchTerm(search))
	if !ok {
		h.metrics.RecordListingResolved(false)
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "unparseable_url",
			Message: "The listing URL could not be resolved",
		})
	}

	// a stored location preference applies only when the URL itself did
	// not pin one
	if sid := sessionID(c); sid != "" {
		if pref, found := h.sessions.NearbyLocation(ctx, sid); found {
			fq.MergeNearbyLocation(catalog.GeoClause{
				Lat:      pref.Lat,
				Lon:      pref.Lon,
				Distance: pref.Distance,
			})
		}
	}

	shallow := false
	if req.Previous != nil {
		fq, shallow = catalog.Reconcile(req.Previous, fq)
	}

	h.metrics.RecordListingResolved(true)
	return c.JSON(http.StatusOK, models.ResolveListingResponse{Query: fq, Shallow: shallow})
}

// SaveNearbyLocation godoc
// @Summary Save the buyer's nearby-location preference
// @Tags Session
// @Accept json
// @Produce json
// @Param request body models.NearbyLocationRequest true "Location preference"
// @Success 200 {object} models.SuccessResponse
// @Router /session/nearby-location [put]
func (h *CatalogHandler) SaveNearbyLocation(c echo.Context) error {
	sid := sessionID(c)
	if sid == "" {
		return apierrors.ValidationError(c, echo.ErrBadRequest)
	}

	var req models.NearbyLocationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	err := h.sessions.SaveNearbyLocation(ctx, sid, session.GeoPreference{
		Lat:      req.Lat,
		Lon:      req.Lon,
		Name:     req.Name,
		Distance: req.Distance,
	})
	if err != nil {
		return apierrors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

// NearbyLocation godoc
// @Summary Fetch the stored nearby-location preference
// @Tags Session
// @Produce json
// @Success 200 {object} session.GeoPreference
// @Failure 404 {object} models.ErrorResponse
// @Router /session/nearby-location [get]
func (h *CatalogHandler) NearbyLocation(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	pref, found := h.sessions.NearbyLocation(ctx, sessionID(c))
	if !found {
		return apierrors.NotFoundError(c, "nearby location preference")
	}
	return c.JSON(http.StatusOK, pref)
}

// ClearNearbyLocation godoc
// @Summary Clear the stored nearby-location preference
// @Tags Session
// @Produce json
// @Success 200 {object} models.SuccessResponse
// @Router /session/nearby-location [delete]
func (h *CatalogHandler) ClearNearbyLocation(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.sessions.ClearNearbyLocation(ctx, sessionID(c)); err != nil {
		return apierrors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

// SaveReturnURL godoc
// @Summary Remember where to send the buyer after sign-in
// @Tags Session
// @Accept json
// @Produce json
// @Param request body models.ReturnURLRequest true "Return URL"
// @Success 200 {object} models.SuccessResponse
// @Router /session/return-url [put]
func (h *CatalogHandler) SaveReturnURL(c echo.Context) error {
	sid := sessionID(c)
	if sid == "" {
		return apierrors.ValidationError(c, echo.ErrBadRequest)
	}

	var req models.ReturnURLRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.sessions.SaveReturnURL(ctx, sid, req.URL); err != nil {
		return apierrors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

// PopReturnURL godoc
// @Summary Read and clear the stored return URL
// @Description The URL is single use: reading it removes it.
// @Tags Session
// @Produce json
// @Success 200 {object} models.ReturnURLResponse
// @Router /session/return-url [post]
func (h *CatalogHandler) PopReturnURL(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	url, found := h.sessions.ReturnURL(ctx, sessionID(c))
	return c.JSON(http.StatusOK, models.ReturnURLResponse{URL: url, Found: found})
}
