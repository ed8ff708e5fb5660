package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizmandi/storefront/pkg/cache"
	"github.com/bizmandi/storefront/pkg/catalog"
	"github.com/bizmandi/storefront/pkg/metrics"
	"github.com/bizmandi/storefront/pkg/models"
	"github.com/bizmandi/storefront/pkg/session"
)

// Prometheus collectors register globally, so the test binary shares one
// instance across all handler tests.
var testMetrics = metrics.New()

var testFilterTypes = map[string]catalog.FacetKind{
	"price":    catalog.FacetPrice,
	"brand":    catalog.FacetMultiSelect,
	"in_stock": catalog.FacetBoolean,
}

func setupCatalogTestHandler(t *testing.T) (*CatalogHandler, *session.Store) {
	t.Helper()

	mr := miniredis.RunT(t)
	redisClient := &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	sessions := session.NewStore(redisClient, 24*time.Hour)

	handler := &CatalogHandler{
		filterTypes: testFilterTypes,
		sessions:    sessions,
		metrics:     testMetrics,
		validator:   validator.New(),
	}
	return handler, sessions
}

func resolveRequest(t *testing.T, handler *CatalogHandler, body string, sessionID string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/resolve", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if sessionID != "" {
		req.Header.Set("X-Session-ID", sessionID)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, handler.ResolveListing(c)
}

func TestResolveListing(t *testing.T) {
	t.Run("Success - plain category route", func(t *testing.T) {
		handler, _ := setupCatalogTestHandler(t)

		rec, err := resolveRequest(t, handler, `{"segments":["machinery","pumps"]}`, "")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.ResolveListingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "machinery/pumps", resp.Query.URL)
		assert.Empty(t, resp.Query.Filters)
		assert.Equal(t, 1, resp.Query.CurrentPage)
		assert.Equal(t, catalog.DefaultPageSize, resp.Query.PageSize)
		assert.False(t, resp.Shallow)
	})

	t.Run("Success - filters, pagination and search", func(t *testing.T) {
		handler, _ := setupCatalogTestHandler(t)

		body := `{"segments":["search","Bogotá","machinery","page","2","q","page-size","24","q","price","100-*","q","brand","kirloskar,crompton"]}`
		rec, err := resolveRequest(t, handler, body, "")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.ResolveListingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "machinery", resp.Query.URL)
		assert.Equal(t, "Bogota", resp.Query.Search)
		assert.Equal(t, 2, resp.Query.CurrentPage)
		assert.Equal(t, 24, resp.Query.PageSize)
		assert.Equal(t, "100", resp.Query.Filters["price"].From)
		assert.Empty(t, resp.Query.Filters["price"].To)
		assert.Equal(t, []string{"kirloskar", "crompton"}, resp.Query.Filters["brand"].In)
	})

	t.Run("Success - previous category is re-injected", func(t *testing.T) {
		handler, _ := setupCatalogTestHandler(t)

		body := `{
			"segments": ["machinery", "page", "1", "q", "brand", "kirloskar"],
			"previous": {
				"url": "machinery",
				"filters": {"category_uid": {"eq": "cat-42"}},
				"sort": {},
				"currentPage": 1,
				"pageSize": 12
			}
		}`
		rec, err := resolveRequest(t, handler, body, "")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.ResolveListingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "cat-42", resp.Query.Filters["category_uid"].Eq)
		assert.False(t, resp.Shallow)
	})

	t.Run("Success - identical previous query is shallow", func(t *testing.T) {
		handler, _ := setupCatalogTestHandler(t)

		body := `{
			"segments": ["machinery", "page", "3"],
			"previous": {
				"url": "machinery",
				"filters": {},
				"sort": {},
				"currentPage": 3,
				"pageSize": 12
			}
		}`
		rec, err := resolveRequest(t, handler, body, "")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.ResolveListingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Shallow)
	})

	t.Run("Success - session location preference fills in geo filter", func(t *testing.T) {
		handler, sessions := setupCatalogTestHandler(t)

		err := sessions.SaveNearbyLocation(context.Background(), "sess-1", session.GeoPreference{
			Lat: 19.076, Lon: 72.8777, Name: "Mumbai", Distance: "25km",
		})
		require.NoError(t, err)

		rec, err := resolveRequest(t, handler, `{"segments":["machinery","page","1"]}`, "sess-1")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.ResolveListingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		geo := resp.Query.Filters[catalog.NearbyLocationFilter].Geo
		require.NotNil(t, geo)
		assert.Equal(t, 19.076, geo.Lat)
		assert.Equal(t, "25km", geo.Distance)
	})

	t.Run("Success - route geo beats session preference", func(t *testing.T) {
		handler, sessions := setupCatalogTestHandler(t)

		err := sessions.SaveNearbyLocation(context.Background(), "sess-2", session.GeoPreference{
			Lat: 19.076, Lon: 72.8777, Name: "Mumbai", Distance: "25km",
		})
		require.NoError(t, err)

		body := `{"segments":["machinery","page","1","q","nearby_location","28.6139,77.209,10km"]}`
		rec, err := resolveRequest(t, handler, body, "sess-2")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.ResolveListingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		geo := resp.Query.Filters[catalog.NearbyLocationFilter].Geo
		require.NotNil(t, geo)
		assert.Equal(t, 28.6139, geo.Lat)
		assert.Equal(t, "10km", geo.Distance)
	})

	t.Run("Failure - unknown filter token rejects the whole parse", func(t *testing.T) {
		handler, _ := setupCatalogTestHandler(t)

		rec, err := resolveRequest(t, handler, `{"segments":["machinery","page","1","q","bogus","x"]}`, "")
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "unparseable_url", resp.Error)
	})

	t.Run("Failure - reserved token in first position", func(t *testing.T) {
		handler, _ := setupCatalogTestHandler(t)

		rec, err := resolveRequest(t, handler, `{"segments":["page","1"]}`, "")
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Failure - empty segments", func(t *testing.T) {
		handler, _ := setupCatalogTestHandler(t)

		rec, err := resolveRequest(t, handler, `{"segments":[]}`, "")
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestNearbyLocationEndpoints(t *testing.T) {
	handler, _ := setupCatalogTestHandler(t)
	e := echo.New()

	t.Run("Failure - save without session header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/v1/session/nearby-location",
			strings.NewReader(`{"lat":19.076,"lon":72.8777,"name":"Mumbai","distance":"25km"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		require.NoError(t, handler.SaveNearbyLocation(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Success - save, fetch and clear round trip", func(t *testing.T) {
		save := httptest.NewRequest(http.MethodPut, "/api/v1/session/nearby-location",
			strings.NewReader(`{"lat":19.076,"lon":72.8777,"name":"Mumbai","distance":"25km"}`))
		save.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		save.Header.Set("X-Session-ID", "sess-loc")
		rec := httptest.NewRecorder()
		require.NoError(t, handler.SaveNearbyLocation(e.NewContext(save, rec)))
		require.Equal(t, http.StatusOK, rec.Code)

		get := httptest.NewRequest(http.MethodGet, "/api/v1/session/nearby-location", nil)
		get.Header.Set("X-Session-ID", "sess-loc")
		rec = httptest.NewRecorder()
		require.NoError(t, handler.NearbyLocation(e.NewContext(get, rec)))
		require.Equal(t, http.StatusOK, rec.Code)

		var pref session.GeoPreference
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pref))
		assert.Equal(t, "Mumbai", pref.Name)

		del := httptest.NewRequest(http.MethodDelete, "/api/v1/session/nearby-location", nil)
		del.Header.Set("X-Session-ID", "sess-loc")
		rec = httptest.NewRecorder()
		require.NoError(t, handler.ClearNearbyLocation(e.NewContext(del, rec)))
		require.Equal(t, http.StatusOK, rec.Code)

		get = httptest.NewRequest(http.MethodGet, "/api/v1/session/nearby-location", nil)
		get.Header.Set("X-Session-ID", "sess-loc")
		rec = httptest.NewRecorder()
		require.NoError(t, handler.NearbyLocation(e.NewContext(get, rec)))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestReturnURLEndpoints(t *testing.T) {
	handler, _ := setupCatalogTestHandler(t)
	e := echo.New()

	t.Run("Success - stored URL is handed back exactly once", func(t *testing.T) {
		save := httptest.NewRequest(http.MethodPut, "/api/v1/session/return-url",
			strings.NewReader(`{"url":"https://bizmandi.in/machinery/pumps"}`))
		save.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		save.Header.Set("X-Session-ID", "sess-ret")
		rec := httptest.NewRecorder()
		require.NoError(t, handler.SaveReturnURL(e.NewContext(save, rec)))
		require.Equal(t, http.StatusOK, rec.Code)

		pop := httptest.NewRequest(http.MethodPost, "/api/v1/session/return-url", nil)
		pop.Header.Set("X-Session-ID", "sess-ret")
		rec = httptest.NewRecorder()
		require.NoError(t, handler.PopReturnURL(e.NewContext(pop, rec)))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.ReturnURLResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Found)
		assert.Equal(t, "https://bizmandi.in/machinery/pumps", resp.URL)

		rec = httptest.NewRecorder()
		pop = httptest.NewRequest(http.MethodPost, "/api/v1/session/return-url", nil)
		pop.Header.Set("X-Session-ID", "sess-ret")
		require.NoError(t, handler.PopReturnURL(e.NewContext(pop, rec)))
		require.Equal(t, http.StatusOK, rec.Code)

		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Found)
	})
}
