package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFilterTypes() map[string]FacetKind {
	return map[string]FacetKind{
		"price":    FacetPrice,
		"color":    FacetMultiSelect,
		"brand":    FacetSelect,
		"verified": FacetBoolean,
	}
}

func TestResolveParams(t *testing.T) {
	t.Run("Success - empty query yields defaults", func(t *testing.T) {
		fq, ok := ResolveParams("machinery/pumps", nil, testFilterTypes(), "")

		require.True(t, ok)
		assert.Equal(t, "machinery/pumps", fq.URL)
		assert.Empty(t, fq.Filters)
		assert.Empty(t, fq.Sort)
		assert.Equal(t, 1, fq.CurrentPage)
		assert.Equal(t, DefaultPageSize, fq.PageSize)
	})

	t.Run("Success - page and page-size", func(t *testing.T) {
		fq, ok := ResolveParams("machinery", []string{"page", "3", "page-size", "48"}, testFilterTypes(), "")

		require.True(t, ok)
		assert.Equal(t, 3, fq.CurrentPage)
		assert.Equal(t, 48, fq.PageSize)
	})

	t.Run("Success - category exact match", func(t *testing.T) {
		fq, ok := ResolveParams("machinery", []string{"category_uid", "MTIz"}, testFilterTypes(), "")

		require.True(t, ok)
		assert.Equal(t, Clause{Eq: "MTIz"}, fq.Filters["category_uid"])
	})

	t.Run("Success - multiselect comma split", func(t *testing.T) {
		fq, ok := ResolveParams("machinery", []string{"color", "red,blue"}, testFilterTypes(), "")

		require.True(t, ok)
		assert.Equal(t, Clause{In: []string{"red", "blue"}}, fq.Filters["color"])
	})

	t.Run("Success - boolean facet", func(t *testing.T) {
		fq, ok := ResolveParams("machinery", []string{"verified", "1"}, testFilterTypes(), "")

		require.True(t, ok)
		assert.Equal(t, Clause{In: []string{"1"}}, fq.Filters["verified"])
	})

	t.Run("Failure - unknown token rejects whole parse", func(t *testing.T) {
		fq, ok := ResolveParams("machinery", []string{"color", "red", "bogus", "x"}, testFilterTypes(), "")

		assert.False(t, ok)
		assert.Nil(t, fq)
	})

	t.Run("Failure - trailing token with no value", func(t *testing.T) {
		_, ok := ResolveParams("machinery", []string{"page"}, testFilterTypes(), "")
		assert.False(t, ok)
	})

	t.Run("Failure - non-numeric page", func(t *testing.T) {
		_, ok := ResolveParams("machinery", []string{"page", "abc"}, testFilterTypes(), "")
		assert.False(t, ok)
	})

	t.Run("Success - q sentinel restarts the pair", func(t *testing.T) {
		fq, ok := ResolveParams("machinery", []string{"q", "page", "2"}, testFilterTypes(), "")

		require.True(t, ok)
		assert.Equal(t, 2, fq.CurrentPage)
	})
}

func TestResolveParams_PriceRanges(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		wantFrom string
		wantTo   string
	}{
		{name: "bounded range", value: "100-500", wantFrom: "100", wantTo: "500"},
		{name: "open lower bound", value: "*-500", wantFrom: "", wantTo: "500"},
		{name: "open upper bound", value: "100-*", wantFrom: "100", wantTo: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fq, ok := ResolveParams("machinery", []string{"price", tt.value}, testFilterTypes(), "")

			require.True(t, ok)
			clause := fq.Filters["price"]
			assert.Equal(t, tt.wantFrom, clause.From)
			assert.Equal(t, tt.wantTo, clause.To)
			assert.Empty(t, clause.Eq)
			assert.Empty(t, clause.In)
		})
	}

	t.Run("fully unbounded range drops the key", func(t *testing.T) {
		fq, ok := ResolveParams("machinery", []string{"price", "*-*"}, testFilterTypes(), "")

		require.True(t, ok)
		_, present := fq.Filters["price"]
		assert.False(t, present)
	})
}

func TestResolveParams_Sort(t *testing.T) {
	t.Run("sort then dir pairs up", func(t *testing.T) {
		fq, ok := ResolveParams("machinery", []string{"sort", "price", "dir", "desc"}, testFilterTypes(), "")

		require.True(t, ok)
		assert.Equal(t, map[string]SortDirection{"price": SortDesc}, fq.Sort)
	})

	t.Run("dir without sort is a no-op", func(t *testing.T) {
		fq, ok := ResolveParams("machinery", []string{"dir", "desc"}, testFilterTypes(), "")

		require.True(t, ok)
		assert.Empty(t, fq.Sort)
	})

	t.Run("repeated sort keeps only the last field", func(t *testing.T) {
		fq, ok := ResolveParams("machinery", []string{"sort", "price", "dir", "desc", "sort", "name"}, testFilterTypes(), "")

		require.True(t, ok)
		assert.Equal(t, map[string]SortDirection{"name": SortAsc}, fq.Sort)
	})

	t.Run("invalid direction fails the parse", func(t *testing.T) {
		_, ok := ResolveParams("machinery", []string{"sort", "price", "dir", "sideways"}, testFilterTypes(), "")
		assert.False(t, ok)
	})
}

func TestResolveParams_Idempotent(t *testing.T) {
	types := testFilterTypes()
	query := []string{"color", "red,blue", "price", "100-500", "sort", "price", "dir", "desc", "page", "2"}

	first, ok1 := ResolveParams("machinery", query, types, "pumps")
	second, ok2 := ResolveParams("machinery", query, types, "pumps")

	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, first, second)

	// the facet type map must not be mutated by parsing
	assert.Equal(t, testFilterTypes(), types)
}

func TestSplitRoute(t *testing.T) {
	t.Run("no reserved token - whole route is the url", func(t *testing.T) {
		url, query, ok := SplitRoute([]string{"machinery", "pumps"})

		require.True(t, ok)
		assert.Equal(t, "machinery/pumps", url)
		assert.Nil(t, query)
	})

	t.Run("split at first reserved token", func(t *testing.T) {
		url, query, ok := SplitRoute([]string{"machinery", "pumps", "q", "color", "red"})

		require.True(t, ok)
		assert.Equal(t, "machinery/pumps", url)
		assert.Equal(t, []string{"q", "color", "red"}, query)
	})

	t.Run("split at page token", func(t *testing.T) {
		url, query, ok := SplitRoute([]string{"machinery", "page", "2"})

		require.True(t, ok)
		assert.Equal(t, "machinery", url)
		assert.Equal(t, []string{"page", "2"}, query)
	})

	t.Run("reserved token first - unparseable", func(t *testing.T) {
		url, query, ok := SplitRoute([]string{"q", "color", "red"})

		assert.False(t, ok)
		assert.Empty(t, url)
		assert.Nil(t, query)
	})
}

func TestExtractSearch(t *testing.T) {
	search, rest := ExtractSearch([]string{"search", "ball valves", "page", "2"})
	assert.Equal(t, "ball valves", search)
	assert.Equal(t, []string{"page", "2"}, rest)

	search, rest = ExtractSearch([]string{"machinery", "pumps"})
	assert.Empty(t, search)
	assert.Equal(t, []string{"machinery", "pumps"}, rest)
}

func TestMergeNearbyLocation(t *testing.T) {
	t.Run("merged when absent", func(t *testing.T) {
		fq, ok := ResolveParams("machinery", nil, testFilterTypes(), "")
		require.True(t, ok)

		fq.MergeNearbyLocation(GeoClause{Lat: 19.07, Lon: 72.87, Distance: "25"})

		clause := fq.Filters[NearbyLocationFilter]
		require.NotNil(t, clause.Geo)
		assert.Equal(t, 19.07, clause.Geo.Lat)
		assert.Equal(t, "25", clause.Geo.Distance)
	})

	t.Run("route-set filter is never overridden", func(t *testing.T) {
		fq, ok := ResolveParams("machinery", []string{"nearby_location", "28.61,77.20,10"}, testFilterTypes(), "")
		require.True(t, ok)

		fq.MergeNearbyLocation(GeoClause{Lat: 19.07, Lon: 72.87, Distance: "25"})

		clause := fq.Filters[NearbyLocationFilter]
		require.NotNil(t, clause.Geo)
		assert.Equal(t, 28.61, clause.Geo.Lat)
		assert.Equal(t, "10", clause.Geo.Distance)
	})

	t.Run("merge happens exactly once", func(t *testing.T) {
		fq, ok := ResolveParams("machinery", nil, testFilterTypes(), "")
		require.True(t, ok)

		fq.MergeNearbyLocation(GeoClause{Lat: 19.07, Lon: 72.87, Distance: "25"})
		fq.MergeNearbyLocation(GeoClause{Lat: 12.97, Lon: 77.59, Distance: "5"})

		assert.Equal(t, 19.07, fq.Filters[NearbyLocationFilter].Geo.Lat)
	})
}

func TestReconcile(t *testing.T) {
	types := testFilterTypes()

	t.Run("category is sticky across client-side changes", func(t *testing.T) {
		prev, ok := ResolveParams("machinery", []string{"category_uid", "MTIz", "color", "red"}, types, "")
		require.True(t, ok)
		next, ok := ResolveParams("machinery", []string{"color", "red,blue"}, types, "")
		require.True(t, ok)

		merged, shallow := Reconcile(prev, next)

		assert.Equal(t, Clause{Eq: "MTIz"}, merged.Filters["category_uid"])
		assert.False(t, shallow)
	})

	t.Run("identical params reconcile shallow", func(t *testing.T) {
		prev, ok := ResolveParams("machinery", []string{"category_uid", "MTIz"}, types, "")
		require.True(t, ok)
		next, ok := ResolveParams("machinery", []string{"category_uid", "MTIz"}, types, "")
		require.True(t, ok)

		merged, shallow := Reconcile(prev, next)

		assert.True(t, shallow)
		assert.Equal(t, prev, merged)
	})

	t.Run("explicit category change wins over stickiness", func(t *testing.T) {
		prev, ok := ResolveParams("machinery", []string{"category_uid", "MTIz"}, types, "")
		require.True(t, ok)
		next, ok := ResolveParams("machinery", []string{"category_uid", "NDU2"}, types, "")
		require.True(t, ok)

		merged, shallow := Reconcile(prev, next)

		assert.Equal(t, Clause{Eq: "NDU2"}, merged.Filters["category_uid"])
		assert.False(t, shallow)
	})

	t.Run("nil previous params pass through", func(t *testing.T) {
		next, ok := ResolveParams("machinery", []string{"color", "red"}, types, "")
		require.True(t, ok)

		merged, shallow := Reconcile(nil, next)

		assert.Equal(t, next, merged)
		assert.False(t, shallow)
	})
}

func TestNormalizeSearchTerm(t *testing.T) {
	assert.Equal(t, "Bogota", NormalizeSearchTerm("  Bogotá "))
	assert.Equal(t, "Sao Paulo", NormalizeSearchTerm("São Paulo"))
	assert.Equal(t, "", NormalizeSearchTerm("   "))
}
