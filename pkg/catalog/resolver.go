package catalog

import (
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Reserved route tokens. Everything else must resolve through the facet
// type map or the whole parse fails.
const (
	tokenQ           = "q"
	tokenPage        = "page"
	tokenPageSize    = "page-size"
	tokenSort        = "sort"
	tokenDir         = "dir"
	tokenCategoryUID = "category_uid"
	tokenSearch      = "search"

	// NearbyLocationFilter is the facet key carrying the geo-radius
	// constraint, whether it came from the route or from the session
	// preference.
	NearbyLocationFilter = "nearby_location"
)

// ResolveParams converts URL-decoded route segments into a FilterQuery.
//
// The segment list is walked pairwise (token, value): each token decides
// how the following value is interpreted. The sentinel token "q" means
// the next segment is itself a fresh token. A single unrecognized token
// anywhere rejects the whole parse; callers must fall back to an
// unfiltered listing rather than apply a partial filter set.
func ResolveParams(url string, query []string, filterTypes map[string]FacetKind, search string) (*FilterQuery, bool) {
	fq := &FilterQuery{
		URL:         url,
		Filters:     make(map[string]Clause),
		Sort:        make(map[string]SortDirection),
		CurrentPage: 1,
		PageSize:    DefaultPageSize,
		Search:      NormalizeSearchTerm(search),
	}

	var token string
	lastSort := ""

	for _, segment := range query {
		if token == "" {
			if segment == tokenQ {
				// sentinel: the next segment starts a fresh pair
				continue
			}
			token = segment
			continue
		}

		value := segment
		switch token {
		case tokenPage:
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				return nil, false
			}
			fq.CurrentPage = n

		case tokenPageSize:
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				return nil, false
			}
			fq.PageSize = n

		case tokenSort:
			// a new sort field replaces any previous one: at most one
			// active sort key, last write wins
			fq.Sort = map[string]SortDirection{value: SortAsc}
			lastSort = value

		case tokenDir:
			// dir with no preceding sort field is a no-op
			if lastSort != "" {
				dir := SortDirection(strings.ToUpper(value))
				if dir != SortAsc && dir != SortDesc {
					return nil, false
				}
				fq.Sort[lastSort] = dir
			}

		case tokenCategoryUID:
			fq.Filters[tokenCategoryUID] = Clause{Eq: value}

		case NearbyLocationFilter:
			geo, ok := parseGeoValue(value)
			if !ok {
				return nil, false
			}
			fq.Filters[NearbyLocationFilter] = Clause{Geo: geo}

		default:
			clause, ok := parseFacetValue(filterTypes, token, value)
			if !ok {
				return nil, false
			}
			if !clause.IsZero() {
				fq.Filters[token] = clause
			}
		}
		token = ""
	}

	// a trailing token with no value is an incomplete pair
	if token != "" {
		return nil, false
	}

	return fq, true
}

// parseFacetValue interprets a value according to the facet kind declared
// for its token
func parseFacetValue(filterTypes map[string]FacetKind, token, value string) (Clause, bool) {
	kind, known := filterTypes[token]
	if !known {
		return Clause{}, false
	}

	switch kind {
	case FacetBoolean, FacetSelect, FacetMultiSelect:
		return Clause{In: strings.Split(value, ",")}, true

	case FacetPrice:
		parts := strings.SplitN(value, "-", 2)
		if len(parts) != 2 {
			return Clause{}, false
		}
		clause := Clause{}
		if parts[0] != "*" {
			clause.From = parts[0]
		}
		if parts[1] != "*" {
			clause.To = parts[1]
		}
		// "*-*" constrains nothing; the key is dropped rather than
		// emitting an empty clause
		return clause, true

	default:
		return Clause{}, false
	}
}

// parseGeoValue parses "lat,lon,distance" into a geo clause
func parseGeoValue(value string) (*GeoClause, bool) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return nil, false
	}
	lat, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, false
	}
	lon, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, false
	}
	if parts[2] == "" {
		return nil, false
	}
	return &GeoClause{Lat: lat, Lon: lon, Distance: parts[2]}, true
}

// SplitRoute locates the first reserved token ("q" or "page") in a full
// route's segments and splits it into the canonical listing path and the
// query segments from that token onward. A reserved token in the first
// position would leave an empty listing path, which is unparseable.
func SplitRoute(segments []string) (url string, query []string, ok bool) {
	idx := -1
	for i, s := range segments {
		if s == tokenQ || s == tokenPage {
			idx = i
			break
		}
	}
	if idx == -1 {
		return strings.Join(segments, "/"), nil, true
	}
	if idx == 0 {
		return "", nil, false
	}
	return strings.Join(segments[:idx], "/"), segments[idx:], true
}

// ExtractSearch peels a leading "search/<term>" prefix off a route's
// segments, returning the term and the remaining segments. Routes without
// the prefix come back unchanged with an empty term.
func ExtractSearch(segments []string) (search string, rest []string) {
	if len(segments) >= 2 && segments[0] == tokenSearch {
		return segments[1], segments[2:]
	}
	return "", segments
}

// MergeNearbyLocation merges a session-stored location preference into the
// filter set. A nearby_location clause already present from the route
// always wins; the preference is an out-of-band default, not an override.
func (f *FilterQuery) MergeNearbyLocation(geo GeoClause) {
	if f == nil || geo.Distance == "" {
		return
	}
	if _, exists := f.Filters[NearbyLocationFilter]; exists {
		return
	}
	g := geo
	f.Filters[NearbyLocationFilter] = Clause{Geo: &g}
}

// Reconcile applies the sticky-category rule: when a freshly parsed query
// omits the category_uid a previous params object carried, the previous
// category is re-injected, so category context survives client-side filter
// changes that do not explicitly clear it. The shallow flag reports
// whether the reconciled params are structurally identical to the previous
// ones, in which case the caller can navigate without a full reload.
func Reconcile(prev, next *FilterQuery) (*FilterQuery, bool) {
	if next == nil {
		return nil, false
	}
	merged := next.Clone()
	if prev != nil {
		if _, has := merged.Filters[tokenCategoryUID]; !has {
			if cat, ok := prev.Filters[tokenCategoryUID]; ok {
				merged.Filters[tokenCategoryUID] = cat
			}
		}
	}
	return merged, reflect.DeepEqual(prev, merged)
}

// NormalizeSearchTerm trims the term and strips diacritical marks so that
// "Bogotá" and "Bogota" hit the same products
func NormalizeSearchTerm(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}

	// NFD breaks "é" into "e" + combining acute, the combining marks are
	// dropped, NFC recomposes the rest
	t := norm.NFD.String(trimmed)
	result := strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Mn, r) {
			return -1
		}
		return r
	}, t)
	return norm.NFC.String(result)
}
