package catalog

// FacetKind classifies a filterable product attribute as exposed by the
// commerce catalog.
type FacetKind string

const (
	FacetBoolean     FacetKind = "BOOLEAN"
	FacetSelect      FacetKind = "SELECT"
	FacetMultiSelect FacetKind = "MULTISELECT"
	FacetPrice       FacetKind = "PRICE"
)

// SortDirection is a sort order for a product-list field
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// DefaultPageSize is used when the route carries no page-size token
const DefaultPageSize = 12

// GeoClause is a geo-radius constraint around a point
type GeoClause struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Distance string  `json:"distance"`
}

// Clause is the parsed constraint for one facet. Exactly one of the four
// forms is populated: Eq (exact match), In (multi-select), From/To (range
// with either side optional), or Geo (radius).
type Clause struct {
	Eq   string     `json:"eq,omitempty"`
	In   []string   `json:"in,omitempty"`
	From string     `json:"from,omitempty"`
	To   string     `json:"to,omitempty"`
	Geo  *GeoClause `json:"geo,omitempty"`
}

// IsZero reports whether the clause carries no constraint at all
func (c Clause) IsZero() bool {
	return c.Eq == "" && len(c.In) == 0 && c.From == "" && c.To == "" && c.Geo == nil
}

// FilterQuery is the structured result of resolving a product-list route.
// It is immutable once built; Reconcile returns a copy rather than
// mutating in place.
type FilterQuery struct {
	URL         string                   `json:"url"`
	Filters     map[string]Clause        `json:"filters"`
	Sort        map[string]SortDirection `json:"sort"`
	CurrentPage int                      `json:"currentPage"`
	PageSize    int                      `json:"pageSize"`
	Search      string                   `json:"search,omitempty"`
}

// Clone returns a deep copy of the filter query
func (f *FilterQuery) Clone() *FilterQuery {
	if f == nil {
		return nil
	}
	cp := &FilterQuery{
		URL:         f.URL,
		Filters:     make(map[string]Clause, len(f.Filters)),
		Sort:        make(map[string]SortDirection, len(f.Sort)),
		CurrentPage: f.CurrentPage,
		PageSize:    f.PageSize,
		Search:      f.Search,
	}
	for k, v := range f.Filters {
		if v.In != nil {
			in := make([]string, len(v.In))
			copy(in, v.In)
			v.In = in
		}
		if v.Geo != nil {
			geo := *v.Geo
			v.Geo = &geo
		}
		cp.Filters[k] = v
	}
	for k, v := range f.Sort {
		cp.Sort[k] = v
	}
	return cp
}
