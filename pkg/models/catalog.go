package models

import "github.com/bizmandi/storefront/pkg/catalog"

// ResolveListingRequest carries the routed URL segments of a product
// listing page. Previous, when present, is the query the client is
// currently rendering; the resolved query is reconciled against it so
// category context survives filter changes.
type ResolveListingRequest struct {
	Segments []string             `json:"segments" validate:"required,min=1"`
	Previous *catalog.FilterQuery `json:"previous,omitempty"`
}

// ResolveListingResponse returns the resolved query. Shallow reports
// that the reconciled query matches Previous, so the client can skip a
// refetch.
type ResolveListingResponse struct {
	Query   *catalog.FilterQuery `json:"query"`
	Shallow bool                 `json:"shallow"`
}

// NearbyLocationRequest saves the buyer's location preference
type NearbyLocationRequest struct {
	Lat      float64 `json:"lat" validate:"required,latitude"`
	Lon      float64 `json:"lon" validate:"required,longitude"`
	Name     string  `json:"name"`
	Distance string  `json:"distance" validate:"required"`
}

// ReturnURLRequest remembers where to send the buyer after sign-in
type ReturnURLRequest struct {
	URL string `json:"url" validate:"required,uri"`
}

// ReturnURLResponse hands the stored URL back exactly once
type ReturnURLResponse struct {
	URL   string `json:"url"`
	Found bool   `json:"found"`
}
