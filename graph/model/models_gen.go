// Code generated by github.com/99designs/gqlgen, DO NOT EDIT.

package model

type DraftResult struct {
	Success     bool   `json:"success"`
	Status      string `json:"status"`
	CurrentStep int    `json:"currentStep"`
}

type FilterClause struct {
	Key  string     `json:"key"`
	Eq   *string    `json:"eq,omitempty"`
	In   []string   `json:"in,omitempty"`
	From *string    `json:"from,omitempty"`
	To   *string    `json:"to,omitempty"`
	Geo  *GeoClause `json:"geo,omitempty"`
}

type FilterQuery struct {
	URL         string          `json:"url"`
	Clauses     []*FilterClause `json:"clauses"`
	Sort        []*SortEntry    `json:"sort"`
	CurrentPage int             `json:"currentPage"`
	PageSize    int             `json:"pageSize"`
	Search      *string         `json:"search,omitempty"`
}

type GeoClause struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Distance string  `json:"distance"`
}

type Mutation struct {
}

type OtpRequestResult struct {
	Success                  bool `json:"success"`
	ResendAvailableInSeconds int  `json:"resendAvailableInSeconds"`
}

type Query struct {
}

type SellerDraft struct {
	FirstName        string  `json:"firstName"`
	LastName         string  `json:"lastName"`
	BusinessName     string  `json:"businessName"`
	Email            *string `json:"email,omitempty"`
	Mobile           string  `json:"mobile"`
	Whatsapp         *string `json:"whatsapp,omitempty"`
	Pincode          string  `json:"pincode"`
	Address          string  `json:"address"`
	Area             string  `json:"area"`
	City             string  `json:"city"`
	State            string  `json:"state"`
	BusinessCategory string  `json:"businessCategory"`
	CurrentStep      int     `json:"currentStep"`
	Status           string  `json:"status"`
	StoreID          *string `json:"storeId,omitempty"`
}

type SellerProfileInput struct {
	FirstName          string   `json:"firstName"`
	LastName           string   `json:"lastName"`
	BusinessName       string   `json:"businessName"`
	Email              *string  `json:"email,omitempty"`
	Whatsapp           *string  `json:"whatsapp,omitempty"`
	Pincode            string   `json:"pincode"`
	PlotNumber         *string  `json:"plotNumber,omitempty"`
	BuildingName       *string  `json:"buildingName,omitempty"`
	StreetName         *string  `json:"streetName,omitempty"`
	Landmark           *string  `json:"landmark,omitempty"`
	Area               string   `json:"area"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	BusinessCategories []string `json:"businessCategories"`
	CurrentStep        *int     `json:"currentStep,omitempty"`
}

type SortEntry struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

type SubmitResult struct {
	Success bool   `json:"success"`
	StoreID string `json:"storeId"`
	Status  string `json:"status"`
}

type VerifyOtpResult struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}
