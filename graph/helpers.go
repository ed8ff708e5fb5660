package graph

import (
	"sort"

	"github.com/bizmandi/storefront/graph/model"
	"github.com/bizmandi/storefront/pkg/catalog"
	"github.com/bizmandi/storefront/pkg/sellerprofile"
)

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toProfileInput(in model.SellerProfileInput) sellerprofile.ProfileInput {
	step := 1
	if in.CurrentStep != nil && *in.CurrentStep > 0 {
		step = *in.CurrentStep
	}
	return sellerprofile.ProfileInput{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		BusinessName: in.BusinessName,
		Email:        deref(in.Email),
		Whatsapp:     deref(in.Whatsapp),
		Pincode:      in.Pincode,
		PlotNumber:   deref(in.PlotNumber),
		BuildingName: deref(in.BuildingName),
		StreetName:   deref(in.StreetName),
		Landmark:     deref(in.Landmark),
		Area:         in.Area,
		City:         in.City,
		State:        in.State,
		Categories:   in.BusinessCategories,
		CurrentStep:  step,
	}
}

func toModelSellerDraft(rec sellerprofile.LegacyRecord) *model.SellerDraft {
	return &model.SellerDraft{
		FirstName:        rec.FirstName,
		LastName:         rec.LastName,
		BusinessName:     rec.BusinessName,
		Email:            optional(rec.Email),
		Mobile:           rec.Mobile,
		Whatsapp:         optional(rec.Whatsapp),
		Pincode:          rec.Pincode,
		Address:          rec.Address,
		Area:             rec.Area,
		City:             rec.City,
		State:            rec.State,
		BusinessCategory: rec.Categories,
		CurrentStep:      rec.CurrentStep,
		Status:           rec.Status,
		StoreID:          optional(rec.StoreID),
	}
}

func toModelFilterQuery(fq *catalog.FilterQuery) *model.FilterQuery {
	out := &model.FilterQuery{
		URL:         fq.URL,
		CurrentPage: fq.CurrentPage,
		PageSize:    fq.PageSize,
		Search:      optional(fq.Search),
	}

	keys := make([]string, 0, len(fq.Filters))
	for k := range fq.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		clause := fq.Filters[k]
		mc := &model.FilterClause{
			Key:  k,
			Eq:   optional(clause.Eq),
			In:   clause.In,
			From: optional(clause.From),
			To:   optional(clause.To),
		}
		if clause.Geo != nil {
			mc.Geo = &model.GeoClause{
				Lat:      clause.Geo.Lat,
				Lon:      clause.Geo.Lon,
				Distance: clause.Geo.Distance,
			}
		}
		out.Clauses = append(out.Clauses, mc)
	}

	sortFields := make([]string, 0, len(fq.Sort))
	for k := range fq.Sort {
		sortFields = append(sortFields, k)
	}
	sort.Strings(sortFields)
	for _, f := range sortFields {
		out.Sort = append(out.Sort, &model.SortEntry{Field: f, Direction: string(fq.Sort[f])})
	}

	return out
}
