package sellerprofile

import (
	"strings"

	"github.com/bizmandi/storefront/ent"
)

// The profile store keeps address components as separate columns. Older
// storefront clients still exchange a single comma-joined address string
// in fixed positional order (plot, building, street, landmark). These
// helpers translate at the API boundary only. The encoding is lossy by
// construction: a component containing a comma cannot round-trip.

// Address is the structured form of the legacy joined string
type Address struct {
	PlotNumber   string `json:"plotNumber"`
	BuildingName string `json:"buildingName"`
	StreetName   string `json:"streetName"`
	Landmark     string `json:"landmark"`
}

// JoinAddress renders the four address components in the legacy
// positional order
func JoinAddress(a Address) string {
	return strings.Join([]string{a.PlotNumber, a.BuildingName, a.StreetName, a.Landmark}, ",")
}

// SplitAddress parses a legacy comma-joined address back into its
// components by fixed position. Missing trailing components come back
// empty; extra components are folded into the landmark so nothing is
// silently dropped.
func SplitAddress(joined string) Address {
	parts := strings.Split(joined, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	var a Address
	switch {
	case len(parts) > 4:
		a = Address{parts[0], parts[1], parts[2], strings.Join(parts[3:], ", ")}
	case len(parts) == 4:
		a = Address{parts[0], parts[1], parts[2], parts[3]}
	case len(parts) == 3:
		a = Address{PlotNumber: parts[0], BuildingName: parts[1], StreetName: parts[2]}
	case len(parts) == 2:
		a = Address{PlotNumber: parts[0], BuildingName: parts[1]}
	case len(parts) == 1:
		a = Address{PlotNumber: parts[0]}
	}
	return a
}

// LegacyRecord is the wire shape older clients expect from a profile
// fetch: address and categories comma-joined.
type LegacyRecord struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	BusinessName string `json:"businessName"`
	Email        string `json:"email,omitempty"`
	Mobile       string `json:"mobile"`
	Whatsapp     string `json:"whatsapp,omitempty"`
	Pincode      string `json:"pincode"`
	Address      string `json:"address"`
	Area         string `json:"area"`
	City         string `json:"city"`
	State        string `json:"state"`
	Categories   string `json:"businessCategory"`
	CurrentStep  int    `json:"currentStep"`
	Status       string `json:"status"`
	StoreID      string `json:"store_id,omitempty"`
}

// ToLegacy converts a stored profile into the legacy wire shape
func ToLegacy(p *ent.SellerProfile) LegacyRecord {
	return LegacyRecord{
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		BusinessName: p.BusinessName,
		Email:        p.Email,
		Mobile:       p.Mobile,
		Whatsapp:     p.Whatsapp,
		Pincode:      p.Pincode,
		Address: JoinAddress(Address{
			PlotNumber:   p.PlotNumber,
			BuildingName: p.BuildingName,
			StreetName:   p.StreetName,
			Landmark:     p.Landmark,
		}),
		Area:        p.Area,
		City:        p.City,
		State:       p.State,
		Categories:  strings.Join(p.Categories, ","),
		CurrentStep: p.CurrentStep,
		Status:      string(p.Status),
		StoreID:     p.StoreID,
	}
}

// JoinCategories renders categories in the legacy comma-joined form
func JoinCategories(categories []string) string {
	return strings.Join(categories, ",")
}

// SplitCategories parses the legacy comma-joined category string
func SplitCategories(joined string) []string {
	if strings.TrimSpace(joined) == "" {
		return nil
	}
	parts := strings.Split(joined, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
