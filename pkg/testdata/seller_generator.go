package testdata

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/bizmandi/storefront/ent"
	"github.com/bizmandi/storefront/pkg/sellerprofile"
)

// SellerGeneratorConfig configures seller profile generation
type SellerGeneratorConfig struct {
	Count        int
	City         string
	State        string
	EmailChance  float64 // 0.0-1.0 (probability of having email)
	FinalChance  float64 // probability the profile is finalized
	Seed         int64   // 0 means random
}

// cityData maps Indian states to their major cities
var cityData = map[string][]string{
	"Maharashtra":   {"Mumbai", "Pune", "Nagpur", "Nashik", "Thane"},
	"Gujarat":       {"Ahmedabad", "Surat", "Vadodara", "Rajkot", "Bhavnagar"},
	"Karnataka":     {"Bengaluru", "Mysuru", "Hubballi", "Mangaluru", "Belagavi"},
	"Tamil Nadu":    {"Chennai", "Coimbatore", "Madurai", "Tiruchirappalli", "Salem"},
	"Delhi":         {"New Delhi", "Dwarka", "Rohini", "Karol Bagh", "Saket"},
	"West Bengal":   {"Kolkata", "Howrah", "Durgapur", "Asansol", "Siliguri"},
	"Uttar Pradesh": {"Lucknow", "Kanpur", "Agra", "Varanasi", "Noida"},
}

// businessNameParts builds plausible wholesale business names
var businessNameParts = struct {
	Prefixes []string
	Suffixes []string
}{
	Prefixes: []string{"Shree", "Royal", "National", "Bharat", "Om", "New", "Golden", "Classic", "Supreme", "Unity"},
	Suffixes: []string{"Traders", "Enterprises", "Industries", "& Sons", "Trading Co", "Agencies", "Distributors", "Exports", "Mart", "Suppliers"},
}

var categories = []string{
	"machinery", "tools", "textiles", "electronics", "packaging",
	"chemicals", "hardware", "stationery", "furniture", "agro products",
}

// GenerateMobile returns a valid-looking 10-digit Indian mobile number
func GenerateMobile(r *rand.Rand) string {
	first := 6 + r.Intn(4)
	rest := ""
	for i := 0; i < 9; i++ {
		rest += fmt.Sprintf("%d", r.Intn(10))
	}
	return fmt.Sprintf("%d%s", first, rest)
}

// GenerateInput builds a random but internally consistent profile form
func GenerateInput(r *rand.Rand, cfg SellerGeneratorConfig) sellerprofile.ProfileInput {
	state := cfg.State
	if state == "" {
		states := make([]string, 0, len(cityData))
		for s := range cityData {
			states = append(states, s)
		}
		state = states[r.Intn(len(states))]
	}
	city := cfg.City
	if city == "" {
		cities := cityData[state]
		city = cities[r.Intn(len(cities))]
	}

	business := fmt.Sprintf("%s %s %s",
		businessNameParts.Prefixes[r.Intn(len(businessNameParts.Prefixes))],
		gofakeit.LastName(),
		businessNameParts.Suffixes[r.Intn(len(businessNameParts.Suffixes))],
	)

	email := ""
	if r.Float64() < cfg.EmailChance {
		email = gofakeit.Email()
	}

	cats := []string{categories[r.Intn(len(categories))]}
	if r.Float64() < 0.4 {
		cats = append(cats, categories[r.Intn(len(categories))])
	}

	return sellerprofile.ProfileInput{
		FirstName:    gofakeit.FirstName(),
		LastName:     gofakeit.LastName(),
		BusinessName: business,
		Email:        email,
		Pincode:      fmt.Sprintf("%06d", 100000+r.Intn(900000)),
		PlotNumber:   fmt.Sprintf("%d", 1+r.Intn(200)),
		BuildingName: gofakeit.Company(),
		StreetName:   gofakeit.Street(),
		Landmark:     fmt.Sprintf("Near %s", gofakeit.Company()),
		Area:         gofakeit.City(),
		City:         city,
		State:        state,
		Categories:   cats,
		CurrentStep:  1 + r.Intn(3),
	}
}

// Generate seeds the database with seller profiles for local development
func Generate(ctx context.Context, db *ent.Client, cfg SellerGeneratorConfig) (int, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = gofakeit.Int64()
	}
	r := rand.New(rand.NewSource(seed))
	service := sellerprofile.NewService(db)

	created := 0
	for i := 0; i < cfg.Count; i++ {
		mobile := GenerateMobile(r)
		in := GenerateInput(r, cfg)

		p, err := service.SaveDraft(ctx, mobile, in)
		if err != nil {
			return created, fmt.Errorf("failed to create seller %d: %w", i, err)
		}

		if r.Float64() < cfg.FinalChance {
			storeID := fmt.Sprintf("store-%s", gofakeit.LetterN(8))
			if _, err := service.Finalize(ctx, p.Mobile, storeID); err != nil {
				return created, fmt.Errorf("failed to finalize seller %d: %w", i, err)
			}
		}
		created++
	}
	return created, nil
}
