package graph

import (
	"github.com/bizmandi/storefront/ent"
	"github.com/bizmandi/storefront/pkg/catalog"
	"github.com/bizmandi/storefront/pkg/registration"
	"github.com/bizmandi/storefront/pkg/session"
)

// This file will not be regenerated automatically.
//
// It serves as dependency injection for your app, add any dependencies you require
// here.

type Resolver struct {
	DB                  *ent.Client
	RegistrationService *registration.Service
	Sessions            *session.Store
	FilterTypes         map[string]catalog.FacetKind
	JWTSecret           string
	JWTExpirationHours  int
}
