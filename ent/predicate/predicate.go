// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// RegistrationEvent is the predicate function for registrationevent builders.
type RegistrationEvent func(*sql.Selector)

// SellerProfile is the predicate function for sellerprofile builders.
type SellerProfile func(*sql.Selector)
