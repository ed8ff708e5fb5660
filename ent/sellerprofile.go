// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/bizmandi/storefront/ent/sellerprofile"
)

// SellerProfile is the model entity for the SellerProfile schema.
type SellerProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// 10-digit seller mobile number, the upsert key
	Mobile string `json:"mobile,omitempty"`
	// Seller first name
	FirstName string `json:"first_name,omitempty"`
	// Seller last name
	LastName string `json:"last_name,omitempty"`
	// Registered business name
	BusinessName string `json:"business_name,omitempty"`
	// Contact email, optional
	Email string `json:"email,omitempty"`
	// WhatsApp number when different from mobile
	Whatsapp string `json:"whatsapp,omitempty"`
	// Postal code
	Pincode string `json:"pincode,omitempty"`
	// Address: plot number
	PlotNumber string `json:"plot_number,omitempty"`
	// Address: building name
	BuildingName string `json:"building_name,omitempty"`
	// Address: street name
	StreetName string `json:"street_name,omitempty"`
	// Address: nearby landmark
	Landmark string `json:"landmark,omitempty"`
	// Address: area/locality
	Area string `json:"area,omitempty"`
	// Address: city
	City string `json:"city,omitempty"`
	// Address: state
	State string `json:"state,omitempty"`
	// Business categories the seller trades in
	Categories []string `json:"categories,omitempty"`
	// draft = steps 1-2 saved and resumable, final = step 3 complete
	Status sellerprofile.Status `json:"status,omitempty"`
	// Furthest wizard step the seller has reached
	CurrentStep int `json:"current_step,omitempty"`
	// Furthest completed stage of the final submission sequence, for safe resume
	SubmitStage sellerprofile.SubmitStage `json:"submit_stage,omitempty"`
	// Commerce backend store identifier once assigned
	StoreID string `json:"store_id,omitempty"`
	// When the draft was first created
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last draft save or submission
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SellerProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sellerprofile.FieldCategories:
			values[i] = new([]byte)
		case sellerprofile.FieldID, sellerprofile.FieldCurrentStep:
			values[i] = new(sql.NullInt64)
		case sellerprofile.FieldMobile, sellerprofile.FieldFirstName, sellerprofile.FieldLastName, sellerprofile.FieldBusinessName, sellerprofile.FieldEmail, sellerprofile.FieldWhatsapp, sellerprofile.FieldPincode, sellerprofile.FieldPlotNumber, sellerprofile.FieldBuildingName, sellerprofile.FieldStreetName, sellerprofile.FieldLandmark, sellerprofile.FieldArea, sellerprofile.FieldCity, sellerprofile.FieldState, sellerprofile.FieldStatus, sellerprofile.FieldSubmitStage, sellerprofile.FieldStoreID:
			values[i] = new(sql.NullString)
		case sellerprofile.FieldCreatedAt, sellerprofile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SellerProfile fields.
func (_m *SellerProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sellerprofile.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sellerprofile.FieldMobile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mobile", values[i])
			} else if value.Valid {
				_m.Mobile = value.String
			}
		case sellerprofile.FieldFirstName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field first_name", values[i])
			} else if value.Valid {
				_m.FirstName = value.String
			}
		case sellerprofile.FieldLastName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_name", values[i])
			} else if value.Valid {
				_m.LastName = value.String
			}
		case sellerprofile.FieldBusinessName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field business_name", values[i])
			} else if value.Valid {
				_m.BusinessName = value.String
			}
		case sellerprofile.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case sellerprofile.FieldWhatsapp:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field whatsapp", values[i])
			} else if value.Valid {
				_m.Whatsapp = value.String
			}
		case sellerprofile.FieldPincode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pincode", values[i])
			} else if value.Valid {
				_m.Pincode = value.String
			}
		case sellerprofile.FieldPlotNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plot_number", values[i])
			} else if value.Valid {
				_m.PlotNumber = value.String
			}
		case sellerprofile.FieldBuildingName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field building_name", values[i])
			} else if value.Valid {
				_m.BuildingName = value.String
			}
		case sellerprofile.FieldStreetName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field street_name", values[i])
			} else if value.Valid {
				_m.StreetName = value.String
			}
		case sellerprofile.FieldLandmark:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field landmark", values[i])
			} else if value.Valid {
				_m.Landmark = value.String
			}
		case sellerprofile.FieldArea:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field area", values[i])
			} else if value.Valid {
				_m.Area = value.String
			}
		case sellerprofile.FieldCity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field city", values[i])
			} else if value.Valid {
				_m.City = value.String
			}
		case sellerprofile.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case sellerprofile.FieldCategories:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field categories", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Categories); err != nil {
					return fmt.Errorf("unmarshal field categories: %w", err)
				}
			}
		case sellerprofile.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = sellerprofile.Status(value.String)
			}
		case sellerprofile.FieldCurrentStep:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_step", values[i])
			} else if value.Valid {
				_m.CurrentStep = int(value.Int64)
			}
		case sellerprofile.FieldSubmitStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field submit_stage", values[i])
			} else if value.Valid {
				_m.SubmitStage = sellerprofile.SubmitStage(value.String)
			}
		case sellerprofile.FieldStoreID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field store_id", values[i])
			} else if value.Valid {
				_m.StoreID = value.String
			}
		case sellerprofile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case sellerprofile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SellerProfile.
// This includes values selected through modifiers, order, etc.
func (_m *SellerProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SellerProfile.
// Note that you need to call SellerProfile.Unwrap() before calling this method if this SellerProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SellerProfile) Update() *SellerProfileUpdateOne {
	return NewSellerProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SellerProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SellerProfile) Unwrap() *SellerProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SellerProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SellerProfile) String() string {
	var builder strings.Builder
	builder.WriteString("SellerProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("mobile=")
	builder.WriteString(_m.Mobile)
	builder.WriteString(", ")
	builder.WriteString("first_name=")
	builder.WriteString(_m.FirstName)
	builder.WriteString(", ")
	builder.WriteString("last_name=")
	builder.WriteString(_m.LastName)
	builder.WriteString(", ")
	builder.WriteString("business_name=")
	builder.WriteString(_m.BusinessName)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("whatsapp=")
	builder.WriteString(_m.Whatsapp)
	builder.WriteString(", ")
	builder.WriteString("pincode=")
	builder.WriteString(_m.Pincode)
	builder.WriteString(", ")
	builder.WriteString("plot_number=")
	builder.WriteString(_m.PlotNumber)
	builder.WriteString(", ")
	builder.WriteString("building_name=")
	builder.WriteString(_m.BuildingName)
	builder.WriteString(", ")
	builder.WriteString("street_name=")
	builder.WriteString(_m.StreetName)
	builder.WriteString(", ")
	builder.WriteString("landmark=")
	builder.WriteString(_m.Landmark)
	builder.WriteString(", ")
	builder.WriteString("area=")
	builder.WriteString(_m.Area)
	builder.WriteString(", ")
	builder.WriteString("city=")
	builder.WriteString(_m.City)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("categories=")
	builder.WriteString(fmt.Sprintf("%v", _m.Categories))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("current_step=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentStep))
	builder.WriteString(", ")
	builder.WriteString("submit_stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubmitStage))
	builder.WriteString(", ")
	builder.WriteString("store_id=")
	builder.WriteString(_m.StoreID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SellerProfiles is a parsable slice of SellerProfile.
type SellerProfiles []*SellerProfile
