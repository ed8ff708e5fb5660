package phone

import (
	"fmt"
	"regexp"

	"github.com/nyaruka/phonenumbers"

	"github.com/bizmandi/storefront/pkg/domain"
)

// Sellers register with a bare 10-digit Indian mobile number. Valid mobile
// numbers start with 6-9.
var mobileRegex = regexp.MustCompile(`^[6-9][0-9]{9}$`)

const defaultRegion = "IN"

// ValidateMobile checks that a raw string is a plausible seller mobile
// number: exactly 10 digits, leading digit 6-9, and parseable as a valid
// number for the region. Failures are validation errors, so callers can
// surface them as field-level feedback.
func ValidateMobile(mobile string) error {
	if mobile == "" {
		return domain.NewValidationError("mobile number cannot be empty")
	}
	if !mobileRegex.MatchString(mobile) {
		return domain.NewValidationError("mobile number must be 10 digits starting with 6-9")
	}

	parsed, err := phonenumbers.Parse(mobile, defaultRegion)
	if err != nil {
		return domain.NewValidationError("mobile number could not be parsed")
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return domain.NewValidationError("mobile number is not valid")
	}
	return nil
}

// ToE164 formats a 10-digit mobile number for SMS delivery (+91...)
func ToE164(mobile string) (string, error) {
	parsed, err := phonenumbers.Parse(mobile, defaultRegion)
	if err != nil {
		return "", fmt.Errorf("failed to parse mobile number: %w", err)
	}
	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}
