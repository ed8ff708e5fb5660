package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizmandi/storefront/pkg/domain"
)

func TestValidateMobile(t *testing.T) {
	tests := []struct {
		name    string
		mobile  string
		wantErr bool
	}{
		{name: "valid mobile starting with 9", mobile: "9876543210", wantErr: false},
		{name: "valid mobile starting with 6", mobile: "6123456789", wantErr: false},
		{name: "leading digit below 6", mobile: "5876543210", wantErr: true},
		{name: "too short", mobile: "987654321", wantErr: true},
		{name: "too long", mobile: "98765432101", wantErr: true},
		{name: "with country prefix", mobile: "+919876543210", wantErr: true},
		{name: "non-numeric", mobile: "98765abcde", wantErr: true},
		{name: "empty", mobile: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMobile(tt.mobile)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsValidation(err), "rejections must map to a field-level validation error")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestToE164(t *testing.T) {
	e164, err := ToE164("9876543210")
	require.NoError(t, err)
	assert.Equal(t, "+919876543210", e164)
}
