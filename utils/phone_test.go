package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMobile(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"9999999999", "9999999999", false},
		{"+919999999999", "+919999999999", false},
		{"99999-99999", "9999999999", false},
		{"  98765 43210 ", "9876543210", false},
		{"1234567", "1234567", false},
		{"123456789012345", "123456789012345", false},
		{"123456", "", true},
		{"1234567890123456", "", true},
		{"", "", true},
		{"call-me-maybe", "", true},
	}

	for _, tt := range tests {
		got, err := ValidateMobile(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidMobile, "input %q", tt.in)
		} else {
			assert.NoError(t, err, "input %q", tt.in)
			assert.Equal(t, tt.want, got)
		}
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+919999999999", NormalizePhone("9999999999", "+91"))
	assert.Equal(t, "+14155550100", NormalizePhone("+1 415 555 0100", "+91"))
	assert.Equal(t, "+919876543210", NormalizePhone("98765-43210", "+91"))
}
