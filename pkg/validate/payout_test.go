package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLuhn(t *testing.T) {
	assert.True(t, IsLuhn("4111111111111111"))
	assert.True(t, IsLuhn("79927398713"))
	assert.False(t, IsLuhn("4111111111111112"))
	assert.False(t, IsLuhn("abc"))
}

func TestIsIFSC(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"HDFC0001234", true},
		{"SBIN0ABC123", true},
		{"HDFC1001234", false},
		{"hdfc0001234", false},
		{"HDFC000123", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, IsIFSC(tt.code))
		})
	}
}

func TestIsAccountNumber(t *testing.T) {
	assert.True(t, IsAccountNumber("123456"))
	assert.True(t, IsAccountNumber("123456789012345678"))
	assert.False(t, IsAccountNumber("12345"))
	assert.False(t, IsAccountNumber("1234567890123456789"))
	assert.False(t, IsAccountNumber("12ab5678"))
}

func TestIsUPIID(t *testing.T) {
	assert.True(t, IsUPIID("asha.rao@okhdfc"))
	assert.False(t, IsUPIID("a@upi"))
	assert.False(t, IsUPIID("asha"))
	assert.False(t, IsUPIID("asha@1"))
}
