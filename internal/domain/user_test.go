package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPhoneNumber(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{"valid number", "+420123456789", true},
		{"missing plus", "420123456789", false},
		{"too short", "+42012345678", false},
		{"too long", "+4201234567890", false},
		{"letters inside", "+42012345678a", false},
		{"empty", "", false},
		{"plus only", "+", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPhoneNumber(tt.phone))
		})
	}
}

func TestValidName(t *testing.T) {
	assert.True(t, ValidName("Jan"))
	assert.True(t, ValidName(strings.Repeat("a", MaxNameLength)))
	assert.False(t, ValidName("Jo"))
	assert.False(t, ValidName(""))
	assert.False(t, ValidName(strings.Repeat("a", MaxNameLength+1)))
}
