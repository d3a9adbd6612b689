package utils_test

import (
	"testing"

	"inventory-tracker/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"Plain", "42", 42, false},
		{"Padded", "  7 \n", 7, false},
		{"Negative", "-3", -3, false},
		{"Empty", "", 0, true},
		{"Blank", "   ", 0, true},
		{"Word", "ten", 0, true},
		{"Float", "1.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := utils.ParseInt(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNonNegativeInt(t *testing.T) {
	got, err := utils.ParseNonNegativeInt("0")
	assert.NoError(t, err)
	assert.Equal(t, 0, got)

	_, err = utils.ParseNonNegativeInt("-1")
	assert.Error(t, err)

	_, err = utils.ParseNonNegativeInt("x")
	assert.Error(t, err)
}

func TestNormalizeLabel(t *testing.T) {
	assert.Equal(t, "Home Appliances", utils.NormalizeLabel("  Home   Appliances "))
	assert.Equal(t, "Books", utils.NormalizeLabel("Books"))
	assert.Equal(t, "", utils.NormalizeLabel(" \t "))
}
