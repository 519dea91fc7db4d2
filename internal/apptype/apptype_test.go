package apptype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGender(t *testing.T) {
	tests := []struct {
		in   string
		want Gender
	}{
		{"male", Male},
		{"  Female ", Female},
		{"MALE", Male},
	}
	for _, tt := range tests {
		got, err := ParseGender(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseGender("unknown")
	assert.ErrorIs(t, err, ErrUnknownGender)
	assert.Contains(t, err.Error(), `"unknown"`)

	assert.Equal(t, "FEMALE", Female.String())
}

func TestParseFacet(t *testing.T) {
	f, err := ParseFacet("product")
	require.NoError(t, err)
	assert.Equal(t, FacetProducts, f)

	f, err = ParseFacet("company")
	require.NoError(t, err)
	assert.Equal(t, FacetCompanies, f)
	assert.Equal(t, "company", f.String())

	for _, bad := range []string{"", "products", "friend", "Company", " product ", "PRODUCT"} {
		_, err := ParseFacet(bad)
		assert.ErrorIs(t, err, ErrInvalidNetwork, bad)
	}
}
