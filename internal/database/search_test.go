package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names[T Entity](es []T) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.Name()
	}
	return out
}

func TestSearchProductsBySubstring(t *testing.T) {
	db := New()
	for i, name := range []string{"iPad Mini", "iPhone", "Samsung Galaxy Tab 3", "Google Nexus 7"} {
		require.NoError(t, db.AddProduct(NewProduct(200+i, name)))
	}

	got, err := db.ProductsByName("iP")
	require.NoError(t, err)
	assert.Equal(t, []string{"iPad Mini", "iPhone"}, names(got))

	got, err = db.ProductsByName("GALAXY")
	require.NoError(t, err)
	assert.Equal(t, []string{"Samsung Galaxy Tab 3"}, names(got))
}

func TestSearchPeopleCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)

	got, err := db.PeopleByName("roger")
	require.NoError(t, err)
	assert.Equal(t, []string{"Roger Smith", "Jane Rogers"}, names(got))

	// the result is materialized: counting it does not consume it
	assert.Len(t, got, 2)
	assert.Len(t, got, 2)
}

func TestSearchNoMatchCarriesSubstring(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.PeopleByName("Zelda")
	assert.ErrorIs(t, err, ErrNoSuchPerson)
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.True(t, nf.ByName)
	assert.Equal(t, "Zelda", nf.Name)
	assert.Contains(t, err.Error(), `"Zelda"`)

	_, err = db.ProductsByName("Pixel")
	assert.ErrorIs(t, err, ErrNoSuchProduct)
	_, err = db.CompaniesByName("Nokia")
	assert.ErrorIs(t, err, ErrNoSuchCompany)
}

func TestSearchEmptySubstringMatchesAll(t *testing.T) {
	db := setupTestDB(t)
	got, err := db.CompaniesByName("")
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "Samsung"}, names(got))
}
