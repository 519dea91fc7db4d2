package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/mcp-socialgraph-go/internal/apptype"
)

func setupTestDB(t *testing.T) *Database {
	t.Helper()
	db := New()
	for _, p := range []*Person{
		NewPerson(1, "Raymond Wong", apptype.Male),
		NewPerson(2, "Roger Smith", apptype.Male),
		NewPerson(3, "Jane Rogers", apptype.Female),
	} {
		require.NoError(t, db.AddPerson(p))
	}
	for _, p := range []*Product{
		NewProduct(201, "iPhone"),
		NewProduct(202, "MacBook Air"),
	} {
		require.NoError(t, db.AddProduct(p))
	}
	require.NoError(t, db.AddCompany(NewCompany(301, "Apple")))
	require.NoError(t, db.AddCompany(NewCompany(302, "Samsung")))
	return db
}

func TestCreateAndGetEntity(t *testing.T) {
	db := setupTestDB(t)

	p, err := db.PersonByID(2)
	require.NoError(t, err)
	assert.Equal(t, 2, p.ID())
	assert.Equal(t, "Roger Smith", p.Name())
	assert.Equal(t, apptype.Male, p.Gender)

	pr, err := db.ProductByID(202)
	require.NoError(t, err)
	assert.Equal(t, "MacBook Air", pr.Name())

	c, err := db.CompanyByID(301)
	require.NoError(t, err)
	assert.Equal(t, "Apple", c.Name())

	p.SetName("Roger S.")
	again, err := db.PersonByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Roger S.", again.Name())
}

func TestLookupUnknownID(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.PersonByID(99)
	assert.ErrorIs(t, err, ErrNoSuchPerson)
	_, err = db.ProductByID(99)
	assert.ErrorIs(t, err, ErrNoSuchProduct)
	_, err = db.CompanyByID(99)
	assert.ErrorIs(t, err, ErrNoSuchCompany)

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, 99, nf.ID)
	assert.False(t, nf.ByName)
}

func TestDuplicateIDRejected(t *testing.T) {
	db := setupTestDB(t)

	err := db.AddPerson(NewPerson(1, "Someone Else", apptype.Female))
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.ErrorIs(t, db.AddProduct(NewProduct(201, "iPhone 2")), ErrDuplicateID)
	assert.ErrorIs(t, db.AddCompany(NewCompany(301, "Apple Inc")), ErrDuplicateID)

	p, err := db.PersonByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Raymond Wong", p.Name())
	assert.Len(t, db.People(), 3)
}

func TestFriendshipIsSymmetricAndIdempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.SetFriends(1, 2))
	require.NoError(t, db.SetFriends(2, 1))
	require.NoError(t, db.SetFriends(1, 3))

	p1, _ := db.PersonByID(1)
	p2, _ := db.PersonByID(2)
	p3, _ := db.PersonByID(3)
	assert.Equal(t, []int{2, 3}, p1.FriendIDs())
	assert.Equal(t, []int{1}, p2.FriendIDs())
	assert.True(t, db.HasFriend(p3, p1))
	assert.False(t, db.HasFriend(p2, p3))

	require.NoError(t, db.RemoveFriends(2, 1))
	assert.False(t, db.HasFriend(p1, p2))
	assert.False(t, db.HasFriend(p2, p1))
	assert.Equal(t, []int{3}, p1.FriendIDs())
}

func TestSetFriendsNamesFirstUnresolvedID(t *testing.T) {
	db := setupTestDB(t)

	err := db.SetFriends(50, 60)
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, 50, nf.ID)

	err = db.SetFriends(1, 60)
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, 60, nf.ID)

	assert.ErrorIs(t, db.SetFriends(1, 1), ErrSelfFriendship)
	assert.ErrorIs(t, db.RemoveFriends(1, 77), ErrNoSuchPerson)
}

func TestSetPersonProduct(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.SetPersonProduct(1, 201))
	require.NoError(t, db.SetPersonProduct(1, 201))
	require.NoError(t, db.SetPersonProduct(1, 202))

	p, _ := db.PersonByID(1)
	assert.Equal(t, []int{201, 201, 202}, p.ProductIDs())

	// person is resolved before product
	assert.ErrorIs(t, db.SetPersonProduct(99, 999), ErrNoSuchPerson)
	assert.ErrorIs(t, db.SetPersonProduct(1, 999), ErrNoSuchProduct)
}

func TestSetManufacturerOverwriteKeepsStaleListing(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.SetManufacturer(201, 301))
	require.NoError(t, db.SetManufacturer(201, 302))

	pr, _ := db.ProductByID(201)
	assert.Equal(t, "Samsung", db.Manufacturer(pr).Name())

	apple, _ := db.CompanyByID(301)
	samsung, _ := db.CompanyByID(302)
	assert.Equal(t, []int{201}, apple.ProductIDs())
	assert.Equal(t, []int{201}, samsung.ProductIDs())
	assert.Len(t, db.ProductsOf(apple), 1)

	assert.ErrorIs(t, db.SetManufacturer(999, 301), ErrNoSuchProduct)

	err := db.SetManufacturer(202, 999)
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.ErrorIs(t, err, ErrNoSuchCompany)
	assert.Equal(t, 999, nf.ID)
}

func TestProductWithoutManufacturer(t *testing.T) {
	db := setupTestDB(t)
	pr, _ := db.ProductByID(202)

	_, ok := pr.ManufacturerID()
	assert.False(t, ok)
	assert.Nil(t, db.Manufacturer(pr))
}

func TestStats(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.SetFriends(1, 2))
	require.NoError(t, db.SetFriends(2, 3))
	require.NoError(t, db.SetPersonProduct(3, 201))

	assert.Equal(t, Stats{People: 3, Products: 2, Companies: 2, Friendships: 2, Ownerships: 1}, db.Stats())
}

func TestRefs(t *testing.T) {
	db := setupTestDB(t)
	refs := Refs(db.Companies())
	assert.Equal(t, []apptype.EntityRef{
		{ID: 301, Name: "Apple", Kind: "company"},
		{ID: 302, Name: "Samsung", Kind: "company"},
	}, refs)
}
