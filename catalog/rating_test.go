package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRatingEnforcesStarBounds(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.AddProduct("ShoeX", "Running", "Footwear"))

	require.ErrorIs(t, c.AddRating("ShoeX", "alice", -1, "bad"), ErrValidation)
	require.ErrorIs(t, c.AddRating("ShoeX", "alice", 6, "too good"), ErrValidation)

	for stars := MinStars; stars <= MaxStars; stars++ {
		assert.NoError(t, c.AddRating("ShoeX", "alice", stars, "ok"))
	}
}

func TestAddRatingDoesNotRequireProduct(t *testing.T) {
	c := New(nil)

	// "Phantom" was never registered via AddProduct.
	require.NoError(t, c.AddRating("Phantom", "alice", 4, "where did this come from"))

	assert.Equal(t, []string{"4 : where did this come from"}, c.GetRatingsForProduct("Phantom"))
	assert.InDelta(t, 4.0, c.GetStarsOfProduct("Phantom"), 0.0001)
}

func TestAddRatingAllowsRepeatUsers(t *testing.T) {
	c := New(nil)

	require.NoError(t, c.AddRating("ShoeX", "alice", 5, "first"))
	require.NoError(t, c.AddRating("ShoeX", "alice", 5, "second"))

	assert.Len(t, c.GetRatingsForProduct("ShoeX"), 2)
}

func TestGetRatingsForProductOrdersByStarsDescending(t *testing.T) {
	c := New(nil)

	require.NoError(t, c.AddRating("ShoeX", "alice", 3, "meh"))
	require.NoError(t, c.AddRating("ShoeX", "bob", 5, "great"))
	require.NoError(t, c.AddRating("ShoeX", "carol", 3, "also meh"))

	// Ties keep insertion order: alice's 3 before carol's 3.
	assert.Equal(t, []string{"5 : great", "3 : meh", "3 : also meh"}, c.GetRatingsForProduct("ShoeX"))
}

func TestGetStarsOfProduct(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.AddProduct("ShoeX", "Running", "Footwear"))

	assert.Zero(t, c.GetStarsOfProduct("ShoeX"))
	assert.Zero(t, c.GetStarsOfProduct("Unknown"))

	require.NoError(t, c.AddRating("ShoeX", "alice", 5, "great"))
	require.NoError(t, c.AddRating("ShoeX", "bob", 3, "ok"))

	assert.InDelta(t, 4.0, c.GetStarsOfProduct("ShoeX"), 0.0001)
}

func TestAverageStars(t *testing.T) {
	c := New(nil)

	assert.Zero(t, c.AverageStars())

	require.NoError(t, c.AddProduct("A", "Running", "Footwear"))
	require.NoError(t, c.AddProduct("B", "Swimming", "Gear"))
	require.NoError(t, c.AddRating("A", "alice", 5, "great"))
	require.NoError(t, c.AddRating("A", "bob", 5, "great"))
	require.NoError(t, c.AddRating("B", "carol", 1, "broke"))

	assert.InDelta(t, 11.0/3.0, c.AverageStars(), 0.0001)

	// Ratings on never-registered products count too.
	require.NoError(t, c.AddRating("Phantom", "dave", 1, "odd"))
	assert.InDelta(t, 3.0, c.AverageStars(), 0.0001)
}

func TestStarsPerActivity(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.AddProduct("ShoeX", "Running", "Footwear"))
	require.NoError(t, c.AddProduct("ShoeY", "Running", "Footwear"))
	require.NoError(t, c.AddProduct("Goggles", "Swimming", "Gear"))
	require.NoError(t, c.AddProduct("Mat", "Yoga", "Gear"))

	require.NoError(t, c.AddRating("ShoeX", "alice", 5, "great"))
	require.NoError(t, c.AddRating("ShoeY", "bob", 2, "loose"))
	require.NoError(t, c.AddRating("Goggles", "carol", 4, "clear"))

	// A rating bucket without a registered product belongs to no activity.
	require.NoError(t, c.AddRating("Phantom", "dave", 1, "odd"))

	got := c.StarsPerActivity()
	require.Len(t, got, 2)

	// Yoga is omitted entirely; keys are in ascending order.
	assert.Equal(t, "Running", got[0].Activity)
	assert.InDelta(t, 3.5, got[0].Stars, 0.0001)
	assert.Equal(t, "Swimming", got[1].Activity)
	assert.InDelta(t, 4.0, got[1].Stars, 0.0001)
}

func TestGetProductsPerStars(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.AddProduct("ShoeX", "Running", "Footwear"))
	require.NoError(t, c.AddProduct("ShoeA", "Running", "Footwear"))
	require.NoError(t, c.AddProduct("Watch", "Running", "Gear"))
	require.NoError(t, c.AddProduct("Unrated", "Running", "Gear"))

	require.NoError(t, c.AddRating("ShoeX", "alice", 4, "good"))
	require.NoError(t, c.AddRating("ShoeA", "bob", 4, "good"))
	require.NoError(t, c.AddRating("Watch", "carol", 5, "precise"))

	// Mean of exactly zero keeps a product out of every group.
	require.NoError(t, c.AddRating("Unrated", "dave", 0, "returned it"))

	got := c.GetProductsPerStars()
	require.Len(t, got, 2)

	assert.InDelta(t, 5.0, got[0].Stars, 0.0001)
	assert.Equal(t, []string{"Watch"}, got[0].Products)

	assert.InDelta(t, 4.0, got[1].Stars, 0.0001)
	assert.Equal(t, []string{"ShoeA", "ShoeX"}, got[1].Products)
}

func TestGetProductsPerStarsIgnoresUnregisteredProducts(t *testing.T) {
	c := New(nil)

	require.NoError(t, c.AddRating("Phantom", "alice", 5, "great"))
	assert.Empty(t, c.GetProductsPerStars())
}
