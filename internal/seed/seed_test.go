package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_Bootstrapped(t *testing.T) {
	store := NewStore()

	s := store.GetState()
	assert.Len(t, s.Posts, 4)
	assert.Len(t, s.Products, 8)
	assert.Empty(t, s.Cart)
	assert.Nil(t, s.User)
	assert.Empty(t, s.SearchQuery)
}

func TestPosts_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, post := range Posts() {
		require.False(t, seen[post.ID], "duplicate post id %s", post.ID)
		seen[post.ID] = true
	}
}

func TestProducts_UniqueIDsAndValidPrices(t *testing.T) {
	seen := make(map[string]bool)
	for _, product := range Products() {
		require.False(t, seen[product.ID], "duplicate product id %s", product.ID)
		seen[product.ID] = true
		assert.GreaterOrEqual(t, product.Price, 0.0)
	}
}

func TestNewStore_IndependentCopies(t *testing.T) {
	first := NewStore()
	second := NewStore()

	assert.NotSame(t, first, second)
	assert.Equal(t, first.GetState().Posts, second.GetState().Posts)
}
