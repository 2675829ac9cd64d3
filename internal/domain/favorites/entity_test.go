// internal/domain/favorites/entity_test.go
package favorites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRejectsDuplicate(t *testing.T) {
	s := NewSet()

	require.NoError(t, s.Add(Favorite{Name: "Milk", ImageURL: "http://img/milk.png"}))
	assert.ErrorIs(t, s.Add(Favorite{Name: "Milk"}), ErrDuplicateEntry)
	assert.Equal(t, 1, s.Len())
}

func TestAddEmptyName(t *testing.T) {
	s := NewSet()
	assert.ErrorIs(t, s.Add(Favorite{Name: " "}), ErrEmptyName)
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	s := NewSet()
	require.NoError(t, s.Add(Favorite{Name: "Milk"}))

	s.Remove("Bread")
	assert.Equal(t, 1, s.Len())

	s.Remove("Milk")
	assert.Equal(t, 0, s.Len())

	s.Remove("Milk")
	assert.Equal(t, 0, s.Len())
}

func TestContains(t *testing.T) {
	s := NewSet()
	require.NoError(t, s.Add(Favorite{Name: "Milk"}))

	assert.True(t, s.Contains("Milk"))
	assert.False(t, s.Contains("Bread"))
}

func TestItemsKeepsInsertionOrder(t *testing.T) {
	s := NewSet()
	for _, n := range []string{"Milk", "Bread", "Eggs"} {
		require.NoError(t, s.Add(Favorite{Name: n}))
	}

	items := s.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "Milk", items[0].Name)
	assert.Equal(t, "Bread", items[1].Name)
	assert.Equal(t, "Eggs", items[2].Name)
}
