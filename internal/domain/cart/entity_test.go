// internal/domain/cart/entity_test.go
package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRejectsDuplicateName(t *testing.T) {
	c := New()

	first, err := c.Add(Product{Name: "Milk"}, AddOptions{})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	_, err = c.Add(Product{Name: "Milk"}, AddOptions{})
	assert.ErrorIs(t, err, ErrDuplicateEntry)

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Milk", entries[0].Name)
}

func TestAddDuplicateNameIsCaseSensitive(t *testing.T) {
	c := New()

	_, err := c.Add(Product{Name: "Milk"}, AddOptions{})
	require.NoError(t, err)

	// exact match only: different casing is a different product name
	_, err = c.Add(Product{Name: "milk"}, AddOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
}

func TestAddSkipDuplicateCheck(t *testing.T) {
	c := New()

	_, err := c.Add(Product{Name: "Milk"}, AddOptions{})
	require.NoError(t, err)

	dup, err := c.Add(Product{Name: "Milk"}, AddOptions{SkipDuplicateCheck: true})
	require.NoError(t, err)
	assert.NotEmpty(t, dup.ID)
	assert.Equal(t, 2, c.Len())
}

func TestAddDefaults(t *testing.T) {
	c := New()

	e, err := c.Add(Product{Name: "Bread"}, AddOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, e.Quantity)
	assert.False(t, e.Completed)
	assert.Empty(t, e.Note)

	e2, err := c.Add(Product{Name: "Eggs", Quantity: 6, Note: "large"}, AddOptions{})
	require.NoError(t, err)
	assert.Equal(t, 6, e2.Quantity)
	assert.Equal(t, "large", e2.Note)
}

func TestAddEmptyName(t *testing.T) {
	c := New()
	_, err := c.Add(Product{Name: "   "}, AddOptions{})
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.Equal(t, 0, c.Len())
}

func TestAddManyIsBestEffort(t *testing.T) {
	c := New()
	_, err := c.Add(Product{Name: "Milk"}, AddOptions{})
	require.NoError(t, err)

	added, failed := c.AddMany([]Product{
		{Name: "Milk"}, // duplicate, should not abort the rest
		{Name: "Bread"},
		{Name: "Eggs"},
	}, AddOptions{})

	assert.Len(t, added, 2)
	require.Len(t, failed, 1)
	assert.ErrorIs(t, failed[0], ErrDuplicateEntry)
	assert.Equal(t, 3, c.Len())
}

func TestUpdateQuantityNeverDropsBelowOne(t *testing.T) {
	c := New()
	e, err := c.Add(Product{Name: "Milk", Quantity: 3}, AddOptions{})
	require.NoError(t, err)

	// decrement down to 1, then try to go below
	for q := 2; q >= -2; q-- {
		c.UpdateQuantity(e.ID, q)
	}

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Quantity)
}

func TestUpdateQuantityUnknownID(t *testing.T) {
	c := New()
	_, err := c.Add(Product{Name: "Milk"}, AddOptions{})
	require.NoError(t, err)

	c.UpdateQuantity("nope", 5)
	assert.Equal(t, 1, c.Entries()[0].Quantity)
}

func TestUpdateNote(t *testing.T) {
	c := New()
	e, err := c.Add(Product{Name: "Milk", Note: "whole"}, AddOptions{})
	require.NoError(t, err)

	c.UpdateNote(e.ID, "")
	assert.Empty(t, c.Entries()[0].Note)

	c.UpdateNote(e.ID, "skimmed")
	assert.Equal(t, "skimmed", c.Entries()[0].Note)
}

func TestToggleCompleted(t *testing.T) {
	c := New()
	e, err := c.Add(Product{Name: "Milk"}, AddOptions{})
	require.NoError(t, err)

	c.ToggleCompleted(e.ID)
	assert.True(t, c.Entries()[0].Completed)

	c.ToggleCompleted(e.ID)
	assert.False(t, c.Entries()[0].Completed)
}

func TestRemoveIsIdempotent(t *testing.T) {
	c := New()
	e, err := c.Add(Product{Name: "Milk"}, AddOptions{})
	require.NoError(t, err)

	c.Remove(e.ID)
	assert.Equal(t, 0, c.Len())

	// second removal is a no-op, not an error
	c.Remove(e.ID)
	assert.Equal(t, 0, c.Len())
}

func TestSummarize(t *testing.T) {
	c := New()

	quantities := []int{2, 1, 4}
	names := []string{"Milk", "Bread", "Eggs"}

	var ids []string
	for i, n := range names {
		e, err := c.Add(Product{Name: n, Quantity: quantities[i]}, AddOptions{})
		require.NoError(t, err)
		ids = append(ids, e.ID)
	}

	c.ToggleCompleted(ids[0])
	c.ToggleCompleted(ids[2])

	s := c.Summarize()
	assert.Equal(t, Summary{TotalItems: 3, TotalQuantity: 7, CompletedItems: 2}, s)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, New().Summarize())
}
