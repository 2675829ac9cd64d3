// internal/domain/catalog/filter_test.go
package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() []Product {
	return []Product{
		{Name: "Whole Milk"},
		{Name: "Skimmed Milk"},
		{Name: "Bread"},
		{Name: "Eggs"},
		{Name: "Milk Chocolate"},
	}
}

func TestFilterCaseInsensitiveSubstring(t *testing.T) {
	res := FilterAndPage(sampleCatalog(), "mIlK", 1, 10)

	require.Len(t, res.Items, 3)
	assert.Equal(t, 3, res.TotalCount)
	assert.Equal(t, 1, res.TotalPages)
	for _, p := range res.Items {
		assert.Contains(t, p.Name, "Milk")
	}
}

func TestEmptyTermMatchesEverything(t *testing.T) {
	res := FilterAndPage(sampleCatalog(), "   ", 1, 10)
	assert.Equal(t, 5, res.TotalCount)
	assert.Len(t, res.Items, 5)
}

func TestTotalPagesIsCeiling(t *testing.T) {
	res := FilterAndPage(sampleCatalog(), "", 1, 2)
	assert.Equal(t, 3, res.TotalPages) // ceil(5/2)
	assert.Len(t, res.Items, 2)
}

func TestPageClamping(t *testing.T) {
	catalog := sampleCatalog()

	// below range → first page
	res := FilterAndPage(catalog, "", 0, 2)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, "Whole Milk", res.Items[0].Name)

	// above range → last page
	res = FilterAndPage(catalog, "", 99, 2)
	assert.Equal(t, 3, res.Page)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Milk Chocolate", res.Items[0].Name)
}

func TestNoMatchesYieldsEmptyFirstPage(t *testing.T) {
	res := FilterAndPage(sampleCatalog(), "zzz", 3, 10)

	assert.Empty(t, res.Items)
	assert.Equal(t, 0, res.TotalCount)
	assert.Equal(t, 0, res.TotalPages)
	assert.Equal(t, 1, res.Page)
}

func TestPerPageDefault(t *testing.T) {
	var big []Product
	for i := 0; i < 100; i++ {
		big = append(big, Product{Name: fmt.Sprintf("Product %03d", i)})
	}

	res := FilterAndPage(big, "", 1, 0)
	assert.Equal(t, DefaultPerPage, res.PerPage)
	assert.Len(t, res.Items, DefaultPerPage)
	assert.Equal(t, 3, res.TotalPages) // ceil(100/48)
}

func TestResultIsACopy(t *testing.T) {
	catalog := sampleCatalog()
	res := FilterAndPage(catalog, "", 1, 10)

	res.Items[0].Name = "mutated"
	assert.Equal(t, "Whole Milk", catalog[0].Name)
}

func TestHasImage(t *testing.T) {
	assert.False(t, Product{Name: "Milk", ImageURL: NoImage}.HasImage())
	assert.False(t, Product{Name: "Milk"}.HasImage())
	assert.True(t, Product{Name: "Milk", ImageURL: "http://img/milk.png"}.HasImage())
}
