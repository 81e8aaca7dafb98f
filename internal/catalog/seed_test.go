package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialIngredients(t *testing.T) {
	require.NotEmpty(t, InitialIngredients)

	seen := make(map[string]bool, len(InitialIngredients))
	categories := make(map[Category]int)
	for _, ing := range InitialIngredients {
		assert.False(t, seen[ing.ID], "duplicate id %s", ing.ID)
		seen[ing.ID] = true
		assert.True(t, ing.Category.Valid(), "%s has invalid category %q", ing.ID, ing.Category)
		assert.GreaterOrEqual(t, ing.Price, 0, "%s", ing.ID)
		assert.GreaterOrEqual(t, ing.Stock, 0, "%s", ing.ID)
		categories[ing.Category]++
	}
	// every build slot has at least one option
	for _, c := range []Category{CategoryBase, CategorySauce, CategoryCheese, CategoryVeggie, CategoryMeat} {
		assert.Positive(t, categories[c], "no ingredients in category %s", c)
	}
}

func TestCategoryValid(t *testing.T) {
	assert.True(t, CategoryBase.Valid())
	assert.True(t, CategoryMeat.Valid())
	assert.False(t, Category("dessert").Valid())
	assert.False(t, Category("").Valid())
}
