package mockdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeDetailIdentifier(t *testing.T) {
	byID, ok := RecipeDetail("1")
	require.True(t, ok)
	assert.Equal(t, "pet-bottle-planter", byID.Slug)

	bySlug, ok := RecipeDetail("pet-bottle-planter")
	require.True(t, ok)
	assert.Equal(t, byID, bySlug)

	_, ok = RecipeDetail("2")
	assert.False(t, ok)
	_, ok = RecipeDetail("old-clothes-eco-bag")
	assert.False(t, ok)
}

func TestRecipeDetailShape(t *testing.T) {
	detail, ok := RecipeDetail("1")
	require.True(t, ok)

	assert.Len(t, detail.Materials, 3)
	assert.Len(t, detail.Tools, 2)
	assert.Len(t, detail.Steps, 4)
	assert.Len(t, detail.Comments, 2)

	// isRequired是isEssential的别名，两个字段必须一致
	for _, tool := range detail.Tools {
		assert.Equal(t, tool.IsEssential, tool.IsRequired, "tool %s", tool.Name)
	}

	for i, step := range detail.Steps {
		assert.Equal(t, i+1, step.StepNumber)
	}
}

func TestRecipeListEchoesPagination(t *testing.T) {
	result := RecipeList(3, 7)
	assert.Equal(t, 3, result.Pagination.CurrentPage)
	assert.Equal(t, 7, result.Pagination.Limit)
	assert.Len(t, result.Recipes, 2)
}

func TestCategoriesSorted(t *testing.T) {
	categories := Categories()
	require.Len(t, categories, 5)
	for i := 1; i < len(categories); i++ {
		assert.Less(t, categories[i-1].SortOrder, categories[i].SortOrder)
	}
}
