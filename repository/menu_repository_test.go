package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ds-burguer/models"
)

func TestMenuCoversEveryProductCategory(t *testing.T) {
	repo := NewMenuRepository()

	for _, cat := range models.ProductCategories() {
		assert.NotEmpty(t, repo.ItemsByCategory(cat), "category %s has no products", cat)
	}
}

func TestItemsByCategoryIsStable(t *testing.T) {
	repo := NewMenuRepository()

	first := repo.ItemsByCategory(models.CategoryBurgers)
	second := repo.ItemsByCategory(models.CategoryBurgers)
	assert.Equal(t, first, second)

	require.Len(t, first, 3)
	assert.Equal(t, []int{1, 2, 7}, []int{first[0].ID, first[1].ID, first[2].ID})
}

func TestItemsByCategoryOnlyReturnsThatCategory(t *testing.T) {
	repo := NewMenuRepository()

	for _, cat := range models.ProductCategories() {
		for _, p := range repo.ItemsByCategory(cat) {
			assert.Equal(t, cat, p.Category)
		}
	}

	assert.Empty(t, repo.ItemsByCategory(models.CategoryAIStudio))
	assert.Empty(t, repo.ItemsByCategory(models.Category("nope")))
}

func TestGetByID(t *testing.T) {
	repo := NewMenuRepository()

	p, ok := repo.GetByID(5)
	require.True(t, ok)
	assert.Equal(t, "Água Mineral", p.Name)
	assert.Equal(t, int64(400), p.Price)

	_, ok = repo.GetByID(999)
	assert.False(t, ok)
}

func TestProductIDsAreUnique(t *testing.T) {
	repo := NewMenuRepository()

	seen := make(map[int]bool)
	for _, p := range repo.All() {
		assert.False(t, seen[p.ID], "duplicate product id %d", p.ID)
		seen[p.ID] = true
	}
}

func TestAllReturnsACopy(t *testing.T) {
	repo := NewMenuRepository()

	products := repo.All()
	products[0].Name = "mutated"

	fresh := repo.All()
	assert.NotEqual(t, "mutated", fresh[0].Name)
}
