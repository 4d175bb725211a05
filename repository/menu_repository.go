package repository

import "ds-burguer/models"

// MenuRepository serves the static menu. The catalog is configuration, not
// data: it is defined once here and never mutated at runtime.
type MenuRepository struct{}

// NewMenuRepository creates a new MenuRepository
func NewMenuRepository() *MenuRepository {
	return &MenuRepository{}
}

// Ensure MenuRepository implements MenuRepositoryInterface
var _ MenuRepositoryInterface = (*MenuRepository)(nil)

// menu is the full catalog in display order per category.
var menu = []models.Product{
	{
		ID:       1,
		Name:     "Hamburguer Simples",
		Price:    2000,
		Desc:     "Pão brioche, carne bovina 150g, queijo cheddar, alface, tomate e molho da casa.",
		Category: models.CategoryBurgers,
		Image:    "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?q=80&w=300&auto=format&fit=crop",
	},
	{
		ID:       2,
		Name:     "Hamburguer Completo",
		Price:    3000,
		Desc:     "Pão brioche, carne bovina 150g, queijo cheddar e muito bacon crocante.",
		Category: models.CategoryBurgers,
		Image:    "https://images.unsplash.com/photo-1594212699903-ec8a3eca50f5?q=80&w=300&auto=format&fit=crop",
	},
	{
		ID:       7,
		Name:     "Magoga DS BURGUER",
		Price:    1000,
		Desc:     "Dois smash burgers, cheddar duplo, cebola caramelizada.",
		Category: models.CategoryBurgers,
		Image:    "https://images.unsplash.com/photo-1553979459-d2229ba7433b?q=80&w=300&auto=format&fit=crop",
	},
	{
		ID:       3,
		Name:     "Combo Individual",
		Price:    6500,
		Desc:     "1 Classic + Batata Frita + Bebida 330ml.",
		Category: models.CategoryCombos,
		Image:    "https://images.unsplash.com/photo-1594212699903-ec8a3eca50f5?q=80&w=300&auto=format&fit=crop",
	},
	{
		ID:       4,
		Name:     "Coca-Cola 330ml",
		Price:    800,
		Desc:     "Lata bem gelada.",
		Category: models.CategoryBebidas,
		Image:    "https://images.unsplash.com/photo-1622483767028-3f66f32aef97?q=80&w=300&auto=format&fit=crop",
	},
	{
		ID:       5,
		Name:     "Água Mineral",
		Price:    400,
		Desc:     "Sem gás 500ml.",
		Category: models.CategoryBebidas,
		Image:    "https://images.unsplash.com/photo-1548839140-29a749e1cf4d?q=80&w=300&auto=format&fit=crop",
	},
	{
		ID:       6,
		Name:     "Mousse de Chocolate",
		Price:    2000,
		Desc:     "Artesanal e cremoso.",
		Category: models.CategorySobremesas,
		Image:    "https://images.unsplash.com/photo-1541783245831-57d6fb0926d3?q=80&w=300&auto=format&fit=crop",
	},
}

// All returns every product in catalog order.
func (r *MenuRepository) All() []models.Product {
	out := make([]models.Product, len(menu))
	copy(out, menu)
	return out
}

// ItemsByCategory returns the products of one menu section, preserving
// catalog order. Unknown or product-less categories yield an empty slice.
func (r *MenuRepository) ItemsByCategory(category models.Category) []models.Product {
	var out []models.Product
	for _, p := range menu {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// GetByID looks up a product by its identifier.
func (r *MenuRepository) GetByID(id int) (models.Product, bool) {
	for _, p := range menu {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
