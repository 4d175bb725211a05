package models

// Category identifies a section of the storefront navigation.
// "ai-studio" is a selectable panel but never carries products.
type Category string

const (
	CategoryBurgers    Category = "burgers"
	CategoryCombos     Category = "combos"
	CategoryBebidas    Category = "bebidas"
	CategorySobremesas Category = "sobremesas"
	CategoryAIStudio   Category = "ai-studio"
)

// ProductCategories returns the categories that hold menu products, in
// navigation order. CategoryAIStudio is deliberately excluded.
func ProductCategories() []Category {
	return []Category{CategoryBurgers, CategoryCombos, CategoryBebidas, CategorySobremesas}
}

// Valid reports whether c is a selectable category (product sections plus the
// AI Studio panel).
func (c Category) Valid() bool {
	switch c {
	case CategoryBurgers, CategoryCombos, CategoryBebidas, CategorySobremesas, CategoryAIStudio:
		return true
	}
	return false
}

// HasProducts reports whether c is a menu section with products behind it.
func (c Category) HasProducts() bool {
	return c.Valid() && c != CategoryAIStudio
}

// Label returns the uppercase navigation label for the category.
func (c Category) Label() string {
	switch c {
	case CategoryBurgers:
		return "BURGERS"
	case CategoryCombos:
		return "COMBOS"
	case CategoryBebidas:
		return "BEBIDAS"
	case CategorySobremesas:
		return "SOBREMESAS"
	case CategoryAIStudio:
		return "AI STUDIO"
	}
	return ""
}

// Product represents a sellable menu entry. Prices are whole kwanzas, no
// fractional units.
type Product struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Price    int64    `json:"price"`
	Desc     string   `json:"desc"`
	Category Category `json:"category"`
	Image    string   `json:"image,omitempty"`
}

// CategoryInfo describes a navigation entry in the menu response.
type CategoryInfo struct {
	ID    Category `json:"id"`
	Label string   `json:"label"`
}

// MenuResponse represents the response for the full menu
// Example response:
//
//	{
//	  "status": "open",
//	  "categories": [{"id": "burgers", "label": "BURGERS"}],
//	  "menu": {"burgers": [{"id": 1, "name": "Hamburguer Simples", "price": 2000, ...}]}
//	}
type MenuResponse struct {
	Status     string                 `json:"status"`
	Categories []CategoryInfo         `json:"categories"`
	Menu       map[Category][]Product `json:"menu"`
}

// CategoryProductsResponse represents the response for a single menu section
type CategoryProductsResponse struct {
	Category Category  `json:"category"`
	Label    string    `json:"label"`
	Products []Product `json:"products"`
}
