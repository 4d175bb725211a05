package controller

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"ds-burguer/models"
	"ds-burguer/repository"
	"ds-burguer/service"
)

// MenuController handles HTTP requests for the menu catalog
type MenuController struct {
	menuRepo    repository.MenuRepositoryInterface
	cardService *service.MenuCardService
}

// NewMenuController creates a new MenuController
func NewMenuController(menuRepo repository.MenuRepositoryInterface, cardService *service.MenuCardService) *MenuController {
	return &MenuController{
		menuRepo:    menuRepo,
		cardService: cardService,
	}
}

// GetMenu handles GET /menu
// Returns every category with its products, plus navigation labels and the
// store status badge.
func (c *MenuController) GetMenu(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resp := models.MenuResponse{
		Status: "open",
		Menu:   make(map[models.Category][]models.Product),
	}
	for _, cat := range models.ProductCategories() {
		resp.Categories = append(resp.Categories, models.CategoryInfo{ID: cat, Label: cat.Label()})
		resp.Menu[cat] = c.menuRepo.ItemsByCategory(cat)
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetCategory handles GET /menu/{category}
func (c *MenuController) GetCategory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	cat := models.Category(strings.TrimPrefix(r.URL.Path, "/menu/"))
	if !cat.HasProducts() {
		log.Printf("❌ GetCategory: Unknown category: %s", cat)
		http.Error(w, fmt.Sprintf("Unknown category: %s", cat), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, models.CategoryProductsResponse{
		Category: cat,
		Label:    cat.Label(),
		Products: c.menuRepo.ItemsByCategory(cat),
	})
}

// MenuCard handles GET /menu/card?format=html|png|pdf
// html serves the render page headless Chrome loads; png and pdf drive
// Chrome over that page.
func (c *MenuController) MenuCard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "html"
	}

	switch format {
	case "html":
		html, err := c.cardService.RenderHTML()
		if err != nil {
			log.Printf("❌ MenuCard: Failed to render HTML: %v", err)
			http.Error(w, "Failed to render menu card", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(html))
	case "png":
		png, err := c.cardService.GeneratePNG(r.Context())
		if err != nil {
			log.Printf("❌ MenuCard: Failed to generate PNG: %v", err)
			http.Error(w, "Failed to generate menu card image", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Disposition", `attachment; filename="ds-burguer-menu.png"`)
		w.WriteHeader(http.StatusOK)
		w.Write(png)
	case "pdf":
		pdf, err := c.cardService.GeneratePDF(r.Context())
		if err != nil {
			log.Printf("❌ MenuCard: Failed to generate PDF: %v", err)
			http.Error(w, "Failed to generate menu card PDF", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="ds-burguer-menu.pdf"`)
		w.WriteHeader(http.StatusOK)
		w.Write(pdf)
	default:
		http.Error(w, fmt.Sprintf("Unknown format: %s", format), http.StatusBadRequest)
	}
}
