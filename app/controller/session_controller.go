package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"ds-burguer/models"
	"ds-burguer/repository"
)

// SessionController handles HTTP requests for storefront sessions: cart
// mutation and navigation state.
type SessionController struct {
	sessions repository.SessionRepositoryInterface
	menuRepo repository.MenuRepositoryInterface
}

// NewSessionController creates a new SessionController
func NewSessionController(sessions repository.SessionRepositoryInterface, menuRepo repository.MenuRepositoryInterface) *SessionController {
	return &SessionController{
		sessions: sessions,
		menuRepo: menuRepo,
	}
}

// lookup fetches the session for a request path id, writing the error
// response itself on failure.
func (c *SessionController) lookup(w http.ResponseWriter, id string) (*models.Session, bool) {
	session, ok := c.sessions.Get(id)
	if !ok {
		log.Printf("❌ Session not found: %s", id)
		http.Error(w, "Session not found", http.StatusNotFound)
		return nil, false
	}
	return session, true
}

// CreateSession handles POST /sessions
// Example response: {"id": "...", "cart": {"lines": []}, "totalCount": 0, ...}
func (c *SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session := c.sessions.Create()
	log.Printf("✅ CreateSession: Created session id=%s", session.ID)

	session.Lock()
	defer session.Unlock()
	writeJSON(w, http.StatusCreated, session.Snapshot())
}

// GetSession handles GET /sessions/{id}
func (c *SessionController) GetSession(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session, ok := c.lookup(w, id)
	if !ok {
		return
	}

	session.Lock()
	defer session.Unlock()
	writeJSON(w, http.StatusOK, session.Snapshot())
}

// SetCategory handles PUT /sessions/{id}/category
// Example request: {"category": "bebidas"}
func (c *SessionController) SetCategory(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.SetCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if !req.Category.Valid() {
		log.Printf("❌ SetCategory: Invalid category: %s", req.Category)
		http.Error(w, fmt.Sprintf("Invalid category: %s", req.Category), http.StatusBadRequest)
		return
	}

	session, ok := c.lookup(w, id)
	if !ok {
		return
	}

	session.Lock()
	defer session.Unlock()
	session.ActiveCategory = req.Category
	writeJSON(w, http.StatusOK, session.Snapshot())
}

// UpdateCart handles POST /sessions/{id}/cart
// A single signed delta covers add, increment and decrement; a quantity
// reaching zero removes the line.
// Example request: {"productId": 1, "delta": 1}
func (c *SessionController) UpdateCart(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.UpdateCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	product, found := c.menuRepo.GetByID(req.ProductID)
	if !found {
		log.Printf("❌ UpdateCart: Product not found: id=%d", req.ProductID)
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	session, ok := c.lookup(w, id)
	if !ok {
		return
	}

	session.Lock()
	defer session.Unlock()
	session.Cart.SetQuantity(product, req.Delta)
	log.Printf("🛒 UpdateCart: session=%s product=%d delta=%+d count=%d", id, req.ProductID, req.Delta, session.Cart.TotalCount())
	writeJSON(w, http.StatusOK, session.Snapshot())
}
