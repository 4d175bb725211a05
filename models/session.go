package models

import "sync"

// Session is the top-level state object for one storefront visitor: the cart,
// the active navigation category and the checkout dialog state all hang off
// it. Handlers run concurrently, so mutations go through Lock/Unlock.
type Session struct {
	mu sync.Mutex

	ID             string
	Cart           Cart
	ActiveCategory Category
	CheckoutOpen   bool
	// Generating guards the image-edit gateway: while a generation is in
	// flight for this session, further generate requests are rejected.
	Generating bool
}

// NewSession creates a session with the storefront's initial view state.
func NewSession(id string) *Session {
	return &Session{
		ID:             id,
		ActiveCategory: CategoryBurgers,
	}
}

// Lock acquires the session for mutation.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session.
func (s *Session) Unlock() { s.mu.Unlock() }

// Snapshot returns the session state for responses. Caller must hold the lock.
func (s *Session) Snapshot() SessionResponse {
	return SessionResponse{
		ID:             s.ID,
		Cart:           s.Cart.Snapshot(),
		TotalCount:     s.Cart.TotalCount(),
		TotalPrice:     s.Cart.TotalPrice(),
		ActiveCategory: s.ActiveCategory,
		CheckoutOpen:   s.CheckoutOpen,
	}
}

// SessionResponse represents the session state returned to the client
// Example response:
//
//	{
//	  "id": "7f6c1e02-...",
//	  "cart": {"lines": [{"productId": 1, "name": "Hamburguer Simples", "price": 2000, "qty": 2}]},
//	  "totalCount": 2,
//	  "totalPrice": 4000,
//	  "activeCategory": "burgers",
//	  "checkoutOpen": false
//	}
type SessionResponse struct {
	ID             string   `json:"id"`
	Cart           Cart     `json:"cart"`
	TotalCount     int      `json:"totalCount"`
	TotalPrice     int64    `json:"totalPrice"`
	ActiveCategory Category `json:"activeCategory"`
	CheckoutOpen   bool     `json:"checkoutOpen"`
}

// SetCategoryRequest represents the request body for switching the active view
// Example: {"category": "bebidas"}
type SetCategoryRequest struct {
	Category Category `json:"category"`
}
