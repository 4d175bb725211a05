package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"ds-burguer/models"
	"ds-burguer/repository"
	"ds-burguer/service"
	"ds-burguer/utils"
)

// CheckoutController handles the checkout dialog transitions and the order
// projection. The dialog moves closed -> open -> closed (cancel or submit);
// opening requires a non-empty cart, so an empty cart can never be submitted.
type CheckoutController struct {
	sessions        repository.SessionRepositoryInterface
	checkoutService *service.CheckoutService
}

// NewCheckoutController creates a new CheckoutController
func NewCheckoutController(sessions repository.SessionRepositoryInterface, checkoutService *service.CheckoutService) *CheckoutController {
	return &CheckoutController{
		sessions:        sessions,
		checkoutService: checkoutService,
	}
}

func (c *CheckoutController) lookup(w http.ResponseWriter, id string) (*models.Session, bool) {
	session, ok := c.sessions.Get(id)
	if !ok {
		log.Printf("❌ Session not found: %s", id)
		http.Error(w, "Session not found", http.StatusNotFound)
		return nil, false
	}
	return session, true
}

// Open handles POST /sessions/{id}/checkout/open
func (c *CheckoutController) Open(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session, ok := c.lookup(w, id)
	if !ok {
		return
	}

	session.Lock()
	defer session.Unlock()

	if session.Cart.IsEmpty() {
		log.Printf("❌ Checkout.Open: Cart is empty: session=%s", id)
		http.Error(w, "Cannot open checkout with an empty cart", http.StatusConflict)
		return
	}

	session.CheckoutOpen = true
	writeJSON(w, http.StatusOK, session.Snapshot())
}

// Cancel handles POST /sessions/{id}/checkout/cancel
// Closing an already-closed dialog is harmless.
func (c *CheckoutController) Cancel(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session, ok := c.lookup(w, id)
	if !ok {
		return
	}

	session.Lock()
	defer session.Unlock()
	session.CheckoutOpen = false
	writeJSON(w, http.StatusOK, session.Snapshot())
}

// Submit handles POST /sessions/{id}/checkout/submit
// Projects the cart into the WhatsApp message and handoff URL, then clears
// the cart and closes the dialog. The handoff itself is the client's job;
// no delivery confirmation exists.
// Example request: {"nome": "Ana", "telefone": "+244...", "endereco": "Maianga", "obs": ""}
func (c *CheckoutController) Submit(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	session, ok := c.lookup(w, id)
	if !ok {
		return
	}

	session.Lock()
	defer session.Unlock()

	if !session.CheckoutOpen {
		log.Printf("❌ Checkout.Submit: Checkout not open: session=%s", id)
		http.Error(w, "Checkout is not open", http.StatusConflict)
		return
	}
	if session.Cart.IsEmpty() {
		log.Printf("❌ Checkout.Submit: Cart is empty: session=%s", id)
		http.Error(w, "Cannot submit an empty cart", http.StatusConflict)
		return
	}

	snapshot := session.Cart.Snapshot()
	message, err := c.checkoutService.BuildOrderMessage(&snapshot, &req)
	if err != nil {
		log.Printf("❌ Checkout.Submit: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := models.CheckoutResponse{
		Message:     message,
		WhatsAppURL: c.checkoutService.WhatsAppURL(message),
		TotalCount:  snapshot.TotalCount(),
		TotalPrice:  snapshot.TotalPrice(),
	}

	// The draft is gone once the handoff URL leaves the server.
	session.Cart.Clear()
	session.CheckoutOpen = false
	utils.OrdersSubmitted.Inc()
	log.Printf("✅ Checkout.Submit: Order projected: session=%s items=%d total=%d", id, resp.TotalCount, resp.TotalPrice)

	writeJSON(w, http.StatusOK, resp)
}
