package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"ds-burguer/models"
	"ds-burguer/service"
)

// BackgroundController handles HTTP requests for the app backdrop preference
type BackgroundController struct {
	backgroundService *service.BackgroundService
}

// NewBackgroundController creates a new BackgroundController
func NewBackgroundController(backgroundService *service.BackgroundService) *BackgroundController {
	return &BackgroundController{backgroundService: backgroundService}
}

// Handle routes GET/PUT/DELETE /background
func (c *BackgroundController) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c.get(w, r)
	case http.MethodPut:
		c.set(w, r)
	case http.MethodDelete:
		c.clear(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// get returns the backdrop currently in effect (persisted value or default).
func (c *BackgroundController) get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.backgroundService.Active(r.Context()))
}

// set stores a new backdrop value
// Example request: {"value": "https://example.com/bg.jpg"}
func (c *BackgroundController) set(w http.ResponseWriter, r *http.Request) {
	var req models.SetBackgroundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := c.backgroundService.Set(r.Context(), req.Value); err != nil {
		log.Printf("❌ Background.set: %v", err)
		http.Error(w, "Failed to save background", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, c.backgroundService.Active(r.Context()))
}

// clear removes the persisted backdrop, reverting to the default.
func (c *BackgroundController) clear(w http.ResponseWriter, r *http.Request) {
	if err := c.backgroundService.Clear(r.Context()); err != nil {
		log.Printf("❌ Background.clear: %v", err)
		http.Error(w, "Failed to clear background", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, c.backgroundService.Active(r.Context()))
}
