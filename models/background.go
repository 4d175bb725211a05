package models

// DefaultBackground is the compiled-in backdrop used when no preference has
// been saved.
const DefaultBackground = "https://images.unsplash.com/photo-1550547660-d9450f859349?q=80&w=1965&auto=format&fit=crop"

// BackgroundResponse represents the active app backdrop
// Example: {"value": "https://...", "custom": false}
type BackgroundResponse struct {
	Value  string `json:"value"`
	Custom bool   `json:"custom"`
}

// SetBackgroundRequest represents the request body for overriding the backdrop
// Value may be a remote image URL or an inline data: URI.
type SetBackgroundRequest struct {
	Value string `json:"value"`
}
