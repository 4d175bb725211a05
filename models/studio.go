package models

// StudioEditRequest represents the request body for an AI Studio edit
// Example: {"imageBase64": "...", "mimeType": "image/jpeg", "prompt": "adiciona neve", "setBackground": true}
type StudioEditRequest struct {
	ImageBase64 string `json:"imageBase64"`
	MimeType    string `json:"mimeType"`
	Prompt      string `json:"prompt"`
	// SetBackground promotes the generated image to the app backdrop.
	SetBackground bool `json:"setBackground,omitempty"`
}

// StudioEditResponse carries the generated PNG back to the client.
// Background is set only when the result was promoted to the app backdrop.
type StudioEditResponse struct {
	ImageBase64 string `json:"imageBase64"`
	MimeType    string `json:"mimeType"`
	Background  string `json:"background,omitempty"`
}
