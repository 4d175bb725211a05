package controller

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"ds-burguer/models"
	"ds-burguer/repository"
	"ds-burguer/service"
	"ds-burguer/utils"
)

// StudioController handles AI Studio edit requests: a photo plus a free-text
// instruction goes to the image gateway; the result comes back as base64 PNG
// and can optionally be promoted to the app backdrop.
type StudioController struct {
	sessions          repository.SessionRepositoryInterface
	editor            service.ImageEditorInterface
	backgroundService *service.BackgroundService
}

// NewStudioController creates a new StudioController. editor may be nil when
// no Gemini key is configured; edits then answer 503.
func NewStudioController(
	sessions repository.SessionRepositoryInterface,
	editor service.ImageEditorInterface,
	backgroundService *service.BackgroundService,
) *StudioController {
	return &StudioController{
		sessions:          sessions,
		editor:            editor,
		backgroundService: backgroundService,
	}
}

// Edit handles POST /sessions/{id}/studio/edit
// At most one generation may be in flight per session; concurrent requests
// are rejected rather than queued. Failures surface as a generic error and
// leave no partial state: the user retries by submitting again.
// Example request: {"imageBase64": "...", "mimeType": "image/jpeg", "prompt": "adiciona neve"}
func (c *StudioController) Edit(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if c.editor == nil {
		http.Error(w, "Image editor is not configured", http.StatusServiceUnavailable)
		return
	}

	var req models.StudioEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Prompt) == "" {
		http.Error(w, "prompt is required", http.StatusBadRequest)
		return
	}
	if req.ImageBase64 == "" {
		http.Error(w, "imageBase64 is required", http.StatusBadRequest)
		return
	}

	imageData, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		http.Error(w, "imageBase64 is not valid base64", http.StatusBadRequest)
		return
	}

	session, ok := c.sessions.Get(id)
	if !ok {
		log.Printf("❌ Studio.Edit: Session not found: %s", id)
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	// Claim the in-flight slot for this session.
	session.Lock()
	if session.Generating {
		session.Unlock()
		log.Printf("⏳ Studio.Edit: Generation already in flight: session=%s", id)
		http.Error(w, "A generation is already in progress for this session", http.StatusConflict)
		return
	}
	session.Generating = true
	session.Unlock()

	defer func() {
		session.Lock()
		session.Generating = false
		session.Unlock()
	}()

	imageData, mimeType := service.NormalizeUpload(imageData, req.MimeType)

	log.Printf("🪄 Studio.Edit: Generating: session=%s bytes=%d prompt=%q", id, len(imageData), req.Prompt)
	result, err := c.editor.EditImage(r.Context(), imageData, mimeType, req.Prompt)
	if err != nil {
		utils.StudioEdits.WithLabelValues("error").Inc()
		log.Printf("❌ Studio.Edit: Generation failed: session=%s: %v", id, err)
		http.Error(w, "Não foi possível gerar a imagem. Tente novamente.", http.StatusBadGateway)
		return
	}
	utils.StudioEdits.WithLabelValues("ok").Inc()

	resp := models.StudioEditResponse{
		ImageBase64: base64.StdEncoding.EncodeToString(result),
		MimeType:    "image/png",
	}

	if req.SetBackground {
		dataURI := "data:image/png;base64," + resp.ImageBase64
		if err := c.backgroundService.Set(r.Context(), dataURI); err != nil {
			// The generation itself succeeded; report the result anyway.
			log.Printf("⚠️  Studio.Edit: Failed to persist background: %v", err)
		} else {
			resp.Background = dataURI
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
