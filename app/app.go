package app

import (
	"context"
	"log"
	"os"

	"ds-burguer/app/controller"
	"ds-burguer/app/router"
	"ds-burguer/db"
	"ds-burguer/repository"
	"ds-burguer/service"
)

// Initialize wires the storefront: repositories, services, controllers and
// routes. It owns no business logic.
func Initialize() error {
	// Background preference persistence. A missing or unreachable database is
	// non-fatal: the backdrop falls back to an in-memory store and only the
	// current process keeps overrides.
	var prefs repository.PreferenceRepositoryInterface
	if err := db.InitDB(); err != nil {
		log.Printf("⚠️  Database unavailable, background preference will not survive restarts: %v", err)
		prefs = repository.NewMemoryPreferenceRepository()
	} else {
		prefs = repository.NewPreferenceRepository()
	}

	menuRepo := repository.NewMenuRepository()
	sessions := repository.NewSessionRepository()

	backgroundService := service.NewBackgroundService(prefs)

	whatsappNumber := os.Getenv("WHATSAPP_NUMBER")
	if whatsappNumber == "" {
		whatsappNumber = "244940723636"
	}
	checkoutService := service.NewCheckoutService(whatsappNumber)

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	cardService := service.NewMenuCardService(menuRepo, baseURL)

	// The image editor needs a Gemini key; without one the AI Studio panel is
	// disabled but the rest of the storefront works.
	var editor service.ImageEditorInterface
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		geminiEditor, err := service.NewGeminiImageEditor(context.Background(), apiKey)
		if err != nil {
			log.Printf("⚠️  Failed to initialize image editor, AI Studio disabled: %v", err)
		} else {
			editor = geminiEditor
		}
	} else {
		log.Printf("⚠️  GEMINI_API_KEY is not set, AI Studio disabled")
	}

	controllers := &router.Controllers{
		Menu:       controller.NewMenuController(menuRepo, cardService),
		Session:    controller.NewSessionController(sessions, menuRepo),
		Checkout:   controller.NewCheckoutController(sessions, checkoutService),
		Background: controller.NewBackgroundController(backgroundService),
		Studio:     controller.NewStudioController(sessions, editor, backgroundService),
	}

	router.SetupRoutes(controllers)

	return nil
}
