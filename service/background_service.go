package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"ds-burguer/models"
	"ds-burguer/repository"
)

// backgroundKey is the single preference key holding the backdrop override.
const backgroundKey = "app_bg"

// BackgroundService owns the persisted app backdrop. A saved value (image URL
// or data: URI) overrides the compiled-in default; clearing it removes the
// persisted row entirely.
type BackgroundService struct {
	prefs repository.PreferenceRepositoryInterface
}

// NewBackgroundService creates a new BackgroundService
func NewBackgroundService(prefs repository.PreferenceRepositoryInterface) *BackgroundService {
	return &BackgroundService{prefs: prefs}
}

// Active returns the backdrop currently in effect. Storage read failures are
// non-fatal: the default backdrop is returned and the error only logged.
func (s *BackgroundService) Active(ctx context.Context) models.BackgroundResponse {
	value, found, err := s.prefs.Get(ctx, backgroundKey)
	if err != nil {
		log.Printf("⚠️  Background: falling back to default backdrop: %v", err)
		return models.BackgroundResponse{Value: models.DefaultBackground}
	}
	if !found || value == "" {
		return models.BackgroundResponse{Value: models.DefaultBackground}
	}
	return models.BackgroundResponse{Value: value, Custom: true}
}

// Set stores value as the active backdrop.
func (s *BackgroundService) Set(ctx context.Context, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("background value cannot be empty")
	}
	if err := s.prefs.Set(ctx, backgroundKey, value); err != nil {
		return fmt.Errorf("failed to save background: %w", err)
	}
	return nil
}

// Clear removes the persisted backdrop, reverting to the default.
func (s *BackgroundService) Clear(ctx context.Context) error {
	if err := s.prefs.Delete(ctx, backgroundKey); err != nil {
		return fmt.Errorf("failed to clear background: %w", err)
	}
	return nil
}
