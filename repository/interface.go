package repository

import (
	"context"

	"ds-burguer/models"
)

// MenuRepositoryInterface defines the contract for catalog lookups.
// The menu is fixed at build time; implementations must return the same
// ordered sequence on every call.
type MenuRepositoryInterface interface {
	All() []models.Product
	ItemsByCategory(category models.Category) []models.Product
	GetByID(id int) (models.Product, bool)
}

// PreferenceRepositoryInterface defines the contract for persisted
// key/value preferences (currently only the app background).
type PreferenceRepositoryInterface interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// SessionRepositoryInterface defines the contract for the in-memory
// session store.
type SessionRepositoryInterface interface {
	Create() *models.Session
	Get(id string) (*models.Session, bool)
	Delete(id string)
}
