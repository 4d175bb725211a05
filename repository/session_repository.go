package repository

import (
	"sync"

	"github.com/google/uuid"

	"ds-burguer/models"
)

// SessionRepository keeps storefront sessions in memory. Sessions hold cart
// and view state only; losing them on restart mirrors losing a browser tab.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]*models.Session),
	}
}

// Ensure SessionRepository implements SessionRepositoryInterface
var _ SessionRepositoryInterface = (*SessionRepository)(nil)

// Create allocates a new session with a fresh identifier.
func (r *SessionRepository) Create() *models.Session {
	session := models.NewSession(uuid.NewString())
	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()
	return session
}

// Get returns the session with the given id, if it exists.
func (r *SessionRepository) Get(id string) (*models.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	return session, ok
}

// Delete removes a session.
func (r *SessionRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}
