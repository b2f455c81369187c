// ABOUTME: Session service holding one scenario table per browser or CLI session
// ABOUTME: Tables live in the TTL cache and are updated with read-reduce-write under a lock

package services

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"sync"

	"github.com/chrisspier/vdb-benchmark-app/backend/cache"
	"github.com/chrisspier/vdb-benchmark-app/backend/models"
)

// SessionService manages per-session scenario tables
type SessionService struct {
	cache   *cache.Cache[models.TableState]
	catalog *PresetCatalog
	mu      sync.Mutex
}

// NewSessionService creates a new session service
func NewSessionService(c *cache.Cache[models.TableState], catalog *PresetCatalog) *SessionService {
	return &SessionService{cache: c, catalog: catalog}
}

// Create starts a session whose table is seeded from the preset catalog.
// Returns the cryptographically secure session ID.
func (s *SessionService) Create() (string, models.TableState, error) {
	sessionIDBytes := make([]byte, 32)
	if _, err := rand.Read(sessionIDBytes); err != nil {
		return "", models.TableState{}, err
	}
	sessionID := base64.URLEncoding.EncodeToString(sessionIDBytes)

	state, err := s.catalog.NewTable()
	if err != nil {
		return "", models.TableState{}, fmt.Errorf("seed session table: %w", err)
	}
	s.cache.Set(sessionKey(sessionID), state)

	slog.Debug("Session created", "rows", state.Len())
	return sessionID, state, nil
}

// Ensure returns sessionID when it names a live session, otherwise a newly created one.
// The boolean reports whether a new session was created.
func (s *SessionService) Ensure(sessionID string) (string, bool, error) {
	if sessionID != "" {
		if _, err := s.Get(sessionID); err == nil {
			return sessionID, false, nil
		}
	}
	id, _, err := s.Create()
	if err != nil {
		return "", false, err
	}
	return id, true, nil
}

// Get retrieves the table of a session
func (s *SessionService) Get(sessionID string) (models.TableState, error) {
	state, ok := s.cache.Get(sessionKey(sessionID))
	if !ok {
		return models.TableState{}, models.ErrSessionNotFound
	}
	return state, nil
}

// Update applies fn to the session's table and stores the result, renewing the TTL.
// When fn fails the stored table is left unchanged.
func (s *SessionService) Update(sessionID string, fn func(models.TableState) (models.TableState, error)) (models.TableState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.Get(sessionID)
	if err != nil {
		return models.TableState{}, err
	}

	next, err := fn(state)
	if err != nil {
		return state, err
	}

	s.cache.Set(sessionKey(sessionID), next)
	return next, nil
}

// Reset replaces the session's table with a freshly seeded one
func (s *SessionService) Reset(sessionID string) (models.TableState, error) {
	return s.Update(sessionID, func(models.TableState) (models.TableState, error) {
		return s.catalog.NewTable()
	})
}

// Delete removes a session
func (s *SessionService) Delete(sessionID string) {
	s.cache.Delete(sessionKey(sessionID))
}

// Count returns the number of live sessions
func (s *SessionService) Count() int {
	return s.cache.Len()
}

// sessionKey returns the cache key for a session ID
func sessionKey(sessionID string) string {
	return "session:" + sessionID
}
