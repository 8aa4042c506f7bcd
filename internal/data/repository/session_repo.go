package repository

import (
	"context"
	"sync"
	"time"

	"movie-review/internal/data/entity"

	"go.uber.org/zap"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	// FindValidSession returns nil when the token is unknown or expired.
	FindValidSession(ctx context.Context, token string) (*entity.Session, error)
	// Revoke deletes the session; revoking an unknown token is a no-op.
	Revoke(ctx context.Context, token string) error
}

type sessionMemoryRepository struct {
	mu       sync.RWMutex
	sessions []entity.Session
	nextID   int64
	log      *zap.Logger
}

func NewSessionMemoryRepository(log *zap.Logger) SessionRepository {
	return &sessionMemoryRepository{
		nextID: 1,
		log:    log.With(zap.String("repository", "session")),
	}
}

func (r *sessionMemoryRepository) Create(ctx context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.purgeExpiredLocked()

	session.ID = r.nextID
	r.nextID++
	r.sessions = append(r.sessions, *session)

	return nil
}

// purgeExpiredLocked drops expired sessions so the slice stays bounded over
// the process lifetime. Callers must hold the write lock.
func (r *sessionMemoryRepository) purgeExpiredLocked() {
	now := time.Now()
	kept := r.sessions[:0]
	for i := range r.sessions {
		if r.sessions[i].ExpiresAt.After(now) {
			kept = append(kept, r.sessions[i])
		}
	}
	r.sessions = kept
}

func (r *sessionMemoryRepository) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := time.Now()
	for i := range r.sessions {
		if r.sessions[i].Token.String() == token {
			if r.sessions[i].ExpiresAt.Before(now) {
				return nil, nil
			}
			s := r.sessions[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (r *sessionMemoryRepository) Revoke(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.sessions {
		if r.sessions[i].Token.String() == token {
			r.sessions = append(r.sessions[:i], r.sessions[i+1:]...)
			return nil
		}
	}
	return nil
}
