package repository

import (
	"context"
	"strings"
	"sync"

	"movie-review/internal/data/entity"

	"go.uber.org/zap"
)

type UserRepository interface {
	// Create assigns the next id and stores the user. Returns
	// ErrAlreadyExists when the username or email is taken; the check and
	// the insert are atomic.
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}

type userMemoryRepository struct {
	mu     sync.RWMutex
	users  []entity.User
	nextID int64
	log    *zap.Logger
}

func NewUserMemoryRepository(log *zap.Logger) UserRepository {
	return &userMemoryRepository{
		nextID: 1,
		log:    log.With(zap.String("repository", "user")),
	}
}

func (r *userMemoryRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, user.Email) || r.users[i].Username == user.Username {
			return ErrAlreadyExists
		}
	}

	user.ID = r.nextID
	r.nextID++
	r.users = append(r.users, *user)

	return nil
}

func (r *userMemoryRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *userMemoryRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, email) {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *userMemoryRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Username == username {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}
