// Package memory contém implementações em memória dos repositórios,
// usadas em testes e quando STORAGE_DRIVER=memory.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hugohenrick/voice-productivity/internal/domain/user"
)

// UserRepository implementa user.Repository em memória
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]user.User
}

// NewUserRepository cria um repositório de usuários vazio
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]user.User)}
}

func (r *UserRepository) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == u.Email {
			return user.ErrDuplicateEmail
		}
	}
	r.users[u.ID] = *u
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *UserRepository) Update(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.users[u.ID]
	if !ok {
		return user.ErrUserNotFound
	}
	for id, existing := range r.users {
		if id != u.ID && existing.Email == u.Email {
			return user.ErrDuplicateEmail
		}
	}

	u.UpdatedAt = time.Now()
	updated := *u
	// a senha só muda por UpdatePassword
	updated.Password = current.Password
	r.users[u.ID] = updated
	return nil
}

func (r *UserRepository) UpdatePassword(_ context.Context, id, hashedPassword string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.Password = hashedPassword
	u.UpdatedAt = time.Now()
	r.users[id] = u
	return nil
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}
