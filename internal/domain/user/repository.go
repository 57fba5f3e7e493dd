package user

import (
	"context"
	"errors"
)

// Erros específicos do repositório
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("user with this email already exists")
)

// Repository define a interface para operações de repositório de usuários
type Repository interface {
	// Create cria um novo usuário
	Create(ctx context.Context, u *User) error

	// FindByID busca um usuário pelo ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail busca um usuário pelo email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Update atualiza os dados de um usuário existente
	Update(ctx context.Context, u *User) error

	// UpdatePassword atualiza a senha de um usuário
	UpdatePassword(ctx context.Context, id, hashedPassword string) error

	// Delete remove um usuário do sistema
	Delete(ctx context.Context, id string) error
}
