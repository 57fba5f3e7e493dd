package user

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Erros de validação do usuário
var (
	ErrEmptyName       = errors.New("first name and last name are required")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrPasswordTooWeak = errors.New("password must have at least 6 characters")
)

// Valores padrão para novos usuários
const (
	DefaultTimezone = "America/New_York"
	DefaultLanguage = "en"
	DefaultTheme    = "light"

	minPasswordLength = 6
)

// Preferences representa as preferências configuráveis pelo usuário
type Preferences struct {
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
	SoundEffects  bool   `json:"soundEffects"`
	VoiceCommands bool   `json:"voiceCommands"`
	Language      string `json:"language"`
}

// DefaultPreferences retorna as preferências de um usuário recém-criado
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:         DefaultTheme,
		Notifications: true,
		SoundEffects:  true,
		VoiceCommands: true,
		Language:      DefaultLanguage,
	}
}

// User representa um usuário do sistema
type User struct {
	ID          string      `json:"id"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Email       string      `json:"email"`
	Password    string      `json:"-"` // O campo senha não é retornado nas respostas JSON
	Timezone    string      `json:"timezone"`
	Preferences Preferences `json:"preferences"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// NewUser cria um novo usuário validado e com a senha já protegida por hash
func NewUser(firstName, lastName, email, password string) (*User, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, ErrEmptyName
	}

	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := &User{
		ID:          uuid.New().String(),
		FirstName:   firstName,
		LastName:    lastName,
		Email:       normalized,
		Timezone:    DefaultTimezone,
		Preferences: DefaultPreferences(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.SetPassword(password); err != nil {
		return nil, err
	}

	return u, nil
}

// NormalizeEmail valida o email e o converte para minúsculas
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", ErrInvalidEmail
	}
	return email, nil
}

// SetPassword configura a senha do usuário com hash
func (u *User) SetPassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordTooWeak
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// VoiceEnabled verifica se o usuário aceita comandos de voz
func (u *User) VoiceEnabled() bool {
	return u.Preferences.VoiceCommands
}

// FullName retorna o nome completo do usuário
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
