package dto

import (
	"time"

	"github.com/hugohenrick/voice-productivity/internal/domain/user"
)

// UserResponse representa a resposta com dados de um usuário
type UserResponse struct {
	ID          string           `json:"id"`
	FirstName   string           `json:"firstName"`
	LastName    string           `json:"lastName"`
	Email       string           `json:"email"`
	Timezone    string           `json:"timezone"`
	Preferences user.Preferences `json:"preferences"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// UpdateProfileRequest representa uma atualização parcial do perfil
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Timezone  *string `json:"timezone"`
}

// UpdatePreferencesRequest representa uma atualização parcial das preferências
type UpdatePreferencesRequest struct {
	Theme         *string `json:"theme" binding:"omitempty,oneof=light dark system"`
	Notifications *bool   `json:"notifications"`
	SoundEffects  *bool   `json:"soundEffects"`
	VoiceCommands *bool   `json:"voiceCommands"`
	Language      *string `json:"language"`
}

// Apply aplica os campos informados às preferências
func (r UpdatePreferencesRequest) Apply(p *user.Preferences) {
	if r.Theme != nil {
		p.Theme = *r.Theme
	}
	if r.Notifications != nil {
		p.Notifications = *r.Notifications
	}
	if r.SoundEffects != nil {
		p.SoundEffects = *r.SoundEffects
	}
	if r.VoiceCommands != nil {
		p.VoiceCommands = *r.VoiceCommands
	}
	if r.Language != nil && *r.Language != "" {
		p.Language = *r.Language
	}
}

// ToUserResponse converte um usuário do domínio para DTO de resposta
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		Timezone:    u.Timezone,
		Preferences: u.Preferences,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
