package dto

import (
	"github.com/hugohenrick/voice-productivity/internal/domain/chat"
)

// ProcessVoiceRequest representa um comando de voz já transcrito.
// Text é aceito como qualquer valor JSON; valores que não são texto viram comando vazio.
type ProcessVoiceRequest struct {
	Text   interface{} `json:"text" swaggertype:"string"`
	DryRun bool        `json:"dryRun"`
}

// HistoryResponse representa uma página do histórico de comandos
type HistoryResponse struct {
	Messages []chat.Message `json:"messages"`
	Total    int            `json:"total"`
	Limit    int            `json:"limit"`
	Offset   int            `json:"offset"`
}
