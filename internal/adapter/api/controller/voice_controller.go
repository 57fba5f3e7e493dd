package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/voice-productivity/internal/adapter/api/dto"
	"github.com/hugohenrick/voice-productivity/internal/service/assistant"
	"github.com/hugohenrick/voice-productivity/pkg/auth"
	"github.com/hugohenrick/voice-productivity/pkg/logger"
)

// VoiceController gerencia o processamento de comandos de voz e o histórico
type VoiceController struct {
	assistant *assistant.Assistant
	logger    logger.Logger
}

// NewVoiceController cria uma nova instância de VoiceController
func NewVoiceController(a *assistant.Assistant, log logger.Logger) *VoiceController {
	return &VoiceController{
		assistant: a,
		logger:    log,
	}
}

// Process interpreta e executa um comando de voz transcrito
// @Summary Processa comando de voz
// @Description Interpreta o texto, compõe a resposta falada e executa a ação. Com dryRun nada é alterado.
// @Tags voice
// @Accept json
// @Produce json
// @Security Bearer
// @Param command body dto.ProcessVoiceRequest true "Comando transcrito"
// @Success 200 {object} assistant.Reply
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /voice/process [post]
func (c *VoiceController) Process(ctx *gin.Context) {
	var request dto.ProcessVoiceRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	reply, err := c.assistant.Handle(ctx, auth.GetCurrentUserID(ctx), request.Text, assistant.Options{
		DryRun: request.DryRun,
	})
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, reply)
}

// History lista o histórico de comandos do usuário
// @Summary Histórico de comandos
// @Description Mensagens mais recentes primeiro
// @Tags voice
// @Produce json
// @Security Bearer
// @Param limit query int false "Quantidade de mensagens (padrão 50, máximo 200)"
// @Param offset query int false "Deslocamento"
// @Success 200 {object} dto.HistoryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /voice/history [get]
func (c *VoiceController) History(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	offset, _ := strconv.Atoi(ctx.Query("offset"))
	page := dto.GetPagination(limit, offset)

	messages, total, err := c.assistant.History(ctx, auth.GetCurrentUserID(ctx), page.Limit, page.Offset)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.HistoryResponse{
		Messages: messages,
		Total:    total,
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
}

// ClearHistory apaga o histórico de comandos do usuário
// @Summary Limpa o histórico
// @Tags voice
// @Security Bearer
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse
// @Router /voice/history [delete]
func (c *VoiceController) ClearHistory(ctx *gin.Context) {
	if err := c.assistant.ClearHistory(ctx, auth.GetCurrentUserID(ctx)); err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
