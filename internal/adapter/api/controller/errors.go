package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/voice-productivity/internal/adapter/api/dto"
	"github.com/hugohenrick/voice-productivity/internal/domain/goal"
	"github.com/hugohenrick/voice-productivity/internal/domain/task"
	"github.com/hugohenrick/voice-productivity/internal/domain/user"
	"github.com/hugohenrick/voice-productivity/internal/service/assistant"
	"github.com/hugohenrick/voice-productivity/pkg/logger"
)

var (
	notFoundErrors = []error{
		user.ErrUserNotFound,
		goal.ErrGoalNotFound,
		goal.ErrMilestoneNotFound,
		task.ErrTaskNotFound,
	}

	validationErrors = []error{
		user.ErrEmptyName,
		user.ErrInvalidEmail,
		user.ErrPasswordTooWeak,
		goal.ErrEmptyTitle,
		goal.ErrMissingDate,
		goal.ErrInvalidProgress,
		goal.ErrInvalidTimeframe,
		goal.ErrInvalidType,
		task.ErrEmptyTitle,
		task.ErrInvalidPriority,
		task.ErrInvalidEstimatedTime,
	}
)

func matchesAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// respondError converte erros de domínio no status HTTP correspondente.
// Erros desconhecidos são registrados e retornados como 500.
func respondError(ctx *gin.Context, log logger.Logger, err error) {
	switch {
	case matchesAny(err, notFoundErrors):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Not found", err.Error()))
	case matchesAny(err, validationErrors):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Invalid request", err.Error()))
	case errors.Is(err, user.ErrDuplicateEmail):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Email already registered", err.Error()))
	case errors.Is(err, assistant.ErrVoiceDisabled):
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Voice commands disabled", err.Error()))
	default:
		log.Error("Erro inesperado ao processar requisição",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"error", err,
		)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Server error", ""))
	}
}

func badRequest(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Invalid request", err.Error()))
}
