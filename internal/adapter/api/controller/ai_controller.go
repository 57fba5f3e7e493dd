package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/voice-productivity/internal/adapter/api/dto"
	"github.com/hugohenrick/voice-productivity/internal/domain/goal"
	"github.com/hugohenrick/voice-productivity/internal/service/planner"
	"github.com/hugohenrick/voice-productivity/pkg/auth"
	"github.com/hugohenrick/voice-productivity/pkg/logger"
)

// AIController expõe o planejador de metas e tarefas
type AIController struct {
	planner *planner.Service
	logger  logger.Logger
}

// NewAIController cria uma nova instância de AIController
func NewAIController(p *planner.Service, log logger.Logger) *AIController {
	return &AIController{
		planner: p,
		logger:  log,
	}
}

// Suggestions retorna sugestões com base nas metas e tarefas do usuário
// @Summary Sugestões
// @Tags ai
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.SuggestionsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /ai/suggestions [post]
func (c *AIController) Suggestions(ctx *gin.Context) {
	suggestions, err := c.planner.Suggest(ctx, auth.GetCurrentUserID(ctx))
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuggestionsResponse{Suggestions: suggestions})
}

// GenerateShortTermGoals desdobra uma meta de longo prazo em metas diária, semanal e mensal
// @Summary Gera metas de curto prazo
// @Tags ai
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.GenerateShortTermGoalsRequest true "Meta de longo prazo"
// @Success 201 {object} dto.GeneratedGoalsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /ai/generate/short-term-goals [post]
func (c *AIController) GenerateShortTermGoals(ctx *gin.Context) {
	var request dto.GenerateShortTermGoalsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	goals, err := c.planner.GenerateShortTermGoals(ctx, auth.GetCurrentUserID(ctx), request.LongTermGoalID)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.GeneratedGoalsResponse{Goals: goals})
}

// GenerateTasks cria as tarefas iniciais de uma meta
// @Summary Gera tarefas
// @Tags ai
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.GenerateTasksRequest true "Meta e tipo"
// @Success 201 {object} dto.GeneratedTasksResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /ai/generate/tasks [post]
func (c *AIController) GenerateTasks(ctx *gin.Context) {
	var request dto.GenerateTasksRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	goalType, err := goal.ParseType(request.GoalType)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	tasks, err := c.planner.GenerateTasks(ctx, auth.GetCurrentUserID(ctx), request.GoalID, goalType)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.GeneratedTasksResponse{Tasks: tasks})
}
