package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/voice-productivity/internal/adapter/api/dto"
	"github.com/hugohenrick/voice-productivity/internal/domain/goal"
	"github.com/hugohenrick/voice-productivity/pkg/auth"
	"github.com/hugohenrick/voice-productivity/pkg/logger"
)

// GoalController gerencia as requisições de metas e marcos
type GoalController struct {
	goalRepository goal.Repository
	logger         logger.Logger
}

// NewGoalController cria uma nova instância de GoalController
func NewGoalController(goalRepository goal.Repository, log logger.Logger) *GoalController {
	return &GoalController{
		goalRepository: goalRepository,
		logger:         log,
	}
}

// List lista as metas de longo e curto prazo do usuário
// @Summary Lista metas
// @Description Retorna todas as metas do usuário autenticado
// @Tags goals
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.GoalsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /goals [get]
func (c *GoalController) List(ctx *gin.Context) {
	userID := auth.GetCurrentUserID(ctx)

	longTerm, err := c.goalRepository.ListLongTerm(ctx, userID)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	shortTerm, err := c.goalRepository.ListShortTerm(ctx, userID)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GoalsResponse{
		LongTermGoals:  longTerm,
		ShortTermGoals: shortTerm,
	})
}

// CreateLongTerm cria uma meta de longo prazo
// @Summary Cria meta de longo prazo
// @Tags goals
// @Accept json
// @Produce json
// @Security Bearer
// @Param goal body dto.CreateLongTermGoalRequest true "Dados da meta"
// @Success 201 {object} goal.LongTermGoal
// @Failure 400 {object} dto.ErrorResponse
// @Router /goals/long-term [post]
func (c *GoalController) CreateLongTerm(ctx *gin.Context) {
	var request dto.CreateLongTermGoalRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	g, err := goal.NewLongTermGoal(auth.GetCurrentUserID(ctx), request.Title, request.Description, request.TargetDate)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	for _, m := range request.Milestones {
		milestone, err := goal.NewMilestone(m.Title, m.TargetDate)
		if err != nil {
			respondError(ctx, c.logger, err)
			return
		}
		g.Milestones = append(g.Milestones, *milestone)
	}

	if err := c.goalRepository.CreateLongTerm(ctx, g); err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, g)
}

// UpdateLongTerm atualiza uma meta de longo prazo
// @Summary Atualiza meta de longo prazo
// @Tags goals
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID da meta"
// @Param goal body dto.UpdateLongTermGoalRequest true "Campos a alterar"
// @Success 200 {object} goal.LongTermGoal
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /goals/long-term/{id} [put]
func (c *GoalController) UpdateLongTerm(ctx *gin.Context) {
	var request dto.UpdateLongTermGoalRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	g, err := c.goalRepository.FindLongTermByID(ctx, auth.GetCurrentUserID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	if err := request.Apply(g); err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	if err := c.goalRepository.UpdateLongTerm(ctx, g); err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, g)
}

// DeleteLongTerm remove uma meta de longo prazo
// @Summary Remove meta de longo prazo
// @Description Remove a meta, seus marcos e as metas de curto prazo ligadas a ela
// @Tags goals
// @Security Bearer
// @Param id path string true "ID da meta"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /goals/long-term/{id} [delete]
func (c *GoalController) DeleteLongTerm(ctx *gin.Context) {
	if err := c.goalRepository.DeleteLongTerm(ctx, auth.GetCurrentUserID(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AddMilestone adiciona um marco a uma meta de longo prazo
// @Summary Adiciona marco
// @Tags goals
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID da meta"
// @Param milestone body dto.MilestoneRequest true "Dados do marco"
// @Success 201 {object} goal.Milestone
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /goals/long-term/{id}/milestones [post]
func (c *GoalController) AddMilestone(ctx *gin.Context) {
	var request dto.MilestoneRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	g, err := c.goalRepository.FindLongTermByID(ctx, auth.GetCurrentUserID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	m, err := goal.NewMilestone(request.Title, request.TargetDate)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	if err := c.goalRepository.AddMilestone(ctx, g.ID, m); err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, m)
}

// UpdateMilestone atualiza um marco
// @Summary Atualiza marco
// @Tags goals
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID da meta"
// @Param milestoneId path string true "ID do marco"
// @Param milestone body dto.UpdateMilestoneRequest true "Campos a alterar"
// @Success 200 {object} goal.Milestone
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /goals/long-term/{id}/milestones/{milestoneId} [put]
func (c *GoalController) UpdateMilestone(ctx *gin.Context) {
	var request dto.UpdateMilestoneRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	g, err := c.goalRepository.FindLongTermByID(ctx, auth.GetCurrentUserID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	m, ok := g.FindMilestone(ctx.Param("milestoneId"))
	if !ok {
		respondError(ctx, c.logger, goal.ErrMilestoneNotFound)
		return
	}

	if err := request.Apply(m); err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	if err := c.goalRepository.UpdateMilestone(ctx, g.ID, m); err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, m)
}

// DeleteMilestone remove um marco
// @Summary Remove marco
// @Tags goals
// @Security Bearer
// @Param id path string true "ID da meta"
// @Param milestoneId path string true "ID do marco"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /goals/long-term/{id}/milestones/{milestoneId} [delete]
func (c *GoalController) DeleteMilestone(ctx *gin.Context) {
	g, err := c.goalRepository.FindLongTermByID(ctx, auth.GetCurrentUserID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	if err := c.goalRepository.DeleteMilestone(ctx, g.ID, ctx.Param("milestoneId")); err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// CreateShortTerm cria uma meta de curto prazo
// @Summary Cria meta de curto prazo
// @Tags goals
// @Accept json
// @Produce json
// @Security Bearer
// @Param goal body dto.CreateShortTermGoalRequest true "Dados da meta"
// @Success 201 {object} goal.ShortTermGoal
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /goals/short-term [post]
func (c *GoalController) CreateShortTerm(ctx *gin.Context) {
	var request dto.CreateShortTermGoalRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	userID := auth.GetCurrentUserID(ctx)

	// a meta pai precisa pertencer ao mesmo usuário
	if request.ParentGoalID != "" {
		if _, err := c.goalRepository.FindLongTermByID(ctx, userID, request.ParentGoalID); err != nil {
			respondError(ctx, c.logger, err)
			return
		}
	}

	g, err := goal.NewShortTermGoal(userID, request.ParentGoalID, request.Title, request.Description,
		goal.Timeframe(request.Timeframe), request.EndDate)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	if err := c.goalRepository.CreateShortTerm(ctx, g); err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, g)
}

// UpdateShortTerm atualiza uma meta de curto prazo
// @Summary Atualiza meta de curto prazo
// @Tags goals
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID da meta"
// @Param goal body dto.UpdateShortTermGoalRequest true "Campos a alterar"
// @Success 200 {object} goal.ShortTermGoal
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /goals/short-term/{id} [put]
func (c *GoalController) UpdateShortTerm(ctx *gin.Context) {
	var request dto.UpdateShortTermGoalRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	g, err := c.goalRepository.FindShortTermByID(ctx, auth.GetCurrentUserID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	if err := request.Apply(g); err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	if err := c.goalRepository.UpdateShortTerm(ctx, g); err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, g)
}

// DeleteShortTerm remove uma meta de curto prazo
// @Summary Remove meta de curto prazo
// @Tags goals
// @Security Bearer
// @Param id path string true "ID da meta"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /goals/short-term/{id} [delete]
func (c *GoalController) DeleteShortTerm(ctx *gin.Context) {
	if err := c.goalRepository.DeleteShortTerm(ctx, auth.GetCurrentUserID(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
