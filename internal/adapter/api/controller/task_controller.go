package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/voice-productivity/internal/adapter/api/dto"
	"github.com/hugohenrick/voice-productivity/internal/domain/task"
	"github.com/hugohenrick/voice-productivity/pkg/auth"
	"github.com/hugohenrick/voice-productivity/pkg/logger"
)

// TaskController gerencia as requisições de tarefas
type TaskController struct {
	taskRepository task.Repository
	logger         logger.Logger
}

// NewTaskController cria uma nova instância de TaskController
func NewTaskController(taskRepository task.Repository, log logger.Logger) *TaskController {
	return &TaskController{
		taskRepository: taskRepository,
		logger:         log,
	}
}

// List lista as tarefas do usuário
// @Summary Lista tarefas
// @Description Retorna as tarefas ordenadas pelo prazo; use today=true para apenas as de hoje
// @Tags tasks
// @Produce json
// @Security Bearer
// @Param today query bool false "Apenas tarefas diárias ou com prazo hoje"
// @Success 200 {object} dto.TasksResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /tasks [get]
func (c *TaskController) List(ctx *gin.Context) {
	tasks, err := c.taskRepository.List(ctx, auth.GetCurrentUserID(ctx))
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	if ctx.Query("today") == "true" {
		now := time.Now()
		filtered := make([]*task.Task, 0, len(tasks))
		for _, t := range tasks {
			if t.IsDueOn(now) {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	ctx.JSON(http.StatusOK, dto.TasksResponse{Tasks: tasks})
}

// Create cria uma tarefa
// @Summary Cria tarefa
// @Tags tasks
// @Accept json
// @Produce json
// @Security Bearer
// @Param task body dto.CreateTaskRequest true "Dados da tarefa"
// @Success 201 {object} task.Task
// @Failure 400 {object} dto.ErrorResponse
// @Router /tasks [post]
func (c *TaskController) Create(ctx *gin.Context) {
	var request dto.CreateTaskRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	t, err := request.ToTask(auth.GetCurrentUserID(ctx))
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	if err := c.taskRepository.Create(ctx, t); err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, t)
}

// Update atualiza uma tarefa
// @Summary Atualiza tarefa
// @Tags tasks
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID da tarefa"
// @Param task body dto.UpdateTaskRequest true "Campos a alterar"
// @Success 200 {object} task.Task
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tasks/{id} [put]
func (c *TaskController) Update(ctx *gin.Context) {
	var request dto.UpdateTaskRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	t, err := c.taskRepository.FindByID(ctx, auth.GetCurrentUserID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	if err := request.Apply(t); err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	if err := c.taskRepository.Update(ctx, t); err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, t)
}

// Delete remove uma tarefa
// @Summary Remove tarefa
// @Tags tasks
// @Security Bearer
// @Param id path string true "ID da tarefa"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /tasks/{id} [delete]
func (c *TaskController) Delete(ctx *gin.Context) {
	if err := c.taskRepository.Delete(ctx, auth.GetCurrentUserID(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// BatchUpdate atualiza várias tarefas de uma vez
// @Summary Atualiza tarefas em lote
// @Description IDs desconhecidos são ignorados; a resposta traz apenas as tarefas alteradas
// @Tags tasks
// @Accept json
// @Produce json
// @Security Bearer
// @Param tasks body dto.BatchUpdateTasksRequest true "Atualizações"
// @Success 200 {object} dto.TasksResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /tasks/batch [put]
func (c *TaskController) BatchUpdate(ctx *gin.Context) {
	var request dto.BatchUpdateTasksRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	userID := auth.GetCurrentUserID(ctx)
	updated := make([]*task.Task, 0, len(request.Tasks))

	for _, item := range request.Tasks {
		t, err := c.taskRepository.FindByID(ctx, userID, item.ID)
		if err != nil {
			if errors.Is(err, task.ErrTaskNotFound) {
				c.logger.Debug("Tarefa ignorada na atualização em lote", "task_id", item.ID)
				continue
			}
			respondError(ctx, c.logger, err)
			return
		}

		if err := item.Apply(t); err != nil {
			respondError(ctx, c.logger, err)
			return
		}

		if err := c.taskRepository.Update(ctx, t); err != nil {
			respondError(ctx, c.logger, err)
			return
		}
		updated = append(updated, t)
	}

	ctx.JSON(http.StatusOK, dto.TasksResponse{Tasks: updated})
}
