package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/voice-productivity/internal/adapter/api/controller"
)

// SetupTaskRoutes configura as rotas para tarefas
func SetupTaskRoutes(router *gin.RouterGroup, taskController *controller.TaskController, authMiddleware gin.HandlerFunc) {
	taskRouter := router.Group("/tasks")
	taskRouter.Use(authMiddleware)
	{
		taskRouter.GET("", taskController.List)
		taskRouter.POST("", taskController.Create)
		// registrada antes de /:id para não ser capturada como ID
		taskRouter.PUT("/batch", taskController.BatchUpdate)
		taskRouter.PUT("/:id", taskController.Update)
		taskRouter.DELETE("/:id", taskController.Delete)
	}
}
