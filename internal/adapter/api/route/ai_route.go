package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/voice-productivity/internal/adapter/api/controller"
)

// SetupAIRoutes configura as rotas do planejador
func SetupAIRoutes(router *gin.RouterGroup, aiController *controller.AIController, authMiddleware gin.HandlerFunc) {
	aiRouter := router.Group("/ai")
	aiRouter.Use(authMiddleware)
	{
		aiRouter.POST("/suggestions", aiController.Suggestions)
		aiRouter.POST("/generate/short-term-goals", aiController.GenerateShortTermGoals)
		aiRouter.POST("/generate/tasks", aiController.GenerateTasks)
	}
}
