package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/voice-productivity/internal/adapter/api/controller"
)

// SetupGoalRoutes configura as rotas para metas e marcos
func SetupGoalRoutes(router *gin.RouterGroup, goalController *controller.GoalController, authMiddleware gin.HandlerFunc) {
	goalRouter := router.Group("/goals")
	goalRouter.Use(authMiddleware)
	{
		goalRouter.GET("", goalController.List)

		longTerm := goalRouter.Group("/long-term")
		{
			longTerm.POST("", goalController.CreateLongTerm)
			longTerm.PUT("/:id", goalController.UpdateLongTerm)
			longTerm.DELETE("/:id", goalController.DeleteLongTerm)

			longTerm.POST("/:id/milestones", goalController.AddMilestone)
			longTerm.PUT("/:id/milestones/:milestoneId", goalController.UpdateMilestone)
			longTerm.DELETE("/:id/milestones/:milestoneId", goalController.DeleteMilestone)
		}

		shortTerm := goalRouter.Group("/short-term")
		{
			shortTerm.POST("", goalController.CreateShortTerm)
			shortTerm.PUT("/:id", goalController.UpdateShortTerm)
			shortTerm.DELETE("/:id", goalController.DeleteShortTerm)
		}
	}
}
