package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/voice-productivity/internal/adapter/api/controller"
)

// SetupVoiceRoutes configura as rotas de comandos de voz
func SetupVoiceRoutes(router *gin.RouterGroup, voiceController *controller.VoiceController, authMiddleware gin.HandlerFunc) {
	voiceRouter := router.Group("/voice")
	voiceRouter.Use(authMiddleware)
	{
		voiceRouter.POST("/process", voiceController.Process)
		voiceRouter.GET("/history", voiceController.History)
		voiceRouter.DELETE("/history", voiceController.ClearHistory)
	}
}
