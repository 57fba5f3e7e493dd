package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/voice-productivity/internal/adapter/api/controller"
)

// SetupAuthRoutes configura as rotas para autenticação e perfil
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController, authMiddleware gin.HandlerFunc) {
	authRouter := router.Group("/auth")
	{
		// Rotas públicas
		authRouter.POST("/register", authController.Register)
		authRouter.POST("/login", authController.Login)
		authRouter.POST("/refresh-token", authController.RefreshToken)

		// Rotas que exigem autenticação
		authRouter.GET("/me", authMiddleware, authController.Me)
		authRouter.PUT("/profile", authMiddleware, authController.UpdateProfile)
		authRouter.PUT("/preferences", authMiddleware, authController.UpdatePreferences)
		authRouter.POST("/change-password", authMiddleware, authController.ChangePassword)
	}
}
