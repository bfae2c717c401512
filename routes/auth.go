package routes

import (
	"creatorhub-backend/handlers/auth"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(rg *gin.RouterGroup) {
	authRoutes := rg.Group("/auth")
	{
		authRoutes.POST("/register", auth.Register)
		authRoutes.POST("/login", auth.Login)
		authRoutes.POST("/logout", auth.Logout)
		authRoutes.POST("/refresh", auth.Refresh)
		authRoutes.POST("/forgot-password", auth.ForgotPassword)
		authRoutes.POST("/reset-password", auth.ResetPassword)
	}
}
