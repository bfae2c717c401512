package routes

import (
	"creatorhub-backend/handlers/users"
	"creatorhub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func UsersRoutes(rg *gin.RouterGroup) {
	userRoutes := rg.Group("/users")
	userRoutes.Use(middleware.JWTAuth())
	{
		userRoutes.GET("/profile", users.GetProfile)
		userRoutes.PUT("/profile", users.UpdateProfile)
		userRoutes.POST("/avatar", users.UploadAvatar)
		userRoutes.GET("/subscriptions", users.GetSubscriptions)
		userRoutes.GET("/favorites", users.GetFavorites)
	}
}
