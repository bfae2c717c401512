package routes

import (
	"creatorhub-backend/handlers/creators"
	"creatorhub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func CreatorsRoutes(rg *gin.RouterGroup) {
	creatorRoutes := rg.Group("/creators")
	{
		creatorRoutes.GET("", creators.GetAllCreators)
		creatorRoutes.GET("/:id", creators.GetCreatorByID)
		creatorRoutes.GET("/:id/content", middleware.OptionalAuth(), creators.GetCreatorContent)
		creatorRoutes.POST("", middleware.JWTAuth(), creators.CreateCreator)
		creatorRoutes.PUT("/:id", middleware.JWTAuth(), creators.UpdateCreator)
		creatorRoutes.GET("/:id/subscribers", middleware.JWTAuth(), creators.GetSubscribers)
		creatorRoutes.GET("/:id/earnings", middleware.JWTAuth(), creators.GetEarnings)
	}
}
