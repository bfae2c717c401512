package routes

import (
	"creatorhub-backend/handlers/content"
	"creatorhub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func ContentRoutes(rg *gin.RouterGroup) {
	contentRoutes := rg.Group("/content")
	{
		contentRoutes.GET("", middleware.OptionalAuth(), content.GetAllContent)
		contentRoutes.POST("", middleware.JWTAuth(), middleware.RequireCreator(), content.CreateContent)
		contentRoutes.POST("/upload-video", middleware.JWTAuth(), middleware.RequireCreator(), content.UploadVideo)
		contentRoutes.POST("/upload-thumbnail", middleware.JWTAuth(), middleware.RequireCreator(), content.UploadThumbnail)
		contentRoutes.GET("/:id", middleware.OptionalAuth(), content.GetContentByID)
		contentRoutes.PUT("/:id", middleware.JWTAuth(), middleware.RequireCreator(), content.UpdateContent)
		contentRoutes.DELETE("/:id", middleware.JWTAuth(), middleware.RequireCreator(), content.DeleteContent)
		contentRoutes.POST("/:id/like", middleware.JWTAuth(), content.LikeContent)
		contentRoutes.POST("/:id/favorite", middleware.JWTAuth(), content.FavoriteContent)
		contentRoutes.GET("/:id/comments", content.GetComments)
		contentRoutes.POST("/:id/comments", middleware.JWTAuth(), content.AddComment)
	}
}
