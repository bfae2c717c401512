package routes

import (
	"creatorhub-backend/handlers/subscriptions"
	"creatorhub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func SubscriptionsRoutes(rg *gin.RouterGroup) {
	subRoutes := rg.Group("/subscriptions")
	subRoutes.Use(middleware.JWTAuth())
	{
		subRoutes.POST("", subscriptions.CreateSubscription)
		subRoutes.GET("/user/:userId", subscriptions.GetUserSubscriptions)
		subRoutes.GET("/creator/:creatorId", subscriptions.GetCreatorSubscriptions)
		subRoutes.GET("/:id", subscriptions.GetSubscriptionByID)
		subRoutes.DELETE("/:id", subscriptions.CancelSubscription)
		subRoutes.PUT("/:id/pause", subscriptions.PauseSubscription)
		subRoutes.PUT("/:id/resume", subscriptions.ResumeSubscription)
		subRoutes.PUT("/:id/settings", subscriptions.UpdateSubscriptionSettings)
	}
}
