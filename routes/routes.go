package routes

import (
	"net/http"
	"time"

	"creatorhub-backend/handlers/health"
	"creatorhub-backend/middleware"
	"creatorhub-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRouter(limiter *middleware.RateLimiter) *gin.Engine {

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(limiter.Middleware())

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", health.New().HandleHealth)
	r.Static("/uploads", "./uploads")

	api := r.Group("/api")
	AuthRoutes(api)
	UsersRoutes(api)
	CreatorsRoutes(api)
	ContentRoutes(api)
	SubscriptionsRoutes(api)
	PaymentsRoutes(api)

	r.NoRoute(func(c *gin.Context) {
		utils.SendError(c, http.StatusNotFound, "API endpoint not found")
	})

	return r
}
