package main

import (
	"log"
	"os"

	"creatorhub-backend/db"
	"creatorhub-backend/middleware"
	"creatorhub-backend/routes"
	"creatorhub-backend/tasks"
	"creatorhub-backend/utils"

	"github.com/gin-gonic/gin"
)

// @title Creatorhub API
// @version 1.0
// @description REST API for the creator subscription platform
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	db.InitDB()

	if err := utils.EnsureUploadDirs(); err != nil {
		log.Fatal("Error creating upload directories:", err)
	}

	scheduler := tasks.StartScheduler(db.DB)
	defer scheduler.Stop()

	limiter := middleware.NewRateLimiterFromEnv()
	r := routes.SetupRouter(limiter)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	utils.LogInfo("Server listening on :" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Error starting server:", err)
	}
}
