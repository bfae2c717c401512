package health

import (
	"os"
	"time"

	"creatorhub-backend/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func New() *Handler {
	return &Handler{}
}

// HandleHealth reports process liveness
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} utils.Response
// @Router /health [get]
func (h *Handler) HandleHealth(c *gin.Context) {
	utils.SendSuccess(c, 200, "", gin.H{
		"status":      "ok",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": os.Getenv("APP_ENV"),
	})
}
