package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope shared by every endpoint
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// SendSuccess sends a success response
func SendSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SendError sends an error response
func SendError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
	})
}

// SendNotImplemented marks an endpoint that exists in the API surface but has
// no behavior yet. Deliberately not a success envelope.
func SendNotImplemented(c *gin.Context, endpoint string) {
	SendError(c, http.StatusNotImplemented, endpoint+" is not implemented")
}

// ValidateRequestBody binds the JSON body or answers a 400
func ValidateRequestBody(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		SendError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}
