// Package users exposes the user-profile API surface. None of these
// endpoints have implemented behavior yet; they answer 501 so clients can
// tell "not built" apart from "built and failing".
package users

import (
	"creatorhub-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Get own profile
// @Tags users
// @Produce json
// @Failure 501 {object} utils.Response
// @Router /api/users/profile [get]
func GetProfile(c *gin.Context) {
	utils.SendNotImplemented(c, "Get user profile")
}

// @Summary Update own profile
// @Tags users
// @Produce json
// @Failure 501 {object} utils.Response
// @Router /api/users/profile [put]
func UpdateProfile(c *gin.Context) {
	utils.SendNotImplemented(c, "Update user profile")
}

// @Summary Upload an avatar
// @Tags users
// @Produce json
// @Failure 501 {object} utils.Response
// @Router /api/users/avatar [post]
func UploadAvatar(c *gin.Context) {
	utils.SendNotImplemented(c, "Upload avatar")
}

// @Summary List own subscriptions
// @Tags users
// @Produce json
// @Failure 501 {object} utils.Response
// @Router /api/users/subscriptions [get]
func GetSubscriptions(c *gin.Context) {
	utils.SendNotImplemented(c, "Get user subscriptions")
}

// @Summary List own favorites
// @Tags users
// @Produce json
// @Failure 501 {object} utils.Response
// @Router /api/users/favorites [get]
func GetFavorites(c *gin.Context) {
	utils.SendNotImplemented(c, "Get user favorites")
}
