package middleware

import (
	"net/http"
	"strings"

	"creatorhub-backend/access"
	"creatorhub-backend/db"
	"creatorhub-backend/models"
	"creatorhub-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

func extractJwtClaims(c *gin.Context) (jwt.MapClaims, bool) {
	authHeader := c.GetHeader("Authorization")

	if authHeader == "" {
		utils.SendError(c, http.StatusUnauthorized, "Authorization header missing")
		c.Abort()
		return nil, false
	}

	authHeader = strings.Trim(authHeader, "\"' ")

	if !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		authHeader = "Bearer " + authHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		utils.SendError(c, http.StatusUnauthorized, "Invalid authorization format, expected: Bearer <token>")
		c.Abort()
		return nil, false
	}

	tokenString := strings.Trim(parts[1], "\"' ")

	claims, err := utils.DecodeJWT(tokenString)
	if err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid or expired token")
		c.Abort()
		return nil, false
	}

	return claims, true
}

// JWTAuth requires a valid bearer token and loads the backing user record,
// so downstream handlers see current role flags rather than token-time ones.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := extractJwtClaims(c)
		if !ok {
			return
		}

		userID, _ := claims["user_id"].(string)

		var user models.User
		if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
			utils.SendError(c, http.StatusUnauthorized, "Invalid token: user not found")
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("user", user)
		c.Next()
	}
}

// OptionalAuth resolves a token when one is present but never rejects the
// request; invalid or absent credentials leave the caller anonymous.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.Trim(c.GetHeader("Authorization"), "\"' ")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		tokenString := parts[len(parts)-1]

		claims, err := utils.DecodeJWT(tokenString)
		if err != nil {
			c.Next()
			return
		}

		userID, _ := claims["user_id"].(string)

		var user models.User
		if err := db.DB.First(&user, "id = ?", userID).Error; err == nil {
			c.Set("user_id", user.ID)
			c.Set("user", user)
		}
		c.Next()
	}
}

// RequireCreator must run after JWTAuth.
func RequireCreator() gin.HandlerFunc {
	return func(c *gin.Context) {
		userValue, exists := c.Get("user")
		if !exists {
			utils.SendError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		user := userValue.(models.User)
		if !user.IsCreator {
			utils.SendError(c, http.StatusForbidden, "Creator access required")
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentViewer translates the gin context into an access.Viewer; nil means
// the request is anonymous.
func CurrentViewer(c *gin.Context) *access.Viewer {
	userValue, exists := c.Get("user")
	if !exists {
		return nil
	}
	user, ok := userValue.(models.User)
	if !ok {
		return nil
	}
	return &access.Viewer{UserID: user.ID, IsCreator: user.IsCreator}
}
