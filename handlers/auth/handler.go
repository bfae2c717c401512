package auth

import (
	"errors"
	"net/http"
	"strings"

	"creatorhub-backend/db"
	"creatorhub-backend/models"
	"creatorhub-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// @Summary Register a new user
// @Description Create a user account and return it with an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param user body models.UserRegister true "User information"
// @Success 201 {object} utils.Response "data: user and token"
// @Failure 400 {object} utils.Response "message: validation or duplicate email/username"
// @Failure 500 {object} utils.Response
// @Router /api/auth/register [post]
func Register(c *gin.Context) {
	var input models.UserRegister
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !utils.ValidateEmail(email) {
		utils.SendError(c, http.StatusBadRequest, "Invalid email format")
		return
	}

	var existing models.User
	if err := db.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		utils.SendError(c, http.StatusBadRequest, "Email already registered")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.LogError(err, "Error checking email uniqueness")
		utils.SendError(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	if err := db.DB.Where("username = ?", input.Username).First(&existing).Error; err == nil {
		utils.SendError(c, http.StatusBadRequest, "Username already taken")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.LogError(err, "Error checking username uniqueness")
		utils.SendError(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.LogError(err, "Error hashing password")
		utils.SendError(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	user := models.User{
		Username: strings.TrimSpace(input.Username),
		Email:    email,
		Password: string(hash),
	}

	if err := db.DB.Create(&user).Error; err != nil {
		utils.LogError(err, "Error creating user")
		utils.SendError(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		utils.LogErrorWithUser(user.ID, err, "Error generating token")
		utils.SendError(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	utils.LogSuccessWithUser(user.ID, "User registered")
	utils.SendSuccess(c, http.StatusCreated, "User registered successfully", gin.H{
		"user":  user,
		"token": token,
	})
}

// @Summary User login
// @Description Exchange credentials for an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.UserLogin true "Credentials"
// @Success 200 {object} utils.Response "data: user and token"
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response "message: Invalid email or password"
// @Router /api/auth/login [post]
func Login(c *gin.Context) {
	var input models.UserLogin
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var user models.User
	if err := db.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// same message as a bad password: never reveal whether the email exists
			utils.SendError(c, http.StatusUnauthorized, "Invalid email or password")
		} else {
			utils.LogError(err, "Error looking up user at login")
			utils.SendError(c, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		utils.LogErrorWithUser(user.ID, err, "Error generating token")
		utils.SendError(c, http.StatusInternalServerError, "Login failed")
		return
	}

	utils.LogSuccessWithUser(user.ID, "User logged in")
	utils.SendSuccess(c, http.StatusOK, "Login successful", gin.H{
		"user":  user,
		"token": token,
	})
}

// @Summary Log out
// @Tags auth
// @Produce json
// @Failure 501 {object} utils.Response
// @Router /api/auth/logout [post]
func Logout(c *gin.Context) {
	utils.SendNotImplemented(c, "Logout")
}

// @Summary Refresh an access token
// @Tags auth
// @Produce json
// @Failure 501 {object} utils.Response
// @Router /api/auth/refresh [post]
func Refresh(c *gin.Context) {
	utils.SendNotImplemented(c, "Token refresh")
}

// @Summary Request a password reset
// @Tags auth
// @Produce json
// @Failure 501 {object} utils.Response
// @Router /api/auth/forgot-password [post]
func ForgotPassword(c *gin.Context) {
	utils.SendNotImplemented(c, "Forgot password")
}

// @Summary Reset a password
// @Tags auth
// @Produce json
// @Failure 501 {object} utils.Response
// @Router /api/auth/reset-password [post]
func ResetPassword(c *gin.Context) {
	utils.SendNotImplemented(c, "Reset password")
}
