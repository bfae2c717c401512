package creators

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"creatorhub-backend/access"
	"creatorhub-backend/db"
	"creatorhub-backend/middleware"
	"creatorhub-backend/models"
	"creatorhub-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Establish a creator profile
// @Description Create the caller's creator profile and grant the creator role
// @Tags creators
// @Accept json
// @Produce json
// @Param creator body models.CreatorCreate true "Creator profile"
// @Security BearerAuth
// @Success 201 {object} utils.Response
// @Failure 400 {object} utils.Response "message: validation or profile already exists"
// @Failure 401 {object} utils.Response
// @Router /api/creators [post]
func CreateCreator(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	var input models.CreatorCreate
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	if !models.ValidCategory(input.Category) {
		utils.SendError(c, http.StatusBadRequest, "Invalid category")
		return
	}

	var existing models.Creator
	if err := db.DB.Where("user_id = ?", userID).First(&existing).Error; err == nil {
		utils.SendError(c, http.StatusBadRequest, "Creator profile already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.LogErrorWithUser(userID, err, "Error checking existing creator profile")
		utils.SendError(c, http.StatusInternalServerError, "Failed to create creator profile")
		return
	}

	creator := models.Creator{
		UserID:            userID,
		DisplayName:       input.DisplayName,
		Description:       input.Description,
		Category:          input.Category,
		Avatar:            input.Avatar,
		CoverImage:        input.CoverImage,
		SocialLinks:       input.SocialLinks,
		SubscriptionPlans: input.SubscriptionPlans,
		IsActive:          true,
	}

	if err := db.DB.Create(&creator).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating creator profile")
		utils.SendError(c, http.StatusInternalServerError, "Failed to create creator profile")
		return
	}

	if err := db.DB.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("is_creator", true).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error setting creator role")
	}

	utils.LogSuccessWithUser(userID, "Creator profile created")
	utils.SendSuccess(c, http.StatusCreated, "Creator profile created successfully", creator)
}

// @Summary List creators
// @Description List active creator profiles
// @Tags creators
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Param category query string false "Category filter"
// @Success 200 {object} utils.Response "data: creators list and pagination"
// @Router /api/creators [get]
func GetAllCreators(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	query := db.DB.Model(&models.Creator{}).Where("is_active = ?", true)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError(err, "Error counting creators")
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch creators")
		return
	}

	var list []models.Creator
	if err := query.Order("stats_total_subscribers DESC").
		Offset((page - 1) * limit).Limit(limit).Find(&list).Error; err != nil {
		utils.LogError(err, "Error listing creators")
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch creators")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "", gin.H{
		"creators": list,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

// @Summary Get a creator
// @Tags creators
// @Produce json
// @Param id path string true "Creator ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /api/creators/{id} [get]
func GetCreatorByID(c *gin.Context) {
	var creator models.Creator
	if err := db.DB.First(&creator, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Creator not found")
		} else {
			utils.LogError(err, "Error fetching creator")
			utils.SendError(c, http.StatusInternalServerError, "Failed to fetch creator")
		}
		return
	}

	utils.SendSuccess(c, http.StatusOK, "", creator)
}

// @Summary List a creator's content
// @Description Published content of one creator, filtered by the caller's visibility
// @Tags creators
// @Produce json
// @Param id path string true "Creator ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} utils.Response "data: content list and pagination"
// @Router /api/creators/{id}/content [get]
func GetCreatorContent(c *gin.Context) {
	creatorID := c.Param("id")
	viewer := middleware.CurrentViewer(c)

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	base := func() *gorm.DB {
		return access.VisibleContent(
			db.DB.Model(&models.Content{}).
				Where("contents.status = ?", models.ContentStatusPublished).
				Where("contents.creator_id = ?", creatorID),
			viewer,
		)
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		utils.LogError(err, "Error counting creator content")
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch creator content")
		return
	}

	var items []models.Content
	if err := base().Order("contents.published_at DESC").
		Offset((page - 1) * limit).Limit(limit).Find(&items).Error; err != nil {
		utils.LogError(err, "Error listing creator content")
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch creator content")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "", gin.H{
		"content": items,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

// @Summary Update a creator profile
// @Tags creators
// @Produce json
// @Failure 501 {object} utils.Response
// @Router /api/creators/{id} [put]
func UpdateCreator(c *gin.Context) {
	utils.SendNotImplemented(c, "Update creator profile")
}

// @Summary List a creator's subscribers
// @Tags creators
// @Produce json
// @Failure 501 {object} utils.Response
// @Router /api/creators/{id}/subscribers [get]
func GetSubscribers(c *gin.Context) {
	utils.SendNotImplemented(c, "Get creator subscribers")
}

// @Summary Creator earnings statistics
// @Tags creators
// @Produce json
// @Failure 501 {object} utils.Response
// @Router /api/creators/{id}/earnings [get]
func GetEarnings(c *gin.Context) {
	utils.SendNotImplemented(c, "Get creator earnings")
}
