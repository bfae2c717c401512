package content

import (
	"errors"
	"math"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"creatorhub-backend/access"
	"creatorhub-backend/db"
	"creatorhub-backend/middleware"
	"creatorhub-backend/models"
	"creatorhub-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type listParams struct {
	Page        int
	Limit       int
	Category    string
	Search      string
	CreatorID   string
	ContentType string
}

func parseListParams(c *gin.Context) listParams {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	// limit is accepted verbatim, with no upper bound
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	return listParams{
		Page:        page,
		Limit:       limit,
		Category:    c.Query("category"),
		Search:      c.Query("search"),
		CreatorID:   c.Query("creatorId"),
		ContentType: c.DefaultQuery("contentType", "video"),
	}
}

// applyFilters composes the listing query: base status/type filter, then the
// optional equality and search filters, then the viewer's visibility branch.
func applyFilters(query *gorm.DB, params listParams, viewer *access.Viewer) *gorm.DB {
	query = query.
		Where("contents.status = ?", models.ContentStatusPublished).
		Where("contents.content_type = ?", params.ContentType)

	if params.Category != "" {
		query = query.Where("contents.category = ?", params.Category)
	}
	if params.CreatorID != "" {
		query = query.Where("contents.creator_id = ?", params.CreatorID)
	}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("contents.title ILIKE ? OR contents.description ILIKE ?", pattern, pattern)
	}

	return access.VisibleContent(query, viewer)
}

// @Summary List content
// @Description List published content with filtering and pagination
// @Tags content
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Param category query string false "Category filter"
// @Param search query string false "Substring match on title and description"
// @Param creatorId query string false "Creator filter"
// @Param contentType query string false "Content type" default(video)
// @Success 200 {object} utils.Response "data: content list and pagination"
// @Failure 500 {object} utils.Response
// @Router /api/content [get]
func GetAllContent(c *gin.Context) {
	params := parseListParams(c)
	viewer := middleware.CurrentViewer(c)

	var total int64
	if err := applyFilters(db.DB.Model(&models.Content{}), params, viewer).Count(&total).Error; err != nil {
		utils.LogError(err, "Error counting content")
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch content")
		return
	}

	var items []models.Content
	err := applyFilters(db.DB.Model(&models.Content{}), params, viewer).
		Order("contents.published_at DESC").
		Offset((params.Page - 1) * params.Limit).
		Limit(params.Limit).
		Preload("Creator").
		Find(&items).Error
	if err != nil {
		utils.LogError(err, "Error listing content")
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch content")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "", gin.H{
		"content": items,
		"pagination": gin.H{
			"page":  params.Page,
			"limit": params.Limit,
			"total": total,
			"pages": int(math.Ceil(float64(total) / float64(params.Limit))),
		},
	})
}

// @Summary Get content detail
// @Description Fetch a single content item; every granted read bumps the view counter by one
// @Tags content
// @Produce json
// @Param id path string true "Content ID"
// @Success 200 {object} utils.Response
// @Failure 403 {object} utils.Response "message: access denied on private content"
// @Failure 404 {object} utils.Response
// @Router /api/content/{id} [get]
func GetContentByID(c *gin.Context) {
	contentID := c.Param("id")
	viewer := middleware.CurrentViewer(c)

	var item models.Content
	if err := db.DB.Preload("Creator").First(&item, "id = ?", contentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Content not found")
		} else {
			utils.LogError(err, "Error fetching content")
			utils.SendError(c, http.StatusInternalServerError, "Failed to fetch content")
		}
		return
	}

	allowed, err := access.CanViewContent(db.DB, viewer, &item)
	if err != nil {
		utils.LogError(err, "Error evaluating content access")
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch content")
		return
	}
	if !allowed {
		// 403, not 404: existence of private content is not hidden
		utils.SendError(c, http.StatusForbidden, "You do not have access to this content")
		return
	}

	// fire-and-forget view count, atomic so concurrent reads don't lose increments
	if err := db.DB.Model(&models.Content{}).Where("id = ?", item.ID).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error; err != nil {
		utils.LogError(err, "Error incrementing view count")
	}

	utils.SendSuccess(c, http.StatusOK, "", item)
}

// @Summary Create content
// @Description Publish a new content item owned by the caller's creator profile
// @Tags content
// @Accept json
// @Produce json
// @Param content body models.ContentCreate true "Content"
// @Security BearerAuth
// @Success 201 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response "message: Creator profile not found"
// @Router /api/content [post]
func CreateContent(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	var input models.ContentCreate
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	if !models.ValidCategory(input.Category) {
		utils.SendError(c, http.StatusBadRequest, "Invalid category")
		return
	}
	if input.ContentType == "" {
		input.ContentType = models.ContentTypeVideo
	}
	if !models.ValidContentType(input.ContentType) {
		utils.SendError(c, http.StatusBadRequest, "Invalid content type")
		return
	}

	var creator models.Creator
	if err := db.DB.First(&creator, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Creator profile not found")
		} else {
			utils.LogErrorWithUser(userID, err, "Error fetching creator profile")
			utils.SendError(c, http.StatusInternalServerError, "Failed to create content")
		}
		return
	}

	isPublic := true
	if input.IsPublic != nil {
		isPublic = *input.IsPublic
	}

	price := 0.0
	if input.IsPremium {
		price = input.Price
	}

	now := time.Now()
	item := models.Content{
		CreatorID:    creator.ID,
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		ContentType:  input.ContentType,
		Tags:         input.Tags,
		IsPublic:     isPublic,
		IsPremium:    input.IsPremium,
		Price:        price,
		VideoURL:     input.VideoURL,
		ThumbnailURL: input.ThumbnailURL,
		Duration:     input.Duration,
		Resolution:   input.Resolution,
		Status:       models.ContentStatusPublished,
		PublishedAt:  &now,
	}

	if err := db.DB.Create(&item).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating content")
		utils.SendError(c, http.StatusInternalServerError, "Failed to create content")
		return
	}

	if err := db.DB.Model(&models.Creator{}).Where("id = ?", creator.ID).
		UpdateColumn("stats_total_content", gorm.Expr("stats_total_content + ?", 1)).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error incrementing creator content count")
	}

	utils.LogSuccessWithUser(userID, "Content created")
	utils.SendSuccess(c, http.StatusCreated, "Content created successfully", item)
}

func allowedStatusTransition(from, to models.ContentStatus) bool {
	switch {
	case from == models.ContentStatusDraft && to == models.ContentStatusPublished:
		return true
	case from == models.ContentStatusPublished && to == models.ContentStatusArchived:
		return true
	}
	return false
}

// @Summary Update content
// @Description Edit a content item owned by the caller
// @Tags content
// @Accept json
// @Produce json
// @Param id path string true "Content ID"
// @Param content body models.ContentUpdate true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response "message: not the owner"
// @Failure 404 {object} utils.Response
// @Router /api/content/{id} [put]
func UpdateContent(c *gin.Context) {
	userID := c.MustGet("user_id").(string)
	viewer := middleware.CurrentViewer(c)
	contentID := c.Param("id")

	var item models.Content
	if err := db.DB.First(&item, "id = ?", contentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Content not found")
		} else {
			utils.LogErrorWithUser(userID, err, "Error fetching content")
			utils.SendError(c, http.StatusInternalServerError, "Failed to update content")
		}
		return
	}

	owner, err := access.IsOwner(db.DB, viewer, &item)
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error evaluating ownership")
		utils.SendError(c, http.StatusInternalServerError, "Failed to update content")
		return
	}
	if !owner {
		utils.SendError(c, http.StatusForbidden, "You are not the owner of this content")
		return
	}

	var input models.ContentUpdate
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	if input.Title != "" {
		item.Title = input.Title
	}
	if input.Description != "" {
		item.Description = input.Description
	}
	if input.Category != "" {
		if !models.ValidCategory(input.Category) {
			utils.SendError(c, http.StatusBadRequest, "Invalid category")
			return
		}
		item.Category = input.Category
	}
	if input.Tags != nil {
		item.Tags = input.Tags
	}
	if input.IsPublic != nil {
		item.IsPublic = *input.IsPublic
	}
	if input.IsPremium != nil {
		item.IsPremium = *input.IsPremium
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if !item.IsPremium {
		// non-premium content never carries a price
		item.Price = 0
	}
	if input.ThumbnailURL != "" {
		item.ThumbnailURL = input.ThumbnailURL
	}
	if input.Status != "" && input.Status != item.Status {
		if !allowedStatusTransition(item.Status, input.Status) {
			utils.SendError(c, http.StatusBadRequest, "Invalid status transition")
			return
		}
		item.Status = input.Status
		if item.Status == models.ContentStatusPublished && item.PublishedAt == nil {
			now := time.Now()
			item.PublishedAt = &now
		}
	}

	if err := db.DB.Save(&item).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error updating content")
		utils.SendError(c, http.StatusInternalServerError, "Failed to update content")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Content updated successfully", item)
}

// @Summary Delete content
// @Description Delete a content item owned by the caller
// @Tags content
// @Produce json
// @Param id path string true "Content ID"
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /api/content/{id} [delete]
func DeleteContent(c *gin.Context) {
	userID := c.MustGet("user_id").(string)
	viewer := middleware.CurrentViewer(c)
	contentID := c.Param("id")

	var item models.Content
	if err := db.DB.First(&item, "id = ?", contentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Content not found")
		} else {
			utils.LogErrorWithUser(userID, err, "Error fetching content")
			utils.SendError(c, http.StatusInternalServerError, "Failed to delete content")
		}
		return
	}

	owner, err := access.IsOwner(db.DB, viewer, &item)
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error evaluating ownership")
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete content")
		return
	}
	if !owner {
		utils.SendError(c, http.StatusForbidden, "You are not the owner of this content")
		return
	}

	if err := db.DB.Delete(&item).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error deleting content")
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete content")
		return
	}

	if err := db.DB.Model(&models.Creator{}).Where("id = ?", item.CreatorID).
		UpdateColumn("stats_total_content", gorm.Expr("stats_total_content - ?", 1)).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error decrementing creator content count")
	}

	utils.SendSuccess(c, http.StatusOK, "Content deleted successfully", nil)
}

// @Summary Upload a video
// @Description Store a video file under uploads/videos and return its URL
// @Tags content
// @Accept multipart/form-data
// @Produce json
// @Param video formData file true "Video file"
// @Security BearerAuth
// @Success 200 {object} utils.Response "data: videoUrl and file metadata"
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Router /api/content/upload-video [post]
func UploadVideo(c *gin.Context) {
	file, err := c.FormFile("video")
	if err != nil || file == nil {
		utils.SendError(c, http.StatusBadRequest, "No video file uploaded")
		return
	}

	videoURL, err := utils.SaveVideo(c, file)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Error uploading video: "+err.Error())
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Video uploaded successfully", gin.H{
		"videoUrl":     videoURL,
		"filename":     filepath.Base(videoURL),
		"originalName": file.Filename,
		"size":         file.Size,
		"mimetype":     file.Header.Get("Content-Type"),
	})
}

// @Summary Upload a thumbnail
// @Description Store an image file under uploads/thumbnails and return its URL
// @Tags content
// @Accept multipart/form-data
// @Produce json
// @Param thumbnail formData file true "Thumbnail image"
// @Security BearerAuth
// @Success 200 {object} utils.Response "data: thumbnailUrl and file metadata"
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Router /api/content/upload-thumbnail [post]
func UploadThumbnail(c *gin.Context) {
	file, err := c.FormFile("thumbnail")
	if err != nil || file == nil {
		utils.SendError(c, http.StatusBadRequest, "No thumbnail file uploaded")
		return
	}

	thumbnailURL, err := utils.SaveThumbnail(c, file)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Error uploading thumbnail: "+err.Error())
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Thumbnail uploaded successfully", gin.H{
		"thumbnailUrl": thumbnailURL,
		"filename":     filepath.Base(thumbnailURL),
		"originalName": file.Filename,
		"size":         file.Size,
		"mimetype":     file.Header.Get("Content-Type"),
	})
}

// @Summary Like content
// @Tags content
// @Produce json
// @Failure 501 {object} utils.Response
// @Router /api/content/{id}/like [post]
func LikeContent(c *gin.Context) {
	utils.SendNotImplemented(c, "Like content")
}

// @Summary Favorite content
// @Tags content
// @Produce json
// @Failure 501 {object} utils.Response
// @Router /api/content/{id}/favorite [post]
func FavoriteContent(c *gin.Context) {
	utils.SendNotImplemented(c, "Favorite content")
}

// @Summary List comments on content
// @Tags content
// @Produce json
// @Failure 501 {object} utils.Response
// @Router /api/content/{id}/comments [get]
func GetComments(c *gin.Context) {
	utils.SendNotImplemented(c, "Get content comments")
}

// @Summary Comment on content
// @Tags content
// @Produce json
// @Failure 501 {object} utils.Response
// @Router /api/content/{id}/comments [post]
func AddComment(c *gin.Context) {
	utils.SendNotImplemented(c, "Add comment")
}
