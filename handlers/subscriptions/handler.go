package subscriptions

import (
	"errors"
	"net/http"

	"creatorhub-backend/access"
	"creatorhub-backend/db"
	"creatorhub-backend/models"
	"creatorhub-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// fetchOwned loads a subscription and verifies the caller is its subscriber.
// Writes the error response itself and returns ok=false when the handler
// should bail out.
func fetchOwned(c *gin.Context) (models.Subscription, bool) {
	userID := c.MustGet("user_id").(string)

	var sub models.Subscription
	if err := db.DB.First(&sub, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Subscription not found")
		} else {
			utils.LogErrorWithUser(userID, err, "Error fetching subscription")
			utils.SendError(c, http.StatusInternalServerError, "Failed to fetch subscription")
		}
		return sub, false
	}

	if sub.UserID != userID {
		utils.SendError(c, http.StatusForbidden, "You do not own this subscription")
		return sub, false
	}

	return sub, true
}

// @Summary Create a subscription
// @Description Subscribing requires a completed payment, which is outside the implemented surface
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Failure 501 {object} utils.Response
// @Router /api/subscriptions [post]
func CreateSubscription(c *gin.Context) {
	utils.SendNotImplemented(c, "Create subscription")
}

// @Summary Get a subscription
// @Tags subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /api/subscriptions/{id} [get]
func GetSubscriptionByID(c *gin.Context) {
	sub, ok := fetchOwned(c)
	if !ok {
		return
	}
	utils.SendSuccess(c, http.StatusOK, "", sub)
}

// @Summary List a user's subscriptions
// @Tags subscriptions
// @Produce json
// @Param userId path string true "User ID"
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Router /api/subscriptions/user/{userId} [get]
func GetUserSubscriptions(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	if c.Param("userId") != userID {
		utils.SendError(c, http.StatusForbidden, "You can only list your own subscriptions")
		return
	}

	var subs []models.Subscription
	if err := db.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&subs).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error listing subscriptions")
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch subscriptions")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "", subs)
}

// @Summary List a creator's subscribers
// @Description Only the creator's backing user may list them
// @Tags subscriptions
// @Produce json
// @Param creatorId path string true "Creator ID"
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /api/subscriptions/creator/{creatorId} [get]
func GetCreatorSubscriptions(c *gin.Context) {
	userID := c.MustGet("user_id").(string)
	creatorID := c.Param("creatorId")

	ownerID, err := access.OwnerUserID(db.DB, creatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Creator not found")
		} else {
			utils.LogErrorWithUser(userID, err, "Error resolving creator owner")
			utils.SendError(c, http.StatusInternalServerError, "Failed to fetch subscriptions")
		}
		return
	}
	if ownerID != userID {
		utils.SendError(c, http.StatusForbidden, "You do not own this creator profile")
		return
	}

	var subs []models.Subscription
	if err := db.DB.Where("creator_id = ?", creatorID).Order("created_at DESC").Find(&subs).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error listing creator subscriptions")
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch subscriptions")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "", subs)
}

// @Summary Cancel a subscription
// @Tags subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response "message: already cancelled or expired"
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /api/subscriptions/{id} [delete]
func CancelSubscription(c *gin.Context) {
	sub, ok := fetchOwned(c)
	if !ok {
		return
	}

	if sub.Status == models.SubscriptionCancelled || sub.Status == models.SubscriptionExpired {
		utils.SendError(c, http.StatusBadRequest, "Subscription is already "+string(sub.Status))
		return
	}

	sub.Status = models.SubscriptionCancelled
	sub.AutoRenew = false
	if err := db.DB.Save(&sub).Error; err != nil {
		utils.LogErrorWithUser(sub.UserID, err, "Error cancelling subscription")
		utils.SendError(c, http.StatusInternalServerError, "Failed to cancel subscription")
		return
	}

	utils.LogSuccessWithUser(sub.UserID, "Subscription cancelled")
	utils.SendSuccess(c, http.StatusOK, "Subscription cancelled", sub)
}

// @Summary Pause a subscription
// @Tags subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response "message: only active subscriptions can be paused"
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /api/subscriptions/{id}/pause [put]
func PauseSubscription(c *gin.Context) {
	sub, ok := fetchOwned(c)
	if !ok {
		return
	}

	if sub.Status != models.SubscriptionActive {
		utils.SendError(c, http.StatusBadRequest, "Only active subscriptions can be paused")
		return
	}

	sub.Status = models.SubscriptionPaused
	if err := db.DB.Save(&sub).Error; err != nil {
		utils.LogErrorWithUser(sub.UserID, err, "Error pausing subscription")
		utils.SendError(c, http.StatusInternalServerError, "Failed to pause subscription")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Subscription paused", sub)
}

// @Summary Resume a subscription
// @Tags subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response "message: only paused subscriptions can be resumed"
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /api/subscriptions/{id}/resume [put]
func ResumeSubscription(c *gin.Context) {
	sub, ok := fetchOwned(c)
	if !ok {
		return
	}

	if sub.Status != models.SubscriptionPaused {
		utils.SendError(c, http.StatusBadRequest, "Only paused subscriptions can be resumed")
		return
	}

	sub.Status = models.SubscriptionActive
	if err := db.DB.Save(&sub).Error; err != nil {
		utils.LogErrorWithUser(sub.UserID, err, "Error resuming subscription")
		utils.SendError(c, http.StatusInternalServerError, "Failed to resume subscription")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Subscription resumed", sub)
}

// @Summary Update subscription settings
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param id path string true "Subscription ID"
// @Param settings body models.SubscriptionSettingsUpdate true "Settings"
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /api/subscriptions/{id}/settings [put]
func UpdateSubscriptionSettings(c *gin.Context) {
	sub, ok := fetchOwned(c)
	if !ok {
		return
	}

	var input models.SubscriptionSettingsUpdate
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	if input.AutoRenew != nil {
		sub.AutoRenew = *input.AutoRenew
	}
	if input.PaymentMethod != "" {
		sub.PaymentMethod = input.PaymentMethod
	}

	if err := db.DB.Save(&sub).Error; err != nil {
		utils.LogErrorWithUser(sub.UserID, err, "Error updating subscription settings")
		utils.SendError(c, http.StatusInternalServerError, "Failed to update subscription settings")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Subscription settings updated", sub)
}
