// Package access decides whether a requester may see or mutate a content
// record. Ownership is never a direct comparison between the requester id and
// content.creator_id: content points at a creator profile, and the profile
// points at its backing user, so every check resolves both hops.
package access

import (
	"errors"

	"creatorhub-backend/models"

	"gorm.io/gorm"
)

// Viewer is the authenticated identity attached to a request. A nil *Viewer
// means the caller is anonymous.
type Viewer struct {
	UserID    string
	IsCreator bool
}

// OwnerUserID resolves content.creator_id -> creators.id -> creators.user_id.
func OwnerUserID(database *gorm.DB, creatorID string) (string, error) {
	var creator models.Creator
	if err := database.Select("user_id").First(&creator, "id = ?", creatorID).Error; err != nil {
		return "", err
	}
	return creator.UserID, nil
}

// CanViewContent applies the detail-read rule: public content is visible to
// anyone, private content only to the owning creator's backing user. The
// content's status is deliberately not re-checked here; the listing query
// already filters on it and the detail endpoint serves any fetched row.
func CanViewContent(database *gorm.DB, viewer *Viewer, content *models.Content) (bool, error) {
	if content.IsPublic {
		return true, nil
	}
	if viewer == nil {
		return false, nil
	}
	ownerID, err := OwnerUserID(database, content.CreatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// content pointing at a missing creator profile stays private
			return false, nil
		}
		return false, err
	}
	return viewer.UserID == ownerID, nil
}

// IsOwner reports whether the viewer's backing user owns the content,
// through the same two-hop resolution as CanViewContent.
func IsOwner(database *gorm.DB, viewer *Viewer, content *models.Content) (bool, error) {
	if viewer == nil {
		return false, nil
	}
	ownerID, err := OwnerUserID(database, content.CreatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return viewer.UserID == ownerID, nil
}

// VisibleContent narrows a listing query to what the viewer may see. List and
// detail share one policy: anonymous callers get public rows, authenticated
// callers additionally get their own private rows and nothing else.
func VisibleContent(query *gorm.DB, viewer *Viewer) *gorm.DB {
	if viewer == nil {
		return query.Where("contents.is_public = ?", true)
	}
	return query.
		Joins("JOIN creators ON creators.id = contents.creator_id").
		Where("contents.is_public = ? OR creators.user_id = ?", true, viewer.UserID)
}
