package models

import (
	"time"
)

type ContentType string

const (
	ContentTypeVideo ContentType = "video"
	ContentTypeImage ContentType = "image"
	ContentTypeAudio ContentType = "audio"
	ContentTypeText  ContentType = "text"
)

func ValidContentType(t ContentType) bool {
	switch t {
	case ContentTypeVideo, ContentTypeImage, ContentTypeAudio, ContentTypeText:
		return true
	}
	return false
}

type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusPublished ContentStatus = "published"
	ContentStatusArchived  ContentStatus = "archived"
	// ContentStatusProcessing is reserved for a future transcoding pipeline.
	// No code path enters or leaves it.
	ContentStatusProcessing ContentStatus = "processing"
)

type Content struct {
	ID          string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatorID   string          `json:"creatorId" gorm:"type:uuid;not null;index"`
	Creator     *Creator        `json:"creator,omitempty" gorm:"foreignKey:CreatorID"`
	Title       string          `json:"title" gorm:"not null"`
	Description string          `json:"description" gorm:"not null"`
	ContentType ContentType     `json:"contentType" gorm:"type:varchar(10);not null;index"`
	Category    CreatorCategory `json:"category" gorm:"type:varchar(30);not null;index"`
	Tags        []string        `json:"tags" gorm:"serializer:json"`
	VideoURL    string          `json:"videoUrl" gorm:"column:video_url"`
	ThumbnailURL string         `json:"thumbnailUrl" gorm:"column:thumbnail_url"`
	Duration    int             `json:"duration,omitempty"`
	FileSize    int64           `json:"fileSize,omitempty"`
	Resolution  string          `json:"resolution,omitempty"`
	IsPublic    bool            `json:"isPublic" gorm:"default:true;index"`
	IsPremium   bool            `json:"isPremium" gorm:"default:false"`
	Price       float64         `json:"price" gorm:"default:0"`
	ViewCount   int             `json:"viewCount" gorm:"default:0"`
	LikeCount   int             `json:"likeCount" gorm:"default:0"`
	CommentCount int            `json:"commentCount" gorm:"default:0"`
	ShareCount  int             `json:"shareCount" gorm:"default:0"`
	Status      ContentStatus   `json:"status" gorm:"type:varchar(15);default:'draft';index"`
	PublishedAt *time.Time      `json:"publishedAt"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (Content) TableName() string {
	return "contents"
}

// ContentCreate model for publishing a content item
// @Description model for publishing a content item
type ContentCreate struct {
	Title        string          `json:"title" binding:"required,max=200" example:"Knife skills 101"`
	Description  string          `json:"description" binding:"required,max=2000" example:"Basics of knife handling"`
	Category     CreatorCategory `json:"category" binding:"required" example:"cooking"`
	ContentType  ContentType     `json:"contentType" example:"video"`
	Tags         []string        `json:"tags"`
	IsPublic     *bool           `json:"isPublic"`
	IsPremium    bool            `json:"isPremium"`
	Price        float64         `json:"price"`
	VideoURL     string          `json:"videoUrl"`
	ThumbnailURL string          `json:"thumbnailUrl"`
	Duration     int             `json:"duration"`
	Resolution   string          `json:"resolution"`
}

// ContentUpdate model for editing a content item; zero values leave the field untouched
type ContentUpdate struct {
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Category     CreatorCategory  `json:"category"`
	Tags         []string         `json:"tags"`
	IsPublic     *bool            `json:"isPublic"`
	IsPremium    *bool            `json:"isPremium"`
	Price        *float64         `json:"price"`
	ThumbnailURL string           `json:"thumbnailUrl"`
	Status       ContentStatus    `json:"status"`
}
