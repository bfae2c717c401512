package models

import (
	"time"
)

type Comment struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ContentID string     `json:"contentId" gorm:"type:uuid;not null;index"`
	UserID    string     `json:"userId" gorm:"type:uuid;not null"`
	Body      string     `json:"body" gorm:"not null"`
	ParentID  *string    `json:"parentId,omitempty" gorm:"type:uuid;index"`
	IsDeleted bool       `json:"isDeleted" gorm:"default:false"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (Comment) TableName() string {
	return "comments"
}
