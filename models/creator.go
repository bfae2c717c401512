package models

import (
	"time"
)

// CreatorCategory is the closed set of categories shared by creators and content
type CreatorCategory string

const (
	CategoryFitness       CreatorCategory = "fitness"
	CategoryCooking       CreatorCategory = "cooking"
	CategoryEducation     CreatorCategory = "education"
	CategoryEntertainment CreatorCategory = "entertainment"
	CategoryLifestyle     CreatorCategory = "lifestyle"
	CategoryTechnology    CreatorCategory = "technology"
	CategoryArt           CreatorCategory = "art"
	CategoryMusic         CreatorCategory = "music"
	CategoryOther         CreatorCategory = "other"
)

func ValidCategory(c CreatorCategory) bool {
	switch c {
	case CategoryFitness, CategoryCooking, CategoryEducation, CategoryEntertainment,
		CategoryLifestyle, CategoryTechnology, CategoryArt, CategoryMusic, CategoryOther:
		return true
	}
	return false
}

type SocialLinks struct {
	Website   string `json:"website,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Youtube   string `json:"youtube,omitempty"`
}

type SubscriptionPlan struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// CreatorStats is denormalized; columns are maintained with atomic
// increments, never recomputed from source rows.
type CreatorStats struct {
	TotalSubscribers int     `json:"totalSubscribers" gorm:"default:0"`
	TotalContent     int     `json:"totalContent" gorm:"default:0"`
	TotalEarnings    float64 `json:"totalEarnings" gorm:"default:0"`
	AverageRating    float64 `json:"averageRating" gorm:"default:0"`
}

type Creator struct {
	ID                string             `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID            string             `json:"userId" gorm:"type:uuid;uniqueIndex;not null"`
	DisplayName       string             `json:"displayName" gorm:"not null"`
	Description       string             `json:"description"`
	Category          CreatorCategory    `json:"category" gorm:"type:varchar(30);not null"`
	Avatar            string             `json:"avatar"`
	CoverImage        string             `json:"coverImage"`
	SocialLinks       SocialLinks        `json:"socialLinks" gorm:"serializer:json"`
	SubscriptionPlans []SubscriptionPlan `json:"subscriptionPlans" gorm:"serializer:json"`
	Stats             CreatorStats       `json:"stats" gorm:"embedded;embeddedPrefix:stats_"`
	IsVerified        bool               `json:"isVerified" gorm:"default:false"`
	IsActive          bool               `json:"isActive" gorm:"default:true"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

func (Creator) TableName() string {
	return "creators"
}

// CreatorCreate model for establishing a creator profile
// @Description model for establishing a creator profile
type CreatorCreate struct {
	DisplayName       string             `json:"displayName" binding:"required,max=100" example:"Jane Cooks"`
	Description       string             `json:"description" binding:"required,max=1000" example:"Weeknight recipes"`
	Category          CreatorCategory    `json:"category" binding:"required" example:"cooking"`
	Avatar            string             `json:"avatar"`
	CoverImage        string             `json:"coverImage"`
	SocialLinks       SocialLinks        `json:"socialLinks"`
	SubscriptionPlans []SubscriptionPlan `json:"subscriptionPlans"`
}
