package models

import (
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionPaused    SubscriptionStatus = "paused"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionExpired   SubscriptionStatus = "expired"
)

type Subscription struct {
	ID            string             `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID        string             `json:"userId" gorm:"type:uuid;not null;index"`
	CreatorID     string             `json:"creatorId" gorm:"type:uuid;not null;index"`
	PlanID        string             `json:"planId" gorm:"not null"`
	Status        SubscriptionStatus `json:"status" gorm:"type:varchar(20);default:'active';index"`
	StartDate     time.Time          `json:"startDate"`
	EndDate       time.Time          `json:"endDate" gorm:"index"`
	RenewalDate   time.Time          `json:"renewalDate"`
	Amount        float64            `json:"amount"`
	Currency      string             `json:"currency" gorm:"default:'USD'"`
	PaymentMethod string             `json:"paymentMethod"`
	AutoRenew     bool               `json:"autoRenew" gorm:"default:true"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// SubscriptionSettingsUpdate model for updating renewal settings
type SubscriptionSettingsUpdate struct {
	AutoRenew     *bool  `json:"autoRenew"`
	PaymentMethod string `json:"paymentMethod"`
}
