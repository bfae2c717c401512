package models

import (
	"time"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Payment is append-mostly; status transitions happen on provider callbacks,
// which are outside the implemented surface.
type Payment struct {
	ID              string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID          string        `json:"userId" gorm:"type:uuid;not null;index"`
	SubscriptionID  *string       `json:"subscriptionId,omitempty" gorm:"type:uuid;index"`
	ContentID       *string       `json:"contentId,omitempty" gorm:"type:uuid;index"`
	Amount          float64       `json:"amount"`
	Currency        string        `json:"currency" gorm:"default:'USD'"`
	Status          PaymentStatus `json:"status" gorm:"type:varchar(15);default:'pending';index"`
	PaymentMethod   string        `json:"paymentMethod"`
	PaymentIntentID string        `json:"paymentIntentId,omitempty"`
	TransactionID   string        `json:"transactionId,omitempty"`
	Description     string        `json:"description"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

func (Payment) TableName() string {
	return "payments"
}
