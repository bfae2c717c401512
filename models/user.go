package models

import (
	"time"
)

type User struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Username   string    `json:"username" gorm:"uniqueIndex;not null"`
	Email      string    `json:"email" gorm:"uniqueIndex;not null"`
	Password   string    `json:"-" gorm:"not null"`
	Avatar     string    `json:"avatar"`
	Bio        string    `json:"bio"`
	IsCreator  bool      `json:"isCreator" gorm:"default:false"`
	IsVerified bool      `json:"isVerified" gorm:"default:false"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// UserRegister model for the registration payload
// @Description model for registering a new user
type UserRegister struct {
	Username string `json:"username" binding:"required,min=3,max=30" example:"janedoe"`
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"Password123"`
}

// UserLogin model for the login payload
type UserLogin struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"Password123"`
}
