package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel represents the users table. Role is a single string enum
// ("user"/"admin"); papers keep a weak reference to their uploader, so rows
// here can be hard-deleted without cascading.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName       string    `gorm:"size:50;not null" json:"user_name"`
	Email          string    `gorm:"size:255;unique;not null" json:"email"`
	Password       string    `gorm:"not null" json:"-"`
	GoogleID       *string   `gorm:"size:255;unique" json:"google_id,omitempty"`
	Role           string    `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	Department     *string   `gorm:"size:100" json:"department,omitempty"`
	ProfilePicture *string   `gorm:"size:512" json:"profile_picture,omitempty"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`

	// Password reset: only the sha256 of the raw token is stored.
	ResetPasswordToken   *string    `gorm:"size:64;index" json:"-"`
	ResetPasswordExpires *time.Time `json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
