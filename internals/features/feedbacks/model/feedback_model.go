package model

import (
	"time"

	"github.com/google/uuid"

	"pyqbank_backend/internals/constants"
)

// Feedback status values. Arbitrary transitions within the set are allowed;
// only admins may change status at all.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusResolved = "resolved"
)

var Statuses = []string{StatusPending, StatusApproved, StatusRejected, StatusResolved}

func IsValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// FeedbackModel represents the feedbacks table. The (user_id, paper_id)
// unique index makes a second submission for the same paper a duplicate-key
// error even under a race.
type FeedbackModel struct {
	ID      uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_feedbacks_user_paper" json:"user_id"`
	PaperID *uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_feedbacks_user_paper" json:"paper_id,omitempty"`

	Rating  int    `gorm:"not null" json:"rating"`
	Message string `gorm:"size:1000;not null" json:"message"`

	Status        string `gorm:"size:20;not null;default:'pending';index" json:"status"`
	AdminResponse string `gorm:"type:text" json:"admin_response"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (FeedbackModel) TableName() string {
	return "feedbacks"
}

// CanDelete: only the owner or an admin may delete feedback.
func (f *FeedbackModel) CanDelete(callerID uuid.UUID, callerRole string) bool {
	if callerRole == constants.RoleAdmin {
		return true
	}
	return callerID != uuid.Nil && callerID == f.UserID
}
