package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"pyqbank_backend/internals/features/feedbacks/model"
)

type CreateFeedbackRequest struct {
	PaperID *uuid.UUID `json:"paper_id" form:"paper_id"`
	Rating  int        `json:"rating" form:"rating"`
	Message string     `json:"message" form:"message"`
}

func (r *CreateFeedbackRequest) Validate() map[string][]string {
	errs := map[string][]string{}
	if r.Rating < 1 || r.Rating > 5 {
		errs["rating"] = append(errs["rating"], "must be between 1 and 5")
	}
	msg := strings.TrimSpace(r.Message)
	if msg == "" {
		errs["message"] = append(errs["message"], "required")
	} else if len(msg) > 1000 {
		errs["message"] = append(errs["message"], "must be at most 1000 characters")
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// UpdateFeedbackRequest: admin-only moderation fields.
type UpdateFeedbackRequest struct {
	Status        *string `json:"status" form:"status"`
	AdminResponse *string `json:"admin_response" form:"admin_response"`
}

func (r *UpdateFeedbackRequest) Validate() map[string][]string {
	errs := map[string][]string{}
	if r.Status != nil && !model.IsValidStatus(*r.Status) {
		errs["status"] = append(errs["status"], "must be one of: "+strings.Join(model.Statuses, ", "))
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type AuthorInfo struct {
	ID       uuid.UUID `json:"id"`
	UserName string    `json:"user_name"`
}

type FeedbackResponse struct {
	ID            uuid.UUID   `json:"id"`
	UserID        uuid.UUID   `json:"user_id"`
	Author        *AuthorInfo `json:"author,omitempty"`
	PaperID       *uuid.UUID  `json:"paper_id,omitempty"`
	Rating        int         `json:"rating"`
	Message       string      `json:"message"`
	Status        string      `json:"status"`
	AdminResponse string      `json:"admin_response,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func FromModel(f *model.FeedbackModel, author *AuthorInfo) FeedbackResponse {
	return FeedbackResponse{
		ID:            f.ID,
		UserID:        f.UserID,
		Author:        author,
		PaperID:       f.PaperID,
		Rating:        f.Rating,
		Message:       f.Message,
		Status:        f.Status,
		AdminResponse: f.AdminResponse,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}
