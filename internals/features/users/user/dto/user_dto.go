package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"pyqbank_backend/internals/constants"
	"pyqbank_backend/internals/features/users/user/model"
)

// UserResponse is the outward-facing user representation. The password hash
// and reset-token fields never leave the service.
type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	UserName       string    `json:"user_name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	Department     *string   `json:"department,omitempty"`
	ProfilePicture *string   `json:"profile_picture,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromModel(u *model.UserModel) UserResponse {
	return UserResponse{
		ID:             u.ID,
		UserName:       u.UserName,
		Email:          u.Email,
		Role:           u.Role,
		Department:     u.Department,
		ProfilePicture: u.ProfilePicture,
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt,
	}
}

func FromModels(users []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, FromModel(&users[i]))
	}
	return out
}

// SelfUpdateRequest: the allow-listed fields a user may change on their own
// account. Role is not part of this struct; submitting it has no effect.
type SelfUpdateRequest struct {
	UserName   *string `json:"user_name"`
	Email      *string `json:"email"`
	Department *string `json:"department"`
}

// Apply copies the present fields onto u and returns whether anything changed.
func (r *SelfUpdateRequest) Apply(u *model.UserModel) bool {
	changed := false
	if r.UserName != nil && strings.TrimSpace(*r.UserName) != "" {
		u.UserName = strings.TrimSpace(*r.UserName)
		changed = true
	}
	if r.Email != nil && strings.TrimSpace(*r.Email) != "" {
		u.Email = strings.ToLower(strings.TrimSpace(*r.Email))
		changed = true
	}
	if r.Department != nil {
		d := strings.TrimSpace(*r.Department)
		u.Department = &d
		changed = true
	}
	return changed
}

// AdminUpdateUserRequest: fields an admin may change on any account.
type AdminUpdateUserRequest struct {
	UserName   *string `json:"user_name"`
	Email      *string `json:"email"`
	Department *string `json:"department"`
	Role       *string `json:"role"`
	IsActive   *bool   `json:"is_active"`
}

func (r *AdminUpdateUserRequest) Apply(u *model.UserModel) (bool, error) {
	self := SelfUpdateRequest{UserName: r.UserName, Email: r.Email, Department: r.Department}
	changed := self.Apply(u)
	if r.Role != nil {
		role := strings.ToLower(strings.TrimSpace(*r.Role))
		if !constants.IsValidRole(role) {
			return changed, ErrInvalidRole
		}
		u.Role = role
		changed = true
	}
	if r.IsActive != nil {
		u.IsActive = *r.IsActive
		changed = true
	}
	return changed, nil
}
