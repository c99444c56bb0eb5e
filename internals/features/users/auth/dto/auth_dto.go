package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New()

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r *RegisterRequest) Validate() error { return validate.Struct(r) }

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error { return validate.Struct(r) }

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

func (r *UpdatePasswordRequest) Validate() error { return validate.Struct(r) }

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (r *ForgotPasswordRequest) Validate() error { return validate.Struct(r) }

type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

func (r *ResetPasswordRequest) Validate() error { return validate.Struct(r) }

type GoogleTokenRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

func (r *GoogleTokenRequest) Validate() error { return validate.Struct(r) }

// FieldErrors flattens validator errors into the response envelope shape.
func FieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			out[fe.Field()] = append(out[fe.Field()], fe.Tag())
		}
	}
	return out
}
