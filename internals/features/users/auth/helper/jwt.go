package helper

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"pyqbank_backend/internals/configs"
	userModel "pyqbank_backend/internals/features/users/user/model"
)

const AccessTokenTTL = 24 * time.Hour

// SignAccessToken issues the HS256 session token for a user.
func SignAccessToken(user *userModel.UserModel) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", errors.New("JWT_SECRET is not set")
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id":   user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"email":     user.Email,
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
