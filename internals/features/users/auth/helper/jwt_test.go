package helper

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pyqbank_backend/internals/configs"
	"pyqbank_backend/internals/constants"
	userModel "pyqbank_backend/internals/features/users/user/model"
)

func TestSignAccessToken(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = prev })

	user := &userModel.UserModel{
		ID:       uuid.New(),
		UserName: "alice",
		Email:    "alice@example.com",
		Role:     constants.RoleUser,
	}
	token, err := SignAccessToken(user)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (any, error) {
		require.IsType(t, &jwt.SigningMethodHMAC{}, tok.Method)
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, user.ID.String(), claims["user_id"])
	assert.Equal(t, "alice", claims["user_name"])
	assert.Equal(t, constants.RoleUser, claims["role"])
	assert.Equal(t, "alice@example.com", claims["email"])

	exp := int64(claims["exp"].(float64))
	iat := int64(claims["iat"].(float64))
	assert.Equal(t, int64(AccessTokenTTL/time.Second), exp-iat)
}

func TestSignAccessTokenMissingSecret(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = ""
	t.Cleanup(func() { configs.JWTSecret = prev })

	_, err := SignAccessToken(&userModel.UserModel{ID: uuid.New()})
	assert.Error(t, err)
}
