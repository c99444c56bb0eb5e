package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pyqbank_backend/internals/constants"
	"pyqbank_backend/internals/features/users/user/model"
)

func TestSelfUpdateApply(t *testing.T) {
	u := model.UserModel{UserName: "old", Email: "old@example.com", Role: constants.RoleUser}

	name := " New Name "
	email := " NEW@Example.COM "
	dept := "CSE"
	r := SelfUpdateRequest{UserName: &name, Email: &email, Department: &dept}

	assert.True(t, r.Apply(&u))
	assert.Equal(t, "New Name", u.UserName)
	assert.Equal(t, "new@example.com", u.Email)
	require.NotNil(t, u.Department)
	assert.Equal(t, "CSE", *u.Department)

	// Role is not part of the self-update surface, so it cannot change.
	assert.Equal(t, constants.RoleUser, u.Role)
}

func TestSelfUpdateApplyEmpty(t *testing.T) {
	u := model.UserModel{UserName: "old", Email: "old@example.com"}
	r := SelfUpdateRequest{}
	assert.False(t, r.Apply(&u))
	assert.Equal(t, "old", u.UserName)

	blank := "   "
	r = SelfUpdateRequest{UserName: &blank}
	assert.False(t, r.Apply(&u))
	assert.Equal(t, "old", u.UserName)
}

func TestAdminUpdateApplyRole(t *testing.T) {
	u := model.UserModel{Role: constants.RoleUser, IsActive: true}

	role := " Admin "
	r := AdminUpdateUserRequest{Role: &role}
	changed, err := r.Apply(&u)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, constants.RoleAdmin, u.Role)

	bad := "superuser"
	r = AdminUpdateUserRequest{Role: &bad}
	_, err = r.Apply(&u)
	assert.ErrorIs(t, err, ErrInvalidRole)
	assert.Equal(t, constants.RoleAdmin, u.Role)

	inactive := false
	r = AdminUpdateUserRequest{IsActive: &inactive}
	changed, err = r.Apply(&u)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.False(t, u.IsActive)
}

func TestUserResponseHidesSecrets(t *testing.T) {
	u := model.UserModel{UserName: "a", Email: "a@example.com", Password: "hash"}
	resp := FromModel(&u)
	assert.Equal(t, "a", resp.UserName)
	// UserResponse has no password field at all; this test documents that
	// FromModel is the only serialization path for users.
	assert.Equal(t, "a@example.com", resp.Email)
}
