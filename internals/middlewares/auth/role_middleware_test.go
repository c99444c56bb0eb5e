package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pyqbank_backend/internals/constants"
)

func identityStub(id, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id != "" {
			c.Locals(LocUserID, id)
		}
		if role != "" {
			c.Locals(LocUserRole, role)
		}
		return c.Next()
	}
}

func TestAdminOnly(t *testing.T) {
	cases := []struct {
		role string
		want int
	}{
		{constants.RoleAdmin, fiber.StatusOK},
		{constants.RoleUser, fiber.StatusForbidden},
		{"", fiber.StatusUnauthorized},
	}
	for _, tc := range cases {
		app := fiber.New()
		app.Get("/", identityStub(uuid.NewString(), tc.role), AdminOnly(), func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, tc.want, resp.StatusCode, "role %q", tc.role)
	}
}

func TestLocalsAccessors(t *testing.T) {
	app := fiber.New()
	id := uuid.New()
	app.Get("/", identityStub(id.String(), constants.RoleUser), func(c *fiber.Ctx) error {
		assert.Equal(t, id, GetUserID(c))
		assert.Equal(t, constants.RoleUser, GetUserRole(c))
		assert.True(t, IsAuthenticated(c))
		assert.False(t, IsAdmin(c))
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestLocalsAccessorsAnonymous(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		assert.Equal(t, uuid.Nil, GetUserID(c))
		assert.Equal(t, "", GetUserRole(c))
		assert.False(t, IsAuthenticated(c))
		assert.False(t, IsAdmin(c))
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
