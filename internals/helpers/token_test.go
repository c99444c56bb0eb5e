package helper

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRawAccessToken(t *testing.T) {
	app := fiber.New()
	var got string
	app.Get("/", func(c *fiber.Ctx) error {
		got = GetRawAccessToken(c)
		return c.SendStatus(fiber.StatusOK)
	})

	// Bearer header wins.
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "cookie-token"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "header-token", got)

	// Cookie fallback.
	req = httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "cookie-token"})
	resp, err = app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "cookie-token", got)

	// Nothing present.
	resp, err = app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "", got)

	// Malformed header is ignored in favor of the cookie.
	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Token abc")
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "cookie-token"})
	resp, err = app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "cookie-token", got)
}
