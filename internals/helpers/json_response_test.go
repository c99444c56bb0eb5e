package helper

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePaging(t *testing.T) {
	app := fiber.New()
	var got Paging
	app.Get("/", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 10, 100)
		return c.SendStatus(fiber.StatusOK)
	})

	cases := []struct {
		url  string
		want Paging
	}{
		{"/", Paging{Page: 1, PerPage: 10, Offset: 0, Limit: 10}},
		{"/?page=3&per_page=25", Paging{Page: 3, PerPage: 25, Offset: 50, Limit: 25}},
		{"/?page=2&limit=5", Paging{Page: 2, PerPage: 5, Offset: 5, Limit: 5}},
		{"/?per_page=1000", Paging{Page: 1, PerPage: 100, Offset: 0, Limit: 100}},
		{"/?page=-4&per_page=0", Paging{Page: 1, PerPage: 10, Offset: 0, Limit: 10}},
		{"/?page=abc", Paging{Page: 1, PerPage: 10, Offset: 0, Limit: 10}},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", tc.url, nil))
		require.NoError(t, err, tc.url)
		resp.Body.Close()
		assert.Equal(t, tc.want, got, tc.url)
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)

	p = BuildPaginationFromPage(40, 2, 20)
	assert.Equal(t, 2, p.TotalPages)
	assert.False(t, p.HasNext)
}

func TestJsonEnvelopes(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c *fiber.Ctx) error {
		return JsonOK(c, "fetched", fiber.Map{"k": "v"})
	})
	app.Get("/err", func(c *fiber.Ctx) error {
		return JsonError(c, fiber.StatusConflict, "already exists")
	})
	app.Get("/invalid", func(c *fiber.Ctx) error {
		return JsonValidationError(c, map[string][]string{"rating": {"must be between 1 and 5"}})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	body := decodeBody(t, resp)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "fetched", body["message"])

	resp, err = app.Test(httptest.NewRequest("GET", "/err", nil))
	require.NoError(t, err)
	body = decodeBody(t, resp)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "CONFLICT", body["error_code"])

	resp, err = app.Test(httptest.NewRequest("GET", "/invalid", nil))
	require.NoError(t, err)
	body = decodeBody(t, resp)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", body["error_code"])
	assert.Contains(t, body["errors"].(map[string]any), "rating")
}

func TestJsonListCount(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		p := BuildPaginationFromPage(2, 1, 20)
		return JsonList(c, "list", []string{"a", "b"}, &p)
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	body := decodeBody(t, resp)
	pagination := body["pagination"].(map[string]any)
	assert.Equal(t, float64(2), pagination["count"])
	assert.Equal(t, float64(2), pagination["total"])
}

func TestIsDuplicateKeyErr(t *testing.T) {
	assert.False(t, IsDuplicateKeyErr(nil))
	assert.False(t, IsDuplicateKeyErr(errors.New("connection refused")))
	assert.True(t, IsDuplicateKeyErr(errors.New(`ERROR: duplicate key value violates unique constraint "uq_feedbacks_user_paper" (SQLSTATE 23505)`)))
	assert.True(t, IsDuplicateKeyErr(errors.New("UNIQUE constraint failed: users.email")))
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
