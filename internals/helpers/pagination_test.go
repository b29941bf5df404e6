package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveVia(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()
	app := fiber.New()
	var got Paging
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePaging(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p := resolveVia(t, "/x", 20, 100)
		assert.Equal(t, Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}, p)
	})

	t.Run("page and per_page", func(t *testing.T) {
		p := resolveVia(t, "/x?page=3&per_page=10", 20, 100)
		assert.Equal(t, Paging{Page: 3, PerPage: 10, Offset: 20, Limit: 10}, p)
	})

	t.Run("limit alias", func(t *testing.T) {
		p := resolveVia(t, "/x?limit=5", 20, 100)
		assert.Equal(t, 5, p.PerPage)
	})

	t.Run("caps at max", func(t *testing.T) {
		p := resolveVia(t, "/x?per_page=5000", 20, 100)
		assert.Equal(t, 100, p.PerPage)
	})

	t.Run("garbage falls back", func(t *testing.T) {
		p := resolveVia(t, "/x?page=-2&per_page=zero", 20, 100)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 20, p.PerPage)
	})
}

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(45, Paging{Page: 2, PerPage: 20}, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
	assert.Equal(t, 20, p.Count)

	last := BuildPagination(45, Paging{Page: 3, PerPage: 20}, 5)
	assert.False(t, last.HasNext)
	assert.Equal(t, 5, last.Count)
}
