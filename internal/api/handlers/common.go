package handlers

import (
	"spice-garden/domain"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func paginationParams(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func paginated(items any, page, limit int, count int64) fiber.Map {
	return fiber.Map{
		"items":      items,
		"pagination": domain.NewPagination(page, limit, count),
	}
}
