package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// PageParams represents pagination parameters. Pages are zero-based, matching
// the paged responses the existing clients consume.
type PageParams struct {
	Page   int
	Size   int
	Offset int
}

// GetPageParams extracts page and size query parameters from the request.
func GetPageParams(c echo.Context) PageParams {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))

	if page < 0 {
		page = 0
	}

	if size <= 0 || size > 100 {
		size = 20 // Default page size
	}

	return PageParams{
		Page:   page,
		Size:   size,
		Offset: page * size,
	}
}
