package utils

import (
	"github.com/labstack/echo/v4"
)

// ListParams represents the list-shaping parameters a screen can send:
// sort field, direction and an optional free-text search.
type ListParams struct {
	OrderBy    string
	Descending bool
	Search     string
}

// GetListParams extracts list parameters from the request, falling back to
// the given default sort field (newest first).
func GetListParams(c echo.Context, defaultOrderBy string) ListParams {
	orderBy := c.QueryParam("order_by")
	if orderBy == "" {
		orderBy = defaultOrderBy
	}

	direction := c.QueryParam("direction")
	descending := direction != "asc"

	return ListParams{
		OrderBy:    orderBy,
		Descending: descending,
		Search:     c.QueryParam("search"),
	}
}
