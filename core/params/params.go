package params

import (
	"strconv"

	"mentorhub/core/constants"

	"github.com/labstack/echo/v4"
)

// QueryParams carries the common list-endpoint query parameters.
type QueryParams struct {
	PageNumber int
	PageSize   int
	SortBy     string
	SortDesc   bool
	Search     string
}

// FromEcho extracts and normalizes paging parameters from the request.
func FromEcho(ctx echo.Context) QueryParams {
	p := QueryParams{
		PageNumber: atoiDefault(ctx.QueryParam("page"), 1),
		PageSize:   atoiDefault(ctx.QueryParam("page_size"), constants.DefaultPageSize),
		SortBy:     ctx.QueryParam("sort_by"),
		SortDesc:   ctx.QueryParam("sort_dir") == "desc",
		Search:     ctx.QueryParam("search"),
	}
	return p.Normalize()
}

// Normalize clamps out-of-range paging values.
func (p QueryParams) Normalize() QueryParams {
	if p.PageNumber < 1 {
		p.PageNumber = 1
	}
	if p.PageSize < 1 {
		p.PageSize = constants.DefaultPageSize
	}
	if p.PageSize > constants.MaxPageSize {
		p.PageSize = constants.MaxPageSize
	}
	return p
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
