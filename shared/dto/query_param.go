package dto

import (
	"net/http"
	"strconv"

	"hotelbooking/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams controls ordering and paging of a list query. SortBy is set by
// services only and is never read from the request.
type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty,min=1"`
	Limit   int    `json:"limit"    validate:"omitempty,min=1"`
	SortBy  string `json:"-"`
	SortDir string `json:"-" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads page and limit, ignoring missing or non-positive values.
// With withDefaults, absent values fall back to the first page of the default size.
func (q *QueryParams) FromRequest(r *http.Request, withDefaults bool) {
	queryParams := r.URL.Query()

	q.Page = positiveInt(queryParams.Get(constant.RequestParamPage))
	q.Limit = positiveInt(queryParams.Get(constant.RequestParamLimit))

	if !withDefaults {
		return
	}

	if q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}
}

func positiveInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 0
	}

	return n
}
