package dto

import (
	"net/http"
	"net/url"
	"seatpos/shared/constant"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "asc"
	SortDirDesc = "desc"
)

// QueryParams is the paging block the remote service accepts on paged lists.
type QueryParams struct {
	Page    int    `json:"page"    validate:"omitempty,min=0"`
	Limit   int    `json:"limit"   validate:"omitempty,min=1"`
	SortBy  string `json:"sortBy"  validate:"omitempty"`
	SortDir string `json:"sortDir" validate:"omitempty,oneof=asc desc"`
}

// FromRequest populates QueryParams from the HTTP request.
// With defaultRequest set, missing values take the remote service's defaults
// (page 0, limit 30, sorted by createdAt descending).
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt >= 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if sortDir := strings.ToLower(queryParams.Get(constant.RequestParamSortDir)); sortDir == SortDirAsc || sortDir == SortDirDesc {
		q.SortDir = sortDir
	}

	if defaultRequest {
		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}

		if q.SortBy == "" {
			q.SortBy = constant.DefaultValueSortBy
		}

		if q.SortDir == "" {
			q.SortDir = constant.DefaultValueSortDir
		}
	}
}

// Values encodes the non-empty fields as query parameters.
func (q QueryParams) Values() url.Values {
	values := url.Values{}
	values.Set(constant.RequestParamPage, strconv.Itoa(q.Page))

	if q.Limit > 0 {
		values.Set(constant.RequestParamLimit, strconv.Itoa(q.Limit))
	}

	if q.SortBy != "" {
		values.Set(constant.RequestParamSortBy, q.SortBy)
	}

	if q.SortDir != "" {
		values.Set(constant.RequestParamSortDir, q.SortDir)
	}

	return values
}
