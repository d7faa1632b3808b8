package dto

import (
	"net/http"
	"net/url"
	"seatpos/shared/constant"
	gDto "seatpos/shared/dto"
	"strconv"
	"strings"
)

const (
	requestParamCategory = "category"
	requestParamGroup    = "group"
	requestParamMinPrice = "minPrice"
	requestParamMaxPrice = "maxPrice"
	requestParamRental   = "rental"
)

// SearchProductsRequest mirrors the remote product search. Empty fields are left out.
type SearchProductsRequest struct {
	Keyword  string `json:"keyword"`
	Category string `json:"category"`
	Group    string `json:"group"`
	MinPrice *int64 `json:"minPrice" validate:"omitempty,min=0"`
	MaxPrice *int64 `json:"maxPrice" validate:"omitempty,min=0"`
	Rental   *bool  `json:"rental"`
	gDto.QueryParams
}

func (s *SearchProductsRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	s.Keyword = strings.TrimSpace(query.Get(constant.RequestParamKeyword))
	s.Category = query.Get(requestParamCategory)
	s.Group = query.Get(requestParamGroup)

	if v, err := strconv.ParseInt(query.Get(requestParamMinPrice), 10, 64); err == nil {
		s.MinPrice = &v
	}

	if v, err := strconv.ParseInt(query.Get(requestParamMaxPrice), 10, 64); err == nil {
		s.MaxPrice = &v
	}

	if v, err := strconv.ParseBool(query.Get(requestParamRental)); err == nil {
		s.Rental = &v
	}

	s.QueryParams.FromRequest(r, false)
}

func (s SearchProductsRequest) Values() url.Values {
	values := url.Values{}

	if s.Page > 0 || s.Limit > 0 {
		values = s.QueryParams.Values()
	} else {
		if s.SortBy != "" {
			values.Set(constant.RequestParamSortBy, s.SortBy)
		}

		if s.SortDir != "" {
			values.Set(constant.RequestParamSortDir, s.SortDir)
		}
	}

	if s.Keyword != "" {
		values.Set(constant.RequestParamKeyword, s.Keyword)
	}

	if s.Category != "" {
		values.Set(requestParamCategory, s.Category)
	}

	if s.Group != "" {
		values.Set(requestParamGroup, s.Group)
	}

	if s.MinPrice != nil {
		values.Set(requestParamMinPrice, strconv.FormatInt(*s.MinPrice, 10))
	}

	if s.MaxPrice != nil {
		values.Set(requestParamMaxPrice, strconv.FormatInt(*s.MaxPrice, 10))
	}

	if s.Rental != nil {
		values.Set(requestParamRental, strconv.FormatBool(*s.Rental))
	}

	return values
}
