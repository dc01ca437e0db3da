package pagination

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/JaimeStill/advocates/pkg/query"
)

// Query parameter names read by PageRequestFromQuery and written by PageRequest.Values.
const (
	ParamPage       = "page"
	ParamPageSize   = "pageSize"
	ParamSearchTerm = "searchTerm"
	ParamSort       = "sort"
)

// PageRequest represents a client request for a page of data with optional search and sorting.
type PageRequest struct {
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	SearchTerm string            `json:"searchTerm,omitempty"`
	Sort       []query.SortField `json:"sort,omitempty"`
}

// Normalize adjusts the request to ensure valid pagination values based on the config.
func (r *PageRequest) Normalize(cfg Config) {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PageSize < 1 {
		r.PageSize = cfg.DefaultPageSize
	}
	if r.PageSize > cfg.MaxPageSize {
		r.PageSize = cfg.MaxPageSize
	}
	// Keep (Page-1)*PageSize within int so Offset never wraps.
	if r.PageSize > 0 {
		r.Page = min(r.Page, math.MaxInt/r.PageSize+1)
	}
}

// Offset calculates the number of records to skip based on page and page size.
func (r *PageRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// Values encodes the request as URL query parameters.
// Empty search terms and sort fields are omitted.
func (r PageRequest) Values() url.Values {
	values := url.Values{}
	values.Set(ParamPage, strconv.Itoa(r.Page))
	values.Set(ParamPageSize, strconv.Itoa(r.PageSize))

	if r.SearchTerm != "" {
		values.Set(ParamSearchTerm, r.SearchTerm)
	}

	if len(r.Sort) > 0 {
		parts := make([]string, len(r.Sort))
		for i, f := range r.Sort {
			if f.Descending {
				parts[i] = "-" + f.Field
			} else {
				parts[i] = f.Field
			}
		}
		values.Set(ParamSort, strings.Join(parts, ","))
	}

	return values
}

// PageRequestFromQuery parses pagination parameters from URL query values.
// Supported parameters: page, pageSize, searchTerm, sort.
// Missing or non-numeric page values fall back to the defaults applied by Normalize;
// malformed input is never rejected.
func PageRequestFromQuery(values url.Values, cfg Config) PageRequest {
	page, _ := strconv.Atoi(values.Get(ParamPage))
	pageSize, _ := strconv.Atoi(values.Get(ParamPageSize))

	req := PageRequest{
		Page:       page,
		PageSize:   pageSize,
		SearchTerm: values.Get(ParamSearchTerm),
		Sort:       query.ParseSortFields(values.Get(ParamSort)),
	}

	req.Normalize(cfg)
	return req
}

// PageResult holds a page of data along with pagination metadata.
type PageResult[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// NewPageResult creates a PageResult with calculated total pages.
// An empty result reports zero total pages.
func NewPageResult[T any](data []T, total, page, pageSize int) PageResult[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = total / pageSize
		if total%pageSize != 0 {
			totalPages++
		}
	}

	if data == nil {
		data = []T{}
	}

	return PageResult[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
