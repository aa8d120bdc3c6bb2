package vsapi

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryParams represents the query parameters supported by listing
// endpoints.
type QueryParams struct {
	Page    int
	PerPage int
	OrderBy string
	// Names filters a listing to the given identifying keys.
	Names []string
	// Filters holds additional resource-specific filters, e.g. "node" or
	// "group".
	Filters map[string][]string
}

// NewQueryParams creates empty query parameters.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// WithPage sets the page number.
func (q *QueryParams) WithPage(page int) *QueryParams {
	q.Page = page

	return q
}

// WithPerPage sets the page size.
func (q *QueryParams) WithPerPage(perPage int) *QueryParams {
	q.PerPage = perPage

	return q
}

// WithOrderBy sets the ordering field; prefix with "-" for descending.
func (q *QueryParams) WithOrderBy(field string) *QueryParams {
	q.OrderBy = field

	return q
}

// WithNames filters the listing to the given keys.
func (q *QueryParams) WithNames(names ...string) *QueryParams {
	q.Names = append(q.Names, names...)

	return q
}

// WithFilter adds a resource-specific filter value.
func (q *QueryParams) WithFilter(key string, values ...string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[key] = append(q.Filters[key], values...)

	return q
}

// ToValues converts the parameters to url.Values.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}

	if q.PerPage > 0 {
		values.Set("per_page", strconv.Itoa(q.PerPage))
	}

	if q.OrderBy != "" {
		values.Set("order_by", q.OrderBy)
	}

	if len(q.Names) > 0 {
		values.Set("names", strings.Join(q.Names, ","))
	}

	for key, vals := range q.Filters {
		values.Set(key, strings.Join(vals, ","))
	}

	return values
}
