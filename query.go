package plainai

import (
	"net/url"
	"strconv"
)

// ListQuery holds the cursor pagination parameters shared by every list
// operation: limit, order, after, before. Unset parameters never appear in
// the query string.
type ListQuery struct {
	values url.Values
}

// NewListQuery returns an empty pagination query.
func NewListQuery() *ListQuery {
	return &ListQuery{values: url.Values{}}
}

// Limit caps the number of objects returned.
func (q *ListQuery) Limit(n int) *ListQuery {
	q.values.Set("limit", strconv.Itoa(n))
	return q
}

// Order sorts by creation timestamp, "asc" or "desc".
func (q *ListQuery) Order(order string) *ListQuery {
	q.values.Set("order", order)
	return q
}

// After sets the cursor for the next page.
func (q *ListQuery) After(id string) *ListQuery {
	q.values.Set("after", id)
	return q
}

// Before sets the cursor for the previous page.
func (q *ListQuery) Before(id string) *ListQuery {
	q.values.Set("before", id)
	return q
}

// encode renders the query string with a leading "?", or "" when no
// parameter was set. A nil query encodes to "".
func (q *ListQuery) encode() string {
	if q == nil || len(q.values) == 0 {
		return ""
	}
	return "?" + q.values.Encode()
}
