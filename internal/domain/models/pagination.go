package models

// PaginationQuery carries the list-endpoint paging parameters.
type PaginationQuery struct {
	Page    int `form:"page" json:"page"`
	PerPage int `form:"per_page" json:"per_page"`
}

// Normalize applies the documented defaults (page 1, 10 items per page) and
// caps per_page to keep result sets bounded.
func (q *PaginationQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 || q.PerPage > 100 {
		q.PerPage = 10
	}
}

// Offset is the SQL offset for the normalized query.
func (q PaginationQuery) Offset() int {
	return (q.Page - 1) * q.PerPage
}

// TotalPages computes how many pages a result set spans.
func TotalPages(total int64, perPage int) int64 {
	if perPage < 1 {
		return 0
	}
	return (total + int64(perPage) - 1) / int64(perPage)
}

// RemainingPages computes how many pages follow the current one. Never
// negative, even when the requested page runs past the end.
func RemainingPages(total int64, page, perPage int) int64 {
	remaining := TotalPages(total, perPage) - int64(page)
	if remaining < 0 {
		return 0
	}
	return remaining
}
