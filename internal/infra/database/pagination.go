package database

// Pagination is the envelope returned alongside every search page.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

func newPagination(total, page, limit int) *Pagination {
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	return &Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

// normalizePage applies the defaults the admin UI relies on: page 1,
// ten rows per page.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}
