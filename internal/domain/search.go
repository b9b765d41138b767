package domain

// Pagination
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}

// Response standardizes paged API responses.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// Paginate returns the page of items and its metadata. page and limit
// must already be at least 1.
func Paginate[T any](items []T, page, limit int) ([]T, Pagination) {
	total := len(items)
	meta := Pagination{
		Page:       page,
		Limit:      limit,
		TotalItems: int64(total),
		TotalPages: (total + limit - 1) / limit,
	}

	start := (page - 1) * limit
	if start >= total {
		return []T{}, meta
	}
	end := min(start+limit, total)
	return items[start:end], meta
}
