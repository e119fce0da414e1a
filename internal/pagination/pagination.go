// Package pagination slices ordered result lists into pages.
package pagination

// Page is one page of items plus the totals needed to render navigation.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// Paginate returns the requested 1-based page. Out-of-range pages come back
// with an empty Items slice rather than an error. TotalPages is at least 1.
func Paginate[T any](items []T, page, perPage int) Page[T] {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}

	total := len(items)
	totalPages := total / perPage
	if total%perPage != 0 {
		totalPages++
	}
	if totalPages < 1 {
		totalPages = 1
	}

	p := Page[T]{
		Items:      []T{},
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: totalPages,
	}

	// Checked before multiplying so a huge page cannot overflow the offset.
	if total == 0 || page > totalPages {
		return p
	}
	start := (page - 1) * perPage
	end := total
	if perPage < total-start {
		end = start + perPage
	}
	p.Items = items[start:end:end]
	return p
}

// Clamp normalizes request parameters: page below 1 becomes 1, perPage below
// 1 becomes defaultPerPage, and perPage above maxPerPage is capped.
func Clamp(page, perPage, defaultPerPage, maxPerPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if maxPerPage > 0 && perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}
