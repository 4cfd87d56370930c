package services

// PagedResult is one page of a filtered collection.
type PagedResult[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// Paginate slices a contiguous window out of items. The requested page is
// clamped into [1, totalPages], so out-of-range requests return the nearest
// valid page instead of erroring. Deterministic for a fixed input.
func Paginate[T any](items []T, page, pageSize int) PagedResult[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return PagedResult[T]{
		Items:      items[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// CursorResult is one batch of an incrementally loaded collection.
type CursorResult[T any] struct {
	Items      []T  `json:"items"`
	Total      int  `json:"total"`
	NextCursor *int `json:"next_cursor"`
	HasMore    bool `json:"has_more"`
}

// CursorBatch slices [cursor, cursor+batchSize) out of items. The cursor is
// a plain zero-based offset, only meaningful against a stable underlying
// ordering: if the collection changes size between calls, resuming from an
// old cursor can skip or duplicate items. That staleness is an accepted
// property of the contract, not something this function compensates for.
func CursorBatch[T any](items []T, cursor, batchSize int) CursorResult[T] {
	if batchSize < 1 {
		batchSize = 1
	}
	if cursor < 0 {
		cursor = 0
	}
	total := len(items)
	start := cursor
	if start > total {
		start = total
	}
	end := start + batchSize
	if end > total {
		end = total
	}
	res := CursorResult[T]{Items: items[start:end], Total: total}
	if next := cursor + batchSize; next < total {
		res.NextCursor = &next
		res.HasMore = true
	}
	return res
}
