package pagination

// OffsetResult represents an offset-paginated page of results plus the
// metadata the dashboard needs to render page controls.
// Count is the length of the returned page, not the total match count.
// Generic type T allows reuse across different entity types.
type OffsetResult[T any] struct {
	Data        []T   `json:"data"`
	Count       int   `json:"count"`
	Total       int64 `json:"total"`
	HasNextPage bool  `json:"hasNextPage"`
	LastPage    int64 `json:"lastPage"`
}

// NewOffsetResult creates a new offset-based result.
// HasNextPage is total > page*limit; LastPage is ceil(total/limit),
// which is 0 for an empty result set.
func NewOffsetResult[T any](items []T, total int64, page int, limit int) *OffsetResult[T] {
	if items == nil {
		items = []T{}
	}
	return &OffsetResult[T]{
		Data:        items,
		Count:       len(items),
		Total:       total,
		HasNextPage: total > int64(page)*int64(limit),
		LastPage:    (total + int64(limit) - 1) / int64(limit),
	}
}
