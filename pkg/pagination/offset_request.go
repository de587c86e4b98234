package pagination

// OffsetRequest represents an offset-based pagination request
type OffsetRequest struct {
	Page  int `json:"page" query:"page" validate:"min=1"`
	Limit int `json:"limit" query:"limit" validate:"min=1,max=100"`
}

// Normalize fills in defaults and clamps out-of-range values
func (r *OffsetRequest) Normalize() {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Limit <= 0 {
		r.Limit = PageDefaultLimit
	}
	if r.Limit > PageMaxLimit {
		r.Limit = PageMaxLimit
	}
}

// Offset is the number of rows skipped before the requested page
func (r *OffsetRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}
