package domain

// PaginationParams holds from/size pagination parameters for list queries.
type PaginationParams struct {
	From int
	Size int
}

// Offset returns the row offset (never negative).
func (p PaginationParams) Offset() int {
	if p.From < 0 {
		return 0
	}
	return p.From
}

// Limit returns the page size (never negative).
func (p PaginationParams) Limit() int {
	if p.Size < 0 {
		return 0
	}
	return p.Size
}
