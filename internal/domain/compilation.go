package domain

import "context"

// Compilation is a curated, optionally pinned, list of events.
type Compilation struct {
	ID       int64
	Title    string
	Pinned   bool
	EventIDs []int64
	Events   []*Event
}

// NewCompilationInput carries a new compilation.
type NewCompilationInput struct {
	Title    string
	Pinned   bool
	EventIDs []int64
}

// CompilationPatch is a partial update. Nil fields keep the stored value.
type CompilationPatch struct {
	Title    *string
	Pinned   *bool
	EventIDs []int64

	// SetEvents distinguishes an explicit empty event list from an absent one.
	SetEvents bool
}

// CompilationRepository defines the interface for compilation storage.
type CompilationRepository interface {
	Create(ctx context.Context, c *Compilation) error
	Update(ctx context.Context, c *Compilation) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Compilation, error)
	List(ctx context.Context, pinned *bool, page PaginationParams) ([]*Compilation, error)
}

// CompilationService defines compilation use cases.
type CompilationService interface {
	Create(ctx context.Context, in NewCompilationInput) (*Compilation, error)
	Update(ctx context.Context, id int64, patch CompilationPatch) (*Compilation, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Compilation, error)
	List(ctx context.Context, pinned *bool, page PaginationParams) ([]*Compilation, error)
}
