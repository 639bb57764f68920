package domain

import "context"

// User represents a registered user.
// swagger:model User
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserShort is the public projection of a user embedded in events and comments.
// swagger:model UserShort
type UserShort struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Short returns the public projection of u.
func (u *User) Short() UserShort {
	return UserShort{ID: u.ID, Name: u.Name}
}

// UserRepository defines the interface for user storage.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*User, error)
	// List returns users with the given ids, or all users when ids is empty.
	List(ctx context.Context, ids []int64, page PaginationParams) ([]*User, error)
}

// UserService defines user administration use cases.
type UserService interface {
	Create(ctx context.Context, name, email string) (*User, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, ids []int64, page PaginationParams) ([]*User, error)
}
