package domain

import "context"

// UserStore is the external collaborator that owns user records. A
// miss is (nil, nil); an I/O failure wraps autherror.ErrStoreUnavailable.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
}
