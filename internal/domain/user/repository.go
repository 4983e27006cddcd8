package user

import "context"

type Repository interface {
	// Upsert stores the account under its username: create-or-replace.
	Upsert(ctx context.Context, u AppUser) error
	Delete(ctx context.Context, username string) error
	GetByID(ctx context.Context, username string) (*AppUser, error)
	List(ctx context.Context) ([]AppUser, error)
}
