package role

import "context"

type Repository interface {
	// Upsert stores the role under its id: create-or-replace.
	Upsert(ctx context.Context, r Role) error
	// SetPermissions merges a new permission set into an existing role.
	SetPermissions(ctx context.Context, id string, permissions []Permission) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Role, error)
	List(ctx context.Context) ([]Role, error)
}
