package documents

import (
	"context"

	"github.com/Mialde/Micheldekker/internal/docstore"
	"github.com/Mialde/Micheldekker/internal/domain/user"
)

type UserRepository struct {
	store docstore.Store
}

func NewUserRepository(store docstore.Store) *UserRepository {
	return &UserRepository{store: store}
}

// Upsert writes the account under its username, replacing any existing
// document wholesale.
func (r *UserRepository) Upsert(ctx context.Context, u user.AppUser) error {
	u.ID = u.Username
	doc, err := encode(u)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, docstore.CollectionUsers, u.Username, doc)
}

func (r *UserRepository) Delete(ctx context.Context, username string) error {
	return r.store.Delete(ctx, docstore.CollectionUsers, username)
}

func (r *UserRepository) GetByID(ctx context.Context, username string) (*user.AppUser, error) {
	doc, err := r.store.Get(ctx, docstore.CollectionUsers, username)
	if err != nil {
		return nil, err
	}
	var u user.AppUser
	if err := decode(doc, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]user.AppUser, error) {
	docs, err := r.store.List(ctx, docstore.CollectionUsers)
	if err != nil {
		return nil, err
	}
	items := make([]user.AppUser, 0, len(docs))
	for _, doc := range docs {
		var u user.AppUser
		if err := decode(doc, &u); err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	return items, nil
}
