package documents

import (
	"context"

	"github.com/Mialde/Micheldekker/internal/docstore"
	"github.com/Mialde/Micheldekker/internal/domain/role"
)

type RoleRepository struct {
	store docstore.Store
}

func NewRoleRepository(store docstore.Store) *RoleRepository {
	return &RoleRepository{store: store}
}

func (r *RoleRepository) Upsert(ctx context.Context, item role.Role) error {
	doc, err := encode(item)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, docstore.CollectionRoles, item.ID, doc)
}

func (r *RoleRepository) SetPermissions(ctx context.Context, id string, permissions []role.Permission) error {
	return r.store.Update(ctx, docstore.CollectionRoles, id, docstore.Document{"permissions": permissions})
}

func (r *RoleRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, docstore.CollectionRoles, id)
}

func (r *RoleRepository) GetByID(ctx context.Context, id string) (*role.Role, error) {
	doc, err := r.store.Get(ctx, docstore.CollectionRoles, id)
	if err != nil {
		return nil, err
	}
	var item role.Role
	if err := decode(doc, &item); err != nil {
		return nil, err
	}
	item = item.Materialize()
	return &item, nil
}

func (r *RoleRepository) List(ctx context.Context) ([]role.Role, error) {
	docs, err := r.store.List(ctx, docstore.CollectionRoles)
	if err != nil {
		return nil, err
	}
	items := make([]role.Role, 0, len(docs))
	for _, doc := range docs {
		var item role.Role
		if err := decode(doc, &item); err != nil {
			return nil, err
		}
		items = append(items, item.Materialize())
	}
	return items, nil
}
