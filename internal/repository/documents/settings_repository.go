package documents

import (
	"context"

	"github.com/Mialde/Micheldekker/internal/docstore"
	"github.com/Mialde/Micheldekker/internal/domain/settings"
)

type SettingsRepository struct {
	store docstore.Store
}

func NewSettingsRepository(store docstore.Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

func (r *SettingsRepository) Get(ctx context.Context) (*settings.Site, error) {
	doc, err := r.store.Get(ctx, docstore.CollectionSettings, settings.DocumentID)
	if err != nil {
		return nil, err
	}
	var site settings.Site
	if err := decode(doc, &site); err != nil {
		return nil, err
	}
	return &site, nil
}

func (r *SettingsRepository) Save(ctx context.Context, s settings.Site) error {
	doc, err := encode(s)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, docstore.CollectionSettings, settings.DocumentID, doc)
}
