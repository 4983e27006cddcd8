package documents

import (
	"context"
	"time"

	"github.com/Mialde/Micheldekker/internal/docstore"
	"github.com/Mialde/Micheldekker/internal/domain/vacancy"
)

type VacancyRepository struct {
	store docstore.Store
}

func NewVacancyRepository(store docstore.Store) *VacancyRepository {
	return &VacancyRepository{store: store}
}

func (r *VacancyRepository) Create(ctx context.Context, v vacancy.Vacancy) (*vacancy.Vacancy, error) {
	now := time.Now().UTC()
	v.CreatedAt = now
	v.UpdatedAt = now
	doc, err := encode(v)
	if err != nil {
		return nil, err
	}
	id, err := r.store.Add(ctx, docstore.CollectionVacancies, doc)
	if err != nil {
		return nil, err
	}
	v.ID = id
	return &v, nil
}

// Update merges the editable fields into the stored document; the original
// creation time is left untouched.
func (r *VacancyRepository) Update(ctx context.Context, v vacancy.Vacancy) (*vacancy.Vacancy, error) {
	v.UpdatedAt = time.Now().UTC()
	patch, err := encode(v)
	if err != nil {
		return nil, err
	}
	delete(patch, "created_at")
	if err := r.store.Update(ctx, docstore.CollectionVacancies, v.ID, patch); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VacancyRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, docstore.CollectionVacancies, id)
}

func (r *VacancyRepository) GetByID(ctx context.Context, id string) (*vacancy.Vacancy, error) {
	doc, err := r.store.Get(ctx, docstore.CollectionVacancies, id)
	if err != nil {
		return nil, err
	}
	var v vacancy.Vacancy
	if err := decode(doc, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VacancyRepository) List(ctx context.Context) ([]vacancy.Vacancy, error) {
	docs, err := r.store.List(ctx, docstore.CollectionVacancies)
	if err != nil {
		return nil, err
	}
	items := make([]vacancy.Vacancy, 0, len(docs))
	for _, doc := range docs {
		var v vacancy.Vacancy
		if err := decode(doc, &v); err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}
