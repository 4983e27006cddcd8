package vacancy

import "context"

type Repository interface {
	Create(ctx context.Context, v Vacancy) (*Vacancy, error)
	Update(ctx context.Context, v Vacancy) (*Vacancy, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Vacancy, error)
	List(ctx context.Context) ([]Vacancy, error)
}
