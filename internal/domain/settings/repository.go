package settings

import "context"

type Repository interface {
	// Get returns the stored settings, or a not-found error when the
	// singleton document has never been written.
	Get(ctx context.Context) (*Site, error)
	// Save replaces the singleton document.
	Save(ctx context.Context, s Site) error
}
