package app

import (
	"context"

	"github.com/Mialde/Micheldekker/internal/common"
	"github.com/Mialde/Micheldekker/internal/domain/settings"
)

type SettingsService struct {
	repo settings.Repository
}

func NewSettingsService(repo settings.Repository) *SettingsService {
	return &SettingsService{repo: repo}
}

// Get returns the stored site settings, or the defaults when none were ever
// saved.
func (s *SettingsService) Get(ctx context.Context) (settings.Site, error) {
	site, err := s.repo.Get(ctx)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return settings.Default(), nil
		}
		return settings.Site{}, err
	}
	return *site, nil
}

func (s *SettingsService) Save(ctx context.Context, site settings.Site) error {
	return s.repo.Save(ctx, site)
}
