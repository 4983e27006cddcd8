package app

import (
	"context"
	"strings"

	"github.com/Mialde/Micheldekker/internal/common"
	"github.com/Mialde/Micheldekker/internal/domain/user"
)

type UserService struct {
	repo user.Repository
}

func NewUserService(repo user.Repository) *UserService {
	return &UserService{repo: repo}
}

// Upsert saves a staff account under its username. Saving an existing
// username replaces the whole document, password included.
func (s *UserService) Upsert(ctx context.Context, u user.AppUser) error {
	u.Username = strings.TrimSpace(u.Username)
	if u.Username == "" {
		return common.NewError(common.CodeValidation, "username is required", nil)
	}
	if u.Password == "" {
		return common.NewError(common.CodeValidation, "password is required", nil)
	}
	return s.repo.Upsert(ctx, u)
}

// Delete removes a staff account. The bootstrap admin cannot be deleted.
func (s *UserService) Delete(ctx context.Context, username string) error {
	if username == user.BootstrapUsername {
		return common.NewError(common.CodeForbidden, "the bootstrap admin account cannot be deleted", nil)
	}
	return s.repo.Delete(ctx, username)
}

func (s *UserService) List(ctx context.Context) ([]user.AppUser, error) {
	return s.repo.List(ctx)
}
