package app

import (
	"context"
	"strings"

	"github.com/Mialde/Micheldekker/internal/common"
	"github.com/Mialde/Micheldekker/internal/domain/role"
)

type RoleService struct {
	repo role.Repository
}

func NewRoleService(repo role.Repository) *RoleService {
	return &RoleService{repo: repo}
}

// SlugID derives the stored id from a display name: lowercased, with each
// whitespace run collapsed to a single underscore. "Shift Lead" becomes
// "shift_lead"; trailing whitespace leaves no trailing underscore.
func SlugID(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "_")
}

// Upsert saves a role under the slug of its name. Two names that slug the
// same way share one document; the later save wins.
func (s *RoleService) Upsert(ctx context.Context, name string, permissions []role.Permission) (*role.Role, error) {
	id := SlugID(name)
	if id == "" {
		return nil, common.NewError(common.CodeValidation, "role name is required", nil)
	}
	if err := validatePermissions(permissions); err != nil {
		return nil, err
	}
	r := role.Role{ID: id, Name: strings.TrimSpace(name), Permissions: permissions}.Materialize()
	if err := s.repo.Upsert(ctx, r); err != nil {
		return nil, err
	}
	return &r, nil
}

// SetPermissions replaces a role's permission set. The super-admin role is
// immutable; its grants are implicit.
func (s *RoleService) SetPermissions(ctx context.Context, id string, permissions []role.Permission) error {
	if id == role.SuperAdminID {
		return common.NewError(common.CodeForbidden, "the super admin role cannot be edited", nil)
	}
	if err := validatePermissions(permissions); err != nil {
		return err
	}
	return s.repo.SetPermissions(ctx, id, permissions)
}

func (s *RoleService) Delete(ctx context.Context, id string) error {
	if id == role.SuperAdminID {
		return common.NewError(common.CodeForbidden, "the super admin role cannot be deleted", nil)
	}
	return s.repo.Delete(ctx, id)
}

func (s *RoleService) List(ctx context.Context) ([]role.Role, error) {
	return s.repo.List(ctx)
}

func validatePermissions(permissions []role.Permission) error {
	for _, p := range permissions {
		known := false
		for _, candidate := range role.AllPermissions() {
			if p == candidate {
				known = true
				break
			}
		}
		if !known {
			return common.NewValidationError("invalid role", map[string]string{"permissions": "unknown permission " + string(p)})
		}
	}
	return nil
}
