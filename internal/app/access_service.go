package app

import (
	"github.com/Mialde/Micheldekker/internal/domain/role"
	"github.com/Mialde/Micheldekker/internal/session"
)

// RoleMirror is the slice of the data mirror the permission resolver reads.
type RoleMirror interface {
	Roles() []role.Role
}

// AccessService resolves whether a session may perform an admin action. The
// decision is recomputed from the mirrored role list on every call, so a role
// edit takes effect without re-login.
type AccessService struct {
	roles RoleMirror
}

func NewAccessService(roles RoleMirror) *AccessService {
	return &AccessService{roles: roles}
}

// HasPermission reports whether the session's role grants the permission.
// No session, or a role id that matches no known role, denies everything.
func (s *AccessService) HasPermission(sess *session.Session, p role.Permission) bool {
	if sess == nil {
		return false
	}
	for _, r := range s.roles.Roles() {
		if r.ID == sess.User.RoleID {
			return r.Grants(p)
		}
	}
	return false
}
