package role

type Permission string

const (
	PermManageVacancies Permission = "manage-vacancies"
	PermManageUsers     Permission = "manage-users"
	PermManageRoles     Permission = "manage-roles"
	PermManageSettings  Permission = "manage-settings"
)

func AllPermissions() []Permission {
	return []Permission{PermManageVacancies, PermManageUsers, PermManageRoles, PermManageSettings}
}

// SuperAdminID identifies the bootstrap role that implicitly grants every
// permission. It cannot be deleted and its permission set cannot be edited.
const SuperAdminID = "super_admin"

// Kind tags a materialized role so the super-admin short-circuit is a typed
// fact rather than an id comparison scattered through callers. It is derived
// on load and never stored.
type Kind string

const (
	KindStandard   Kind = "standard"
	KindSuperAdmin Kind = "super_admin"
)

type Role struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Permissions []Permission `json:"permissions"`
	Kind        Kind         `json:"-"`
}

// Materialize derives the Kind from the identity. Repositories and fixtures
// call it whenever a Role is built from a stored document.
func (r Role) Materialize() Role {
	if r.ID == SuperAdminID {
		r.Kind = KindSuperAdmin
	} else {
		r.Kind = KindStandard
	}
	return r
}

// Grants reports whether the role carries the permission. The super-admin
// kind grants everything unconditionally.
func (r Role) Grants(p Permission) bool {
	if r.Kind == KindSuperAdmin {
		return true
	}
	for _, granted := range r.Permissions {
		if granted == p {
			return true
		}
	}
	return false
}

// SuperAdmin returns the bootstrap role record.
func SuperAdmin() Role {
	return Role{ID: SuperAdminID, Name: "Super Admin", Permissions: AllPermissions()}.Materialize()
}
