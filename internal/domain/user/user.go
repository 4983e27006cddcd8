package user

// BootstrapUsername is the account seeded at startup. It can never be
// deleted through the admin surface.
const (
	BootstrapUsername = "admin"
	BootstrapPassword = "admin2024"
)

// AppUser is a staff account. The username doubles as the document id, so
// saving an existing username replaces the whole account, password included.
// Passwords are stored and compared in clear text (see DESIGN.md).
type AppUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	RoleID   string `json:"role_id"`
}

func (u AppUser) IsBootstrap() bool {
	return u.Username == BootstrapUsername
}
