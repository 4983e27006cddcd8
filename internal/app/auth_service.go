package app

import (
	"fmt"

	"github.com/Mialde/Micheldekker/internal/common"
	"github.com/Mialde/Micheldekker/internal/domain/user"
	"github.com/Mialde/Micheldekker/internal/session"
)

// UserMirror is the slice of the data mirror the credential gate reads.
type UserMirror interface {
	Users() []user.AppUser
}

// AuthService checks submitted credentials against the mirrored user list and
// hands out staff sessions. Credentials are compared in clear text and every
// failure yields the same message, matching the portal's original behavior.
type AuthService struct {
	users    UserMirror
	sessions *session.Manager
	logger   Logger
}

func NewAuthService(users UserMirror, sessions *session.Manager, logger Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, logger: logger}
}

func (s *AuthService) Login(username, password string) (*session.Session, error) {
	for _, u := range s.users.Users() {
		if u.Username == username && u.Password == password {
			sess, err := s.sessions.Create(u)
			if err != nil {
				return nil, err
			}
			sess.View.Show(session.ViewAdmin)
			if s.logger != nil {
				s.logger.Info(fmt.Sprintf("user logged in username=%s", username))
			}
			return sess, nil
		}
	}
	return nil, common.NewError(common.CodeUnauthorized, "incorrect username or password", nil)
}

// Logout drops the session and returns its view to the public listing. An
// unknown token is not an error.
func (s *AuthService) Logout(token string) {
	sess, ok := s.sessions.Remove(token)
	if !ok {
		return
	}
	sess.View.Show(session.ViewListing)
	if s.logger != nil {
		s.logger.Info(fmt.Sprintf("user logged out username=%s", sess.User.Username))
	}
}

// Authenticate resolves a token to its live session.
func (s *AuthService) Authenticate(token string) (*session.Session, bool) {
	return s.sessions.Get(token)
}
