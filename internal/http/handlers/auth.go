package handlers

import (
	"net/http"

	"github.com/Mialde/Micheldekker/internal/app"
	"github.com/Mialde/Micheldekker/internal/common"
	"github.com/Mialde/Micheldekker/internal/http/response"
)

type AuthHandler struct {
	auth *app.AuthService
}

func NewAuthHandler(auth *app.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	RoleID   string `json:"role_id"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if req.Username == "" || req.Password == "" {
		response.Error(w, common.NewError(common.CodeValidation, "username and password are required", nil))
		return
	}
	sess, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, loginResponse{
		Token:    sess.Token,
		Username: sess.User.Username,
		RoleID:   sess.User.RoleID,
	})
}

// Logout always succeeds; an unknown token simply has no session to drop.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token, ok := bearerToken(r); ok {
		h.auth.Logout(token)
	}
	response.JSON(w, http.StatusNoContent, nil)
}
