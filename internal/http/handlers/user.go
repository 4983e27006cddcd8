package handlers

import (
	"net/http"

	"github.com/Mialde/Micheldekker/internal/app"
	"github.com/Mialde/Micheldekker/internal/domain/user"
	"github.com/Mialde/Micheldekker/internal/http/response"
)

type UserHandler struct {
	users *app.UserService
}

func NewUserHandler(users *app.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type userRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	RoleID   string `json:"role_id"`
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.users.List(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *UserHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	err := h.users.Upsert(r.Context(), user.AppUser{
		Username: req.Username,
		Password: req.Password,
		RoleID:   req.RoleID,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"username": req.Username})
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	username, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.users.Delete(r.Context(), username); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusNoContent, nil)
}
