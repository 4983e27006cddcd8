package handlers

import (
	"net/http"

	"github.com/Mialde/Micheldekker/internal/app"
	"github.com/Mialde/Micheldekker/internal/domain/role"
	"github.com/Mialde/Micheldekker/internal/http/response"
)

type RoleHandler struct {
	roles *app.RoleService
}

func NewRoleHandler(roles *app.RoleService) *RoleHandler {
	return &RoleHandler{roles: roles}
}

type roleRequest struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

type rolePermissionsRequest struct {
	Permissions []string `json:"permissions"`
}

func toPermissions(raw []string) []role.Permission {
	out := make([]role.Permission, 0, len(raw))
	for _, p := range raw {
		out = append(out, role.Permission(p))
	}
	return out
}

func (h *RoleHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.roles.List(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *RoleHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req roleRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.roles.Upsert(r.Context(), req.Name, toPermissions(req.Permissions))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, created)
}

func (h *RoleHandler) SetPermissions(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req rolePermissionsRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := h.roles.SetPermissions(r.Context(), id, toPermissions(req.Permissions)); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusNoContent, nil)
}

func (h *RoleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.roles.Delete(r.Context(), id); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusNoContent, nil)
}
