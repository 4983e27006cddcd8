package handlers

import (
	"net/http"

	"github.com/Mialde/Micheldekker/internal/app"
	"github.com/Mialde/Micheldekker/internal/domain/settings"
	"github.com/Mialde/Micheldekker/internal/http/response"
)

type SettingsHandler struct {
	settings *app.SettingsService
}

func NewSettingsHandler(s *app.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: s}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	site, err := h.settings.Get(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, site)
}

func (h *SettingsHandler) Save(w http.ResponseWriter, r *http.Request) {
	var site settings.Site
	if err := decodeJSON(r, &site); err != nil {
		response.Error(w, err)
		return
	}
	if err := h.settings.Save(r.Context(), site); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, site)
}
