package handlers

import (
	"net/http"

	"github.com/Mialde/Micheldekker/internal/app"
	"github.com/Mialde/Micheldekker/internal/domain/vacancy"
	"github.com/Mialde/Micheldekker/internal/http/response"
	"github.com/Mialde/Micheldekker/internal/mirror"
)

type VacancyHandler struct {
	vacancies *app.VacancyService
	mirror    *mirror.Mirror
}

func NewVacancyHandler(vacancies *app.VacancyService, m *mirror.Mirror) *VacancyHandler {
	return &VacancyHandler{vacancies: vacancies, mirror: m}
}

type vacancyRequest struct {
	Title            string `json:"title"`
	Department       string `json:"department"`
	Location         string `json:"location"`
	Type             string `json:"type"`
	Description      string `json:"description"`
	Responsibilities string `json:"responsibilities"`
	Requirements     string `json:"requirements"`
	Benefits         string `json:"benefits"`
	HeaderImage      string `json:"header_image"`
	Status           string `json:"status"`
}

func (req vacancyRequest) toDomain() vacancy.Vacancy {
	return vacancy.Vacancy{
		Title:            req.Title,
		Department:       vacancy.Department(req.Department),
		Location:         req.Location,
		Type:             req.Type,
		Description:      req.Description,
		Responsibilities: req.Responsibilities,
		Requirements:     req.Requirements,
		Benefits:         req.Benefits,
		HeaderImage:      req.HeaderImage,
		Status:           vacancy.Status(req.Status),
	}
}

// List serves the public listing from the mirror snapshot, newest first,
// narrowed by the q and department query parameters.
func (h *VacancyHandler) List(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	department := vacancy.Department(r.URL.Query().Get("department"))
	items := app.Filter(h.mirror.Vacancies(), term, department)
	response.JSON(w, http.StatusOK, items)
}

func (h *VacancyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.vacancies.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

// AdminList returns every posting regardless of status.
func (h *VacancyHandler) AdminList(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, h.mirror.Vacancies())
}

func (h *VacancyHandler) AdminGet(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.vacancies.GetAny(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

func (h *VacancyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req vacancyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.vacancies.Create(r.Context(), req.toDomain())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *VacancyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req vacancyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	v := req.toDomain()
	v.ID = id
	updated, err := h.vacancies.Update(r.Context(), v)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *VacancyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.vacancies.Delete(r.Context(), id); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusNoContent, nil)
}
