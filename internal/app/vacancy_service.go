package app

import (
	"context"
	"strings"

	"github.com/Mialde/Micheldekker/internal/common"
	"github.com/Mialde/Micheldekker/internal/domain/vacancy"
)

type VacancyService struct {
	repo vacancy.Repository
}

func NewVacancyService(repo vacancy.Repository) *VacancyService {
	return &VacancyService{repo: repo}
}

func (s *VacancyService) Create(ctx context.Context, v vacancy.Vacancy) (*vacancy.Vacancy, error) {
	if strings.TrimSpace(v.Title) == "" {
		return nil, common.NewError(common.CodeValidation, "title is required", nil)
	}
	if v.Status == "" {
		v.Status = vacancy.StatusDraft
	}
	if err := validateVacancy(v); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, v)
}

func (s *VacancyService) Update(ctx context.Context, v vacancy.Vacancy) (*vacancy.Vacancy, error) {
	current, err := s.repo.GetByID(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(v.Title) == "" {
		return nil, common.NewError(common.CodeValidation, "title is required", nil)
	}
	if v.Status == "" {
		v.Status = current.Status
	}
	if err := validateVacancy(v); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, v)
}

func (s *VacancyService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Get returns a posting for the public detail view. Drafts and inactive
// postings are indistinguishable from missing ones.
func (s *VacancyService) Get(ctx context.Context, id string) (*vacancy.Vacancy, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !v.Visible() {
		return nil, common.NewError(common.CodeNotFound, "vacancy not found", nil)
	}
	return v, nil
}

// GetAny returns a posting regardless of status, for the admin editor.
func (s *VacancyService) GetAny(ctx context.Context, id string) (*vacancy.Vacancy, error) {
	return s.repo.GetByID(ctx, id)
}

// Filter narrows a snapshot to the postings the public listing shows: active
// only, matching the department unless the sentinel "all" is given, and
// matching the search term case-insensitively against the title. The term is
// taken as typed; whitespace is part of the search. Input order is preserved.
func Filter(items []vacancy.Vacancy, term string, department vacancy.Department) []vacancy.Vacancy {
	needle := strings.ToLower(term)
	out := make([]vacancy.Vacancy, 0, len(items))
	for _, v := range items {
		if !v.Visible() {
			continue
		}
		if department != "" && department != vacancy.DepartmentAll && v.Department != department {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(v.Title), needle) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func validateVacancy(v vacancy.Vacancy) error {
	switch v.Status {
	case vacancy.StatusActive, vacancy.StatusDraft, vacancy.StatusInactive:
	default:
		return common.NewValidationError("invalid vacancy", map[string]string{"status": "must be active, draft or inactive"})
	}
	if v.Department == "" || v.Department == vacancy.DepartmentAll {
		return common.NewValidationError("invalid vacancy", map[string]string{"department": "must be a real department"})
	}
	for _, d := range vacancy.Departments() {
		if v.Department == d {
			return nil
		}
	}
	return common.NewValidationError("invalid vacancy", map[string]string{"department": "unknown department"})
}
