package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Mialde/Micheldekker/internal/common"
	"github.com/Mialde/Micheldekker/internal/docstore"
	"github.com/Mialde/Micheldekker/internal/domain/role"
	"github.com/Mialde/Micheldekker/internal/domain/user"
	"github.com/Mialde/Micheldekker/internal/domain/vacancy"
	"github.com/Mialde/Micheldekker/internal/integration/identity"
)

// seedMarkerID is a settings-collection document recording that the example
// vacancies were inserted. Seeding is an explicit operation and runs at most
// once per store.
const seedMarkerID = "vacancy_seed"

// BootstrapService prepares a freshly provisioned store: ambient identity,
// the default admin account, the super-admin role, and optional example data.
type BootstrapService struct {
	identity    identity.Client
	customToken string
	store       docstore.Store
	users       user.Repository
	roles       role.Repository
	vacancies   vacancy.Repository
	logger      Logger
}

func NewBootstrapService(idClient identity.Client, customToken string, store docstore.Store, users user.Repository, roles role.Repository, vacancies vacancy.Repository, logger Logger) *BootstrapService {
	return &BootstrapService{
		identity:    idClient,
		customToken: customToken,
		store:       store,
		users:       users,
		roles:       roles,
		vacancies:   vacancies,
		logger:      logger,
	}
}

// SignIn establishes the ambient identity with the auth provider. A configured
// custom token is tried first; without one, or when the token is rejected, the
// service falls back to an anonymous identity. A failed sign-in is logged and
// reported but never prevents the portal from serving public data.
func (s *BootstrapService) SignIn(ctx context.Context) (*identity.Identity, error) {
	if s.customToken != "" {
		id, err := s.identity.SignInWithCustomToken(ctx, s.customToken)
		if err == nil {
			s.logInfo(fmt.Sprintf("signed in with custom token uid=%s", id.UID))
			return id, nil
		}
		s.logError(fmt.Sprintf("custom token sign-in failed, falling back to anonymous: %v", err))
	}
	id, err := s.identity.SignInAnonymously(ctx)
	if err != nil {
		s.logError(fmt.Sprintf("anonymous sign-in failed: %v", err))
		return nil, err
	}
	s.logInfo(fmt.Sprintf("signed in anonymously uid=%s", id.UID))
	return id, nil
}

// EnsureDefaults creates the bootstrap admin account and the super-admin role
// when they are absent. Existing documents are left untouched, so a changed
// admin password survives restarts.
func (s *BootstrapService) EnsureDefaults(ctx context.Context) error {
	if _, err := s.users.GetByID(ctx, user.BootstrapUsername); err != nil {
		if !common.Is(err, common.CodeNotFound) {
			return err
		}
		admin := user.AppUser{
			Username: user.BootstrapUsername,
			Password: user.BootstrapPassword,
			RoleID:   role.SuperAdminID,
		}
		if err := s.users.Upsert(ctx, admin); err != nil {
			return err
		}
		s.logInfo("created bootstrap admin account")
	}
	if _, err := s.roles.GetByID(ctx, role.SuperAdminID); err != nil {
		if !common.Is(err, common.CodeNotFound) {
			return err
		}
		if err := s.roles.Upsert(ctx, role.SuperAdmin()); err != nil {
			return err
		}
		s.logInfo("created super admin role")
	}
	return nil
}

// SeedVacancies inserts the two example postings, but only into a store that
// holds no vacancies and no marker document. The marker makes the operation
// idempotent even after the examples were edited or deleted; pre-existing
// postings make it a no-op so examples never land next to real data. It
// returns the number of postings written.
func (s *BootstrapService) SeedVacancies(ctx context.Context) (int, error) {
	_, err := s.store.Get(ctx, docstore.CollectionSettings, seedMarkerID)
	if err == nil {
		s.logInfo("example vacancies already seeded, skipping")
		return 0, nil
	}
	if !common.Is(err, common.CodeNotFound) {
		return 0, err
	}
	existing, err := s.vacancies.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		s.logInfo("vacancy collection is not empty, skipping example seed")
		return 0, nil
	}
	inserted := 0
	for _, v := range exampleVacancies() {
		if _, err := s.vacancies.Create(ctx, v); err != nil {
			return inserted, err
		}
		inserted++
	}
	marker := docstore.Document{"seeded_at": time.Now().UTC().Format(time.RFC3339)}
	if err := s.store.Set(ctx, docstore.CollectionSettings, seedMarkerID, marker); err != nil {
		return inserted, err
	}
	s.logInfo(fmt.Sprintf("seeded %d example vacancies", inserted))
	return inserted, nil
}

func exampleVacancies() []vacancy.Vacancy {
	return []vacancy.Vacancy{
		{
			Title:            "Production Employee",
			Department:       vacancy.DepartmentProduction,
			Location:         "Zwolle",
			Type:             "Full-time",
			Description:      "As a production employee you keep our lines running and our quality high. You work in a close-knit team with modern machinery.",
			Responsibilities: "Operate and monitor the production line\nPerform quality checks on finished goods\nKeep the workplace clean and safe",
			Requirements:     "Hands-on mentality\nWillingness to work in shifts\nBasic technical insight",
			Benefits:         "Competitive salary\nShift allowance\nTravel cost reimbursement",
			Status:           vacancy.StatusActive,
		},
		{
			Title:            "Facilities Technician",
			Department:       vacancy.DepartmentFacilities,
			Location:         "Zwolle",
			Type:             "Full-time",
			Description:      "You keep our buildings and installations in top condition, from preventive maintenance to quick fixes when something breaks down.",
			Responsibilities: "Plan and execute preventive maintenance\nResolve malfunctions in building installations\nCoordinate external contractors",
			Requirements:     "Completed technical education\nExperience with building installations\nIndependent way of working",
			Benefits:         "Company van\nTraining budget\nPension plan",
			Status:           vacancy.StatusActive,
		},
	}
}

func (s *BootstrapService) logInfo(msg string) {
	if s.logger != nil {
		s.logger.Info(msg)
	}
}

func (s *BootstrapService) logError(msg string) {
	if s.logger != nil {
		s.logger.Error(msg)
	}
}
