package app

import (
	"context"
	"testing"

	"github.com/Mialde/Micheldekker/internal/docstore"
	"github.com/Mialde/Micheldekker/internal/domain/role"
	"github.com/Mialde/Micheldekker/internal/domain/user"
	"github.com/Mialde/Micheldekker/internal/domain/vacancy"
	"github.com/Mialde/Micheldekker/internal/integration/identity"
	"github.com/Mialde/Micheldekker/internal/repository/documents"
)

func bootstrapFixture() (*BootstrapService, *docstore.Memory, vacancy.Repository, user.Repository, role.Repository) {
	store := docstore.NewMemory()
	vacancies := documents.NewVacancyRepository(store)
	users := documents.NewUserRepository(store)
	roles := documents.NewRoleRepository(store)
	svc := NewBootstrapService(identity.NewClient("", nil), "", store, users, roles, vacancies, nil)
	return svc, store, vacancies, users, roles
}

func TestSignInFallsBackToAnonymous(t *testing.T) {
	svc, _, _, _, _ := bootstrapFixture()

	id, err := svc.SignIn(context.Background())
	if err != nil {
		t.Fatalf("sign in failed: %v", err)
	}
	if !id.Anonymous {
		t.Fatal("expected an anonymous identity without a custom token")
	}
	if id.UID == "" {
		t.Fatal("expected a uid")
	}
}

func TestEnsureDefaultsCreatesAdminAndSuperAdmin(t *testing.T) {
	svc, _, _, users, roles := bootstrapFixture()
	ctx := context.Background()

	if err := svc.EnsureDefaults(ctx); err != nil {
		t.Fatalf("ensure defaults failed: %v", err)
	}

	admin, err := users.GetByID(ctx, user.BootstrapUsername)
	if err != nil {
		t.Fatalf("expected admin account, got %v", err)
	}
	if admin.Password != user.BootstrapPassword || admin.RoleID != role.SuperAdminID {
		t.Fatalf("unexpected admin account %+v", admin)
	}
	r, err := roles.GetByID(ctx, role.SuperAdminID)
	if err != nil {
		t.Fatalf("expected super admin role, got %v", err)
	}
	if r.Kind != role.KindSuperAdmin {
		t.Fatalf("expected super admin kind, got %q", r.Kind)
	}
}

func TestEnsureDefaultsLeavesEditedAdminAlone(t *testing.T) {
	svc, _, _, users, _ := bootstrapFixture()
	ctx := context.Background()

	if err := svc.EnsureDefaults(ctx); err != nil {
		t.Fatalf("ensure defaults failed: %v", err)
	}
	if err := users.Upsert(ctx, user.AppUser{Username: user.BootstrapUsername, Password: "rotated", RoleID: role.SuperAdminID}); err != nil {
		t.Fatalf("rotate failed: %v", err)
	}
	if err := svc.EnsureDefaults(ctx); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	admin, err := users.GetByID(ctx, user.BootstrapUsername)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if admin.Password != "rotated" {
		t.Fatal("expected the rotated password to survive a second bootstrap")
	}
}

func TestSeedVacanciesRunsOnce(t *testing.T) {
	svc, _, vacancies, _, _ := bootstrapFixture()
	ctx := context.Background()

	inserted, err := svc.SeedVacancies(ctx)
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if inserted != 2 {
		t.Fatalf("expected 2 postings, got %d", inserted)
	}
	items, err := vacancies.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 stored postings, got %d", len(items))
	}
	for _, v := range items {
		if !v.Visible() {
			t.Fatalf("expected seeded postings to be active, got %q", v.Status)
		}
	}

	again, err := svc.SeedVacancies(ctx)
	if err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	if again != 0 {
		t.Fatalf("expected the marker to block a second run, got %d", again)
	}
}

func TestSeedSkipsNonEmptyCollection(t *testing.T) {
	svc, _, vacancies, _, _ := bootstrapFixture()
	ctx := context.Background()

	if _, err := vacancies.Create(ctx, vacancy.Vacancy{Title: "Real Posting", Department: vacancy.DepartmentOffice, Status: vacancy.StatusActive}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	inserted, err := svc.SeedVacancies(ctx)
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if inserted != 0 {
		t.Fatalf("expected a no-op next to real data, got %d inserted", inserted)
	}
	items, err := vacancies.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Real Posting" {
		t.Fatalf("expected only the real posting to remain, got %d items", len(items))
	}
}

func TestSeedMarkerSurvivesDeletedExamples(t *testing.T) {
	svc, _, vacancies, _, _ := bootstrapFixture()
	ctx := context.Background()

	if _, err := svc.SeedVacancies(ctx); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	items, err := vacancies.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, v := range items {
		if err := vacancies.Delete(ctx, v.ID); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
	}

	inserted, err := svc.SeedVacancies(ctx)
	if err != nil {
		t.Fatalf("reseed failed: %v", err)
	}
	if inserted != 0 {
		t.Fatal("expected an emptied store to stay empty once seeded")
	}
}
