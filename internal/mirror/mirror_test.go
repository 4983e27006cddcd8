package mirror

import (
	"context"
	"testing"
	"time"

	"github.com/Mialde/Micheldekker/internal/docstore"
	"github.com/Mialde/Micheldekker/internal/domain/role"
	"github.com/Mialde/Micheldekker/internal/domain/settings"
	"github.com/Mialde/Micheldekker/internal/domain/user"
	"github.com/Mialde/Micheldekker/internal/domain/vacancy"
	"github.com/Mialde/Micheldekker/internal/repository/documents"
)

func newTestMirror(t *testing.T) (*Mirror, *docstore.Memory, vacancy.Repository, user.Repository, role.Repository, settings.Repository) {
	t.Helper()
	store := docstore.NewMemory()
	vacancies := documents.NewVacancyRepository(store)
	users := documents.NewUserRepository(store)
	roles := documents.NewRoleRepository(store)
	siteSettings := documents.NewSettingsRepository(store)
	m := New(store, vacancies, users, roles, siteSettings, nil)
	return m, store, vacancies, users, roles, siteSettings
}

func TestMirrorReflectsWrites(t *testing.T) {
	m, _, vacancies, users, _, _ := newTestMirror(t)
	ctx := context.Background()

	if err := m.Start(ctx); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	defer m.Close()

	if _, err := vacancies.Create(ctx, vacancy.Vacancy{Title: "Operator", Department: vacancy.DepartmentProduction, Status: vacancy.StatusActive}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := users.Upsert(ctx, user.AppUser{Username: "jan", Password: "pw"}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	if got := m.Vacancies(); len(got) != 1 || got[0].Title != "Operator" {
		t.Fatalf("expected the new vacancy in the snapshot, got %v", got)
	}
	if got := m.Users(); len(got) != 1 || got[0].Username != "jan" {
		t.Fatalf("expected the new user in the snapshot, got %v", got)
	}
}

func TestMirrorStartsWithDefaultSettings(t *testing.T) {
	m, _, _, _, _, _ := newTestMirror(t)
	if err := m.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	defer m.Close()

	want := settings.Default()
	if got := m.Settings(); got != want {
		t.Fatalf("expected default settings, got %+v", got)
	}
}

func TestMirrorSettingsUpdate(t *testing.T) {
	m, _, _, _, _, siteSettings := newTestMirror(t)
	ctx := context.Background()
	if err := m.Start(ctx); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	defer m.Close()

	saved := settings.Site{HeroImage: "https://example.com/h.jpg", ShowHeroOverlay: false}
	if err := siteSettings.Save(ctx, saved); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if got := m.Settings(); got != saved {
		t.Fatalf("expected updated settings, got %+v", got)
	}
}

func TestMirrorNotifiesListeners(t *testing.T) {
	m, _, _, _, roles, _ := newTestMirror(t)
	ctx := context.Background()
	if err := m.Start(ctx); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	defer m.Close()

	changed := make([]string, 0, 1)
	unsubscribe := m.Subscribe(func(collection string) {
		changed = append(changed, collection)
	})

	if err := roles.Upsert(ctx, role.SuperAdmin()); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if len(changed) != 1 || changed[0] != docstore.CollectionRoles {
		t.Fatalf("expected one roles notification, got %v", changed)
	}

	unsubscribe()
	if err := roles.Delete(ctx, role.SuperAdminID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(changed) != 1 {
		t.Fatalf("expected no notification after unsubscribe, got %v", changed)
	}
}

func TestSortVacanciesNewestFirst(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	items := []vacancy.Vacancy{
		{ID: "old", CreatedAt: base.Add(-48 * time.Hour)},
		{ID: "undated"},
		{ID: "new", CreatedAt: base},
		{ID: "mid", CreatedAt: base.Add(-24 * time.Hour)},
	}
	SortVacancies(items)

	want := []string{"new", "mid", "old", "undated"}
	for i, id := range want {
		if items[i].ID != id {
			t.Fatalf("position %d: expected %q, got %q", i, id, items[i].ID)
		}
	}
}

func TestSortVacanciesIsStableForEqualTimes(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	items := []vacancy.Vacancy{
		{ID: "a", CreatedAt: ts},
		{ID: "b", CreatedAt: ts},
		{ID: "c", CreatedAt: ts},
	}
	SortVacancies(items)
	for i, id := range []string{"a", "b", "c"} {
		if items[i].ID != id {
			t.Fatalf("expected stable order, got %v", items)
		}
	}
}
