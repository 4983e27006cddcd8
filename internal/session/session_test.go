package session

import (
	"testing"

	"github.com/Mialde/Micheldekker/internal/domain/user"
)

func TestManagerCreateAndGet(t *testing.T) {
	m := NewManager()

	sess, err := m.Create(user.AppUser{Username: "jan"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(sess.Token) != 64 {
		t.Fatalf("expected a 32-byte hex token, got %q", sess.Token)
	}
	if sess.StartedAt.IsZero() {
		t.Fatal("expected a start time")
	}

	got, ok := m.Get(sess.Token)
	if !ok || got.User.Username != "jan" {
		t.Fatalf("expected to resolve the session, got %v %v", got, ok)
	}
}

func TestManagerTokensAreUnique(t *testing.T) {
	m := NewManager()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		sess, err := m.Create(user.AppUser{Username: "jan"})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if seen[sess.Token] {
			t.Fatal("duplicate token")
		}
		seen[sess.Token] = true
	}
}

func TestManagerRemove(t *testing.T) {
	m := NewManager()
	sess, err := m.Create(user.AppUser{Username: "jan"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	removed, ok := m.Remove(sess.Token)
	if !ok || removed.Token != sess.Token {
		t.Fatal("expected the session back on removal")
	}
	if _, ok := m.Get(sess.Token); ok {
		t.Fatal("expected the session to be gone")
	}
	if _, ok := m.Remove(sess.Token); ok {
		t.Fatal("expected a second removal to miss")
	}
}

func TestViewStateNavigation(t *testing.T) {
	v := NewViewState()

	if view, id := v.Current(); view != ViewListing || id != "" {
		t.Fatalf("expected the listing as start view, got %q %q", view, id)
	}

	v.ShowDetail("vac-1")
	if view, id := v.Current(); view != ViewDetail || id != "vac-1" {
		t.Fatalf("expected detail view, got %q %q", view, id)
	}

	// Leaving the detail view clears the selection.
	v.Show(ViewLogin)
	if view, id := v.Current(); view != ViewLogin || id != "" {
		t.Fatalf("expected login view without selection, got %q %q", view, id)
	}
}

func TestViewStateTabs(t *testing.T) {
	v := NewViewState()
	if v.ActiveTab() != TabVacancies {
		t.Fatalf("expected vacancies as start tab, got %q", v.ActiveTab())
	}
	v.SelectTab(TabRoles)
	if v.ActiveTab() != TabRoles {
		t.Fatalf("expected roles tab, got %q", v.ActiveTab())
	}
	v.SelectTab("bogus")
	if v.ActiveTab() != TabRoles {
		t.Fatal("expected invalid tabs to be ignored")
	}
}
