package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Mialde/Micheldekker/internal/common"
)

func TestLocalAnonymousSignIn(t *testing.T) {
	client := NewClient("", nil)

	var seen []*Identity
	client.OnIdentityChanged(func(id *Identity) {
		seen = append(seen, id)
	})

	id, err := client.SignInAnonymously(context.Background())
	if err != nil {
		t.Fatalf("sign in failed: %v", err)
	}
	if !id.Anonymous || !strings.HasPrefix(id.UID, "anon-") {
		t.Fatalf("expected a local anonymous identity, got %+v", id)
	}
	if len(seen) != 1 || seen[0].UID != id.UID {
		t.Fatalf("expected one identity-changed callback, got %v", seen)
	}
}

func TestCustomTokenRequiresProvider(t *testing.T) {
	client := NewClient("", nil)

	if _, err := client.SignInWithCustomToken(context.Background(), "token"); !common.Is(err, common.CodeInternal) {
		t.Fatalf("expected an error without a provider, got %v", err)
	}
	if _, err := client.SignInWithCustomToken(context.Background(), "  "); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected a validation error for a blank token, got %v", err)
	}
}

func TestProviderSignIn(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Token string `json:"token"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		switch r.URL.Path {
		case "/v1/sessions":
			if req.Token != "good-token" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"uid": "staff-1", "anonymous": false})
		case "/v1/sessions/anonymous":
			_ = json.NewEncoder(w).Encode(map[string]any{"uid": "guest-1"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	var seen []*Identity
	client.OnIdentityChanged(func(id *Identity) {
		seen = append(seen, id)
	})

	id, err := client.SignInWithCustomToken(context.Background(), "good-token")
	if err != nil {
		t.Fatalf("custom token sign-in failed: %v", err)
	}
	if id.UID != "staff-1" || id.Anonymous {
		t.Fatalf("unexpected identity %+v", id)
	}

	if _, err := client.SignInWithCustomToken(context.Background(), "bad-token"); !common.Is(err, common.CodeUnauthorized) {
		t.Fatalf("expected unauthorized for a rejected token, got %v", err)
	}

	anon, err := client.SignInAnonymously(context.Background())
	if err != nil {
		t.Fatalf("anonymous sign-in failed: %v", err)
	}
	if anon.UID != "guest-1" || !anon.Anonymous {
		t.Fatalf("unexpected identity %+v", anon)
	}

	if len(seen) != 2 {
		t.Fatalf("expected callbacks for the two successful sign-ins only, got %d", len(seen))
	}
}
