package app

import (
	"context"
	"testing"

	"github.com/Mialde/Micheldekker/internal/common"
	"github.com/Mialde/Micheldekker/internal/docstore"
	"github.com/Mialde/Micheldekker/internal/domain/user"
	"github.com/Mialde/Micheldekker/internal/repository/documents"
)

func userFixture() (*UserService, user.Repository) {
	repo := documents.NewUserRepository(docstore.NewMemory())
	return NewUserService(repo), repo
}

func TestUpsertUserReplacesExistingAccount(t *testing.T) {
	svc, repo := userFixture()
	ctx := context.Background()

	if err := svc.Upsert(ctx, user.AppUser{Username: "jan", Password: "first", RoleID: "editor"}); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if err := svc.Upsert(ctx, user.AppUser{Username: "jan", Password: "second", RoleID: "viewer"}); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	stored, err := repo.GetByID(ctx, "jan")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.Password != "second" || stored.RoleID != "viewer" {
		t.Fatalf("expected the whole account to be replaced, got %+v", stored)
	}
	items, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one account, got %d", len(items))
	}
}

func TestUpsertUserValidation(t *testing.T) {
	svc, _ := userFixture()
	ctx := context.Background()

	if err := svc.Upsert(ctx, user.AppUser{Username: "  ", Password: "pw"}); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error for blank username, got %v", err)
	}
	if err := svc.Upsert(ctx, user.AppUser{Username: "jan"}); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error for missing password, got %v", err)
	}
}

func TestBootstrapAdminCannotBeDeleted(t *testing.T) {
	svc, repo := userFixture()
	ctx := context.Background()

	if err := repo.Upsert(ctx, user.AppUser{Username: user.BootstrapUsername, Password: user.BootstrapPassword}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if err := svc.Delete(ctx, user.BootstrapUsername); !common.Is(err, common.CodeForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if _, err := repo.GetByID(ctx, user.BootstrapUsername); err != nil {
		t.Fatalf("expected the account to survive, got %v", err)
	}
}

func TestDeleteOtherUsers(t *testing.T) {
	svc, repo := userFixture()
	ctx := context.Background()

	if err := svc.Upsert(ctx, user.AppUser{Username: "jan", Password: "pw"}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if err := svc.Delete(ctx, "jan"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.GetByID(ctx, "jan"); !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected the account to be gone, got %v", err)
	}
}
