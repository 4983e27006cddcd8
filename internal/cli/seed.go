package cli

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/Mialde/Micheldekker/internal/app"
	"github.com/Mialde/Micheldekker/internal/config"
	"github.com/Mialde/Micheldekker/internal/database"
	"github.com/Mialde/Micheldekker/internal/docstore"
	"github.com/Mialde/Micheldekker/internal/integration/identity"
	"github.com/Mialde/Micheldekker/internal/observability"
	"github.com/Mialde/Micheldekker/internal/repository/documents"
)

// seedCmd inserts the default admin account, the super-admin role and the
// example vacancies. Each part is idempotent, so the command is safe to run
// against a store that was seeded before.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert default accounts, roles and example vacancies",
	Run: func(cmd *cobra.Command, args []string) {
		runSeed()
	},
}

func runSeed() {
	cfg := config.Load()
	cfg.RequireDatabase()
	logger := observability.NewLogger()

	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()

	redisClient := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword)
	if redisClient != nil {
		defer redisClient.Close()
	}
	store := docstore.NewPostgres(db, redisClient, cfg.AppID, cfg.PostgresDSN)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatalf("failed to prepare document store: %v", err)
	}

	vacancyRepo := documents.NewVacancyRepository(store)
	userRepo := documents.NewUserRepository(store)
	roleRepo := documents.NewRoleRepository(store)

	idClient := identity.NewClient(cfg.AuthBaseURL, &http.Client{Timeout: 5 * time.Second})
	bootstrap := app.NewBootstrapService(idClient, cfg.AuthCustomToken, store, userRepo, roleRepo, vacancyRepo, logger)

	if err := bootstrap.EnsureDefaults(ctx); err != nil {
		log.Fatalf("failed to ensure default documents: %v", err)
	}
	inserted, err := bootstrap.SeedVacancies(ctx)
	if err != nil {
		log.Fatalf("failed to seed vacancies: %v", err)
	}
	fmt.Printf("seed complete, %d example vacancies inserted\n", inserted)
}
