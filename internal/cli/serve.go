package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Mialde/Micheldekker/internal/app"
	"github.com/Mialde/Micheldekker/internal/config"
	"github.com/Mialde/Micheldekker/internal/database"
	"github.com/Mialde/Micheldekker/internal/docstore"
	apphttp "github.com/Mialde/Micheldekker/internal/http"
	"github.com/Mialde/Micheldekker/internal/http/handlers"
	"github.com/Mialde/Micheldekker/internal/http/metrics"
	httpmw "github.com/Mialde/Micheldekker/internal/http/middleware"
	"github.com/Mialde/Micheldekker/internal/http/response"
	"github.com/Mialde/Micheldekker/internal/integration/identity"
	"github.com/Mialde/Micheldekker/internal/mirror"
	"github.com/Mialde/Micheldekker/internal/observability"
	"github.com/Mialde/Micheldekker/internal/repository/documents"
	"github.com/Mialde/Micheldekker/internal/session"
	"github.com/Mialde/Micheldekker/internal/ws"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the portal API server",
	Run: func(cmd *cobra.Command, args []string) {
		runServe()
	},
}

func runServe() {
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
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatalf("failed to prepare document store: %v", err)
	}

	vacancyRepo := documents.NewVacancyRepository(store)
	userRepo := documents.NewUserRepository(store)
	roleRepo := documents.NewRoleRepository(store)
	settingsRepo := documents.NewSettingsRepository(store)

	idClient := identity.NewClient(cfg.AuthBaseURL, &http.Client{Timeout: 5 * time.Second})
	idClient.OnIdentityChanged(func(id *identity.Identity) {
		logger.Info(fmt.Sprintf("ambient identity changed uid=%s anonymous=%t", id.UID, id.Anonymous))
	})
	bootstrap := app.NewBootstrapService(idClient, cfg.AuthCustomToken, store, userRepo, roleRepo, vacancyRepo, logger)
	if _, err := bootstrap.SignIn(ctx); err != nil {
		logger.Error("starting without an ambient identity: " + err.Error())
	}
	if err := bootstrap.EnsureDefaults(ctx); err != nil {
		log.Fatalf("failed to ensure default documents: %v", err)
	}

	dataMirror := mirror.New(store, vacancyRepo, userRepo, roleRepo, settingsRepo, logger)
	if err := dataMirror.Start(ctx); err != nil {
		log.Fatalf("failed to start data mirror: %v", err)
	}
	defer dataMirror.Close()

	hub := ws.NewHub()
	go hub.Run()
	defer hub.Stop()
	unsubscribe := dataMirror.Subscribe(func(collection string) {
		payload, err := json.Marshal(map[string]string{"collection": collection})
		if err != nil {
			return
		}
		hub.Broadcast(payload)
	})
	defer unsubscribe()

	sessions := session.NewManager()
	authService := app.NewAuthService(dataMirror, sessions, logger)
	accessService := app.NewAccessService(dataMirror)
	vacancyService := app.NewVacancyService(vacancyRepo)
	userService := app.NewUserService(userRepo)
	roleService := app.NewRoleService(roleRepo)
	settingsService := app.NewSettingsService(settingsRepo)

	collector := metrics.NewCollector()
	response.SetErrorCollector(collector)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		AuthHandler:       handlers.NewAuthHandler(authService),
		VacancyHandler:    handlers.NewVacancyHandler(vacancyService, dataMirror),
		UserHandler:       handlers.NewUserHandler(userService),
		RoleHandler:       handlers.NewRoleHandler(roleService),
		SettingsHandler:   handlers.NewSettingsHandler(settingsService),
		MetricsHandler:    metrics.NewHandler(collector),
		SessionMiddleware: httpmw.NewSessionMiddleware(authService),
		Access:            accessService,
		Hub:               hub,
		Metrics:           collector,
		RequestTimeout:    cfg.RequestTimeout,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}
