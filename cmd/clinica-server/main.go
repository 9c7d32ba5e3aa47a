package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/clinsalud/api/internal/config"
	"github.com/clinsalud/api/internal/domain/admin"
	"github.com/clinsalud/api/internal/domain/autenticacion"
	"github.com/clinsalud/api/internal/domain/clinical"
	"github.com/clinsalud/api/internal/domain/identity"
	"github.com/clinsalud/api/internal/domain/pharmacy"
	"github.com/clinsalud/api/internal/domain/scheduling"
	"github.com/clinsalud/api/internal/platform/auth"
	"github.com/clinsalud/api/internal/platform/db"
	"github.com/clinsalud/api/internal/platform/httperr"
	"github.com/clinsalud/api/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinica-server",
		Short: "API de gestión de historias clínicas",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}
	httperr.ExposeStorageDetails = cfg.ExposeDBErrors

	// Database
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Auth plumbing
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)

	// Everything under /api requires a valid token; login and health stay open.
	api := e.Group("/api")
	api.Use(auth.Middleware(issuer))

	// Repositories
	rolRepo := admin.NewRolRepo(pool)
	usuarioRepo := admin.NewUsuarioRepo(pool)
	personaRepo := identity.NewPersonaRepo(pool)
	pacienteRepo := identity.NewPacienteRepo(pool)
	medicamentoRepo := pharmacy.NewMedicamentoRepo(pool)
	inventarioRepo := pharmacy.NewInventarioRepo(pool)
	recetaRepo := pharmacy.NewRecetaRepo(pool)
	agendaRepo := scheduling.NewAgendaRepo(pool)
	citaRepo := scheduling.NewCitaRepo(pool)
	episodioRepo := clinical.NewEpisodioRepo(pool)
	hceRepo := clinical.NewHCERepo(pool)
	datoRepo := clinical.NewDatoAntropometricoRepo(pool)

	runTx := func(ctx context.Context, fn func(ctx context.Context) error) error {
		return db.RunInTx(ctx, pool, fn)
	}

	// Services and handlers
	adminSvc := admin.NewService(rolRepo, usuarioRepo, hasher)
	admin.NewHandler(adminSvc).RegisterRoutes(api)

	authSvc := autenticacion.NewService(usuarioRepo, hasher, issuer)
	autenticacion.NewHandler(authSvc).RegisterRoutes(e)

	identitySvc := identity.NewService(personaRepo, pacienteRepo, runTx)
	identity.NewHandler(identitySvc).RegisterRoutes(api)

	pharmacySvc := pharmacy.NewService(medicamentoRepo, inventarioRepo, recetaRepo)
	pharmacy.NewHandler(pharmacySvc).RegisterRoutes(api)

	schedulingSvc := scheduling.NewService(agendaRepo, citaRepo)
	scheduling.NewHandler(schedulingSvc).RegisterRoutes(api)

	clinicalSvc := clinical.NewService(episodioRepo, hceRepo, datoRepo)
	clinical.NewHandler(clinicalSvc).RegisterRoutes(api)

	// Health checks
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})
	e.GET("/health/db", db.HealthHandler(pool))

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
