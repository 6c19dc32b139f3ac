package main

import (
	"context"
	"embed"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/CELO-Colombia-invierte/invierte-api/internal/api"
	"github.com/CELO-Colombia-invierte/invierte-api/internal/auth"
	"github.com/CELO-Colombia-invierte/invierte-api/internal/backend"
	"github.com/CELO-Colombia-invierte/invierte-api/internal/catalog"
	"github.com/CELO-Colombia-invierte/invierte-api/internal/config"
	"github.com/CELO-Colombia-invierte/invierte-api/internal/database"
	"github.com/CELO-Colombia-invierte/invierte-api/internal/storage"
	"github.com/CELO-Colombia-invierte/invierte-api/internal/worker"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.up.sql
var migrationsFS embed.FS

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using existing environment")
	}

	app := &cli.App{
		Name:  "invierte",
		Usage: "wallet-facing bridge for the Colombia Invierte platform",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API, migrations and the catalog worker",
				Action: runServe,
			},
			{
				Name:   "refresh",
				Usage:  "fetch the public catalog once, store a snapshot and exit",
				Action: runRefresh,
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runServe(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	pool, err := setupDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	platform := backend.NewClient(cfg.PlatformAPIURL, cfg.PlatformRetryMax, cfg.PlatformRetryBaseDelay)

	catalogSvc := catalog.NewService(platform, catalog.NewPgRepository(pool))
	catalogWorker := worker.NewRefreshWorker("catalog", catalogSvc, cfg.CatalogRefreshInterval)
	go catalogWorker.Run(ctx)

	onboarding := storage.NewNamespace(storage.NewPgStore(pool), "onboarding")

	if cfg.WalletJWTSecret == "" {
		slog.Warn("WALLET_JWT_SECRET not set, all authenticated requests will be rejected")
	}
	verifier := auth.NewVerifier(cfg.WalletJWTSecret, cfg.WalletJWTIssuer)

	handler := api.NewHandler(platform, catalogSvc, onboarding)
	srv := api.NewServer(cfg.HTTPPort, handler, verifier)

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Shutdown complete")
	return nil
}

func runRefresh(c *cli.Context) error {
	cfg := config.Load()

	pool, err := setupDatabase(c.Context, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	platform := backend.NewClient(cfg.PlatformAPIURL, cfg.PlatformRetryMax, cfg.PlatformRetryBaseDelay)
	catalogSvc := catalog.NewService(platform, catalog.NewPgRepository(pool))

	return catalogSvc.Refresh(c.Context)
}

func setupDatabase(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	if cfg.DatabaseURL == "" {
		return nil, cli.Exit("DATABASE_URL is required", 1)
	}

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, cli.Exit("Failed to connect to database: "+err.Error(), 1)
	}

	migrationsSub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		pool.Close()
		return nil, cli.Exit("Failed to create migrations sub-fs: "+err.Error(), 1)
	}
	if err := database.RunMigrations(ctx, pool, migrationsSub); err != nil {
		pool.Close()
		return nil, cli.Exit("Failed to run migrations: "+err.Error(), 1)
	}

	return pool, nil
}
