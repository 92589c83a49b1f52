// Command seed loads the Tokyo-station cafés into the configured store. With
// -demo it also adds the Shibuya cafés, a demo user with a few reports and
// prints an access token for that user.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"cafemap/config"
	"cafemap/internal/domain/lifecycle"
	"cafemap/internal/domain/repository"
	"cafemap/internal/domain/service"
	"cafemap/internal/infra/auth"
	logs "cafemap/internal/infra/log"
	"cafemap/internal/infra/persistence"
	"cafemap/internal/infra/persistence/seed"

	"go.uber.org/fx"
)

func main() {
	configDir := flag.String("config", "config", "directory holding config.yaml")
	demo := flag.Bool("demo", false, "also seed the Shibuya cafés, a demo user and reports")
	migrate := flag.Bool("migrate", false, "create or update the schema before seeding")
	tokenTTL := flag.Duration("token-ttl", 24*time.Hour, "lifetime of the printed demo token")
	flag.Parse()

	var (
		logger   *slog.Logger
		tm       repository.TransactionManager
		tokenSvc service.TokenService
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			func() (*config.Config, error) {
				cfg, err := config.Load(*configDir)
				if err != nil {
					return nil, err
				}
				if *migrate {
					cfg.Storage.AutoMigrate = true
				}

				return cfg, nil
			},
			logs.New,
			persistence.NewRepositories,
			auth.NewJWTService,
		),
		fx.Populate(&logger, &tm, &tokenSvc),
	)
	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}

	startCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		logger.Error("Failed to start", slog.Any("error", err))
		os.Exit(1)
	}

	code := run(logger, tm, tokenSvc, *demo, *tokenTTL)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		logger.Warn("Failed to stop cleanly", slog.Any("error", err))
	}

	os.Exit(code)
}

func run(logger *slog.Logger, tm repository.TransactionManager, tokenSvc service.TokenService, demo bool, ttl time.Duration) int {
	result, err := seed.Run(context.Background(), tm, demo)
	if err != nil {
		logger.Error("Seeding failed", slog.Any("error", err))

		return 1
	}

	logger.Info("Seeded cafés",
		slog.Int("cafes", len(result.Cafes)),
		slog.Int("reports", len(result.Reports)),
	)
	if result.User == nil {
		return 0
	}

	token, err := tokenSvc.GenerateAccessToken(result.User.ID, ttl)
	if err != nil {
		logger.Error("Failed to issue demo token", slog.Any("error", err))

		return 1
	}
	fmt.Println(token)

	return 0
}
