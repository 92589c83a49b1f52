// Package persistence selects the storage backend named in the config.
package persistence

import (
	"log/slog"

	"cafemap/config"
	"cafemap/internal/domain/repository"
	"cafemap/internal/errors"
	"cafemap/internal/infra/persistence/memory"
	"cafemap/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params holds dependencies for NewRepositories, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is every store interface the usecases depend on.
type Repositories struct {
	fx.Out

	Cafes        repository.CafeRepository
	Reports      repository.ReportRepository
	Users        repository.UserRepository
	Transactions repository.TransactionManager
}

// NewRepositories opens the configured backend. The postgres pool is only
// created when that driver is selected.
func NewRepositories(params Params) (Repositories, error) {
	switch driver := params.Config.Storage.Driver; driver {
	case config.StorageDriverMemory:
		params.Logger.Warn("Using in-memory storage, data is lost on restart")
		store := memory.New()

		return Repositories{
			Cafes:        store,
			Reports:      store,
			Users:        store,
			Transactions: store,
		}, nil
	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Cafes:        postgres.NewCafeRepository(db),
			Reports:      postgres.NewReportRepository(db),
			Users:        postgres.NewUserRepository(db),
			Transactions: postgres.NewTransactionManager(db),
		}, nil
	default:
		return Repositories{}, errors.Errorf("unknown storage driver %q", driver)
	}
}
