package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"cafemap/config"
	"cafemap/internal/domain/entity"
	domainerrors "cafemap/internal/domain/errors"
	"cafemap/internal/domain/repository"
	"cafemap/internal/errors"
	"cafemap/internal/usecase"

	"github.com/google/uuid"
)

type cafeService struct {
	cafeRepo   repository.CafeRepository
	reportRepo repository.ReportRepository
	reportsCfg *config.ReportsConfig
	logger     *slog.Logger
}

// NewCafeService creates the viewport query engine.
func NewCafeService(
	cafeRepo repository.CafeRepository,
	reportRepo repository.ReportRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CafeUsecase {
	return &cafeService{
		cafeRepo:   cafeRepo,
		reportRepo: reportRepo,
		reportsCfg: cfg.Reports,
		logger:     logger,
	}
}

// QueryInBounds selects the viewport, joins each café with its latest report
// in one batch and applies the filter to that report only.
func (srv *cafeService) QueryInBounds(ctx context.Context, bounds entity.Bounds, filter *entity.ViewportFilter) ([]*entity.CafeWithLatest, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}

	cafes, err := srv.cafeRepo.FindCafesInBounds(ctx, bounds)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cafes in bounds")
	}
	if len(cafes) == 0 {
		return []*entity.CafeWithLatest{}, nil
	}

	cafeIDs := make([]uuid.UUID, 0, len(cafes))
	for _, cafe := range cafes {
		cafeIDs = append(cafeIDs, cafe.ID)
	}

	latest, err := srv.reportRepo.FindLatestPerCafe(ctx, cafeIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find latest reports")
	}

	results := make([]*entity.CafeWithLatest, 0, len(cafes))
	for _, cafe := range cafes {
		report := latest[cafe.ID]
		if !filter.Matches(report) {
			continue
		}
		results = append(results, &entity.CafeWithLatest{Cafe: cafe, LatestReport: report})
	}
	slices.SortFunc(results, compareByRecency)

	srv.logger.LogAttrs(ctx, slog.LevelDebug, "Viewport queried",
		slog.Int("inBounds", len(cafes)),
		slog.Int("matched", len(results)),
		slog.Bool("filtered", filter.Active()),
	)

	return results, nil
}

// compareByRecency orders newest latest report first, cafés without a report
// last, and falls back to the café id.
func compareByRecency(a, b *entity.CafeWithLatest) int {
	switch {
	case a.LatestReport != nil && b.LatestReport != nil:
		if c := b.LatestReport.CreatedAt.Compare(a.LatestReport.CreatedAt); c != 0 {
			return c
		}
	case a.LatestReport != nil:
		return -1
	case b.LatestReport != nil:
		return 1
	}

	return cmp.Compare(a.Cafe.ID.String(), b.Cafe.ID.String())
}

// GetCafeDetail returns the café with its newest reports.
func (srv *cafeService) GetCafeDetail(ctx context.Context, cafeID uuid.UUID, limit int) (*entity.CafeDetail, error) {
	cafe, err := srv.cafeRepo.FindCafeByID(ctx, cafeID)
	if err != nil {
		if errors.Is(err, repository.ErrCafeNotFound) {
			return nil, domainerrors.ErrCafeNotFound
		}

		return nil, errors.Wrap(err, "failed to find cafe")
	}

	reports, err := srv.reportRepo.FindLatestByCafe(ctx, cafeID, srv.reportsCfg.Clamp(limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cafe reports")
	}

	return &entity.CafeDetail{Cafe: cafe, Reports: reports}, nil
}
