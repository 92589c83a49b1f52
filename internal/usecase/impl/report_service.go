package impl

import (
	"context"
	"log/slog"
	"strings"

	"cafemap/config"
	"cafemap/internal/domain/entity"
	domainerrors "cafemap/internal/domain/errors"
	"cafemap/internal/domain/repository"
	"cafemap/internal/errors"
	"cafemap/internal/usecase"

	"github.com/google/uuid"
)

type reportService struct {
	cafeRepo   repository.CafeRepository
	reportRepo repository.ReportRepository
	reportsCfg *config.ReportsConfig
	logger     *slog.Logger
}

// NewReportService creates the report submission and history service.
func NewReportService(
	cafeRepo repository.CafeRepository,
	reportRepo repository.ReportRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ReportUsecase {
	return &reportService{
		cafeRepo:   cafeRepo,
		reportRepo: reportRepo,
		reportsCfg: cfg.Reports,
		logger:     logger,
	}
}

// SubmitReport stores a report for an existing café. Nothing is retried.
func (srv *reportService) SubmitReport(ctx context.Context, userID uuid.UUID, input *usecase.SubmitReportInput) (*entity.Report, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	if err := validateSubmitReportInput(input); err != nil {
		return nil, err
	}

	if _, err := srv.cafeRepo.FindCafeByID(ctx, input.CafeID); err != nil {
		if errors.Is(err, repository.ErrCafeNotFound) {
			return nil, domainerrors.ErrCafeNotFound
		}

		return nil, errors.Wrap(err, "failed to find cafe")
	}

	report := &entity.Report{
		CafeID:       input.CafeID,
		UserID:       userID,
		SeatStatus:   input.SeatStatus,
		Quietness:    input.Quietness,
		Wifi:         input.Wifi,
		PowerOutlets: input.PowerOutlets,
		Comment:      normalizeComment(input.Comment),
	}
	if err := srv.reportRepo.CreateReport(ctx, report); err != nil {
		return nil, errors.Wrap(err, "failed to create report")
	}

	srv.logger.LogAttrs(ctx, slog.LevelInfo, "Report submitted",
		slog.String("reportID", report.ID.String()),
		slog.String("cafeID", report.CafeID.String()),
		slog.String("userID", userID.String()),
	)

	return report, nil
}

// ListCafeReports returns a café's newest reports. An unknown café simply has none.
func (srv *reportService) ListCafeReports(ctx context.Context, cafeID uuid.UUID, limit int) ([]*entity.Report, error) {
	reports, err := srv.reportRepo.FindLatestByCafe(ctx, cafeID, srv.reportsCfg.Clamp(limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cafe reports")
	}

	return reports, nil
}

func validateSubmitReportInput(input *usecase.SubmitReportInput) error {
	switch {
	case input == nil:
		return domainerrors.ErrValidationFailed.WithDetails("report is required")
	case input.CafeID == uuid.Nil:
		return domainerrors.ErrValidationFailed.WithDetails("cafeId is required")
	case !input.SeatStatus.IsValid():
		return domainerrors.ErrValidationFailed.WithDetails("invalid seatStatus: " + input.SeatStatus.String())
	case !input.Quietness.IsValid():
		return domainerrors.ErrValidationFailed.WithDetails("invalid quietness: " + input.Quietness.String())
	case !input.Wifi.IsValid():
		return domainerrors.ErrValidationFailed.WithDetails("invalid wifi: " + input.Wifi.String())
	case entity.CommentLength(input.Comment) > entity.CommentMaxLength:
		return domainerrors.ErrValidationFailed.WithDetails("comment must be at most 50 characters")
	}

	return nil
}

// normalizeComment drops comments that are empty after trimming.
func normalizeComment(comment *string) *string {
	if comment == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*comment)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
