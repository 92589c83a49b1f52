package usecase

import (
	"context"

	"cafemap/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitReportInput is a field report as entered by a signed-in user.
type SubmitReportInput struct {
	CafeID       uuid.UUID
	SeatStatus   entity.SeatStatus
	Quietness    entity.Quietness
	Wifi         entity.WifiSpeed
	PowerOutlets bool
	Comment      *string
}

// ReportUsecase covers writing reports and reading a café's history.
type ReportUsecase interface {
	// SubmitReport validates and stores a report on behalf of userID.
	SubmitReport(ctx context.Context, userID uuid.UUID, input *SubmitReportInput) (*entity.Report, error)

	// ListCafeReports returns the newest reports of a café (limit handled as in GetCafeDetail).
	ListCafeReports(ctx context.Context, cafeID uuid.UUID, limit int) ([]*entity.Report, error)
}
