package repository

import (
	"context"

	"cafemap/internal/domain/entity"

	"github.com/google/uuid"
)

// ReportRepository is the append-only report store.
type ReportRepository interface {
	// CreateReport persists a new report. The store assigns ID, CreatedAt and
	// UpdatedAt and writes them back into report. An unknown café or user
	// surfaces as domainerrors.ErrReferenceInvalid.
	CreateReport(ctx context.Context, report *entity.Report) error

	// FindLatestByCafe returns up to limit reports for the café, newest first,
	// each with Author populated. No reports yields an empty slice.
	FindLatestByCafe(ctx context.Context, cafeID uuid.UUID, limit int) ([]*entity.Report, error)

	// FindLatestPerCafe returns, in one round trip, the newest report of every
	// requested café. Cafés without reports are absent from the map.
	// Ties on CreatedAt are broken by the larger report id.
	FindLatestPerCafe(ctx context.Context, cafeIDs []uuid.UUID) (map[uuid.UUID]*entity.Report, error)
}
