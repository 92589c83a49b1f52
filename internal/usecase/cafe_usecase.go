package usecase

import (
	"context"

	"cafemap/internal/domain/entity"

	"github.com/google/uuid"
)

// CafeUsecase answers the map's read paths.
type CafeUsecase interface {
	// QueryInBounds returns the cafés inside the viewport, each paired with its
	// latest report and narrowed by the filter. Results are ordered by latest
	// report recency (newest first), cafés without reports last, ties by café id.
	QueryInBounds(ctx context.Context, bounds entity.Bounds, filter *entity.ViewportFilter) ([]*entity.CafeWithLatest, error)

	// GetCafeDetail returns the café and its newest reports. A non-positive
	// limit selects the configured default; larger limits are capped.
	GetCafeDetail(ctx context.Context, cafeID uuid.UUID, limit int) (*entity.CafeDetail, error)
}
