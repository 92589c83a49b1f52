package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"cafemap/internal/delivery/api/response"
	deliverycontext "cafemap/internal/delivery/context"
	"cafemap/internal/domain/entity"
	domainerrors "cafemap/internal/domain/errors"
	"cafemap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CafeHandlerParams holds dependencies for CafeHandler, injected by Fx.
type CafeHandlerParams struct {
	fx.In

	CafeUC usecase.CafeUsecase
	Logger *slog.Logger
}

// CafeHandler serves the map's café endpoints.
type CafeHandler struct {
	cafeUC usecase.CafeUsecase
	logger *slog.Logger
	now    func() time.Time
}

// NewCafeHandler is the constructor for CafeHandler
func NewCafeHandler(params CafeHandlerParams) *CafeHandler {
	return &CafeHandler{
		cafeUC: params.CafeUC,
		logger: params.Logger,
		now:    time.Now,
	}
}

// ViewportRequest is the query string of GET /api/v1/cafes. A zero bound is
// treated as missing.
type ViewportRequest struct {
	NeLat   float64 `query:"neLat" validate:"required,min=-90,max=90"`
	NeLng   float64 `query:"neLng" validate:"required,min=-180,max=180"`
	SwLat   float64 `query:"swLat" validate:"required,min=-90,max=90"`
	SwLng   float64 `query:"swLng" validate:"required,min=-180,max=180"`
	Filters string  `query:"filters"`
}

func (r *ViewportRequest) bounds() entity.Bounds {
	return entity.Bounds{
		NorthEast: entity.Coordinate{Lat: r.NeLat, Lng: r.NeLng},
		SouthWest: entity.Coordinate{Lat: r.SwLat, Lng: r.SwLng},
	}
}

// CafeDetailRequest is GET /api/v1/cafes/:id.
type CafeDetailRequest struct {
	ID    string `param:"id" validate:"required,uuid"`
	Limit int    `query:"limit" validate:"omitempty,min=1"`
}

// QueryCafes returns the cafés inside the viewport with their latest report.
func (h *CafeHandler) QueryCafes(c echo.Context) error {
	var req ViewportRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidBounds.WithDetails("bounds must be numbers"))
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	results, err := h.cafeUC.QueryInBounds(ctx, req.bounds(), h.parseFilter(ctx, req.Filters))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	now := h.now()
	views := make([]*CafeMarkerView, 0, len(results))
	for _, result := range results {
		views = append(views, newCafeMarkerView(result, now))
	}

	return response.Success(c, http.StatusOK, views)
}

// GetCafe returns one café with its newest reports.
func (h *CafeHandler) GetCafe(c echo.Context) error {
	var req CafeDetailRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("limit must be a number"))
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	detail, err := h.cafeUC.GetCafeDetail(c.Request().Context(), uuid.MustParse(req.ID), req.Limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCafeDetailView(detail, h.now()))
}

// parseFilter decodes the filters JSON object. A malformed value means no
// filter at all.
func (h *CafeHandler) parseFilter(ctx context.Context, raw string) *entity.ViewportFilter {
	if raw == "" {
		return nil
	}

	var filter entity.ViewportFilter
	if err := json.Unmarshal([]byte(raw), &filter); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).LogAttrs(ctx, slog.LevelDebug, "Ignoring malformed filters",
			slog.String("filters", raw),
			slog.Any("error", err),
		)

		return nil
	}

	return &filter
}
