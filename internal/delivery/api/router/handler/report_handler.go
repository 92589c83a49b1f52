package handler

import (
	"log/slog"
	"net/http"
	"time"

	"cafemap/internal/delivery/api/middleware"
	"cafemap/internal/delivery/api/response"
	"cafemap/internal/domain/entity"
	domainerrors "cafemap/internal/domain/errors"
	"cafemap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// ReportHandler serves report submission and history.
type ReportHandler struct {
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
	now      func() time.Time
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		reportUC: params.ReportUC,
		logger:   params.Logger,
		now:      time.Now,
	}
}

// SubmitReportRequest represents the request body for submitting a report
type SubmitReportRequest struct {
	CafeID       string  `json:"cafeId" validate:"required,uuid"`
	SeatStatus   string  `json:"seatStatus" validate:"required,oneof=available crowded full"`
	Quietness    string  `json:"quietness" validate:"required,oneof=quiet normal noisy"`
	Wifi         string  `json:"wifi" validate:"required,oneof=fast normal slow none"`
	PowerOutlets *bool   `json:"powerOutlets" validate:"required"`
	Comment      *string `json:"comment" validate:"omitempty,max=50"`
}

// ListReportsRequest is the query string of GET /api/v1/reports.
type ListReportsRequest struct {
	CafeID string `query:"cafeId" validate:"required,uuid"`
	Limit  int    `query:"limit" validate:"omitempty,min=1"`
}

// SubmitReport stores a report for the authenticated user.
func (h *ReportHandler) SubmitReport(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req SubmitReportRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("request body must be a JSON report"))
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	report, err := h.reportUC.SubmitReport(c.Request().Context(), userID, &usecase.SubmitReportInput{
		CafeID:       uuid.MustParse(req.CafeID),
		SeatStatus:   entity.SeatStatus(req.SeatStatus),
		Quietness:    entity.Quietness(req.Quietness),
		Wifi:         entity.WifiSpeed(req.Wifi),
		PowerOutlets: *req.PowerOutlets,
		Comment:      req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newReportView(report, h.now()))
}

// ListReports returns the newest reports of a café.
func (h *ReportHandler) ListReports(c echo.Context) error {
	var req ListReportsRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("limit must be a number"))
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	reports, err := h.reportUC.ListCafeReports(c.Request().Context(), uuid.MustParse(req.CafeID), req.Limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newReportViews(reports, h.now()))
}
