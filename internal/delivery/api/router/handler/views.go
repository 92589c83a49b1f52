package handler

import (
	"time"

	"cafemap/internal/domain/entity"
	"cafemap/internal/domain/freshness"

	"github.com/google/uuid"
)

// CafeView is a café as rendered on the map.
type CafeView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	PlaceID   *string   `json:"placeId"`
}

// ReportView is a report as rendered in lists and popups.
type ReportView struct {
	ID           uuid.UUID           `json:"id"`
	CafeID       uuid.UUID           `json:"cafeId"`
	UserID       uuid.UUID           `json:"userId"`
	SeatStatus   entity.SeatStatus   `json:"seatStatus"`
	Quietness    entity.Quietness    `json:"quietness"`
	Wifi         entity.WifiSpeed    `json:"wifi"`
	PowerOutlets bool                `json:"powerOutlets"`
	Comment      *string             `json:"comment"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
	User         *entity.UserProfile `json:"user,omitempty"`
	Freshness    freshness.Info      `json:"freshness"`
}

// CafeMarkerView is one viewport result: the café, its latest report (or
// null) and the freshness of that report.
type CafeMarkerView struct {
	CafeView
	LatestReport *ReportView    `json:"latestReport"`
	Freshness    freshness.Info `json:"freshness"`
}

// CafeDetailView is the café page.
type CafeDetailView struct {
	CafeView
	Reports   []*ReportView  `json:"reports"`
	Freshness freshness.Info `json:"freshness"`
}

func newCafeView(c *entity.Cafe) CafeView {
	return CafeView{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		Latitude:  c.Latitude.InexactFloat64(),
		Longitude: c.Longitude.InexactFloat64(),
		PlaceID:   c.PlaceID,
	}
}

func newReportView(r *entity.Report, now time.Time) *ReportView {
	if r == nil {
		return nil
	}

	return &ReportView{
		ID:           r.ID,
		CafeID:       r.CafeID,
		UserID:       r.UserID,
		SeatStatus:   r.SeatStatus,
		Quietness:    r.Quietness,
		Wifi:         r.Wifi,
		PowerOutlets: r.PowerOutlets,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
		User:         r.Author,
		Freshness:    freshness.Describe(&r.CreatedAt, now),
	}
}

func newReportViews(reports []*entity.Report, now time.Time) []*ReportView {
	views := make([]*ReportView, 0, len(reports))
	for _, r := range reports {
		views = append(views, newReportView(r, now))
	}

	return views
}

func newCafeMarkerView(result *entity.CafeWithLatest, now time.Time) *CafeMarkerView {
	view := &CafeMarkerView{
		CafeView:     newCafeView(result.Cafe),
		LatestReport: newReportView(result.LatestReport, now),
	}
	if result.LatestReport != nil {
		view.Freshness = freshness.Describe(&result.LatestReport.CreatedAt, now)
	} else {
		view.Freshness = freshness.Describe(nil, now)
	}

	return view
}

func newCafeDetailView(detail *entity.CafeDetail, now time.Time) *CafeDetailView {
	view := &CafeDetailView{
		CafeView: newCafeView(detail.Cafe),
		Reports:  newReportViews(detail.Reports, now),
	}
	if len(detail.Reports) > 0 {
		view.Freshness = freshness.Describe(&detail.Reports[0].CreatedAt, now)
	} else {
		view.Freshness = freshness.Describe(nil, now)
	}

	return view
}
