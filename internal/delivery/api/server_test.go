package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"cafemap/config"
	apimiddleware "cafemap/internal/delivery/api/middleware"
	"cafemap/internal/delivery/api/router"
	"cafemap/internal/delivery/api/router/handler"
	"cafemap/internal/domain/entity"
	"cafemap/internal/infra/auth"
	"cafemap/internal/infra/persistence/memory"
	"cafemap/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type marker struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	LatestReport *struct {
		SeatStatus   string `json:"seatStatus"`
		PowerOutlets bool   `json:"powerOutlets"`
	} `json:"latestReport"`
	Freshness struct {
		Tier string `json:"tier"`
	} `json:"freshness"`
}

type apiFixture struct {
	e       *echo.Echo
	store   *memory.Store
	token   string
	user    *entity.User
	tokyo   *entity.Cafe
	shibuya *entity.Cafe
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.Auth.AccessSecret = "test-secret"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := memory.New()
	ctx := context.Background()

	user := &entity.User{Email: "taro@example.com", Name: "Taro"}
	require.NoError(t, store.UpsertUser(ctx, user))

	tokyo := &entity.Cafe{
		Name:      "Station Roasters",
		Latitude:  decimal.RequireFromString("35.6812"),
		Longitude: decimal.RequireFromString("139.7671"),
	}
	shibuya := &entity.Cafe{
		Name:      "Scramble Coffee",
		Latitude:  decimal.RequireFromString("35.6580"),
		Longitude: decimal.RequireFromString("139.7016"),
	}
	require.NoError(t, store.UpsertCafe(ctx, tokyo))
	require.NoError(t, store.UpsertCafe(ctx, shibuya))

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	token, err := tokenSvc.GenerateAccessToken(user.ID, time.Hour)
	require.NoError(t, err)

	cafeUC := impl.NewCafeService(store, store, cfg, logger)
	reportUC := impl.NewReportService(store, store, cfg, logger)

	e := newEcho(cfg, logger, router.RouterParams{
		CafeHandler:    handler.NewCafeHandler(handler.CafeHandlerParams{CafeUC: cafeUC, Logger: logger}),
		ReportHandler:  handler.NewReportHandler(handler.ReportHandlerParams{ReportUC: reportUC, Logger: logger}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(tokenSvc),
	})

	return &apiFixture{e: e, store: store, token: token, user: user, tokyo: tokyo, shibuya: shibuya}
}

func (f *apiFixture) do(t *testing.T, method, target, body, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func (f *apiFixture) submit(t *testing.T, cafeID uuid.UUID, seats string, power bool) {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"cafeId":       cafeID,
		"seatStatus":   seats,
		"quietness":    "quiet",
		"wifi":         "fast",
		"powerOutlets": power,
	})
	require.NoError(t, err)

	rec, env := f.do(t, http.MethodPost, "/api/v1/reports", string(body), f.token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Nil(t, env.Error)
}

const tokyoViewport = "/api/v1/cafes?neLat=35.70&neLng=139.80&swLat=35.60&swLng=139.60"

func TestAPI_HealthAndRequestID(t *testing.T) {
	f := newAPIFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(echo.HeaderXRequestID))

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "req-123", env.Meta.RequestID)
}

func TestAPI_QueryCafes(t *testing.T) {
	f := newAPIFixture(t)
	f.submit(t, f.tokyo.ID, "available", true)

	rec, env := f.do(t, http.MethodGet, tokyoViewport, "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var markers []marker
	require.NoError(t, json.Unmarshal(env.Data, &markers))
	require.Len(t, markers, 2)

	assert.Equal(t, f.tokyo.ID, markers[0].ID)
	require.NotNil(t, markers[0].LatestReport)
	assert.Equal(t, "available", markers[0].LatestReport.SeatStatus)
	assert.Equal(t, "fresh", markers[0].Freshness.Tier)

	assert.Equal(t, f.shibuya.ID, markers[1].ID)
	assert.Nil(t, markers[1].LatestReport)
	assert.Equal(t, "expired", markers[1].Freshness.Tier)
}

func TestAPI_QueryCafes_Filters(t *testing.T) {
	f := newAPIFixture(t)
	f.submit(t, f.tokyo.ID, "available", true)
	f.submit(t, f.shibuya.ID, "full", true)

	tests := []struct {
		name    string
		filters string
		want    []uuid.UUID
	}{
		{"power matches both", `{"power":true}`, []uuid.UUID{f.shibuya.ID, f.tokyo.ID}},
		{"seats narrows to tokyo", `{"seats":true,"power":true}`, []uuid.UUID{f.tokyo.ID}},
		{"malformed is ignored", `{"seats":`, []uuid.UUID{f.shibuya.ID, f.tokyo.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := f.do(t, http.MethodGet, tokyoViewport+"&filters="+url.QueryEscape(tt.filters), "", "")
			require.Equal(t, http.StatusOK, rec.Code)

			var markers []marker
			require.NoError(t, json.Unmarshal(env.Data, &markers))

			got := make([]uuid.UUID, 0, len(markers))
			for _, m := range markers {
				got = append(got, m.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAPI_QueryCafes_InvalidBounds(t *testing.T) {
	f := newAPIFixture(t)

	targets := []string{
		"/api/v1/cafes",
		"/api/v1/cafes?neLat=35.7&neLng=139.8&swLat=35.6",
		"/api/v1/cafes?neLat=abc&neLng=139.8&swLat=35.6&swLng=139.6",
		"/api/v1/cafes?neLat=95&neLng=139.8&swLat=35.6&swLng=139.6",
		"/api/v1/cafes?neLat=35.6&neLng=139.8&swLat=35.7&swLng=139.6",
	}

	for _, target := range targets {
		rec, env := f.do(t, http.MethodGet, target, "", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		require.NotNil(t, env.Error, target)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code, target)
	}
}

func TestAPI_SubmitReport_RequiresAuthentication(t *testing.T) {
	f := newAPIFixture(t)
	body := `{"cafeId":"` + f.tokyo.ID.String() + `","seatStatus":"available","quietness":"quiet","wifi":"fast","powerOutlets":true}`

	for _, token := range []string{"", "not-a-jwt"} {
		rec, env := f.do(t, http.MethodPost, "/api/v1/reports", body, token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "UNAUTHENTICATED", env.Error.Code)
	}

	reports, err := f.store.FindLatestByCafe(context.Background(), f.tokyo.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestAPI_SubmitReport_Rejections(t *testing.T) {
	f := newAPIFixture(t)
	cafeID := f.tokyo.ID.String()

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantErr  string
	}{
		{
			name:     "unknown wifi",
			body:     `{"cafeId":"` + cafeID + `","seatStatus":"available","quietness":"quiet","wifi":"blazing","powerOutlets":true}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
		{
			name:     "missing power outlets",
			body:     `{"cafeId":"` + cafeID + `","seatStatus":"available","quietness":"quiet","wifi":"fast"}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
		{
			name:     "comment too long",
			body:     `{"cafeId":"` + cafeID + `","seatStatus":"available","quietness":"quiet","wifi":"fast","powerOutlets":false,"comment":"` + strings.Repeat("あ", 51) + `"}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
		{
			name:     "unknown cafe",
			body:     `{"cafeId":"` + uuid.NewString() + `","seatStatus":"available","quietness":"quiet","wifi":"fast","powerOutlets":false}`,
			wantCode: http.StatusNotFound,
			wantErr:  "CAFE_NOT_FOUND",
		},
		{
			name:     "not json",
			body:     `seat=available`,
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := f.do(t, http.MethodPost, "/api/v1/reports", tt.body, f.token)
			assert.Equal(t, tt.wantCode, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantErr, env.Error.Code)
		})
	}
}

func TestAPI_CafeDetailAndHistory(t *testing.T) {
	f := newAPIFixture(t)
	f.submit(t, f.tokyo.ID, "crowded", false)
	f.submit(t, f.tokyo.ID, "available", true)

	rec, env := f.do(t, http.MethodGet, "/api/v1/cafes/"+f.tokyo.ID.String()+"?limit=1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var detail struct {
		ID      uuid.UUID `json:"id"`
		Reports []struct {
			SeatStatus string `json:"seatStatus"`
			User       *struct {
				Name string `json:"name"`
			} `json:"user"`
		} `json:"reports"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, f.tokyo.ID, detail.ID)
	require.Len(t, detail.Reports, 1)
	assert.Equal(t, "available", detail.Reports[0].SeatStatus)
	require.NotNil(t, detail.Reports[0].User)
	assert.Equal(t, "Taro", detail.Reports[0].User.Name)

	rec, env = f.do(t, http.MethodGet, "/api/v1/reports?cafeId="+f.tokyo.ID.String(), "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var history []struct {
		SeatStatus string `json:"seatStatus"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &history))
	require.Len(t, history, 2)
	assert.Equal(t, "available", history[0].SeatStatus)
	assert.Equal(t, "crowded", history[1].SeatStatus)
}

func TestAPI_CafeDetail_Errors(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodGet, "/api/v1/cafes/not-a-uuid", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	rec, env = f.do(t, http.MethodGet, "/api/v1/cafes/"+uuid.NewString(), "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CAFE_NOT_FOUND", env.Error.Code)

	rec, env = f.do(t, http.MethodGet, "/api/v1/reports", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
}
