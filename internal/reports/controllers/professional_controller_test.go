package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dermatosalud/reportes-backend/internal/common/middlewares"
	"github.com/dermatosalud/reportes-backend/internal/reports/models"
	"github.com/dermatosalud/reportes-backend/internal/reports/services"
	"github.com/dermatosalud/reportes-backend/pkg/utils"
)

// stubFetcher records the window the controller resolved from query params.
type stubFetcher struct {
	gotWindow services.TimeWindow
	gotID     int64
}

func (s *stubFetcher) AppointmentsInWindow(ctx context.Context, w services.TimeWindow) ([]models.AppointmentRow, error) {
	return nil, nil
}

func (s *stubFetcher) ActiveAppointmentsInWindow(ctx context.Context, w services.TimeWindow) ([]models.AppointmentRow, error) {
	return nil, nil
}

func (s *stubFetcher) CountPatientsBefore(ctx context.Context, t time.Time) (int, error) {
	return 0, nil
}

func (s *stubFetcher) CountPatientsInWindow(ctx context.Context, w services.TimeWindow) (int, error) {
	return 0, nil
}

func (s *stubFetcher) AvgDurationByProfessional(ctx context.Context, w services.TimeWindow) ([]models.ProfessionalDuration, error) {
	return nil, nil
}

func (s *stubFetcher) SpecialtiesByProfessional(ctx context.Context, ids []int64) (map[int64]string, error) {
	return map[int64]string{}, nil
}

func (s *stubFetcher) ProfessionalAppointmentsInWindow(ctx context.Context, professionalID int64, w services.TimeWindow) ([]models.ProfessionalAppointment, error) {
	s.gotWindow = w
	s.gotID = professionalID
	return nil, nil
}

func statsRequest(t *testing.T, query string, claims *utils.Claims) (*stubFetcher, *httptest.ResponseRecorder) {
	t.Helper()
	fetcher := &stubFetcher{}
	controller := NewProfessionalStatsController(services.NewProfessionalStatsService(fetcher), time.UTC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/reportes/professional-stats"+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		c.Set(middlewares.ContextKeyClaims, claims)
	}

	require.NoError(t, controller.GetProfessionalStats(c))
	return fetcher, rec
}

func TestGetProfessionalStatsNoClaims(t *testing.T) {
	_, rec := statsRequest(t, "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetProfessionalStatsExplicitRange(t *testing.T) {
	claims := &utils.Claims{UserID: 9, Roles: []string{"PROFESIONAL"}}
	fetcher, rec := statsRequest(t, "?dateFrom=2025-03-01&dateTo=2025-03-10", claims)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(9), fetcher.gotID, "professional id comes from the token")
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), fetcher.gotWindow.Start)
	// Inclusive end date resolves to a half-open window ending next midnight.
	assert.Equal(t, time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC), fetcher.gotWindow.End)

	var body models.ProfessionalStatsReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.StatusCounts, len(models.AllStatuses))
}

func TestGetProfessionalStatsInvalidRange(t *testing.T) {
	claims := &utils.Claims{UserID: 9, Roles: []string{"PROFESIONAL"}}
	_, rec := statsRequest(t, "?dateFrom=2025-03-10&dateTo=not-a-date", claims)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProfessionalStatsDefaultWindow(t *testing.T) {
	claims := &utils.Claims{UserID: 9, Roles: []string{"PROFESIONAL"}}
	fetcher, rec := statsRequest(t, "", claims)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 30, fetcher.gotWindow.Days(), "defaults to the last 30 days")
}

func TestGetProfessionalStatsAllTime(t *testing.T) {
	claims := &utils.Claims{UserID: 9, Roles: []string{"PROFESIONAL"}}
	fetcher, rec := statsRequest(t, "?allTime=1", claims)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1970, fetcher.gotWindow.Start.Year(), "all-time fetch is open-ended")
}
