package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dermatosalud/reportes-backend/internal/reports/models"
)

const (
	trendMonths     = 6
	histogramMonths = 3
)

// SummaryBroadcaster pushes a freshly computed report summary to subscribed
// dashboard clients. Implemented by ws.Hub.
type SummaryBroadcaster interface {
	BroadcastJSON(v interface{}) error
}

// TrendsService computes the growth trends report: seven derived series over
// the appointment and patient tables plus the KPI summary.
type TrendsService struct {
	Fetcher       RecordFetcher
	Broadcaster   SummaryBroadcaster
	PeakUnitValue float64
}

func NewTrendsService(fetcher RecordFetcher, broadcaster SummaryBroadcaster, peakUnitValue float64) *TrendsService {
	return &TrendsService{Fetcher: fetcher, Broadcaster: broadcaster, PeakUnitValue: peakUnitValue}
}

// GrowthTrends builds the full report as of now. now carries the clinic
// timezone; the system clock is never read here, so results are reproducible
// under test. Any fetch failure aborts the whole report: partial series are
// never returned.
func (s *TrendsService) GrowthTrends(ctx context.Context, now time.Time) (*models.GrowthTrendsReport, error) {
	months := MonthWindows(now, trendMonths)
	sixMonths := LastKMonthsWindow(now, trendMonths)
	threeMonths := LastKMonthsWindow(now, histogramMonths)

	var (
		sixMonthRows []models.AppointmentRow
		activeRows   []models.AppointmentRow
		baseline     int
		newByMonth   = make([]int, len(months))
		durations    []models.ProfessionalDuration
		specialties  map[int64]string
	)

	// The per-view fetches are independent; fan them out. The duration view
	// keeps its two phases sequential inside one goroutine because the
	// second query is keyed by IDs the first one discovers.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := s.Fetcher.AppointmentsInWindow(gctx, sixMonths)
		if err != nil {
			return fmt.Errorf("monthly trend view: %w", err)
		}
		sixMonthRows = rows
		return nil
	})

	g.Go(func() error {
		rows, err := s.Fetcher.ActiveAppointmentsInWindow(gctx, threeMonths)
		if err != nil {
			return fmt.Errorf("hourly distribution view: %w", err)
		}
		activeRows = rows
		return nil
	})

	g.Go(func() error {
		count, err := s.Fetcher.CountPatientsBefore(gctx, sixMonths.Start)
		if err != nil {
			return fmt.Errorf("patient growth baseline: %w", err)
		}
		baseline = count
		return nil
	})

	for i, m := range months {
		i, m := i, m
		g.Go(func() error {
			count, err := s.Fetcher.CountPatientsInWindow(gctx, m.Window)
			if err != nil {
				return fmt.Errorf("patient growth view (%s): %w", m.Label, err)
			}
			newByMonth[i] = count
			return nil
		})
	}

	g.Go(func() error {
		groups, err := s.Fetcher.AvgDurationByProfessional(gctx, threeMonths)
		if err != nil {
			return fmt.Errorf("duration view: %w", err)
		}
		ids := make([]int64, 0, len(groups))
		for _, d := range groups {
			ids = append(ids, d.ProfessionalID)
		}
		lookup, err := s.Fetcher.SpecialtiesByProfessional(gctx, ids)
		if err != nil {
			return fmt.Errorf("duration view specialty lookup: %w", err)
		}
		durations = groups
		specialties = lookup
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &models.GrowthTrendsReport{
		MonthlyTrend:           buildMonthlyTrend(months, sixMonthRows),
		HourlyDistribution:     buildHourlyHistogram(activeRows),
		WeekdayDistribution:    buildWeekdayHistogram(activeRows),
		PatientGrowth:          buildPatientGrowth(months, baseline, newByMonth),
		SpecialtyDistribution:  buildSpecialtyDistribution(activeRows),
		AvgDurationBySpecialty: buildDurationBySpecialty(durations, specialties),
		AttendanceRate:         buildAttendanceRate(months, sixMonthRows),
	}
	report.Summary = buildSummary(
		report.MonthlyTrend,
		report.HourlyDistribution,
		report.WeekdayDistribution,
		report.PatientGrowth,
		report.SpecialtyDistribution,
		report.AttendanceRate,
		s.PeakUnitValue,
	)

	if s.Broadcaster != nil {
		payload := map[string]interface{}{
			"event":   "trends-refreshed",
			"summary": report.Summary,
		}
		if err := s.Broadcaster.BroadcastJSON(payload); err != nil {
			// Dashboard push is best effort; the HTTP response still carries
			// the full report.
			log.Printf("ws broadcast failed: %v", err)
		}
	}

	return report, nil
}
