package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/dermatosalud/reportes-backend/internal/reports/models"
)

const recentAppointmentsLimit = 10

// ProfessionalStatsService computes one professional's activity report over
// an arbitrary date window.
type ProfessionalStatsService struct {
	Fetcher RecordFetcher
}

func NewProfessionalStatsService(fetcher RecordFetcher) *ProfessionalStatsService {
	return &ProfessionalStatsService{Fetcher: fetcher}
}

// Stats builds the report for the professional over the window. When allTime
// is set the window start is open-ended and the reported range starts at the
// oldest appointment found.
func (s *ProfessionalStatsService) Stats(ctx context.Context, professionalID int64, w TimeWindow, allTime bool) (*models.ProfessionalStatsReport, error) {
	appointments, err := s.Fetcher.ProfessionalAppointmentsInWindow(ctx, professionalID, w)
	if err != nil {
		return nil, fmt.Errorf("professional stats view: %w", err)
	}

	report := &models.ProfessionalStatsReport{
		DateRange:         models.DateRange{From: w.Start, To: w.End},
		TotalAppointments: len(appointments),
		StatusCounts:      make(map[models.AppointmentStatus]int, len(models.AllStatuses)),
	}
	for _, st := range models.AllStatuses {
		report.StatusCounts[st] = 0
	}

	insurerCounts := make(map[string]int)
	for _, a := range appointments {
		report.StatusCounts[a.Estado]++
		insurerCounts[a.ObraSocial]++
	}

	total := len(appointments)
	report.ObraSocialPercentages = make([]models.InsurerShare, 0, len(insurerCounts))
	for name, count := range insurerCounts {
		share := models.InsurerShare{Name: name, Count: count}
		if total > 0 {
			share.Percentage = float64(count) / float64(total) * 100
		}
		report.ObraSocialPercentages = append(report.ObraSocialPercentages, share)
	}
	sort.SliceStable(report.ObraSocialPercentages, func(i, j int) bool {
		if report.ObraSocialPercentages[i].Count != report.ObraSocialPercentages[j].Count {
			return report.ObraSocialPercentages[i].Count > report.ObraSocialPercentages[j].Count
		}
		return report.ObraSocialPercentages[i].Name < report.ObraSocialPercentages[j].Name
	})

	if total > 0 {
		report.CompletionRate = float64(report.StatusCounts[models.StatusCompleted]) / float64(total) * 100
		report.CancellationRate = float64(report.StatusCounts[models.StatusCanceled]) / float64(total) * 100
	}

	// Rows arrive most recent first.
	report.RecentAppointments = appointments
	if len(appointments) > recentAppointmentsLimit {
		report.RecentAppointments = appointments[:recentAppointmentsLimit]
	}
	if report.RecentAppointments == nil {
		report.RecentAppointments = []models.ProfessionalAppointment{}
	}

	rangeWindow := w
	if allTime {
		if len(appointments) == 0 {
			rangeWindow.Start = w.End.AddDate(0, 0, -1)
		} else {
			oldest := appointments[len(appointments)-1].Fecha
			rangeWindow.Start = oldest
		}
		report.DateRange.From = rangeWindow.Start
	}
	report.AverageDaily = float64(total) / float64(rangeWindow.Days())

	return report, nil
}
