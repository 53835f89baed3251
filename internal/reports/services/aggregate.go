package services

import (
	"fmt"
	"math"
	"sort"

	"github.com/dermatosalud/reportes-backend/internal/reports/models"
)

// Every builder in this file follows the same contract: pre-seed all expected
// buckets with zero, scan the fetched rows once, silently skip rows that
// match no bucket, and emit buckets in the pre-seeded order. Output shape
// never depends on data sparsity.

const (
	hourFirst = 8
	hourLast  = 20

	topSpecialties = 6

	// Average used when a completed appointment has no recorded duration.
	defaultDurationMinutes = 30.0
)

var weekdayLabels = [7]string{"Lun", "Mar", "Mié", "Jue", "Vie", "Sáb", "Dom"}

// weekdayIndex rotates Go's Sunday=0 day-of-week so Monday is index 0.
func weekdayIndex(d models.AppointmentRow) int {
	return (int(d.Fecha.Weekday()) + 6) % 7
}

func buildMonthlyTrend(months []MonthBucket, rows []models.AppointmentRow) []models.MonthlyTrendEntry {
	out := make([]models.MonthlyTrendEntry, len(months))
	for i, m := range months {
		out[i] = models.MonthlyTrendEntry{Month: m.Label}
	}
	for _, r := range rows {
		for i, m := range months {
			if !m.Window.Contains(r.Fecha) {
				continue
			}
			out[i].Total++
			switch r.Estado {
			case models.StatusCompleted:
				out[i].Completed++
			case models.StatusCanceled:
				out[i].Canceled++
			}
			break
		}
	}
	return out
}

func buildHourlyHistogram(rows []models.AppointmentRow) []models.HourCount {
	counts := make([]int, hourLast-hourFirst+1)
	for _, r := range rows {
		h := r.Fecha.Hour()
		if h < hourFirst || h > hourLast {
			continue
		}
		counts[h-hourFirst]++
	}
	out := make([]models.HourCount, len(counts))
	for i, c := range counts {
		out[i] = models.HourCount{Hour: fmt.Sprintf("%d:00", hourFirst+i), Count: c}
	}
	return out
}

func buildWeekdayHistogram(rows []models.AppointmentRow) []models.DayCount {
	counts := make([]int, 7)
	for _, r := range rows {
		counts[weekdayIndex(r)]++
	}
	out := make([]models.DayCount, 7)
	for i, c := range counts {
		out[i] = models.DayCount{Day: weekdayLabels[i], Count: c}
	}
	return out
}

// buildPatientGrowth folds the per-month new-patient counts into a running
// total seeded with the patient count from before the window. The cumulative
// pass is sequential: each month depends on the previous one.
func buildPatientGrowth(months []MonthBucket, baseline int, newByMonth []int) []models.PatientGrowthEntry {
	out := make([]models.PatientGrowthEntry, len(months))
	cumulative := baseline
	for i, m := range months {
		cumulative += newByMonth[i]
		out[i] = models.PatientGrowthEntry{
			Month:           m.Label,
			NewPatients:     newByMonth[i],
			CumulativeTotal: cumulative,
		}
	}
	return out
}

func buildSpecialtyDistribution(rows []models.AppointmentRow) []models.SpecialtyShare {
	counts := make(map[string]int)
	total := 0
	for _, r := range rows {
		name := r.Especialidad
		if name == "" {
			name = "Sin especialidad"
		}
		counts[name]++
		total++
	}

	out := make([]models.SpecialtyShare, 0, len(counts))
	for name, count := range counts {
		share := models.SpecialtyShare{Name: name, Count: count}
		if total > 0 {
			share.Percent = float64(count) / float64(total) * 100
		}
		out = append(out, share)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > topSpecialties {
		out = out[:topSpecialties]
	}
	return out
}

// buildDurationBySpecialty aggregates the per-professional duration averages
// up to specialty level. The specialties map is the second phase of the
// two-phase join, keyed by the professional IDs discovered in the group-by.
func buildDurationBySpecialty(durations []models.ProfessionalDuration, specialties map[int64]string) []models.SpecialtyDuration {
	type acc struct {
		total float64
		count int
	}
	bySpecialty := make(map[string]*acc)
	order := make([]string, 0)

	for _, d := range durations {
		name := specialties[d.ProfessionalID]
		if name == "" {
			name = "Sin especialidad"
		}
		minutes := d.AvgMinutes
		if !d.AvgValid {
			minutes = defaultDurationMinutes
		}
		a, ok := bySpecialty[name]
		if !ok {
			a = &acc{}
			bySpecialty[name] = a
			order = append(order, name)
		}
		a.total += minutes
		a.count++
	}

	out := make([]models.SpecialtyDuration, 0, len(order))
	for _, name := range order {
		a := bySpecialty[name]
		out = append(out, models.SpecialtyDuration{
			Specialty: name,
			Minutes:   int(math.Round(a.total / float64(a.count))),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Minutes > out[j].Minutes
	})
	if len(out) > topSpecialties {
		out = out[:topSpecialties]
	}
	return out
}

func buildAttendanceRate(months []MonthBucket, rows []models.AppointmentRow) []models.AttendanceEntry {
	out := make([]models.AttendanceEntry, len(months))
	for i, m := range months {
		out[i] = models.AttendanceEntry{Month: m.Label}
	}
	for _, r := range rows {
		for i, m := range months {
			if !m.Window.Contains(r.Fecha) {
				continue
			}
			switch r.Estado {
			case models.StatusCompleted, models.StatusConfirmed:
				out[i].Attended++
			case models.StatusNoShow:
				out[i].NoShow++
			}
			break
		}
	}
	return out
}
