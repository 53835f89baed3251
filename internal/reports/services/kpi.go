package services

import (
	"math"
	"sort"

	"github.com/dermatosalud/reportes-backend/internal/reports/models"
)

// Heuristic KPI reducer. Every value here is a fixed formula over the seven
// derived series; none is a statistically fitted model. It never errors:
// every denominator is guarded and empty series degrade to sentinels.

const (
	efficiencyBase   = 70.0
	efficiencyFactor = 0.3
	efficiencyCap    = 95.0

	// Conservative multiplier on the monthly trend for next month's projection.
	projectionFactor = 1.1
)

func buildSummary(
	trend []models.MonthlyTrendEntry,
	hourly []models.HourCount,
	weekdays []models.DayCount,
	growth []models.PatientGrowthEntry,
	specialties []models.SpecialtyShare,
	attendance []models.AttendanceEntry,
	peakUnitValue float64,
) models.ReportSummary {
	var s models.ReportSummary

	// Month-over-month trend. A zero previous month keeps the legacy
	// denominator of 1 so existing dashboards see the same numbers.
	var current, previous int
	if len(trend) >= 1 {
		current = trend[len(trend)-1].Total
	}
	if len(trend) >= 2 {
		previous = trend[len(trend)-2].Total
	}
	denom := previous
	if denom == 0 {
		denom = 1
	}
	s.MonthlyTrendPercent = float64(current-previous) / float64(denom) * 100

	// Peak hours and weekdays: stable sort over the pre-ordered series, so
	// ties resolve to the earlier hour/day.
	sortedHours := make([]models.HourCount, len(hourly))
	copy(sortedHours, hourly)
	sort.SliceStable(sortedHours, func(i, j int) bool {
		return sortedHours[i].Count > sortedHours[j].Count
	})
	s.PeakHours = make([]string, 0, 3)
	for _, h := range sortedHours {
		if len(s.PeakHours) == 3 {
			break
		}
		s.PeakHours = append(s.PeakHours, h.Hour)
	}

	sortedDays := make([]models.DayCount, len(weekdays))
	copy(sortedDays, weekdays)
	sort.SliceStable(sortedDays, func(i, j int) bool {
		return sortedDays[i].Count > sortedDays[j].Count
	})
	s.PeakWeekdays = make([]string, 0, 3)
	for _, d := range sortedDays {
		if len(s.PeakWeekdays) == 3 {
			break
		}
		s.PeakWeekdays = append(s.PeakWeekdays, d.Day)
	}

	s.TopSpecialty = "N/A"
	if len(specialties) > 0 {
		s.TopSpecialty = specialties[0].Name
	}

	var attended, noShow int
	for _, a := range attendance {
		attended += a.Attended
		noShow += a.NoShow
	}
	if attended+noShow > 0 {
		s.AttendanceRatePercent = float64(attended) / float64(attended+noShow) * 100
	}

	if len(growth) > 0 {
		s.NewPatientsLastMonth = growth[len(growth)-1].NewPatients
	}

	var peakHourCount int
	if len(sortedHours) > 0 {
		peakHourCount = sortedHours[0].Count
	}
	// Placeholder load estimate, not a forecast.
	s.PeakHourProjectedLoad = float64(peakHourCount) * peakUnitValue

	s.OperationalEfficiency = math.Min(efficiencyCap, efficiencyBase+s.AttendanceRatePercent*efficiencyFactor)
	s.NextMonthProjectionPercent = s.MonthlyTrendPercent * projectionFactor

	return s
}
