package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dermatosalud/reportes-backend/internal/reports/models"
)

var testNow = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func appointmentAt(t time.Time, status models.AppointmentStatus) models.AppointmentRow {
	return models.AppointmentRow{Fecha: t, Estado: status}
}

func TestBuildMonthlyTrendEmptyRows(t *testing.T) {
	out := buildMonthlyTrend(MonthWindows(testNow, 6), nil)

	require.Len(t, out, 6, "all month buckets present without data")
	for _, e := range out {
		assert.Zero(t, e.Total)
		assert.Zero(t, e.Completed)
		assert.Zero(t, e.Canceled)
	}
}

func TestBuildMonthlyTrendCountsByStatus(t *testing.T) {
	rows := []models.AppointmentRow{
		appointmentAt(time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC), models.StatusCompleted),
		appointmentAt(time.Date(2025, time.March, 4, 9, 0, 0, 0, time.UTC), models.StatusScheduled),
		appointmentAt(time.Date(2025, time.February, 4, 9, 0, 0, 0, time.UTC), models.StatusCanceled),
		// Outside the 6-month range: silently skipped.
		appointmentAt(time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC), models.StatusCompleted),
	}
	out := buildMonthlyTrend(MonthWindows(testNow, 6), rows)

	require.Len(t, out, 6)
	current := out[5]
	assert.Equal(t, "Mar", current.Month)
	assert.Equal(t, 2, current.Total)
	assert.Equal(t, 1, current.Completed)
	assert.Equal(t, 0, current.Canceled)

	previous := out[4]
	assert.Equal(t, "Feb", previous.Month)
	assert.Equal(t, 1, previous.Total)
	assert.Equal(t, 1, previous.Canceled)
}

func TestBuildHourlyHistogramBuckets(t *testing.T) {
	out := buildHourlyHistogram(nil)
	require.Len(t, out, 13, "13 hour buckets even with no rows")
	assert.Equal(t, "8:00", out[0].Hour)
	assert.Equal(t, "20:00", out[12].Hour)

	rows := []models.AppointmentRow{
		appointmentAt(time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC), models.StatusCompleted),
		appointmentAt(time.Date(2025, time.March, 3, 8, 30, 0, 0, time.UTC), models.StatusCompleted),
		appointmentAt(time.Date(2025, time.March, 3, 20, 59, 0, 0, time.UTC), models.StatusCompleted),
		// Outside clinic hours: dropped, not bucketed.
		appointmentAt(time.Date(2025, time.March, 3, 7, 59, 0, 0, time.UTC), models.StatusCompleted),
		appointmentAt(time.Date(2025, time.March, 3, 21, 0, 0, 0, time.UTC), models.StatusCompleted),
	}
	out = buildHourlyHistogram(rows)
	require.Len(t, out, 13)
	assert.Equal(t, 2, out[0].Count)
	assert.Equal(t, 1, out[12].Count)

	total := 0
	for _, h := range out {
		total += h.Count
	}
	assert.Equal(t, 3, total, "out-of-range hours do not appear anywhere")
}

func TestBuildWeekdayHistogramRotation(t *testing.T) {
	// 2025-03-10 is a Monday; seven consecutive days cover every weekday.
	monday := time.Date(2025, time.March, 10, 10, 0, 0, 0, time.UTC)
	for offset := 0; offset < 7; offset++ {
		day := monday.AddDate(0, 0, offset)
		out := buildWeekdayHistogram([]models.AppointmentRow{
			appointmentAt(day, models.StatusCompleted),
		})
		require.Len(t, out, 7)
		for i, d := range out {
			want := 0
			if i == offset {
				want = 1
			}
			assert.Equalf(t, want, d.Count, "weekday %v should land in bucket %d (%s)", day.Weekday(), offset, out[offset].Day)
		}
	}

	// Sunday specifically must rotate from raw index 0 to bucket 6.
	sunday := time.Date(2025, time.March, 16, 10, 0, 0, 0, time.UTC)
	require.Equal(t, time.Sunday, sunday.Weekday())
	out := buildWeekdayHistogram([]models.AppointmentRow{appointmentAt(sunday, models.StatusCompleted)})
	assert.Equal(t, "Dom", out[6].Day)
	assert.Equal(t, 1, out[6].Count)
}

func TestBuildPatientGrowthCumulative(t *testing.T) {
	months := MonthWindows(testNow, 6)
	out := buildPatientGrowth(months, 40, []int{5, 0, 3, 0, 2, 7})

	require.Len(t, out, 6)
	assert.Equal(t, 45, out[0].CumulativeTotal)
	assert.Equal(t, 57, out[5].CumulativeTotal)
	assert.Equal(t, 7, out[5].NewPatients)
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i].CumulativeTotal, out[i-1].CumulativeTotal,
			"cumulative total never decreases")
	}
}

func TestBuildSpecialtyDistribution(t *testing.T) {
	var rows []models.AppointmentRow
	// 10 specialties with distinct counts 1..10.
	for i := 1; i <= 10; i++ {
		for j := 0; j < i; j++ {
			rows = append(rows, models.AppointmentRow{
				Fecha:        testNow,
				Estado:       models.StatusCompleted,
				Especialidad: fmt.Sprintf("Especialidad %d", i),
			})
		}
	}

	out := buildSpecialtyDistribution(rows)
	require.Len(t, out, 6, "truncated to top 6")
	assert.Equal(t, "Especialidad 10", out[0].Name)
	assert.Equal(t, 10, out[0].Count)
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].Count, out[i].Count)
	}
	// Percentages are against all matched rows, not only the surviving top 6.
	assert.InDelta(t, float64(10)/55*100, out[0].Percent, 0.001)
}

func TestBuildSpecialtyDistributionPercentSum(t *testing.T) {
	rows := []models.AppointmentRow{
		{Fecha: testNow, Especialidad: "Dermatología"},
		{Fecha: testNow, Especialidad: "Dermatología"},
		{Fecha: testNow, Especialidad: "Pediatría"},
		{Fecha: testNow, Especialidad: ""},
	}
	out := buildSpecialtyDistribution(rows)

	require.Len(t, out, 3)
	sum := 0.0
	for _, s := range out {
		sum += s.Percent
	}
	assert.InDelta(t, 100.0, sum, 0.001)

	names := []string{out[0].Name, out[1].Name, out[2].Name}
	assert.Contains(t, names, "Sin especialidad", "null specialty gets the sentinel bucket")
}

func TestBuildSpecialtyDistributionEmpty(t *testing.T) {
	out := buildSpecialtyDistribution(nil)
	assert.Empty(t, out, "no rows, no division error")
}

func TestBuildDurationBySpecialty(t *testing.T) {
	durations := []models.ProfessionalDuration{
		{ProfessionalID: 1, AvgMinutes: 40, AvgValid: true},
		{ProfessionalID: 2, AvgMinutes: 20, AvgValid: true},
		{ProfessionalID: 3, AvgValid: false}, // NULL average defaults to 30
		{ProfessionalID: 4, AvgMinutes: 55, AvgValid: true},
	}
	specialties := map[int64]string{
		1: "Dermatología",
		2: "Dermatología",
		4: "Pediatría",
		// professional 3 missing: sentinel specialty
	}

	out := buildDurationBySpecialty(durations, specialties)
	require.Len(t, out, 3)

	assert.Equal(t, models.SpecialtyDuration{Specialty: "Pediatría", Minutes: 55}, out[0])
	assert.Equal(t, models.SpecialtyDuration{Specialty: "Dermatología", Minutes: 30}, out[1])
	assert.Equal(t, models.SpecialtyDuration{Specialty: "Sin especialidad", Minutes: 30}, out[2])
}

func TestBuildDurationBySpecialtyTruncation(t *testing.T) {
	var durations []models.ProfessionalDuration
	specialties := make(map[int64]string)
	for i := int64(1); i <= 10; i++ {
		durations = append(durations, models.ProfessionalDuration{
			ProfessionalID: i, AvgMinutes: float64(10 * i), AvgValid: true,
		})
		specialties[i] = fmt.Sprintf("Especialidad %d", i)
	}

	out := buildDurationBySpecialty(durations, specialties)
	require.Len(t, out, 6)
	assert.Equal(t, 100, out[0].Minutes)
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].Minutes, out[i].Minutes)
	}
}

func TestBuildAttendanceRate(t *testing.T) {
	months := MonthWindows(testNow, 6)
	march := time.Date(2025, time.March, 5, 10, 0, 0, 0, time.UTC)
	rows := []models.AppointmentRow{
		appointmentAt(march, models.StatusCompleted),
		appointmentAt(march, models.StatusConfirmed),
		appointmentAt(march, models.StatusNoShow),
		// Neither attended nor no-show.
		appointmentAt(march, models.StatusScheduled),
		appointmentAt(march, models.StatusCanceled),
		appointmentAt(march, models.StatusInProgress),
	}

	out := buildAttendanceRate(months, rows)
	require.Len(t, out, 6)
	assert.Equal(t, 2, out[5].Attended)
	assert.Equal(t, 1, out[5].NoShow)
	for i := 0; i < 5; i++ {
		assert.Zero(t, out[i].Attended)
		assert.Zero(t, out[i].NoShow)
	}
}
