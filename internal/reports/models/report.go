package models

import "time"

// MonthlyTrendEntry is one month of the 6-month appointment trend.
type MonthlyTrendEntry struct {
	Month     string `json:"month"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Canceled  int    `json:"canceled"`
}

// HourCount is one bucket of the hourly histogram ("8:00".."20:00").
type HourCount struct {
	Hour  string `json:"hour"`
	Count int    `json:"count"`
}

// DayCount is one bucket of the weekday histogram ("Lun".."Dom").
type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// PatientGrowthEntry carries new patients per month plus the running total.
type PatientGrowthEntry struct {
	Month           string `json:"month"`
	NewPatients     int    `json:"newPatients"`
	CumulativeTotal int    `json:"cumulativeTotal"`
}

// SpecialtyShare is one slice of the specialty distribution pie.
type SpecialtyShare struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// SpecialtyDuration is the average completed-appointment duration for one specialty.
type SpecialtyDuration struct {
	Specialty string `json:"specialty"`
	Minutes   int    `json:"minutes"`
}

// AttendanceEntry counts attended vs. no-show appointments for one month.
// Statuses outside those two groups are deliberately counted in neither.
type AttendanceEntry struct {
	Month    string `json:"month"`
	Attended int    `json:"attended"`
	NoShow   int    `json:"noShow"`
}

// ReportSummary holds the second-order KPIs derived from the series above.
// The projection and efficiency values are fixed-formula heuristics, not
// statistical estimates.
type ReportSummary struct {
	MonthlyTrendPercent       float64  `json:"monthlyTrendPercent"`
	PeakHours                 []string `json:"peakHours"`
	PeakWeekdays              []string `json:"peakWeekdays"`
	TopSpecialty              string   `json:"topSpecialty"`
	AttendanceRatePercent     float64  `json:"attendanceRatePercent"`
	NewPatientsLastMonth      int      `json:"newPatientsLastMonth"`
	PeakHourProjectedLoad     float64  `json:"peakHourProjectedLoad"`
	OperationalEfficiency     float64  `json:"operationalEfficiencyScore"`
	NextMonthProjectionPercent float64 `json:"nextMonthProjectionPercent"`
}

// GrowthTrendsReport is the full response body of the growth trends endpoint.
type GrowthTrendsReport struct {
	MonthlyTrend          []MonthlyTrendEntry `json:"monthlyTrend"`
	HourlyDistribution    []HourCount         `json:"hourlyDistribution"`
	WeekdayDistribution   []DayCount          `json:"weekdayDistribution"`
	PatientGrowth         []PatientGrowthEntry `json:"patientGrowth"`
	SpecialtyDistribution []SpecialtyShare    `json:"specialtyDistribution"`
	AvgDurationBySpecialty []SpecialtyDuration `json:"avgDurationBySpecialty"`
	AttendanceRate        []AttendanceEntry   `json:"attendanceRate"`
	Summary               ReportSummary       `json:"summary"`
}

// DateRange reports the window a professional stats response covers.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// InsurerShare is one insurer's slice of a professional's appointments.
type InsurerShare struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ProfessionalStatsReport is the response body of the professional stats endpoint.
type ProfessionalStatsReport struct {
	DateRange             DateRange                 `json:"dateRange"`
	TotalAppointments     int                       `json:"totalAppointments"`
	StatusCounts          map[AppointmentStatus]int `json:"statusCounts"`
	ObraSocialPercentages []InsurerShare            `json:"obraSocialPercentages"`
	CompletionRate        float64                   `json:"completionRate"`
	CancellationRate      float64                   `json:"cancellationRate"`
	RecentAppointments    []ProfessionalAppointment `json:"recentAppointments"`
	AverageDaily          float64                   `json:"averageDaily"`
}
