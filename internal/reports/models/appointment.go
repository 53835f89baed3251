package models

import "time"

// AppointmentStatus mirrors the estado column of the Turno table.
type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "AGENDADO"
	StatusConfirmed  AppointmentStatus = "CONFIRMADO"
	StatusInProgress AppointmentStatus = "EN_CURSO"
	StatusCompleted  AppointmentStatus = "COMPLETADO"
	StatusCanceled   AppointmentStatus = "CANCELADO"
	StatusNoShow     AppointmentStatus = "NO_ASISTIO"
)

// AllStatuses lists every appointment status in a fixed order, used to
// pre-seed status counters so empty statuses still appear with 0.
var AllStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCanceled,
	StatusNoShow,
}

// AppointmentRow is the projection of a Turno row the aggregation views scan.
// Especialidad is empty when the professional has no specialty assigned.
type AppointmentRow struct {
	Fecha          time.Time
	Estado         AppointmentStatus
	ProfessionalID int64
	Especialidad   string
}

// ProfessionalDuration is one group of the AVG(duracion) GROUP BY
// id_profesional query. AvgValid is false when every row in the group had a
// NULL duration.
type ProfessionalDuration struct {
	ProfessionalID int64
	AvgMinutes     float64
	AvgValid       bool
}

// ProfessionalAppointment is a Turno row joined with patient and insurer,
// consumed by the professional stats report.
type ProfessionalAppointment struct {
	ID         int64             `json:"id"`
	Fecha      time.Time         `json:"fecha"`
	Paciente   string            `json:"paciente"`
	Estado     AppointmentStatus `json:"estado"`
	Motivo     string            `json:"motivo,omitempty"`
	ObraSocial string            `json:"obraSocial"`
}
