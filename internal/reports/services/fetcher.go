package services

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/dermatosalud/reportes-backend/internal/reports/models"
)

// RecordFetcher is the persistence boundary of the reporting pipeline. The
// aggregation code only sees these read primitives; tests substitute an
// in-memory implementation.
type RecordFetcher interface {
	// AppointmentsInWindow returns every non-deleted appointment in the window.
	AppointmentsInWindow(ctx context.Context, w TimeWindow) ([]models.AppointmentRow, error)
	// ActiveAppointmentsInWindow returns non-canceled appointments in the
	// window, with the professional's specialty joined in.
	ActiveAppointmentsInWindow(ctx context.Context, w TimeWindow) ([]models.AppointmentRow, error)
	// CountPatientsBefore counts patients created strictly before t.
	CountPatientsBefore(ctx context.Context, t time.Time) (int, error)
	// CountPatientsInWindow counts patients created inside the window.
	CountPatientsInWindow(ctx context.Context, w TimeWindow) (int, error)
	// AvgDurationByProfessional groups completed appointments in the window
	// by professional with their average duration.
	AvgDurationByProfessional(ctx context.Context, w TimeWindow) ([]models.ProfessionalDuration, error)
	// SpecialtiesByProfessional batch-resolves specialty names for the given
	// professional IDs. Professionals without a specialty map to "".
	SpecialtiesByProfessional(ctx context.Context, ids []int64) (map[int64]string, error)
	// ProfessionalAppointmentsInWindow returns one professional's
	// appointments in the window, most recent first, with patient and
	// insurer joined in.
	ProfessionalAppointmentsInWindow(ctx context.Context, professionalID int64, w TimeWindow) ([]models.ProfessionalAppointment, error)
}

type mariadbFetcher struct {
	DB *sql.DB
}

// NewRecordFetcher returns the MariaDB-backed RecordFetcher.
func NewRecordFetcher(db *sql.DB) RecordFetcher {
	return &mariadbFetcher{DB: db}
}

func (f *mariadbFetcher) AppointmentsInWindow(ctx context.Context, w TimeWindow) ([]models.AppointmentRow, error) {
	query := `
		SELECT fecha, estado
		FROM Turno
		WHERE fecha >= ? AND fecha < ? AND deleted_at IS NULL
	`
	rows, err := f.DB.QueryContext(ctx, query, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.AppointmentRow
	for rows.Next() {
		var r models.AppointmentRow
		if err := rows.Scan(&r.Fecha, &r.Estado); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (f *mariadbFetcher) ActiveAppointmentsInWindow(ctx context.Context, w TimeWindow) ([]models.AppointmentRow, error) {
	query := `
		SELECT t.fecha, t.estado, t.id_profesional, COALESCE(e.nombre, '')
		FROM Turno t
		JOIN User u ON t.id_profesional = u.id_user
		LEFT JOIN Especialidad e ON u.id_especialidad = e.id_especialidad
		WHERE t.fecha >= ? AND t.fecha < ?
		  AND t.estado <> ?
		  AND t.deleted_at IS NULL
	`
	rows, err := f.DB.QueryContext(ctx, query, w.Start, w.End, models.StatusCanceled)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.AppointmentRow
	for rows.Next() {
		var r models.AppointmentRow
		if err := rows.Scan(&r.Fecha, &r.Estado, &r.ProfessionalID, &r.Especialidad); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (f *mariadbFetcher) CountPatientsBefore(ctx context.Context, t time.Time) (int, error) {
	var count int
	err := f.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM Paciente WHERE created_at < ?", t).Scan(&count)
	return count, err
}

func (f *mariadbFetcher) CountPatientsInWindow(ctx context.Context, w TimeWindow) (int, error) {
	var count int
	err := f.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM Paciente WHERE created_at >= ? AND created_at < ?",
		w.Start, w.End).Scan(&count)
	return count, err
}

func (f *mariadbFetcher) AvgDurationByProfessional(ctx context.Context, w TimeWindow) ([]models.ProfessionalDuration, error) {
	query := `
		SELECT id_profesional, AVG(duracion)
		FROM Turno
		WHERE fecha >= ? AND fecha < ?
		  AND estado = ?
		  AND deleted_at IS NULL
		GROUP BY id_profesional
	`
	rows, err := f.DB.QueryContext(ctx, query, w.Start, w.End, models.StatusCompleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ProfessionalDuration
	for rows.Next() {
		var (
			d   models.ProfessionalDuration
			avg sql.NullFloat64
		)
		if err := rows.Scan(&d.ProfessionalID, &avg); err != nil {
			return nil, err
		}
		d.AvgMinutes = avg.Float64
		d.AvgValid = avg.Valid
		out = append(out, d)
	}
	return out, rows.Err()
}

func (f *mariadbFetcher) SpecialtiesByProfessional(ctx context.Context, ids []int64) (map[int64]string, error) {
	result := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	query := `
		SELECT u.id_user, COALESCE(e.nombre, '')
		FROM User u
		LEFT JOIN Especialidad e ON u.id_especialidad = e.id_especialidad
		WHERE u.id_user IN (` + placeholders + `)`

	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := f.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		result[id] = name
	}
	return result, rows.Err()
}

func (f *mariadbFetcher) ProfessionalAppointmentsInWindow(ctx context.Context, professionalID int64, w TimeWindow) ([]models.ProfessionalAppointment, error) {
	query := `
		SELECT t.id_turno, t.fecha, t.estado, COALESCE(t.motivo, ''), p.nombre, COALESCE(o.nombre, 'Particular')
		FROM Turno t
		JOIN Paciente p ON t.id_paciente = p.id_paciente
		LEFT JOIN ObraSocial o ON p.id_obra_social = o.id_obra_social
		WHERE t.id_profesional = ?
		  AND t.fecha >= ? AND t.fecha < ?
		  AND t.deleted_at IS NULL
		ORDER BY t.fecha DESC
	`
	rows, err := f.DB.QueryContext(ctx, query, professionalID, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ProfessionalAppointment
	for rows.Next() {
		var a models.ProfessionalAppointment
		if err := rows.Scan(&a.ID, &a.Fecha, &a.Estado, &a.Motivo, &a.Paciente, &a.ObraSocial); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
