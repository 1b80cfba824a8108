package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/hic-health/hic-be/internal/models"
	"github.com/hic-health/hic-be/internal/storage"
)

// CreateAppointment inserts an appointment. An empty ID is filled with a UUID.
func (s *Store) CreateAppointment(ctx context.Context, a models.Appointment) (models.Appointment, error) {
	if err := storage.ValidateAppointment(a); err != nil {
		return models.Appointment{}, err
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	err := s.pool.QueryRow(ctx, `
		INSERT INTO appointments (id, patient_id, doctor_id, created_by_id, appointment_date,
			appointment_time, status, reason, fee, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`,
		a.ID, a.PatientID, a.DoctorID, a.CreatedByID, a.AppointmentDate,
		a.AppointmentTime, a.Status, a.Reason, a.Fee, a.Notes,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return models.Appointment{}, classify("create appointment", err)
	}
	return a, nil
}

// ListAppointments returns all appointments with patient and doctor details,
// ascending by appointment date.
func (s *Store) ListAppointments(ctx context.Context) ([]models.AppointmentDetail, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT a.id, a.patient_id, a.doctor_id, a.created_by_id, a.appointment_date, a.appointment_time,
		       a.status, a.reason, a.fee, a.notes, a.created_at, a.updated_at,
		       p.first_name, p.last_name, p.email,
		       d.first_name, d.last_name, d.specialization
		FROM appointments a
		JOIN users p ON p.id = a.patient_id
		JOIN users d ON d.id = a.doctor_id
		ORDER BY a.appointment_date ASC, a.id`)
	if err != nil {
		return nil, classify("list appointments", err)
	}
	defer rows.Close()

	out := []models.AppointmentDetail{}
	for rows.Next() {
		var d models.AppointmentDetail
		if err := rows.Scan(
			&d.ID, &d.PatientID, &d.DoctorID, &d.CreatedByID, &d.AppointmentDate, &d.AppointmentTime,
			&d.Status, &d.Reason, &d.Fee, &d.Notes, &d.CreatedAt, &d.UpdatedAt,
			&d.Patient.FirstName, &d.Patient.LastName, &d.Patient.Email,
			&d.Doctor.FirstName, &d.Doctor.LastName, &d.Doctor.Specialization,
		); err != nil {
			return nil, classify("list appointments", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list appointments", err)
	}
	return out, nil
}

// DeleteAllAppointments removes every appointment.
func (s *Store) DeleteAllAppointments(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM appointments`)
	if err != nil {
		return 0, classify("delete appointments", err)
	}
	return tag.RowsAffected(), nil
}
