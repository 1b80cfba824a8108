// Package sqlite is a gorm-backed store for local development and tests.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hic-health/hic-be/internal/apperr"
	"github.com/hic-health/hic-be/internal/models"
	"github.com/hic-health/hic-be/internal/storage"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ storage.Store = (*Store)(nil)

// Store persists users and appointments in a SQLite file through gorm.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the database at path and migrates the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Appointment{}); err != nil {
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	// gorm's uniqueIndex is case-sensitive; emails are not.
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_idx ON users (LOWER(email))`).Error; err != nil {
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() {
	if sqlDB, err := s.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := storage.ValidateUser(user); err != nil {
		return models.User{}, err
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return models.User{}, classify("create user", err)
	}
	return user, nil
}

func (s *Store) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return s.findOne(ctx, "find user by email", "LOWER(email) = LOWER(?)", strings.TrimSpace(email))
}

func (s *Store) FindByID(ctx context.Context, id string) (models.User, error) {
	return s.findOne(ctx, "find user by id", "id = ?", id)
}

// findOne uses Find+Limit rather than First so gorm does not log misses.
func (s *Store) findOne(ctx context.Context, op, cond string, arg any) (models.User, error) {
	var users []models.User
	res := s.db.WithContext(ctx).Where(cond, arg).Limit(1).Find(&users)
	if res.Error != nil {
		return models.User{}, classify(op, res.Error)
	}
	if len(users) == 0 {
		return models.User{}, apperr.E(apperr.NotFound, op, storage.ErrNotFound)
	}
	return users[0], nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.PublicUser, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("created_at, id").Find(&users).Error; err != nil {
		return nil, classify("list users", err)
	}
	out := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out, nil
}

func (s *Store) ListActiveDoctors(ctx context.Context) ([]models.DoctorListing, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Where("role = ? AND is_active = ?", models.RoleDoctor, true).
		Order("last_name, first_name").
		Find(&users).Error
	if err != nil {
		return nil, classify("list doctors", err)
	}
	out := make([]models.DoctorListing, 0, len(users))
	for _, u := range users {
		out = append(out, u.Listing())
	}
	return out, nil
}

func (s *Store) DeleteAllUsers(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.User{})
	if res.Error != nil {
		return 0, classify("delete users", res.Error)
	}
	return res.RowsAffected, nil
}

func (s *Store) CreateAppointment(ctx context.Context, a models.Appointment) (models.Appointment, error) {
	if err := storage.ValidateAppointment(a); err != nil {
		return models.Appointment{}, err
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	// Stored as text; a single offset keeps ORDER BY chronological.
	a.AppointmentDate = a.AppointmentDate.UTC()
	if err := s.db.WithContext(ctx).Create(&a).Error; err != nil {
		return models.Appointment{}, classify("create appointment", err)
	}
	return a, nil
}

type appointmentRow struct {
	models.Appointment
	PatientFirstName     string
	PatientLastName      string
	PatientEmail         string
	DoctorFirstName      string
	DoctorLastName       string
	DoctorSpecialization *string
}

func (s *Store) ListAppointments(ctx context.Context) ([]models.AppointmentDetail, error) {
	var rows []appointmentRow
	err := s.db.WithContext(ctx).
		Table("appointments AS a").
		Select(`a.*,
			p.first_name AS patient_first_name, p.last_name AS patient_last_name, p.email AS patient_email,
			d.first_name AS doctor_first_name, d.last_name AS doctor_last_name, d.specialization AS doctor_specialization`).
		Joins("JOIN users p ON p.id = a.patient_id").
		Joins("JOIN users d ON d.id = a.doctor_id").
		Order("a.appointment_date ASC, a.id").
		Scan(&rows).Error
	if err != nil {
		return nil, classify("list appointments", err)
	}

	out := make([]models.AppointmentDetail, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.AppointmentDetail{
			Appointment: r.Appointment,
			Patient: models.PatientSummary{
				FirstName: r.PatientFirstName,
				LastName:  r.PatientLastName,
				Email:     r.PatientEmail,
			},
			Doctor: models.DoctorSummary{
				FirstName:      r.DoctorFirstName,
				LastName:       r.DoctorLastName,
				Specialization: r.DoctorSpecialization,
			},
		})
	}
	return out, nil
}

func (s *Store) DeleteAllAppointments(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Appointment{})
	if res.Error != nil {
		return 0, classify("delete appointments", res.Error)
	}
	return res.RowsAffected, nil
}

func classify(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.E(apperr.NotFound, op, storage.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.E(apperr.ValidationFailed, op, storage.ErrAlreadyExists)
	case errors.Is(err, gorm.ErrForeignKeyViolated), errors.Is(err, gorm.ErrCheckConstraintViolated):
		return apperr.E(apperr.ValidationFailed, op, err)
	}
	return apperr.E(apperr.Infrastructure, op, err)
}
