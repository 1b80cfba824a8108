package storage

import (
	"context"
	"errors"

	"github.com/hic-health/hic-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures user persistence needed by handlers, login, and seeding.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindByEmail matches email case-insensitively.
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.PublicUser, error)
	// ListActiveDoctors returns users with role DOCTOR and the active flag set.
	ListActiveDoctors(ctx context.Context) ([]models.DoctorListing, error)
	DeleteAllUsers(ctx context.Context) (int64, error)
}

// AppointmentStore captures appointment persistence.
type AppointmentStore interface {
	CreateAppointment(ctx context.Context, appt models.Appointment) (models.Appointment, error)
	// ListAppointments returns every appointment joined with its patient and
	// doctor, ascending by appointment date. It does not filter by caller.
	ListAppointments(ctx context.Context) ([]models.AppointmentDetail, error)
	DeleteAllAppointments(ctx context.Context) (int64, error)
}

// Store is the full data layer.
type Store interface {
	UserStore
	AppointmentStore
	Close()
}
