// Package seed resets the data store to a fixed demo fixture.
//
// The reset is destructive and not transactional: appointments are cleared,
// then users, then the fixture is inserted one row at a time. A failure part
// way through leaves whatever was already written.
package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hic-health/hic-be/internal/models"
	"github.com/hic-health/hic-be/internal/storage"
)

// DemoPassword is the plaintext password shared by every seeded account.
const DemoPassword = "password123"

// DefaultCost is the bcrypt work factor for seeded passwords.
const DefaultCost = 12

// Credential is a printable demo login.
type Credential struct {
	Email    string
	Role     models.Role
	Password string
}

// Summary reports what a seed run wrote.
type Summary struct {
	UsersDeleted        int64
	AppointmentsDeleted int64
	Users               []models.User
	Appointments        []models.Appointment
	Credentials         []Credential
}

// Seeder resets a store to the demo fixture.
type Seeder struct {
	Store storage.Store
	// Now anchors relative appointment dates. Defaults to time.Now.
	Now func() time.Time
	// Cost is the bcrypt cost. Defaults to DefaultCost.
	Cost int
	Logf func(format string, args ...any)
}

// New returns a Seeder with default clock, cost, and logger.
func New(store storage.Store) *Seeder {
	return &Seeder{Store: store, Now: time.Now, Cost: DefaultCost, Logf: log.Printf}
}

// Run clears the store and inserts 5 users and 3 appointments.
func (s *Seeder) Run(ctx context.Context) (Summary, error) {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	cost := s.Cost
	if cost == 0 {
		cost = DefaultCost
	}
	logf := s.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	var sum Summary
	var err error

	if sum.AppointmentsDeleted, err = s.Store.DeleteAllAppointments(ctx); err != nil {
		return sum, fmt.Errorf("clear appointments: %w", err)
	}
	if sum.UsersDeleted, err = s.Store.DeleteAllUsers(ctx); err != nil {
		return sum, fmt.Errorf("clear users: %w", err)
	}
	logf("seed: cleared %d appointments and %d users", sum.AppointmentsDeleted, sum.UsersDeleted)

	byKey := make(map[string]models.User)
	for _, f := range userFixtures() {
		u := f.user
		u.ID = uuid.NewString()
		hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), cost)
		if err != nil {
			return sum, fmt.Errorf("hash password for %s: %w", u.Email, err)
		}
		u.Password = string(hash)
		created, err := s.Store.CreateUser(ctx, u)
		if err != nil {
			return sum, fmt.Errorf("create user %s: %w", u.Email, err)
		}
		byKey[f.key] = created
		sum.Users = append(sum.Users, created)
		sum.Credentials = append(sum.Credentials, Credential{Email: created.Email, Role: created.Role, Password: DemoPassword})
	}
	logf("seed: created %d users", len(sum.Users))

	for _, f := range appointmentFixtures() {
		patient, doctor := byKey[f.patient], byKey[f.doctor]
		a := models.Appointment{
			ID:              uuid.NewString(),
			PatientID:       patient.ID,
			DoctorID:        doctor.ID,
			CreatedByID:     patient.ID,
			AppointmentDate: now.AddDate(0, 0, f.dayOffset),
			AppointmentTime: f.time,
			Status:          f.status,
			Reason:          f.reason,
			Fee:             f.fee,
			Notes:           f.notes,
		}
		created, err := s.Store.CreateAppointment(ctx, a)
		if err != nil {
			return sum, fmt.Errorf("create appointment for %s: %w", patient.Email, err)
		}
		sum.Appointments = append(sum.Appointments, created)
	}
	logf("seed: created %d appointments", len(sum.Appointments))

	return sum, nil
}
