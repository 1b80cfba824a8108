package seed

import (
	"time"

	"github.com/hic-health/hic-be/internal/models"
)

type userFixture struct {
	key  string
	user models.User
}

type appointmentFixture struct {
	patient, doctor string
	dayOffset       int
	time            string
	status          models.AppointmentStatus
	reason          string
	fee             float64
	notes           *string
}

func strPtr(s string) *string   { return &s }
func feePtr(f float64) *float64 { return &f }
func dob(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func userFixtures() []userFixture {
	return []userFixture{
		{key: "admin", user: models.User{
			Email: "admin@hic.com", FirstName: "System", LastName: "Administrator",
			Phone: "+1-555-0100", Role: models.RoleAdmin, IsVerified: true, IsActive: true,
		}},
		{key: "sarah", user: models.User{
			Email: "sarah.johnson@hic.com", FirstName: "Sarah", LastName: "Johnson",
			Phone: "+1-555-0101", DateOfBirth: dob(1980, time.March, 14), Role: models.RoleDoctor,
			Specialization: strPtr("Cardiology"), ConsultationFee: feePtr(150),
			Bio: strPtr("Board-certified cardiologist with 15 years of experience in preventive care."),
			IsVerified: true, IsActive: true,
		}},
		{key: "michael", user: models.User{
			Email: "michael.chen@hic.com", FirstName: "Michael", LastName: "Chen",
			Phone: "+1-555-0102", DateOfBirth: dob(1985, time.July, 2), Role: models.RoleDoctor,
			Specialization: strPtr("Dermatology"), ConsultationFee: feePtr(120),
			Bio: strPtr("Dermatologist focused on skin cancer screening and chronic skin conditions."),
			IsVerified: true, IsActive: true,
		}},
		{key: "john", user: models.User{
			Email: "john.doe@example.com", FirstName: "John", LastName: "Doe",
			Phone: "+1-555-0201", DateOfBirth: dob(1990, time.January, 20), Role: models.RolePatient,
			IsVerified: true, IsActive: true,
		}},
		{key: "jane", user: models.User{
			Email: "jane.smith@example.com", FirstName: "Jane", LastName: "Smith",
			Phone: "+1-555-0202", DateOfBirth: dob(1992, time.November, 5), Role: models.RolePatient,
			IsVerified: false, IsActive: true,
		}},
	}
}

// Offsets are days from the seed run; the completed visit always lands in the past.
func appointmentFixtures() []appointmentFixture {
	return []appointmentFixture{
		{patient: "john", doctor: "sarah", dayOffset: 1, time: "10:00",
			status: models.StatusScheduled, reason: "Annual heart checkup", fee: 150},
		{patient: "jane", doctor: "michael", dayOffset: 2, time: "14:30",
			status: models.StatusConfirmed, reason: "Skin rash consultation", fee: 120},
		{patient: "john", doctor: "michael", dayOffset: -1, time: "09:00",
			status: models.StatusCompleted, reason: "Mole examination", fee: 100,
			notes: strPtr("Benign. Follow up in 12 months.")},
	}
}
