package models

import "time"

// AppointmentStatus is the booking state. Only these three values are known;
// no transitions between them are modeled.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "SCHEDULED"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCompleted AppointmentStatus = "COMPLETED"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted:
		return true
	}
	return false
}

// Appointment references one patient, one doctor, and the user who booked it.
// Nothing prevents two appointments for the same doctor and slot, and Fee is
// not tied to the doctor's consultation fee.
type Appointment struct {
	ID              string            `json:"id" gorm:"primaryKey;type:text"`
	PatientID       string            `json:"patientId" gorm:"not null;index"`
	DoctorID        string            `json:"doctorId" gorm:"not null;index"`
	CreatedByID     string            `json:"createdById" gorm:"not null"`
	AppointmentDate time.Time         `json:"appointmentDate" gorm:"not null;index"`
	AppointmentTime string            `json:"appointmentTime" gorm:"not null"`
	Status          AppointmentStatus `json:"status" gorm:"not null"`
	Reason          string            `json:"reason"`
	Fee             float64           `json:"fee"`
	Notes           *string           `json:"notes,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// PatientSummary is the patient side of an appointment listing.
type PatientSummary struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// DoctorSummary is the doctor side of an appointment listing.
type DoctorSummary struct {
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Specialization *string `json:"specialization"`
}

// AppointmentDetail is an appointment joined with its patient and doctor.
type AppointmentDetail struct {
	Appointment
	Patient PatientSummary `json:"patient"`
	Doctor  DoctorSummary  `json:"doctor"`
}
