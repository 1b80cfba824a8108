package models

import (
	"strings"
	"time"
)

// Role tags a user as patient, doctor, or administrator.
type Role string

const (
	RolePatient Role = "PATIENT"
	RoleDoctor  Role = "DOCTOR"
	RoleAdmin   Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

// Slug is the lowercase form used in client paths such as /doctor/dashboard.
func (r Role) Slug() string {
	return strings.ToLower(string(r))
}

// User captures identity, profile, and doctor-only fields in a single row.
// Doctor fields are nullable and are not restricted to RoleDoctor.
type User struct {
	ID              string     `json:"id" gorm:"primaryKey;type:text"`
	Email           string     `json:"email" gorm:"uniqueIndex;not null"`
	Password        string     `json:"-" gorm:"not null"`
	FirstName       string     `json:"firstName" gorm:"not null"`
	LastName        string     `json:"lastName" gorm:"not null"`
	Phone           string     `json:"phone"`
	DateOfBirth     *time.Time `json:"dateOfBirth,omitempty"`
	Role            Role       `json:"role" gorm:"not null;index"`
	Specialization  *string    `json:"specialization,omitempty"`
	ConsultationFee *float64   `json:"consultationFee,omitempty"`
	Bio             *string    `json:"bio,omitempty"`
	IsVerified      bool       `json:"isVerified" gorm:"not null"`
	IsActive        bool       `json:"isActive" gorm:"not null"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// FullName joins first and last name.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Public projects the user to the fields safe to return from listing endpoints.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:              u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Phone:           u.Phone,
		DateOfBirth:     u.DateOfBirth,
		Role:            u.Role,
		Specialization:  u.Specialization,
		ConsultationFee: u.ConsultationFee,
		Bio:             u.Bio,
		IsVerified:      u.IsVerified,
		IsActive:        u.IsActive,
		CreatedAt:       u.CreatedAt,
	}
}

// PublicUser is User without credentials.
type PublicUser struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Phone           string     `json:"phone"`
	DateOfBirth     *time.Time `json:"dateOfBirth,omitempty"`
	Role            Role       `json:"role"`
	Specialization  *string    `json:"specialization,omitempty"`
	ConsultationFee *float64   `json:"consultationFee,omitempty"`
	Bio             *string    `json:"bio,omitempty"`
	IsVerified      bool       `json:"isVerified"`
	IsActive        bool       `json:"isActive"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// DoctorListing is the public-facing view of an active doctor.
type DoctorListing struct {
	ID              string   `json:"id"`
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	Specialization  *string  `json:"specialization"`
	ConsultationFee *float64 `json:"consultationFee"`
	Bio             *string  `json:"bio"`
	IsVerified      bool     `json:"isVerified"`
}

// Listing projects the user to the doctor directory fields.
func (u User) Listing() DoctorListing {
	return DoctorListing{
		ID:              u.ID,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Specialization:  u.Specialization,
		ConsultationFee: u.ConsultationFee,
		Bio:             u.Bio,
		IsVerified:      u.IsVerified,
	}
}
