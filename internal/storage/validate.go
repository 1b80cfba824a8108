package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hic-health/hic-be/internal/apperr"
	"github.com/hic-health/hic-be/internal/models"
)

// ValidateUser checks the fields every store requires before insert.
func ValidateUser(u models.User) error {
	switch {
	case strings.TrimSpace(u.Email) == "":
		return apperr.E(apperr.ValidationFailed, "create user", errors.New("email is required"))
	case u.Password == "":
		return apperr.E(apperr.ValidationFailed, "create user", errors.New("password hash is required"))
	case !u.Role.Valid():
		return apperr.E(apperr.ValidationFailed, "create user", fmt.Errorf("unknown role %q", u.Role))
	}
	return nil
}

// ValidateAppointment checks references and status before insert.
func ValidateAppointment(a models.Appointment) error {
	switch {
	case a.PatientID == "" || a.DoctorID == "" || a.CreatedByID == "":
		return apperr.E(apperr.ValidationFailed, "create appointment", errors.New("patient, doctor, and creator are required"))
	case a.AppointmentDate.IsZero():
		return apperr.E(apperr.ValidationFailed, "create appointment", errors.New("appointment date is required"))
	case !a.Status.Valid():
		return apperr.E(apperr.ValidationFailed, "create appointment", fmt.Errorf("unknown status %q", a.Status))
	}
	return nil
}
