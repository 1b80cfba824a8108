package session

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/hic-health/hic-be/internal/apperr"
	"github.com/hic-health/hic-be/internal/storage"
)

// ErrInvalidCredentials is returned by a CredentialLookup when the email is
// unknown or the password does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialLookup resolves an email/password pair to a user.
type CredentialLookup interface {
	Lookup(ctx context.Context, email, password string) (User, error)
}

// DemoEntry is one row of the static demo credential table.
type DemoEntry struct {
	Password string
	Role     Role
	Name     string
	ID       string
	Extras   map[string]string
}

// DemoTable maps lowercase email to a plaintext demo credential. It is a
// fixture: no hashing, persistence, or expiry.
type DemoTable map[string]DemoEntry

// DefaultDemoTable returns the built-in demo accounts.
func DefaultDemoTable() DemoTable {
	return DemoTable{
		"admin@hic.com": {
			Password: "admin123",
			Role:     RoleAdmin,
			Name:     "Admin User",
			ID:       "1",
			Extras:   map[string]string{"department": "Administration"},
		},
		"doctor@hic.com": {
			Password: "doctor123",
			Role:     RoleDoctor,
			Name:     "Dr. Sarah Johnson",
			ID:       "2",
			Extras:   map[string]string{"specialization": "Cardiology", "licenseNumber": "MD-12345"},
		},
		"patient@hic.com": {
			Password: "patient123",
			Role:     RolePatient,
			Name:     "John Doe",
			ID:       "3",
			Extras:   map[string]string{"dateOfBirth": "1990-01-20", "phone": "+1-555-0201"},
		},
	}
}

// Lookup matches email case-insensitively and compares the password exactly.
func (t DemoTable) Lookup(_ context.Context, email, password string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	entry, ok := t[email]
	if !ok || entry.Password != password {
		return User{}, ErrInvalidCredentials
	}
	return User{
		ID:       entry.ID,
		Email:    email,
		Name:     entry.Name,
		Role:     entry.Role,
		Extras:   entry.Extras,
		Password: entry.Password,
	}, nil
}

// StoreLookup authenticates against persisted users with bcrypt hashes.
type StoreLookup struct {
	Users storage.UserStore
}

// Lookup treats unknown, inactive, and wrong-password users alike.
func (l StoreLookup) Lookup(ctx context.Context, email, password string) (User, error) {
	u, err := l.Users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if apperr.KindOf(err) == apperr.NotFound {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if !u.IsActive {
		return User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}

	extras := map[string]string{}
	if u.Phone != "" {
		extras["phone"] = u.Phone
	}
	if u.Specialization != nil {
		extras["specialization"] = *u.Specialization
	}
	return User{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.FullName(),
		Role:     RoleFromModel(u.Role),
		Extras:   extras,
		Password: u.Password,
	}, nil
}
