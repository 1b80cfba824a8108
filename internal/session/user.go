package session

import (
	"strings"

	"github.com/hic-health/hic-be/internal/models"
)

// Role is the lowercase role name used by clients and dashboard paths.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// RoleFromModel converts a stored role to its client form.
func RoleFromModel(r models.Role) Role {
	return Role(r.Slug())
}

// ParseRole accepts either case; unknown roles return false.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case RoleAdmin, RoleDoctor, RolePatient:
		return r, true
	}
	return "", false
}

// DashboardPath is where a user with this role lands after login.
func (r Role) DashboardPath() string {
	return "/" + string(r) + "/dashboard"
}

// User is the authenticated identity held by the gate. Password is only ever
// populated by a CredentialLookup and is cleared before the user is exposed.
type User struct {
	ID       string            `json:"id"`
	Email    string            `json:"email"`
	Name     string            `json:"name"`
	Role     Role              `json:"role"`
	Extras   map[string]string `json:"extras,omitempty"`
	Password string            `json:"password,omitempty"`
}

func (u User) withoutPassword() User {
	u.Password = ""
	if u.Extras != nil {
		extras := make(map[string]string, len(u.Extras))
		for k, v := range u.Extras {
			extras[k] = v
		}
		u.Extras = extras
	}
	return u
}
