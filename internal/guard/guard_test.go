package guard

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hic-health/hic-be/internal/session"
)

func TestDecide(t *testing.T) {
	patient := &session.User{ID: "3", Role: session.RolePatient}
	doctor := &session.User{ID: "2", Role: session.RoleDoctor}
	admin := &session.User{ID: "1", Role: session.RoleAdmin}

	tests := []struct {
		name    string
		user    *session.User
		allowed []session.Role
		want    Decision
	}{
		{"anonymous any", nil, nil, Decision{RedirectTo: "/login"}},
		{"anonymous doctor route", nil, []session.Role{session.RoleDoctor}, Decision{RedirectTo: "/login"}},
		{"anonymous multi-role route", nil, []session.Role{session.RoleAdmin, session.RolePatient}, Decision{RedirectTo: "/login"}},
		{"patient on doctor route", patient, []session.Role{session.RoleDoctor}, Decision{RedirectTo: "/patient/dashboard"}},
		{"admin on patient route", admin, []session.Role{session.RolePatient}, Decision{RedirectTo: "/admin/dashboard"}},
		{"doctor on doctor route", doctor, []session.Role{session.RoleDoctor}, Decision{Allow: true}},
		{"doctor on shared route", doctor, []session.Role{session.RoleAdmin, session.RoleDoctor}, Decision{Allow: true}},
		{"any authenticated", patient, nil, Decision{Allow: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.user, tt.allowed...))
		})
	}
}

func TestRequire(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := Require(session.RoleDoctor)(ok)

	serve := func(u *session.User) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/doctor/dashboard", nil)
		if u != nil {
			req = req.WithContext(WithUser(req.Context(), u))
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	rec := serve(nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	rec = serve(&session.User{Role: session.RolePatient})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/patient/dashboard", rec.Header().Get("Location"))

	rec = serve(&session.User{Role: session.RoleDoctor})
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
