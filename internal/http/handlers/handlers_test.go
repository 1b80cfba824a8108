package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hic-health/hic-be/internal/apperr"
	"github.com/hic-health/hic-be/internal/auth"
	"github.com/hic-health/hic-be/internal/models"
	"github.com/hic-health/hic-be/internal/seed"
	"github.com/hic-health/hic-be/internal/session"
	"github.com/hic-health/hic-be/internal/storage"
	"github.com/hic-health/hic-be/internal/storage/sqlite"
)

func seededStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st, err := sqlite.Open(filepath.Join(t.TempDir(), "handlers.db"))
	require.NoError(t, err)
	t.Cleanup(st.Close)

	s := seed.New(st)
	s.Cost = bcrypt.MinCost
	s.Logf = nil
	_, err = s.Run(context.Background())
	require.NoError(t, err)
	return st
}

func serve(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type listBody[T any] struct {
	Success bool         `json:"success"`
	Data    map[string]T `json:"data"`
	Count   int          `json:"count"`
}

func decodeList[T any](t *testing.T, rec *httptest.ResponseRecorder, key string) T {
	t.Helper()
	var body listBody[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	return body.Data[key]
}

func userMux(store storage.Store, expose bool) *http.ServeMux {
	mux := http.NewServeMux()
	NewUserHandler(store, expose).Register(mux)
	return mux
}

func TestListUsers(t *testing.T) {
	mux := userMux(seededStore(t), true)

	rec := serve(t, mux, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "$2a$")

	var body listBody[[]models.PublicUser]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Len(t, body.Data["users"], 5)
	assert.Equal(t, 5, body.Count)
}

func TestListDoctorsOnlyActiveDoctors(t *testing.T) {
	st := seededStore(t)
	hash, _ := bcrypt.GenerateFromPassword([]byte("x"), bcrypt.MinCost)
	_, err := st.CreateUser(context.Background(), models.User{
		Email: "inactive.doc@hic.com", Password: string(hash), FirstName: "Old", LastName: "Doc",
		Role: models.RoleDoctor, IsActive: false,
	})
	require.NoError(t, err)

	rec := serve(t, userMux(st, true), http.MethodGet, "/api/users/doctors", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	doctors := decodeList[[]models.DoctorListing](t, rec, "doctors")
	require.Len(t, doctors, 2)

	users, err := st.ListUsers(context.Background())
	require.NoError(t, err)
	byID := map[string]models.PublicUser{}
	for _, u := range users {
		byID[u.ID] = u
	}
	for _, d := range doctors {
		u := byID[d.ID]
		assert.Equal(t, models.RoleDoctor, u.Role)
		assert.True(t, u.IsActive)
		assert.NotNil(t, d.Specialization)
	}
	assert.NotContains(t, rec.Body.String(), "email")
}

func TestListAppointmentsSortedAndJoined(t *testing.T) {
	rec := serve(t, userMux(seededStore(t), true), http.MethodGet, "/api/users/appointments", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	appts := decodeList[[]models.AppointmentDetail](t, rec, "appointments")
	require.Len(t, appts, 3)
	for i := 1; i < len(appts); i++ {
		assert.False(t, appts[i].AppointmentDate.Before(appts[i-1].AppointmentDate))
	}
	assert.Equal(t, models.StatusCompleted, appts[0].Status)
	for _, a := range appts {
		assert.NotEmpty(t, a.Patient.Email)
		assert.NotEmpty(t, a.Doctor.LastName)
	}
}

type brokenStore struct {
	storage.Store
	err error
}

func (b brokenStore) ListUsers(context.Context) ([]models.PublicUser, error) { return nil, b.err }
func (b brokenStore) ListActiveDoctors(context.Context) ([]models.DoctorListing, error) {
	return nil, b.err
}
func (b brokenStore) ListAppointments(context.Context) ([]models.AppointmentDetail, error) {
	return nil, b.err
}

func TestListFailureEnvelope(t *testing.T) {
	failure := apperr.E(apperr.Infrastructure, "list users", errors.New("connection reset by peer"))
	paths := map[string]string{
		"/api/users":              "Failed to fetch users",
		"/api/users/doctors":      "Failed to fetch doctors",
		"/api/users/appointments": "Failed to fetch appointments",
	}

	for path, msg := range paths {
		t.Run(path, func(t *testing.T) {
			rec := serve(t, userMux(brokenStore{err: failure}, true), http.MethodGet, path, nil)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, msg, body["message"])
			assert.Contains(t, body["error"], "connection reset")

			rec = serve(t, userMux(brokenStore{err: failure}, false), http.MethodGet, path, nil)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.NotContains(t, rec.Body.String(), "connection reset")
		})
	}
}

func authMux(lookup session.CredentialLookup) *http.ServeMux {
	mux := http.NewServeMux()
	tokens := auth.NewTokenManager("test-secret", "hic-test", time.Hour)
	NewAuthHandler(lookup, tokens, 0, false).Register(mux, func(h http.Handler) http.Handler { return h })
	return mux
}

func TestLoginDemoCaseInsensitive(t *testing.T) {
	rec := serve(t, authMux(session.DefaultDemoTable()), http.MethodPost, "/api/auth/login",
		LoginRequest{Email: "ADMIN@HIC.COM", Password: "admin123"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "admin123")

	var body struct {
		Success bool          `json:"success"`
		Data    LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Data.Token)
	assert.Equal(t, session.RoleAdmin, body.Data.User.Role)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, body.Data.Token, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLoginWrongPassword(t *testing.T) {
	rec := serve(t, authMux(session.DefaultDemoTable()), http.MethodPost, "/api/auth/login",
		LoginRequest{Email: "doctor@hic.com", Password: "letmein"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Invalid email or password"}`, rec.Body.String())
}

func TestLoginAgainstSeededStore(t *testing.T) {
	mux := authMux(session.StoreLookup{Users: seededStore(t)})

	rec := serve(t, mux, http.MethodPost, "/api/auth/login", LoginRequest{Email: "Sarah.Johnson@hic.com", Password: seed.DemoPassword})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, mux, http.MethodPost, "/api/auth/login", LoginRequest{Email: "sarah.johnson@hic.com", Password: "admin123"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginBadJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	authMux(session.DefaultDemoTable()).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginLookupFailureIs500(t *testing.T) {
	st := brokenLookupStore{err: errors.New("db down")}
	rec := serve(t, authMux(session.StoreLookup{Users: st}), http.MethodPost, "/api/auth/login",
		LoginRequest{Email: "a@hic.com", Password: "x"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Login failed. Please try again."}`, rec.Body.String())
}

type brokenLookupStore struct {
	storage.UserStore
	err error
}

func (b brokenLookupStore) FindByEmail(context.Context, string) (models.User, error) {
	return models.User{}, b.err
}

func TestLogoutClearsCookie(t *testing.T) {
	rec := serve(t, authMux(session.DefaultDemoTable()), http.MethodPost, "/api/auth/logout", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestHealth(t *testing.T) {
	mux := http.NewServeMux()
	h := NewHealthHandler(time.Now().Add(-time.Minute))
	h.Register(mux)

	rec := serve(t, mux, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "OK", body["status"])
	assert.NotEmpty(t, body["message"])
	_, err := time.Parse(time.RFC3339, body["timestamp"])
	assert.NoError(t, err)
}
