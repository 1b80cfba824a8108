package handlers

import (
	"net/http"

	"github.com/hic-health/hic-be/internal/guard"
	"github.com/hic-health/hic-be/internal/http/respond"
	"github.com/hic-health/hic-be/internal/models"
	"github.com/hic-health/hic-be/internal/session"
	"github.com/hic-health/hic-be/internal/storage"
)

// DashboardHandler serves the role landing pages the guard redirects to.
type DashboardHandler struct {
	store        storage.Store
	exposeErrors bool
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(store storage.Store, exposeErrors bool) *DashboardHandler {
	return &DashboardHandler{store: store, exposeErrors: exposeErrors}
}

// Register attaches one guarded dashboard per role plus the login landing.
func (h *DashboardHandler) Register(mux *http.ServeMux) {
	for _, role := range []session.Role{session.RoleAdmin, session.RoleDoctor, session.RolePatient} {
		mux.Handle("GET "+role.DashboardPath(), guard.Require(role)(http.HandlerFunc(h.handleDashboard)))
	}
	mux.HandleFunc("GET "+guard.LoginPath, h.handleLogin)
}

type dashboardSummary struct {
	Appointments int `json:"appointments"`
	Upcoming     int `json:"upcoming"`
	Completed    int `json:"completed"`
	Users        int `json:"users,omitempty"`
}

func (h *DashboardHandler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	user := guard.UserFrom(r.Context())

	appts, err := h.store.ListAppointments(r.Context())
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "Failed to load dashboard", err, h.exposeErrors)
		return
	}

	var sum dashboardSummary
	for _, a := range appts {
		if !visibleTo(user, a.Appointment) {
			continue
		}
		sum.Appointments++
		if a.Status == models.StatusCompleted {
			sum.Completed++
		} else {
			sum.Upcoming++
		}
	}
	if user.Role == session.RoleAdmin {
		users, err := h.store.ListUsers(r.Context())
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "Failed to load dashboard", err, h.exposeErrors)
			return
		}
		sum.Users = len(users)
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"dashboard": user.Role,
		"user":      user,
		"summary":   sum,
	})
}

func visibleTo(u *session.User, a models.Appointment) bool {
	switch u.Role {
	case session.RoleDoctor:
		return a.DoctorID == u.ID
	case session.RolePatient:
		return a.PatientID == u.ID
	}
	return true
}

func (h *DashboardHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	respond.Error(w, http.StatusUnauthorized, "Authentication required", nil, false)
}

// NotFound answers every unmatched route.
func NotFound(w http.ResponseWriter, r *http.Request) {
	respond.Error(w, http.StatusNotFound, "Route not found", nil, false)
}
