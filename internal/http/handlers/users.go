package handlers

import (
	"log"
	"net/http"

	"github.com/hic-health/hic-be/internal/apperr"
	"github.com/hic-health/hic-be/internal/http/respond"
	"github.com/hic-health/hic-be/internal/storage"
)

// UserHandler serves the user, doctor, and appointment listings. None of the
// listings paginate or filter by caller.
type UserHandler struct {
	store        storage.Store
	exposeErrors bool
}

// NewUserHandler constructs the handler. exposeErrors adds driver error text
// to 5xx envelopes and must be off in production.
func NewUserHandler(store storage.Store, exposeErrors bool) *UserHandler {
	return &UserHandler{store: store, exposeErrors: exposeErrors}
}

// Register attaches listing routes to the mux.
func (h *UserHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/users", h.handleUsers)
	mux.HandleFunc("GET /api/users/doctors", h.handleDoctors)
	mux.HandleFunc("GET /api/users/appointments", h.handleAppointments)
}

func (h *UserHandler) handleUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		h.fail(w, "list users", "Failed to fetch users", err)
		return
	}
	respond.List(w, "users", users, len(users))
}

func (h *UserHandler) handleDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.store.ListActiveDoctors(r.Context())
	if err != nil {
		h.fail(w, "list doctors", "Failed to fetch doctors", err)
		return
	}
	respond.List(w, "doctors", doctors, len(doctors))
}

func (h *UserHandler) handleAppointments(w http.ResponseWriter, r *http.Request) {
	appts, err := h.store.ListAppointments(r.Context())
	if err != nil {
		h.fail(w, "list appointments", "Failed to fetch appointments", err)
		return
	}
	respond.List(w, "appointments", appts, len(appts))
}

func (h *UserHandler) fail(w http.ResponseWriter, op, message string, err error) {
	log.Printf("%s error: %v", op, err)
	respond.Error(w, apperr.KindOf(err).HTTPStatus(), message, err, h.exposeErrors)
}
