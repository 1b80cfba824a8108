package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/hic-health/hic-be/internal/auth"
	"github.com/hic-health/hic-be/internal/guard"
	"github.com/hic-health/hic-be/internal/http/respond"
	"github.com/hic-health/hic-be/internal/middleware"
	"github.com/hic-health/hic-be/internal/session"
)

// LoginRequest is the POST /api/auth/login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the data of a successful login.
type LoginResponse struct {
	Token string        `json:"token"`
	User  *session.User `json:"user"`
}

// AuthHandler owns login, logout, and the current-user endpoint.
type AuthHandler struct {
	lookup       session.CredentialLookup
	tokens       *auth.TokenManager
	delay        time.Duration
	secureCookie bool
}

// NewAuthHandler constructs the handler. Each login runs through its own
// session.Gate over lookup, so no state is shared between callers.
func NewAuthHandler(lookup session.CredentialLookup, tokens *auth.TokenManager, delay time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{lookup: lookup, tokens: tokens, delay: delay, secureCookie: secureCookie}
}

// Register attaches auth routes to the mux. limit wraps the login route.
func (h *AuthHandler) Register(mux *http.ServeMux, limit func(http.Handler) http.Handler) {
	mux.Handle("POST /api/auth/login", limit(http.HandlerFunc(h.handleLogin)))
	mux.HandleFunc("POST /api/auth/logout", h.handleLogout)
	mux.Handle("GET /api/auth/me", guard.Require()(http.HandlerFunc(h.handleMe)))
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload", nil, false)
		return
	}

	gate := session.NewGate(h.lookup, h.delay)
	res := gate.Login(r.Context(), req.Email, req.Password)
	if !res.Success {
		status := http.StatusUnauthorized
		if res.Error != session.MsgInvalidCredentials {
			status = http.StatusInternalServerError
		}
		respond.Write(w, status, res)
		return
	}

	token, err := h.tokens.Generate(*res.User)
	if err != nil {
		log.Printf("login: sign token for %s: %v", res.User.ID, err)
		respond.Write(w, http.StatusInternalServerError, session.Result{Error: session.MsgLoginFailed})
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokens.TTL().Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	respond.JSON(w, http.StatusOK, LoginResponse{Token: token, User: res.User})
}

// Tokens are stateless; logout only drops the browser cookie.
func (h *AuthHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	respond.Message(w, http.StatusOK, "Logged out")
}

func (h *AuthHandler) handleMe(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]any{"user": guard.UserFrom(r.Context())})
}
