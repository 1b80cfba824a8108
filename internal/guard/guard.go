// Package guard decides whether the current user may see a role-restricted
// route, and where to send them when they may not.
package guard

import (
	"context"
	"net/http"

	"github.com/hic-health/hic-be/internal/session"
)

// LoginPath is where anonymous users are sent.
const LoginPath = "/login"

// Decision is the outcome of evaluating a guard.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Decide is a pure function of the current user and the allowed roles. An
// empty allowed set admits any authenticated user. A user whose role is not
// allowed goes to their own dashboard, not to the login page.
func Decide(user *session.User, allowed ...session.Role) Decision {
	if user == nil {
		return Decision{RedirectTo: LoginPath}
	}
	if len(allowed) > 0 && !contains(allowed, user.Role) {
		return Decision{RedirectTo: user.Role.DashboardPath()}
	}
	return Decision{Allow: true}
}

func contains(roles []session.Role, r session.Role) bool {
	for _, candidate := range roles {
		if candidate == r {
			return true
		}
	}
	return false
}

type ctxKey struct{}

// WithUser stores the authenticated user on ctx.
func WithUser(ctx context.Context, u *session.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// UserFrom returns the user stored by WithUser, or nil.
func UserFrom(ctx context.Context) *session.User {
	u, _ := ctx.Value(ctxKey{}).(*session.User)
	return u
}

// Require wraps next so it only runs when Decide allows the request's user.
// The decision is re-evaluated on every request.
func Require(allowed ...session.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := Decide(UserFrom(r.Context()), allowed...)
			if !d.Allow {
				http.Redirect(w, r, d.RedirectTo, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
