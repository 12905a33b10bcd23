package web

import (
	"net/http"

	"github.com/characterforge/characterforge/internal/entities"
	apperr "github.com/characterforge/characterforge/internal/errors"
)

// requiredRole names the minimum role a route needs.
type requiredRole int

const (
	roleAdmin requiredRole = iota
	roleDM                 // DM or admin
)

// userHandler is a handler that runs with the resolved user.
type userHandler func(w http.ResponseWriter, r *http.Request, user *entities.User)

// currentUser resolves the session cookie to a user, nil when not logged in.
func (h *Handler) currentUser(r *http.Request) *entities.User {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil
	}
	userID, err := h.sessions.Resolve(r.Context(), cookie.Value)
	if err != nil {
		return nil
	}
	user, err := h.services.UserService.Get(r.Context(), userID)
	if err != nil {
		return nil
	}
	return user
}

func (h *Handler) requireLogin(next userHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := h.currentUser(r)
		if user == nil {
			redirectFlash(w, r, "/auth/login", "error", "please log in")
			return
		}
		next(w, r, user)
	}
}

func (h *Handler) requireRole(role requiredRole, next userHandler) http.HandlerFunc {
	return h.requireLogin(func(w http.ResponseWriter, r *http.Request, user *entities.User) {
		if !allows(role, user.Role) {
			redirectFlash(w, r, "/auth/login", "error", "access denied")
			return
		}
		next(w, r, user)
	})
}

// requireLoginJSON guards the API endpoints the wizard calls with fetch.
func (h *Handler) requireLoginJSON(next userHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := h.currentUser(r)
		if user == nil {
			writeJSONError(w, apperr.Unauthenticated("not logged in"))
			return
		}
		next(w, r, user)
	}
}

func allows(required requiredRole, actual entities.Role) bool {
	switch required {
	case roleAdmin:
		return actual == entities.RoleAdmin
	case roleDM:
		return actual == entities.RoleDM || actual == entities.RoleAdmin
	}
	return false
}

func dashboardPath(role entities.Role) string {
	switch role {
	case entities.RoleAdmin:
		return "/admin/"
	case entities.RoleDM:
		return "/dm/"
	default:
		return "/player/"
	}
}
