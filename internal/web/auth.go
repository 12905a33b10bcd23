package web

import (
	"log"
	"net/http"
	"strings"

	"github.com/characterforge/characterforge/internal/entities"
	"github.com/characterforge/characterforge/internal/session"
)

const sessionCookieName = session.CookieName

func (h *Handler) setupPage(w http.ResponseWriter, r *http.Request) {
	first, err := h.services.UserService.FirstLaunch(r.Context())
	if err != nil {
		redirectError(w, r, "/auth/login", err)
		return
	}
	if !first {
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
		return
	}
	h.render(w, r, "auth_setup", nil)
}

func (h *Handler) setupSubmit(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	password := strings.TrimSpace(r.FormValue("password"))
	confirm := strings.TrimSpace(r.FormValue("confirm"))
	display := strings.TrimSpace(r.FormValue("display_name"))

	if password != confirm {
		redirectFlash(w, r, "/auth/setup", "error", "passwords do not match")
		return
	}

	if _, err := h.services.UserService.SetupAdmin(r.Context(), username, password, display); err != nil {
		redirectError(w, r, "/auth/setup", err)
		return
	}

	redirectOK(w, r, "/auth/login", "admin account created, please log in")
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	first, err := h.services.UserService.FirstLaunch(r.Context())
	if err == nil && first {
		http.Redirect(w, r, "/auth/setup", http.StatusSeeOther)
		return
	}
	h.render(w, r, "auth_login", nil)
}

func (h *Handler) loginSubmit(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	password := strings.TrimSpace(r.FormValue("password"))
	roleHint := entities.Role(strings.TrimSpace(r.FormValue("role")))

	user, err := h.services.UserService.Authenticate(r.Context(), username, password, roleHint)
	if err != nil {
		redirectError(w, r, "/auth/login", err)
		return
	}

	token, err := h.sessions.Create(r.Context(), user.ID)
	if err != nil {
		redirectError(w, r, "/auth/login", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, dashboardPath(user.Role), http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if err := h.sessions.Destroy(r.Context(), cookie.Value); err != nil {
			log.Printf("failed to destroy session: %v", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	redirectOK(w, r, "/auth/login", "you have been logged out")
}
