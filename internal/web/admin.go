package web

import (
	"net/http"
	"strings"

	"github.com/characterforge/characterforge/internal/entities"
	"github.com/characterforge/characterforge/internal/services/user"
)

func (h *Handler) adminDashboard(w http.ResponseWriter, r *http.Request, actor *entities.User) {
	users, err := h.services.UserService.List(r.Context())
	if err != nil {
		redirectError(w, r, "/auth/login", err)
		return
	}
	campaigns, err := h.services.CampaignService.List(r.Context())
	if err != nil {
		redirectError(w, r, "/auth/login", err)
		return
	}

	h.render(w, r, "admin_dashboard", map[string]any{
		"Actor":     actor,
		"Users":     users,
		"Campaigns": campaigns,
	})
}

func (h *Handler) adminCreateUser(w http.ResponseWriter, r *http.Request, actor *entities.User) {
	input := &user.CreateUserInput{
		Username:    r.FormValue("username"),
		Password:    r.FormValue("password"),
		Role:        entities.Role(strings.TrimSpace(r.FormValue("role"))),
		DisplayName: r.FormValue("display_name"),
	}

	created, err := h.services.UserService.CreateUser(r.Context(), input)
	if err != nil {
		redirectError(w, r, "/admin/", err)
		return
	}

	redirectOK(w, r, "/admin/", "user '"+created.Username+"' created as "+string(created.Role))
}

func (h *Handler) adminSetRole(w http.ResponseWriter, r *http.Request, actor *entities.User) {
	role := entities.Role(strings.TrimSpace(r.FormValue("role")))

	updated, err := h.services.UserService.SetRole(r.Context(), r.PathValue("id"), role)
	if err != nil {
		redirectError(w, r, "/admin/", err)
		return
	}

	redirectOK(w, r, "/admin/", updated.Username+" is now "+string(role))
}

func (h *Handler) adminResetPassword(w http.ResponseWriter, r *http.Request, actor *entities.User) {
	userID := r.PathValue("id")

	if err := h.services.UserService.ResetPassword(r.Context(), userID, r.FormValue("password")); err != nil {
		redirectError(w, r, "/admin/", err)
		return
	}

	redirectOK(w, r, "/admin/", "password reset")
}

func (h *Handler) adminDeleteUser(w http.ResponseWriter, r *http.Request, actor *entities.User) {
	userID := r.PathValue("id")

	if err := h.services.UserService.DeleteUser(r.Context(), actor.ID, userID); err != nil {
		redirectError(w, r, "/admin/", err)
		return
	}

	// Any open sessions for the deleted account stop working immediately.
	if err := h.sessions.DestroyAllForUser(r.Context(), userID); err != nil {
		redirectError(w, r, "/admin/", err)
		return
	}

	redirectOK(w, r, "/admin/", "user deleted")
}

func (h *Handler) adminDeleteCampaign(w http.ResponseWriter, r *http.Request, actor *entities.User) {
	if err := h.services.CampaignService.Delete(r.Context(), r.PathValue("id")); err != nil {
		redirectError(w, r, "/admin/", err)
		return
	}
	redirectOK(w, r, "/admin/", "campaign deleted")
}
