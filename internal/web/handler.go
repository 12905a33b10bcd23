// Package web is the HTTP surface: cookie-session auth, role-gated pages
// for admins, DMs, and players, the character wizard, and the JSON endpoints
// the wizard's AI assistant calls.
package web

import (
	"net/http"

	"github.com/characterforge/characterforge/internal/dice"
	"github.com/characterforge/characterforge/internal/services"
	"github.com/characterforge/characterforge/internal/session"
)

// Handler serves every route. It owns no state beyond the services, the
// session store, and a dice roller.
type Handler struct {
	services *services.Provider
	sessions session.Store
	dice     dice.Roller
}

// Config holds configuration for the web handler
type Config struct {
	Services *services.Provider
	Sessions session.Store

	// Dice defaults to the random roller
	Dice dice.Roller
}

// NewHandler creates the web handler
func NewHandler(cfg *Config) *Handler {
	if cfg == nil {
		panic("web config cannot be nil")
	}
	if cfg.Services == nil {
		panic("web handler requires services")
	}
	if cfg.Sessions == nil {
		panic("web handler requires a session store")
	}
	roller := cfg.Dice
	if roller == nil {
		roller = dice.NewRandomRoller()
	}
	return &Handler{
		services: cfg.Services,
		sessions: cfg.Sessions,
		dice:     roller,
	}
}

// Routes builds the route table.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.home)

	mux.HandleFunc("GET /auth/setup", h.setupPage)
	mux.HandleFunc("POST /auth/setup", h.setupSubmit)
	mux.HandleFunc("GET /auth/login", h.loginPage)
	mux.HandleFunc("POST /auth/login", h.loginSubmit)
	mux.HandleFunc("GET /auth/logout", h.logout)

	mux.HandleFunc("GET /admin/", h.requireRole(roleAdmin, h.adminDashboard))
	mux.HandleFunc("POST /admin/users/create", h.requireRole(roleAdmin, h.adminCreateUser))
	mux.HandleFunc("POST /admin/users/{id}/set_role", h.requireRole(roleAdmin, h.adminSetRole))
	mux.HandleFunc("POST /admin/users/{id}/reset_password", h.requireRole(roleAdmin, h.adminResetPassword))
	mux.HandleFunc("POST /admin/users/{id}/delete", h.requireRole(roleAdmin, h.adminDeleteUser))
	mux.HandleFunc("POST /admin/campaigns/{id}/delete", h.requireRole(roleAdmin, h.adminDeleteCampaign))

	mux.HandleFunc("GET /dm/", h.requireRole(roleDM, h.dmDashboard))
	mux.HandleFunc("POST /dm/campaigns/create", h.requireRole(roleDM, h.dmCreateCampaign))
	mux.HandleFunc("POST /dm/campaigns/{id}/delete", h.requireRole(roleDM, h.dmDeleteCampaign))
	mux.HandleFunc("POST /dm/campaigns/{id}/approve/{uid}", h.requireRole(roleDM, h.dmApprovePlayer))
	mux.HandleFunc("POST /dm/campaigns/{id}/kick/{uid}", h.requireRole(roleDM, h.dmKickPlayer))

	mux.HandleFunc("GET /player/", h.requireLogin(h.playerDashboard))
	mux.HandleFunc("GET /player/campaigns/browse", h.requireLogin(h.playerBrowse))
	mux.HandleFunc("POST /player/campaigns/{id}/join", h.requireLogin(h.playerJoin))

	mux.HandleFunc("GET /campaigns/{id}", h.requireLogin(h.campaignView))

	mux.HandleFunc("GET /characters/new", h.requireLogin(h.characterWizard))
	mux.HandleFunc("POST /characters/create", h.requireLogin(h.characterCreate))
	mux.HandleFunc("GET /characters/{id}/sheet", h.requireLogin(h.characterSheet))
	mux.HandleFunc("POST /characters/{id}/delete", h.requireLogin(h.characterDelete))
	mux.HandleFunc("GET /characters/api/roll_abilities", h.requireLoginJSON(h.rollAbilities))
	mux.HandleFunc("POST /characters/ai_step", h.requireLoginJSON(h.aiStep))
	mux.HandleFunc("POST /characters/ai_npc", h.requireLoginJSON(h.aiNPC))

	mux.HandleFunc("GET /templates/", h.requireLogin(h.templateLibrary))
	mux.HandleFunc("POST /templates/save_from_char/{id}", h.requireLogin(h.templateSave))
	mux.HandleFunc("GET /templates/api/list", h.requireLoginJSON(h.templateAPIList))
	mux.HandleFunc("POST /templates/api/use/{id}", h.requireLoginJSON(h.templateAPIUse))
	mux.HandleFunc("POST /templates/{id}/delete", h.requireLogin(h.templateDelete))

	return mux
}

// home sends users to their role's dashboard, or to login/setup.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	if user == nil {
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, dashboardPath(user.Role), http.StatusSeeOther)
}
