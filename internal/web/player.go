package web

import (
	"net/http"

	"github.com/characterforge/characterforge/internal/entities"
)

func (h *Handler) playerDashboard(w http.ResponseWriter, r *http.Request, actor *entities.User) {
	campaigns, pending, err := h.services.CampaignService.CampaignsForUser(r.Context(), actor.ID)
	if err != nil {
		redirectError(w, r, "/auth/login", err)
		return
	}

	characters, err := h.services.CharacterService.ListByOwner(r.Context(), actor.ID)
	if err != nil {
		redirectError(w, r, "/auth/login", err)
		return
	}

	h.render(w, r, "player_dashboard", map[string]any{
		"Actor":      actor,
		"Campaigns":  campaigns,
		"Pending":    pending,
		"Characters": characters,
	})
}

func (h *Handler) playerBrowse(w http.ResponseWriter, r *http.Request, actor *entities.User) {
	available, err := h.services.CampaignService.Browse(r.Context(), actor.ID)
	if err != nil {
		redirectError(w, r, "/player/", err)
		return
	}

	h.render(w, r, "player_browse", map[string]any{
		"Actor":     actor,
		"Campaigns": available,
	})
}

func (h *Handler) playerJoin(w http.ResponseWriter, r *http.Request, actor *entities.User) {
	if _, err := h.services.CampaignService.Join(r.Context(), r.PathValue("id"), actor.ID); err != nil {
		redirectError(w, r, "/player/", err)
		return
	}

	redirectOK(w, r, "/player/", "join request sent, wait for the DM to approve")
}
