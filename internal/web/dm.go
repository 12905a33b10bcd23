package web

import (
	"net/http"

	"github.com/characterforge/characterforge/internal/entities"
	apperr "github.com/characterforge/characterforge/internal/errors"
)

func (h *Handler) dmDashboard(w http.ResponseWriter, r *http.Request, actor *entities.User) {
	var (
		campaigns []*entities.Campaign
		err       error
	)
	if actor.Role == entities.RoleAdmin {
		campaigns, err = h.services.CampaignService.List(r.Context())
	} else {
		campaigns, err = h.services.CampaignService.ListByDM(r.Context(), actor.ID)
	}
	if err != nil {
		redirectError(w, r, "/auth/login", err)
		return
	}

	templates, err := h.services.TemplateService.List(r.Context(), actor.ID, true)
	if err != nil {
		redirectError(w, r, "/auth/login", err)
		return
	}

	h.render(w, r, "dm_dashboard", map[string]any{
		"Actor":        actor,
		"Campaigns":    campaigns,
		"NPCTemplates": templates,
	})
}

func (h *Handler) dmCreateCampaign(w http.ResponseWriter, r *http.Request, actor *entities.User) {
	campaign, err := h.services.CampaignService.Create(r.Context(), actor.ID, r.FormValue("name"), r.FormValue("description"))
	if err != nil {
		redirectError(w, r, "/dm/", err)
		return
	}

	redirectOK(w, r, "/campaigns/"+campaign.ID, "campaign '"+campaign.Name+"' created")
}

// ownsCampaign gates DM campaign mutations: admins on any campaign, DMs on
// their own.
func (h *Handler) ownsCampaign(r *http.Request, actor *entities.User, campaignID string) (*entities.Campaign, error) {
	campaign, err := h.services.CampaignService.Get(r.Context(), campaignID)
	if err != nil {
		return nil, err
	}
	if actor.Role != entities.RoleAdmin && campaign.DMID != actor.ID {
		return nil, apperr.PermissionDenied("not your campaign")
	}
	return campaign, nil
}

func (h *Handler) dmDeleteCampaign(w http.ResponseWriter, r *http.Request, actor *entities.User) {
	campaignID := r.PathValue("id")

	if _, err := h.ownsCampaign(r, actor, campaignID); err != nil {
		redirectError(w, r, "/dm/", err)
		return
	}
	if err := h.services.CampaignService.Delete(r.Context(), campaignID); err != nil {
		redirectError(w, r, "/dm/", err)
		return
	}

	redirectOK(w, r, "/dm/", "campaign deleted")
}

func (h *Handler) dmApprovePlayer(w http.ResponseWriter, r *http.Request, actor *entities.User) {
	campaignID := r.PathValue("id")
	userID := r.PathValue("uid")

	if _, err := h.ownsCampaign(r, actor, campaignID); err != nil {
		redirectError(w, r, "/dm/", err)
		return
	}
	if err := h.services.CampaignService.Approve(r.Context(), campaignID, userID, actor); err != nil {
		redirectError(w, r, "/campaigns/"+campaignID, err)
		return
	}

	redirectOK(w, r, "/campaigns/"+campaignID, "player approved")
}

func (h *Handler) dmKickPlayer(w http.ResponseWriter, r *http.Request, actor *entities.User) {
	campaignID := r.PathValue("id")
	userID := r.PathValue("uid")

	if _, err := h.ownsCampaign(r, actor, campaignID); err != nil {
		redirectError(w, r, "/dm/", err)
		return
	}
	if err := h.services.CampaignService.Kick(r.Context(), campaignID, userID); err != nil {
		redirectError(w, r, "/campaigns/"+campaignID, err)
		return
	}

	redirectOK(w, r, "/campaigns/"+campaignID, "player removed from campaign")
}
