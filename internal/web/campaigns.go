package web

import (
	"net/http"

	"github.com/characterforge/characterforge/internal/entities"
	apperr "github.com/characterforge/characterforge/internal/errors"
	"github.com/characterforge/characterforge/internal/services/campaign"
)

func (h *Handler) campaignView(w http.ResponseWriter, r *http.Request, actor *entities.User) {
	c, err := h.services.CampaignService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		redirectError(w, r, dashboardPath(actor.Role), err)
		return
	}

	canAccess, err := h.services.CampaignService.CanAccess(r.Context(), c, actor)
	if err != nil {
		redirectError(w, r, dashboardPath(actor.Role), err)
		return
	}
	if !canAccess {
		redirectError(w, r, dashboardPath(actor.Role),
			apperr.PermissionDenied("you don't have access to this campaign"))
		return
	}

	pcs, npcs, err := h.services.CharacterService.ListByCampaign(r.Context(), c.ID)
	if err != nil {
		redirectError(w, r, dashboardPath(actor.Role), err)
		return
	}

	isDM := c.DMID == actor.ID || actor.Role == entities.RoleAdmin

	var members, pending []*campaign.Member
	if isDM {
		members, pending, err = h.services.CampaignService.Members(r.Context(), c.ID)
		if err != nil {
			redirectError(w, r, dashboardPath(actor.Role), err)
			return
		}
	}

	var myCharacter *entities.Character
	for _, pc := range pcs {
		if pc.OwnerID == actor.ID {
			myCharacter = pc
			break
		}
	}

	h.render(w, r, "campaign_view", map[string]any{
		"Actor":       actor,
		"Campaign":    c,
		"PCs":         pcs,
		"NPCs":        npcs,
		"IsDM":        isDM,
		"Members":     members,
		"Pending":     pending,
		"MyCharacter": myCharacter,
	})
}
