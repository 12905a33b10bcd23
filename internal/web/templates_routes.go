package web

import (
	"net/http"

	"github.com/characterforge/characterforge/internal/entities"
)

func (h *Handler) templateLibrary(w http.ResponseWriter, r *http.Request, actor *entities.User) {
	pcTemplates, err := h.services.TemplateService.List(r.Context(), actor.ID, false)
	if err != nil {
		redirectError(w, r, dashboardPath(actor.Role), err)
		return
	}

	var npcTemplates []*entities.CharacterTemplate
	if isDMRole(actor.Role) {
		npcTemplates, err = h.services.TemplateService.List(r.Context(), actor.ID, true)
		if err != nil {
			redirectError(w, r, dashboardPath(actor.Role), err)
			return
		}
	}

	h.render(w, r, "template_library", map[string]any{
		"Actor":        actor,
		"PCTemplates":  pcTemplates,
		"NPCTemplates": npcTemplates,
	})
}

func (h *Handler) templateSave(w http.ResponseWriter, r *http.Request, actor *entities.User) {
	characterID := r.PathValue("id")
	name := r.FormValue("template_name")
	description := r.FormValue("template_description")

	saved, err := h.services.TemplateService.SaveFromCharacter(r.Context(), actor, characterID, name, description)
	if err != nil {
		redirectError(w, r, "/characters/"+characterID+"/sheet", err)
		return
	}
	redirectOK(w, r, "/characters/"+characterID+"/sheet", "saved as template '"+saved.Name+"'")
}

// templateAPIList feeds the wizard's template picker.
func (h *Handler) templateAPIList(w http.ResponseWriter, r *http.Request, actor *entities.User) {
	npcTemplates := r.URL.Query().Get("npc") == "true"
	list, err := h.services.TemplateService.List(r.Context(), actor.ID, npcTemplates)
	if err != nil {
		writeJSONError(w, err)
		return
	}
	if list == nil {
		list = []*entities.CharacterTemplate{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) templateAPIUse(w http.ResponseWriter, r *http.Request, actor *entities.User) {
	used, err := h.services.TemplateService.Use(r.Context(), actor, r.PathValue("id"))
	if err != nil {
		writeJSONError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "template": used})
}

func (h *Handler) templateDelete(w http.ResponseWriter, r *http.Request, actor *entities.User) {
	if err := h.services.TemplateService.Delete(r.Context(), actor, r.PathValue("id")); err != nil {
		redirectError(w, r, "/templates/", err)
		return
	}
	redirectOK(w, r, "/templates/", "template deleted")
}
