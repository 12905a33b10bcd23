package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/characterforge/characterforge/internal/entities"
	apperr "github.com/characterforge/characterforge/internal/errors"
	"github.com/characterforge/characterforge/internal/rulebook"
	"github.com/characterforge/characterforge/internal/rules"
	"github.com/characterforge/characterforge/internal/services/ai"
	"github.com/characterforge/characterforge/internal/services/character"
)

func formInt(r *http.Request, key string, fallback int) int {
	raw := strings.TrimSpace(r.FormValue(key))
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func isDMRole(role entities.Role) bool {
	return role == entities.RoleDM || role == entities.RoleAdmin
}

func (h *Handler) characterWizard(w http.ResponseWriter, r *http.Request, actor *entities.User) {
	isNPC := r.URL.Query().Get("npc") == "true"
	if isNPC && !isDMRole(actor.Role) {
		redirectError(w, r, dashboardPath(actor.Role),
			apperr.PermissionDenied("only DMs and admins can create NPCs"))
		return
	}

	// Loading a template counts as using it.
	var preload *entities.CharacterTemplate
	if templateID := r.URL.Query().Get("template"); templateID != "" {
		template, err := h.services.TemplateService.Use(r.Context(), actor, templateID)
		if err == nil {
			preload = template
		}
	}

	h.render(w, r, "character_wizard", map[string]any{
		"Actor":       actor,
		"CampaignID":  r.URL.Query().Get("campaign_id"),
		"IsNPC":       isNPC,
		"Races":       rulebook.Races,
		"Classes":     rulebook.Classes,
		"Backgrounds": rulebook.Backgrounds,
		"Alignments":  rulebook.Alignments,
		"Skills":      rulebook.Skills,
		"OllamaOK":    h.services.AIService.Health(r.Context()),
		"Preload":     preload,
	})
}

func (h *Handler) characterCreate(w http.ResponseWriter, r *http.Request, actor *entities.User) {
	isNPC := r.FormValue("is_npc") == "true"
	if isNPC && !isDMRole(actor.Role) {
		redirectError(w, r, dashboardPath(actor.Role),
			apperr.PermissionDenied("only DMs and admins can create NPCs"))
		return
	}

	input := &character.CreateInput{
		OwnerID:    actor.ID,
		CampaignID: strings.TrimSpace(r.FormValue("campaign_id")),
		IsNPC:      isNPC,
		Name:       r.FormValue("name"),
		Level:      formInt(r, "level", 1),
		Race:       r.FormValue("race"),
		Class:      r.FormValue("char_class"),
		Background: r.FormValue("background"),
		Alignment:  r.FormValue("alignment"),
		Scores: rules.AbilityScores{
			Strength:     formInt(r, "strength", 10),
			Dexterity:    formInt(r, "dexterity", 10),
			Constitution: formInt(r, "constitution", 10),
			Intelligence: formInt(r, "intelligence", 10),
			Wisdom:       formInt(r, "wisdom", 10),
			Charisma:     formInt(r, "charisma", 10),
		},
		HPOverride: strings.TrimSpace(r.FormValue("hp_override")),
		ACOverride: strings.TrimSpace(r.FormValue("armor_class_override")),
		Traits: entities.Traits{
			Personality: r.FormValue("personality_trait"),
			Ideal:       r.FormValue("ideal"),
			Bond:        r.FormValue("bond"),
			Flaw:        r.FormValue("flaw"),
		},
		Notes: r.FormValue("notes"),
	}
	speed := formInt(r, "speed", 30)
	input.Speed = &speed

	created, err := h.services.CharacterService.Create(r.Context(), input)
	if err != nil {
		redirectError(w, r, "/characters/new", err)
		return
	}

	target := "/player/"
	switch {
	case created.CampaignID != "":
		target = "/campaigns/" + created.CampaignID
	case created.IsNPC:
		target = "/dm/"
	}
	redirectOK(w, r, target, "'"+created.Name+"' created")
}

func (h *Handler) characterSheet(w http.ResponseWriter, r *http.Request, actor *entities.User) {
	char, err := h.services.CharacterService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		redirectError(w, r, dashboardPath(actor.Role), err)
		return
	}

	h.render(w, r, "character_sheet", map[string]any{
		"Actor":     actor,
		"Character": char,
		"CanEdit":   h.services.CharacterService.CanEdit(r.Context(), actor, char),
		"CanDelete": h.services.CharacterService.CanDelete(r.Context(), actor, char),
	})
}

func (h *Handler) characterDelete(w http.ResponseWriter, r *http.Request, actor *entities.User) {
	char, err := h.services.CharacterService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		redirectError(w, r, dashboardPath(actor.Role), err)
		return
	}
	if !h.services.CharacterService.CanDelete(r.Context(), actor, char) {
		redirectError(w, r, "/characters/"+char.ID+"/sheet",
			apperr.PermissionDenied("you don't have permission to delete this character"))
		return
	}

	if err := h.services.CharacterService.Delete(r.Context(), char.ID); err != nil {
		redirectError(w, r, "/characters/"+char.ID+"/sheet", err)
		return
	}

	target := "/player/"
	switch {
	case char.CampaignID != "":
		target = "/campaigns/" + char.CampaignID
	case char.IsNPC:
		target = "/dm/"
	}
	redirectOK(w, r, target, "character deleted")
}

// rollAbilities hands the wizard a rolled set of scores, 4d6 drop lowest.
func (h *Handler) rollAbilities(w http.ResponseWriter, r *http.Request, actor *entities.User) {
	scores, err := h.dice.RollAbilityScores()
	if err != nil {
		writeJSONError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"scores": scores})
}

// aiStep answers a wizard step question. The wizard posts the in-progress
// build so the model can give contextual advice.
func (h *Handler) aiStep(w http.ResponseWriter, r *http.Request, actor *entities.User) {
	var payload struct {
		Step    string `json:"step"`
		Message string `json:"message"`
		Build   struct {
			Name         string `json:"name"`
			Race         string `json:"race"`
			Class        string `json:"char_class"`
			Background   string `json:"background"`
			Level        int    `json:"level"`
			Strength     int    `json:"strength"`
			Dexterity    int    `json:"dexterity"`
			Constitution int    `json:"constitution"`
			Intelligence int    `json:"intelligence"`
			Wisdom       int    `json:"wisdom"`
			Charisma     int    `json:"charisma"`
		} `json:"build"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, apperr.InvalidArgument("invalid request body"))
		return
	}

	step := payload.Step
	if step == "" {
		step = "general"
	}
	message := payload.Message
	if message == "" {
		message = "Tell me about the " + step + " step."
	}

	reply := h.services.AIService.StepChat(r.Context(), step, ai.BuildContext{
		Name:         payload.Build.Name,
		Race:         payload.Build.Race,
		Class:        payload.Build.Class,
		Background:   payload.Build.Background,
		Level:        payload.Build.Level,
		Strength:     payload.Build.Strength,
		Dexterity:    payload.Build.Dexterity,
		Constitution: payload.Build.Constitution,
		Intelligence: payload.Build.Intelligence,
		Wisdom:       payload.Build.Wisdom,
		Charisma:     payload.Build.Charisma,
	}, message)

	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

// aiNPC generates a complete stat block from a description. DM only.
func (h *Handler) aiNPC(w http.ResponseWriter, r *http.Request, actor *entities.User) {
	if !isDMRole(actor.Role) {
		writeJSONError(w, apperr.PermissionDenied("DM access required"))
		return
	}

	var payload struct {
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, apperr.InvalidArgument("invalid request body"))
		return
	}
	description := strings.TrimSpace(payload.Description)
	if description == "" {
		writeJSONError(w, apperr.InvalidArgument("description required"))
		return
	}

	npc, err := h.services.AIService.GenerateNPC(r.Context(), description)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"ok":    false,
			"error": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "npc": npc})
}
