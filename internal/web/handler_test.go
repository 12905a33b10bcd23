package web_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/characterforge/characterforge/internal/clients/ollama"
	mockdice "github.com/characterforge/characterforge/internal/dice/mock"
	"github.com/characterforge/characterforge/internal/entities"
	"github.com/characterforge/characterforge/internal/services"
	"github.com/characterforge/characterforge/internal/services/user"
	"github.com/characterforge/characterforge/internal/session"
	"github.com/characterforge/characterforge/internal/uuid"
	"github.com/characterforge/characterforge/internal/web"
)

// stubOllama returns canned replies without a real model.
type stubOllama struct {
	healthy       bool
	chatReply     string
	generateReply string
}

func (s *stubOllama) Health(ctx context.Context) bool { return s.healthy }

func (s *stubOllama) Chat(ctx context.Context, messages []ollama.Message) string {
	return s.chatReply
}

func (s *stubOllama) Generate(ctx context.Context, prompt string) string {
	return s.generateReply
}

type HandlerTestSuite struct {
	suite.Suite
	ctx      context.Context
	ollama   *stubOllama
	provider *services.Provider
	mux      *http.ServeMux
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ollama = &stubOllama{
		healthy:       true,
		chatReply:     "Dwarves make sturdy fighters.",
		generateReply: `{"name": "Grak", "race": "Half-Orc", "char_class": "Barbarian", "level": 3, "strength": 16}`,
	}
	s.provider = services.NewProvider(&services.ProviderConfig{
		OllamaClient: s.ollama,
	})
	handler := web.NewHandler(&web.Config{
		Services: s.provider,
		Sessions: session.NewInMemory(&session.InMemoryConfig{
			IDGenerator: uuid.NewGoogleUUIDGenerator(),
			TTL:         time.Hour,
		}),
		Dice: &mockdice.FixedRoller{Values: []int{6, 5, 4, 3}},
	})
	s.mux = handler.Routes()
}

func (s *HandlerTestSuite) get(path, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) postForm(path, cookie string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) postJSON(path, cookie, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)
	return rec
}

// createUser registers an account directly through the service layer.
func (s *HandlerTestSuite) createUser(username string, role entities.Role) *entities.User {
	u, err := s.provider.UserService.CreateUser(s.ctx, &user.CreateUserInput{
		Username: username,
		Password: "hunter22",
		Role:     role,
	})
	s.Require().NoError(err)
	return u
}

// login posts the login form and returns the session cookie.
func (s *HandlerTestSuite) login(username string, role entities.Role) string {
	rec := s.postForm("/auth/login", "", url.Values{
		"username": {username},
		"password": {"hunter22"},
		"role":     {string(role)},
	})
	s.Require().Equal(http.StatusSeeOther, rec.Code)
	cookies := rec.Result().Cookies()
	s.Require().NotEmpty(cookies)
	return cookies[0].Name + "=" + cookies[0].Value
}

func (s *HandlerTestSuite) TestFirstLaunchRedirectsToSetup() {
	rec := s.get("/auth/login", "")
	s.Equal(http.StatusSeeOther, rec.Code)
	s.Equal("/auth/setup", rec.Header().Get("Location"))
}

func (s *HandlerTestSuite) TestSetupCreatesAdminAndLogsIn() {
	rec := s.postForm("/auth/setup", "", url.Values{
		"username": {"root"},
		"password": {"hunter22"},
		"confirm":  {"hunter22"},
	})
	s.Require().Equal(http.StatusSeeOther, rec.Code)
	s.Contains(rec.Header().Get("Location"), "/auth/login")

	cookie := s.login("root", entities.RoleAdmin)
	rec = s.get("/admin/", cookie)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "root")
}

func (s *HandlerTestSuite) TestSetupRejectsMismatchedPasswords() {
	rec := s.postForm("/auth/setup", "", url.Values{
		"username": {"root"},
		"password": {"hunter22"},
		"confirm":  {"hunter23"},
	})
	s.Require().Equal(http.StatusSeeOther, rec.Code)
	s.Contains(rec.Header().Get("Location"), "error=")

	first, err := s.provider.UserService.FirstLaunch(s.ctx)
	s.NoError(err)
	s.True(first)
}

func (s *HandlerTestSuite) TestLoginRoleHintMismatch() {
	s.createUser("alice", entities.RolePlayer)

	rec := s.postForm("/auth/login", "", url.Values{
		"username": {"alice"},
		"password": {"hunter22"},
		"role":     {"dm"},
	})
	s.Equal(http.StatusSeeOther, rec.Code)
	s.Contains(rec.Header().Get("Location"), "error=")
	s.Empty(rec.Result().Cookies())
}

func (s *HandlerTestSuite) TestPlayerCannotReachAdminPages() {
	s.createUser("root", entities.RoleAdmin)
	s.createUser("alice", entities.RolePlayer)
	cookie := s.login("alice", entities.RolePlayer)

	rec := s.get("/admin/", cookie)
	s.Equal(http.StatusSeeOther, rec.Code)
	s.Contains(rec.Header().Get("Location"), "/auth/login")
}

func (s *HandlerTestSuite) TestLogoutDestroysSession() {
	s.createUser("root", entities.RoleAdmin)
	cookie := s.login("root", entities.RoleAdmin)

	rec := s.get("/auth/logout", cookie)
	s.Equal(http.StatusSeeOther, rec.Code)

	rec = s.get("/admin/", cookie)
	s.Equal(http.StatusSeeOther, rec.Code)
	s.Contains(rec.Header().Get("Location"), "/auth/login")
}

func (s *HandlerTestSuite) TestWizardCreateAndSheet() {
	alice := s.createUser("alice", entities.RolePlayer)
	cookie := s.login("alice", entities.RolePlayer)

	rec := s.postForm("/characters/create", cookie, url.Values{
		"name":         {"Durnik"},
		"level":        {"3"},
		"race":         {"Dwarf"},
		"char_class":   {"Fighter"},
		"background":   {"Soldier"},
		"alignment":    {"Lawful Good"},
		"strength":     {"16"},
		"dexterity":    {"12"},
		"constitution": {"14"},
		"intelligence": {"10"},
		"wisdom":       {"13"},
		"charisma":     {"8"},
	})
	s.Require().Equal(http.StatusSeeOther, rec.Code)
	s.Contains(rec.Header().Get("Location"), "/player/")

	chars, err := s.provider.CharacterService.ListByOwner(s.ctx, alice.ID)
	s.Require().NoError(err)
	s.Require().Len(chars, 1)

	rec = s.get("/characters/"+chars[0].ID+"/sheet", cookie)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Durnik")
	s.Contains(rec.Body.String(), "Fighter")
}

func (s *HandlerTestSuite) TestPlayerCannotCreateNPC() {
	s.createUser("alice", entities.RolePlayer)
	cookie := s.login("alice", entities.RolePlayer)

	rec := s.postForm("/characters/create", cookie, url.Values{
		"is_npc": {"true"},
		"name":   {"Sneaky NPC"},
	})
	s.Equal(http.StatusSeeOther, rec.Code)
	s.Contains(rec.Header().Get("Location"), "error=")
}

func (s *HandlerTestSuite) TestCampaignJoinAndApprove() {
	dm := s.createUser("morgan", entities.RoleDM)
	alice := s.createUser("alice", entities.RolePlayer)
	dmCookie := s.login("morgan", entities.RoleDM)
	playerCookie := s.login("alice", entities.RolePlayer)

	rec := s.postForm("/dm/campaigns/create", dmCookie, url.Values{
		"name": {"Lost Mines"},
	})
	s.Require().Equal(http.StatusSeeOther, rec.Code)

	campaigns, err := s.provider.CampaignService.ListByDM(s.ctx, dm.ID)
	s.Require().NoError(err)
	s.Require().Len(campaigns, 1)
	campaignID := campaigns[0].ID

	rec = s.postForm("/player/campaigns/"+campaignID+"/join", playerCookie, nil)
	s.Equal(http.StatusSeeOther, rec.Code)
	s.Contains(rec.Header().Get("Location"), "ok=")

	// Pending members cannot open the campaign page.
	rec = s.get("/campaigns/"+campaignID, playerCookie)
	s.Equal(http.StatusSeeOther, rec.Code)
	s.Contains(rec.Header().Get("Location"), "error=")

	rec = s.postForm("/dm/campaigns/"+campaignID+"/approve/"+alice.ID, dmCookie, nil)
	s.Equal(http.StatusSeeOther, rec.Code)

	rec = s.get("/campaigns/"+campaignID, playerCookie)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Lost Mines")
}

func (s *HandlerTestSuite) TestRollAbilities() {
	s.createUser("alice", entities.RolePlayer)
	cookie := s.login("alice", entities.RolePlayer)

	rec := s.get("/characters/api/roll_abilities", cookie)
	s.Require().Equal(http.StatusOK, rec.Code)

	var body struct {
		Scores []int `json:"scores"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal([]int{15, 15, 15, 15, 15, 15}, body.Scores)
}

func (s *HandlerTestSuite) TestAIStepEndpoint() {
	s.createUser("alice", entities.RolePlayer)
	cookie := s.login("alice", entities.RolePlayer)

	rec := s.postJSON("/characters/ai_step", cookie,
		`{"step": "race", "message": "What race fits a fighter?", "build": {"char_class": "Fighter"}}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var body map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("Dwarves make sturdy fighters.", body["reply"])
}

func (s *HandlerTestSuite) TestAIEndpointsRequireLogin() {
	rec := s.postJSON("/characters/ai_step", "", `{"step": "race"}`)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *HandlerTestSuite) TestAINPCRequiresDM() {
	s.createUser("alice", entities.RolePlayer)
	cookie := s.login("alice", entities.RolePlayer)

	rec := s.postJSON("/characters/ai_npc", cookie, `{"description": "a gruff innkeeper"}`)
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *HandlerTestSuite) TestAINPCGenerates() {
	s.createUser("morgan", entities.RoleDM)
	cookie := s.login("morgan", entities.RoleDM)

	rec := s.postJSON("/characters/ai_npc", cookie, `{"description": "a gruff innkeeper"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var body struct {
		OK  bool `json:"ok"`
		NPC struct {
			Name     string `json:"name"`
			Class    string `json:"char_class"`
			Strength int    `json:"strength"`
		} `json:"npc"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.True(body.OK)
	s.Equal("Grak", body.NPC.Name)
	s.Equal("Barbarian", body.NPC.Class)
	s.Equal(16, body.NPC.Strength)
}

func (s *HandlerTestSuite) TestAINPCRejectsEmptyDescription() {
	s.createUser("morgan", entities.RoleDM)
	cookie := s.login("morgan", entities.RoleDM)

	rec := s.postJSON("/characters/ai_npc", cookie, `{"description": "   "}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestTemplateRoundTrip() {
	alice := s.createUser("alice", entities.RolePlayer)
	cookie := s.login("alice", entities.RolePlayer)

	rec := s.postForm("/characters/create", cookie, url.Values{
		"name":       {"Durnik"},
		"race":       {"Dwarf"},
		"char_class": {"Fighter"},
	})
	s.Require().Equal(http.StatusSeeOther, rec.Code)
	chars, err := s.provider.CharacterService.ListByOwner(s.ctx, alice.ID)
	s.Require().NoError(err)
	s.Require().Len(chars, 1)

	rec = s.postForm("/templates/save_from_char/"+chars[0].ID, cookie, url.Values{
		"template_name": {"Dwarf Fighter"},
	})
	s.Equal(http.StatusSeeOther, rec.Code)
	s.Contains(rec.Header().Get("Location"), "ok=")

	rec = s.get("/templates/api/list", cookie)
	s.Require().Equal(http.StatusOK, rec.Code)
	var list []map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &list))
	s.Require().Len(list, 1)
	s.Equal("Dwarf Fighter", list[0]["name"])

	templateID, _ := list[0]["id"].(string)
	rec = s.postJSON("/templates/api/use/"+templateID, cookie, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var used struct {
		OK       bool `json:"ok"`
		Template struct {
			TimesUsed int `json:"times_used"`
		} `json:"template"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &used))
	s.True(used.OK)
	s.Equal(1, used.Template.TimesUsed)
}

func (s *HandlerTestSuite) TestWizardShowsOfflineAssistant() {
	s.ollama.healthy = false
	s.createUser("morgan", entities.RoleDM)
	cookie := s.login("morgan", entities.RoleDM)

	rec := s.get("/characters/new?npc=true", cookie)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "offline")
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
