package team

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/lovacko/internal/competition"
	"github.com/DhavalSuthar-24/lovacko/internal/persistence"
	"github.com/DhavalSuthar-24/lovacko/pkg/validator"
)

type envelope struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func setupRouter(t *testing.T) (*gin.Engine, *competition.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := validator.Register(); err != nil {
		t.Fatalf("register validator: %v", err)
	}

	mem := persistence.NewMemory()
	err := mem.Seed(competition.Snapshot{
		Teams: []competition.Team{{
			ID: 1, Name: "Vepar", Category: competition.CategoryMen,
			Members: []competition.Competitor{
				{ID: 1, FirstName: "Ivo", LastName: "Ivić"},
				{ID: 2, FirstName: "Pero", LastName: "Perić"},
				{ID: 3, FirstName: "Ante", LastName: "Antić"},
			},
		}},
		Disciplines: []competition.Discipline{{ID: 1, Name: "TRAP", Category: competition.CategoryMen}},
		Results:     []competition.Result{{ID: 1, CompetitorID: 2, DisciplineID: 1, Points: 4}},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	store := competition.NewStore(mem)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	if err := store.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}

	r := gin.New()
	TeamRoutes(r.Group("/api"), store)
	return r, store
}

func do(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestCreateTeam(t *testing.T) {
	r, store := setupRouter(t)

	w, env := do(r, http.MethodPost, "/api/teams",
		`{"name":"Lisice","category":"Ž","members":[{"id":55,"firstName":"Ana","lastName":"Anić"}]}`)
	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var team competition.Team
	if err := json.Unmarshal(env.Data, &team); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if team.ID != 2 || team.Members[0].ID != 4 {
		t.Fatalf("team = %+v", team)
	}
	if _, ok := store.Snapshot().Team(2); !ok {
		t.Fatal("team not in store")
	}
}

func TestCreateTeamValidation(t *testing.T) {
	r, _ := setupRouter(t)

	w, env := do(r, http.MethodPost, "/api/teams", `{"name":"","category":"X","members":[{"firstName":"Ana"}]}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	for _, field := range []string{"name", "category", "members[0].lastName"} {
		if env.Errors[field] == "" {
			t.Errorf("missing error for %s: %v", field, env.Errors)
		}
	}
}

func TestCreateTeamTooManyMembers(t *testing.T) {
	r, _ := setupRouter(t)
	member := `{"firstName":"A","lastName":"B"}`
	body := `{"name":"Veliki","category":"M","members":[` + strings.Repeat(member+",", 3) + member + `]}`

	w, _ := do(r, http.MethodPost, "/api/teams", body)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestGetTeams(t *testing.T) {
	r, _ := setupRouter(t)

	w, env := do(r, http.MethodGet, "/api/teams?category=M", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var teams []competition.Team
	_ = json.Unmarshal(env.Data, &teams)
	if len(teams) != 1 {
		t.Fatalf("teams = %+v", teams)
	}

	w, env = do(r, http.MethodGet, "/api/teams?category=%C5%BD", "")
	if w.Code != http.StatusOK || string(env.Data) != "[]" {
		t.Fatalf("women teams: %d %s", w.Code, env.Data)
	}

	if w, _ := do(r, http.MethodGet, "/api/teams?category=X", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("bad category status = %d", w.Code)
	}
	if w, _ := do(r, http.MethodGet, "/api/teams/9", ""); w.Code != http.StatusNotFound {
		t.Fatalf("missing team status = %d", w.Code)
	}
	if w, _ := do(r, http.MethodGet, "/api/teams/abc", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("bad id status = %d", w.Code)
	}
}

func TestAddMemberToFullTeam(t *testing.T) {
	r, _ := setupRouter(t)
	w, env := do(r, http.MethodPost, "/api/teams/1/members", `{"firstName":"Četvrti","lastName":"Član"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, message = %s", w.Code, env.Message)
	}
}

func TestRemoveMemberCascades(t *testing.T) {
	r, store := setupRouter(t)

	w, _ := do(r, http.MethodDelete, "/api/teams/1/members/2", "")
	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d", w.Code)
	}
	if n := len(store.Snapshot().Results); n != 0 {
		t.Fatalf("results = %d, want 0", n)
	}

	w, _ = do(r, http.MethodPost, "/api/teams/1/members", `{"firstName":"Novi","lastName":"Član"}`)
	if w.Code != http.StatusAccepted {
		t.Fatalf("add after remove status = %d", w.Code)
	}

	if w, _ := do(r, http.MethodDelete, "/api/teams/1/members/2", ""); w.Code != http.StatusNotFound {
		t.Fatalf("second remove status = %d", w.Code)
	}
}

func TestUpdateTeamKeepsMembersWhenOmitted(t *testing.T) {
	r, store := setupRouter(t)

	w, _ := do(r, http.MethodPut, "/api/teams/1", `{"name":"Divlji vepar","category":"M"}`)
	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	team, _ := store.Snapshot().Team(1)
	if team.Name != "Divlji vepar" || len(team.Members) != 3 {
		t.Fatalf("team = %+v", team)
	}
}

func TestDeleteTeam(t *testing.T) {
	r, store := setupRouter(t)

	if w, _ := do(r, http.MethodDelete, "/api/teams/1", ""); w.Code != http.StatusAccepted {
		t.Fatalf("status = %d", w.Code)
	}
	snap := store.Snapshot()
	if len(snap.Teams) != 0 || len(snap.Results) != 0 {
		t.Fatalf("snapshot = %+v", snap)
	}
	if w, _ := do(r, http.MethodDelete, "/api/teams/1", ""); w.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d", w.Code)
	}
}

func TestGetCompetitors(t *testing.T) {
	r, _ := setupRouter(t)

	w, env := do(r, http.MethodGet, "/api/competitors", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var views []CompetitorView
	if err := json.Unmarshal(env.Data, &views); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(views) != 3 || views[0].TeamName != "Vepar" || views[0].FirstName != "Ivo" {
		t.Fatalf("views = %+v", views)
	}
}
