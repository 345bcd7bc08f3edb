package competition_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/lovacko/internal/competition"
	"github.com/DhavalSuthar-24/lovacko/internal/persistence"
)

func newStore(t *testing.T, seed competition.Snapshot) (*competition.Store, *persistence.Memory) {
	t.Helper()
	mem := persistence.NewMemory()
	if err := mem.Seed(seed); err != nil {
		t.Fatalf("seed: %v", err)
	}
	store := competition.NewStore(mem)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	if err := store.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	return store, mem
}

// heldPersister records writes without echoing them until release is called.
type heldPersister struct {
	mu     sync.Mutex
	fn     func(competition.Snapshot)
	state  competition.Snapshot
	writes [][]competition.CollectionWrite
	err    error
}

func (p *heldPersister) Write(_ context.Context, writes ...competition.CollectionWrite) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.writes = append(p.writes, writes)
	return nil
}

func (p *heldPersister) Subscribe(_ context.Context, fn func(competition.Snapshot)) error {
	p.mu.Lock()
	p.fn = fn
	snap := p.state.Clone()
	p.mu.Unlock()
	fn(snap)
	return nil
}

func (p *heldPersister) release() {
	p.mu.Lock()
	for _, batch := range p.writes {
		for _, w := range batch {
			switch w.Collection {
			case competition.CollectionTeams:
				p.state.Teams = w.Payload.([]competition.Team)
			case competition.CollectionDisciplines:
				p.state.Disciplines = w.Payload.([]competition.Discipline)
			case competition.CollectionResults:
				p.state.Results = w.Payload.([]competition.Result)
			}
		}
	}
	p.writes = nil
	fn, snap := p.fn, p.state.Clone()
	p.mu.Unlock()
	fn(snap)
}

func menSeed() competition.Snapshot {
	return competition.Snapshot{
		Teams: []competition.Team{
			{ID: 1, Name: "Vepar", Category: competition.CategoryMen, Members: []competition.Competitor{
				{ID: 1, FirstName: "Ivo", LastName: "Ivić"},
				{ID: 2, FirstName: "Pero", LastName: "Perić"},
			}},
			{ID: 4, Name: "Jelen", Category: competition.CategoryMen, Members: []competition.Competitor{
				{ID: 7, FirstName: "Luka", LastName: "Lukić"},
			}},
		},
		Disciplines: []competition.Discipline{
			{ID: 1, Name: "TRAP", Category: competition.CategoryMen},
			{ID: 2, Name: "PIKADO", Category: competition.CategoryWomen},
		},
		Results: []competition.Result{
			{ID: 1, CompetitorID: 1, DisciplineID: 1, Points: 3},
			{ID: 2, CompetitorID: 2, DisciplineID: 1, Points: 4},
			{ID: 3, CompetitorID: 7, DisciplineID: 1, Points: 5},
		},
	}
}

func TestStoreStartDeliversInitialState(t *testing.T) {
	store, _ := newStore(t, menSeed())
	if !store.Ready() {
		t.Fatal("store not ready after start")
	}
	if got := len(store.Snapshot().Teams); got != 2 {
		t.Fatalf("teams = %d, want 2", got)
	}
}

func TestStoreNotReadyBeforeStart(t *testing.T) {
	store := competition.NewStore(persistence.NewMemory())
	if store.Ready() {
		t.Fatal("store ready before start")
	}
	snap := store.Snapshot()
	if snap.Teams == nil || snap.Results == nil {
		t.Fatal("empty store should expose empty collections")
	}
}

func TestAddTeamAssignsIDs(t *testing.T) {
	store, _ := newStore(t, menSeed())

	team, err := store.AddTeam(context.Background(), "  Medvjed ", competition.CategoryMen, []competition.Competitor{
		{ID: 99, FirstName: "Ana", LastName: "Anić"},
		{FirstName: "Iva", LastName: "Ivić"},
	})
	if err != nil {
		t.Fatalf("add team: %v", err)
	}
	if team.ID != 5 {
		t.Errorf("team id = %d, want 5", team.ID)
	}
	if team.Name != "Medvjed" {
		t.Errorf("name not trimmed: %q", team.Name)
	}
	if team.Members[0].ID != 8 || team.Members[1].ID != 9 {
		t.Errorf("member ids = %d, %d; want 8, 9", team.Members[0].ID, team.Members[1].ID)
	}

	got, ok := store.Snapshot().Team(5)
	if !ok || len(got.Members) != 2 {
		t.Fatalf("team not applied: %+v", got)
	}
}

func TestAddTeamOnEmptyStore(t *testing.T) {
	store, _ := newStore(t, competition.Snapshot{})
	team, err := store.AddTeam(context.Background(), "Prvi", competition.CategoryWomen, nil)
	if err != nil {
		t.Fatalf("add team: %v", err)
	}
	if team.ID != 1 || len(team.Members) != 0 {
		t.Fatalf("team = %+v", team)
	}
	c, err := store.AddCompetitorToTeam(context.Background(), 1, "Maja", "Majić")
	if err != nil {
		t.Fatalf("add competitor: %v", err)
	}
	if c.ID != 1 {
		t.Fatalf("competitor id = %d, want 1", c.ID)
	}
}

func TestAddTeamValidation(t *testing.T) {
	store, _ := newStore(t, menSeed())
	ctx := context.Background()

	var verr *competition.ValidationError
	if _, err := store.AddTeam(ctx, " ", competition.CategoryMen, nil); !errors.As(err, &verr) || verr.Field != "name" {
		t.Errorf("blank name: %v", err)
	}
	if _, err := store.AddTeam(ctx, "X", "Y", nil); !errors.As(err, &verr) || verr.Field != "category" {
		t.Errorf("bad category: %v", err)
	}
	four := make([]competition.Competitor, 4)
	for i := range four {
		four[i] = competition.Competitor{FirstName: "A", LastName: "B"}
	}
	if _, err := store.AddTeam(ctx, "X", competition.CategoryMen, four); !errors.Is(err, competition.ErrTeamFull) {
		t.Errorf("four members: %v", err)
	}
	if _, err := store.AddTeam(ctx, "X", competition.CategoryMen, []competition.Competitor{{FirstName: "A"}}); !errors.As(err, &verr) || verr.Field != "members[0].lastName" {
		t.Errorf("missing last name: %v", err)
	}
	if got := len(store.Snapshot().Teams); got != 2 {
		t.Errorf("rejected adds must not write, teams = %d", got)
	}
}

func TestAddCompetitorToFullTeam(t *testing.T) {
	store, _ := newStore(t, menSeed())
	ctx := context.Background()

	c, err := store.AddCompetitorToTeam(ctx, 1, "Josip", "Josić")
	if err != nil {
		t.Fatalf("add third member: %v", err)
	}
	if c.ID != 8 {
		t.Errorf("competitor id = %d, want 8", c.ID)
	}

	_, err = store.AddCompetitorToTeam(ctx, 1, "Četvrti", "Član")
	if !errors.Is(err, competition.ErrTeamFull) {
		t.Fatalf("fourth member: %v", err)
	}
	team, _ := store.Snapshot().Team(1)
	if len(team.Members) != 3 {
		t.Fatalf("members = %d, want 3", len(team.Members))
	}
}

func TestAddCompetitorToMissingTeam(t *testing.T) {
	store, _ := newStore(t, menSeed())
	if _, err := store.AddCompetitorToTeam(context.Background(), 42, "A", "B"); !errors.Is(err, competition.ErrTeamNotFound) {
		t.Fatalf("err = %v", err)
	}
}

func TestRemoveCompetitorCascadesResults(t *testing.T) {
	store, _ := newStore(t, menSeed())
	if err := store.RemoveCompetitorFromTeam(context.Background(), 1, 2); err != nil {
		t.Fatalf("remove: %v", err)
	}

	snap := store.Snapshot()
	team, _ := snap.Team(1)
	if len(team.Members) != 1 || team.Members[0].ID != 1 {
		t.Fatalf("members = %+v", team.Members)
	}
	for _, r := range snap.Results {
		if r.CompetitorID == 2 {
			t.Fatalf("orphan result left: %+v", r)
		}
	}
	if len(snap.Results) != 2 {
		t.Fatalf("results = %d, want 2", len(snap.Results))
	}

	if err := store.RemoveCompetitorFromTeam(context.Background(), 1, 7); !errors.Is(err, competition.ErrCompetitorNotFound) {
		t.Fatalf("member of another team: %v", err)
	}
}

func TestDeleteTeamCascadesResults(t *testing.T) {
	store, _ := newStore(t, menSeed())
	if err := store.DeleteTeam(context.Background(), 1); err != nil {
		t.Fatalf("delete: %v", err)
	}

	snap := store.Snapshot()
	if _, ok := snap.Team(1); ok {
		t.Fatal("team still present")
	}
	if len(snap.Results) != 1 || snap.Results[0].CompetitorID != 7 {
		t.Fatalf("results = %+v", snap.Results)
	}
	if err := store.DeleteTeam(context.Background(), 1); !errors.Is(err, competition.ErrTeamNotFound) {
		t.Fatalf("second delete: %v", err)
	}
}

func TestDeleteTeamKeepsNewIDsAboveSurvivors(t *testing.T) {
	store, _ := newStore(t, menSeed())
	ctx := context.Background()
	if err := store.DeleteTeam(ctx, 4); err != nil {
		t.Fatalf("delete: %v", err)
	}
	team, err := store.AddTeam(ctx, "Novi", competition.CategoryMen, []competition.Competitor{{FirstName: "N", LastName: "N"}})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if team.ID != 2 || team.Members[0].ID != 3 {
		t.Fatalf("ids = team %d member %d, want 2 and 3", team.ID, team.Members[0].ID)
	}
}

func TestUpdateTeam(t *testing.T) {
	store, _ := newStore(t, menSeed())
	ctx := context.Background()

	team, err := store.UpdateTeam(ctx, 1, "Divlji vepar", competition.CategoryMen, nil)
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if team.Name != "Divlji vepar" || len(team.Members) != 2 {
		t.Fatalf("renamed team = %+v", team)
	}

	team, err = store.UpdateTeam(ctx, 1, "Divlji vepar", competition.CategoryMen, []competition.Competitor{
		{ID: 1, FirstName: "Ivan", LastName: "Ivić"},
		{FirstName: "Novi", LastName: "Član"},
	})
	if err != nil {
		t.Fatalf("replace members: %v", err)
	}
	if team.Members[0].FirstName != "Ivan" || team.Members[1].ID != 8 {
		t.Fatalf("members = %+v", team.Members)
	}
	for _, r := range store.Snapshot().Results {
		if r.CompetitorID == 2 {
			t.Fatal("results of dropped member kept")
		}
	}
}

func TestUpdateTeamRejectsForeignMember(t *testing.T) {
	store, _ := newStore(t, menSeed())
	_, err := store.UpdateTeam(context.Background(), 1, "Vepar", competition.CategoryMen, []competition.Competitor{
		{ID: 7, FirstName: "Luka", LastName: "Lukić"},
	})
	var verr *competition.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v", err)
	}
	if _, err := store.UpdateTeam(context.Background(), 9, "X", competition.CategoryMen, nil); !errors.Is(err, competition.ErrTeamNotFound) {
		t.Fatalf("missing team: %v", err)
	}
}

func TestDisciplineLifecycle(t *testing.T) {
	store, _ := newStore(t, menSeed())
	ctx := context.Background()

	d, err := store.AddDiscipline(ctx, "PRAČKA", competition.CategoryMen)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if d.ID != 3 {
		t.Errorf("id = %d, want 3", d.ID)
	}

	var verr *competition.ValidationError
	if _, err := store.AddDiscipline(ctx, "PRAČKA", competition.CategoryMen); !errors.As(err, &verr) {
		t.Errorf("duplicate name: %v", err)
	}
	if _, err := store.AddDiscipline(ctx, "PRAČKA", competition.CategoryWomen); err != nil {
		t.Errorf("same name in other category: %v", err)
	}

	if _, err := store.UpdateDiscipline(ctx, 3, "ZRAČNA PUŠKA", competition.CategoryMen); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := store.UpdateDiscipline(ctx, 99, "X", competition.CategoryMen); !errors.Is(err, competition.ErrDisciplineNotFound) {
		t.Errorf("update missing: %v", err)
	}

	if err := store.DeleteDiscipline(ctx, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	snap := store.Snapshot()
	if len(snap.Results) != 0 {
		t.Errorf("results of deleted discipline kept: %+v", snap.Results)
	}
	if err := store.DeleteDiscipline(ctx, 1); !errors.Is(err, competition.ErrDisciplineNotFound) {
		t.Errorf("second delete: %v", err)
	}
}

func TestUpdateDisciplineKeepsStoredResultsValid(t *testing.T) {
	store, _ := newStore(t, menSeed())
	ctx := context.Background()

	d, err := store.AddDiscipline(ctx, "X", competition.CategoryMen)
	if err != nil {
		t.Fatalf("add discipline: %v", err)
	}
	if _, err := store.AddResult(ctx, 1, d.ID, 90); err != nil {
		t.Fatalf("add result: %v", err)
	}

	var verr *competition.ValidationError
	if _, err := store.UpdateDiscipline(ctx, d.ID, "PRAČKA", competition.CategoryMen); !errors.As(err, &verr) || verr.Field != "name" {
		t.Fatalf("rename over maximum: %v", err)
	}
	if _, err := store.UpdateDiscipline(ctx, 1, "TRAP", competition.CategoryWomen); !errors.As(err, &verr) || verr.Field != "category" {
		t.Fatalf("category change with results: %v", err)
	}

	snap := store.Snapshot()
	if got, _ := snap.Discipline(d.ID); got.Name != "X" {
		t.Errorf("rejected rename applied: %+v", got)
	}
	rankings := store.CompetitorRankings(competition.CategoryMen)
	for _, r := range rankings {
		if r.Competitor.ID == 1 && r.TotalPoints != 60 {
			t.Errorf("total of competitor 1 = %v, want 60", r.TotalPoints)
		}
	}

	if _, err := store.UpdateDiscipline(ctx, d.ID, "ZRAČNA PUŠKA", competition.CategoryMen); !errors.As(err, &verr) {
		t.Fatalf("rename to 50 point discipline: %v", err)
	}
	if _, err := store.UpdateDiscipline(ctx, d.ID, "Y", competition.CategoryMen); err != nil {
		t.Fatalf("rename keeping maximum: %v", err)
	}
}

func TestUpdateTeamCategoryWithResults(t *testing.T) {
	store, _ := newStore(t, menSeed())
	ctx := context.Background()

	var verr *competition.ValidationError
	if _, err := store.UpdateTeam(ctx, 1, "Vepar", competition.CategoryWomen, nil); !errors.As(err, &verr) || verr.Field != "category" {
		t.Fatalf("category change with results: %v", err)
	}
	if team, _ := store.Snapshot().Team(1); team.Category != competition.CategoryMen {
		t.Fatalf("rejected update applied: %+v", team)
	}

	// Dropping the scored members leaves nothing that conflicts.
	team, err := store.UpdateTeam(ctx, 1, "Košute", competition.CategoryWomen, []competition.Competitor{
		{FirstName: "Ana", LastName: "Anić"},
	})
	if err != nil {
		t.Fatalf("category change without results: %v", err)
	}
	if team.Category != competition.CategoryWomen {
		t.Fatalf("team = %+v", team)
	}
	for _, r := range store.Snapshot().Results {
		if r.CompetitorID == 1 || r.CompetitorID == 2 {
			t.Fatalf("results of dropped members kept: %+v", r)
		}
	}
}

func TestAddResultUpsertKeepsID(t *testing.T) {
	store, _ := newStore(t, menSeed())
	ctx := context.Background()

	r, err := store.AddResult(ctx, 1, 1, 5)
	if err != nil {
		t.Fatalf("add result: %v", err)
	}
	if r.ID != 1 || r.Points != 5 {
		t.Fatalf("upsert = %+v, want id 1 with 5 points", r)
	}
	if got := len(store.Snapshot().Results); got != 3 {
		t.Fatalf("results = %d, want 3", got)
	}

	if _, err := store.AddDiscipline(ctx, "ZRAČNA PUŠKA", competition.CategoryMen); err != nil {
		t.Fatalf("add discipline: %v", err)
	}
	r, err = store.AddResult(ctx, 1, 3, 42.5)
	if err != nil {
		t.Fatalf("new result: %v", err)
	}
	if r.ID != 4 {
		t.Fatalf("new result id = %d, want 4", r.ID)
	}

	rankings := store.CompetitorRankings(competition.CategoryMen)
	if rankings[0].Competitor.ID != 1 || rankings[0].TotalPoints != 185 {
		t.Fatalf("leader = %+v", rankings[0])
	}
}

func TestAddResultValidation(t *testing.T) {
	store, _ := newStore(t, menSeed())
	ctx := context.Background()

	if _, err := store.AddResult(ctx, 99, 1, 1); !errors.Is(err, competition.ErrCompetitorNotFound) {
		t.Errorf("unknown competitor: %v", err)
	}
	if _, err := store.AddResult(ctx, 1, 99, 1); !errors.Is(err, competition.ErrDisciplineNotFound) {
		t.Errorf("unknown discipline: %v", err)
	}

	var verr *competition.ValidationError
	cases := []struct {
		name         string
		disciplineID int
		points       float64
	}{
		{"over maximum", 1, 5.5},
		{"negative", 1, -1},
		{"other category", 2, 10},
	}
	for _, tc := range cases {
		if _, err := store.AddResult(ctx, 1, tc.disciplineID, tc.points); !errors.As(err, &verr) {
			t.Errorf("%s: err = %v", tc.name, err)
		}
	}
}

func TestUpdateAndDeleteResult(t *testing.T) {
	store, _ := newStore(t, menSeed())
	ctx := context.Background()

	r, err := store.UpdateResult(ctx, 2, 2, 1, 1.5)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if r.Points != 1.5 {
		t.Fatalf("points = %v", r.Points)
	}

	var verr *competition.ValidationError
	if _, err := store.UpdateResult(ctx, 2, 1, 1, 2); !errors.As(err, &verr) {
		t.Errorf("duplicate pair: %v", err)
	}
	if _, err := store.UpdateResult(ctx, 50, 1, 1, 2); !errors.Is(err, competition.ErrResultNotFound) {
		t.Errorf("missing result: %v", err)
	}

	if err := store.DeleteResult(ctx, 2); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := store.Snapshot().Result(2); ok {
		t.Fatal("result still present")
	}
	if err := store.DeleteResult(ctx, 2); err != nil {
		t.Fatalf("deleting a missing result should be a no-op: %v", err)
	}
}

func TestMutationsWaitForEcho(t *testing.T) {
	p := &heldPersister{state: menSeed()}
	store := competition.NewStore(p)
	if err := store.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	if _, err := store.AddTeam(context.Background(), "Novi", competition.CategoryMen, nil); err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := len(store.Snapshot().Teams); got != 2 {
		t.Fatalf("write visible before echo: %d teams", got)
	}

	p.release()
	if got := len(store.Snapshot().Teams); got != 3 {
		t.Fatalf("echo not applied: %d teams", got)
	}
}

func TestConcurrentWritesBeforeEchoLastWins(t *testing.T) {
	p := &heldPersister{state: menSeed()}
	store := competition.NewStore(p)
	if err := store.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	ctx := context.Background()

	a, _ := store.AddTeam(ctx, "A", competition.CategoryMen, nil)
	b, _ := store.AddTeam(ctx, "B", competition.CategoryMen, nil)
	if a.ID != b.ID {
		t.Fatalf("both adds should compute from the same snapshot, got %d and %d", a.ID, b.ID)
	}

	p.release()
	teams := store.Snapshot().Teams
	if len(teams) != 3 || teams[2].Name != "B" {
		t.Fatalf("teams = %+v", teams)
	}
}

func TestPersistenceErrorIsReturned(t *testing.T) {
	boom := errors.New("disk full")
	p := &heldPersister{state: menSeed(), err: boom}
	store := competition.NewStore(p)
	if err := store.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	err := store.DeleteTeam(context.Background(), 1)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped %v", err, boom)
	}
	if len(store.Snapshot().Teams) != 2 {
		t.Fatal("failed write changed state")
	}
}

func TestStoreSubscribe(t *testing.T) {
	store, _ := newStore(t, menSeed())

	var calls int
	var last competition.Snapshot
	unsubscribe := store.Subscribe(func(s competition.Snapshot) {
		calls++
		last = s
	})
	if calls != 1 || len(last.Teams) != 2 {
		t.Fatalf("initial delivery: calls=%d teams=%d", calls, len(last.Teams))
	}

	if err := store.DeleteTeam(context.Background(), 4); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if calls != 2 || len(last.Teams) != 1 {
		t.Fatalf("after delete: calls=%d teams=%d", calls, len(last.Teams))
	}

	unsubscribe()
	if err := store.DeleteTeam(context.Background(), 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if calls != 2 {
		t.Fatalf("called after unsubscribe: %d", calls)
	}
}

func TestSubscribeInitialSnapshotPrecedesConcurrentEcho(t *testing.T) {
	p := &heldPersister{state: menSeed()}
	store := competition.NewStore(p)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := store.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := store.DeleteTeam(ctx, 4); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var mu sync.Mutex
	var seen []int
	first := true
	released := make(chan struct{})
	unsubscribe := store.Subscribe(func(s competition.Snapshot) {
		if first {
			first = false
			go func() {
				p.release()
				close(released)
			}()
			time.Sleep(50 * time.Millisecond)
		}
		mu.Lock()
		seen = append(seen, len(s.Teams))
		mu.Unlock()
	})
	defer unsubscribe()
	<-released

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 2 || seen[0] != 2 || seen[1] != 1 {
		t.Fatalf("team counts in delivery order = %v, want [2 1]", seen)
	}
}
