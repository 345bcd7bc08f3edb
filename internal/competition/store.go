package competition

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
	"sync"
)

// MaxTeamMembers is the size limit of a team.
const MaxTeamMembers = 3

// CollectionWrite replaces one whole collection.
type CollectionWrite struct {
	Collection Collection
	Payload    interface{}
}

// Persister is the storage the store writes to. Writes always carry whole
// collections. Subscribe delivers the full snapshot once on start and again
// after every change, including the echo of the store's own writes.
type Persister interface {
	Write(ctx context.Context, writes ...CollectionWrite) error
	Subscribe(ctx context.Context, fn func(Snapshot)) error
}

// Store owns the current competition snapshot. Mutations compute full
// replacement collections from the cached snapshot and hand them to the
// persister; the cache itself only changes when the persister echoes the new
// state back. Two mutations issued before the first echo arrives can
// therefore overwrite each other.
type Store struct {
	persister Persister

	mu    sync.RWMutex
	state Snapshot
	ready bool

	// deliverMu orders the initial delivery of Subscribe against apply, so
	// a subscriber never sees an older snapshot after a newer one.
	deliverMu sync.Mutex
	subMu     sync.Mutex
	subs      map[int]func(Snapshot)
	nextSub   int
}

// NewStore creates a store backed by p. Call Start to begin receiving state.
func NewStore(p Persister) *Store {
	return &Store{
		persister: p,
		state:     Snapshot{}.Clone(),
		subs:      make(map[int]func(Snapshot)),
	}
}

// Start subscribes the store to its persister. The subscription lives until
// ctx is cancelled.
func (s *Store) Start(ctx context.Context) error {
	if err := s.persister.Subscribe(ctx, s.apply); err != nil {
		return fmt.Errorf("subscribe to persister: %w", err)
	}
	return nil
}

func (s *Store) apply(snap Snapshot) {
	snap = snap.Clone()

	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	s.mu.Lock()
	s.state = snap
	s.ready = true
	s.mu.Unlock()

	log.Printf("[STORE] Snapshot applied: %d teams, %d disciplines, %d results",
		len(snap.Teams), len(snap.Disciplines), len(snap.Results))
	s.notify(snap)
}

func (s *Store) notify(snap Snapshot) {
	s.subMu.Lock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(Snapshot), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.subs[id])
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(snap.Clone())
	}
}

// Subscribe registers fn for snapshot updates. fn is called right away with
// the current snapshot. The returned function removes the subscription.
// Deliveries are serialized; fn must not call Subscribe or mutate the store.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.deliverMu.Lock()
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	fn(s.Snapshot())
	s.deliverMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// Snapshot returns a copy of the cached state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Ready reports whether the persister has delivered the initial snapshot.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// CompetitorRankings ranks competitors of the cached snapshot.
func (s *Store) CompetitorRankings(category Category) []CompetitorRanking {
	return RankCompetitors(s.Snapshot(), category)
}

// TeamRankings ranks teams of the cached snapshot.
func (s *Store) TeamRankings(category Category) []TeamRanking {
	return RankTeams(s.Snapshot(), category)
}

func (s *Store) write(ctx context.Context, op string, writes ...CollectionWrite) error {
	if err := s.persister.Write(ctx, writes...); err != nil {
		names := make([]string, len(writes))
		for i, w := range writes {
			names[i] = string(w.Collection)
		}
		log.Printf("[STORE_ERROR] %s: writing %s failed: %v", op, strings.Join(names, ","), err)
		return fmt.Errorf("%s: write %s: %w", op, strings.Join(names, ","), err)
	}
	return nil
}

// --- Teams ---

// AddTeam appends a new team. Members get fresh competition-wide ids; ids
// supplied by the caller are ignored.
func (s *Store) AddTeam(ctx context.Context, name string, category Category, members []Competitor) (Team, error) {
	name = strings.TrimSpace(name)
	if err := validateTeam(name, category, len(members)); err != nil {
		return Team{}, err
	}

	snap := s.Snapshot()
	nextMember := nextCompetitorID(snap.Teams)
	team := Team{
		ID:       nextTeamID(snap.Teams),
		Name:     name,
		Category: category,
		Members:  make([]Competitor, 0, len(members)),
	}
	for i, m := range members {
		c, err := newCompetitor(nextMember, m.FirstName, m.LastName, fmt.Sprintf("members[%d]", i))
		if err != nil {
			return Team{}, err
		}
		team.Members = append(team.Members, c)
		nextMember++
	}

	teams := append(snap.Teams, team)
	if err := s.write(ctx, "add team", CollectionWrite{CollectionTeams, teams}); err != nil {
		return Team{}, err
	}
	return team, nil
}

// UpdateTeam replaces name, category and, when members is not nil, the
// member list of a team in place. Members with id 0 are new and get fresh
// ids; other ids must already belong to the team. Results of members dropped
// by the update are removed. A category change is rejected while remaining
// members hold results in disciplines of the old category.
func (s *Store) UpdateTeam(ctx context.Context, id int, name string, category Category, members []Competitor) (Team, error) {
	name = strings.TrimSpace(name)
	snap := s.Snapshot()

	idx := teamIndex(snap.Teams, id)
	if idx < 0 {
		return Team{}, ErrTeamNotFound
	}
	current := snap.Teams[idx]

	keep := members == nil
	if keep {
		members = current.Members
	}
	if err := validateTeam(name, category, len(members)); err != nil {
		return Team{}, err
	}

	updated := Team{ID: id, Name: name, Category: category, Members: current.Members}
	var dropped []int
	if !keep {
		var err error
		updated.Members, dropped, err = reconcileMembers(snap.Teams, current, members)
		if err != nil {
			return Team{}, err
		}
	}

	teams := snap.Teams
	teams[idx] = updated
	results := snap.Results
	if len(dropped) > 0 {
		results = withoutCompetitors(snap.Results, dropped...)
	}
	if category != current.Category {
		members := make(map[int]bool, len(updated.Members))
		for _, m := range updated.Members {
			members[m.ID] = true
		}
		next := Snapshot{Teams: teams, Disciplines: snap.Disciplines, Results: results}
		if r, err := brokenResult(next, func(r Result) bool { return members[r.CompetitorID] }); err != nil {
			return Team{}, invalid("category", "result %d of competitor %d does not fit category %s: %v", r.ID, r.CompetitorID, category, err)
		}
	}

	writes := []CollectionWrite{{CollectionTeams, teams}}
	if len(dropped) > 0 {
		writes = append(writes, CollectionWrite{CollectionResults, results})
	}
	if err := s.write(ctx, "update team", writes...); err != nil {
		return Team{}, err
	}
	return updated, nil
}

// AddCompetitorToTeam appends a new member with a fresh competition-wide id.
func (s *Store) AddCompetitorToTeam(ctx context.Context, teamID int, firstName, lastName string) (Competitor, error) {
	snap := s.Snapshot()
	idx := teamIndex(snap.Teams, teamID)
	if idx < 0 {
		return Competitor{}, ErrTeamNotFound
	}
	if len(snap.Teams[idx].Members) >= MaxTeamMembers {
		return Competitor{}, ErrTeamFull
	}

	c, err := newCompetitor(nextCompetitorID(snap.Teams), firstName, lastName, "")
	if err != nil {
		return Competitor{}, err
	}
	snap.Teams[idx].Members = append(snap.Teams[idx].Members, c)

	if err := s.write(ctx, "add competitor", CollectionWrite{CollectionTeams, snap.Teams}); err != nil {
		return Competitor{}, err
	}
	return c, nil
}

// RemoveCompetitorFromTeam removes a member and all of its results.
func (s *Store) RemoveCompetitorFromTeam(ctx context.Context, teamID, competitorID int) error {
	snap := s.Snapshot()
	idx := teamIndex(snap.Teams, teamID)
	if idx < 0 {
		return ErrTeamNotFound
	}

	members := snap.Teams[idx].Members
	kept := make([]Competitor, 0, len(members))
	for _, m := range members {
		if m.ID != competitorID {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(members) {
		return ErrCompetitorNotFound
	}
	snap.Teams[idx].Members = kept

	return s.write(ctx, "remove competitor",
		CollectionWrite{CollectionTeams, snap.Teams},
		CollectionWrite{CollectionResults, withoutCompetitors(snap.Results, competitorID)},
	)
}

// DeleteTeam removes a team and the results of all of its members.
func (s *Store) DeleteTeam(ctx context.Context, teamID int) error {
	snap := s.Snapshot()
	idx := teamIndex(snap.Teams, teamID)
	if idx < 0 {
		return ErrTeamNotFound
	}

	memberIDs := make([]int, 0, len(snap.Teams[idx].Members))
	for _, m := range snap.Teams[idx].Members {
		memberIDs = append(memberIDs, m.ID)
	}
	teams := append(snap.Teams[:idx:idx], snap.Teams[idx+1:]...)

	return s.write(ctx, "delete team",
		CollectionWrite{CollectionTeams, teams},
		CollectionWrite{CollectionResults, withoutCompetitors(snap.Results, memberIDs...)},
	)
}

// --- Disciplines ---

// AddDiscipline appends a discipline. Names are unique within a category.
func (s *Store) AddDiscipline(ctx context.Context, name string, category Category) (Discipline, error) {
	name = strings.TrimSpace(name)
	snap := s.Snapshot()
	if err := validateDiscipline(snap.Disciplines, 0, name, category); err != nil {
		return Discipline{}, err
	}

	d := Discipline{ID: nextDisciplineID(snap.Disciplines), Name: name, Category: category}
	disciplines := append(snap.Disciplines, d)
	if err := s.write(ctx, "add discipline", CollectionWrite{CollectionDisciplines, disciplines}); err != nil {
		return Discipline{}, err
	}
	return d, nil
}

// UpdateDiscipline replaces a discipline in place. The update is rejected
// when a stored result of the discipline would exceed the new maximum or
// belong to a team of another category.
func (s *Store) UpdateDiscipline(ctx context.Context, id int, name string, category Category) (Discipline, error) {
	name = strings.TrimSpace(name)
	snap := s.Snapshot()

	idx := -1
	for i, d := range snap.Disciplines {
		if d.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Discipline{}, ErrDisciplineNotFound
	}
	if err := validateDiscipline(snap.Disciplines, id, name, category); err != nil {
		return Discipline{}, err
	}

	previous := snap.Disciplines[idx]
	d := Discipline{ID: id, Name: name, Category: category}
	snap.Disciplines[idx] = d
	if r, err := brokenResult(snap, func(r Result) bool { return r.DisciplineID == id }); err != nil {
		field := "name"
		if category != previous.Category {
			field = "category"
		}
		return Discipline{}, invalid(field, "result %d of competitor %d does not fit the updated discipline: %v", r.ID, r.CompetitorID, err)
	}
	if err := s.write(ctx, "update discipline", CollectionWrite{CollectionDisciplines, snap.Disciplines}); err != nil {
		return Discipline{}, err
	}
	return d, nil
}

// DeleteDiscipline removes a discipline and every result scored in it.
func (s *Store) DeleteDiscipline(ctx context.Context, id int) error {
	snap := s.Snapshot()
	if _, ok := snap.Discipline(id); !ok {
		return ErrDisciplineNotFound
	}

	disciplines := make([]Discipline, 0, len(snap.Disciplines))
	for _, d := range snap.Disciplines {
		if d.ID != id {
			disciplines = append(disciplines, d)
		}
	}
	results := make([]Result, 0, len(snap.Results))
	for _, r := range snap.Results {
		if r.DisciplineID != id {
			results = append(results, r)
		}
	}

	return s.write(ctx, "delete discipline",
		CollectionWrite{CollectionDisciplines, disciplines},
		CollectionWrite{CollectionResults, results},
	)
}

// --- Results ---

// AddResult records points for a competitor in a discipline. An existing
// result for the same pair is overwritten and keeps its id.
func (s *Store) AddResult(ctx context.Context, competitorID, disciplineID int, points float64) (Result, error) {
	snap := s.Snapshot()
	if err := validateResult(snap, competitorID, disciplineID, points); err != nil {
		return Result{}, err
	}

	r := Result{CompetitorID: competitorID, DisciplineID: disciplineID, Points: points}
	results := snap.Results
	existing := -1
	for i, row := range results {
		if row.CompetitorID == competitorID && row.DisciplineID == disciplineID {
			existing = i
			break
		}
	}
	if existing >= 0 {
		r.ID = results[existing].ID
		results[existing] = r
	} else {
		r.ID = nextResultID(results)
		results = append(results, r)
	}

	if err := s.write(ctx, "add result", CollectionWrite{CollectionResults, results}); err != nil {
		return Result{}, err
	}
	return r, nil
}

// UpdateResult replaces a result row in place.
func (s *Store) UpdateResult(ctx context.Context, resultID, competitorID, disciplineID int, points float64) (Result, error) {
	snap := s.Snapshot()
	idx := -1
	for i, r := range snap.Results {
		if r.ID == resultID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Result{}, ErrResultNotFound
	}
	if err := validateResult(snap, competitorID, disciplineID, points); err != nil {
		return Result{}, err
	}
	for _, r := range snap.Results {
		if r.ID != resultID && r.CompetitorID == competitorID && r.DisciplineID == disciplineID {
			return Result{}, invalid("disciplineId", "competitor %d already has result %d in discipline %d", competitorID, r.ID, disciplineID)
		}
	}

	r := Result{ID: resultID, CompetitorID: competitorID, DisciplineID: disciplineID, Points: points}
	snap.Results[idx] = r
	if err := s.write(ctx, "update result", CollectionWrite{CollectionResults, snap.Results}); err != nil {
		return Result{}, err
	}
	return r, nil
}

// DeleteResult removes a result. Unknown ids are ignored.
func (s *Store) DeleteResult(ctx context.Context, resultID int) error {
	snap := s.Snapshot()
	results := make([]Result, 0, len(snap.Results))
	for _, r := range snap.Results {
		if r.ID != resultID {
			results = append(results, r)
		}
	}
	if len(results) == len(snap.Results) {
		return nil
	}
	return s.write(ctx, "delete result", CollectionWrite{CollectionResults, results})
}

// --- helpers ---

func nextTeamID(teams []Team) int {
	highest := 0
	for _, t := range teams {
		if t.ID > highest {
			highest = t.ID
		}
	}
	return highest + 1
}

func nextCompetitorID(teams []Team) int {
	highest := 0
	for _, t := range teams {
		for _, m := range t.Members {
			if m.ID > highest {
				highest = m.ID
			}
		}
	}
	return highest + 1
}

func nextDisciplineID(disciplines []Discipline) int {
	highest := 0
	for _, d := range disciplines {
		if d.ID > highest {
			highest = d.ID
		}
	}
	return highest + 1
}

func nextResultID(results []Result) int {
	highest := 0
	for _, r := range results {
		if r.ID > highest {
			highest = r.ID
		}
	}
	return highest + 1
}

func teamIndex(teams []Team, id int) int {
	for i, t := range teams {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func withoutCompetitors(results []Result, ids ...int) []Result {
	drop := make(map[int]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	out := make([]Result, 0, len(results))
	for _, r := range results {
		if !drop[r.CompetitorID] {
			out = append(out, r)
		}
	}
	return out
}

// reconcileMembers resolves the member list of an updated team and reports
// which former members it drops.
func reconcileMembers(teams []Team, current Team, members []Competitor) ([]Competitor, []int, error) {
	existing := make(map[int]bool, len(current.Members))
	for _, m := range current.Members {
		existing[m.ID] = true
	}

	next := nextCompetitorID(teams)
	seen := make(map[int]bool, len(members))
	out := make([]Competitor, 0, len(members))
	for i, m := range members {
		field := fmt.Sprintf("members[%d]", i)
		id := m.ID
		if id == 0 {
			id = next
			next++
		} else if !existing[id] {
			return nil, nil, invalid(field+".id", "competitor %d is not a member of team %d", id, current.ID)
		}
		if seen[id] {
			return nil, nil, invalid(field+".id", "competitor %d listed twice", id)
		}
		seen[id] = true

		c, err := newCompetitor(id, m.FirstName, m.LastName, field)
		if err != nil {
			return nil, nil, err
		}
		out = append(out, c)
	}

	var dropped []int
	for _, m := range current.Members {
		if !seen[m.ID] {
			dropped = append(dropped, m.ID)
		}
	}
	return out, dropped, nil
}

// brokenResult returns the first result selected by affected that no longer
// passes validation against snap.
func brokenResult(snap Snapshot, affected func(Result) bool) (Result, error) {
	for _, r := range snap.Results {
		if !affected(r) {
			continue
		}
		if err := validateResult(snap, r.CompetitorID, r.DisciplineID, r.Points); err != nil {
			return r, err
		}
	}
	return Result{}, nil
}

func newCompetitor(id int, firstName, lastName, field string) (Competitor, error) {
	prefix := ""
	if field != "" {
		prefix = field + "."
	}
	c := Competitor{ID: id, FirstName: strings.TrimSpace(firstName), LastName: strings.TrimSpace(lastName)}
	if c.FirstName == "" {
		return Competitor{}, invalid(prefix+"firstName", "must not be empty")
	}
	if c.LastName == "" {
		return Competitor{}, invalid(prefix+"lastName", "must not be empty")
	}
	return c, nil
}

func validateTeam(name string, category Category, members int) error {
	if name == "" {
		return invalid("name", "must not be empty")
	}
	if !category.Valid() {
		return invalid("category", "unknown category %q", category)
	}
	if members > MaxTeamMembers {
		return ErrTeamFull
	}
	return nil
}

func validateDiscipline(disciplines []Discipline, id int, name string, category Category) error {
	if name == "" {
		return invalid("name", "must not be empty")
	}
	if !category.Valid() {
		return invalid("category", "unknown category %q", category)
	}
	for _, d := range disciplines {
		if d.ID != id && d.Category == category && d.Name == name {
			return invalid("name", "discipline %q already exists in category %s", name, category)
		}
	}
	return nil
}

func validateResult(snap Snapshot, competitorID, disciplineID int, points float64) error {
	_, team, ok := snap.FindCompetitor(competitorID)
	if !ok {
		return ErrCompetitorNotFound
	}
	d, ok := snap.Discipline(disciplineID)
	if !ok {
		return ErrDisciplineNotFound
	}
	if d.Category != team.Category {
		return invalid("disciplineId", "discipline %q is not scored in category %s", d.Name, team.Category)
	}
	if math.IsNaN(points) || math.IsInf(points, 0) {
		return invalid("points", "must be a number")
	}
	if points < 0 {
		return invalid("points", "cannot be negative")
	}
	if limit := MaxPoints(d.Name); points > limit {
		return invalid("points", "maximum for %s is %g", d.Name, limit)
	}
	return nil
}
