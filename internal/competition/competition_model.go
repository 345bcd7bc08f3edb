// competition/model.go
package competition

// Category partitions teams and disciplines into the men's and women's
// competitions. Each category has its own scoring formula.
type Category string

const (
	CategoryMen   Category = "M"
	CategoryWomen Category = "Ž"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c == CategoryMen || c == CategoryWomen
}

// Label is the human readable category name used in reports.
func (c Category) Label() string {
	switch c {
	case CategoryMen:
		return "Muškarci"
	case CategoryWomen:
		return "Žene"
	default:
		return ""
	}
}

// Collection names accepted by a Persister.
type Collection string

const (
	CollectionTeams       Collection = "teams"
	CollectionDisciplines Collection = "disciplines"
	CollectionResults     Collection = "results"
)

// Competitor is a single team member. IDs are unique across all teams.
type Competitor struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// FullName returns "First Last".
func (c Competitor) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Team groups up to MaxTeamMembers competitors of one category.
type Team struct {
	ID       int          `json:"id"`
	Name     string       `json:"name"`
	Category Category     `json:"category"`
	Members  []Competitor `json:"members"`
}

// Discipline is a scored event. Name is the key used in score maps.
type Discipline struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
}

// Result holds the points of one competitor in one discipline.
type Result struct {
	ID           int     `json:"id"`
	CompetitorID int     `json:"competitorId"`
	DisciplineID int     `json:"disciplineId"`
	Points       float64 `json:"points"`
}

// Snapshot is the whole competition state. It is always read and written as
// one unit.
type Snapshot struct {
	Teams       []Team       `json:"teams"`
	Disciplines []Discipline `json:"disciplines"`
	Results     []Result     `json:"results"`
}

// CompetitorRanking is one row of the individual ranking.
type CompetitorRanking struct {
	Rank             int                `json:"rank"`
	Competitor       Competitor         `json:"competitor"`
	Team             string             `json:"team"`
	DisciplineScores map[string]float64 `json:"disciplineScores"`
	TotalPoints      float64            `json:"totalPoints"`
}

// TeamRanking is one row of the team ranking.
type TeamRanking struct {
	Rank             int                `json:"rank"`
	Team             Team               `json:"team"`
	DisciplineScores map[string]float64 `json:"disciplineScores"`
	TotalPoints      float64            `json:"totalPoints"`
}

// Clone returns a deep copy of the snapshot. Nil collections become empty
// slices so the JSON form never carries null.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Teams:       make([]Team, len(s.Teams)),
		Disciplines: make([]Discipline, len(s.Disciplines)),
		Results:     make([]Result, len(s.Results)),
	}
	for i, t := range s.Teams {
		out.Teams[i] = t.clone()
	}
	copy(out.Disciplines, s.Disciplines)
	copy(out.Results, s.Results)
	return out
}

func (t Team) clone() Team {
	members := make([]Competitor, len(t.Members))
	copy(members, t.Members)
	t.Members = members
	return t
}

// Team returns the team with the given id.
func (s Snapshot) Team(id int) (Team, bool) {
	for _, t := range s.Teams {
		if t.ID == id {
			return t, true
		}
	}
	return Team{}, false
}

// Discipline returns the discipline with the given id.
func (s Snapshot) Discipline(id int) (Discipline, bool) {
	for _, d := range s.Disciplines {
		if d.ID == id {
			return d, true
		}
	}
	return Discipline{}, false
}

// Result returns the result with the given id.
func (s Snapshot) Result(id int) (Result, bool) {
	for _, r := range s.Results {
		if r.ID == id {
			return r, true
		}
	}
	return Result{}, false
}

// FindCompetitor returns a competitor together with the team it belongs to.
func (s Snapshot) FindCompetitor(id int) (Competitor, Team, bool) {
	for _, t := range s.Teams {
		for _, m := range t.Members {
			if m.ID == id {
				return m, t, true
			}
		}
	}
	return Competitor{}, Team{}, false
}

// Competitors returns every team member in team order.
func (s Snapshot) Competitors() []Competitor {
	out := []Competitor{}
	for _, t := range s.Teams {
		out = append(out, t.Members...)
	}
	return out
}

// TeamsFor returns the teams of a category; an empty category returns all.
func (s Snapshot) TeamsFor(category Category) []Team {
	if category == "" {
		return s.Teams
	}
	out := []Team{}
	for _, t := range s.Teams {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// DisciplinesFor returns the disciplines of a category; an empty category
// returns all of them.
func (s Snapshot) DisciplinesFor(category Category) []Discipline {
	if category == "" {
		return s.Disciplines
	}
	out := []Discipline{}
	for _, d := range s.Disciplines {
		if d.Category == category {
			out = append(out, d)
		}
	}
	return out
}
