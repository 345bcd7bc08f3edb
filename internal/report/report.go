// Package report turns rankings into printable documents and renders them.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/DhavalSuthar-24/lovacko/internal/competition"
)

const title = "LOVAČKO NATJECANJE"

// Kind selects which report to build.
type Kind string

const (
	KindCompetitors Kind = "competitors"
	KindTeams       Kind = "teams"
	KindComplete    Kind = "complete"
)

// ParseKind validates a report kind taken from a request path.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindCompetitors, KindTeams, KindComplete:
		return k, nil
	default:
		return "", fmt.Errorf("unknown report %q", s)
	}
}

// Highlight marks the podium rows.
type Highlight int

const (
	HighlightNone Highlight = iota
	HighlightGold
	HighlightSilver
	HighlightBronze
)

// RGB returns the fill color of a highlight and whether the text on it should
// be white.
func (h Highlight) RGB() (r, g, b uint8, lightText bool) {
	switch h {
	case HighlightGold:
		return 255, 215, 0, false
	case HighlightSilver:
		return 192, 192, 192, false
	case HighlightBronze:
		return 205, 127, 50, true
	default:
		return 255, 255, 255, false
	}
}

func (h Highlight) String() string {
	switch h {
	case HighlightGold:
		return "gold"
	case HighlightSilver:
		return "silver"
	case HighlightBronze:
		return "bronze"
	default:
		return ""
	}
}

func (h Highlight) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func highlightFor(rank int) Highlight {
	switch rank {
	case 1:
		return HighlightGold
	case 2:
		return HighlightSilver
	case 3:
		return HighlightBronze
	default:
		return HighlightNone
	}
}

type Row struct {
	Cells     []string  `json:"cells"`
	Highlight Highlight `json:"highlight,omitempty"`
}

type Table struct {
	Title   string   `json:"title,omitempty"`
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Roster lists the members of one ranked team.
type Roster struct {
	Heading string   `json:"heading"`
	Members []string `json:"members"`
}

// Document is a rendered-ready report. FileName carries no extension.
type Document struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Date     string   `json:"date,omitempty"`
	Category string   `json:"category,omitempty"`
	Formula  string   `json:"formula,omitempty"`
	Tables   []Table  `json:"tables"`
	Rosters  []Roster `json:"rosters,omitempty"`
	Footer   string   `json:"footer"`
	FileName string   `json:"fileName"`
}

// Build computes the rankings a report needs from snap and assembles it.
func Build(kind Kind, snap competition.Snapshot, category competition.Category, now time.Time) Document {
	disciplines := snap.DisciplinesFor(category)
	switch kind {
	case KindTeams:
		return Team(competition.RankTeams(snap, category), disciplines, category, now)
	case KindComplete:
		return Complete(competition.RankCompetitors(snap, category), competition.RankTeams(snap, category), disciplines, category, now)
	default:
		return Individual(competition.RankCompetitors(snap, category), disciplines, category, now)
	}
}

// Individual builds the competitor ranking report.
func Individual(rankings []competition.CompetitorRanking, disciplines []competition.Discipline, category competition.Category, now time.Time) Document {
	doc := Document{
		Title:    title,
		Subtitle: "Pojedinačni Poredak",
		Category: categoryLine(category),
		Tables:   []Table{competitorTable("", rankings, disciplineNames(disciplines))},
		Footer:   "Izvještaj generiran: " + FormatDate(now),
		FileName: FileName("pojedinacni-poredak", category, now),
	}
	if f := competition.Formula(category); f != "" {
		doc.Formula = "Formula bodovanja: " + f
	}
	return doc
}

// Team builds the team ranking report including every team's roster.
func Team(rankings []competition.TeamRanking, disciplines []competition.Discipline, category competition.Category, now time.Time) Document {
	doc := Document{
		Title:    title,
		Subtitle: "Ekipni Poredak",
		Category: categoryLine(category),
		Tables:   []Table{teamTable("", rankings, disciplineNames(disciplines))},
		Rosters:  rosters(rankings),
		Footer:   "Izvještaj generiran: " + FormatDate(now),
		FileName: FileName("ekipni-poredak", category, now),
	}
	if f := competition.Formula(category); f != "" {
		doc.Formula = "Formula bodovanja (zbroj svih članova): " + f
	}
	return doc
}

// Complete combines both rankings in one document. Empty rankings are left
// out.
func Complete(individual []competition.CompetitorRanking, teams []competition.TeamRanking, disciplines []competition.Discipline, category competition.Category, now time.Time) Document {
	names := disciplineNames(disciplines)
	doc := Document{
		Title:    title,
		Subtitle: "Kompletan Izvještaj Rezultata",
		Date:     "Datum: " + FormatDate(now),
		Category: categoryLine(category),
		Tables:   []Table{},
		Footer:   "Kompletan izvještaj generiran: " + FormatDate(now),
		FileName: FileName("kompletan-izvjestaj", category, now),
	}
	if len(individual) > 0 {
		doc.Tables = append(doc.Tables, competitorTable("Pojedinačni Poredak", individual, names))
	}
	if len(teams) > 0 {
		doc.Tables = append(doc.Tables, teamTable("Ekipni Poredak", teams, names))
	}
	return doc
}

func competitorTable(heading string, rankings []competition.CompetitorRanking, disciplines []string) Table {
	t := Table{
		Title:   heading,
		Columns: append(append([]string{"Rang", "Ime i Prezime", "Tim"}, disciplines...), "Ukupno"),
		Rows:    make([]Row, 0, len(rankings)),
	}
	for _, r := range rankings {
		cells := []string{strconv.Itoa(r.Rank), r.Competitor.FullName(), r.Team}
		cells = append(cells, scoreCells(r.DisciplineScores, disciplines)...)
		cells = append(cells, FormatTotal(r.TotalPoints))
		t.Rows = append(t.Rows, Row{Cells: cells, Highlight: highlightFor(r.Rank)})
	}
	return t
}

func teamTable(heading string, rankings []competition.TeamRanking, disciplines []string) Table {
	t := Table{
		Title:   heading,
		Columns: append(append([]string{"Rang", "Naziv Ekipe"}, disciplines...), "Ukupno"),
		Rows:    make([]Row, 0, len(rankings)),
	}
	for _, r := range rankings {
		cells := []string{strconv.Itoa(r.Rank), r.Team.Name}
		cells = append(cells, scoreCells(r.DisciplineScores, disciplines)...)
		cells = append(cells, FormatTotal(r.TotalPoints))
		t.Rows = append(t.Rows, Row{Cells: cells, Highlight: highlightFor(r.Rank)})
	}
	return t
}

func rosters(rankings []competition.TeamRanking) []Roster {
	out := make([]Roster, 0, len(rankings))
	for _, r := range rankings {
		members := make([]string, 0, len(r.Team.Members))
		for _, m := range r.Team.Members {
			members = append(members, m.FullName())
		}
		out = append(out, Roster{
			Heading: fmt.Sprintf("%d. %s", r.Rank, r.Team.Name),
			Members: members,
		})
	}
	return out
}

// scoreCells prints one cell per discipline column. Disciplines a row was
// not scored in print as 0.
func scoreCells(scores map[string]float64, disciplines []string) []string {
	cells := make([]string, len(disciplines))
	for i, name := range disciplines {
		cells[i] = FormatScore(scores[name])
	}
	return cells
}

// disciplineNames returns column names in discipline order. A report over
// both categories lists shared names once.
func disciplineNames(disciplines []competition.Discipline) []string {
	seen := make(map[string]bool, len(disciplines))
	names := make([]string, 0, len(disciplines))
	for _, d := range disciplines {
		if seen[d.Name] {
			continue
		}
		seen[d.Name] = true
		names = append(names, d.Name)
	}
	return names
}

func categoryLine(category competition.Category) string {
	if label := category.Label(); label != "" {
		return "Kategorija: " + label
	}
	return ""
}

// FormatScore prints a discipline score with as few decimals as needed.
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatTotal prints a total with exactly two decimals.
func FormatTotal(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatDate prints t the way Croatian locales do, e.g. "16. 10. 2026.".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d. %d. %d.", t.Day(), int(t.Month()), t.Year())
}

// FileName builds an ASCII file name like "ekipni-poredak-Z-2026-10-16". The
// date is taken in now's own location, as FormatDate does.
func FileName(base string, category competition.Category, now time.Time) string {
	parts := []string{base}
	if category != "" {
		parts = append(parts, string(category))
	}
	parts = append(parts, now.Format("2006-01-02"))
	return Normalize(strings.Join(parts, "-"))
}
