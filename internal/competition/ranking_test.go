package competition_test

import (
	"testing"

	"github.com/DhavalSuthar-24/lovacko/internal/competition"
)

func rankingSnapshot() competition.Snapshot {
	return competition.Snapshot{
		Teams: []competition.Team{
			{ID: 1, Name: "Srnjak", Category: competition.CategoryMen, Members: []competition.Competitor{
				{ID: 1, FirstName: "Ante", LastName: "Antić"},
				{ID: 2, FirstName: "Marko", LastName: "Marić"},
			}},
			{ID: 2, Name: "Lisice", Category: competition.CategoryWomen, Members: []competition.Competitor{
				{ID: 3, FirstName: "Ana", LastName: "Anić"},
			}},
			{ID: 3, Name: "Prazni", Category: competition.CategoryMen},
		},
		Disciplines: []competition.Discipline{
			{ID: 1, Name: "TRAP", Category: competition.CategoryMen},
			{ID: 2, Name: "ZRAČNA PUŠKA", Category: competition.CategoryMen},
			{ID: 3, Name: "PRAČKA", Category: competition.CategoryMen},
			{ID: 4, Name: "ZRAČNA PUŠKA", Category: competition.CategoryWomen},
			{ID: 5, Name: "PRAČKA", Category: competition.CategoryWomen},
			{ID: 6, Name: "PIKADO", Category: competition.CategoryWomen},
		},
		Results: []competition.Result{
			// Ante: 80 + 0.5 = 80.5
			{ID: 1, CompetitorID: 1, DisciplineID: 1, Points: 4},
			{ID: 2, CompetitorID: 1, DisciplineID: 2, Points: 0.25},
			// Marko: 80 + 15 = 95
			{ID: 3, CompetitorID: 2, DisciplineID: 1, Points: 4},
			{ID: 4, CompetitorID: 2, DisciplineID: 2, Points: 7.5},
			// Ana: 100 + 100 = 200, no darts
			{ID: 5, CompetitorID: 3, DisciplineID: 4, Points: 50},
			{ID: 6, CompetitorID: 3, DisciplineID: 5, Points: 5},
		},
	}
}

func TestRankCompetitorsOrdersByTotal(t *testing.T) {
	got := competition.RankCompetitors(rankingSnapshot(), competition.CategoryMen)
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}

	if got[0].Competitor.ID != 2 || got[0].Rank != 1 || got[0].TotalPoints != 95 {
		t.Errorf("first row = %+v", got[0])
	}
	if got[1].Competitor.ID != 1 || got[1].Rank != 2 || got[1].TotalPoints != 80.5 {
		t.Errorf("second row = %+v", got[1])
	}
	if got[0].Team != "Srnjak" {
		t.Errorf("team name = %q", got[0].Team)
	}
	if got[1].DisciplineScores["PRAČKA"] != 0 {
		t.Errorf("missing result should score 0, got %v", got[1].DisciplineScores["PRAČKA"])
	}
	if _, ok := got[0].DisciplineScores["PIKADO"]; ok {
		t.Error("women's discipline leaked into men's scores")
	}
}

func TestRankCompetitorsMissingDisciplineScoresZero(t *testing.T) {
	got := competition.RankCompetitors(rankingSnapshot(), competition.CategoryWomen)
	if len(got) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got))
	}
	scores := got[0].DisciplineScores
	v, ok := scores["PIKADO"]
	if !ok || v != 0 {
		t.Fatalf("PIKADO = %v (present %v), want 0", v, ok)
	}
	if got[0].TotalPoints != 200 {
		t.Fatalf("total = %v, want 200", got[0].TotalPoints)
	}
}

func TestRankCompetitorsTiesKeepTeamOrder(t *testing.T) {
	snap := rankingSnapshot()
	snap.Results = nil

	got := competition.RankCompetitors(snap, competition.CategoryMen)
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	for i, row := range got {
		if row.TotalPoints != 0 {
			t.Errorf("row %d total = %v, want 0", i, row.TotalPoints)
		}
		if row.Rank != i+1 {
			t.Errorf("row %d rank = %d, want %d", i, row.Rank, i+1)
		}
	}
	if got[0].Competitor.ID != 1 || got[1].Competitor.ID != 2 {
		t.Errorf("ties reordered: %d, %d", got[0].Competitor.ID, got[1].Competitor.ID)
	}
}

func TestRankCompetitorsWithoutCategoryMixesBoth(t *testing.T) {
	got := competition.RankCompetitors(rankingSnapshot(), "")
	if len(got) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got))
	}
	if got[0].Competitor.ID != 3 || got[0].TotalPoints != 200 {
		t.Errorf("first row = %+v", got[0])
	}
	if _, ok := got[0].DisciplineScores["TRAP"]; ok {
		t.Error("each competitor keeps its own category's disciplines")
	}
}

func TestRankTeams(t *testing.T) {
	got := competition.RankTeams(rankingSnapshot(), competition.CategoryMen)
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}

	top := got[0]
	if top.Team.ID != 1 || top.Rank != 1 {
		t.Fatalf("top row = %+v", top)
	}
	if top.DisciplineScores["TRAP"] != 8 || top.DisciplineScores["ZRAČNA PUŠKA"] != 7.75 {
		t.Errorf("summed scores = %+v", top.DisciplineScores)
	}
	// 8*20 + 7.75*2 = 175.5
	if top.TotalPoints != 175.5 {
		t.Errorf("total = %v, want 175.5", top.TotalPoints)
	}

	empty := got[1]
	if empty.Team.ID != 3 || empty.Rank != 2 || empty.TotalPoints != 0 {
		t.Errorf("empty team row = %+v", empty)
	}
	if len(empty.DisciplineScores) != 3 {
		t.Errorf("empty team should carry zeros for every discipline: %+v", empty.DisciplineScores)
	}
}

func TestRankTeamsReturnsCopies(t *testing.T) {
	snap := rankingSnapshot()
	got := competition.RankTeams(snap, competition.CategoryMen)
	got[0].Team.Members[0].FirstName = "X"
	if snap.Teams[0].Members[0].FirstName != "Ante" {
		t.Fatal("ranking shares member slice with snapshot")
	}
}

func TestRankingsOnEmptySnapshot(t *testing.T) {
	if got := competition.RankCompetitors(competition.Snapshot{}, competition.CategoryMen); got == nil || len(got) != 0 {
		t.Errorf("competitor rankings = %#v", got)
	}
	if got := competition.RankTeams(competition.Snapshot{}, ""); got == nil || len(got) != 0 {
		t.Errorf("team rankings = %#v", got)
	}
}
