package competition

import "sort"

// RankCompetitors builds the individual ranking. Each member is scored over
// the disciplines of its team's category, missing results count as zero.
// An empty category ranks every team on one list, which mixes the totals of
// both formulas.
func RankCompetitors(s Snapshot, category Category) []CompetitorRanking {
	rankings := []CompetitorRanking{}
	points := s.pointsIndex()

	for _, team := range s.TeamsFor(category) {
		disciplines := s.DisciplinesFor(team.Category)
		for _, member := range team.Members {
			scores := make(map[string]float64, len(disciplines))
			for _, d := range disciplines {
				scores[d.Name] = points[resultKey{member.ID, d.ID}]
			}
			rankings = append(rankings, CompetitorRanking{
				Competitor:       member,
				Team:             team.Name,
				DisciplineScores: scores,
				TotalPoints:      TotalPoints(scores, team.Category),
			})
		}
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].TotalPoints > rankings[j].TotalPoints
	})
	for i := range rankings {
		rankings[i].Rank = i + 1
	}
	return rankings
}

// RankTeams builds the team ranking. A team's discipline score is the sum of
// its members' points; teams without members still appear with zeros.
func RankTeams(s Snapshot, category Category) []TeamRanking {
	rankings := []TeamRanking{}
	points := s.pointsIndex()

	for _, team := range s.TeamsFor(category) {
		disciplines := s.DisciplinesFor(team.Category)
		scores := make(map[string]float64, len(disciplines))
		for _, d := range disciplines {
			var sum float64
			for _, member := range team.Members {
				sum += points[resultKey{member.ID, d.ID}]
			}
			scores[d.Name] = sum
		}
		rankings = append(rankings, TeamRanking{
			Team:             team.clone(),
			DisciplineScores: scores,
			TotalPoints:      TotalPoints(scores, team.Category),
		})
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].TotalPoints > rankings[j].TotalPoints
	})
	for i := range rankings {
		rankings[i].Rank = i + 1
	}
	return rankings
}

type resultKey struct {
	competitorID int
	disciplineID int
}

// pointsIndex maps (competitor, discipline) to points. The first row of a
// pair wins, matching a linear search over the results.
func (s Snapshot) pointsIndex() map[resultKey]float64 {
	idx := make(map[resultKey]float64, len(s.Results))
	for _, r := range s.Results {
		k := resultKey{r.CompetitorID, r.DisciplineID}
		if _, ok := idx[k]; !ok {
			idx[k] = r.Points
		}
	}
	return idx
}
