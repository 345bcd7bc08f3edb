// team/model.go
package team

import "github.com/DhavalSuthar-24/lovacko/internal/competition"

// --- DTOs for requests ---

type MemberRequest struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
}

type CreateTeamRequest struct {
	Name     string          `json:"name" binding:"required,max=100"`
	Category string          `json:"category" binding:"required,category"`
	Members  []MemberRequest `json:"members" binding:"omitempty,dive"`
}

// UpdateTeamRequest replaces a team. Leaving out members keeps the current
// roster; members without an id are added as new competitors.
type UpdateTeamRequest struct {
	Name     string          `json:"name" binding:"required,max=100"`
	Category string          `json:"category" binding:"required,category"`
	Members  []MemberRequest `json:"members" binding:"omitempty,dive"`
}

type AddMemberRequest struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
}

// CompetitorView is a competitor listed together with its team.
type CompetitorView struct {
	competition.Competitor
	TeamID   int                  `json:"teamId"`
	TeamName string               `json:"teamName"`
	Category competition.Category `json:"category"`
}

func toCompetitors(members []MemberRequest) []competition.Competitor {
	if members == nil {
		return nil
	}
	out := make([]competition.Competitor, len(members))
	for i, m := range members {
		out[i] = competition.Competitor{ID: m.ID, FirstName: m.FirstName, LastName: m.LastName}
	}
	return out
}
