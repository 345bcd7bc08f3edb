package team

import (
	"context"

	"github.com/DhavalSuthar-24/lovacko/internal/competition"
)

// TeamRepository is the part of the competition store the team endpoints use.
type TeamRepository interface {
	Snapshot() competition.Snapshot
	AddTeam(ctx context.Context, name string, category competition.Category, members []competition.Competitor) (competition.Team, error)
	UpdateTeam(ctx context.Context, id int, name string, category competition.Category, members []competition.Competitor) (competition.Team, error)
	DeleteTeam(ctx context.Context, id int) error
	AddCompetitorToTeam(ctx context.Context, teamID int, firstName, lastName string) (competition.Competitor, error)
	RemoveCompetitorFromTeam(ctx context.Context, teamID, competitorID int) error
}

var _ TeamRepository = (*competition.Store)(nil)
