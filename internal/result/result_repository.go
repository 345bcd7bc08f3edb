package result

import (
	"context"

	"github.com/DhavalSuthar-24/lovacko/internal/competition"
)

// ResultRepository is the part of the competition store the result endpoints
// use.
type ResultRepository interface {
	Snapshot() competition.Snapshot
	AddResult(ctx context.Context, competitorID, disciplineID int, points float64) (competition.Result, error)
	UpdateResult(ctx context.Context, resultID, competitorID, disciplineID int, points float64) (competition.Result, error)
	DeleteResult(ctx context.Context, resultID int) error
}

var _ ResultRepository = (*competition.Store)(nil)
