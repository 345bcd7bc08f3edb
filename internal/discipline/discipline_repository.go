package discipline

import (
	"context"

	"github.com/DhavalSuthar-24/lovacko/internal/competition"
)

// DisciplineRepository is the part of the competition store the discipline
// endpoints use.
type DisciplineRepository interface {
	Snapshot() competition.Snapshot
	AddDiscipline(ctx context.Context, name string, category competition.Category) (competition.Discipline, error)
	UpdateDiscipline(ctx context.Context, id int, name string, category competition.Category) (competition.Discipline, error)
	DeleteDiscipline(ctx context.Context, id int) error
}

var _ DisciplineRepository = (*competition.Store)(nil)
