package ranking

import (
	"context"

	"github.com/DhavalSuthar-24/lovacko/internal/competition"
	"github.com/DhavalSuthar-24/lovacko/internal/report"
	"github.com/DhavalSuthar-24/lovacko/internal/sheets"
)

// RankingRepository is the read side of the competition store.
type RankingRepository interface {
	Snapshot() competition.Snapshot
	CompetitorRankings(category competition.Category) []competition.CompetitorRanking
	TeamRankings(category competition.Category) []competition.TeamRanking
	Subscribe(fn func(competition.Snapshot)) (unsubscribe func())
}

// SheetsExporter writes a report into a spreadsheet.
type SheetsExporter interface {
	Export(ctx context.Context, doc report.Document) (sheets.Export, error)
}

var (
	_ RankingRepository = (*competition.Store)(nil)
	_ SheetsExporter    = (*sheets.Client)(nil)
)
