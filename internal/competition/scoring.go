package competition

import "math"

// Discipline names that take part in the scoring formulas.
const (
	DisciplineTrap      = "TRAP"
	DisciplineAirRifle  = "ZRAČNA PUŠKA"
	DisciplineSlingshot = "PRAČKA"
	DisciplineDarts     = "PIKADO"
)

// DefaultMaxPoints applies to disciplines the formulas do not know about.
const DefaultMaxPoints = 100

// Weights are chosen so that a maximum score in every discipline is worth
// roughly 100 points.
const (
	weightTrap      = 20
	weightAirRifle  = 2
	weightSlingshot = 20
	weightDarts     = 0.33
)

// MaxPoints returns the highest score accepted for a discipline.
func MaxPoints(disciplineName string) float64 {
	switch disciplineName {
	case DisciplineTrap:
		return 5
	case DisciplineSlingshot:
		return 5
	case DisciplineAirRifle:
		return 50
	case DisciplineDarts:
		return 300
	default:
		return DefaultMaxPoints
	}
}

// TotalPoints applies the category formula to a score map keyed by discipline
// name. Missing disciplines count as zero and disciplines outside the formula
// are ignored. The result is rounded to two decimals.
func TotalPoints(scores map[string]float64, category Category) float64 {
	var total float64
	if category == CategoryMen {
		total = scores[DisciplineTrap]*weightTrap +
			scores[DisciplineAirRifle]*weightAirRifle +
			scores[DisciplineSlingshot]*weightSlingshot
	} else {
		total = scores[DisciplineAirRifle]*weightAirRifle +
			scores[DisciplineSlingshot]*weightSlingshot +
			scores[DisciplineDarts]*weightDarts
	}
	return round2(total)
}

// Formula describes the scoring formula of a category for report headers.
func Formula(category Category) string {
	switch category {
	case CategoryMen:
		return "TRAP × 20 + ZRAČNA PUŠKA × 2 + PRAČKA × 20"
	case CategoryWomen:
		return "ZRAČNA PUŠKA × 2 + PRAČKA × 20 + PIKADO × 0,33"
	default:
		return ""
	}
}

// round2 rounds half away from zero to two decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
