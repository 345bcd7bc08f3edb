// result/model.go
package result

type ResultRequest struct {
	CompetitorID int      `json:"competitorId" binding:"required,gt=0"`
	DisciplineID int      `json:"disciplineId" binding:"required,gt=0"`
	Points       *float64 `json:"points" binding:"required"`
}
