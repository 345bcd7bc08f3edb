// discipline/model.go
package discipline

type DisciplineRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Category string `json:"category" binding:"required,category"`
}

// MaxPointsResponse reports the highest score accepted in a discipline.
type MaxPointsResponse struct {
	Name      string  `json:"name"`
	MaxPoints float64 `json:"maxPoints"`
}
