package discipline

import "github.com/gin-gonic/gin"

// DisciplineRoutes sets up discipline routes
func DisciplineRoutes(router *gin.RouterGroup, repo DisciplineRepository) {
	dc := NewDisciplineController(repo)

	router.GET("/disciplines", dc.GetDisciplines)
	router.GET("/disciplines/max-points", dc.GetMaxPoints)
	router.POST("/disciplines", dc.CreateDiscipline)
	router.PUT("/disciplines/:discipline_id", dc.UpdateDiscipline)
	router.DELETE("/disciplines/:discipline_id", dc.DeleteDiscipline)
}
