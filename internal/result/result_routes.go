package result

import "github.com/gin-gonic/gin"

// ResultRoutes sets up result routes
func ResultRoutes(router *gin.RouterGroup, repo ResultRepository) {
	rc := NewResultController(repo)

	router.GET("/results", rc.GetResults)
	router.POST("/results", rc.CreateResult)
	router.PUT("/results/:result_id", rc.UpdateResult)
	router.DELETE("/results/:result_id", rc.DeleteResult)
}
