package ranking

import "github.com/gin-gonic/gin"

// RankingRoutes sets up state, ranking and report routes. exporter may be nil
// when spreadsheet export is not configured.
func RankingRoutes(router *gin.RouterGroup, repo RankingRepository, exporter SheetsExporter, reportTitle string) {
	rc := NewRankingController(repo, exporter, reportTitle)

	router.GET("/state", rc.GetState)
	router.GET("/events", rc.Events)

	router.GET("/rankings/competitors", rc.GetCompetitorRankings)
	router.GET("/rankings/teams", rc.GetTeamRankings)

	router.GET("/reports/:kind", rc.GetReport)
	router.POST("/reports/:kind/sheets", rc.ExportReport)
}
