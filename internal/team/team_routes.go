package team

import (
	"github.com/gin-gonic/gin"
)

// TeamRoutes sets up all team and competitor routes
func TeamRoutes(router *gin.RouterGroup, repo TeamRepository) {
	teamController := NewTeamController(repo)

	router.GET("/teams", teamController.GetAllTeams)
	router.GET("/teams/:team_id", teamController.GetTeamByID)
	router.POST("/teams", teamController.CreateTeam)
	router.PUT("/teams/:team_id", teamController.UpdateTeam)
	router.DELETE("/teams/:team_id", teamController.DeleteTeam)

	// Membership
	router.POST("/teams/:team_id/members", teamController.AddTeamMember)
	router.DELETE("/teams/:team_id/members/:competitor_id", teamController.RemoveTeamMember)

	router.GET("/competitors", teamController.GetCompetitors)
}
