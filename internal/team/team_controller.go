package team

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/lovacko/internal/common"
	"github.com/DhavalSuthar-24/lovacko/internal/competition"
	"github.com/DhavalSuthar-24/lovacko/pkg/responses"
)

// TeamController handles team and competitor HTTP requests
type TeamController struct {
	repo TeamRepository
}

// NewTeamController creates a new team controller
func NewTeamController(repo TeamRepository) *TeamController {
	return &TeamController{repo: repo}
}

// GetAllTeams godoc
// @Summary List teams
// @Description Lists teams in insertion order, optionally of one category.
// @Tags Teams
// @Produce json
// @Param category query string false "Category (M or Ž)"
// @Success 200 {object} responses.SuccessResponse{data=[]competition.Team} "List of teams"
// @Failure 400 {object} responses.ErrorResponse "Invalid category"
// @Router /teams [get]
func (tc *TeamController) GetAllTeams(c *gin.Context) {
	category, ok := common.ParseCategory(c)
	if !ok {
		return
	}
	teams := tc.repo.Snapshot().TeamsFor(category)
	responses.SendSuccess(c, http.StatusOK, "Teams retrieved successfully", teams)
}

// GetTeamByID godoc
// @Summary Get a team by its ID
// @Tags Teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=competition.Team} "Team details"
// @Failure 400 {object} responses.ErrorResponse "Invalid team ID"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Router /teams/{team_id} [get]
func (tc *TeamController) GetTeamByID(c *gin.Context) {
	teamID, ok := common.ParseIDParam(c, "team_id", "team")
	if !ok {
		return
	}
	team, found := tc.repo.Snapshot().Team(teamID)
	if !found {
		responses.NotFound(c, "Team")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team retrieved successfully", team)
}

// CreateTeam godoc
// @Summary Create a new team
// @Description Adds a team with up to three members. Member IDs are assigned by the server.
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body CreateTeamRequest true "Team Creation Data"
// @Success 202 {object} responses.SuccessResponse{data=competition.Team} "Team accepted"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 409 {object} responses.ErrorResponse "Too many members"
// @Failure 500 {object} responses.ErrorResponse "Persistence failure"
// @Router /teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if !common.BindJSON(c, &req) {
		return
	}

	members := toCompetitors(req.Members)
	for i := range members {
		members[i].ID = 0
	}
	team, err := tc.repo.AddTeam(c.Request.Context(), req.Name, competition.Category(req.Category), members)
	if err != nil {
		common.RespondStoreError(c, err)
		return
	}
	responses.SendAccepted(c, "Team created successfully", team)
}

// UpdateTeam godoc
// @Summary Update a team
// @Description Replaces name, category and, when given, the member list. Results of removed members are deleted.
// @Tags Teams
// @Accept json
// @Produce json
// @Param team_id path int true "Team ID"
// @Param team body UpdateTeamRequest true "Team Update Data"
// @Success 202 {object} responses.SuccessResponse{data=competition.Team} "Team accepted"
// @Failure 400 {object} responses.ErrorResponse "Invalid input or team ID"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 409 {object} responses.ErrorResponse "Too many members"
// @Failure 500 {object} responses.ErrorResponse "Persistence failure"
// @Router /teams/{team_id} [put]
func (tc *TeamController) UpdateTeam(c *gin.Context) {
	teamID, ok := common.ParseIDParam(c, "team_id", "team")
	if !ok {
		return
	}
	var req UpdateTeamRequest
	if !common.BindJSON(c, &req) {
		return
	}

	team, err := tc.repo.UpdateTeam(c.Request.Context(), teamID, req.Name, competition.Category(req.Category), toCompetitors(req.Members))
	if err != nil {
		common.RespondStoreError(c, err)
		return
	}
	responses.SendAccepted(c, "Team updated successfully", team)
}

// DeleteTeam godoc
// @Summary Delete a team
// @Description Deletes a team together with every result of its members.
// @Tags Teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 202 {object} responses.SuccessResponse "Team deletion accepted"
// @Failure 400 {object} responses.ErrorResponse "Invalid team ID"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 500 {object} responses.ErrorResponse "Persistence failure"
// @Router /teams/{team_id} [delete]
func (tc *TeamController) DeleteTeam(c *gin.Context) {
	teamID, ok := common.ParseIDParam(c, "team_id", "team")
	if !ok {
		return
	}
	if err := tc.repo.DeleteTeam(c.Request.Context(), teamID); err != nil {
		common.RespondStoreError(c, err)
		return
	}
	responses.SendAccepted(c, "Team deleted successfully", nil)
}

// AddTeamMember godoc
// @Summary Add a competitor to a team
// @Tags Teams
// @Accept json
// @Produce json
// @Param team_id path int true "Team ID"
// @Param member body AddMemberRequest true "Competitor"
// @Success 202 {object} responses.SuccessResponse{data=competition.Competitor} "Competitor accepted"
// @Failure 400 {object} responses.ErrorResponse "Invalid input or team ID"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 409 {object} responses.ErrorResponse "Team is full"
// @Failure 500 {object} responses.ErrorResponse "Persistence failure"
// @Router /teams/{team_id}/members [post]
func (tc *TeamController) AddTeamMember(c *gin.Context) {
	teamID, ok := common.ParseIDParam(c, "team_id", "team")
	if !ok {
		return
	}
	var req AddMemberRequest
	if !common.BindJSON(c, &req) {
		return
	}

	competitor, err := tc.repo.AddCompetitorToTeam(c.Request.Context(), teamID, req.FirstName, req.LastName)
	if err != nil {
		common.RespondStoreError(c, err)
		return
	}
	responses.SendAccepted(c, "Competitor added successfully", competitor)
}

// RemoveTeamMember godoc
// @Summary Remove a competitor from a team
// @Description Removes the competitor and all of its results.
// @Tags Teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Param competitor_id path int true "Competitor ID"
// @Success 202 {object} responses.SuccessResponse "Removal accepted"
// @Failure 400 {object} responses.ErrorResponse "Invalid ID"
// @Failure 404 {object} responses.ErrorResponse "Team or competitor not found"
// @Failure 500 {object} responses.ErrorResponse "Persistence failure"
// @Router /teams/{team_id}/members/{competitor_id} [delete]
func (tc *TeamController) RemoveTeamMember(c *gin.Context) {
	teamID, ok := common.ParseIDParam(c, "team_id", "team")
	if !ok {
		return
	}
	competitorID, ok := common.ParseIDParam(c, "competitor_id", "competitor")
	if !ok {
		return
	}
	if err := tc.repo.RemoveCompetitorFromTeam(c.Request.Context(), teamID, competitorID); err != nil {
		common.RespondStoreError(c, err)
		return
	}
	responses.SendAccepted(c, "Competitor removed successfully", nil)
}

// GetCompetitors godoc
// @Summary List competitors
// @Description Lists every competitor with the team it belongs to.
// @Tags Teams
// @Produce json
// @Param category query string false "Category (M or Ž)"
// @Success 200 {object} responses.SuccessResponse{data=[]CompetitorView} "List of competitors"
// @Failure 400 {object} responses.ErrorResponse "Invalid category"
// @Router /competitors [get]
func (tc *TeamController) GetCompetitors(c *gin.Context) {
	category, ok := common.ParseCategory(c)
	if !ok {
		return
	}
	views := []CompetitorView{}
	for _, t := range tc.repo.Snapshot().TeamsFor(category) {
		for _, m := range t.Members {
			views = append(views, CompetitorView{Competitor: m, TeamID: t.ID, TeamName: t.Name, Category: t.Category})
		}
	}
	responses.SendSuccess(c, http.StatusOK, "Competitors retrieved successfully", views)
}
