package discipline

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/lovacko/internal/common"
	"github.com/DhavalSuthar-24/lovacko/internal/competition"
	"github.com/DhavalSuthar-24/lovacko/pkg/responses"
)

type DisciplineController struct {
	repo DisciplineRepository
}

func NewDisciplineController(repo DisciplineRepository) *DisciplineController {
	return &DisciplineController{repo: repo}
}

// GetDisciplines godoc
// @Summary List disciplines
// @Tags Disciplines
// @Produce json
// @Param category query string false "Category (M or Ž)"
// @Success 200 {object} responses.SuccessResponse{data=[]competition.Discipline} "List of disciplines"
// @Failure 400 {object} responses.ErrorResponse "Invalid category"
// @Router /disciplines [get]
func (dc *DisciplineController) GetDisciplines(c *gin.Context) {
	category, ok := common.ParseCategory(c)
	if !ok {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Disciplines retrieved successfully", dc.repo.Snapshot().DisciplinesFor(category))
}

// GetMaxPoints godoc
// @Summary Maximum points of a discipline
// @Description Returns the highest score accepted for a discipline name; unknown names allow 100.
// @Tags Disciplines
// @Produce json
// @Param name query string true "Discipline name"
// @Success 200 {object} responses.SuccessResponse{data=MaxPointsResponse}
// @Failure 400 {object} responses.ErrorResponse "Missing name"
// @Router /disciplines/max-points [get]
func (dc *DisciplineController) GetMaxPoints(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		responses.BadRequest(c, "Query parameter 'name' is required")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", MaxPointsResponse{Name: name, MaxPoints: competition.MaxPoints(name)})
}

// CreateDiscipline godoc
// @Summary Create a discipline
// @Description Names are unique within a category.
// @Tags Disciplines
// @Accept json
// @Produce json
// @Param discipline body DisciplineRequest true "Discipline"
// @Success 202 {object} responses.SuccessResponse{data=competition.Discipline} "Discipline accepted"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 500 {object} responses.ErrorResponse "Persistence failure"
// @Router /disciplines [post]
func (dc *DisciplineController) CreateDiscipline(c *gin.Context) {
	var req DisciplineRequest
	if !common.BindJSON(c, &req) {
		return
	}
	d, err := dc.repo.AddDiscipline(c.Request.Context(), req.Name, competition.Category(req.Category))
	if err != nil {
		common.RespondStoreError(c, err)
		return
	}
	responses.SendAccepted(c, "Discipline created successfully", d)
}

// UpdateDiscipline godoc
// @Summary Update a discipline
// @Tags Disciplines
// @Accept json
// @Produce json
// @Param discipline_id path int true "Discipline ID"
// @Param discipline body DisciplineRequest true "Discipline"
// @Success 202 {object} responses.SuccessResponse{data=competition.Discipline} "Discipline accepted"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 404 {object} responses.ErrorResponse "Discipline not found"
// @Failure 500 {object} responses.ErrorResponse "Persistence failure"
// @Router /disciplines/{discipline_id} [put]
func (dc *DisciplineController) UpdateDiscipline(c *gin.Context) {
	id, ok := common.ParseIDParam(c, "discipline_id", "discipline")
	if !ok {
		return
	}
	var req DisciplineRequest
	if !common.BindJSON(c, &req) {
		return
	}
	d, err := dc.repo.UpdateDiscipline(c.Request.Context(), id, req.Name, competition.Category(req.Category))
	if err != nil {
		common.RespondStoreError(c, err)
		return
	}
	responses.SendAccepted(c, "Discipline updated successfully", d)
}

// DeleteDiscipline godoc
// @Summary Delete a discipline
// @Description Deletes the discipline and every result scored in it.
// @Tags Disciplines
// @Produce json
// @Param discipline_id path int true "Discipline ID"
// @Success 202 {object} responses.SuccessResponse "Deletion accepted"
// @Failure 400 {object} responses.ErrorResponse "Invalid discipline ID"
// @Failure 404 {object} responses.ErrorResponse "Discipline not found"
// @Failure 500 {object} responses.ErrorResponse "Persistence failure"
// @Router /disciplines/{discipline_id} [delete]
func (dc *DisciplineController) DeleteDiscipline(c *gin.Context) {
	id, ok := common.ParseIDParam(c, "discipline_id", "discipline")
	if !ok {
		return
	}
	if err := dc.repo.DeleteDiscipline(c.Request.Context(), id); err != nil {
		common.RespondStoreError(c, err)
		return
	}
	responses.SendAccepted(c, "Discipline deleted successfully", nil)
}
