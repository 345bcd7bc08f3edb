package result

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/lovacko/internal/common"
	"github.com/DhavalSuthar-24/lovacko/internal/competition"
	"github.com/DhavalSuthar-24/lovacko/pkg/responses"
)

type ResultController struct {
	repo ResultRepository
}

func NewResultController(repo ResultRepository) *ResultController {
	return &ResultController{repo: repo}
}

// GetResults godoc
// @Summary List results
// @Description Lists results in insertion order with optional filters and pagination.
// @Tags Results
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(50)
// @Param competitor_id query int false "Filter by competitor"
// @Param discipline_id query int false "Filter by discipline"
// @Success 200 {object} responses.PaginatedResponse{data=[]competition.Result} "List of results"
// @Router /results [get]
func (rc *ResultController) GetResults(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}

	competitorID, _ := strconv.Atoi(c.Query("competitor_id"))
	disciplineID, _ := strconv.Atoi(c.Query("discipline_id"))

	filtered := []competition.Result{}
	for _, r := range rc.repo.Snapshot().Results {
		if competitorID > 0 && r.CompetitorID != competitorID {
			continue
		}
		if disciplineID > 0 && r.DisciplineID != disciplineID {
			continue
		}
		filtered = append(filtered, r)
	}

	start := (page - 1) * limit
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	responses.SendPaginated(c, http.StatusOK, "Results retrieved successfully", filtered[start:end], int64(len(filtered)), page, limit)
}

// CreateResult godoc
// @Summary Record a result
// @Description Records points of a competitor in a discipline. An existing result for the same pair is overwritten and keeps its ID.
// @Tags Results
// @Accept json
// @Produce json
// @Param result body ResultRequest true "Result"
// @Success 202 {object} responses.SuccessResponse{data=competition.Result} "Result accepted"
// @Failure 400 {object} responses.ErrorResponse "Invalid input or points out of range"
// @Failure 404 {object} responses.ErrorResponse "Competitor or discipline not found"
// @Failure 500 {object} responses.ErrorResponse "Persistence failure"
// @Router /results [post]
func (rc *ResultController) CreateResult(c *gin.Context) {
	var req ResultRequest
	if !common.BindJSON(c, &req) {
		return
	}
	r, err := rc.repo.AddResult(c.Request.Context(), req.CompetitorID, req.DisciplineID, *req.Points)
	if err != nil {
		common.RespondStoreError(c, err)
		return
	}
	responses.SendAccepted(c, "Result saved successfully", r)
}

// UpdateResult godoc
// @Summary Update a result
// @Tags Results
// @Accept json
// @Produce json
// @Param result_id path int true "Result ID"
// @Param result body ResultRequest true "Result"
// @Success 202 {object} responses.SuccessResponse{data=competition.Result} "Result accepted"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 404 {object} responses.ErrorResponse "Result, competitor or discipline not found"
// @Failure 500 {object} responses.ErrorResponse "Persistence failure"
// @Router /results/{result_id} [put]
func (rc *ResultController) UpdateResult(c *gin.Context) {
	id, ok := common.ParseIDParam(c, "result_id", "result")
	if !ok {
		return
	}
	var req ResultRequest
	if !common.BindJSON(c, &req) {
		return
	}
	r, err := rc.repo.UpdateResult(c.Request.Context(), id, req.CompetitorID, req.DisciplineID, *req.Points)
	if err != nil {
		common.RespondStoreError(c, err)
		return
	}
	responses.SendAccepted(c, "Result updated successfully", r)
}

// DeleteResult godoc
// @Summary Delete a result
// @Description Deleting an unknown result succeeds without changes.
// @Tags Results
// @Produce json
// @Param result_id path int true "Result ID"
// @Success 202 {object} responses.SuccessResponse "Deletion accepted"
// @Failure 400 {object} responses.ErrorResponse "Invalid result ID"
// @Failure 500 {object} responses.ErrorResponse "Persistence failure"
// @Router /results/{result_id} [delete]
func (rc *ResultController) DeleteResult(c *gin.Context) {
	id, ok := common.ParseIDParam(c, "result_id", "result")
	if !ok {
		return
	}
	if err := rc.repo.DeleteResult(c.Request.Context(), id); err != nil {
		common.RespondStoreError(c, err)
		return
	}
	responses.SendAccepted(c, "Result deleted successfully", nil)
}
