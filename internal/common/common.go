package common

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/lovacko/internal/competition"
	"github.com/DhavalSuthar-24/lovacko/pkg/responses"
	"github.com/DhavalSuthar-24/lovacko/pkg/validator"
)

// ParseIDParam reads a positive integer path parameter. On failure it has
// already answered the request.
func ParseIDParam(c *gin.Context, name, label string) (int, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		responses.BadRequest(c, "Invalid "+label+" ID")
		return 0, false
	}
	return int(id), true
}

// ParseCategory reads the optional category query parameter. An empty value
// means both categories.
func ParseCategory(c *gin.Context) (competition.Category, bool) {
	category := competition.Category(c.Query("category"))
	if category != "" && !category.Valid() {
		responses.BadRequest(c, "Invalid category: expected M or Ž")
		return "", false
	}
	return category, true
}

// BindJSON binds the request body and answers with the field errors when it
// does not validate.
func BindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		responses.SendValidationError(c, "Invalid request payload", validator.ParseError(err))
		return false
	}
	return true
}

// RespondStoreError maps a store error onto the matching HTTP response.
func RespondStoreError(c *gin.Context, err error) {
	var verr *competition.ValidationError
	switch {
	case errors.As(err, &verr):
		responses.SendValidationError(c, verr.Error(), map[string]string{verr.Field: verr.Message})
	case errors.Is(err, competition.ErrTeamFull):
		responses.SendError(c, http.StatusConflict, err.Error())
	case competition.IsNotFound(err):
		responses.SendError(c, http.StatusNotFound, notFoundMessage(err))
	default:
		log.Printf("[API_ERROR] %s %s: %v", c.Request.Method, c.FullPath(), err)
		responses.InternalServerError(c, "Failed to save changes: "+err.Error())
	}
}

func notFoundMessage(err error) string {
	switch {
	case errors.Is(err, competition.ErrTeamNotFound):
		return "Team not found"
	case errors.Is(err, competition.ErrCompetitorNotFound):
		return "Competitor not found"
	case errors.Is(err, competition.ErrDisciplineNotFound):
		return "Discipline not found"
	default:
		return "Result not found"
	}
}
