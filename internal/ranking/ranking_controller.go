package ranking

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/lovacko/internal/common"
	"github.com/DhavalSuthar-24/lovacko/internal/competition"
	"github.com/DhavalSuthar-24/lovacko/internal/report"
	"github.com/DhavalSuthar-24/lovacko/pkg/responses"
)

type RankingController struct {
	repo     RankingRepository
	exporter SheetsExporter
	title    string
	now      func() time.Time
}

func NewRankingController(repo RankingRepository, exporter SheetsExporter, title string) *RankingController {
	return &RankingController{repo: repo, exporter: exporter, title: title, now: time.Now}
}

// GetState godoc
// @Summary Current competition state
// @Description Returns teams, disciplines and results as last applied by the store.
// @Tags State
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=competition.Snapshot}
// @Router /state [get]
func (rc *RankingController) GetState(c *gin.Context) {
	responses.SendSuccess(c, http.StatusOK, "State retrieved successfully", rc.repo.Snapshot())
}

// Events godoc
// @Summary Stream state changes
// @Description Server-sent events; a "snapshot" event carries the full state right away and after every applied change.
// @Tags State
// @Produce text/event-stream
// @Success 200 {object} competition.Snapshot
// @Router /events [get]
func (rc *RankingController) Events(c *gin.Context) {
	// Only the newest snapshot matters to a slow client.
	updates := make(chan competition.Snapshot, 1)
	var mu sync.Mutex
	unsubscribe := rc.repo.Subscribe(func(s competition.Snapshot) {
		mu.Lock()
		defer mu.Unlock()
		select {
		case <-updates:
		default:
		}
		updates <- s
	})
	defer unsubscribe()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case s := <-updates:
			c.SSEvent("snapshot", s)
			return true
		}
	})
}

// GetCompetitorRankings godoc
// @Summary Individual ranking
// @Description Ranks competitors by total points. Without a category both categories share one list.
// @Tags Rankings
// @Produce json
// @Param category query string false "Category (M or Ž)"
// @Success 200 {object} responses.SuccessResponse{data=[]competition.CompetitorRanking}
// @Failure 400 {object} responses.ErrorResponse "Invalid category"
// @Router /rankings/competitors [get]
func (rc *RankingController) GetCompetitorRankings(c *gin.Context) {
	category, ok := common.ParseCategory(c)
	if !ok {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Rankings computed successfully", rc.repo.CompetitorRankings(category))
}

// GetTeamRankings godoc
// @Summary Team ranking
// @Description Ranks teams by the formula applied to the summed points of their members.
// @Tags Rankings
// @Produce json
// @Param category query string false "Category (M or Ž)"
// @Success 200 {object} responses.SuccessResponse{data=[]competition.TeamRanking}
// @Failure 400 {object} responses.ErrorResponse "Invalid category"
// @Router /rankings/teams [get]
func (rc *RankingController) GetTeamRankings(c *gin.Context) {
	category, ok := common.ParseCategory(c)
	if !ok {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Rankings computed successfully", rc.repo.TeamRankings(category))
}

// GetReport godoc
// @Summary Build a report
// @Description Builds the individual, team or complete report as JSON or as a CSV download.
// @Tags Reports
// @Produce json,text/csv
// @Param kind path string true "competitors, teams or complete"
// @Param category query string false "Category (M or Ž)"
// @Param format query string false "json or csv" default(json)
// @Success 200 {object} responses.SuccessResponse{data=report.Document}
// @Failure 400 {object} responses.ErrorResponse "Invalid report kind, category or format"
// @Router /reports/{kind} [get]
func (rc *RankingController) GetReport(c *gin.Context) {
	doc, ok := rc.buildReport(c)
	if !ok {
		return
	}

	switch format := c.DefaultQuery("format", "json"); format {
	case "json":
		responses.SendSuccess(c, http.StatusOK, "Report generated successfully", doc)
	case "csv":
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.csv"`, doc.FileName))
		c.Status(http.StatusOK)
		if err := report.WriteCSV(c.Writer, doc); err != nil {
			log.Printf("[REPORT_ERROR] Writing %s.csv failed: %v", doc.FileName, err)
		}
	default:
		responses.BadRequest(c, "Invalid format: expected json or csv")
	}
}

// ExportReport godoc
// @Summary Export a report to Google Sheets
// @Description Writes the report into a spreadsheet tab named after the report file name.
// @Tags Reports
// @Produce json
// @Param kind path string true "competitors, teams or complete"
// @Param category query string false "Category (M or Ž)"
// @Success 200 {object} responses.SuccessResponse{data=sheets.Export}
// @Failure 400 {object} responses.ErrorResponse "Invalid report kind or category"
// @Failure 502 {object} responses.ErrorResponse "Spreadsheet API failure"
// @Failure 503 {object} responses.ErrorResponse "Spreadsheet export not configured"
// @Router /reports/{kind}/sheets [post]
func (rc *RankingController) ExportReport(c *gin.Context) {
	if rc.exporter == nil {
		responses.ServiceUnavailable(c, "Spreadsheet export is not configured")
		return
	}
	doc, ok := rc.buildReport(c)
	if !ok {
		return
	}

	export, err := rc.exporter.Export(c.Request.Context(), doc)
	if err != nil {
		log.Printf("[SHEETS_ERROR] Export of %s failed: %v", doc.FileName, err)
		responses.SendError(c, http.StatusBadGateway, "Failed to export report: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Report exported successfully", export)
}

func (rc *RankingController) buildReport(c *gin.Context) (report.Document, bool) {
	kind, err := report.ParseKind(c.Param("kind"))
	if err != nil {
		responses.BadRequest(c, "Invalid report: expected competitors, teams or complete")
		return report.Document{}, false
	}
	category, ok := common.ParseCategory(c)
	if !ok {
		return report.Document{}, false
	}

	doc := report.Build(kind, rc.repo.Snapshot(), category, rc.now())
	if rc.title != "" {
		doc.Title = rc.title
	}
	log.Printf("[REPORT] Built %s report %s", kind, doc.FileName)
	return doc, true
}
