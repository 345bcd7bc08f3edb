package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/DhavalSuthar-24/lovacko/config"
	"github.com/DhavalSuthar-24/lovacko/internal/competition"
	"github.com/DhavalSuthar-24/lovacko/internal/discipline"
	"github.com/DhavalSuthar-24/lovacko/internal/middleware"
	"github.com/DhavalSuthar-24/lovacko/internal/ranking"
	"github.com/DhavalSuthar-24/lovacko/internal/result"
	"github.com/DhavalSuthar-24/lovacko/internal/team"
	"github.com/DhavalSuthar-24/lovacko/pkg/validator"
)

// SetupRoutes wires every endpoint onto the store. exporter may be nil.
func SetupRoutes(cfg *config.Config, store *competition.Store, exporter ranking.SheetsExporter) (*gin.Engine, error) {
	if err := validator.Register(); err != nil {
		return nil, err
	}

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.App.FrontendURL}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ready": store.Ready(), "backend": cfg.Store.Backend})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	api.Use(middleware.RequireReady(store))

	team.TeamRoutes(api, store)
	discipline.DisciplineRoutes(api, store)
	result.ResultRoutes(api, store)
	ranking.RankingRoutes(api, store, exporter, cfg.App.ReportTitle)

	return r, nil
}
