package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/DhavalSuthar-24/lovacko/config"
	_ "github.com/DhavalSuthar-24/lovacko/docs"
	"github.com/DhavalSuthar-24/lovacko/internal/competition"
	"github.com/DhavalSuthar-24/lovacko/internal/persistence"
	"github.com/DhavalSuthar-24/lovacko/internal/ranking"
	"github.com/DhavalSuthar-24/lovacko/internal/sheets"
	"github.com/DhavalSuthar-24/lovacko/routes"
)

// @title Lovačko natjecanje REST API
// @version 1.0
// @description Teams, disciplines, results and rankings of a hunting shooting competition.
// @host localhost:8088
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	cfg := config.GetConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	persister, err := openPersister(cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.Store.Backend, err)
	}

	store := competition.NewStore(persister)
	if err := store.Start(ctx); err != nil {
		log.Fatalf("Failed to start store: %v", err)
	}

	var exporter ranking.SheetsExporter
	if cfg.SheetsEnabled() {
		client, err := sheets.New(ctx, cfg.Sheets.CredentialsFile, cfg.Sheets.SpreadsheetID)
		if err != nil {
			log.Fatalf("Failed to set up Google Sheets export: %v", err)
		}
		exporter = client
		log.Printf("Google Sheets export enabled for spreadsheet %s", client.SpreadsheetID())
	}

	r, err := routes.SetupRoutes(cfg, store, exporter)
	if err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	srv := &http.Server{Addr: ":" + cfg.App.Port, Handler: r}
	go func() {
		log.Printf("Starting server on port %s in %s mode with %s store\n", cfg.App.Port, cfg.App.Env, cfg.Store.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to run server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown failed: %v", err)
	}
}

func openPersister(cfg *config.Config) (competition.Persister, error) {
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		db, err := config.ConnectDB(*cfg)
		if err != nil {
			return nil, err
		}
		g := persistence.NewGorm(db, time.Duration(cfg.DB.PollSeconds)*time.Second)
		if err := g.Migrate(); err != nil {
			return nil, err
		}
		log.Println("AutoMigrate successful")
		return g, nil
	case config.BackendRedis:
		client, err := config.ConnectRedis(*cfg)
		if err != nil {
			return nil, err
		}
		return persistence.NewRedis(client, cfg.Redis.KeyPrefix, cfg.Redis.Channel), nil
	default:
		log.Println("Using in-memory store; data is lost on restart")
		return persistence.NewMemory(), nil
	}
}
