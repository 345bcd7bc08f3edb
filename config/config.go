package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store backends selectable with STORE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type Config struct {
	App struct {
		Env         string `env:"APP_ENV" envDefault:"development"`
		Port        string `env:"PORT"    envDefault:"8088"`
		FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:4200"`
		ReportTitle string `env:"REPORT_TITLE" envDefault:"LOVAČKO NATJECANJE"`
	}
	Store struct {
		Backend string `env:"STORE_BACKEND" envDefault:"memory"`
	}
	DB struct {
		Host        string `env:"DB_HOST"     envDefault:"localhost"`
		Port        string `env:"DB_PORT"     envDefault:"5432"`
		User        string `env:"DB_USER"     envDefault:"postgres"`
		Password    string `env:"DB_PASSWORD" envDefault:"password"`
		Name        string `env:"DB_NAME"     envDefault:"lovacko_db"`
		SSLMode     string `env:"DB_SSLMODE"  envDefault:"disable"`
		PollSeconds int    `env:"DB_POLL_SECONDS" envDefault:"2"`
	}
	Redis struct {
		Addr      string `env:"REDIS_ADDR"       envDefault:"localhost:6379"`
		Password  string `env:"REDIS_PASSWORD"   envDefault:""`
		DB        int    `env:"REDIS_DB"         envDefault:"0"`
		KeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"lovacko"`
		Channel   string `env:"REDIS_CHANNEL"    envDefault:"lovacko:changes"`
	}
	Sheets struct {
		CredentialsFile string `env:"SHEETS_CREDENTIALS_FILE"`
		SpreadsheetID   string `env:"SHEETS_SPREADSHEET_ID"`
	}
}

// SheetsEnabled reports whether spreadsheet export is configured.
func (c *Config) SheetsEnabled() bool {
	return c.Sheets.CredentialsFile != "" && c.Sheets.SpreadsheetID != ""
}

var appConfig *Config
var once sync.Once

// LoadConfig reads the .env file, when there is one, and the environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on system environment variables.")
	}

	cfg := &Config{}

	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.Port = getEnv("PORT", "8088")
	cfg.App.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:4200")
	cfg.App.ReportTitle = getEnv("REPORT_TITLE", "LOVAČKO NATJECANJE")

	cfg.Store.Backend = getEnv("STORE_BACKEND", BackendMemory)
	switch cfg.Store.Backend {
	case BackendMemory, BackendPostgres, BackendRedis:
	default:
		return nil, fmt.Errorf("invalid STORE_BACKEND %q: expected memory, postgres or redis", cfg.Store.Backend)
	}

	cfg.DB.Host = getEnv("DB_HOST", "localhost")
	cfg.DB.Port = getEnv("DB_PORT", "5432")
	cfg.DB.User = getEnv("DB_USER", "postgres")
	cfg.DB.Password = getEnv("DB_PASSWORD", "password")
	cfg.DB.Name = getEnv("DB_NAME", "lovacko_db")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")

	var err error
	cfg.DB.PollSeconds, err = getEnvAsInt("DB_POLL_SECONDS", 2)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_POLL_SECONDS: %w", err)
	}

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB, err = getEnvAsInt("REDIS_DB", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	cfg.Redis.KeyPrefix = getEnv("REDIS_KEY_PREFIX", "lovacko")
	cfg.Redis.Channel = getEnv("REDIS_CHANNEL", "lovacko:changes")

	cfg.Sheets.CredentialsFile = getEnv("SHEETS_CREDENTIALS_FILE", "")
	cfg.Sheets.SpreadsheetID = getEnv("SHEETS_SPREADSHEET_ID", "")

	if cfg.DB.Password == "password" && cfg.App.Env == "production" && cfg.Store.Backend == BackendPostgres {
		log.Println("WARNING: Using default DB password in production. Please set DB_PASSWORD environment variable.")
	}

	appConfig = cfg
	return cfg, nil
}

// ConnectDB opens the PostgreSQL database used by the postgres backend.
func ConnectDB(dbCfg Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Europe/Zagreb",
		dbCfg.DB.Host,
		dbCfg.DB.User,
		dbCfg.DB.Password,
		dbCfg.DB.Name,
		dbCfg.DB.Port,
		dbCfg.DB.SSLMode,
	)

	gormConfig := &gorm.Config{}
	if dbCfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Successfully connected to database!")
	return gormDB, nil
}

// ConnectRedis opens and pings the Redis server used by the redis backend.
func ConnectRedis(cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
	}

	log.Println("Redis connection successfully established.")
	return client, nil
}

// Initialize loads the configuration once. Backends are connected by the
// caller since only the selected one is needed.
func Initialize() error {
	var loadErr error
	once.Do(func() {
		if _, err := LoadConfig(); err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
		}
	})
	return loadErr
}

// GetConfig returns the loaded configuration. Initialize must run first.
func GetConfig() *Config {
	if appConfig == nil {
		log.Fatal("Configuration not loaded. Call config.Initialize() first.")
	}
	return appConfig
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected integer, got '%s'", key, valueStr)
	}
	return value, nil
}
