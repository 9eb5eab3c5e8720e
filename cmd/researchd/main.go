package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/inkwellhq/researchd/internal/compose"
	"github.com/inkwellhq/researchd/internal/config"
	"github.com/inkwellhq/researchd/internal/domain"
	"github.com/inkwellhq/researchd/internal/export"
	"github.com/inkwellhq/researchd/internal/fetch"
	"github.com/inkwellhq/researchd/internal/handler"
	"github.com/inkwellhq/researchd/internal/repository"
	"github.com/inkwellhq/researchd/internal/research"
	"github.com/inkwellhq/researchd/internal/search"
	"github.com/inkwellhq/researchd/internal/service"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	dotenvFiles := config.LoadDotEnv()

	cfg := config.Default()
	var (
		configPath     string
		searchFilePath string
	)
	flag.IntVar(&cfg.Port, "port", cfg.Port, "HTTP listen port")
	flag.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "Path to the SQLite database file")
	flag.StringVar(&cfg.ReportsDir, "reports.dir", cfg.ReportsDir, "Directory for exported report files")
	flag.StringVar(&cfg.SearchBaseURL, "search.url", cfg.SearchBaseURL, "Search endpoint base URL")
	flag.StringVar(&searchFilePath, "search.file", os.Getenv("SEARCH_FILE"), "Path to JSON file for offline file-based search provider")
	flag.IntVar(&cfg.MaxSources, "max.sources", cfg.MaxSources, "Maximum number of sources per report")
	flag.DurationVar(&cfg.QueryDelay, "delay.query", cfg.QueryDelay, "Pause between successive search queries")
	flag.DurationVar(&cfg.FetchDelay, "delay.fetch", cfg.FetchDelay, "Pause between successive content fetches")
	flag.DurationVar(&cfg.HTTPTimeout, "http.timeout", cfg.HTTPTimeout, "Per-request socket timeout")
	flag.StringVar(&configPath, "config", os.Getenv("CONFIG_FILE"), "Optional YAML config file path")
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Verbose logging")
	flag.Parse()

	if err := config.LoadFile(configPath, &cfg); err != nil {
		log.Fatal().Err(err).Msg("load config file")
	}
	config.ApplyEnv(&cfg)

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		gin.SetMode(gin.ReleaseMode)
	}
	if len(dotenvFiles) > 0 {
		log.Info().Strs("files", dotenvFiles).Msg("loaded env files")
	}

	db, err := openDB(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DatabasePath).Msg("open database")
	}

	var provider search.Provider = &search.DuckDuckGo{
		BaseURL:   cfg.SearchBaseURL,
		UserAgent: cfg.UserAgent,
		HTTPClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
	}
	if searchFilePath != "" {
		provider = &search.FileProvider{Path: searchFilePath}
		log.Info().Str("path", searchFilePath).Msg("using file-based search provider")
	}

	engine := &research.Engine{
		Provider: provider,
		Fetcher: &fetch.Client{
			UserAgent:         cfg.UserAgent,
			PerRequestTimeout: cfg.HTTPTimeout,
		},
		ResultsPerQuery: cfg.MaxSearchResults,
		MaxSources:      cfg.MaxSources,
		MaxExtract:      cfg.MaxExtract,
		QueryDelay:      cfg.QueryDelay,
		FetchDelay:      cfg.FetchDelay,
	}

	svc := service.NewReportService(
		engine,
		compose.NewJournalist(),
		repository.NewReportRepository(db),
		repository.NewVersionRepository(db),
	)
	exporter := export.NewExporter(filepath.Join(cfg.ReportsDir, "exports"))

	router := handler.NewRouter(svc, exporter)
	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info().Str("addr", addr).Str("db", cfg.DatabasePath).Msg("starting researchd")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func openDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&domain.Report{},
		&domain.SourceRow{},
		&domain.ReportVersion{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
