package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// Config holds runtime configuration for the service.
type Config struct {
	// Server
	Port      int
	SecretKey string

	// Storage
	DatabasePath string
	ReportsDir   string

	// Search
	SearchBaseURL string
	UserAgent     string

	// Research pipeline
	MaxSearchResults int           // results requested per query
	MaxSources       int           // sources kept per report after ranking
	MaxExtract       int           // sources whose pages are fetched for content
	QueryDelay       time.Duration // pause between successive search queries
	FetchDelay       time.Duration // pause between successive content fetches
	HTTPTimeout      time.Duration // per-request socket timeout

	// Behavior
	Verbose bool
}

// Default returns a Config populated with the stock settings. Callers layer
// file, env, and flag values on top.
func Default() Config {
	return Config{
		Port:             8080,
		DatabasePath:     "research_agent.db",
		ReportsDir:       "reports",
		SearchBaseURL:    "https://html.duckduckgo.com/html/",
		UserAgent:        "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36",
		MaxSearchResults: 5,
		MaxSources:       15,
		MaxExtract:       10,
		QueryDelay:       500 * time.Millisecond,
		FetchDelay:       300 * time.Millisecond,
		HTTPTimeout:      10 * time.Second,
	}
}

// ApplyEnv populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnv(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.SecretKey == "" {
		cfg.SecretKey = os.Getenv("SECRET_KEY")
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" && cfg.DatabasePath == Default().DatabasePath {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("REPORTS_DIR"); v != "" && cfg.ReportsDir == Default().ReportsDir {
		cfg.ReportsDir = v
	}
	if v := os.Getenv("SEARCH_BASE_URL"); v != "" && cfg.SearchBaseURL == Default().SearchBaseURL {
		cfg.SearchBaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && cfg.Port == Default().Port {
			cfg.Port = n
		}
	}
}

// FileConfig represents the optional YAML configuration schema. Nested
// sections map naturally to flags and env.
type FileConfig struct {
	Port      int    `yaml:"port"`
	SecretKey string `yaml:"secretKey"`

	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`

	Reports struct {
		Dir string `yaml:"dir"`
	} `yaml:"reports"`

	Search struct {
		BaseURL string `yaml:"baseURL"`
		UA      string `yaml:"ua"`
	} `yaml:"search"`

	Research struct {
		MaxResults int `yaml:"maxResults"`
		MaxSources int `yaml:"maxSources"`
		MaxExtract int `yaml:"maxExtract"`
		// Durations are Go duration strings, e.g. "500ms" or "10s".
		QueryDelay  string `yaml:"queryDelay"`
		FetchDelay  string `yaml:"fetchDelay"`
		HTTPTimeout string `yaml:"httpTimeout"`
	} `yaml:"research"`

	Verbose bool `yaml:"verbose"`
}

// LoadFile reads a YAML config file and overlays its non-zero values on cfg.
// A missing path is not an error; a malformed file is.
func LoadFile(path string, cfg *Config) error {
	if path == "" || cfg == nil {
		return nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if fc.Port > 0 {
		cfg.Port = fc.Port
	}
	if fc.SecretKey != "" {
		cfg.SecretKey = fc.SecretKey
	}
	if fc.Database.Path != "" {
		cfg.DatabasePath = fc.Database.Path
	}
	if fc.Reports.Dir != "" {
		cfg.ReportsDir = fc.Reports.Dir
	}
	if fc.Search.BaseURL != "" {
		cfg.SearchBaseURL = fc.Search.BaseURL
	}
	if fc.Search.UA != "" {
		cfg.UserAgent = fc.Search.UA
	}
	if fc.Research.MaxResults > 0 {
		cfg.MaxSearchResults = fc.Research.MaxResults
	}
	if fc.Research.MaxSources > 0 {
		cfg.MaxSources = fc.Research.MaxSources
	}
	if fc.Research.MaxExtract > 0 {
		cfg.MaxExtract = fc.Research.MaxExtract
	}
	if err := overlayDuration(fc.Research.QueryDelay, &cfg.QueryDelay); err != nil {
		return fmt.Errorf("parse config %s: queryDelay: %w", path, err)
	}
	if err := overlayDuration(fc.Research.FetchDelay, &cfg.FetchDelay); err != nil {
		return fmt.Errorf("parse config %s: fetchDelay: %w", path, err)
	}
	if err := overlayDuration(fc.Research.HTTPTimeout, &cfg.HTTPTimeout); err != nil {
		return fmt.Errorf("parse config %s: httpTimeout: %w", path, err)
	}
	if fc.Verbose {
		cfg.Verbose = true
	}
	return nil
}

func overlayDuration(raw string, dst *time.Duration) error {
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return err
	}
	if d > 0 {
		*dst = d
	}
	return nil
}
