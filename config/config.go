package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

const defaultStartURL = "https://vtuinternyet.in/browse-internships"

type Config struct {
	StartURL       string
	MaxPages       int // 0 = no page bound
	Keyword        string
	Headless       bool
	JSON           bool
	OutputPath     string // "" = stdout
	CSVPath        string // "" = no CSV file
	SaveToDB       bool
	SelectorsPath  string
	RequestTimeout time.Duration
	MinDelay       time.Duration
	MaxDelay       time.Duration
	MaxRetries     int
	DBHost         string
	DBPort         int
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
}

func DefaultConfig() *Config {
	return &Config{
		StartURL:       defaultStartURL,
		MaxPages:       0,
		Headless:       true,
		RequestTimeout: 20 * time.Second,
		MinDelay:       500 * time.Millisecond,
		MaxDelay:       1500 * time.Millisecond,
		MaxRetries:     3,
		DBHost:         "localhost",
		DBPort:         5432,
		DBUser:         "postgres",
		DBPassword:     "postgres",
		DBName:         "vtu_internships",
		DBSSLMode:      "disable",
	}
}

// ParseFlags overlays command-line flags on top of the defaults.
// A separate FlagSet keeps this callable from tests.
func ParseFlags(args []string) (*Config, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet("vtu-portal-scraper", flag.ContinueOnError)
	fs.StringVar(&cfg.StartURL, "url", cfg.StartURL, "start URL for the internship listing page")
	fs.BoolVar(&cfg.Headless, "headless", cfg.Headless, "run Chrome without a visible window")
	fs.IntVar(&cfg.MaxPages, "max-pages", cfg.MaxPages, "maximum pages to scrape (0 = all)")
	fs.StringVar(&cfg.Keyword, "keyword", cfg.Keyword, "keep only listings whose title or company contains this keyword")
	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "emit a JSON array instead of human-readable text")
	fs.StringVar(&cfg.OutputPath, "output", cfg.OutputPath, "destination file (default stdout)")
	fs.StringVar(&cfg.CSVPath, "csv", cfg.CSVPath, "also write results to this CSV file")
	fs.BoolVar(&cfg.SaveToDB, "db", cfg.SaveToDB, "also save results to PostgreSQL (connection from DB_* env vars)")
	fs.StringVar(&cfg.SelectorsPath, "selectors", cfg.SelectorsPath, "YAML file overriding the portal CSS selectors")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "per-page load timeout")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.StartURL == "" {
		return nil, fmt.Errorf("start URL must not be empty")
	}
	if cfg.MaxPages < 0 {
		return nil, fmt.Errorf("max-pages must be >= 0, got %d", cfg.MaxPages)
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides DB settings from the environment. main loads .env
// via godotenv before flags are parsed, so both sources end up here.
func (c *Config) applyEnv() {
	if v := os.Getenv("DB_HOST"); v != "" {
		c.DBHost = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.DBPort = p
		}
	}
	if v := os.Getenv("DB_USER"); v != "" {
		c.DBUser = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.DBPassword = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		c.DBName = v
	}
	if v := os.Getenv("DB_SSLMODE"); v != "" {
		c.DBSSLMode = v
	}
}
