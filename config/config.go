package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultHost           = "0.0.0.0"
	DefaultPort           = 3000
	DefaultBackendTimeout = 15 * time.Second
	DefaultWorkspaceTTL   = 12 * time.Hour
	DefaultSweepInterval  = 10 * time.Minute
)

type Config struct {
	App      App        `yaml:"app"`
	Backend  Backend    `yaml:"backend"`
	Desk     Desk       `yaml:"desk"`
	Database pg.Options `yaml:"database"`
	Journal  Journal    `yaml:"journal"`
}

type App struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Backend describes the news API the desk talks to.
type Backend struct {
	BaseURL    string        `yaml:"baseUrl"`
	Timeout    time.Duration `yaml:"timeout"`
	CSRFCookie string        `yaml:"csrfCookie"`
}

type Desk struct {
	PageSize       int           `yaml:"pageSize"`
	SearchDebounce time.Duration `yaml:"searchDebounce"`
	SignInPath     string        `yaml:"signInPath"`
	HomePath       string        `yaml:"homePath"`
	CookieName     string        `yaml:"cookieName"`
	SecureCookie   bool          `yaml:"secureCookie"`
	// WorkspaceTTL is how long an idle editor workspace is kept.
	WorkspaceTTL  time.Duration `yaml:"workspaceTtl"`
	SweepInterval time.Duration `yaml:"sweepInterval"`
}

// Journal turns on the Postgres edit journal. Database is only used when it is enabled.
type Journal struct {
	Enabled    bool `yaml:"enabled"`
	LogQueries bool `yaml:"logQueries"`
}

// Load reads a TOML file, or a YAML file when path ends in .yaml or .yml.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("failed to decode yaml config: %w", err)
		}
	default:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("failed to decode toml config: %w", err)
		}
	}

	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) withDefaults() Config {
	if c.App.Host == "" {
		c.App.Host = DefaultHost
	}
	if c.App.Port == 0 {
		c.App.Port = DefaultPort
	}
	if c.Backend.Timeout <= 0 {
		c.Backend.Timeout = DefaultBackendTimeout
	}
	if c.Desk.WorkspaceTTL <= 0 {
		c.Desk.WorkspaceTTL = DefaultWorkspaceTTL
	}
	if c.Desk.SweepInterval <= 0 {
		c.Desk.SweepInterval = DefaultSweepInterval
	}
	return c
}

func (c Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return errors.New("backend base url is required")
	}
	if c.Journal.Enabled && c.Database.Addr == "" {
		return errors.New("journal is enabled but database addr is empty")
	}
	return nil
}

// Addr is the listen address of the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}
