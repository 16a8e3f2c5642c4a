package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Pricing document sources.
const (
	SourceFile     = "file"
	SourceHTTP     = "http"
	SourcePostgres = "postgres"
)

// Environment overrides. Both may come from a .env file loaded by the binary.
const (
	EnvConfigPath = "FITZONE_CONFIG"
	EnvDBPassword = "FITZONE_DB_PASSWORD"
)

type Config struct {
	Server struct {
		Port         string `yaml:"port"`
		AppName      string `yaml:"app_name"`
		TemplatePath string `yaml:"template_path"`
		StaticPath   string `yaml:"static_path"`
		BodyLimit    int    `yaml:"body_limit"`
	} `yaml:"server"`
	Pricing struct {
		Source       string        `yaml:"source"`
		Dir          string        `yaml:"dir"`
		BaseURL      string        `yaml:"base_url"`
		Timeout      time.Duration `yaml:"timeout"`
		DocumentName string        `yaml:"document_name"`
	} `yaml:"pricing"`
	Session struct {
		TTL        time.Duration `yaml:"ttl"`
		CookieName string        `yaml:"cookie_name"`
	} `yaml:"session"`
	RateLimit struct {
		Max    int           `yaml:"max"`
		Window time.Duration `yaml:"window"`
	} `yaml:"rate_limit"`
	Log struct {
		Env   string `yaml:"env"`
		Level string `yaml:"level"`
	} `yaml:"log"`
	Database Database `yaml:"database"`
}

// Database is only read when pricing.source is "postgres".
type Database struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// Path returns the config file location: $FITZONE_CONFIG or ./config.yaml.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return "config.yaml"
}

// LoadConfig reads the main config file and, when present, config.secret.yaml next to it
// (only the database password is taken from the secret file). $FITZONE_DB_PASSWORD wins
// over both.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	secretPath := filepath.Join(filepath.Dir(path), "config.secret.yaml")
	secretData, err := os.ReadFile(secretPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", secretPath, err)
	default:
		var secret struct {
			Database struct {
				Password string `yaml:"password"`
			} `yaml:"database"`
		}
		if err := yaml.Unmarshal(secretData, &secret); err != nil {
			return nil, fmt.Errorf("parse %s: %w", secretPath, err)
		}
		if secret.Database.Password != "" {
			cfg.Database.Password = secret.Database.Password
		}
	}

	if pw := os.Getenv(EnvDBPassword); pw != "" {
		cfg.Database.Password = pw
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = ":3000"
	}
	if c.Server.AppName == "" {
		c.Server.AppName = "FitZone"
	}
	if c.Server.TemplatePath == "" {
		c.Server.TemplatePath = "./views"
	}
	if c.Server.StaticPath == "" {
		c.Server.StaticPath = "./static"
	}
	if c.Server.BodyLimit <= 0 {
		c.Server.BodyLimit = 1024 * 1024
	}
	if c.Pricing.Source == "" {
		c.Pricing.Source = SourceFile
	}
	if c.Pricing.Dir == "" {
		c.Pricing.Dir = c.Server.StaticPath
	}
	if c.Pricing.DocumentName == "" {
		c.Pricing.DocumentName = "default"
	}
	if c.Session.TTL <= 0 {
		c.Session.TTL = 24 * time.Hour
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = "fitzone_session"
	}
	if c.RateLimit.Max <= 0 {
		c.RateLimit.Max = 120
	}
	if c.RateLimit.Window <= 0 {
		c.RateLimit.Window = time.Minute
	}
	if c.Log.Env == "" {
		c.Log.Env = "development"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Database.Port == "" {
		c.Database.Port = "5432"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
}

func (c *Config) Validate() error {
	switch c.Pricing.Source {
	case SourceFile:
	case SourceHTTP:
		if c.Pricing.BaseURL == "" {
			return errors.New("pricing.base_url is required for the http source")
		}
	case SourcePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return errors.New("database.host and database.dbname are required for the postgres source")
		}
		if c.Database.Password == "" {
			return errors.New("database password is required in config.secret.yaml or $" + EnvDBPassword)
		}
	default:
		return fmt.Errorf("unknown pricing.source %q", c.Pricing.Source)
	}
	if c.Pricing.Timeout < 0 {
		return errors.New("pricing.timeout must not be negative")
	}
	return nil
}
