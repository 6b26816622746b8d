// Package config loads service settings from the environment. A .env file,
// when present, is loaded by the godotenv autoload import in main.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/Zachkp/portfolio/internal/theme"
)

const (
	TransportHTTP = "http"
	TransportSMTP = "smtp"
)

type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`

	DBPath       string `env:"PORTFOLIO_DB_PATH" envDefault:"portfolio.db"`
	StaticDir    string `env:"PORTFOLIO_STATIC_DIR" envDefault:"./static"`
	ImagesDir    string `env:"PORTFOLIO_IMAGES_DIR" envDefault:"./images"`
	DefaultTheme string `env:"PORTFOLIO_DEFAULT_THEME" envDefault:"light"`

	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	// VisitRetention bounds how long tracked visits are kept.
	VisitRetention time.Duration `env:"VISIT_RETENTION" envDefault:"8760h"`

	Contact ContactConfig
	Admin   AdminConfig
	Log     LogConfig
}

type ContactConfig struct {
	Transport  string        `env:"CONTACT_TRANSPORT" envDefault:"http"`
	Endpoint   string        `env:"CONTACT_ENDPOINT" envDefault:"https://formspree.io/f/mrbawrpj"`
	Timeout    time.Duration `env:"CONTACT_TIMEOUT" envDefault:"10s"`
	ResetDelay time.Duration `env:"CONTACT_RESET_DELAY" envDefault:"3s"`

	SMTPHost string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort string `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser string `env:"SMTP_USER"`
	SMTPPass string `env:"SMTP_PASS"`
	ToEmail  string `env:"TO_EMAIL"`
}

type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME"`
	Password string `env:"ADMIN_PASSWORD"`
}

// Enabled reports whether admin routes should be mounted. There are no
// default credentials.
func (a AdminConfig) Enabled() bool {
	return a.Username != "" && a.Password != ""
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load parses the environment into a validated Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Port) == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	if strings.TrimSpace(c.DBPath) == "" {
		errs = append(errs, errors.New("PORTFOLIO_DB_PATH is required"))
	}
	if _, err := theme.Parse(c.DefaultTheme); err != nil {
		errs = append(errs, fmt.Errorf("PORTFOLIO_DEFAULT_THEME: %w", err))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	if c.Contact.ResetDelay <= 0 {
		errs = append(errs, errors.New("CONTACT_RESET_DELAY must be positive"))
	}
	switch c.Contact.Transport {
	case TransportHTTP:
		if strings.TrimSpace(c.Contact.Endpoint) == "" {
			errs = append(errs, errors.New("CONTACT_ENDPOINT is required for the http transport"))
		}
	case TransportSMTP:
		if c.Contact.SMTPUser == "" || c.Contact.SMTPPass == "" || c.Contact.ToEmail == "" {
			errs = append(errs, errors.New("SMTP_USER, SMTP_PASS and TO_EMAIL are required for the smtp transport"))
		}
	default:
		errs = append(errs, fmt.Errorf("CONTACT_TRANSPORT must be %q or %q, got %q", TransportHTTP, TransportSMTP, c.Contact.Transport))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

// DefaultThemeValue returns the parsed fallback theme.
func (c *Config) DefaultThemeValue() theme.Theme {
	t, err := theme.Parse(c.DefaultTheme)
	if err != nil {
		return theme.Light
	}
	return t
}
