// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/mmynk/rsvp/internal/submission"
)

// DefaultEndpoint is the spreadsheet-backed script that receives RSVPs.
const DefaultEndpoint = "https://script.google.com/macros/s/AKfycbwOBKQ4Vwpl2e5ds23gf7-MvLbCF7a7QPARbG60A5ZNnA0YOCnII0mEj4_KcYuV0dQH/exec"

// Server configures cmd/server.
type Server struct {
	Addr          string        `env:"RSVP_ADDR" envDefault:":8080"`
	Endpoint      string        `env:"RSVP_ENDPOINT" envDefault:"https://script.google.com/macros/s/AKfycbwOBKQ4Vwpl2e5ds23gf7-MvLbCF7a7QPARbG60A5ZNnA0YOCnII0mEj4_KcYuV0dQH/exec"`
	Strict        bool          `env:"RSVP_STRICT" envDefault:"false"`
	SubmitTimeout time.Duration `env:"RSVP_SUBMIT_TIMEOUT" envDefault:"0s"`
	ResetAfter    time.Duration `env:"RSVP_RESET_AFTER" envDefault:"0s"`
	StaticPath    string        `env:"STATIC_PATH" envDefault:"./static"`
}

// Mode returns the sender mode selected by RSVP_STRICT.
func (c Server) Mode() submission.Mode {
	if c.Strict {
		return submission.Strict
	}
	return submission.FireAndForget
}

// Validate reports configuration values the server cannot start with.
func (c Server) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid RSVP_ENDPOINT: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid RSVP_ENDPOINT: scheme must be http or https, got %q", u.Scheme)
	}
	if c.SubmitTimeout < 0 || c.ResetAfter < 0 {
		return errors.New("RSVP_SUBMIT_TIMEOUT and RSVP_RESET_AFTER must not be negative")
	}
	return nil
}

// Sheet configures cmd/sheet.
type Sheet struct {
	Addr   string `env:"SHEET_ADDR" envDefault:":8081"`
	DBPath string `env:"SHEET_DB_PATH" envDefault:"./data/sheet.db"`
}

// LoadDotEnv loads .env files into the environment. A missing file is not an error.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("no .env file found, relying on OS environment variables")
			return nil
		}
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadServer reads the server configuration.
func LoadServer() (Server, error) {
	var c Server
	if err := ParseEnv(&c); err != nil {
		return c, err
	}
	return c, c.Validate()
}

// LoadSheet reads the sheet configuration.
func LoadSheet() (Sheet, error) {
	var c Sheet
	err := ParseEnv(&c)
	return c, err
}
