// Package config loads the glidectl TOML configuration: explicit keys overlay
// the compiled-in defaults, and anything left unset keeps its default.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the resolved runtime configuration for the panel service.
type Config struct {
	// Name tags log lines and metrics for this node.
	Name string
	// Addr is the HTTP listen address for the panel.
	Addr string
	// Title is the heading on the served panel page.
	Title string
	// CorsOrigins allowed to call the panel from a browser frontend.
	CorsOrigins []string
	// ControlPeriod is the control-task poll period.
	ControlPeriod time.Duration
	// DisarmOnShutdown drops the arm flag before the process exits.
	DisarmOnShutdown bool
}

func Default() Config {
	return Config{
		Name:             "glidectl",
		Addr:             ":8507",
		Title:            "Glider Flight Control Panel",
		CorsOrigins:      []string{"http://localhost:3000"},
		ControlPeriod:    10 * time.Millisecond,
		DisarmOnShutdown: true,
	}
}

// fileConfig maps config.toml keys onto Config fields.
type fileConfig struct {
	Name             string   `toml:"name"`
	Addr             string   `toml:"addr"`
	Title            string   `toml:"title"`
	CorsOrigins      []string `toml:"cors_origins"`
	ControlPeriodMS  int      `toml:"control_period_ms"`
	DisarmOnShutdown bool     `toml:"disarm_on_shutdown"`
}

// Load decodes path over the defaults. Keys absent from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load glidectl config: %w", err)
	}

	if meta.IsDefined("name") {
		cfg.Name = strings.TrimSpace(raw.Name)
	}
	if meta.IsDefined("addr") {
		cfg.Addr = strings.TrimSpace(raw.Addr)
	}
	if meta.IsDefined("title") {
		cfg.Title = strings.TrimSpace(raw.Title)
	}
	if meta.IsDefined("cors_origins") {
		cfg.CorsOrigins = raw.CorsOrigins
	}
	if meta.IsDefined("control_period_ms") {
		cfg.ControlPeriod = time.Duration(raw.ControlPeriodMS) * time.Millisecond
	}
	if meta.IsDefined("disarm_on_shutdown") {
		cfg.DisarmOnShutdown = raw.DisarmOnShutdown
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("glidectl config missing name")
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("glidectl config missing addr")
	}
	if cfg.ControlPeriod <= 0 {
		return fmt.Errorf("glidectl config control_period_ms must be positive")
	}
	return nil
}
