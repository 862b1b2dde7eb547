// Package config loads the optional hooks.yaml that tunes hook diagnostics
// for an application and applies it to the process-wide switches in core,
// errors and hooks.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/statehooks/pkg/core"
	drifterrors "github.com/go-drift/statehooks/pkg/errors"
	"github.com/go-drift/statehooks/pkg/hooks"
)

// FileName is the configuration file looked up in the project root.
const FileName = "hooks.yaml"

// Config represents the optional hooks.yaml configuration.
type Config struct {
	App    AppConfig    `yaml:"app"`
	Debug  bool         `yaml:"debug"`
	Errors ErrorsConfig `yaml:"errors"`
	Events EventsConfig `yaml:"events"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// ErrorsConfig controls error reporting.
type ErrorsConfig struct {
	// Verbose includes stack traces in logged reports.
	Verbose bool `yaml:"verbose"`
}

// EventsConfig controls hook signals.
type EventsConfig struct {
	// Enabled turns signal emission on or off. Unset means on.
	Enabled *bool `yaml:"enabled,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root          string
	ModulePath    string
	AppName       string
	Debug         bool
	VerboseErrors bool
	Events        bool
}

// LoadOptional reads hooks.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return Parse(data)
}

// Parse decodes hooks.yaml contents.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Resolve loads hooks.yaml (if present) and resolves defaults against the
// module in dir.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	return resolve(cfg, dir, modulePath), nil
}

func resolve(cfg *Config, dir, modulePath string) *Resolved {
	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	events := true
	if cfg.Events.Enabled != nil {
		events = *cfg.Events.Enabled
	}

	return &Resolved{
		Root:          dir,
		ModulePath:    modulePath,
		AppName:       appName,
		Debug:         cfg.Debug,
		VerboseErrors: cfg.Errors.Verbose,
		Events:        events,
	}
}

// Apply installs the resolved settings: debug mode, a log handler with the
// configured verbosity, and hook signal emission.
func (r *Resolved) Apply() {
	core.SetDebugMode(r.Debug)
	drifterrors.SetHandler(&drifterrors.LogHandler{Verbose: r.VerboseErrors})
	hooks.SetEventsEnabled(r.Events)
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	modName, _, ok := module.SplitPathVersion(modulePath)
	if ok {
		parts := strings.Split(modName, "/")
		if len(parts) > 0 {
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "app"
	}
	return base
}
