// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Paths
	Source     string `json:"source,omitempty" validate:"omitempty,file"`      // Source document (.cat/.gst or converted JSON)
	Reference  string `json:"reference,omitempty" validate:"omitempty,file"`   // Trusted reference JSON document
	Output     string `json:"output,omitempty"`                                // Output path for the transformed document
	Schema     string `json:"schema,omitempty" validate:"omitempty,file"`      // JSON Schema for the wire-contract check
	GameSystem string `json:"game_system,omitempty" validate:"omitempty,file"` // Converted game-system JSON supplying shared rules
	Report     string `json:"report,omitempty"`                                // Output path for the diagnostic report

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed progress information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration values. Required fields are not
// checked here; they are enforced after CLI flags are merged.
func (c *Config) Validate() error {
	validate := validator.New()
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		if fe.Tag() == "file" {
			return fmt.Errorf("config error: %s: file not found: %s", fe.Field(), fe.Value())
		}
		return fmt.Errorf("config error: %s failed %s validation", fe.Field(), fe.Tag())
	}
	return fmt.Errorf("config error: %w", err)
}
