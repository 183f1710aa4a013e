// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package caldiffconfig provides configuration parsing and validation for caldiff.
//
// Configuration is stored at ~/.config/caldiff/config.yaml (or $CALDIFF_CONFIG_DIR/config.yaml).
// The file is optional. Without it, commands use the table format and no named dates.
package caldiffconfig

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bufdev/caldiff/internal/pkg/caldate"
	"github.com/bufdev/caldiff/internal/pkg/cliio"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the configuration file within the config directory.
const ConfigFileName = "config.yaml"

// TodayDateName is the reserved date name that resolves to the current date.
const TodayDateName = "today"

// configTemplate is the default configuration file template with comments.
// yaml.v3 does not preserve comments, so we hardcode the template string.
const configTemplate = `# The configuration file version.
#
# Required. The only current valid version is v1.
version: v1
# The default output format.
#
# Optional. One of table, csv, json. Defaults to table.
# The --format flag overrides this value.
format: table
# Named reference dates.
#
# Optional. A name can be used in place of a YYYY/MM/DD date on the
# command line. The name "today" is reserved.
# dates:
#   - name: launch
#     date: 2014/01/01
`

// ExternalConfig is the YAML-serializable configuration file structure.
type ExternalConfig struct {
	// Version is the configuration file version (must be "v1").
	Version string `yaml:"version"`
	// Format is the default output format (table, csv, json).
	Format string `yaml:"format"`
	// Dates is the optional list of named reference dates.
	Dates []ExternalDateConfig `yaml:"dates"`
}

// ExternalDateConfig holds a named reference date.
type ExternalDateConfig struct {
	// Name is the name used on the command line.
	Name string `yaml:"name"`
	// Date is the date in YYYY/MM/DD form.
	Date string `yaml:"date"`
}

// Config is the validated runtime configuration derived from the config file.
type Config struct {
	// Format is the default output format.
	Format cliio.Format
	// NamedDates maps reference date names to their dates.
	NamedDates map[string]caldate.Date
}

// NewConfig validates an ExternalConfig and returns a runtime Config.
func NewConfig(externalConfig ExternalConfig) (*Config, error) {
	if externalConfig.Version != "v1" {
		return nil, fmt.Errorf("unsupported config version %q, must be v1", externalConfig.Version)
	}
	format := cliio.FormatTable
	if externalConfig.Format != "" {
		var err error
		format, err = cliio.ParseFormat(externalConfig.Format)
		if err != nil {
			return nil, err
		}
	}
	// Build the named dates map, checking for duplicates and reserved names.
	namedDates := make(map[string]caldate.Date, len(externalConfig.Dates))
	for _, d := range externalConfig.Dates {
		if d.Name == "" {
			return nil, errors.New("date name is required")
		}
		if d.Name == TodayDateName {
			return nil, fmt.Errorf("date name %q is reserved", d.Name)
		}
		if _, ok := namedDates[d.Name]; ok {
			return nil, fmt.Errorf("duplicate date name %q", d.Name)
		}
		date, err := caldate.Parse(d.Date)
		if err != nil {
			return nil, fmt.Errorf("date %q: %w", d.Name, err)
		}
		namedDates[d.Name] = date
	}
	return &Config{
		Format:     format,
		NamedDates: namedDates,
	}, nil
}

// NewDefaultConfig returns the configuration used when no config file exists.
func NewDefaultConfig() *Config {
	return &Config{
		Format:     cliio.FormatTable,
		NamedDates: make(map[string]caldate.Date),
	}
}

// ResolveDate resolves a command-line date argument.
//
// The value is matched against "today", then the configured names, and is
// otherwise parsed as YYYY/MM/DD. now is only called for "today".
func (c *Config) ResolveDate(value string, now func() time.Time) (caldate.Date, error) {
	if value == TodayDateName {
		return caldate.FromTime(now())
	}
	if date, ok := c.NamedDates[value]; ok {
		return date, nil
	}
	return caldate.Parse(value)
}

// ConfigFilePath returns the path to the configuration file within the given config directory.
func ConfigFilePath(configDirPath string) string {
	return filepath.Join(configDirPath, ConfigFileName)
}

// ReadConfig reads and validates the configuration file from the given config directory.
// Returns a clear error message directing users to run "caldiff config init" if the file is missing.
func ReadConfig(configDirPath string) (*Config, error) {
	filePath := ConfigFilePath(configDirPath)
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found at %s, run \"caldiff config init\" to create one", filePath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return parseConfig(filePath, data)
}

// ReadConfigOrDefault is like ReadConfig, but returns the default configuration
// if the file does not exist.
func ReadConfigOrDefault(configDirPath string) (*Config, error) {
	if _, err := os.Stat(ConfigFilePath(configDirPath)); os.IsNotExist(err) {
		return NewDefaultConfig(), nil
	}
	return ReadConfig(configDirPath)
}

// InitConfig creates a new configuration file with a documented template.
// Creates the config directory if it does not exist.
// Returns the path to the created file, or an error if the file already exists.
func InitConfig(configDirPath string) (string, error) {
	filePath := ConfigFilePath(configDirPath)
	if _, err := os.Stat(filePath); err == nil {
		return "", fmt.Errorf("configuration file already exists: %s", filePath)
	}
	// Create the config directory if it does not exist.
	if err := os.MkdirAll(configDirPath, 0o755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(filePath, []byte(configTemplate), 0o644); err != nil {
		return "", err
	}
	return filePath, nil
}

// ValidateConfigFile reads and validates the configuration file at the given path.
func ValidateConfigFile(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	_, err = parseConfig(filePath, data)
	return err
}

// *** PRIVATE ***

func parseConfig(filePath string, data []byte) (*Config, error) {
	var externalConfig ExternalConfig
	if err := unmarshalYAMLStrict(data, &externalConfig); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", filePath, err)
	}
	return NewConfig(externalConfig)
}

// unmarshalYAMLStrict unmarshals the data as YAML with strict field checking.
// If the data length is 0, this is a no-op.
func unmarshalYAMLStrict(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	yamlDecoder := yaml.NewDecoder(bytes.NewReader(data))
	// Reject unknown fields.
	yamlDecoder.KnownFields(true)
	if err := yamlDecoder.Decode(v); err != nil {
		return fmt.Errorf("could not unmarshal as YAML: %w", err)
	}
	return nil
}
