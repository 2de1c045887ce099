// =============================================================================
// Product ETL - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file. Every
// setting has a default, so the file is optional: when the default config
// path does not exist the defaults are used as-is. Command line flags are
// applied on top by the cmd package.
//
// EXAMPLE config.yaml:
//   input_file: data/products.csv
//   output_file: data/transformed_products.csv
//   output_format: csv        # csv | xlsx
//   sheet_name: Products      # xlsx only
//   log_level: info           # debug | info | warn | error
//
// Environment variables are not consulted.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONSTANTS
// =============================================================================

// Supported output formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Default values.
const (
	DefaultInputFile    = "data/products.csv"
	DefaultOutputFile   = "data/transformed_products.csv"
	DefaultOutputFormat = FormatCSV
	DefaultSheetName    = "Products"
	DefaultLogLevel     = "info"
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the application configuration.
type MainConfig struct {
	// InputFile is the product file to read.
	// Default: "data/products.csv"
	InputFile string `yaml:"input_file"`

	// OutputFile is where the transformed products are written. Its
	// directory is created if missing.
	// Default: "data/transformed_products.csv"
	OutputFile string `yaml:"output_file"`

	// OutputFormat selects the writer: "csv" or "xlsx".
	// Default: "csv"
	OutputFormat string `yaml:"output_format"`

	// SheetName is the worksheet name for xlsx output.
	// Default: "Products"
	SheetName string `yaml:"sheet_name"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns a configuration with every default applied.
func Default() *MainConfig {
	config := &MainConfig{}
	applyMainConfigDefaults(config)
	return config
}

// LoadMainConfig loads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//   - required: When false, a missing file yields the defaults.
//
// RETURNS:
//   - The configuration with defaults applied.
//   - An error if the file cannot be read or parsed, or holds invalid values.
func LoadMainConfig(configPath string, required bool) (*MainConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config MainConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyMainConfigDefaults(&config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyMainConfigDefaults sets default values for any unset options.
func applyMainConfigDefaults(config *MainConfig) {
	if config.InputFile == "" {
		config.InputFile = DefaultInputFile
	}
	if config.OutputFile == "" {
		config.OutputFile = DefaultOutputFile
	}
	if config.OutputFormat == "" {
		config.OutputFormat = DefaultOutputFormat
	}
	if config.SheetName == "" {
		config.SheetName = DefaultSheetName
	}
	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevel
	}

	config.OutputFormat = strings.ToLower(config.OutputFormat)
	config.LogLevel = strings.ToLower(config.LogLevel)
}

// Validate checks the configuration values. Call it again after flags have
// been applied on top of a loaded configuration.
func (c *MainConfig) Validate() error {
	if c.InputFile == "" {
		return fmt.Errorf("input_file must not be empty")
	}
	if c.OutputFile == "" {
		return fmt.Errorf("output_file must not be empty")
	}

	switch c.OutputFormat {
	case FormatCSV, FormatXLSX:
	default:
		return fmt.Errorf("unsupported output_format %q (want %s or %s)", c.OutputFormat, FormatCSV, FormatXLSX)
	}

	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("unsupported log_level %q", c.LogLevel)
	}

	if c.OutputFormat == FormatXLSX {
		if err := validateSheetName(c.SheetName); err != nil {
			return fmt.Errorf("invalid sheet_name %q: %w", c.SheetName, err)
		}
	}

	return nil
}

// validateSheetName checks name against the excelize worksheet naming rules
// (31 characters at most, none of :\/?*[]).
func validateSheetName(name string) error {
	f := excelize.NewFile()
	defer f.Close()
	return f.SetSheetName(f.GetSheetName(0), name)
}
