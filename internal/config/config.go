package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging    LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
	Projection ProjectionConfig `yaml:"projection" envconfig:"PROJECTION"`
	Export     ExportConfig     `yaml:"export" envconfig:"EXPORT"`
	Metrics    MetricsConfig    `yaml:"metrics" envconfig:"METRICS"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// ProjectionConfig controls how requests are checked before projecting
type ProjectionConfig struct {
	// Strict rejects negative ages, balances and year counts and
	// withholding outside 0..100. Off by default.
	Strict bool `yaml:"strict" envconfig:"STRICT"`
}

// ExportConfig contains export configuration
type ExportConfig struct {
	Format          string `yaml:"format" envconfig:"FORMAT"`
	SheetName       string `yaml:"sheet_name" envconfig:"SHEET_NAME"`
	OutputDir       string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`
	DefaultFilename string `yaml:"default_filename" envconfig:"DEFAULT_FILENAME"`
}

// MetricsConfig contains metrics configuration
type MetricsConfig struct {
	// TextfilePath, when set, receives the run's metrics in the Prometheus
	// text format on exit.
	TextfilePath string `yaml:"textfile" envconfig:"TEXTFILE"`
}

// LoadOptions selects the files Load reads. Empty paths are skipped.
type LoadOptions struct {
	ConfigFile string
	DotEnvFile string
}

// Load loads configuration from defaults, the first config file found,
// a .env file and the environment, in increasing order of precedence.
func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{
		ConfigFile: findConfigFile(),
		DotEnvFile: DefaultDotEnvFile,
	})
}

// LoadWithOptions is Load with explicit file locations
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	cfg := Default()

	if opts.ConfigFile != "" {
		if err := loadFromFile(opts.ConfigFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if opts.DotEnvFile != "" {
		if _, err := os.Stat(opts.DotEnvFile); err == nil {
			// godotenv.Load never overrides variables already set
			if err := godotenv.Load(opts.DotEnvFile); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", opts.DotEnvFile, err)
			}
		}
	}

	// No default tags: fields without a matching variable keep the
	// file or built-in value.
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// loadFromFile overlays the YAML file at filePath onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// validate normalizes case and rejects unknown values
func (c *Config) validate() error {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Output = strings.ToLower(strings.TrimSpace(c.Logging.Output))
	c.Export.Format = strings.ToLower(strings.TrimSpace(c.Export.Format))

	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format %q", c.Logging.Format)
	}

	switch c.Logging.Output {
	case OutputStderr, OutputStdout:
	case OutputFile, OutputBoth:
		if c.Logging.FilePath == "" {
			return fmt.Errorf("log output %q requires a file path", c.Logging.Output)
		}
	default:
		return fmt.Errorf("invalid log output %q", c.Logging.Output)
	}

	switch c.Export.Format {
	case FormatXLSX, FormatCSV:
	default:
		return fmt.Errorf("invalid export format %q", c.Export.Format)
	}

	if c.Export.SheetName == "" {
		return fmt.Errorf("sheet name must not be empty")
	}
	if len([]rune(c.Export.SheetName)) > MaxSheetNameLength {
		return fmt.Errorf("sheet name %q exceeds %d characters", c.Export.SheetName, MaxSheetNameLength)
	}
	if strings.ContainsAny(c.Export.SheetName, sheetNameForbiddenChars) {
		return fmt.Errorf("sheet name %q contains one of %s", c.Export.SheetName, sheetNameForbiddenChars)
	}

	if c.Export.DefaultFilename == "" {
		c.Export.DefaultFilename = DefaultExportFilename
	}
	return nil
}

// findConfigFile returns the first existing config file location, or ""
func findConfigFile() string {
	for _, location := range configFileLocations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}
	return ""
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "warn",
			Format:   "json",
			Output:   OutputStderr,
			FilePath: DefaultLogFile,
		},
		Projection: ProjectionConfig{
			Strict: false,
		},
		Export: ExportConfig{
			Format:          FormatXLSX,
			SheetName:       DefaultSheetName,
			DefaultFilename: DefaultExportFilename,
		},
	}
}
