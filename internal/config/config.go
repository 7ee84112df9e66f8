package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/icd-converter/internal/logger"
	"github.com/oshokin/icd-converter/internal/utils"
)

// Config holds all configuration settings.
type Config struct {
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// InputPath is the delimited text file read by the parse command.
	InputPath string `mapstructure:"input_path" yaml:"input_path"`
	// OutputPath is the JSON file written by the parse command and read by search.
	OutputPath string `mapstructure:"output_path" yaml:"output_path"`
	// HeaderRows is the number of leading lines of the input discarded before data starts.
	HeaderRows int64 `mapstructure:"header_rows" yaml:"header_rows"`
	// JSONIndent is the number of spaces used to indent the JSON output.
	JSONIndent int64 `mapstructure:"json_indent" yaml:"json_indent"`
	// SheetName selects the workbook sheet to convert; empty means the first sheet.
	SheetName string `mapstructure:"sheet_name" yaml:"sheet_name"`
	// MaxInputSize limits the size of input files (e.g., "100MB"). Empty or "0" disables the check.
	MaxInputSize string `mapstructure:"max_input_size" yaml:"max_input_size"`
	// ShowProgress enables a progress bar on stderr while rows are written.
	ShowProgress bool `mapstructure:"show_progress" yaml:"show_progress"`
	// SearchCacheSize is the number of distinct queries cached by interactive search.
	SearchCacheSize int64 `mapstructure:"search_cache_size" yaml:"search_cache_size"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level `mapstructure:"-" yaml:"-"`
	// ParsedMaxInputSize is the parsed input size limit in bytes, 0 when unlimited.
	ParsedMaxInputSize int64 `mapstructure:"-" yaml:"-"`
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".icd-converter.yaml"

	// DefaultEnvFilename is the dotenv file loaded before the environment is read.
	DefaultEnvFilename = ".env"

	// EnvPrefix prefixes environment variables overriding configuration keys, e.g. ICD_LOG_LEVEL.
	EnvPrefix = "ICD"

	// DefaultLogLevel is the default logging verbosity.
	DefaultLogLevel = "info"

	// DefaultInputPath is the conventional intermediate CSV produced by the convert command.
	DefaultInputPath = "temp_icd_data.csv"

	// DefaultOutputPath is where the parsed mappings are published.
	DefaultOutputPath = "public/parsed_icd_data.json"

	// DefaultHeaderRows is the number of metadata lines preceding the data in the source CSV.
	DefaultHeaderRows = 5

	// DefaultJSONIndent is the indentation width of the JSON output.
	DefaultJSONIndent = 2

	// DefaultMaxInputSize is the default input size limit.
	DefaultMaxInputSize = "100MB"

	// DefaultSearchCacheSize is the default number of cached search queries.
	DefaultSearchCacheSize = 128

	// maxJSONIndent is the widest accepted JSON indentation.
	maxJSONIndent = 8
)

// Static error definitions for better error handling.
var (
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrEmptyInputPath indicates that the parse input path is missing.
	ErrEmptyInputPath = errors.New("input_path cannot be empty")
	// ErrEmptyOutputPath indicates that the parse output path is missing.
	ErrEmptyOutputPath = errors.New("output_path cannot be empty")
	// ErrInvalidHeaderRows indicates that the header row count is negative.
	ErrInvalidHeaderRows = errors.New("header_rows cannot be negative")
	// ErrInvalidJSONIndent indicates that the JSON indentation is out of range.
	ErrInvalidJSONIndent = errors.New("invalid json_indent")
	// ErrInvalidSearchCacheSize indicates that the search cache size is not positive.
	ErrInvalidSearchCacheSize = errors.New("search_cache_size must be a positive integer")
)

// Defaults returns the configuration used when neither a file nor the environment sets a key.
func Defaults() map[string]any {
	return map[string]any{
		"log_level":         DefaultLogLevel,
		"input_path":        DefaultInputPath,
		"output_path":       DefaultOutputPath,
		"header_rows":       DefaultHeaderRows,
		"json_indent":       DefaultJSONIndent,
		"sheet_name":        "",
		"max_input_size":    DefaultMaxInputSize,
		"show_progress":     false,
		"search_cache_size": DefaultSearchCacheSize,
	}
}

// LoadConfig loads configuration settings from defaults, an optional .env file,
// the environment and a YAML file.
// A missing file is only an error when its name was given explicitly.
func LoadConfig(configFilename string) (*Config, error) {
	isExplicit := configFilename != ""
	if !isExplicit {
		configFilename = DefaultConfigFilename
	}

	if err := loadDotEnv(DefaultEnvFilename); err != nil {
		return nil, err
	}

	v := viper.New()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(configFilename)
	v.SetConfigType("yaml")

	exists, err := utils.IsFileExist(configFilename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config from file: %w", err)
	}

	if exists || isExplicit {
		if err = v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err = v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// loadDotEnv exports variables from a dotenv file without overriding ones already set.
func loadDotEnv(filename string) error {
	exists, err := utils.IsFileExist(filename)
	if err != nil || !exists {
		return nil //nolint:nilerr // A missing or unreadable .env file is not required.
	}

	if err = godotenv.Load(filename); err != nil {
		return fmt.Errorf("failed to load %s: %w", filename, err)
	}

	return nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	if strings.TrimSpace(cfg.InputPath) == "" {
		return ErrEmptyInputPath
	}

	if strings.TrimSpace(cfg.OutputPath) == "" {
		return ErrEmptyOutputPath
	}

	if cfg.HeaderRows < 0 {
		return ErrInvalidHeaderRows
	}

	if cfg.JSONIndent < 0 || cfg.JSONIndent > maxJSONIndent {
		return fmt.Errorf("%w: must be between 0 and %d", ErrInvalidJSONIndent, maxJSONIndent)
	}

	if cfg.SearchCacheSize <= 0 {
		return ErrInvalidSearchCacheSize
	}

	var parsedMaxInputSize uint64

	maxInputSize := strings.TrimSpace(cfg.MaxInputSize)
	if maxInputSize != "" && maxInputSize != "0" {
		var err error

		parsedMaxInputSize, err = humanize.ParseBytes(maxInputSize)
		if err != nil {
			return fmt.Errorf("failed to parse max input size: %w", err)
		}
	}

	// os.FileInfo reports sizes as int64.
	cfg.ParsedMaxInputSize = utils.SafeUint64ToInt64(parsedMaxInputSize)

	return nil
}

// WriteDefaultConfig writes the default configuration as YAML.
func WriteDefaultConfig(w io.Writer) error {
	cfg := Config{
		LogLevel:        DefaultLogLevel,
		InputPath:       DefaultInputPath,
		OutputPath:      DefaultOutputPath,
		HeaderRows:      DefaultHeaderRows,
		JSONIndent:      DefaultJSONIndent,
		MaxInputSize:    DefaultMaxInputSize,
		SearchCacheSize: DefaultSearchCacheSize,
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(DefaultJSONIndent)

	if err := encoder.Encode(&cfg); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	return nil
}

// SaveDefaultConfig creates a configuration file filled with defaults.
// An existing file is never overwritten.
func SaveDefaultConfig(configFilename string) error {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	exists, err := utils.IsFileExist(configFilename)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if exists {
		return fmt.Errorf("%w: %s", os.ErrExist, configFilename)
	}

	return utils.WriteFileAtomically(configFilename, WriteDefaultConfig)
}
