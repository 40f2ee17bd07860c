// Package config loads application configuration in three layers:
// built-in defaults, an optional YAML file, then environment variables
// on top.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	yaml "gopkg.in/yaml.v2"
)

// envPrefix namespaces every environment variable, e.g. CAFECAST_SERVER_PORT.
const envPrefix = "CAFECAST"

// Config is the complete application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server" envconfig:"SERVER"`
	Security SecurityConfig `yaml:"security" envconfig:"SECURITY"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Forecast ForecastConfig `yaml:"forecast" envconfig:"FORECAST"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" envconfig:"MAX_UPLOAD_BYTES" validate:"min=1"`
}

// SecurityConfig contains CORS and rate limiting configuration.
type SecurityConfig struct {
	AllowedOrigins []string        `yaml:"allowed_origins" envconfig:"ALLOWED_ORIGINS"`
	EnableCORS     bool            `yaml:"enable_cors" envconfig:"ENABLE_CORS"`
	RateLimit      RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" validate:"min=0"`
	Burst   int     `yaml:"burst" envconfig:"BURST" validate:"min=0"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PathsConfig contains filesystem paths. Relative paths resolve against
// the working directory.
type PathsConfig struct {
	DataDir     string `yaml:"data_dir" envconfig:"DATA_DIR" validate:"required"`
	UploadsDir  string `yaml:"uploads_dir" envconfig:"UPLOADS_DIR" validate:"required"`
	SummaryFile string `yaml:"summary_file" envconfig:"SUMMARY_FILE" validate:"required"`
}

// ForecastConfig contains pipeline and model training parameters.
type ForecastConfig struct {
	Horizon         int      `yaml:"horizon" envconfig:"HORIZON" validate:"min=1"`
	MinSegmentRows  int      `yaml:"min_segment_rows" envconfig:"MIN_SEGMENT_ROWS" validate:"min=1"`
	HighSellers     []string `yaml:"high_sellers" envconfig:"HIGH_SELLERS"`
	Epochs          int      `yaml:"epochs" envconfig:"EPOCHS" validate:"min=1"`
	LearningRate    float64  `yaml:"learning_rate" envconfig:"LEARNING_RATE" validate:"gt=0"`
	L2              float64  `yaml:"l2" envconfig:"L2" validate:"min=0"`
	HoldoutFraction float64  `yaml:"holdout_fraction" envconfig:"HOLDOUT_FRACTION" validate:"min=0,lt=1"`
}

// Default returns the built-in configuration baseline.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			MaxUploadBytes:  32 << 20,
		},
		Security: SecurityConfig{
			AllowedOrigins: []string{"*"},
			EnableCORS:     true,
			RateLimit: RateLimitConfig{
				Enabled: true,
				RPS:     50,
				Burst:   25,
			},
		},
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: "logs/cafecast.log",
		},
		Paths: PathsConfig{
			DataDir:     "data",
			UploadsDir:  "data/uploads",
			SummaryFile: "data/summary_insight.json",
		},
		Forecast: ForecastConfig{
			Horizon:         30,
			MinSegmentRows:  100,
			HighSellers:     nil, // nil falls back to the built-in base list
			Epochs:          400,
			LearningRate:    0.1,
			L2:              0.001,
			HoldoutFraction: 0.2,
		},
	}
}

// Load builds the configuration: defaults, then the YAML file named by
// CAFECAST_CONFIG (default config.yaml) when present, then environment
// variables on top. The result is validated before being returned.
func Load() (*Config, error) {
	cfg := Default()

	path := os.Getenv(envPrefix + "_CONFIG")
	if path == "" {
		path = "config.yaml"
	}
	if _, err := os.Stat(path); err == nil {
		if err := loadFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
