// Package config loads CLI settings from a YAML file and OOXTRACT_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/ooxtract-go/pkg/ooxtract"
)

// Config holds the CLI settings that are not specific to one invocation.
type Config struct {
	Mode         string `yaml:"mode"`
	SheetMapping string `yaml:"sheet_mapping"`
	Format       string `yaml:"format"`
	Pretty       bool   `yaml:"pretty"`
	MaxRows      int    `yaml:"max_rows"`
	TagNumbers   bool   `yaml:"tag_numbers"`
	LineBreaks   bool   `yaml:"line_breaks"`
	LogLevel     string `yaml:"log_level"`
	// Workers bounds how many input files are extracted at once.
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Mode:         string(ooxtract.ModeStandard),
		SheetMapping: string(ooxtract.SheetMappingAuto),
		Format:       "json",
		LogLevel:     "warn",
		Workers:      4,
	}
}

// Load returns the defaults merged with the YAML file at path (if path is
// not empty) and then with the environment. A .env file in the working
// directory is loaded first when present. The result is not validated, so
// callers can apply flag overrides before calling Validate.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	cfg.applyEnv()

	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Mode = getEnv("OOXTRACT_MODE", c.Mode)
	c.SheetMapping = getEnv("OOXTRACT_SHEET_MAPPING", c.SheetMapping)
	c.Format = getEnv("OOXTRACT_FORMAT", c.Format)
	c.Pretty = getEnvBool("OOXTRACT_PRETTY", c.Pretty)
	c.MaxRows = getEnvInt("OOXTRACT_MAX_ROWS", c.MaxRows)
	c.TagNumbers = getEnvBool("OOXTRACT_TAG_NUMBERS", c.TagNumbers)
	c.LineBreaks = getEnvBool("OOXTRACT_LINE_BREAKS", c.LineBreaks)
	c.LogLevel = getEnv("OOXTRACT_LOG_LEVEL", c.LogLevel)
	c.Workers = getEnvInt("OOXTRACT_WORKERS", c.Workers)
}

// Validate checks that values are known and sane.
func (c *Config) Validate() error {
	if _, ok := ooxtract.ParseMode(c.Mode); !ok {
		return fmt.Errorf("unsupported mode %q (use light, standard or verbose)", c.Mode)
	}
	switch ooxtract.SheetMapping(c.SheetMapping) {
	case ooxtract.SheetMappingAuto, ooxtract.SheetMappingPositional:
	default:
		return fmt.Errorf("unsupported sheet_mapping %q (use auto or positional)", c.SheetMapping)
	}
	switch c.Format {
	case "json", "yaml", "text":
	default:
		return fmt.Errorf("unsupported format %q (use json, yaml or text)", c.Format)
	}
	if c.MaxRows < 0 {
		return fmt.Errorf("max_rows must be >= 0")
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be > 0")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("unsupported log_level %q", c.LogLevel)
	}
	return level, nil
}

// Options converts the settings to extraction options.
func (c *Config) Options(logger *slog.Logger) ooxtract.Options {
	return ooxtract.Options{
		Mode:           ooxtract.Mode(c.Mode),
		SheetMapping:   ooxtract.SheetMapping(c.SheetMapping),
		KeepLineBreaks: c.LineBreaks,
		Logger:         logger,
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, def int) int {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("ignoring non-integer environment value", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func getEnvBool(key string, def bool) bool {
	v := strings.TrimSpace(getEnv(key, ""))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("ignoring non-boolean environment value", "key", key, "value", v, "default", def)
		return def
	}
	return b
}
