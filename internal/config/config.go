// Package config parses fnq's command line, environment and optional
// config file into a validated Config.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hasbyte1/go-fn-utils/internal/logger"
)

// EnvPrefix is prepended to every environment variable fnq reads, e.g.
// FNQ_KEY or FNQ_LOG_LEVEL.
const EnvPrefix = "FNQ"

const (
	OpGet       = "get"
	OpGroup     = "group"
	OpCollect   = "collect"
	OpIndex     = "index"
	OpDiff      = "diff"
	OpIntersect = "intersect"
	OpFind      = "find"
	OpDot       = "dot"
)

var (
	ErrHelp        = errors.New("help requested")
	ErrNoOperation = errors.New("no operation provided")
	ErrMissingKey  = errors.New("operation requires --key")
	ErrMissingPath = errors.New("operation requires --path")
	ErrNoOther     = errors.New("operation requires --other")
	ErrTooManyArgs = errors.New("at most one input file may be given")
)

// Config is the complete configuration for one fnq invocation.
type Config struct {
	Op     string `mapstructure:"op" validate:"required,oneof=get group collect index diff intersect find dot"`
	Input  string `mapstructure:"input"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=json yaml yml"`

	// Path selects a sub-document before the operation runs; for get it is
	// the lookup itself.
	Path   string `mapstructure:"path"`
	Key    string `mapstructure:"key"`
	Other  string `mapstructure:"other"`
	Equals string `mapstructure:"equals"`
	Hash   string `mapstructure:"hash" validate:"omitempty,oneof=blake2b sha3"`
	Pretty bool   `mapstructure:"pretty"`

	Log logger.Config `mapstructure:",squash"`
}

// Validate checks the struct-level rules and the per-operation requirements.
func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	switch c.Op {
	case OpGet:
		if c.Path == "" {
			return fmt.Errorf("%s: %w", c.Op, ErrMissingPath)
		}
	case OpGroup, OpCollect, OpIndex, OpFind:
		if c.Key == "" {
			return fmt.Errorf("%s: %w", c.Op, ErrMissingKey)
		}
	case OpDiff, OpIntersect:
		if c.Key == "" {
			return fmt.Errorf("%s: %w", c.Op, ErrMissingKey)
		}
		if c.Other == "" {
			return fmt.Errorf("%s: %w", c.Op, ErrNoOther)
		}
	}
	return c.Log.Validate()
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("fnq", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.String("path", "", "path expression, e.g. items[0].name")
	fs.String("key", "", "path of the key inside each element")
	fs.String("other", "", "second document for diff and intersect")
	fs.String("equals", "", "value the key must stringify to (find)")
	fs.String("format", "", "input format: json or yaml (default: detect)")
	fs.String("hash", "", "digest keys with a driver: blake2b or sha3")
	fs.Bool("pretty", false, "indent JSON output")
	fs.String("log-level", "warn", "log level: debug, info, warn, error")
	fs.String("log-format", "console", "log format: console or json")
	fs.String("config", "", "optional config file (yaml, json, toml)")
	fs.String("env-file", "", "optional .env file")
	return fs
}

// Usage returns the help text.
func Usage() string {
	var sb strings.Builder
	sb.WriteString("Usage: fnq <get|group|collect|index|diff|intersect|find|dot> [flags] [file]\n\n")
	sb.WriteString("Reads a JSON or YAML document from file (or stdin) and writes JSON.\n\n")
	sb.WriteString("Flags:\n")
	sb.WriteString(newFlagSet().FlagUsages())
	sb.WriteString("\nEvery flag may also be set as " + EnvPrefix + "_<FLAG> (dashes become underscores).")
	return sb.String()
}

// Parse builds a Config from os-style args (args[0] is the program name).
// Precedence, highest first: flags, environment (including the .env file),
// config file, flag defaults.
func Parse(args []string) (*Config, error) {
	if len(args) < 2 {
		return nil, ErrNoOperation
	}
	if args[1] == "-h" || args[1] == "--help" || args[1] == "help" {
		return nil, ErrHelp
	}

	fs := newFlagSet()
	if err := fs.Parse(args[2:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, ErrHelp
		}
		return nil, err
	}

	rest := fs.Args()
	if len(rest) > 1 {
		return nil, ErrTooManyArgs
	}

	if err := loadEnvFile(fs); err != nil {
		return nil, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	v.Set("op", args[1])
	if len(rest) == 1 {
		v.Set("input", rest[0])
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadEnvFile loads an explicit --env-file, or ./.env when it exists.
// Variables already present in the environment are not overridden.
func loadEnvFile(fs *pflag.FlagSet) error {
	path, _ := fs.GetString("env-file")
	if path == "" {
		path = os.Getenv(EnvPrefix + "_ENV_FILE")
	}
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load env file %s: %w", path, err)
		}
		return nil
	}
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}
	return nil
}
