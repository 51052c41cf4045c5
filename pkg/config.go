package pkg

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the tunables of the service layer. It is loaded from a
// TOML or YAML file, with ROADIE_-prefixed environment variables applied
// on top.
type Config struct {
	Log    LogConfig       `toml:"log" yaml:"log"`
	Router RouterSetConfig `toml:"router" yaml:"router"`
}

// LogConfig configures the service logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`
	// Format is one of text, json.
	Format string `toml:"format" yaml:"format"`
	// File, when set, sends log output to a size-rotated file instead of
	// stderr.
	File       string `toml:"file" yaml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups" yaml:"max_backups"`
	// Requests enables the per-request log line.
	Requests bool `toml:"requests" yaml:"requests"`
}

// RouterSetConfig configures dispatch-engine construction.
type RouterSetConfig struct {
	// ValidatePatterns verifies at service construction that every
	// participant regex matches its own registered path.
	ValidatePatterns bool `toml:"validate_patterns" yaml:"validate_patterns"`
	// RegexTimeout is the per-match budget used during pattern
	// validation, as a duration string such as "100ms".
	RegexTimeout string `toml:"regex_timeout" yaml:"regex_timeout"`
}

// DefaultConfig returns the configuration used when no file is loaded.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
		Router: RouterSetConfig{
			RegexTimeout: "100ms",
		},
	}
}

// LoadConfig loads configuration from a file (supports TOML, YAML),
// applies environment overrides and validates the result.
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, NewConfigurationError(configPath, fmt.Sprintf("failed to read config file: %v", err))
	}

	cfg := DefaultConfig()

	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, NewConfigurationError(configPath, fmt.Sprintf("unsupported config format: %s", ext))
	}
	if err != nil {
		return nil, NewConfigurationError(configPath, fmt.Sprintf("failed to parse config: %v", err))
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overrides configuration values from ROADIE_-prefixed
// environment variables, e.g. ROADIE_LOG_LEVEL=debug.
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv("ROADIE_LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv("ROADIE_LOG_FORMAT"); ok {
		c.Log.Format = v
	}
	if v, ok := os.LookupEnv("ROADIE_LOG_FILE"); ok {
		c.Log.File = v
	}
	if v, ok := os.LookupEnv("ROADIE_LOG_MAX_SIZE_MB"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.Log.MaxSizeMB = n
		}
	}
	if v, ok := os.LookupEnv("ROADIE_LOG_MAX_BACKUPS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.Log.MaxBackups = n
		}
	}
	if v, ok := os.LookupEnv("ROADIE_LOG_REQUESTS"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Log.Requests = b
		}
	}
	if v, ok := os.LookupEnv("ROADIE_ROUTER_VALIDATE_PATTERNS"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Router.ValidatePatterns = b
		}
	}
	if v, ok := os.LookupEnv("ROADIE_ROUTER_REGEX_TIMEOUT"); ok {
		c.Router.RegexTimeout = v
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if _, err := parseLogLevel(c.Log.Level); err != nil {
		return err
	}

	switch c.Log.Format {
	case "", "text", "json":
	default:
		return NewConfigurationError("log.format", "must be one of text, json")
	}

	if c.Router.RegexTimeout != "" {
		if _, err := time.ParseDuration(c.Router.RegexTimeout); err != nil {
			return NewConfigurationError("router.regex_timeout", fmt.Sprintf("invalid duration: %v", err))
		}
	}

	return nil
}

// RegexTimeoutDuration returns the parsed pattern-validation budget,
// falling back to the default when unset.
func (c *RouterSetConfig) RegexTimeoutDuration() time.Duration {
	if c.RegexTimeout == "" {
		return 100 * time.Millisecond
	}
	d, err := time.ParseDuration(c.RegexTimeout)
	if err != nil {
		return 100 * time.Millisecond
	}
	return d
}

// BuildLogger constructs the logger described by the configuration.
func (c *Config) BuildLogger() (Logger, error) {
	if c.Log.File != "" {
		return NewRotatingFileLogger(c.Log.File, c.Log.MaxSizeMB, c.Log.MaxBackups, c.Log.Level, c.Log.Format)
	}
	return newHandlerLogger(os.Stderr, c.Log.Level, c.Log.Format)
}
