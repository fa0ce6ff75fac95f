package config

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Log formats understood by the CLI.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatLogfmt  = "logfmt"
)

type Config struct {
	Check   Check   `yaml:"check"`
	Logging Logging `yaml:"logging"`
}

// Check tunes the semantic checker.
type Check struct {
	WarnUnused bool `yaml:"warn_unused"`
	Werror     bool `yaml:"werror"`
	MaxErrors  int  `yaml:"max_errors"` // 0 = unlimited
}

type Logging struct {
	Format string `yaml:"format"`
	Level  string `yaml:"level"`
}

// Default returns a Config with defaults.
func Default() Config {
	return Config{
		Check: Check{
			WarnUnused: true,
		},
		Logging: Logging{
			Format: FormatConsole,
			Level:  "info",
		},
	}
}

// Load reads a YAML config file over the defaults. An empty path yields the
// defaults; a named file must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Decode unmarshals data into cfg, keeping the values of absent keys.
// Unknown keys are an error.
func Decode(data []byte, cfg *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg.Validate()
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return errors.Wrap(err, "decode")
	}
	return cfg.Validate()
}

// Validate rejects values the CLI cannot act on.
func (c Config) Validate() error {
	if c.Check.MaxErrors < 0 {
		return errors.Errorf("check.max_errors must not be negative, got %d", c.Check.MaxErrors)
	}
	switch c.Logging.Format {
	case FormatConsole, FormatJSON, FormatLogfmt:
	default:
		return errors.Errorf("unknown log format %q; supported formats are console, json, logfmt", c.Logging.Format)
	}
	if _, err := c.Logging.ZapLevel(); err != nil {
		return err
	}
	return nil
}

// ZapLevel parses Level.
func (l Logging) ZapLevel() (zapcore.Level, error) {
	var level zapcore.Level
	if err := level.Set(l.Level); err != nil {
		return level, errors.Errorf("unknown log level %q; supported levels are debug, info, warn, error", l.Level)
	}
	return level, nil
}
