package config

import (
	"bytes"
	"io"
	"log/slog"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/andrewkroh/go-gyb/banner"
	"github.com/andrewkroh/go-gyb/invocation"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "GYB_CONFIG"

// Config holds the settings loaded from a gyb.yml file.
type Config struct {
	Banner       BannerConfig       `yaml:"banner"`
	Replacements ReplacementsConfig `yaml:"replacements"`
	Log          LogConfig          `yaml:"log"`
}

// BannerConfig selects a banner preset and optionally overrides parts of it.
// Nil overrides keep the preset's value; an explicit empty string clears it.
type BannerConfig struct {
	Preset        string  `yaml:"preset"`
	CommentPrefix *string `yaml:"comment_prefix"`
	Extension     *string `yaml:"extension"`
	Attribution   *string `yaml:"attribution"`
}

// ReplacementsConfig controls how the --replacements value is treated.
type ReplacementsConfig struct {
	Policy string `yaml:"policy"` // "defer" or "validate"
}

// LogConfig controls the diagnostic logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{}
}

// Load reads and validates the config file at path.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Resolve loads the file named by the GYB_CONFIG variable, or returns the
// defaults when the variable is unset.
func Resolve(fs afero.Fs, getenv func(string) string) (*Config, error) {
	path := strings.TrimSpace(getenv(EnvVar))
	if path == "" {
		return Default(), nil
	}
	return Load(fs, path)
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var result *multierror.Error
	if _, err := c.Style(); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := c.Policy(); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := c.LogLevel(); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

// Style returns the banner style: the preset with the overrides applied.
func (c *Config) Style() (banner.Style, error) {
	s, err := banner.Lookup(c.Banner.Preset)
	if err != nil {
		return banner.Style{}, errors.Wrap(err, "banner.preset")
	}
	if c.Banner.CommentPrefix != nil {
		s.CommentPrefix = *c.Banner.CommentPrefix
	}
	if c.Banner.Extension != nil {
		s.Extension = *c.Banner.Extension
	}
	if c.Banner.Attribution != nil {
		s.Attribution = *c.Banner.Attribution
	}
	if err := s.Validate(); err != nil {
		return banner.Style{}, errors.Wrap(err, "banner")
	}
	return s, nil
}

// Policy returns the replacements policy.
func (c *Config) Policy() (invocation.Policy, error) {
	p, err := invocation.ParsePolicy(c.Replacements.Policy)
	if err != nil {
		return "", errors.Wrap(err, "replacements.policy")
	}
	return p, nil
}

// LogLevel returns the configured log level. The default is info.
func (c *Config) LogLevel() (slog.Level, error) {
	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, errors.Wrap(err, "log.level")
	}
	return level, nil
}
