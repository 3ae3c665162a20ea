// Package config loads rdftok settings from a TOML file.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/aleksaelezovic/rdftok/internal/policy"
	"github.com/aleksaelezovic/rdftok/pkg/tokens"
)

// Output formats
const (
	FormatPretty  = "pretty"
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
	FormatTurtle  = "turtle"
)

// Color modes
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

// Config is the full rdftok configuration
type Config struct {
	LineMode         bool   `toml:"line_mode"`
	Checking         bool   `toml:"checking"`
	WarningsAsErrors bool   `toml:"warnings_as_errors"`
	Policy           Policy `toml:"policy"`
	Output           Output `toml:"output"`
	Log              Log    `toml:"log"`
}

type Policy struct {
	RequireAbsoluteIRIs bool `toml:"require_absolute_iris"`
	ValidateLangTags    bool `toml:"validate_lang_tags"`
	MaxBlankNodeLabel   int  `toml:"max_bnode_label"`
	KnownDirectivesOnly bool `toml:"known_directives_only"`
}

type Output struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Policy: Policy{ValidateLangTags: true},
		Output: Output{Format: FormatPretty, Color: ColorAuto},
		Log:    Log{Level: "info", Format: "text"},
	}
}

// Load reads the TOML file at path on top of Default. Keys that are absent
// keep their default; unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated values and ranges.
func (c Config) Validate() error {
	switch c.Output.Format {
	case FormatPretty, FormatJSON, FormatMsgpack, FormatTurtle:
	default:
		return fmt.Errorf("invalid [output].format %q: want pretty, json, msgpack or turtle", c.Output.Format)
	}
	switch c.Output.Color {
	case ColorAuto, ColorOn, ColorOff:
	default:
		return fmt.Errorf("invalid [output].color %q: want auto, on or off", c.Output.Color)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid [log].level %q: %w", c.Log.Level, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid [log].format %q: want text or json", c.Log.Format)
	}
	if c.Policy.MaxBlankNodeLabel < 0 {
		return fmt.Errorf("invalid [policy].max_bnode_label %d: must not be negative", c.Policy.MaxBlankNodeLabel)
	}
	return nil
}

// PolicyOptions converts the [policy] table.
func (c Config) PolicyOptions() policy.Options {
	return policy.Options{
		RequireAbsoluteIRIs: c.Policy.RequireAbsoluteIRIs,
		ValidateLangTags:    c.Policy.ValidateLangTags,
		MaxBlankNodeLabel:   c.Policy.MaxBlankNodeLabel,
		KnownDirectivesOnly: c.Policy.KnownDirectivesOnly,
	}
}

// TokenizerOptions builds tokenizer options with the given handler. The
// policy checker is installed only when checking is on.
func (c Config) TokenizerOptions(handler tokens.ErrorHandler) tokens.Options {
	opts := tokens.Options{
		LineMode:     c.LineMode,
		ErrorHandler: handler,
		Checking:     c.Checking,
	}
	if c.Checking {
		opts.Checker = policy.New(c.PolicyOptions())
	}
	return opts
}
