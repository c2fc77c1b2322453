package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"jsonpolish/internal/errors"
	"jsonpolish/internal/output"
)

// MaxIndent is the widest accepted --indent value.
const MaxIndent = 16

// Config represents one invocation's settings. It is built once by Parse
// and not changed afterwards.
type Config struct {
	Indent    int           `json:"indent" mapstructure:"indent"`
	SortKeys  bool          `json:"sortKeys" mapstructure:"sort-keys"`
	Compact   bool          `json:"compact" mapstructure:"compact"`
	OutFile   string        `json:"outFile,omitempty" mapstructure:"out"`
	Format    output.Format `json:"format" mapstructure:"to"`
	Verbosity int           `json:"verbosity" mapstructure:"verbose"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Indent: 2,
		Format: output.FormatJSON,
	}
}

// EffectiveIndent is the indent width the emitter should use. Compact wins
// over any --indent value.
func (c *Config) EffectiveIndent() int {
	if c.Compact {
		return 0
	}
	return c.Indent
}

// RenderOptions converts the configuration into emitter options.
func (c *Config) RenderOptions() output.Options {
	return output.Options{
		Indent:   c.EffectiveIndent(),
		SortKeys: c.SortKeys,
		Format:   c.Format,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Indent < 0 || c.Indent > MaxIndent {
		return &ConfigError{Field: "indent", Message: fmt.Sprintf("must be between 0 and %d, got %d", MaxIndent, c.Indent)}
	}
	if _, err := output.ParseFormat(string(c.Format)); err != nil {
		return &ConfigError{Field: "format", Message: fmt.Sprintf("unsupported format %q", c.Format)}
	}
	if c.Verbosity < 0 {
		return &ConfigError{Field: "verbosity", Message: "must not be negative"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}

// Parse scans the command-line arguments (program name excluded) and returns
// the configuration and the positional arguments.
//
// Help and version requests come back as errors with the UsageRequested and
// VersionRequested codes so the caller decides what to print.
func Parse(args []string) (*Config, []string, error) {
	fs := NewFlagSet()
	positionals, err := scan(fs, args)
	if err != nil {
		return nil, nil, err
	}
	if len(positionals) > 1 {
		return nil, nil, errors.Newf(errors.TooManyArguments,
			"too many arguments. Provide a JSON string OR a file path, or use stdin.")
	}

	cfg, err := fromFlags(fs)
	if err != nil {
		return nil, nil, err
	}
	return cfg, positionals, nil
}

// fromFlags assembles a Config from a scanned flag set through viper.
func fromFlags(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.NewPolishError(errors.InvalidOption, err.Error(), err)
	}

	cfg := &Config{
		Indent:    v.GetInt("indent"),
		SortKeys:  v.GetBool("sort-keys"),
		Compact:   v.GetBool("compact"),
		OutFile:   v.GetString("out"),
		Format:    output.Format(v.GetString("to")),
		Verbosity: v.GetInt("verbose"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.NewPolishError(errors.InvalidOption, err.Error(), err)
	}
	return cfg, nil
}
