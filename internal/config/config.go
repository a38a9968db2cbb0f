package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/buckeye43210/pyPERM/internal/engine/taxonomy"
	"github.com/buckeye43210/pyPERM/internal/output"
)

// EnvPrefix prefixes every environment variable perm reads, e.g. PERM_ORDER
// or PERM_OUTPUT_FORMAT for output.format.
const EnvPrefix = "PERM"

// Config holds all perm configuration.
type Config struct {
	Order  string       `mapstructure:"order"` // "document" or "lexical"
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

// OutputConfig controls rendering and destinations.
type OutputConfig struct {
	// Format is the rendering for stdout and for files whose extension
	// does not imply one: "text", "gemtext", "styled", "json", "yaml".
	Format string `mapstructure:"format"`
	// GemtextBase prefixes leaf links in gemtext output.
	GemtextBase string `mapstructure:"gemtext_base"`
	// Paths are files the tree is written to. Empty means stdout.
	Paths []string `mapstructure:"paths"`
	// Stdout also prints to stdout when Paths is set.
	Stdout bool `mapstructure:"stdout"`
	// Indent pretty-prints json output.
	Indent bool `mapstructure:"indent"`
}

// LogConfig controls diagnostics on stderr.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text or json
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Order: "document",
		Output: OutputConfig{
			Format:      string(output.FormatText),
			GemtextBase: "gemini://localhost/item/",
			Indent:      true,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// SetDefaults registers every key with its default so environment variables
// are honoured by Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("order", d.Order)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.gemtext_base", d.Output.GemtextBase)
	v.SetDefault("output.paths", d.Output.Paths)
	v.SetDefault("output.stdout", d.Output.Stdout)
	v.SetDefault("output.indent", d.Output.Indent)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// New returns a viper instance with defaults and PERM_* environment binding.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	// output.format -> PERM_OUTPUT_FORMAT
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile loads a config file. With an empty path, perm.yaml is looked up in
// the working directory and $HOME/.config/perm; a missing file is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		return nil
	}
	v.SetConfigName("perm")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/perm")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown enumerated values.
func (c Config) Validate() error {
	var errs []error
	if _, err := taxonomy.ParseOrder(c.Order); err != nil {
		errs = append(errs, err)
	}
	if _, err := output.ParseFormat(c.Output.Format); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("config: unknown log format %q (want text or json)", c.Log.Format))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
