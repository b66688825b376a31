// Package config loads benchmark harness parameters from defaults, an optional
// YAML file, environment variables and command-line flags, in that order.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	flag "github.com/spf13/pflag"

	"github.com/Han-16/kzgist/internal/field"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Bench configures cmd/kzgbench. The engine itself only consumes the scale.
type Bench struct {
	MinScale    int    `koanf:"min-scale"`
	MaxScale    int    `koanf:"max-scale"`
	MaxSeconds  int    `koanf:"max-seconds"`
	Workers     int    `koanf:"workers"`
	EvalX       uint64 `koanf:"eval-x"`
	Secret      string `koanf:"secret"`
	MaskTopByte bool   `koanf:"mask-top-byte"`
	UseCache    bool   `koanf:"cache"`
	CacheDir    string `koanf:"cache-dir"`
	Output      string `koanf:"output"`
	LogLevel    string `koanf:"log-level"`
}

var defaults = map[string]interface{}{
	"min-scale":     1,
	"max-scale":     15,
	"max-seconds":   1,
	"workers":       0,
	"eval-x":        1234,
	"secret":        "",
	"mask-top-byte": false,
	"cache":         false,
	"cache-dir":     "data",
	"output":        "",
	"log-level":     "info",
}

// FlagSet declares the harness flags on a new set named name.
func FlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.String("config", "", "optional YAML config file")
	fs.Int("min-scale", 1, "smallest log2 polynomial length to benchmark")
	fs.Int("max-scale", 15, "largest log2 polynomial length to benchmark")
	fs.IntP("max-seconds", "t", 1, "seconds to spend per scale")
	fs.IntP("workers", "w", 0, "worker goroutines (0 = GOMAXPROCS)")
	fs.Uint64("eval-x", 1234, "evaluation point")
	fs.String("secret", "", "setup secret (decimal or 0x hex); random when empty")
	fs.Bool("mask-top-byte", false, "clear the top byte of random data scalars")
	fs.Bool("cache", false, "cache the srs under cache-dir")
	fs.String("cache-dir", "data", "cache directory")
	fs.StringP("output", "o", "", "append results to this file")
	fs.String("log-level", "info", "zerolog level")
	return fs
}

// Load parses args and merges every source into a validated Bench.
// Environment variables use envPrefix, e.g. KZG_MAX_SCALE for max-scale.
func Load(args []string, envPrefix string) (*Bench, error) {
	fs := FlagSet("kzgbench")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, "load defaults")
	}

	if path, _ := fs.GetString("config"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "load config file %s", path)
		}
	}

	if envPrefix != "" {
		prefix := envPrefix + "_"
		err := k.Load(env.Provider(prefix, ".", func(s string) string {
			key := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, prefix)), "_", "-")
			if !k.Exists(key) {
				// only accept values from env vars that already exist in the config
				return ""
			}
			return key
		}), nil)
		if err != nil {
			return nil, errors.Wrap(err, "load environment")
		}
	}

	// flags only override what was explicitly set on the command line
	if err := k.Load(posflag.Provider(fs, ".", k), nil); err != nil {
		return nil, errors.Wrap(err, "load flags")
	}

	var cfg Bench
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Bench) Validate() error {
	if c.MinScale < 1 || c.MaxScale > field.TwoAdicity || c.MinScale > c.MaxScale {
		return errors.Wrapf(ErrInvalidConfig, "scale range [%d, %d] must lie in [1, %d]", c.MinScale, c.MaxScale, field.TwoAdicity)
	}
	if c.MaxSeconds <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "max-seconds must be positive, got %d", c.MaxSeconds)
	}
	return nil
}
