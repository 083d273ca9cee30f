package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/grafana/dskit/flagext"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

const configFileOption = "config.file"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type Config struct {
	Format      string        `yaml:"format"`
	Unknown     string        `yaml:"unknown"`
	Strict      bool          `yaml:"strict"`
	Concurrency int           `yaml:"concurrency"`
	Timeout     time.Duration `yaml:"timeout"`
	Verbose     bool          `yaml:"verbose"`

	PrintVersion bool `yaml:"-"`
}

func (c *Config) RegisterFlagsAndApplyDefaults(prefix string, f *flag.FlagSet) {
	f.StringVar(&c.Format, prefixed(prefix, "format"), FormatText, "Output format: text, json or yaml.")
	f.StringVar(&c.Unknown, prefixed(prefix, "unknown"), "Unknown", "Text shown for a missing artist or title.")
	f.BoolVar(&c.Strict, prefixed(prefix, "strict"), false, "Fail on malformed frames instead of warning.")
	f.IntVar(&c.Concurrency, prefixed(prefix, "concurrency"), 0, "Files parsed in parallel (0 means one per CPU).")
	f.DurationVar(&c.Timeout, prefixed(prefix, "timeout"), 0, "Give up after this long (0 disables).")
	f.BoolVar(&c.Verbose, prefixed(prefix, "v"), false, "Enable debug logging.")
	f.BoolVar(&c.PrintVersion, prefixed(prefix, "version"), false, "Print version information and exit.")
}

// Validate checks values that flag parsing cannot.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown output format %q", c.Format)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency)
	}
	return nil
}

func prefixed(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

// loadConfig applies defaults, then the YAML file named by -config.file,
// then the remaining command line flags.
func loadConfig(fs *flag.FlagSet, args []string) (*Config, error) {
	var configFile string

	config := &Config{}

	// first get the config file
	pre := flag.NewFlagSet("", flag.ContinueOnError)
	pre.SetOutput(io.Discard)
	pre.StringVar(&configFile, configFileOption, "", "")

	// Parsing stops at the first unknown flag, so retry on each suffix
	// until -config.file turns up or the arguments run out.
	for rest := args; len(rest) > 0; rest = rest[1:] {
		_ = pre.Parse(rest)
	}

	// load config defaults and register flags
	config.RegisterFlagsAndApplyDefaults("", fs)

	// overlay with config file if provided
	if configFile != "" {
		buff, err := os.ReadFile(configFile)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read configFile %s", configFile)
		}

		if err := yaml.UnmarshalStrict(buff, config); err != nil {
			return nil, errors.Wrapf(err, "failed to parse configFile %s", configFile)
		}
	}

	// overlay with cli
	flagext.IgnoredFlag(fs, configFileOption, "Configuration file to load")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return config, nil
}
