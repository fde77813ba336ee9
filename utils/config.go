package utils

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the configuration for a run
type Config struct {
	Rows                int     `json:"rows" yaml:"rows"`
	Columns             int     `json:"columns" yaml:"columns"`
	TickRate            int     `json:"tick_rate" yaml:"tick_rate"`
	Rule                string  `json:"rule" yaml:"rule"`
	NeighbourRadius     int     `json:"neighbour_radius" yaml:"neighbour_radius"`
	Born                []int   `json:"born" yaml:"born"`
	Survive             []int   `json:"survive" yaml:"survive"`
	Pattern             string  `json:"pattern" yaml:"pattern"`
	RandomDensity       float64 `json:"random_density" yaml:"random_density"`
	Seed                int64   `json:"seed" yaml:"seed"`
	MaxGenerations      int     `json:"max_generations" yaml:"max_generations"`
	StagnationThreshold int     `json:"stagnation_threshold" yaml:"stagnation_threshold"`
	Headless            bool    `json:"headless" yaml:"headless"`
}

// DefaultConfig returns a 20x20 board running standard Conway rules at 8 ticks per second
func DefaultConfig() Config {
	return Config{
		Rows:                20,
		Columns:             20,
		TickRate:            8,
		NeighbourRadius:     1,
		Born:                []int{3},
		Survive:             []int{2, 3},
		Seed:                42,
		StagnationThreshold: 5,
	}
}

// TickInterval is the delay between two generations
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Validate checks the fields that do not depend on the rule set
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Columns <= 0:
		return errors.Wrapf(ErrInvalidArgument, "[Validate] grid must be at least 1x1, got %dx%d", c.Rows, c.Columns)
	case c.TickRate <= 0:
		return errors.Wrapf(ErrInvalidArgument, "[Validate] tick_rate must be positive, got %d", c.TickRate)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidArgument, "[Validate] random_density must be in [0,1], got %v", c.RandomDensity)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidArgument, "[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	case c.StagnationThreshold < 0:
		return errors.Wrapf(ErrInvalidArgument, "[Validate] stagnation_threshold must not be negative, got %d", c.StagnationThreshold)
	}
	return nil
}

// LoadConfig loads configuration from a JSON or YAML file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration fields to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "number of grid rows")
	fs.IntVar(&c.Columns, "cols", c.Columns, "number of grid columns")
	fs.IntVar(&c.TickRate, "tps", c.TickRate, "generations per second while playing")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule string such as B3/S23 (overrides radius/born/survive)")
	fs.IntVar(&c.NeighbourRadius, "radius", c.NeighbourRadius, "neighbour radius")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern placed in the centre at start")
	fs.Float64Var(&c.RandomDensity, "density", c.RandomDensity, "fraction of cells seeded alive at start")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fill")
	fs.IntVar(&c.MaxGenerations, "generations", c.MaxGenerations, "stop after this many generations (0 runs until interrupted)")
	fs.IntVar(&c.StagnationThreshold, "stagnation", c.StagnationThreshold, "headless runs stop after this many stagnant generations (0 disables)")
	fs.BoolVar(&c.Headless, "headless", c.Headless, "print generations instead of opening the interactive screen")
}

// ParseArgs builds the run configuration from command-line arguments. A -config file
// replaces the defaults, and flags given explicitly take precedence over the file.
func ParseArgs(fs *flag.FlagSet, args []string) (Config, error) {
	config := DefaultConfig()
	configPath := fs.String("config", "", "path to a JSON or YAML config file")
	config.Bind(fs)

	if err := fs.Parse(args); err != nil {
		return config, errors.Wrap(err, "[ParseArgs] failed to parse flags")
	}

	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			return config, err
		}
		config = loaded
		// second pass re-applies explicit flags over the file values
		if err = fs.Parse(args); err != nil {
			return config, errors.Wrap(err, "[ParseArgs] failed to parse flags")
		}
	}

	return config, config.Validate()
}
