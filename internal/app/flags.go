package app

import (
	"encoding/json"
	"flag"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim  string
	TPS  int
	Seed int64
	HUD  int
	File string

	// SeedSet reports whether Seed was given on the command line or in the
	// config file. Otherwise the preset's own seed is used.
	SeedSet bool

	Overrides map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "flower", TPS: 60, HUD: 220, Overrides: map[string]string{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation preset to run")
	fs.IntVar(&c.TPS, "tps", c.TPS, "host frames per second")
	fs.Var(seedFlag{c}, "seed", "seed for randomized seeding (default: the preset's seed)")
	fs.IntVar(&c.HUD, "hud", c.HUD, "HUD panel width in pixels (0 hides it)")
	fs.StringVar(&c.File, "config", c.File, "JSON config file")
	fs.Var(overrideFlag(c.Overrides), "set", "preset override in key=value form (repeatable)")
}

// SimOverrides returns the override map passed to the sim factory.
func (c *Config) SimOverrides() map[string]string {
	out := make(map[string]string, len(c.Overrides)+1)
	for k, v := range c.Overrides {
		out[k] = v
	}
	if c.SeedSet {
		out["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	return out
}

// FileConfig is the on-disk form of Config.
type FileConfig struct {
	Sim       string            `json:"sim"`
	TPS       int               `json:"tps"`
	Seed      *int64            `json:"seed"`
	HUD       *int              `json:"hud"`
	Overrides map[string]string `json:"overrides"`
}

// LoadConfig loads a FileConfig from a JSON file.
func LoadConfig(filename string) (FileConfig, error) {
	var cfg FileConfig
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}
	if err = json.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}
	return cfg, nil
}

// Resolve layers the config file, when one was given, underneath the flags
// that were set explicitly on fs.
func (c *Config) Resolve(fs *flag.FlagSet) error {
	if c.File == "" {
		return nil
	}
	file, err := LoadConfig(c.File)
	if err != nil {
		return err
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if file.Sim != "" && !set["sim"] {
		c.Sim = file.Sim
	}
	if file.TPS > 0 && !set["tps"] {
		c.TPS = file.TPS
	}
	if file.Seed != nil && !c.SeedSet {
		c.Seed = *file.Seed
		c.SeedSet = true
	}
	if file.HUD != nil && !set["hud"] {
		c.HUD = *file.HUD
	}
	for k, v := range file.Overrides {
		if _, ok := c.Overrides[k]; !ok {
			c.Overrides[k] = v
		}
	}
	return nil
}

type overrideFlag map[string]string

func (o overrideFlag) String() string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+o[k])
	}
	return strings.Join(parts, ",")
}

func (o overrideFlag) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	if !ok || key == "" {
		return errors.Errorf("override %q is not key=value", value)
	}
	o[key] = val
	return nil
}

type seedFlag struct{ cfg *Config }

func (s seedFlag) String() string {
	if s.cfg == nil || !s.cfg.SeedSet {
		return ""
	}
	return strconv.FormatInt(s.cfg.Seed, 10)
}

func (s seedFlag) Set(value string) error {
	seed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return errors.Errorf("seed %q is not an integer", value)
	}
	s.cfg.Seed = seed
	s.cfg.SeedSet = true
	return nil
}
