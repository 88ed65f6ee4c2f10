package tuplegen

import (
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Limit holds the largest tier maximum that Validate accepts.
const Limit = 64

// ErrInvalidConfig is returned (wrapped) when a Config
// cannot be used to generate code.
var ErrInvalidConfig = errors.New("invalid tuplegen configuration")

// Config describes the code produced by Generate.
type Config struct {
	// Package holds the name of the generated package.
	Package string `yaml:"package" toml:"package"`

	// Tiers holds the tuple length ceilings to generate,
	// in ascending order. The first tier is always built;
	// each later tier is built when its tag or any later
	// tier's tag is set.
	Tiers []Tier `yaml:"tiers" toml:"tiers"`
}

// Tier holds one build-selectable ceiling on tuple length.
type Tier struct {
	Max int    `yaml:"max" toml:"max"`
	Tag string `yaml:"tag" toml:"tag"`
}

// DefaultConfig returns the configuration used for package tuple.
func DefaultConfig() Config {
	return Config{
		Package: "tuple",
		Tiers:   defaultTiers(),
	}
}

func defaultTiers() []Tier {
	return []Tier{
		{Max: 16},
		{Max: 20, Tag: "tuple20"},
		{Max: 24, Tag: "tuple24"},
		{Max: 28, Tag: "tuple28"},
		{Max: 32, Tag: "tuple32"},
	}
}

// Validate checks that c describes a set of tiers that
// can be generated.
func (c Config) Validate() error {
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("%w: package name %q is not an identifier", ErrInvalidConfig, c.Package)
	}
	if len(c.Tiers) == 0 {
		return fmt.Errorf("%w: no tiers", ErrInvalidConfig)
	}
	tags := make(map[string]bool)
	for i, tier := range c.Tiers {
		switch {
		case tier.Max < 0 || tier.Max > Limit:
			return fmt.Errorf("%w: tier %d: max %d out of range [0, %d]", ErrInvalidConfig, i, tier.Max, Limit)
		case i > 0 && tier.Max <= c.Tiers[i-1].Max:
			return fmt.Errorf("%w: tier %d: max %d not above previous max %d", ErrInvalidConfig, i, tier.Max, c.Tiers[i-1].Max)
		case i == 0 && tier.Tag != "":
			return fmt.Errorf("%w: first tier cannot have a build tag (got %q)", ErrInvalidConfig, tier.Tag)
		case i > 0 && !token.IsIdentifier(tier.Tag):
			return fmt.Errorf("%w: tier %d: invalid build tag %q", ErrInvalidConfig, i, tier.Tag)
		case tags[tier.Tag]:
			return fmt.Errorf("%w: tier %d: duplicate build tag %q", ErrInvalidConfig, i, tier.Tag)
		}
		tags[tier.Tag] = true
	}
	return nil
}

// Upto returns a copy of c holding only the tiers up to and
// including the one with the given maximum.
func (c Config) Upto(ceiling int) (Config, error) {
	for i, tier := range c.Tiers {
		if tier.Max == ceiling {
			c.Tiers = c.Tiers[: i+1 : i+1]
			return c, nil
		}
	}
	return Config{}, fmt.Errorf("%w: no tier with max %d", ErrInvalidConfig, ceiling)
}

// tierConstraint returns the build constraint for the
// files of tier i.
func (c Config) tierConstraint(i int) string {
	if i == 0 {
		return ""
	}
	var tags []string
	for _, tier := range c.Tiers[i:] {
		tags = append(tags, tier.Tag)
	}
	return strings.Join(tags, " || ")
}

// maxConstraint returns the build constraint for the file
// declaring Max for tier i. Exactly one such file is
// selected by any combination of tags.
func (c Config) maxConstraint(i int) string {
	var terms []string
	if i > 0 {
		terms = append(terms, c.Tiers[i].Tag)
	}
	for _, tier := range c.Tiers[i+1:] {
		terms = append(terms, "!"+tier.Tag)
	}
	return strings.Join(terms, " && ")
}

// LoadConfig reads a configuration from the YAML or TOML
// file at path. The format is chosen by file extension.
// Missing fields take their values from DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file %s: %w", path, err)
	}
	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse YAML file %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse TOML file %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported config file format %q (supported: yaml, toml)", ext)
	}
	if cfg.Package == "" {
		cfg.Package = "tuple"
	}
	if len(cfg.Tiers) == 0 {
		cfg.Tiers = defaultTiers()
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
