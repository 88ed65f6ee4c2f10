package tuplegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"
)

var validateTests = []struct {
	testName    string
	cfg         Config
	expectError string
}{{
	testName: "default",
	cfg:      DefaultConfig(),
}, {
	testName:    "bad-package",
	cfg:         Config{Package: "tu-ple", Tiers: []Tier{{Max: 3}}},
	expectError: `invalid tuplegen configuration: package name "tu-ple" is not an identifier`,
}, {
	testName:    "no-tiers",
	cfg:         Config{Package: "tuple"},
	expectError: `invalid tuplegen configuration: no tiers`,
}, {
	testName:    "negative",
	cfg:         Config{Package: "tuple", Tiers: []Tier{{Max: -1}}},
	expectError: `invalid tuplegen configuration: tier 0: max -1 out of range \[0, 64\]`,
}, {
	testName:    "too-big",
	cfg:         Config{Package: "tuple", Tiers: []Tier{{Max: 16}, {Max: 65, Tag: "big"}}},
	expectError: `invalid tuplegen configuration: tier 1: max 65 out of range \[0, 64\]`,
}, {
	testName:    "not-ascending",
	cfg:         Config{Package: "tuple", Tiers: []Tier{{Max: 16}, {Max: 16, Tag: "t16"}}},
	expectError: `invalid tuplegen configuration: tier 1: max 16 not above previous max 16`,
}, {
	testName:    "first-tier-tagged",
	cfg:         Config{Package: "tuple", Tiers: []Tier{{Max: 16, Tag: "t16"}}},
	expectError: `invalid tuplegen configuration: first tier cannot have a build tag \(got "t16"\)`,
}, {
	testName:    "missing-tag",
	cfg:         Config{Package: "tuple", Tiers: []Tier{{Max: 16}, {Max: 20}}},
	expectError: `invalid tuplegen configuration: tier 1: invalid build tag ""`,
}, {
	testName:    "bad-tag",
	cfg:         Config{Package: "tuple", Tiers: []Tier{{Max: 16}, {Max: 20, Tag: "a||b"}}},
	expectError: `invalid tuplegen configuration: tier 1: invalid build tag "a\|\|b"`,
}, {
	testName:    "duplicate-tag",
	cfg:         Config{Package: "tuple", Tiers: []Tier{{Max: 16}, {Max: 20, Tag: "big"}, {Max: 24, Tag: "big"}}},
	expectError: `invalid tuplegen configuration: tier 2: duplicate build tag "big"`,
}, {
	testName: "zero",
	cfg:      Config{Package: "tuple", Tiers: []Tier{{Max: 0}}},
}}

func TestValidate(t *testing.T) {
	for _, test := range validateTests {
		t.Run(test.testName, func(t *testing.T) {
			err := test.cfg.Validate()
			if test.expectError == "" {
				qt.Assert(t, qt.IsNil(err))
				return
			}
			qt.Assert(t, qt.ErrorMatches(err, test.expectError))
			qt.Assert(t, qt.ErrorIs(err, ErrInvalidConfig))
		})
	}
}

func TestUpto(t *testing.T) {
	orig := DefaultConfig()
	cfg, err := orig.Upto(24)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(cfg.Tiers, []Tier{
		{Max: 16},
		{Max: 20, Tag: "tuple20"},
		{Max: 24, Tag: "tuple24"},
	}))
	// The result must not alias the original tiers.
	cfg.Tiers = append(cfg.Tiers, Tier{Max: 30, Tag: "x"})
	qt.Assert(t, qt.DeepEquals(orig.Tiers[3], Tier{Max: 28, Tag: "tuple28"}))

	_, err = DefaultConfig().Upto(18)
	qt.Assert(t, qt.ErrorMatches(err, `invalid tuplegen configuration: no tier with max 18`))
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeFile(t, "tuplegen.yaml", `
package: tup
tiers:
  - max: 8
  - max: 12
    tag: tup12
`)
	cfg, err := LoadConfig(path)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(cfg, Config{
		Package: "tup",
		Tiers: []Tier{
			{Max: 8},
			{Max: 12, Tag: "tup12"},
		},
	}))
}

func TestLoadConfigTOML(t *testing.T) {
	path := writeFile(t, "tuplegen.toml", `
package = "tup"

[[tiers]]
max = 4

[[tiers]]
max = 6
tag = "tup6"
`)
	cfg, err := LoadConfig(path)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(cfg, Config{
		Package: "tup",
		Tiers: []Tier{
			{Max: 4},
			{Max: 6, Tag: "tup6"},
		},
	}))
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeFile(t, "empty.yml", "{}\n")
	cfg, err := LoadConfig(path)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(cfg, DefaultConfig()))
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	qt.Assert(t, qt.ErrorIs(err, os.ErrNotExist))

	_, err = LoadConfig(writeFile(t, "tuplegen.json", "{}"))
	qt.Assert(t, qt.ErrorMatches(err, `unsupported config file format ".json" \(supported: yaml, toml\)`))

	_, err = LoadConfig(writeFile(t, "bad.yaml", "tiers: [\n"))
	qt.Assert(t, qt.ErrorMatches(err, `(?s)parse YAML file .*bad.yaml: .*`))

	_, err = LoadConfig(writeFile(t, "bad.toml", "tiers = 3 3\n"))
	qt.Assert(t, qt.ErrorMatches(err, `(?s)parse TOML file .*bad.toml: .*`))

	_, err = LoadConfig(writeFile(t, "invalid.yaml", "tiers:\n  - max: 4\n    tag: t4\n"))
	qt.Assert(t, qt.ErrorIs(err, ErrInvalidConfig))
}

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(content), 0o666)
	qt.Assert(t, qt.IsNil(err))
	return path
}
