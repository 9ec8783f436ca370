// SPDX-License-Identifier: MIT
// Package: lvdata/preset
//
// preset.go - named generation presets read from YAML or TOML files.
//
// File shape (YAML):
//
//	presets:
//	  box-plot-small:
//	    count: 11
//	    min: 1
//	    max: 30
//	    mode_count: 1
//	    allow_prime: false
//
// TOML uses the same keys under [presets.<name>].
//
// Contract:
//   • allow_prime defaults to true when omitted.
//   • seed and max_attempts are optional; omitted means synth defaults.
//   • Catalog.Config validates through synth.NewConfig, so a broken preset
//     (including a negative mode_count or max_attempts) surfaces as
//     synth.ErrConfiguration at use time.

// Package preset loads named dataset-generation presets from YAML or TOML.
package preset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvdata/synth"
)

// Sentinel errors.
var (
	// ErrUnknownPreset indicates the requested name is not in the catalog.
	ErrUnknownPreset = errors.New("preset: unknown preset")
	// ErrUnsupportedFormat indicates a file extension other than yaml/yml/toml.
	ErrUnsupportedFormat = errors.New("preset: unsupported format")
)

// Format names a supported file encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Preset is one named generation request as stored on disk.
type Preset struct {
	Count       int    `yaml:"count" toml:"count" json:"count"`
	Min         int    `yaml:"min" toml:"min" json:"min"`
	Max         int    `yaml:"max" toml:"max" json:"max"`
	ModeCount   int    `yaml:"mode_count,omitempty" toml:"mode_count" json:"mode_count,omitempty"`
	Unique      bool   `yaml:"unique,omitempty" toml:"unique" json:"unique,omitempty"`
	AllowPrime  *bool  `yaml:"allow_prime,omitempty" toml:"allow_prime" json:"allow_prime,omitempty"`
	FromFactor  bool   `yaml:"from_factor,omitempty" toml:"from_factor" json:"from_factor,omitempty"`
	Seed        *int64 `yaml:"seed,omitempty" toml:"seed" json:"seed,omitempty"`
	MaxAttempts int    `yaml:"max_attempts,omitempty" toml:"max_attempts" json:"max_attempts,omitempty"`
}

// Options converts the preset's knobs into synth options. A negative
// mode_count or max_attempts is a synth.ErrConfiguration, never a default.
func (p Preset) Options() ([]synth.Option, error) {
	if p.ModeCount < 0 {
		return nil, fmt.Errorf("mode_count %d < 0: %w", p.ModeCount, synth.ErrConfiguration)
	}
	if p.MaxAttempts < 0 {
		return nil, fmt.Errorf("max_attempts %d < 0: %w", p.MaxAttempts, synth.ErrConfiguration)
	}

	opts := []synth.Option{
		synth.WithModeCount(p.ModeCount),
		synth.WithUnique(p.Unique),
		synth.WithFromFactor(p.FromFactor),
	}
	if p.AllowPrime != nil {
		opts = append(opts, synth.WithAllowPrime(*p.AllowPrime))
	}
	if p.Seed != nil {
		opts = append(opts, synth.WithSeed(*p.Seed))
	}
	if p.MaxAttempts > 0 {
		opts = append(opts, synth.WithMaxAttempts(p.MaxAttempts))
	}
	return opts, nil
}

// Catalog maps preset names to presets.
type Catalog map[string]Preset

type document struct {
	Presets Catalog `yaml:"presets" toml:"presets"`
}

// Load reads a catalog, choosing the decoder from the file extension.
func Load(path string) (Catalog, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preset: read %s: %w", path, err)
	}

	return Parse(data, format)
}

// FormatOf maps a file extension to a Format.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("preset: %q: %w", path, ErrUnsupportedFormat)
	}
}

// Parse decodes a catalog from raw bytes.
func Parse(data []byte, format Format) (Catalog, error) {
	var doc document

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("preset: decode yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("preset: decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("preset: format %q: %w", format, ErrUnsupportedFormat)
	}

	if doc.Presets == nil {
		return Catalog{}, nil
	}
	return doc.Presets, nil
}

// Names returns the preset names in ascending order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named preset.
func (c Catalog) Lookup(name string) (Preset, error) {
	p, ok := c[name]
	if !ok {
		return Preset{}, fmt.Errorf("preset: %q: %w", name, ErrUnknownPreset)
	}
	return p, nil
}

// Config resolves the named preset into a validated synth.Config. extra
// options apply after the preset's own (last wins).
func (c Catalog) Config(name string, extra ...synth.Option) (synth.Config, error) {
	p, err := c.Lookup(name)
	if err != nil {
		return synth.Config{}, err
	}

	opts, err := p.Options()
	if err != nil {
		return synth.Config{}, fmt.Errorf("preset: %q: %w", name, err)
	}

	cfg, err := synth.NewConfig(p.Count, p.Min, p.Max, append(opts, extra...)...)
	if err != nil {
		return synth.Config{}, fmt.Errorf("preset: %q: %w", name, err)
	}
	return cfg, nil
}
