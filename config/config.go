// Package config provides configuration loading and access for the geometry tools.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cricklet/speedscope/geom"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all tool configuration parameters.
type Config struct {
	Preview  PreviewConfig   `yaml:"preview"`
	Report   ReportConfig    `yaml:"report"`
	Mappings []MappingConfig `yaml:"mappings"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// RectConfig is a rect as written in YAML.
type RectConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Rect converts to a geom.Rect.
func (r RectConfig) Rect() geom.Rect {
	return geom.NewRect(geom.V(r.X, r.Y), geom.V(r.W, r.H))
}

// PointConfig is a point as written in YAML.
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PreviewConfig holds settings for the interactive preview window.
type PreviewConfig struct {
	Width     int        `yaml:"width"`
	Height    int        `yaml:"height"`
	TargetFPS int        `yaml:"target_fps"`
	Source    RectConfig `yaml:"source"` // Rect mapped from
	Target    RectConfig `yaml:"target"` // Initial rect mapped to (adjustable with sliders)
}

// ReportConfig holds settings for the CSV report.
type ReportConfig struct {
	OutputDir string        `yaml:"output_dir"` // Empty = no files written
	Tolerance float64       `yaml:"tolerance"`  // Max corner deviation still counted as a rect mapping
	Probes    []PointConfig `yaml:"probes"`     // Points pushed through every mapping
}

// MappingConfig names a from/to rect pair.
type MappingConfig struct {
	Name string     `yaml:"name"`
	From RectConfig `yaml:"from"`
	To   RectConfig `yaml:"to"`
}

// Mapping is a resolved MappingConfig.
type Mapping struct {
	Name     string
	From, To geom.Rect
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	PreviewSource geom.Rect
	PreviewTarget geom.Rect
	Probes        []geom.Vec2
	Mappings      []Mapping
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// computeDerived resolves YAML shapes into geom values.
func (c *Config) computeDerived() error {
	c.Derived.PreviewSource = c.Preview.Source.Rect()
	c.Derived.PreviewTarget = c.Preview.Target.Rect()

	c.Derived.Probes = make([]geom.Vec2, len(c.Report.Probes))
	for i, p := range c.Report.Probes {
		c.Derived.Probes[i] = geom.V(p.X, p.Y)
	}

	seen := make(map[string]bool, len(c.Mappings))
	c.Derived.Mappings = make([]Mapping, len(c.Mappings))
	for i, m := range c.Mappings {
		name := m.Name
		if name == "" {
			name = fmt.Sprintf("mapping_%d", i)
		}
		if seen[name] {
			return fmt.Errorf("duplicate mapping name %q", name)
		}
		seen[name] = true
		c.Derived.Mappings[i] = Mapping{Name: name, From: m.From.Rect(), To: m.To.Rect()}
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
