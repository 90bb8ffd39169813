// Package config loads generator settings from YAML.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/stevk/glTF-Asset-Generator/figures"
	"github.com/stevk/glTF-Asset-Generator/modelgroup"
	"github.com/stevk/glTF-Asset-Generator/report"
)

type Config struct {
	// Output is the directory the main README is written to; models go to
	// Output/Output/<Group>.
	Output string `yaml:"output"`
	// Groups selects model groups by name. Empty selects all of them.
	Groups     []string `yaml:"groups"`
	FiguresDir string   `yaml:"figures"`
	// SampleImages forces the sample image column of a group on or off.
	SampleImages   map[string]bool `yaml:"sampleImages"`
	ThumbnailWidth int             `yaml:"thumbnailWidth"`
	ViewerURL      string          `yaml:"viewerURL"`
	Binary         bool            `yaml:"glb"`
	HTML           bool            `yaml:"html"`
	Parallelism    int             `yaml:"parallelism"`
	Generator      string          `yaml:"generator"`
	Copyright      string          `yaml:"copyright"`
	LogLevel       string          `yaml:"logLevel"`
	LogFile        string          `yaml:"logFile"`
}

func Default() *Config {
	return &Config{
		Output:         ".",
		ThumbnailWidth: figures.DefaultThumbnailWidth,
		ViewerURL:      report.DefaultViewerURL,
		Parallelism:    4,
		LogLevel:       "info",
	}
}

// Load reads path over the defaults. Unknown keys are an error.
func Load(path string) (*Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	if err := yaml.UnmarshalStrict(b, c); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.Output == "" {
		return errors.New("output directory is empty")
	}
	if c.Parallelism < 1 {
		return errors.Errorf("parallelism must be positive, got %d", c.Parallelism)
	}
	if _, err := c.GroupNames(); err != nil {
		return err
	}
	for name := range c.SampleImages {
		if _, err := modelgroup.ParseName(name); err != nil {
			return errors.Wrap(err, "sampleImages")
		}
	}
	return nil
}

// GroupNames resolves the selected groups, in the order given.
func (c *Config) GroupNames() ([]modelgroup.Name, error) {
	if len(c.Groups) == 0 {
		return modelgroup.Names(), nil
	}
	var names []modelgroup.Name
	seen := map[modelgroup.Name]bool{}
	for _, g := range c.Groups {
		n, err := modelgroup.ParseName(g)
		if err != nil {
			return nil, err
		}
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	return names, nil
}

// NoSampleImages tells whether the report of g leaves out sample images.
func (c *Config) NoSampleImages(g *modelgroup.Group) bool {
	for name, on := range c.SampleImages {
		if n, err := modelgroup.ParseName(name); err == nil && n == g.Name {
			return !on
		}
	}
	return g.NoSampleImages
}
