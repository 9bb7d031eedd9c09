package exdash

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/exdash-go/pkg/exdash/models"
)

// Config holds dashboard settings read from a TOML or YAML file.
// Zero values mean "not set" and leave the defaults in place.
type Config struct {
	Input    string `toml:"input" yaml:"input"`
	Sheet    string `toml:"sheet" yaml:"sheet"`
	Range    string `toml:"range" yaml:"range"`
	Password string `toml:"password" yaml:"password"`

	Columns ColumnsConfig `toml:"columns" yaml:"columns"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
	Charts  ChartsConfig  `toml:"charts" yaml:"charts"`
}

// ColumnsConfig names the selected columns.
type ColumnsConfig struct {
	Numeric     string `toml:"numeric" yaml:"numeric"`
	Categorical string `toml:"categorical" yaml:"categorical"`
	Datetime    string `toml:"datetime" yaml:"datetime"`
}

// OutputConfig controls where and how figures go.
type OutputConfig struct {
	Dir    string `toml:"dir" yaml:"dir"`
	Format string `toml:"format" yaml:"format"`
	// Show specifies whether to open the viewer. If nil, the viewer opens
	// unless figures are saved to Dir.
	Show *bool   `toml:"show" yaml:"show"`
	DPI  float64 `toml:"dpi" yaml:"dpi"`
}

// ChartsConfig tunes chart statistics and sizes.
type ChartsConfig struct {
	Bins       int     `toml:"bins" yaml:"bins"`
	BarTop     int     `toml:"bar_top" yaml:"bar_top"`
	PieTop     int     `toml:"pie_top" yaml:"pie_top"`
	GridWidth  float64 `toml:"grid_width" yaml:"grid_width"`
	GridHeight float64 `toml:"grid_height" yaml:"grid_height"`
	LineWidth  float64 `toml:"line_width" yaml:"line_width"`
	LineHeight float64 `toml:"line_height" yaml:"line_height"`
}

// LoadConfig reads a .toml, .yaml or .yml config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return nil, fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// Selection returns the configured column selection.
func (c *Config) Selection() models.Selection {
	sel := models.Selection{
		Numeric:     c.Columns.Numeric,
		Categorical: c.Columns.Categorical,
	}
	if c.Columns.Datetime != "" {
		dt := c.Columns.Datetime
		sel.Datetime = &dt
	}
	return sel
}

// LoadOptions returns loading options with the configured sheet, range and password.
func (c *Config) LoadOptions() LoadOptions {
	opts := DefaultLoadOptions()
	opts.Sheet = c.Sheet
	opts.Range = c.Range
	opts.Password = c.Password
	return opts
}

// RenderOptions returns rendering options, falling back to defaults for unset fields.
func (c *Config) RenderOptions() RenderOptions {
	return RenderOptions{
		Bins:       c.Charts.Bins,
		BarTop:     c.Charts.BarTop,
		PieTop:     c.Charts.PieTop,
		GridWidth:  c.Charts.GridWidth,
		GridHeight: c.Charts.GridHeight,
		LineWidth:  c.Charts.LineWidth,
		LineHeight: c.Charts.LineHeight,
		DPI:        c.Output.DPI,
	}.withDefaults()
}

// ShouldShow returns whether to open the viewer.
func (c *Config) ShouldShow() bool {
	if c.Output.Show != nil {
		return *c.Output.Show
	}
	return c.Output.Dir == ""
}
