package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Garsondee/Hex-Map/internal/hexgrid"
	"github.com/Garsondee/Hex-Map/internal/interaction"
	"github.com/Garsondee/Hex-Map/internal/terrain"
)

// Config holds all viewer configuration
type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Grid        GridConfig        `yaml:"grid"`
	Interaction InteractionConfig `yaml:"interaction"`
	Assets      AssetsConfig      `yaml:"assets"`
}

// WindowConfig holds window settings
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// GridConfig holds hex layout settings
type GridConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	OuterRadius float64 `yaml:"outer_radius"`
	Order       string  `yaml:"order"`       // column-major | row-major
	RowModulus  int     `yaml:"row_modulus"` // 0 = grid height
	Fill        string  `yaml:"fill"`        // checkerboard | random | <terrain kind>
	Seed        int64   `yaml:"seed"`
}

// InteractionConfig holds pan/click settings
type InteractionConfig struct {
	DragThreshold   float64 `yaml:"drag_threshold"`
	InitialDragging bool    `yaml:"initial_dragging"`
}

// AssetsConfig points at optional tile images named <kind>.png
type AssetsConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns the configuration used when no file is given: the
// default 6 × 7 map with a 60px radius.
func Default() *Config {
	cfg := base()
	cfg.applyDefaults()
	return &cfg
}

// base holds defaults for fields whose zero value is meaningful, so they
// must be set before unmarshalling rather than after.
func base() Config {
	return Config{
		Interaction: InteractionConfig{DragThreshold: interaction.DefaultThreshold},
	}
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML and fills defaults for anything left unset.
func Parse(data []byte) (*Config, error) {
	cfg := base()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Window.Title == "" {
		c.Window.Title = "Hex Map"
	}
	if c.Window.Width == 0 {
		c.Window.Width = 1280
	}
	if c.Window.Height == 0 {
		c.Window.Height = 900
	}
	if c.Grid.Width == 0 {
		c.Grid.Width = 6
	}
	if c.Grid.Height == 0 {
		c.Grid.Height = 7
	}
	if c.Grid.OuterRadius == 0 {
		c.Grid.OuterRadius = 60
	}
	if c.Grid.Fill == "" {
		c.Grid.Fill = "checkerboard"
	}
}

// Validate checks the settings that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	l, err := c.Layout()
	if err != nil {
		return err
	}
	if err := l.Validate(); err != nil {
		return err
	}
	if _, err := c.FillFunc(); err != nil {
		return err
	}
	if c.Interaction.DragThreshold < 0 {
		return fmt.Errorf("drag threshold must not be negative, got %v", c.Interaction.DragThreshold)
	}
	return nil
}

// Layout converts the grid section into a hexgrid.Layout.
func (c *Config) Layout() (hexgrid.Layout, error) {
	order, err := hexgrid.ParseOrder(c.Grid.Order)
	if err != nil {
		return hexgrid.Layout{}, err
	}
	return hexgrid.Layout{
		Width:       c.Grid.Width,
		Height:      c.Grid.Height,
		OuterRadius: c.Grid.OuterRadius,
		Order:       order,
		RowModulus:  c.Grid.RowModulus,
	}, nil
}

// FillFunc resolves the configured fill mode.
func (c *Config) FillFunc() (terrain.FillFunc, error) {
	return terrain.FillByName(c.Grid.Fill, c.Grid.Seed)
}
