package config

import (
	"fmt"
	"os"

	"GLTutorial/harness"
	"GLTutorial/scenes"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Context  ContextConfig  `yaml:"context"`
	Textures TexturesConfig `yaml:"textures"`
	Log      LogConfig      `yaml:"log"`
}

type WindowConfig struct {
	Title  string `yaml:"title,omitempty"`
	X      *int   `yaml:"x,omitempty"`
	Y      *int   `yaml:"y,omitempty"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
}

type ContextConfig struct {
	Major             *int  `yaml:"major,omitempty"`
	Minor             *int  `yaml:"minor,omitempty"`
	Core              *bool `yaml:"core,omitempty"`
	ForwardCompatible *bool `yaml:"forwardCompatible,omitempty"`
	StencilBits       int   `yaml:"stencilBits,omitempty"`
}

type TexturesConfig struct {
	First  string `yaml:"first,omitempty"`
	Second string `yaml:"second,omitempty"`
	FlipY  bool   `yaml:"flipY,omitempty"`
}

type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

func Default() *Config {

	c := &Config{}
	c.normalize()

	return c

}

// Load reads a YAML file and fills anything it leaves out with defaults.
func Load(path string) (*Config, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	c.normalize()

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &c, nil

}

func (c *Config) normalize() {

	if c.Window.Title == "" {
		c.Window.Title = "OpenGL"
	}
	if c.Window.X == nil {
		c.Window.X = intPtr(100)
	}
	if c.Window.Y == nil {
		c.Window.Y = intPtr(100)
	}
	if c.Window.Width == 0 {
		c.Window.Width = 800
	}
	if c.Window.Height == 0 {
		c.Window.Height = 600
	}

	// 3.2 is the first version with core profiles; another major defaults to .0
	if c.Context.Major == nil {
		c.Context.Major = intPtr(3)
	}
	if c.Context.Minor == nil {
		if *c.Context.Major == 3 {
			c.Context.Minor = intPtr(2)
		} else {
			c.Context.Minor = intPtr(0)
		}
	}
	if c.Context.Core == nil {
		c.Context.Core = boolPtr(true)
	}
	if c.Context.ForwardCompatible == nil {
		c.Context.ForwardCompatible = boolPtr(true)
	}
	if c.Context.StencilBits == 0 {
		c.Context.StencilBits = 8
	}

	if c.Textures.First == "" {
		c.Textures.First = scenes.DefaultKittenPath
	}
	if c.Textures.Second == "" {
		c.Textures.Second = scenes.DefaultPuppyPath
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

}

func (c *Config) validate() error {

	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("window size %dx%d is negative", c.Window.Width, c.Window.Height)
	}

	if *c.Context.Major < 3 || *c.Context.Minor < 0 {
		return fmt.Errorf("context version %d.%d has no vertex array objects", *c.Context.Major, *c.Context.Minor)
	}

	if c.Context.StencilBits < 0 {
		return fmt.Errorf("stencil bits %d is negative", c.Context.StencilBits)
	}

	return nil

}

// WindowConfig is the harness view of the window and context settings.
func (c *Config) WindowConfig() harness.WindowConfig {

	return harness.WindowConfig{
		Title:             c.Window.Title,
		X:                 *c.Window.X,
		Y:                 *c.Window.Y,
		Width:             c.Window.Width,
		Height:            c.Window.Height,
		ContextMajor:      *c.Context.Major,
		ContextMinor:      *c.Context.Minor,
		CoreProfile:       *c.Context.Core,
		ForwardCompatible: *c.Context.ForwardCompatible,
		StencilBits:       c.Context.StencilBits,
	}

}

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }
