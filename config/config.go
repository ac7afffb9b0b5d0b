package config

import (
	_ "embed"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type Camera struct {
	Eye    [3]float32 `yaml:"eye"`
	Target [3]float32 `yaml:"target"`
	Up     [3]float32 `yaml:"up"`

	// vertical field of view in degrees
	Fov  float32 `yaml:"fov"`
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`

	MinDistance float32 `yaml:"min_distance"`
	RotateScale float32 `yaml:"rotate_scale"`
	PanScale    float32 `yaml:"pan_scale"`
	ZoomScale   float32 `yaml:"zoom_scale"`
}

type Animation struct {
	// ticks per second
	TickRate int `yaml:"tick_rate"`
}

type Render struct {
	ClearColor       [4]float32 `yaml:"clear_color"`
	GroundHalfExtent float32    `yaml:"ground_half_extent"`
	GroundStep       float32    `yaml:"ground_step"`
}

// Config holds the startup constants of the demo.
type Config struct {
	Window    Window    `yaml:"window"`
	Camera    Camera    `yaml:"camera"`
	Animation Animation `yaml:"animation"`
	Render    Render    `yaml:"render"`
}

// Default returns the embedded configuration.
func Default() (*Config, error) {
	c := &Config{}
	if err := yaml.Unmarshal(defaultYAML, c); err != nil {
		return nil, errors.Wrap(err, "default config")
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "default config")
	}
	return c, nil
}

// Validate rejects settings the camera and render loop cannot work with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Animation.TickRate <= 0 {
		return errors.Errorf("invalid tick rate %d", c.Animation.TickRate)
	}
	if c.Camera.Fov <= 0 || c.Camera.Fov >= 180 {
		return errors.Errorf("invalid fov %v", c.Camera.Fov)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return errors.Errorf("invalid clip planes near=%v far=%v", c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.MinDistance <= 0 {
		return errors.Errorf("invalid camera min distance %v", c.Camera.MinDistance)
	}
	if c.Camera.Eye == c.Camera.Target {
		return errors.New("camera eye and target are the same point")
	}
	if c.Render.GroundStep <= 0 || c.Render.GroundHalfExtent <= 0 {
		return errors.Errorf("invalid ground grid %v/%v", c.Render.GroundHalfExtent, c.Render.GroundStep)
	}
	return nil
}
