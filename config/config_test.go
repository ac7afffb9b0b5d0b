package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Solar System", c.Window.Title)
	assert.Equal(t, 1024, c.Window.Width)
	assert.Equal(t, 768, c.Window.Height)
	assert.Equal(t, [3]float32{3, 2, 3}, c.Camera.Eye)
	assert.Equal(t, [3]float32{0, 1, 0}, c.Camera.Up)
	assert.Equal(t, float32(45), c.Camera.Fov)
	assert.Equal(t, float32(0.01), c.Camera.Near)
	assert.Equal(t, float32(10000), c.Camera.Far)
	assert.Equal(t, float32(0.05), c.Camera.MinDistance)
	assert.Equal(t, float32(0.01), c.Camera.ZoomScale)
	assert.Equal(t, 60, c.Animation.TickRate)
	assert.Equal(t, [4]float32{1, 1, 1, 1}, c.Render.ClearColor)
}

var invalidConfigs = []struct {
	name   string
	mutate func(c *Config)
}{
	{"zero height", func(c *Config) { c.Window.Height = 0 }},
	{"zero tick rate", func(c *Config) { c.Animation.TickRate = 0 }},
	{"fov too wide", func(c *Config) { c.Camera.Fov = 180 }},
	{"far before near", func(c *Config) { c.Camera.Near, c.Camera.Far = 10, 1 }},
	{"zero min distance", func(c *Config) { c.Camera.MinDistance = 0 }},
	{"negative min distance", func(c *Config) { c.Camera.MinDistance = -1 }},
	{"eye on target", func(c *Config) { c.Camera.Eye = c.Camera.Target }},
	{"ground step", func(c *Config) { c.Render.GroundStep = 0 }},
}

func TestValidateInvalid(t *testing.T) {
	for _, test := range invalidConfigs {
		t.Run(test.name, func(t *testing.T) {
			c, err := Default()
			require.NoError(t, err)
			test.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
