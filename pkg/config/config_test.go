package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.ScreenWidth = 0 }},
		{"zero tps", func(c *Config) { c.TPS = 0 }},
		{"negative road", func(c *Config) { c.RoadWidth = -1 }},
		{"unknown surface", func(c *Config) { c.Surface = "lidar" }},
		{"tolerance too high", func(c *Config) { c.Tolerance = 300 }},
		{"damping above one", func(c *Config) { c.OffTrackDamping = 1.5 }},
		{"no max speed", func(c *Config) { c.Tuning.MaxSpeed = 0 }},
		{"flat car", func(c *Config) { c.Tuning.Width = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}
}

func TestField(t *testing.T) {
	c := Default()
	f := c.Field()
	assert.Equal(t, 800.0, f.Right())
	assert.Equal(t, 600.0, f.Bottom())
}
