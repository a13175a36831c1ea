package config

import (
	"strings"
	"time"

	"github.com/durp-dev/durp/pkg/errors"
	"github.com/durp-dev/durp/pkg/walker"
)

// Config is the resolved durp configuration
type Config struct {
	Marker Marker `koanf:"marker"`
	Walk   Walk   `koanf:"walk"`
	Output Output `koanf:"output"`
}

// Marker configures component detection
type Marker struct {
	Name string `koanf:"name"`
}

// Walk configures tree traversal
type Walk struct {
	Mode    string        `koanf:"mode"`
	Timeout time.Duration `koanf:"timeout"`
}

// Output configures how results are printed
type Output struct {
	Format string `koanf:"format"`
}

// Default returns the configuration described by the embedded defaults
func Default() *Config {
	return &Config{
		Marker: Marker{Name: "bean.json"},
		Walk:   Walk{Mode: string(walker.ModeFailFast)},
		Output: Output{Format: "auto"},
	}
}

// WalkMode returns the parsed walk mode
func (c *Config) WalkMode() (walker.Mode, error) {
	return walker.ParseMode(c.Walk.Mode)
}

// Validate checks values that cannot be caught by decoding
func (c *Config) Validate() error {
	name := c.Marker.Name
	switch {
	case strings.TrimSpace(name) == "":
		return errors.New(errors.ErrConfigValid, "marker.name must not be empty")
	case strings.ContainsAny(name, `/\`):
		return errors.Newf(errors.ErrConfigValid, "marker.name must be a file name, got %q", name).
			WithDetail("key", "marker.name")
	}

	if _, err := c.WalkMode(); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid walk.mode").
			WithDetail("key", "walk.mode")
	}

	if c.Walk.Timeout < 0 {
		return errors.Newf(errors.ErrConfigValid, "walk.timeout must not be negative, got %s", c.Walk.Timeout).
			WithDetail("key", "walk.timeout")
	}
	return nil
}
