// Package config holds the configuration of the layout engine.
//
// Configuration is read with viper. Clients either start from
// NewDefaultConfig or prepare a viper instance themselves (files, environment,
// flags), call SetDefaults on it and hand it to NewConfigFromViper.
package config

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/reidswan/servo/core"
	"github.com/reidswan/servo/core/dimen"
	"github.com/spf13/viper"
)

// Config is the top-level configuration.
type Config struct {
	Layout   LayoutConfig   `mapstructure:"layout"`
	Viewport ViewportConfig `mapstructure:"viewport"`
	Trace    TraceConfig    `mapstructure:"trace"`
}

// LayoutConfig steers the layout traversals.
type LayoutConfig struct {
	// Run intrinsic inline-size bubbling as a pass of its own instead of
	// interleaving it with flow construction.
	BubbleInlineSizesSeparately bool `mapstructure:"bubble_inline_sizes_separately"`
	// Use fork/join reflow instead of the sequential driver.
	ParallelReflow bool `mapstructure:"parallel_reflow"`
	// Number of tree levels for which children are forked; deeper levels run sequentially.
	ParallelDepth int `mapstructure:"parallel_depth"`
}

// ViewportConfig describes the client area.
type ViewportConfig struct {
	Width      string `mapstructure:"width"`
	Height     string `mapstructure:"height"`
	Background string `mapstructure:"background"` // #rrggbb or #rrggbbaa
}

// TraceConfig sets trace levels for the engine's tracers.
type TraceConfig struct {
	Level string   `mapstructure:"level"`
	Keys  []string `mapstructure:"keys"`
}

// SetDefaults registers default values for every configuration key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("layout.bubble_inline_sizes_separately", false)
	v.SetDefault("layout.parallel_reflow", false)
	v.SetDefault("layout.parallel_depth", 3)
	v.SetDefault("viewport.width", "800px")
	v.SetDefault("viewport.height", "600px")
	v.SetDefault("viewport.background", "#ffffff")
	v.SetDefault("trace.level", "error")
	v.SetDefault("trace.keys", []string{
		"servo.flow", "servo.layout", "servo.display", "servo.boxtree",
		"servo.framedebug", "servo.raster", "servo.text",
	})
}

// NewDefaultConfig returns a configuration holding default values only.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic("default configuration cannot be unmarshalled: " + err.Error())
	}
	return &cfg
}

// NewConfigFromViper unmarshals and validates a configuration.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot read configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	if c.Layout.ParallelDepth < 0 {
		return core.Error(core.EINVALID, "layout.parallel_depth must not be negative")
	}
	if _, err := c.Viewport.Size(); err != nil {
		return err
	}
	if _, err := c.Viewport.BackgroundColor(); err != nil {
		return err
	}
	if _, ok := traceLevel(c.Trace.Level); !ok {
		return core.Error(core.EINVALID, "trace.level %q unknown", c.Trace.Level)
	}
	return nil
}

// Size returns the viewport size.
func (vc ViewportConfig) Size() (dimen.Size, error) {
	w, pw, err := dimen.ParseDimen(vc.Width)
	if err != nil || pw || w <= 0 {
		return dimen.Size{}, core.WrapError(err, core.EINVALID, "viewport.width %q invalid", vc.Width)
	}
	h, ph, err := dimen.ParseDimen(vc.Height)
	if err != nil || ph || h < 0 {
		return dimen.Size{}, core.WrapError(err, core.EINVALID, "viewport.height %q invalid", vc.Height)
	}
	return dimen.Size{W: w, H: h}, nil
}

// BackgroundColor parses the page background color.
func (vc ViewportConfig) BackgroundColor() (color.NRGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(vc.Background), "#")
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return color.NRGBA{}, core.Error(core.EINVALID, "viewport.background %q invalid", vc.Background)
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, core.WrapError(err, core.EINVALID, "viewport.background %q invalid", vc.Background)
	}
	return color.NRGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}

// Apply sets the configured trace level for all configured tracer keys.
func (tc TraceConfig) Apply() {
	lvl, ok := traceLevel(tc.Level)
	if !ok {
		return
	}
	for _, key := range tc.Keys {
		tracing.Select(key).SetTraceLevel(lvl)
	}
}

func traceLevel(s string) (tracing.TraceLevel, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return tracing.LevelDebug, true
	case "info":
		return tracing.LevelInfo, true
	case "error", "":
		return tracing.LevelError, true
	}
	return tracing.LevelError, false
}
