package config

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/reidswan/servo/core"
	"github.com/reidswan/servo/core/dimen"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.core")
	defer teardown()
	//
	cfg := NewDefaultConfig()
	assert.False(t, cfg.Layout.BubbleInlineSizesSeparately)
	assert.False(t, cfg.Layout.ParallelReflow)
	assert.Equal(t, 3, cfg.Layout.ParallelDepth)
	sz, err := cfg.Viewport.Size()
	require.NoError(t, err)
	assert.Equal(t, dimen.Size{W: 800 * dimen.PX, H: 600 * dimen.PX}, sz)
	bg, err := cfg.Viewport.BackgroundColor()
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, bg)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromYAML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.core")
	defer teardown()
	//
	yaml := []byte(`
layout:
  bubble_inline_sizes_separately: true
  parallel_reflow: true
viewport:
  width: 1024px
  background: "#10203080"
`)
	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewBuffer(yaml)))
	cfg, err := NewConfigFromViper(v)
	require.NoError(t, err)
	assert.True(t, cfg.Layout.BubbleInlineSizesSeparately)
	assert.True(t, cfg.Layout.ParallelReflow)
	sz, _ := cfg.Viewport.Size()
	assert.Equal(t, 1024*dimen.PX, sz.W)
	bg, _ := cfg.Viewport.BackgroundColor()
	assert.Equal(t, color.NRGBA{0x10, 0x20, 0x30, 0x80}, bg)
}

func TestConfigValidation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.core")
	defer teardown()
	//
	cfg := NewDefaultConfig()
	cfg.Layout.ParallelDepth = -1
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
	//
	cfg = NewDefaultConfig()
	cfg.Viewport.Width = "50%"
	assert.Error(t, cfg.Validate())
	//
	cfg = NewDefaultConfig()
	cfg.Viewport.Background = "red"
	assert.Error(t, cfg.Validate())
	//
	cfg = NewDefaultConfig()
	cfg.Trace.Level = "verbose"
	assert.Error(t, cfg.Validate())
}
