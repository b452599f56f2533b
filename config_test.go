package swipe

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"zero tap duration", func(c *Config) { c.Tap.MaxDuration = 0 }, "tap durations"},
		{"zero long-press", func(c *Config) { c.LongPress.MinDuration = 0 }, "long-press"},
		{"negative distance", func(c *Config) { c.Tap.MaxDistance = -1 }, "negative"},
		{"pan below tap slop", func(c *Config) { c.Pan.ActivationDistance = 4 }, "pan activation"},
		{"empty viewport", func(c *Config) { c.Viewport = Size{} }, "viewport"},
		{"zero horizontal fraction", func(c *Config) { c.Swipe.HorizontalFraction = 0 }, "swipe fractions"},
		{"vertical fraction above one", func(c *Config) { c.Swipe.VerticalFraction = 1.5 }, "swipe fractions"},
		{"negative overshoot", func(c *Config) { c.Swipe.Overshoot = -10 }, "overshoot"},
		{"zero radius", func(c *Config) { c.Magnetic.InfluenceRadius = 0 }, "influence radius"},
		{"negative window", func(c *Config) { c.UndoWindow = -time.Second }, "undo window"},
		{"unknown estimator", func(c *Config) { c.VelocityEstimator = "kalman" }, "estimator"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, strings.HasPrefix(err.Error(), "swipe: "))
		})
	}
}

func TestParseConfigOverrides(t *testing.T) {
	data := []byte(`{
		"tap_max_duration": "180ms",
		"long_press_min_duration": "500ms",
		"pan_activation_distance": 14,
		"swipe_velocity_threshold": 650,
		"undo_window": "3s",
		"velocity_estimator": "regression"
	}`)
	cfg, err := ParseConfig(data, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 180*time.Millisecond, cfg.Tap.MaxDuration)
	assert.Equal(t, 500*time.Millisecond, cfg.LongPress.MinDuration)
	assert.Equal(t, 14.0, cfg.Pan.ActivationDistance)
	assert.Equal(t, 650.0, cfg.Swipe.VelocityThreshold)
	assert.Equal(t, 3*time.Second, cfg.UndoWindow)
	assert.Equal(t, EstimatorRegression, cfg.VelocityEstimator)

	// Untouched fields keep their defaults.
	def := DefaultConfig()
	assert.Equal(t, def.DoubleTap, cfg.DoubleTap)
	assert.Equal(t, def.Viewport, cfg.Viewport)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad json", `{`},
		{"bad duration", `{"tap_max_duration": "soon"}`},
		{"invalid result", `{"pan_activation_distance": 1}`},
		{"negative fraction", `{"swipe_horizontal_fraction": -0.2}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data), DefaultConfig())
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "tuning.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"influence_radius": 64}`), 0o600))
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 64.0, cfg.Magnetic.InfluenceRadius)

	_, err = LoadConfig(filepath.Join(dir, "tuning.yaml"))
	assert.ErrorContains(t, err, ".json")

	_, err = LoadConfig(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	big := filepath.Join(dir, "big.json")
	require.NoError(t, os.WriteFile(big, make([]byte, maxConfigFileSize+1), 0o600))
	_, err = LoadConfig(big)
	assert.ErrorContains(t, err, "too large")
}
