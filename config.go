package swipe

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Velocity estimator names accepted by Config.VelocityEstimator.
const (
	EstimatorInstantaneous = "instantaneous"
	EstimatorRegression    = "regression"
)

// TapConfig holds the single-tap recognizer thresholds.
type TapConfig struct {
	MaxDuration time.Duration
	MaxDistance float64
}

// DoubleTapConfig holds the double-tap recognizer thresholds. MaxDelay is
// measured from the first release to the second press.
type DoubleTapConfig struct {
	MaxDelay    time.Duration
	MaxDuration time.Duration
	MaxDistance float64
}

// LongPressConfig holds the long-press recognizer thresholds.
type LongPressConfig struct {
	MinDuration time.Duration
	MaxDistance float64
}

// PanConfig holds the pan recognizer threshold.
type PanConfig struct {
	ActivationDistance float64
}

// SwipeConfig holds the commit/snap-back thresholds.
type SwipeConfig struct {
	HorizontalFraction float64 // of viewport width
	VerticalFraction   float64 // of viewport height
	VelocityThreshold  float64 // px/s
	Overshoot          float64 // px past the viewport edge
}

// MagneticConfig holds the reaction picker settings.
type MagneticConfig struct {
	InfluenceRadius float64
}

// Config collects every tunable threshold of the engine. Start from
// DefaultConfig and override fields per instance.
type Config struct {
	Tap       TapConfig
	DoubleTap DoubleTapConfig
	LongPress LongPressConfig
	Pan       PanConfig
	Swipe     SwipeConfig
	Magnetic  MagneticConfig

	Viewport Size

	UndoWindow time.Duration

	MinSampleInterval time.Duration
	VelocityEstimator string
	VelocityWindow    time.Duration
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		Tap: TapConfig{
			MaxDuration: 220 * time.Millisecond,
			MaxDistance: 8,
		},
		DoubleTap: DoubleTapConfig{
			MaxDelay:    280 * time.Millisecond,
			MaxDuration: 260 * time.Millisecond,
			MaxDistance: 8,
		},
		LongPress: LongPressConfig{
			MinDuration: 350 * time.Millisecond,
			MaxDistance: 8,
		},
		Pan: PanConfig{
			ActivationDistance: 10,
		},
		Swipe: SwipeConfig{
			HorizontalFraction: 0.30,
			VerticalFraction:   0.30,
			VelocityThreshold:  500,
			Overshoot:          60,
		},
		Magnetic: MagneticConfig{
			InfluenceRadius: 48,
		},
		Viewport:          Size{Width: 390, Height: 844},
		UndoWindow:        5 * time.Second,
		MinSampleInterval: defaultMinSampleInterval,
		VelocityEstimator: EstimatorInstantaneous,
		VelocityWindow:    80 * time.Millisecond,
	}
}

// Validate reports the first inconsistent setting. The pan activation
// distance must not be below any tap or long-press distance: a pan that
// activates must already have violated those limits, which keeps two
// recognizers from being recognized on the same sample.
func (c Config) Validate() error {
	switch {
	case c.Tap.MaxDuration <= 0, c.DoubleTap.MaxDuration <= 0, c.DoubleTap.MaxDelay <= 0:
		return fmt.Errorf("swipe: tap durations must be positive")
	case c.LongPress.MinDuration <= 0:
		return fmt.Errorf("swipe: long-press min duration must be positive")
	case c.Tap.MaxDistance < 0, c.DoubleTap.MaxDistance < 0, c.LongPress.MaxDistance < 0:
		return fmt.Errorf("swipe: distances must not be negative")
	case c.Pan.ActivationDistance < c.Tap.MaxDistance,
		c.Pan.ActivationDistance < c.DoubleTap.MaxDistance,
		c.Pan.ActivationDistance < c.LongPress.MaxDistance:
		return fmt.Errorf("swipe: pan activation distance %.1f is below a tap or long-press distance",
			c.Pan.ActivationDistance)
	case c.Viewport.Width <= 0 || c.Viewport.Height <= 0:
		return fmt.Errorf("swipe: viewport %vx%v must be positive", c.Viewport.Width, c.Viewport.Height)
	case c.Swipe.HorizontalFraction <= 0 || c.Swipe.HorizontalFraction > 1,
		c.Swipe.VerticalFraction <= 0 || c.Swipe.VerticalFraction > 1:
		return fmt.Errorf("swipe: swipe fractions must be in (0, 1]")
	case c.Swipe.Overshoot < 0:
		return fmt.Errorf("swipe: overshoot must not be negative")
	case c.Swipe.VelocityThreshold < 0:
		return fmt.Errorf("swipe: velocity threshold must not be negative")
	case c.Magnetic.InfluenceRadius <= 0:
		return fmt.Errorf("swipe: influence radius must be positive")
	case c.UndoWindow < 0:
		return fmt.Errorf("swipe: undo window must not be negative")
	}
	switch c.VelocityEstimator {
	case "", EstimatorInstantaneous, EstimatorRegression:
	default:
		return fmt.Errorf("swipe: unknown velocity estimator %q", c.VelocityEstimator)
	}
	return nil
}

// configFile is the on-disk override schema. Every field is optional;
// omitted fields keep the value of the base config. Durations are strings
// such as "220ms".
type configFile struct {
	TapMaxDuration          *string  `json:"tap_max_duration,omitempty"`
	TapMaxDistance          *float64 `json:"tap_max_distance,omitempty"`
	DoubleTapMaxDelay       *string  `json:"double_tap_max_delay,omitempty"`
	DoubleTapMaxDuration    *string  `json:"double_tap_max_duration,omitempty"`
	DoubleTapMaxDistance    *float64 `json:"double_tap_max_distance,omitempty"`
	LongPressMinDuration    *string  `json:"long_press_min_duration,omitempty"`
	LongPressMaxDistance    *float64 `json:"long_press_max_distance,omitempty"`
	PanActivationDistance   *float64 `json:"pan_activation_distance,omitempty"`
	SwipeHorizontalFraction *float64 `json:"swipe_horizontal_fraction,omitempty"`
	SwipeVerticalFraction   *float64 `json:"swipe_vertical_fraction,omitempty"`
	SwipeVelocityThreshold  *float64 `json:"swipe_velocity_threshold,omitempty"`
	SwipeOvershoot          *float64 `json:"swipe_overshoot,omitempty"`
	InfluenceRadius         *float64 `json:"influence_radius,omitempty"`
	ViewportWidth           *float64 `json:"viewport_width,omitempty"`
	ViewportHeight          *float64 `json:"viewport_height,omitempty"`
	UndoWindow              *string  `json:"undo_window,omitempty"`
	MinSampleInterval       *string  `json:"min_sample_interval,omitempty"`
	VelocityEstimator       *string  `json:"velocity_estimator,omitempty"`
	VelocityWindow          *string  `json:"velocity_window,omitempty"`
}

const maxConfigFileSize = 64 * 1024

// LoadConfig reads a JSON override file and applies it on top of
// DefaultConfig. The result is validated.
func LoadConfig(path string) (Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return Config{}, fmt.Errorf("swipe: config file must have .json extension, got %q", ext)
	}
	info, err := os.Stat(cleanPath)
	if err != nil {
		return Config{}, fmt.Errorf("swipe: stat config: %w", err)
	}
	if info.Size() > maxConfigFileSize {
		return Config{}, fmt.Errorf("swipe: config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
	}
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return Config{}, fmt.Errorf("swipe: read config: %w", err)
	}
	return ParseConfig(data, DefaultConfig())
}

// ParseConfig applies a JSON override document to base and validates the
// result.
func ParseConfig(data []byte, base Config) (Config, error) {
	var f configFile
	if err := json.Unmarshal(data, &f); err != nil {
		return Config{}, fmt.Errorf("swipe: parse config: %w", err)
	}
	cfg := base
	durations := []struct {
		src *string
		dst *time.Duration
	}{
		{f.TapMaxDuration, &cfg.Tap.MaxDuration},
		{f.DoubleTapMaxDelay, &cfg.DoubleTap.MaxDelay},
		{f.DoubleTapMaxDuration, &cfg.DoubleTap.MaxDuration},
		{f.LongPressMinDuration, &cfg.LongPress.MinDuration},
		{f.UndoWindow, &cfg.UndoWindow},
		{f.MinSampleInterval, &cfg.MinSampleInterval},
		{f.VelocityWindow, &cfg.VelocityWindow},
	}
	for _, d := range durations {
		if d.src == nil {
			continue
		}
		v, err := time.ParseDuration(*d.src)
		if err != nil {
			return Config{}, fmt.Errorf("swipe: parse config: %w", err)
		}
		*d.dst = v
	}
	floats := []struct {
		src *float64
		dst *float64
	}{
		{f.TapMaxDistance, &cfg.Tap.MaxDistance},
		{f.DoubleTapMaxDistance, &cfg.DoubleTap.MaxDistance},
		{f.LongPressMaxDistance, &cfg.LongPress.MaxDistance},
		{f.PanActivationDistance, &cfg.Pan.ActivationDistance},
		{f.SwipeHorizontalFraction, &cfg.Swipe.HorizontalFraction},
		{f.SwipeVerticalFraction, &cfg.Swipe.VerticalFraction},
		{f.SwipeVelocityThreshold, &cfg.Swipe.VelocityThreshold},
		{f.SwipeOvershoot, &cfg.Swipe.Overshoot},
		{f.InfluenceRadius, &cfg.Magnetic.InfluenceRadius},
		{f.ViewportWidth, &cfg.Viewport.Width},
		{f.ViewportHeight, &cfg.Viewport.Height},
	}
	for _, fl := range floats {
		if fl.src != nil {
			*fl.dst = *fl.src
		}
	}
	if f.VelocityEstimator != nil {
		cfg.VelocityEstimator = *f.VelocityEstimator
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
