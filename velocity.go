package swipe

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// VelocityEstimator derives the release velocity of a finished track.
type VelocityEstimator interface {
	ReleaseVelocity(p *PointerTrack) Vec2
}

// InstantaneousVelocity uses the finite difference over the last sample
// interval.
type InstantaneousVelocity struct{}

// ReleaseVelocity returns the track's last instantaneous velocity.
func (InstantaneousVelocity) ReleaseVelocity(p *PointerTrack) Vec2 {
	return p.Velocity()
}

// RegressionVelocity fits a least-squares line to position against time
// over the samples in the last Window and uses its slope. It smooths out a
// jittery final sample. With fewer than three samples in the window it
// falls back to the instantaneous velocity.
type RegressionVelocity struct {
	Window time.Duration

	buf []Sample
	ts  []float64
	xs  []float64
	ys  []float64
}

// ReleaseVelocity returns the fitted velocity in px/s.
func (r *RegressionVelocity) ReleaseVelocity(p *PointerTrack) Vec2 {
	r.buf = p.Recent(r.Window, r.buf[:0])
	if len(r.buf) < 3 {
		return p.Velocity()
	}
	t0 := r.buf[0].Time
	r.ts, r.xs, r.ys = r.ts[:0], r.xs[:0], r.ys[:0]
	for _, s := range r.buf {
		r.ts = append(r.ts, s.Time.Sub(t0).Seconds())
		r.xs = append(r.xs, s.Pos.X)
		r.ys = append(r.ys, s.Pos.Y)
	}
	if r.ts[len(r.ts)-1] == 0 {
		return p.Velocity()
	}
	_, vx := stat.LinearRegression(r.ts, r.xs, nil, false)
	_, vy := stat.LinearRegression(r.ts, r.ys, nil, false)
	return Vec2{vx, vy}
}

// newVelocityEstimator returns the estimator named by cfg.
func newVelocityEstimator(cfg Config) VelocityEstimator {
	if cfg.VelocityEstimator == EstimatorRegression {
		return &RegressionVelocity{Window: cfg.VelocityWindow}
	}
	return InstantaneousVelocity{}
}
