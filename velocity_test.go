package swipe

import (
	"math"
	"testing"
)

func TestRegressionVelocityLinearMotion(t *testing.T) {
	p := NewPointerTrack(0)
	p.Begin(0, 100, t0)
	for i := 1; i <= 6; i++ {
		// 1000 px/s right, 500 px/s up
		p.Move(float64(i*16), 100-float64(i*8), t0.Add(ms(i*16)))
	}
	r := &RegressionVelocity{Window: ms(80)}
	v := r.ReleaseVelocity(p)
	if math.Abs(v.X-1000) > 1e-6 || math.Abs(v.Y+500) > 1e-6 {
		t.Errorf("velocity = %v, want {1000 -500}", v)
	}
}

func TestRegressionVelocitySmoothsJitter(t *testing.T) {
	p := NewPointerTrack(0)
	p.Begin(0, 0, t0)
	for i := 1; i <= 5; i++ {
		p.Move(float64(i*10), 0, t0.Add(ms(i*10)))
	}
	// A final sample that barely advances after a long gap.
	p.End(51, 0, t0.Add(ms(60)))

	inst := InstantaneousVelocity{}.ReleaseVelocity(p).X
	reg := (&RegressionVelocity{Window: ms(80)}).ReleaseVelocity(p).X
	if inst != 100 {
		t.Fatalf("instantaneous = %v, want 100", inst)
	}
	if reg < 500 {
		t.Errorf("regression = %v, expected the trend of ~1000 px/s to dominate", reg)
	}
}

func TestRegressionVelocityFallback(t *testing.T) {
	p := NewPointerTrack(0)
	p.Begin(0, 0, t0)
	p.Move(20, 0, t0.Add(ms(10)))
	r := &RegressionVelocity{Window: ms(80)}
	if got, want := r.ReleaseVelocity(p), p.Velocity(); got != want {
		t.Errorf("velocity = %v, want instantaneous %v with two samples", got, want)
	}
}

func TestNewVelocityEstimator(t *testing.T) {
	cfg := DefaultConfig()
	if _, ok := newVelocityEstimator(cfg).(InstantaneousVelocity); !ok {
		t.Error("default estimator should be instantaneous")
	}
	cfg.VelocityEstimator = EstimatorRegression
	if _, ok := newVelocityEstimator(cfg).(*RegressionVelocity); !ok {
		t.Error("expected regression estimator")
	}
}
