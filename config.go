package bezier

import (
	"math"

	"github.com/osuushi/bezier/internal"
	"github.com/pkg/errors"
)

// DefaultStep is the parameter step used when none is configured.
const DefaultStep = 0.01

// Config describes one curve and how finely to sample it.
type Config struct {
	ControlPoints []Point `yaml:"controlPoints"`
	Step          float64 `yaml:"step"`
}

// DefaultConfig returns the demo cubic, sampled at DefaultStep.
func DefaultConfig() Config {
	return Config{
		ControlPoints: []Point{
			{X: 100, Y: 100},
			{X: 200, Y: 33},
			{X: -200, Y: -33},
			{X: 0, Y: -500},
		},
		Step: DefaultStep,
	}
}

// Validate reports the first problem with cfg, checking the step before the
// control points.
func (cfg Config) Validate() error {
	if math.IsNaN(cfg.Step) || cfg.Step <= 0 || cfg.Step > 1 {
		return errors.Wrapf(ErrInvalidStep, "step %g is not in (0, 1]", cfg.Step)
	}
	if count := internal.SampleCount(cfg.Step); count > MaxSamples {
		return errors.Wrapf(ErrInvalidStep, "step %g needs %g samples, more than %d", cfg.Step, count, MaxSamples)
	}

	count := len(cfg.ControlPoints)
	if count < 2 {
		return errors.Wrapf(ErrInvalidDegree, "need at least 2 control points, got %d", count)
	}
	if count-1 > MaxDegree {
		return errors.Wrapf(ErrInvalidDegree, "degree %d exceeds maximum of %d", count-1, MaxDegree)
	}

	for i, p := range cfg.ControlPoints {
		if !p.IsFinite() {
			return errors.Wrapf(ErrInvalidPoint, "control point %d is %s", i, p)
		}
	}
	return nil
}
