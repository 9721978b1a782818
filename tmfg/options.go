package tmfg

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/tmfg/matrix"
)

// DefaultSymmetryTolerance is the asymmetry |W[i,j]−W[j,i]| accepted by default.
const DefaultSymmetryTolerance = 1e-9

// Option configures Build.
type Option func(*Options)

// Options holds the Build configuration.
type Options struct {
	// Mode selects the projection; default FilteredWeights.
	Mode Mode

	// Covariance is required when Mode == LocalGlobal and must match W's shape.
	Covariance matrix.Matrix

	// SymmetryTolerance bounds |W[i,j]−W[j,i]|; a negative value skips the check.
	SymmetryTolerance float64

	// Logger receives build records; default discards everything.
	Logger *slog.Logger
}

// DefaultOptions returns Options with:
//   - FilteredWeights projection
//   - no covariance
//   - DefaultSymmetryTolerance
//   - a discarding logger
func DefaultOptions() Options {
	return Options{
		Mode:              FilteredWeights,
		Covariance:        nil,
		SymmetryTolerance: DefaultSymmetryTolerance,
		Logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithMode sets the projection mode.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// WithCovariance supplies the covariance matrix used by LocalGlobal.
// Other modes ignore it.
func WithCovariance(cov matrix.Matrix) Option {
	return func(o *Options) {
		o.Covariance = cov
	}
}

// WithSymmetryTolerance sets the accepted asymmetry of W.
// Pass a negative value to accept any matrix.
func WithSymmetryTolerance(eps float64) Option {
	return func(o *Options) {
		o.SymmetryTolerance = eps
	}
}

// WithLogger installs a structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
