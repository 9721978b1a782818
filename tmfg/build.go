package tmfg

import (
	"fmt"

	"github.com/katalvlaran/tmfg/matrix"
)

// Build constructs the TMFG of the similarity matrix w and projects it
// according to the options.
//
// Contracts:
//   - w must be square, N ≥ MinVertices, finite, and symmetric within
//     Options.SymmetryTolerance. It is never mutated.
//   - LocalGlobal requires WithCovariance with the same N×N shape, finite,
//     and invertible on every clique and separator block.
//
// The construction is deterministic: identical inputs yield identical
// cliques, separators and matrices.
//
// Errors:
//   - ErrInvalidInput (wrapping the matrix sentinel that fired) before any
//     construction work.
//   - ErrSingularSubmatrix from the LocalGlobal projection.
//
// No partial result is returned on error.
//
// Complexity: see the package documentation.
func Build(w matrix.Matrix, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	orig, cov, err := validateInputs(w, o)
	if err != nil {
		return nil, err
	}
	n := orig.Rows()
	o.Logger.Info("tmfg build", "n", n, "mode", o.Mode.String())

	work := orig.Clone().(*matrix.Dense)
	work.ZeroDiagonal()

	b := newBuilder(orig, work, o.Logger)
	b.run()
	res := b.result()
	res.Mode = o.Mode

	if res.Matrix, err = project(o.Mode, orig, cov, res.Cliques, res.Separators); err != nil {
		o.Logger.Error("tmfg projection failed", "mode", o.Mode.String(), "error", err)

		return nil, err
	}
	o.Logger.Info("tmfg done",
		"cliques", len(res.Cliques),
		"separators", len(res.Separators),
		"triangles", len(res.Triangles),
	)

	return res, nil
}

// validateInputs fails fast on every InvalidInput condition and returns
// independent Dense copies of w and, in LocalGlobal mode, the covariance.
func validateInputs(w matrix.Matrix, o Options) (*matrix.Dense, *matrix.Dense, error) {
	if !o.Mode.valid() {
		return nil, nil, fmt.Errorf("%w: unknown mode %v", ErrInvalidInput, o.Mode)
	}
	if err := matrix.ValidateSquare(w); err != nil {
		return nil, nil, fmt.Errorf("%w: similarity: %w", ErrInvalidInput, err)
	}
	if w.Rows() < MinVertices {
		return nil, nil, fmt.Errorf("%w: similarity has %d vertices, need at least %d",
			ErrInvalidInput, w.Rows(), MinVertices)
	}
	if err := matrix.ValidateFinite(w); err != nil {
		return nil, nil, fmt.Errorf("%w: similarity: %w", ErrInvalidInput, err)
	}
	if o.SymmetryTolerance >= 0 {
		if err := matrix.ValidateSymmetric(w, o.SymmetryTolerance); err != nil {
			return nil, nil, fmt.Errorf("%w: similarity: %w", ErrInvalidInput, err)
		}
	}
	orig, err := matrix.ToDense(w)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: similarity: %w", ErrInvalidInput, err)
	}

	if o.Mode != LocalGlobal {
		return orig, nil, nil
	}
	if o.Covariance == nil {
		return nil, nil, fmt.Errorf("%w: %v mode needs a covariance matrix: %w",
			ErrInvalidInput, LocalGlobal, matrix.ErrNilMatrix)
	}
	if err = matrix.ValidateSameShape(w, o.Covariance); err != nil {
		return nil, nil, fmt.Errorf("%w: covariance: %w", ErrInvalidInput, err)
	}
	if err = matrix.ValidateFinite(o.Covariance); err != nil {
		return nil, nil, fmt.Errorf("%w: covariance: %w", ErrInvalidInput, err)
	}
	cov, err := matrix.ToDense(o.Covariance)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: covariance: %w", ErrInvalidInput, err)
	}

	return orig, cov, nil
}
