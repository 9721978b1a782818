// SPDX-License-Identifier: MIT
// Package matrix - dense inversion of small blocks.
//
// Purpose:
//   - Invert the 3×3 / 4×4 covariance blocks of a clique decomposition.
//   - Report singular and numerically singular blocks as ErrSingular instead of
//     letting NaN/Inf reach an accumulator.
//
// Determinism:
//   - gonum's LU with partial pivoting is deterministic for identical inputs.

package matrix

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping.
const (
	opInverse     = "Inverse"
	opCovariance  = "Covariance"
	opCorrelation = "Correlation"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Inverse computes A⁻¹ for a non-nil, square, finite matrix and returns a fresh Dense.
// The input is never mutated.
//
// Implementation:
//   - Stage 1: ValidateSquare + ValidateFinite; copy into a contiguous Dense.
//   - Stage 2: gonum mat.Dense.Inverse (LU with partial pivoting, then a
//     reciprocal condition estimate).
//   - Stage 3: copy the result back honoring gonum's row stride.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf from validation.
//   - ErrSingular when gonum reports a mat.Condition: exact singularity, or a
//     condition number above mat.ConditionTolerance. The condition number is
//     included in the message.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - Pivoting matters here: covariance blocks are SPD in theory but may be
//     handed over in any order, and a zero leading entry is not a singular block.
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	d, err := ToDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := d.r
	var inv mat.Dense
	if err = inv.Inverse(mat.NewDense(n, n, d.data)); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, matrixErrorf(opInverse, fmt.Errorf("condition number %g: %w", float64(cond), ErrSingular))
		}

		return nil, matrixErrorf(opInverse, err)
	}

	out := &Dense{r: n, c: n, data: make([]float64, n*n)}
	raw := inv.RawMatrix()
	var i int
	for i = 0; i < n; i++ {
		copy(out.data[i*n:(i+1)*n], raw.Data[i*raw.Stride:i*raw.Stride+n])
	}
	if !out.IsFinite() {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	return out, nil
}
