// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Turn an observation matrix X (r observations × c variables) into the
//     c×c inputs of a filtered graph: the sample covariance and the Pearson
//     correlation of its columns.
//
// Exposed API:
//   - Covariance(X)  -> Cov   // (Xcᵀ Xc)/(r-1)
//   - Correlation(X) -> Corr  // Cov normalised by column standard deviations
//
// Determinism:
//   - gonum/stat uses a fixed two-pass algorithm; identical X gives identical output.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// observations validates X and exposes it to gonum without copying a *Dense.
func observations(tag string, x Matrix) (*mat.Dense, error) {
	if err := ValidateFinite(x); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	// Sample statistics need at least two observations.
	if x.Rows() < 2 {
		return nil, matrixErrorf(tag, fmt.Errorf("%d observations: %w", x.Rows(), ErrDimensionMismatch))
	}
	d, err := ToDense(x)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return mat.NewDense(d.r, d.c, d.data), nil
}

// symToDense copies a gonum SymDense into a Dense, replacing NaN by zero.
func symToDense(s *mat.SymDense) *Dense {
	n := s.SymmetricDim()
	out := &Dense{r: n, c: n, data: make([]float64, n*n)}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = s.At(i, j)
			if math.IsNaN(v) {
				v = 0
			}
			out.data[i*n+j] = v
		}
	}

	return out
}

// Covariance returns the c×c sample covariance of the columns of X.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (non-finite observation).
//   - ErrDimensionMismatch when X has fewer than two rows.
//
// Complexity: Time O(r·c²), Space O(c²).
func Covariance(x Matrix) (*Dense, error) {
	src, err := observations(opCovariance, x)
	if err != nil {
		return nil, err
	}
	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, src, nil)

	return symToDense(&cov), nil
}

// Correlation returns the c×c Pearson correlation of the columns of X.
// A constant column has zero variance; its row and column come back as zeros
// (diagonal included) rather than NaN.
//
// Errors: as Covariance.
//
// Complexity: Time O(r·c²), Space O(c²).
func Correlation(x Matrix) (*Dense, error) {
	src, err := observations(opCorrelation, x)
	if err != nil {
		return nil, err
	}
	var corr mat.SymDense
	stat.CorrelationMatrix(&corr, src, nil)
	out := symToDense(&corr)

	// gonum leaves 1 on the diagonal of a zero-variance column.
	var i, j int
	for j = 0; j < out.c; j++ {
		if !constantColumn(src, j) {
			continue
		}
		for i = 0; i < out.r; i++ {
			out.data[i*out.c+j] = 0
			out.data[j*out.c+i] = 0
		}
	}

	return out, nil
}

// constantColumn reports whether every observation of column j is equal.
func constantColumn(x *mat.Dense, j int) bool {
	rows, _ := x.Dims()
	first := x.At(0, j)
	for i := 1; i < rows; i++ {
		if x.At(i, j) != first {
			return false
		}
	}

	return true
}
