package tmfg_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tmfg/matrix"
	"github.com/stretchr/testify/require"
)

// mustDense builds a Dense from literal rows or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// randomSymmetric returns an n×n symmetric matrix with entries in [-1, 1)
// and a unit diagonal, generated from a fixed seed.
func randomSymmetric(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	var i, j int
	for i = 0; i < n; i++ {
		_ = m.Set(i, i, 1)
		for j = i + 1; j < n; j++ {
			v := 2*rng.Float64() - 1
			_ = m.Set(i, j, v)
			_ = m.Set(j, i, v)
		}
	}

	return m
}

// randomSPD returns A·Aᵀ + n·I for a seeded random A; always invertible,
// and so is every principal submatrix.
func randomSPD(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
		for j := range a[i] {
			a[i][j] = rng.NormFloat64()
		}
	}
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	var i, j, k int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			var s float64
			for k = 0; k < n; k++ {
				s += a[i][k] * a[j][k]
			}
			if i == j {
				s += float64(n)
			}
			_ = m.Set(i, j, s)
		}
	}

	return m
}

// at reads (i, j) or fails the test.
func at(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// fivePoint is the N=5 scenario: vertices 0..3 are tightly linked (weight 2),
// vertex 4 links with weight 1 to 0, 1, 2 and 0 to 3.
var fivePoint = [][]float64{
	{0, 2, 2, 2, 1},
	{2, 0, 2, 2, 1},
	{2, 2, 0, 2, 1},
	{2, 2, 2, 0, 0},
	{1, 1, 1, 0, 0},
}

// kac returns the AR(1) covariance ρ^|i-j|.
func kac(t testing.TB, n int, rho float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	var i, j int
	for i = 0; i < n; i++ {
		v := 1.0
		for j = i; j < n; j++ {
			_ = m.Set(i, j, v)
			_ = m.Set(j, i, v)
			v *= rho
		}
	}

	return m
}
