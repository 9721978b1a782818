// Package matrix offers the dense numeric surface used by the TMFG builder.
//
// The matrix package provides:
//
//   - Matrix, a minimal bounds-checked interface over a two-dimensional
//     float64 array, and Dense, its row-major implementation.
//   - Validators (ValidateSquare, ValidateSymmetric, ValidateFinite, ...)
//     that return plain sentinel errors from errors.go.
//   - Block helpers (Induced, SetBlock, AddBlock, ZeroDiagonal) addressing
//     a matrix through an explicit index set, which is how cliques and
//     separators see the full N×N matrix.
//   - Inverse for small dense blocks, backed by gonum's pivoted LU.
//   - Covariance and Correlation of an observation matrix, backed by
//     gonum/stat.
//
// Dense matrices cost O(r·c) memory; every routine here runs in a fixed
// loop order so identical inputs always produce identical outputs.
package matrix
