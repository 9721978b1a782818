// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Address square matrices through index sets (Induced/SetBlock/AddBlock),
//     the access pattern of clique and separator projections.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Induced: O(k²); AddBlock: O(k²).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxInduce   = "Induced"  // ctor/tag for Dense.Induced
	ctxSetBlock = "SetBlock" // block overwrite
	ctxAddBlock = "AddBlock" // block accumulation
	ctxFromRows = "NewDenseFromRows"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>0 for public constructors)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions if rows<=0 or cols<=0.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows copies a rectangular [][]float64 into a fresh Dense.
//
// Errors:
//   - ErrInvalidDimensions for no rows or an empty first row.
//   - ErrDimensionMismatch when a row length differs from the first row.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				ctxFromRows, i, len(rows[i]), c, ErrDimensionMismatch)
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// ToDense returns an independent *Dense copy of any Matrix.
// A *Dense input takes the flat-copy fast path; other implementations
// are read through At in i→j order.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions (empty input), wrapped At errors.
func ToDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}

	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("ToDense: %w", err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf validates (row, col) and returns the flat offset.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
// Errors: ErrOutOfRange wrapped with coordinates.
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[idx], nil
}

// Set writes v at (row, col).
// Errors: ErrOutOfRange wrapped with coordinates.
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy; the dynamic type is *Dense.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// RowView returns row i as a slice sharing the matrix storage.
// Writes through the slice mutate the matrix. Panics if i is out of range;
// it is meant for hot loops whose indices are already validated.
func (m *Dense) RowView(i int) []float64 {
	return m.data[i*m.c : (i+1)*m.c]
}

// ToRows returns an independent [][]float64 copy, row by row.
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = append([]float64(nil), m.data[i*m.c:(i+1)*m.c]...)
	}

	return out
}

// String renders rows as "[a, b]\n" lines for diagnostics.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.FormatFloat(m.data[base+j], 'g', -1, 64))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Induced materializes a copy submatrix using explicit index sets.
// Duplicates in index sets are allowed (repeated rows/cols in the result).
//
// Errors:
//   - ErrInvalidDimensions for an empty index set.
//   - ErrOutOfRange (index outside bounds), wrapped with the offending index.
//
// Complexity: Time O(rp*cp), Space O(rp*cp).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp, cp := len(rowsIdx), len(colsIdx)
	res, err := NewDense(rp, cp)
	if err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxInduce, err)
	}

	var i, j, ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			res.data[i*cp+j] = m.data[ri*m.c+cj]
		}
	}

	return res, nil
}

// SetBlock overwrites m[idx[a], idx[b]] = src[a, b] for every a, b.
// src must be len(idx)×len(idx).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrOutOfRange.
func (m *Dense) SetBlock(idx []int, src *Dense) error {
	return m.block(ctxSetBlock, idx, src, func(dst *float64, v float64) { *dst = v })
}

// AddBlock accumulates m[idx[a], idx[b]] += alpha·src[a, b] for every a, b.
// Overlapping calls accumulate; use alpha=-1 to subtract.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrOutOfRange.
func (m *Dense) AddBlock(idx []int, src *Dense, alpha float64) error {
	return m.block(ctxAddBlock, idx, src, func(dst *float64, v float64) { *dst += alpha * v })
}

// block validates a square index-set write and applies op in a→b order.
// Indices are all checked before the first write, so a failed call leaves m untouched.
func (m *Dense) block(tag string, idx []int, src *Dense, op func(dst *float64, v float64)) error {
	if src == nil {
		return fmt.Errorf("Dense.%s: %w", tag, ErrNilMatrix)
	}
	k := len(idx)
	if r, c := src.Shape(); r != k || c != k {
		return fmt.Errorf("Dense.%s: block %dx%d for %d indices: %w", tag, r, c, k, ErrDimensionMismatch)
	}
	var a, b int
	for a = 0; a < k; a++ {
		if idx[a] < 0 || idx[a] >= m.r || idx[a] >= m.c {
			return fmt.Errorf("Dense.%s: index %d: %w", tag, idx[a], ErrOutOfRange)
		}
	}
	for a = 0; a < k; a++ {
		for b = 0; b < k; b++ {
			op(&m.data[idx[a]*m.c+idx[b]], src.data[a*k+b])
		}
	}

	return nil
}

// ZeroDiagonal sets m[i,i] = 0 for i < min(r, c).
func (m *Dense) ZeroDiagonal() {
	n := m.r
	if m.c < n {
		n = m.c
	}
	var i int
	for i = 0; i < n; i++ {
		m.data[i*m.c+i] = 0
	}
}

// IsFinite reports whether every element is neither NaN nor ±Inf.
func (m *Dense) IsFinite() bool {
	var v float64
	for _, v = range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
