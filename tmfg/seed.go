package tmfg

import (
	"slices"

	"github.com/katalvlaran/tmfg/matrix"
)

// selectSeed returns the initial 4-clique.
//
// Every vertex is scored by its strength over the mean: the sum of W[i,j]
// across the entries of row i strictly above the mean of all N² entries.
// The four highest scores win; equal scores keep ascending vertex order.
// This is a linear-time proxy for the maximum-weight 4-clique, not an
// exhaustive search.
//
// w must be square with N ≥ MinVertices.
// Complexity: O(N²) time, O(N) space.
func selectSeed(w *matrix.Dense) Clique {
	n := w.Rows()

	var (
		i, j int
		sum  float64
		row  []float64
	)
	for i = 0; i < n; i++ {
		for _, v := range w.RowView(i) {
			sum += v
		}
	}
	mean := sum / float64(n*n)

	score := make([]float64, n)
	order := make([]Vertex, n)
	for i = 0; i < n; i++ {
		row = w.RowView(i)
		for j = 0; j < n; j++ {
			if row[j] > mean {
				score[i] += row[j]
			}
		}
		order[i] = Vertex(i)
	}

	// Stable: ties stay in ascending index order.
	slices.SortStableFunc(order, func(a, b Vertex) int {
		switch {
		case score[a] > score[b]:
			return -1
		case score[a] < score[b]:
			return 1
		default:
			return 0
		}
	})

	return Clique{order[0], order[1], order[2], order[3]}
}

// seedFaces lists the four faces of the seed clique in canonical order:
// the subsets dropping position 3, then 2, then 1, then 0.
func seedFaces(c Clique) [4]Triangle {
	return [4]Triangle{
		{c[0], c[1], c[2]},
		{c[0], c[1], c[3]},
		{c[0], c[2], c[3]},
		{c[1], c[2], c[3]},
	}
}
