package tmfg

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/tmfg/matrix"
)

// MinVertices is the smallest N for which a TMFG exists (one 4-clique).
const MinVertices = 4

var (
	// ErrInvalidInput is returned before any construction work when the
	// similarity or covariance matrix cannot be used. The wrapped chain also
	// carries the matrix sentinel that fired (e.g. matrix.ErrNonSquare).
	ErrInvalidInput = errors.New("tmfg: invalid input")

	// ErrSingularSubmatrix is returned by the LocalGlobal projection when a
	// clique or separator block of the covariance is not invertible.
	ErrSingularSubmatrix = errors.New("tmfg: singular submatrix")
)

// Vertex indexes a row/column of the similarity matrix, in [0, N).
type Vertex int

// NoVertex marks a gain record with no candidate.
const NoVertex Vertex = -1

// Triangle is a 3-vertex face of the triangulation.
type Triangle [3]Vertex

// Clique is a 4-vertex maximal clique. The seed keeps its selection order;
// every later clique is {inserted vertex, t0, t1, t2}.
type Clique [4]Vertex

// Separator is the face consumed when a clique was attached.
type Separator [3]Vertex

// Edge is an undirected TMFG edge with Edge[0] < Edge[1].
type Edge [2]Vertex

// Ints returns the clique as plain matrix indices.
func (c Clique) Ints() []int { return toInts(c[:]) }

// Ints returns the separator as plain matrix indices.
func (s Separator) Ints() []int { return toInts(s[:]) }

// Ints returns the triangle as plain matrix indices.
func (t Triangle) Ints() []int { return toInts(t[:]) }

func toInts(vs []Vertex) []int {
	out := make([]int, len(vs))
	for i, v := range vs {
		out[i] = int(v)
	}

	return out
}

// Mode selects how the decomposition is projected onto an N×N matrix.
type Mode int

const (
	// FilteredWeights copies the original similarity onto every TMFG edge.
	FilteredWeights Mode = iota
	// LocalGlobal assembles the LoGo sparse inverse covariance.
	LocalGlobal
	// Unweighted writes 1 on every TMFG edge.
	Unweighted
)

var modeNames = [...]string{
	FilteredWeights: "filtered",
	LocalGlobal:     "local-global",
	Unweighted:      "unweighted",
}

// String returns the CLI/config name of the mode.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}

	return modeNames[m]
}

// valid reports whether m is a known mode.
func (m Mode) valid() bool { return m >= 0 && int(m) < len(modeNames) }

// ParseMode maps a name ("filtered", "local-global", "unweighted"; also
// "logo") to a Mode. Matching ignores case.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "logo" {
		return LocalGlobal, nil
	}
	for m, n := range modeNames {
		if n == name {
			return Mode(m), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, s)
}

// Step records one greedy insertion.
type Step struct {
	// Iteration is the 0-based insertion counter (0..N-5).
	Iteration int
	// Slot is the face slot that won the global argmax.
	Slot int
	// Vertex is the inserted vertex.
	Vertex Vertex
	// Gain is the cached gain that won.
	Gain float64
	// Separator is the consumed face.
	Separator Separator
}

// Result is the outcome of Build.
type Result struct {
	// Mode used for Matrix.
	Mode Mode

	// Cliques holds N−3 cliques, seed first.
	Cliques []Clique

	// Separators holds N−4 separators; Separators[i] belongs to Cliques[i+1].
	Separators []Separator

	// Peo is the insertion order, seed clique first; each vertex exactly once.
	Peo []Vertex

	// Triangles is the final face list (2N−4 faces) in slot order.
	Triangles []Triangle

	// Steps has one record per insertion.
	Steps []Step

	// Matrix is the N×N projection, zero diagonal.
	Matrix *matrix.Dense
}

// Edges returns the 3N−6 distinct TMFG edges, sorted lexicographically.
func (r *Result) Edges() []Edge {
	seen := make(map[Edge]struct{}, 6*len(r.Cliques))
	out := make([]Edge, 0, 3*len(r.Cliques)+3)
	var (
		c    Clique
		a, b int
		e    Edge
	)
	for _, c = range r.Cliques {
		for a = 0; a < len(c); a++ {
			for b = a + 1; b < len(c); b++ {
				e = Edge{min(c[a], c[b]), max(c[a], c[b])}
				if _, ok := seen[e]; ok {
					continue
				}
				seen[e] = struct{}{}
				out = append(out, e)
			}
		}
	}
	slices.SortFunc(out, func(x, y Edge) int {
		if x[0] != y[0] {
			return int(x[0] - y[0])
		}

		return int(x[1] - y[1])
	})

	return out
}
