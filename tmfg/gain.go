package tmfg

import (
	"math"

	"github.com/katalvlaran/tmfg/matrix"
)

// faceSlot is one entry of the append-only face arena: the face itself and
// the cached best candidate for it. Slot indices never move.
type faceSlot struct {
	tri  Triangle
	best Vertex  // NoVertex until the first recompute
	gain float64 // gain of best through tri
}

// gainTracker owns the candidate set and the face arena.
//
// Invariants, while candidates remain and outside refreshAfterInsert:
//   - every slot's best is a candidate;
//   - every slot's gain is the max over candidates of W[v,t0]+W[v,t1]+W[v,t2].
type gainTracker struct {
	w         *matrix.Dense // zero-diagonal working copy
	candidate []bool        // candidate[v] ⇔ v not yet in the triangulation
	remaining int           // number of true entries in candidate
	slots     []faceSlot
}

// newGainTracker marks every vertex outside seed as a candidate and
// reserves room for the final 2N−4 faces.
func newGainTracker(w *matrix.Dense, seed Clique) *gainTracker {
	n := w.Rows()
	g := &gainTracker{
		w:         w,
		candidate: make([]bool, n),
		remaining: n - len(seed),
		slots:     make([]faceSlot, 0, 2*n-4),
	}
	for i := range g.candidate {
		g.candidate[i] = true
	}
	for _, v := range seed {
		g.candidate[v] = false
	}

	return g
}

// bestFor scans the candidates for the largest gain through t.
// Ties resolve to the lowest vertex index. Must not be called with an empty
// candidate set.
func (g *gainTracker) bestFor(t Triangle) (Vertex, float64) {
	r0, r1, r2 := g.w.RowView(int(t[0])), g.w.RowView(int(t[1])), g.w.RowView(int(t[2]))

	best, bestGain := NoVertex, math.Inf(-1)
	var gain float64
	for v, ok := range g.candidate {
		if !ok {
			continue
		}
		gain = r0[v] + r1[v] + r2[v]
		if gain > bestGain {
			best, bestGain = Vertex(v), gain
		}
	}

	return best, bestGain
}

// add appends a face and returns its slot index. The gain record is empty
// until recompute is called.
func (g *gainTracker) add(t Triangle) int {
	g.slots = append(g.slots, faceSlot{tri: t, best: NoVertex})

	return len(g.slots) - 1
}

// recompute refreshes the gain record of slot i from scratch.
func (g *gainTracker) recompute(i int) {
	g.slots[i].best, g.slots[i].gain = g.bestFor(g.slots[i].tri)
}

// top returns the slot with the largest cached gain; ties go to the lowest slot.
func (g *gainTracker) top() int {
	bi := 0
	for i := 1; i < len(g.slots); i++ {
		if g.slots[i].gain > g.slots[bi].gain {
			bi = i
		}
	}

	return bi
}

// take removes v from the candidate set.
func (g *gainTracker) take(v Vertex) {
	if g.candidate[v] {
		g.candidate[v] = false
		g.remaining--
	}
}

// refreshAfterInsert restores the tracker invariants after v was inserted
// into slot nt, which now holds the rewritten face, and the two faces
// appended at slots a and b. It is the only place that decides staleness:
//
//  1. every slot still pointing at v is recomputed;
//  2. the gain of nt is zeroed;
//  3. nt, a and b are recomputed.
//
// Steps 1 and 3 run only while candidates remain.
func (g *gainTracker) refreshAfterInsert(v Vertex, nt, a, b int) {
	if g.remaining > 0 {
		for i := range g.slots {
			if g.slots[i].best == v {
				g.recompute(i)
			}
		}
	}

	g.slots[nt].gain = 0

	if g.remaining > 0 {
		g.recompute(nt)
		g.recompute(a)
		g.recompute(b)
	}
}

// triangles copies the face arena in slot order.
func (g *gainTracker) triangles() []Triangle {
	out := make([]Triangle, len(g.slots))
	for i := range g.slots {
		out[i] = g.slots[i].tri
	}

	return out
}
