package tmfg

import (
	"log/slog"

	"github.com/katalvlaran/tmfg/matrix"
)

// builder runs one construction. It exclusively owns the decomposition
// state (cliques, separators, peo, steps) and the gain tracker until run
// returns.
type builder struct {
	n     int
	gains *gainTracker
	log   *slog.Logger

	cliques    []Clique
	separators []Separator
	peo        []Vertex
	steps      []Step
}

// newBuilder seeds the triangulation.
//
//   - seed is chosen on orig (the input, diagonal as given);
//   - work is the zero-diagonal copy used for every gain;
//   - the four seed faces are added in canonical order and scored.
//
// Both matrices must be N×N with N ≥ MinVertices.
func newBuilder(orig, work *matrix.Dense, log *slog.Logger) *builder {
	n := orig.Rows()
	seed := selectSeed(orig)

	b := &builder{
		n:          n,
		gains:      newGainTracker(work, seed),
		log:        log,
		cliques:    make([]Clique, 0, n-3),
		separators: make([]Separator, 0, n-4),
		peo:        make([]Vertex, 0, n),
		steps:      make([]Step, 0, n-4),
	}
	b.cliques = append(b.cliques, seed)
	b.peo = append(b.peo, seed[:]...)

	for _, t := range seedFaces(seed) {
		slot := b.gains.add(t)
		if b.gains.remaining > 0 {
			b.gains.recompute(slot)
		}
	}
	log.Debug("tmfg seed", "clique", seed.Ints(), "candidates", b.gains.remaining)

	return b
}

// run performs the N−4 insertions.
func (b *builder) run() {
	for it := 0; b.gains.remaining > 0; it++ {
		b.insert(it)
	}
}

// insert performs one greedy step:
//
//  1. take the slot with the best cached gain and its vertex v;
//  2. record peo, clique {v, t0, t1, t2} and separator {t0, t1, t2};
//  3. rewrite the slot to {t0, t1, v}, append {t0, t2, v} and {t1, t2, v};
//  4. drop v from the candidates and refresh the affected gain records.
func (b *builder) insert(it int) {
	nt := b.gains.top()
	s := b.gains.slots[nt]
	v, t := s.best, s.tri

	b.peo = append(b.peo, v)
	b.cliques = append(b.cliques, Clique{v, t[0], t[1], t[2]})
	sep := Separator(t)
	b.separators = append(b.separators, sep)
	b.steps = append(b.steps, Step{Iteration: it, Slot: nt, Vertex: v, Gain: s.gain, Separator: sep})

	b.gains.slots[nt].tri = Triangle{t[0], t[1], v}
	a := b.gains.add(Triangle{t[0], t[2], v})
	c := b.gains.add(Triangle{t[1], t[2], v})

	b.gains.take(v)
	b.gains.refreshAfterInsert(v, nt, a, c)

	b.log.Debug("tmfg insert",
		"iteration", it,
		"slot", nt,
		"vertex", int(v),
		"gain", s.gain,
		"separator", sep.Ints(),
	)
}

// result hands the decomposition over; the builder must not be used afterwards.
func (b *builder) result() *Result {
	return &Result{
		Cliques:    b.cliques,
		Separators: b.separators,
		Peo:        b.peo,
		Triangles:  b.gains.triangles(),
		Steps:      b.steps,
	}
}
