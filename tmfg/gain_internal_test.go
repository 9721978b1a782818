package tmfg

import (
	"io"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/tmfg/matrix"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func seededSymmetric(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := rng.Float64()
			_ = m.Set(i, j, v)
			_ = m.Set(j, i, v)
		}
	}

	return m
}

// bruteBest recomputes a face's best candidate without the tracker.
func bruteBest(g *gainTracker, tri Triangle) (Vertex, float64) {
	best, gain := NoVertex, math.Inf(-1)
	for v := 0; v < g.w.Rows(); v++ {
		if !g.candidate[v] {
			continue
		}
		var s float64
		for _, u := range tri {
			x, _ := g.w.At(int(u), v)
			s += x
		}
		if s > gain {
			best, gain = Vertex(v), s
		}
	}

	return best, gain
}

// requireFresh asserts that every cached record equals a full rescan.
func requireFresh(t *testing.T, g *gainTracker) {
	t.Helper()
	for i, s := range g.slots {
		best, gain := bruteBest(g, s.tri)
		require.Equal(t, best, s.best, "slot %d best", i)
		require.InDelta(t, gain, s.gain, 1e-12, "slot %d gain", i)
		require.True(t, g.candidate[s.best], "slot %d points at inserted vertex %d", i, s.best)
	}
}

// TestGainTracker_SelectiveRefreshMatchesRescan checks that refreshing only
// the stale and touched slots leaves every record as a full rescan would.
func TestGainTracker_SelectiveRefreshMatchesRescan(t *testing.T) {
	const n = 30
	w := seededSymmetric(t, n, 99)
	work := w.Clone().(*matrix.Dense)
	work.ZeroDiagonal()

	b := newBuilder(w, work, discard)
	requireFresh(t, b.gains)
	for it := 0; b.gains.remaining > 1; it++ {
		b.insert(it)
		require.Len(t, b.gains.slots, 4+2*(it+1))
		require.Equal(t, n-4-(it+1), b.gains.remaining)
		requireFresh(t, b.gains)
	}
	b.insert(n - 5)
	require.Zero(t, b.gains.remaining)
	require.Len(t, b.gains.slots, 2*n-4)
}

func TestGainTracker_TiesPreferLowestIndex(t *testing.T) {
	w, err := matrix.NewDenseFromRows([][]float64{
		{0, 1, 1, 1, 2, 2},
		{1, 0, 1, 1, 2, 2},
		{1, 1, 0, 1, 2, 2},
		{1, 1, 1, 0, 2, 2},
		{2, 2, 2, 2, 0, 0},
		{2, 2, 2, 2, 0, 0},
	})
	require.NoError(t, err)
	g := newGainTracker(w, Clique{0, 1, 2, 3})
	v, gain := g.bestFor(Triangle{0, 1, 2})
	require.Equal(t, Vertex(4), v)
	require.Equal(t, 6.0, gain)

	// Equal gains on every slot: the first slot wins.
	for _, tri := range seedFaces(Clique{0, 1, 2, 3}) {
		g.recompute(g.add(tri))
	}
	require.Equal(t, 0, g.top())
}

func TestGainTracker_TakeIsIdempotent(t *testing.T) {
	w := seededSymmetric(t, 6, 1)
	g := newGainTracker(w, Clique{0, 1, 2, 3})
	require.Equal(t, 2, g.remaining)
	g.take(4)
	g.take(4)
	require.Equal(t, 1, g.remaining)
	v, _ := g.bestFor(Triangle{0, 1, 2})
	require.Equal(t, Vertex(5), v)
}

func TestSelectSeed(t *testing.T) {
	t.Run("strongest above mean", func(t *testing.T) {
		w, err := matrix.NewDenseFromRows([][]float64{
			{0, 9, 9, 9, 0, 0},
			{9, 0, 9, 9, 0, 0},
			{9, 9, 0, 0, 0, 8},
			{9, 9, 0, 0, 0, 8},
			{0, 0, 0, 0, 0, 1},
			{0, 0, 8, 8, 1, 0},
		})
		require.NoError(t, err)
		// Row scores: 27, 27, 26, 26, 0, 16.
		require.Equal(t, Clique{0, 1, 2, 3}, selectSeed(w))
	})

	t.Run("ties keep ascending order", func(t *testing.T) {
		w, err := matrix.NewDenseFromRows([][]float64{
			{0, 1, 1, 1, 1},
			{1, 0, 1, 1, 1},
			{1, 1, 0, 1, 1},
			{1, 1, 1, 0, 1},
			{1, 1, 1, 1, 0},
		})
		require.NoError(t, err)
		require.Equal(t, Clique{0, 1, 2, 3}, selectSeed(w))
	})

	t.Run("descending score", func(t *testing.T) {
		w, err := matrix.NewDenseFromRows([][]float64{
			{0, 1, 1, 1, 1},
			{1, 0, 2, 2, 2},
			{1, 2, 0, 3, 3},
			{1, 2, 3, 0, 4},
			{1, 2, 3, 4, 0},
		})
		require.NoError(t, err)
		// mean = 40/25 = 1.6; scores: 0, 6, 8, 9, 9.
		require.Equal(t, Clique{3, 4, 2, 1}, selectSeed(w))
	})
}

func TestSeedFaces_CanonicalOrder(t *testing.T) {
	require.Equal(t, [4]Triangle{
		{7, 3, 5},
		{7, 3, 1},
		{7, 5, 1},
		{3, 5, 1},
	}, seedFaces(Clique{7, 3, 5, 1}))
}
