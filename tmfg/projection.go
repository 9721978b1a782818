package tmfg

import (
	"fmt"

	"github.com/katalvlaran/tmfg/matrix"
)

// project dispatches to the projection of mode. It only reads the
// decomposition and the supplied matrices.
func project(mode Mode, orig, cov *matrix.Dense, cliques []Clique, separators []Separator) (*matrix.Dense, error) {
	switch mode {
	case FilteredWeights:
		return projectFiltered(orig, cliques)
	case LocalGlobal:
		return projectLocalGlobal(cov, cliques, separators)
	case Unweighted:
		return projectUnweighted(orig.Rows(), cliques)
	default:
		return nil, fmt.Errorf("%w: unknown mode %v", ErrInvalidInput, mode)
	}
}

// projectFiltered overwrites each clique block with the original weights.
// Overlapping blocks write identical values, so clique order is irrelevant.
func projectFiltered(orig *matrix.Dense, cliques []Clique) (*matrix.Dense, error) {
	out, err := matrix.NewDense(orig.Rows(), orig.Cols())
	if err != nil {
		return nil, err
	}
	var (
		idx   []int
		block *matrix.Dense
	)
	for i, c := range cliques {
		idx = c.Ints()
		if block, err = orig.Induced(idx, idx); err != nil {
			return nil, fmt.Errorf("filtered: clique %d %v: %w", i, idx, err)
		}
		if err = out.SetBlock(idx, block); err != nil {
			return nil, fmt.Errorf("filtered: clique %d %v: %w", i, idx, err)
		}
	}
	out.ZeroDiagonal()

	return out, nil
}

// projectUnweighted marks every clique pair with 1.
func projectUnweighted(n int, cliques []Clique) (*matrix.Dense, error) {
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	ones, err := matrix.NewDenseFromRows([][]float64{
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
	})
	if err != nil {
		return nil, err
	}
	for i, c := range cliques {
		if err = out.SetBlock(c.Ints(), ones); err != nil {
			return nil, fmt.Errorf("unweighted: clique %d: %w", i, err)
		}
	}
	out.ZeroDiagonal()

	return out, nil
}

// projectLocalGlobal assembles the LoGo sparse precision estimate:
//
//	J = Σ_cliques inv(Cov[c,c]) − Σ_separators inv(Cov[s,s])
//
// Blocks overlap, so contributions accumulate. The diagonal of J is zeroed
// at the end.
// TODO: expose the accumulated diagonal behind an option once callers need
// the variance terms of the precision estimate.
func projectLocalGlobal(cov *matrix.Dense, cliques []Clique, separators []Separator) (*matrix.Dense, error) {
	out, err := matrix.NewDense(cov.Rows(), cov.Cols())
	if err != nil {
		return nil, err
	}
	for i, c := range cliques {
		if err = addInverseBlock(out, cov, c.Ints(), 1); err != nil {
			return nil, fmt.Errorf("local-global: clique %d %v: %w", i, c.Ints(), err)
		}
	}
	for i, s := range separators {
		if err = addInverseBlock(out, cov, s.Ints(), -1); err != nil {
			return nil, fmt.Errorf("local-global: separator %d %v: %w", i, s.Ints(), err)
		}
	}
	out.ZeroDiagonal()

	return out, nil
}

// addInverseBlock adds sign·inv(cov[idx,idx]) into out[idx,idx].
// A non-invertible block surfaces as ErrSingularSubmatrix; the matrix error
// stays in the chain.
func addInverseBlock(out, cov *matrix.Dense, idx []int, sign float64) error {
	sub, err := cov.Induced(idx, idx)
	if err != nil {
		return err
	}
	inv, err := matrix.Inverse(sub)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSingularSubmatrix, err)
	}

	return out.AddBlock(idx, inv, sign)
}
