// Package tmfg is a small toolkit for filtering dense similarity matrices
// into a Triangulated Maximal Filtered Graph (TMFG): a planar, chordal
// graph of N−3 four-cliques glued along N−4 triangular separators.
//
// What's inside?
//
//	matrix/    row-major Dense matrix, validators, index-set blocks,
//	           inversion (gonum LU) and covariance/correlation (gonum/stat)
//	tmfg/      seed selection, greedy face insertion with cached gains,
//	           filtered / local-global / unweighted projections
//	cmd/tmfg/  command line front end: CSV in, JSON out, YAML config
//
// Quick example:
//
//	res, err := tmfg.Build(w, tmfg.WithMode(tmfg.LocalGlobal), tmfg.WithCovariance(cov))
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.Cliques, res.Separators)
//
// The construction is deterministic and single-threaded; an N×N input
// costs O(N²) time per insertion in the worst case and O(N²) memory.
//
//	go install github.com/katalvlaran/tmfg/cmd/tmfg@latest
package tmfg
