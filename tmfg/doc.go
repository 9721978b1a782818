// Package tmfg builds Triangulated Maximal Filtered Graphs.
//
// Given an N×N similarity matrix W (typically a correlation matrix), Build
// greedily grows a chordal 3-tree over all N vertices that keeps the
// strongest pairwise links:
//
//   - Seed: the four vertices with the largest above-mean strength form the
//     first 4-clique; its four faces open the triangulation.
//   - Insert: repeatedly pick the (face, vertex) pair with the largest gain
//     W[v,t0]+W[v,t1]+W[v,t2], add the tetrahedron {v, t0, t1, t2}, record
//     the consumed face as a separator and split it into three new faces.
//   - Project: turn the clique/separator decomposition into an N×N matrix.
//
// Every run yields exactly N−3 cliques (4 vertices each), N−4 separators
// (3 vertices each), 2N−4 faces and 3N−6 edges.
//
// Projection modes:
//
//   - FilteredWeights (default): W restricted to TMFG edges, zero diagonal.
//   - LocalGlobal: the LoGo sparse precision estimate
//     Σ_c inv(Cov[c,c]) − Σ_s inv(Cov[s,s]); requires WithCovariance.
//   - Unweighted: 1 for every TMFG edge, 0 elsewhere.
//
// Complexity:
//
//   - Time:   O(N²) for validation and seeding; each insertion refreshes only
//     the faces whose cached best vertex was consumed plus the three faces
//     it touched, each refresh costing O(N).
//   - Memory: O(N²) for the working and output matrices, O(N) for faces and
//     gain records.
//
// Options:
//
//   - WithMode(mode)              projection mode.
//   - WithCovariance(cov)         covariance for LocalGlobal.
//   - WithSymmetryTolerance(eps)  asymmetry allowed in W; negative disables the check.
//   - WithLogger(logger)          slog logger for build and insertion records.
//
// Errors:
//
//   - ErrInvalidInput        bad shape, N < 4, NaN/Inf, asymmetry, missing or
//     mismatched covariance, unknown mode.
//   - ErrSingularSubmatrix   a clique or separator covariance block cannot be inverted.
package tmfg
