// Package eikonal approximates the Eikonal equation ‖∇T(x)‖ = 1/F(x) over a
// 2-D rectangular domain and extracts minimum-travel-time paths around
// slow-traversal obstacle regions.
//
// 🚀 What is eikonal?
//
//	A small, deterministic path-planning library built from three components,
//	used in dependency order:
//		• field/     — speed-field construction from obstacle geometry + smoothing
//		• wavefront/ — single-source travel-time propagation over the grid
//		• descent/   — gradient-descent waypoint extraction with cosmetic smoothing
//
// Supporting packages:
//
//	grid/     — shared domain mapping, dense grids, 4/8-connectivity offsets
//	obstacle/ — closed rectangle|circle shape variant, identified collections,
//	            R-tree hit queries
//	planner/  — solver facade: configuration, obstacle mutations, path queries,
//	            JSON snapshots
//
// ✨ Why choose eikonal?
//
//   - Deterministic – rebuilding a field with identical inputs is bit-identical
//   - Honest errors – out-of-bounds queries and bad configuration are sentinel
//     errors; an unreachable destination is an incomplete path, not a failure
//   - Pure relaxation – exact Dijkstra over the 8-connected grid graph, no
//     PDE upwind scheme, no hidden iteration limits beyond the step budget
//
// Quick ASCII sketch of a query (S = start, G = goal, # = obstacle):
//
//	S . . . . . .
//	. . # # # . .
//	. . # # # . .
//	. . . . . . G
//
// The wavefront expands from G under the speed field; the path descends the
// resulting travel-time surface from S.
//
//	go get github.com/katalvlaran/eikonal
package eikonal
