// Package solve reconstructs a shuffled PieceSet into its original grid
// arrangement.
//
// Three solver variants sit behind one interface: gradient and color run
// the full pipeline (edge feature extraction, compatibility matrix, greedy
// row-major assembly with bounded backtracking), while random is an
// unscored baseline that places pieces by a seeded random permutation.
//
// # Search
//
// The assembler fills grid cells in row-major order, so every cell after
// the first has at least one already placed neighbor to score against. At
// each cell the remaining pieces are ranked by the summed seam cost to the
// left and top neighbors, and the cheapest is placed. When an acceptance
// threshold is configured and the cheapest candidate exceeds it, the
// search backtracks to the most recent cell with an untried candidate
// still under the threshold, spending one event from a fixed backtrack
// budget. Backtracking is driven by an explicit stack of choice points, so
// grid size never grows the call stack.
//
// Before every backtrack the current partial placement is completed
// greedily and remembered; when the budget or deadline runs out the
// cheapest completion seen so far is returned with the Degraded flag set
// instead of an error. A budget of zero is plain greedy assembly.
package solve
