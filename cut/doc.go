// Package cut computes, for each root among a set of selected nodes,
// the sorted set of nodes it transitively depends on (spec.md §4.5).
//
// Two variants share one signature and one notion of "root" (a
// selected node unreachable from any other selected node) but differ
// in how they exploit (or fail to exploit) acyclicity:
//
//   - Acyclic finalizes and memoizes each node's reachable set exactly
//     once, via an iterative two-push DFS in the style of lvlath's
//     dfs package, adapted here to run over an explicit stack instead
//     of recursion so it never overflows the call stack on graphs
//     dense enough to need the SCC condenser first.
//   - Cyclic cannot memoize soundly once cycles are possible, so it
//     recomputes reachability from scratch for every start not already
//     reached by an earlier one, and only tracks which nodes are
//     someone else's descendant.
package cut
