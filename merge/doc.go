// Package merge implements the greedy sub-program merger of
// spec.md §4.6: given the sub-programs the cut engine produced and a
// size bound, repeatedly merge the cheapest pair until the bound is
// satisfied, always performing merges priced at zero or below
// regardless of the bound.
//
// The priority queue is a lazy-decrease-key min-heap in the style of
// lvlath's dijkstra package: stale entries referencing an
// already-merged set are left in place and discarded lazily when
// popped, rather than removed eagerly.
package merge
