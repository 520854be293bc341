package cut

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// SmallestCutCyclic implements the cyclic smallest-cut variant of
// spec.md §4.5, safe to call on a graph that may contain cycles. The
// orchestrator reserves it for the ≤2-important-node short circuit,
// where skipping the SCC condenser outweighs the cost of recomputing
// reachability from scratch per root.
//
// Unlike SmallestCutAcyclic it never memoizes a reachable set across
// different starts — doing so would be unsound once a cycle can make
// two selected nodes mutually reachable.
func SmallestCutCyclic(n int, nodes []int, edges [][]int) [][]int {
	visited := make([]bool, n) // global: reached by some already-completed start
	notRoot := make([]bool, n)
	reachableOf := make(map[int][]int, len(nodes))

	seen := make(map[int]bool, len(nodes))
	var order []int

	for _, start := range nodes {
		if seen[start] {
			continue
		}
		seen[start] = true
		order = append(order, start)

		// Already reached from an earlier start: the first-visited
		// start stays the root, so this one is dropped without a DFS of
		// its own (which could otherwise re-enter that earlier start
		// through a cycle and mark it notRoot as well).
		if visited[start] {
			notRoot[start] = true

			continue
		}

		reachableOf[start] = cyclicDFS(start, edges, visited, notRoot)
	}

	var out [][]int
	for _, start := range order {
		if notRoot[start] {
			continue
		}
		out = append(out, reachableOf[start])
	}

	return out
}

func cyclicDFS(start int, edges [][]int, visited, notRoot []bool) []int {
	local := make([]bool, len(edges))
	set := treeset.NewWith(utils.IntComparator)

	stack := []int{start}
	local[start] = true

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[v] {
			notRoot[v] = true
		}
		visited[v] = true
		set.Add(v)

		for _, w := range edges[v] {
			if !local[w] {
				local[w] = true
				stack = append(stack, w)
			}
		}
	}

	vals := set.Values()
	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = v.(int)
	}

	return out
}
