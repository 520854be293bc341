package cut

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// nodeState tracks an id's progress through the iterative DFS.
type nodeState uint8

const (
	notVisited nodeState = iota
	notFinalized
	finalized
)

// acyclicFrame is one entry of the explicit DFS stack. processed
// distinguishes the descend push (false) from the finalize push
// (true) — the "push twice" idiom spec.md §4.5 calls for.
type acyclicFrame struct {
	node      int
	processed bool
}

// SmallestCutAcyclic implements the acyclic smallest-cut variant of
// spec.md §4.5. n is the number of ids, edges[i] the sorted successor
// list of id i (must be acyclic — the orchestrator only ever calls
// this on a condensed component graph), and nodes the selected ids to
// root sub-programs at.
//
// Each id's reachable set is computed exactly once and memoized, since
// acyclicity guarantees every descendant finalizes before its
// ancestor's finalize frame is popped.
func SmallestCutAcyclic(n int, nodes []int, edges [][]int) [][]int {
	state := make([]nodeState, n)
	reachable := make([][]int, n)
	finalizedBy := make([]int, n)
	notRoot := make([]bool, n)

	for _, start := range nodes {
		if state[start] == finalized {
			if finalizedBy[start] != start {
				notRoot[start] = true
			}

			continue
		}

		runAcyclicDFS(start, edges, state, reachable, finalizedBy, notRoot)
	}

	return collectRoots(nodes, notRoot, reachable)
}

func runAcyclicDFS(start int, edges [][]int, state []nodeState, reachable [][]int, finalizedBy []int, notRoot []bool) {
	stack := []acyclicFrame{{node: start}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		v := top.node

		if top.processed {
			set := treeset.NewWith(utils.IntComparator)
			set.Add(v)
			for _, w := range edges[v] {
				for _, r := range reachable[w] {
					set.Add(r)
				}
			}

			vals := set.Values()
			out := make([]int, len(vals))
			for i, val := range vals {
				out[i] = val.(int)
			}
			reachable[v] = out
			state[v] = finalized
			finalizedBy[v] = start

			continue
		}

		if state[v] == finalized {
			continue
		}

		state[v] = notFinalized
		stack = append(stack, acyclicFrame{node: v, processed: true})

		for _, w := range edges[v] {
			switch state[w] {
			case notVisited:
				stack = append(stack, acyclicFrame{node: w})
			case finalized:
				if finalizedBy[w] != start {
					notRoot[w] = true
				}
			case notFinalized:
				// Would indicate a cycle; the acyclic variant's
				// caller guarantees this never happens.
			}
		}
	}
}

// collectRoots builds the output in nodes' first-occurrence order,
// deduplicating and filtering out anything marked notRoot.
func collectRoots(nodes []int, notRoot []bool, reachable [][]int) [][]int {
	seen := make(map[int]bool, len(nodes))
	var out [][]int
	for _, id := range nodes {
		if seen[id] || notRoot[id] {
			continue
		}
		seen[id] = true
		out = append(out, reachable[id])
	}

	return out
}
