package scc

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Component is one strongly connected component. Proxy is the first
// node id pushed into the component — equivalently, the DFS root that
// triggered the component's pop, per spec.md §4.4 — and serves as the
// component's identity and ordering key wherever one is needed.
type Component struct {
	Proxy int
	Nodes []int
}

// Condensed is the result of condensing a graph: its components, a
// node->component lookup, and the acyclic component graph.
//
// ComponentEdges is indexed by slice position in Components (0..len-1)
// rather than by Proxy directly: spec.md §4.4 describes an array
// "indexed by proxy", which would require an array sized by the
// largest node id with most slots unused; this is the same sparse
// structure made dense, addressed through IDToComponent/Components
// instead of through the proxy id itself.
type Condensed struct {
	Components     []Component
	IDToComponent  []int // node id -> index into Components
	ComponentEdges [][]int
}

// ComponentOf returns the component containing node id.
func (c *Condensed) ComponentOf(id int) Component {
	return c.Components[c.IDToComponent[id]]
}

// frame is one level of the explicit DFS stack: the node being visited
// and the index into its successor list to resume iteration from.
type frame struct {
	node     int
	nextEdge int
}

// Condense runs Tarjan's algorithm over the graph (n nodes, edges[i]
// the sorted successor list of node i) and returns its condensation.
// Self-loops and duplicate component-to-component edges are removed;
// a component never has an edge to itself (spec.md §4.4).
func Condense(n int, edges [][]int) *Condensed {
	index := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	visited := make([]bool, n)
	var tstack []int // Tarjan's own node stack
	counter := 0
	var components []Component
	compOf := make([]int, n)

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}

		stack := []frame{{node: start}}
		visited[start] = true
		index[start] = counter
		lowlink[start] = counter
		counter++
		tstack = append(tstack, start)
		onStack[start] = true

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			v := top.node

			if top.nextEdge < len(edges[v]) {
				w := edges[v][top.nextEdge]
				top.nextEdge++

				switch {
				case !visited[w]:
					visited[w] = true
					index[w] = counter
					lowlink[w] = counter
					counter++
					tstack = append(tstack, w)
					onStack[w] = true
					stack = append(stack, frame{node: w})
				case onStack[w]:
					if index[w] < lowlink[v] {
						lowlink[v] = index[w]
					}
				}

				continue
			}

			// All of v's successors are explored; pop v's frame and
			// propagate its lowlink to its DFS parent, if any.
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				parent := &stack[len(stack)-1]
				if lowlink[v] < lowlink[parent.node] {
					lowlink[parent.node] = lowlink[v]
				}
			}

			if lowlink[v] == index[v] {
				var nodes []int
				for {
					w := tstack[len(tstack)-1]
					tstack = tstack[:len(tstack)-1]
					onStack[w] = false
					nodes = append(nodes, w)
					if w == v {
						break
					}
				}

				compIdx := len(components)
				components = append(components, Component{Proxy: v, Nodes: nodes})
				for _, w := range nodes {
					compOf[w] = compIdx
				}
			}
		}
	}

	return &Condensed{
		Components:     components,
		IDToComponent:  compOf,
		ComponentEdges: componentEdges(n, edges, compOf, len(components)),
	}
}

// componentEdges projects the raw edge set through compOf, dropping
// self-loops and deduplicating via a sorted set per component.
func componentEdges(n int, edges [][]int, compOf []int, numComponents int) [][]int {
	sets := make([]*treeset.Set, numComponents)
	for i := range sets {
		sets[i] = treeset.NewWith(utils.IntComparator)
	}

	for u := 0; u < n; u++ {
		cu := compOf[u]
		for _, v := range edges[u] {
			cv := compOf[v]
			if cu != cv {
				sets[cu].Add(cv)
			}
		}
	}

	out := make([][]int, numComponents)
	for i, s := range sets {
		vals := s.Values()
		succ := make([]int, len(vals))
		for j, v := range vals {
			succ[j] = v.(int)
		}
		out[i] = succ
	}

	return out
}
