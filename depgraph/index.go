package depgraph

import (
	"fmt"

	"github.com/jamestiotio/silver/vertex"
)

// Index is the flat dependency graph a depgraph.Build call produces.
// It satisfies the invariants of spec.md §4.3:
//
//   - every vertex ever referenced (as source or target of an edge)
//     has exactly one id, densely numbered 0..N-1;
//   - Edges[i] is the sorted set of successor ids of node i;
//   - ToVertex is the inverse of the id assignment;
//   - ImportantNodes is the (unsorted, possibly duplicated) id vector
//     of the selected members' definition vertices; duplicates never
//     affect downstream results.
//
// An Index is immutable once returned by Build and carries no lock:
// per spec.md §5 it is owned by exactly one call frame.
type Index struct {
	N              int
	Edges          [][]int
	vertexOf       []vertex.Vertex
	idOf           map[vertex.Vertex]int
	ImportantNodes []int
}

// ToVertex returns the vertex id denotes. Panics if id is out of
// range: callers only ever pass ids this Index itself produced.
func (idx *Index) ToVertex(id int) vertex.Vertex {
	return idx.vertexOf[id]
}

// IDOf returns the id assigned to v and whether v was ever referenced.
func (idx *Index) IDOf(v vertex.Vertex) (int, bool) {
	id, ok := idx.idOf[v]

	return id, ok
}

// Describe renders a one-line diagnostic summary (vertex/edge/important
// node counts), grounded on lvlath's core.Graph.Stats() pattern.
// Diagnostic only: never consulted by scc/cut/merge.
func (idx *Index) Describe() string {
	edges := 0
	for _, succ := range idx.Edges {
		edges += len(succ)
	}

	return fmt.Sprintf("depgraph.Index{vertices=%d, edges=%d, importantNodes=%d}",
		idx.N, edges, len(idx.ImportantNodes))
}
