package chopper

import (
	"fmt"
	"time"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/jamestiotio/silver/ast"
	"github.com/jamestiotio/silver/cut"
	"github.com/jamestiotio/silver/depgraph"
	"github.com/jamestiotio/silver/merge"
	"github.com/jamestiotio/silver/penalty"
	"github.com/jamestiotio/silver/scc"
	"github.com/jamestiotio/silver/vertex"
)

// smallImportantThreshold is the |importantNodes| ≤ 2 cutoff at which
// the orchestrator skips the SCC condenser entirely, per spec.md §4.8
// and its §9 design note: SCC setup cost dominates for tiny graphs.
const smallImportantThreshold = 2

// Chop partitions program into an ordered collection of sub-programs
// and the Metrics describing how the partitioning was computed.
//
// Guarantees: every member opts.Isolate selects appears in exactly one
// returned sub-program, alongside every vertex it transitively
// requires per the dependency edges of depgraph.Build. An empty
// selection yields an empty, zero-metric result.
func Chop(program *ast.Program, opts ...Option) ([]*ast.Program, Metrics, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Bound != Unbounded && cfg.Bound <= 0 {
		return nil, Metrics{}, fmt.Errorf("%w: got %d", ErrInvalidBound, cfg.Bound)
	}

	idx, err := depgraph.Build(program, cfg.Isolate)
	if err != nil {
		return nil, Metrics{}, err
	}

	if len(idx.ImportantNodes) == 0 {
		return nil, Metrics{}, nil
	}

	vp := cfg.Penalty
	if vp == nil {
		vp = penalty.Default
	}

	programs, expand, lifted, metrics, err := route(idx, vp)
	if err != nil {
		return nil, Metrics{}, err
	}

	metrics.PartsBeforeMerge = len(programs)
	metrics.MaxNumberOfParts = len(programs)

	preMergeIDs := unionExpanded(programs, expand)

	bound := merge.Unbounded
	if cfg.Bound != Unbounded {
		bound = cfg.Bound
	}

	start := time.Now()
	merged := merge.Merge(programs, bound, lifted)
	metrics.TimeMerging = seconds(time.Since(start))
	metrics.PartsAfterMerge = len(merged)

	postMergeIDs := unionExpanded(merged, expand)
	if err := safetyCheck(preMergeIDs, postMergeIDs, idx.ImportantNodes); err != nil {
		return nil, Metrics{}, err
	}

	out := make([]*ast.Program, len(merged))
	for i, sub := range merged {
		present := presentSet(idx, expand(sub.Keys()))
		reconstructed, err := vertex.Inverse(program, present)
		if err != nil {
			return nil, Metrics{}, err
		}
		out[i] = reconstructed
	}

	return out, metrics, nil
}

// route runs the ≤2-important-node short circuit or the full
// SCC+acyclic-cut path, per spec.md §4.8, and returns the pre-merge
// sub-programs (keyed either directly by vertex id or by component
// index), the function expanding a list of those keys back to raw
// vertex ids, the int-keyed penalty the merger should use, and the
// metrics collected so far.
func route(idx *depgraph.Index, vp penalty.Penalty[vertex.Vertex]) ([]merge.SubProgram[int], func([]int) []int, penalty.Penalty[int], Metrics, error) {
	var metrics Metrics

	if len(idx.ImportantNodes) <= smallImportantThreshold {
		lifted := penalty.ContravariantLift(vp, idx.ToVertex)

		start := time.Now()
		reach := cut.SmallestCutCyclic(idx.N, idx.ImportantNodes, idx.Edges)
		metrics.TimeCutting = seconds(time.Since(start))

		programs := buildSubPrograms(reach, lifted)

		return programs, identity, lifted, metrics, nil
	}

	start := time.Now()
	condensed := scc.Condense(idx.N, idx.Edges)
	t := seconds(time.Since(start))
	metrics.TimeSCC = &t

	important := make([]int, len(idx.ImportantNodes))
	for i, id := range idx.ImportantNodes {
		important[i] = condensed.IDToComponent[id]
	}

	lifted := penalty.ContravariantSumLift(vp, func(compIdx int) []vertex.Vertex {
		nodes := condensed.Components[compIdx].Nodes
		out := make([]vertex.Vertex, len(nodes))
		for i, id := range nodes {
			out[i] = idx.ToVertex(id)
		}

		return out
	})

	start = time.Now()
	reach := cut.SmallestCutAcyclic(len(condensed.Components), important, condensed.ComponentEdges)
	metrics.TimeCutting = seconds(time.Since(start))

	programs := buildSubPrograms(reach, lifted)

	expand := func(keys []int) []int {
		set := treeset.NewWith(utils.IntComparator)
		for _, compIdx := range keys {
			for _, id := range condensed.Components[compIdx].Nodes {
				set.Add(id)
			}
		}

		vals := set.Values()
		out := make([]int, len(vals))
		for i, v := range vals {
			out[i] = v.(int)
		}

		return out
	}

	return programs, expand, lifted, metrics, nil
}

func identity(keys []int) []int { return keys }

func buildSubPrograms(reach [][]int, p penalty.Penalty[int]) []merge.SubProgram[int] {
	out := make([]merge.SubProgram[int], len(reach))
	for i, ids := range reach {
		out[i] = merge.NewSubProgram(ids, p)
	}

	return out
}

func unionExpanded(programs []merge.SubProgram[int], expand func([]int) []int) map[int]bool {
	out := map[int]bool{}
	for _, p := range programs {
		for _, id := range expand(p.Keys()) {
			out[id] = true
		}
	}

	return out
}

func presentSet(idx *depgraph.Index, ids []int) map[vertex.Vertex]bool {
	out := make(map[vertex.Vertex]bool, len(ids))
	for _, id := range ids {
		out[idx.ToVertex(id)] = true
	}

	return out
}

// safetyCheck implements spec.md §4.8's mandatory post-merge
// assertion: no vertex present before merging may vanish, and every
// originally selected id must survive into at least one output.
func safetyCheck(preMergeIDs, postMergeIDs map[int]bool, importantNodes []int) error {
	for id := range preMergeIDs {
		if !postMergeIDs[id] {
			return fmt.Errorf("%w: vertex id %d present before merge is missing after merge", ErrInternalConsistency, id)
		}
	}

	for _, id := range importantNodes {
		if !postMergeIDs[id] {
			return fmt.Errorf("%w: selected vertex id %d appears in no output sub-program", ErrInternalConsistency, id)
		}
	}

	return nil
}
