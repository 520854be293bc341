package merge

import (
	"cmp"
	"container/heap"
	"sort"

	"github.com/jamestiotio/silver/penalty"
)

// Unbounded marks the absence of a size bound (the ℕ⁺ ∪ {∞} bound of
// spec.md §4.6 at its infinite value): only forced merges (price ≤ 0)
// run, regardless of how many sub-programs remain.
const Unbounded = 0

// Merge runs the greedy merger of spec.md §4.6 over programs,
// repeatedly committing the cheapest live candidate merge until the
// queue is empty or neither a forced merge (price ≤ 0) nor the bound
// requires further shrinking, and returns the surviving sub-programs.
//
// The returned slice is ordered by each surviving set's internal key,
// which is deterministic for a fixed input and traversal order.
func Merge[T cmp.Ordered](programs []SubProgram[T], bound int, p penalty.Penalty[T]) []SubProgram[T] {
	sets := make(map[int]SubProgram[T], len(programs))
	for i, prog := range programs {
		sets[i] = prog
	}
	counter := len(programs)
	seq := 0

	pq := &priorityQueue[T]{}
	heap.Init(pq)

	liveKeys := func() []int {
		keys := make([]int, 0, len(sets))
		for k := range sets {
			keys = append(keys, k)
		}
		sort.Ints(keys)

		return keys
	}

	enqueue := func(l, r int) {
		price, merged := mergeAndPrice(sets[l], sets[r], p)
		heap.Push(pq, &queueItem[T]{price: price, left: l, right: r, merged: merged, seq: seq})
		seq++
	}

	keys := liveKeys()
	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			enqueue(keys[i], keys[j])
		}
	}

	unbounded := bound <= Unbounded

	for pq.Len() > 0 {
		for pq.Len() > 0 {
			top := (*pq)[0]
			_, lok := sets[top.left]
			_, rok := sets[top.right]
			if lok && rok {
				break
			}
			heap.Pop(pq)
		}
		if pq.Len() == 0 {
			break
		}

		top := (*pq)[0]
		mustShrink := !unbounded && len(sets) > bound
		if !(top.price <= 0 || mustShrink) {
			break
		}

		heap.Pop(pq)
		delete(sets, top.left)
		delete(sets, top.right)

		newKey := counter
		counter++
		sets[newKey] = top.merged

		for _, k := range liveKeys() {
			if k == newKey {
				continue
			}
			enqueue(k, newKey)
		}
	}

	finalKeys := liveKeys()
	out := make([]SubProgram[T], len(finalKeys))
	for i, k := range finalKeys {
		out[i] = sets[k]
	}

	return out
}
