package merge

import "cmp"

// queueItem is one candidate merge: the two live set keys it would
// consume, the price of performing it, and the already-computed
// merged list (so a winning pop never recomputes it).
//
// seq breaks ties between equal-price entries by enqueue order, which
// makes the merger's choice among equal-price candidates deterministic
// for a fixed input (see the merge.Merge entry of SPEC_FULL.md §6).
type queueItem[T cmp.Ordered] struct {
	price       int
	left, right int
	merged      SubProgram[T]
	seq         int
}

// priorityQueue is a min-heap over queueItem, smallest price first,
// using the same lazy-decrease-key idiom as lvlath's dijkstra package:
// stale entries (referencing a key no longer in the live set) are left
// in place and discarded when popped rather than removed eagerly.
type priorityQueue[T cmp.Ordered] []*queueItem[T]

func (pq priorityQueue[T]) Len() int { return len(pq) }

func (pq priorityQueue[T]) Less(i, j int) bool {
	if pq[i].price != pq[j].price {
		return pq[i].price < pq[j].price
	}

	return pq[i].seq < pq[j].seq
}

func (pq priorityQueue[T]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue[T]) Push(x any) { *pq = append(*pq, x.(*queueItem[T])) }

func (pq *priorityQueue[T]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
