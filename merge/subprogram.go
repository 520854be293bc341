package merge

import (
	"cmp"
	"sort"

	"github.com/jamestiotio/silver/penalty"
)

// Entry is one weighted element of a SubProgram.
type Entry[T cmp.Ordered] struct {
	Key    T
	Weight int
}

// SubProgram is a list of weighted elements, ascending by Key.
type SubProgram[T cmp.Ordered] []Entry[T]

// NewSubProgram builds a SubProgram from keys, pricing each with p and
// sorting ascending by key.
func NewSubProgram[T cmp.Ordered](keys []T, p penalty.Penalty[T]) SubProgram[T] {
	out := make(SubProgram[T], len(keys))
	for i, k := range keys {
		out[i] = Entry[T]{Key: k, Weight: p.Price(k)}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })

	return out
}

// Keys returns the sorted keys of s, discarding weights.
func (s SubProgram[T]) Keys() []T {
	out := make([]T, len(s))
	for i, e := range s {
		out[i] = e.Key
	}

	return out
}

// existenceWeight is the bucket contribution of one entry toward
// leftExclusive/rightExclusive/shared: its priced Weight, floored at 1.
//
// Without the floor, a key priced at 0 by the default table (Method,
// MethodSpec, Always) would contribute nothing to its bucket, so two
// programs whose only non-shared content happens to be zero-weight
// vertices (e.g. two unrelated bodyless-of-content methods, each
// dragging in nothing but Always) would both sum to leftExclusive =
// rightExclusive = 0 and price at 0 — the forced-merge rule would then
// read that as a dominance relation ("one program is essentially a
// subset of the other") when the two programs are in fact disjoint and
// unrelated. The floor makes exclusivity itself — "does this program
// have anything the other one lacks" — a zero/nonzero existence fact
// independent of the per-kind scoring table, so a forced merge only
// ever fires when a side truly contributes no exclusive vertex at all.
func existenceWeight(w int) int {
	if w > 0 {
		return w
	}

	return 1
}

// mergeAndPrice merges two ascending SubPrograms in one linear pass
// and scores the merge via p.MergePenalty, per spec.md §4.6. Shared
// keys take the left side's weight in the merged output; the shared
// sum used for pricing counts each shared key once.
func mergeAndPrice[T cmp.Ordered](l, r SubProgram[T], p penalty.Penalty[T]) (int, SubProgram[T]) {
	merged := make(SubProgram[T], 0, len(l)+len(r))
	var leftExclusive, rightExclusive, shared int

	i, j := 0, 0
	for i < len(l) && j < len(r) {
		switch {
		case l[i].Key < r[j].Key:
			leftExclusive += existenceWeight(l[i].Weight)
			merged = append(merged, l[i])
			i++
		case l[i].Key > r[j].Key:
			rightExclusive += existenceWeight(r[j].Weight)
			merged = append(merged, r[j])
			j++
		default:
			shared += existenceWeight(l[i].Weight)
			merged = append(merged, l[i])
			i++
			j++
		}
	}
	for ; i < len(l); i++ {
		leftExclusive += existenceWeight(l[i].Weight)
		merged = append(merged, l[i])
	}
	for ; j < len(r); j++ {
		rightExclusive += existenceWeight(r[j].Weight)
		merged = append(merged, r[j])
	}

	return p.MergePenalty(leftExclusive, rightExclusive, shared), merged
}
