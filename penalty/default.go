package penalty

import "github.com/jamestiotio/silver/vertex"

// threshold is the merge-penalty scale divisor of spec.md §4.7.
const threshold = 50

// weights holds the default per-kind price table of spec.md §4.7.
var weights = map[vertex.Kind]int{
	vertex.Method:         0,
	vertex.MethodSpec:     0,
	vertex.Function:       20,
	vertex.PredicateBody:  10,
	vertex.PredicateSig:   2,
	vertex.Field:          1,
	vertex.DomainType:     1,
	vertex.DomainFunction: 1,
	vertex.DomainAxiom:    5,
	vertex.Always:         0,
}

// vertexPenalty is the shared implementation behind Default and
// Strict; they differ only in how mergePenalty floors its result.
type vertexPenalty struct {
	strict bool
}

// Default is the spec.md §4.7 default scoring: Price from the kind
// weight table, mergePenalty scaled by shared weight with no floor
// beyond zero.
var Default Penalty[vertex.Vertex] = vertexPenalty{}

// Strict is Default with zero-cost merges forbidden: every merge
// costs at least 1, so the merger never performs one as a pure
// bookkeeping no-op.
var Strict Penalty[vertex.Vertex] = vertexPenalty{strict: true}

func (p vertexPenalty) Price(v vertex.Vertex) int {
	return weights[v.Kind]
}

// MergePenalty implements spec.md §4.7's
// (l+r) * floor((threshold+s)/threshold) literally.
//
// An earlier revision of this ledger entry used ceiling division here,
// reasoning that it let shared weight start "scaling the penalty down"
// from its first unit instead of only past a full threshold boundary.
// That reasoning does not hold up: both floor and ceiling produce a
// multiplier that is >= 1 and non-decreasing in s, so neither one ever
// scales the combined exclusive cost down — more shared weight only
// ever holds the multiplier steady or raises it. There is no reading
// of this formula under which growing s favors the merge; the
// favorable case spec.md §4.6 actually describes (a dominance relation
// driving price to <= 0) comes from leftExclusive and rightExclusive
// both going to zero, not from shared weight scaling anything down.
// With no principled reason to depart from the literal formula, this
// implements the spec's floor.
func (p vertexPenalty) MergePenalty(leftExclusive, rightExclusive, shared int) int {
	scale := (threshold + shared) / threshold
	price := (leftExclusive + rightExclusive) * scale

	if p.strict && price < 1 {
		return 1
	}

	return price
}
