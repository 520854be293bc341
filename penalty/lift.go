package penalty

// ContravariantLift reprices S by looking up the price of f(s),
// passing mergePenalty through unchanged (spec.md §4.7).
func ContravariantLift[S, T any](p Penalty[T], f func(S) T) Penalty[S] {
	return liftedSingle[S, T]{inner: p, f: f}
}

type liftedSingle[S, T any] struct {
	inner Penalty[T]
	f     func(S) T
}

func (l liftedSingle[S, T]) Price(s S) int {
	return l.inner.Price(l.f(s))
}

func (l liftedSingle[S, T]) MergePenalty(leftExclusive, rightExclusive, shared int) int {
	return l.inner.MergePenalty(leftExclusive, rightExclusive, shared)
}

// ContravariantSumLift reprices S as the sum of the prices of f(s),
// letting the merger operate on aggregates (e.g. scc.Component) while
// scoring is still done per underlying vertex.
func ContravariantSumLift[S, T any](p Penalty[T], f func(S) []T) Penalty[S] {
	return liftedSum[S, T]{inner: p, f: f}
}

type liftedSum[S, T any] struct {
	inner Penalty[T]
	f     func(S) []T
}

func (l liftedSum[S, T]) Price(s S) int {
	sum := 0
	for _, t := range l.f(s) {
		sum += l.inner.Price(t)
	}

	return sum
}

func (l liftedSum[S, T]) MergePenalty(leftExclusive, rightExclusive, shared int) int {
	return l.inner.MergePenalty(leftExclusive, rightExclusive, shared)
}
