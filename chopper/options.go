package chopper

import (
	"math"

	"github.com/jamestiotio/silver/ast"
	"github.com/jamestiotio/silver/depgraph"
	"github.com/jamestiotio/silver/penalty"
	"github.com/jamestiotio/silver/vertex"
)

// Option customizes a Chop call.
type Option func(*Options)

// Options holds the resolved configuration for a Chop call. The zero
// value is not meaningful; use DefaultOptions.
type Options struct {
	Isolate depgraph.Isolate
	// Bound is the maximum number of sub-programs to return.
	// Unbounded marks "no bound was set": the merger only performs
	// forced merges. Any other value ≤ 0 set via WithBound is a user
	// error, rejected by Chop with ErrInvalidBound — §6 distinguishes
	// "absent" (unbounded) from an explicit non-positive bound, so 0
	// cannot double as both the default and a valid sentinel.
	Bound   int
	Penalty penalty.Penalty[vertex.Vertex]
}

// Unbounded marks the absence of a size bound in Options.Bound: the
// merger only performs forced (price ≤ 0) merges, regardless of how
// many sub-programs remain. It is math.MinInt, not -1 or 0, precisely
// so every ordinary non-positive value a caller might mistakenly pass
// to WithBound (including -1 and 0) still reaches the §6 "bound ≤ 0 is
// an argument error" check instead of silently becoming unbounded.
const Unbounded = math.MinInt

// DefaultOptions returns the baseline configuration: every Method,
// Function, and Predicate selected, no bound, default scoring.
func DefaultOptions() Options {
	return Options{
		Isolate: depgraph.DefaultIsolate,
		Bound:   Unbounded,
		Penalty: penalty.Default,
	}
}

// WithBound caps the number of returned sub-programs. A bound ≤ 0
// passed to Chop is rejected with ErrInvalidBound; omit this option
// entirely to request the unbounded minimal partitioning.
func WithBound(b int) Option {
	return func(o *Options) { o.Bound = b }
}

// WithPenalty overrides the scoring function the merger optimizes.
func WithPenalty(p penalty.Penalty[vertex.Vertex]) Option {
	return func(o *Options) { o.Penalty = p }
}

// WithIsolate overrides which members are important.
func WithIsolate(isolate depgraph.Isolate) Option {
	return func(o *Options) { o.Isolate = isolate }
}

// IsolateAny combines isolators with logical OR.
func IsolateAny(isolates ...depgraph.Isolate) depgraph.Isolate {
	return func(m ast.Member) bool {
		for _, isolate := range isolates {
			if isolate(m) {
				return true
			}
		}

		return false
	}
}

// IsolateKind selects only members of the given concrete type, e.g.
// IsolateKind[*ast.Method]() to verify methods alone.
func IsolateKind[M ast.Member]() depgraph.Isolate {
	return func(m ast.Member) bool {
		_, ok := m.(M)

		return ok
	}
}
