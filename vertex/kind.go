package vertex

import "fmt"

// Kind is the closed, tagged union of vertex kinds from spec.md §3.
// No other kind may ever be constructed; an AST node of an
// unrecognized member kind (a plugin/extension) must be rejected at
// construction time with ErrUnsupportedMember rather than silently
// coerced into one of these.
type Kind int

const (
	// Method is a method's full body + specification (definition side).
	Method Kind = iota
	// MethodSpec is a method's pre/postconditions only (use side, or
	// the definition side for a body-less method).
	MethodSpec
	// Function is a function declaration + body (functions have no
	// separate spec-only vertex).
	Function
	// PredicateSig is a predicate's signature only.
	PredicateSig
	// PredicateBody is a predicate's signature + body.
	PredicateBody
	// Field is a field declaration.
	Field
	// DomainType is a domain applied to a specific type-argument map.
	DomainType
	// DomainFunction is a single function within a domain.
	DomainFunction
	// DomainAxiom is a single axiom within a domain.
	DomainAxiom
	// Always is the sentinel vertex: anything reachable from it is
	// always included in every sub-program that contains at least one
	// root (spec.md §8 property 7).
	Always
)

// String renders a Kind for diagnostics and test failure messages.
func (k Kind) String() string {
	switch k {
	case Method:
		return "Method"
	case MethodSpec:
		return "MethodSpec"
	case Function:
		return "Function"
	case PredicateSig:
		return "PredicateSig"
	case PredicateBody:
		return "PredicateBody"
	case Field:
		return "Field"
	case DomainType:
		return "DomainType"
	case DomainFunction:
		return "DomainFunction"
	case DomainAxiom:
		return "DomainAxiom"
	case Always:
		return "Always"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Vertex is the identifying key of a node in the dependency graph.
// Identity is the full tuple: two vertices are the same node if and
// only if all four fields are equal. Name carries the member/axiom
// name for every kind except Always (always empty) and DomainType
// (which uses Domain + TypeArgsKey instead). Domain additionally
// identifies the owning domain for DomainAxiom, and the instantiated
// domain for DomainType.
type Vertex struct {
	Kind        Kind
	Name        string
	Domain      string
	TypeArgsKey string // only meaningful when Kind == DomainType
}

// AlwaysVertex is the single Always sentinel. Always is a singleton by
// construction: every call site that needs it uses this value, so
// equality comparisons (Vertex{} ==) work without a constructor.
var AlwaysVertex = Vertex{Kind: Always}

// String renders a Vertex for diagnostics.
func (v Vertex) String() string {
	switch v.Kind {
	case Always:
		return "Always"
	case DomainAxiom:
		return fmt.Sprintf("%s(%s::%s)", v.Kind, v.Domain, v.Name)
	case DomainType:
		return fmt.Sprintf("%s(%s<%s>)", v.Kind, v.Domain, v.TypeArgsKey)
	default:
		return fmt.Sprintf("%s(%s)", v.Kind, v.Name)
	}
}
