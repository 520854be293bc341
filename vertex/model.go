package vertex

import "github.com/jamestiotio/silver/ast"

// DefVertex returns the definition-side vertex for m, per spec.md
// §3/§4.1:
//
//   - *ast.Method with a body    -> Method(name)
//   - *ast.Method without a body -> MethodSpec(name) (collapses onto use side)
//   - *ast.Function              -> Function(name)
//   - *ast.Predicate with a body -> PredicateBody(name)
//   - *ast.Predicate without one -> PredicateSig(name) (collapses onto use side)
//   - *ast.Field                 -> Field(name)
//
// Any other ast.Member implementation is an unsupported (plugin)
// member and is rejected.
func DefVertex(m ast.Member) (Vertex, error) {
	switch t := m.(type) {
	case *ast.Method:
		if t.HasBody {
			return Vertex{Kind: Method, Name: t.Name}, nil
		}

		return Vertex{Kind: MethodSpec, Name: t.Name}, nil
	case *ast.Function:
		return Vertex{Kind: Function, Name: t.Name}, nil
	case *ast.Predicate:
		if t.HasBody {
			return Vertex{Kind: PredicateBody, Name: t.Name}, nil
		}

		return Vertex{Kind: PredicateSig, Name: t.Name}, nil
	case *ast.Field:
		return Vertex{Kind: Field, Name: t.Name}, nil
	default:
		return Vertex{}, ErrUnsupportedMember
	}
}

// UseVertex returns the use-side vertex for m, the vertex a caller
// requires: always the spec-only shape, never the full body.
//
//   - *ast.Method    -> MethodSpec(name), always
//   - *ast.Function  -> Function(name) (functions have no separate spec vertex)
//   - *ast.Predicate -> PredicateSig(name), always
//   - *ast.Field     -> Field(name)
func UseVertex(m ast.Member) (Vertex, error) {
	switch t := m.(type) {
	case *ast.Method:
		return Vertex{Kind: MethodSpec, Name: t.Name}, nil
	case *ast.Function:
		return Vertex{Kind: Function, Name: t.Name}, nil
	case *ast.Predicate:
		return Vertex{Kind: PredicateSig, Name: t.Name}, nil
	case *ast.Field:
		return Vertex{Kind: Field, Name: t.Name}, nil
	default:
		return Vertex{}, ErrUnsupportedMember
	}
}

// DomainFunctionVertex returns the vertex for the domain function
// named name. The vertex does not record the owning domain.
func DomainFunctionVertex(name string) Vertex {
	return Vertex{Kind: DomainFunction, Name: name}
}

// DomainAxiomVertex returns the vertex for axiom id owned by domain d.
func DomainAxiomVertex(domain, id string) Vertex {
	return Vertex{Kind: DomainAxiom, Name: id, Domain: domain}
}

// DomainTypeVertex returns the vertex for one instantiation of domain
// d with the given (already-canonicalized, see ast.Usages) type
// argument key.
func DomainTypeVertex(domain, typeArgsKey string) Vertex {
	return Vertex{Kind: DomainType, Domain: domain, TypeArgsKey: typeArgsKey}
}
