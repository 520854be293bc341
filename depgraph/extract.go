package depgraph

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/jamestiotio/silver/ast"
	"github.com/jamestiotio/silver/vertex"
)

// Isolate selects which members are "important" (spec.md §6). The
// default, DefaultIsolate, selects every Method, Function, and
// Predicate.
type Isolate func(ast.Member) bool

// DefaultIsolate selects every Method, Function, and Predicate — every
// member carrying a proof obligation, per spec.md §1/§6.
func DefaultIsolate(m ast.Member) bool {
	switch m.(type) {
	case *ast.Method, *ast.Function, *ast.Predicate:
		return true
	default:
		return false
	}
}

// builder accumulates vertices and edges while walking a Program. It
// is discarded once Build returns its finished Index.
type builder struct {
	idOf     map[vertex.Vertex]int
	vertexOf []vertex.Vertex
	adj      []*treeset.Set // adj[id] is the sorted successor-id set of id
}

func newBuilder() *builder {
	return &builder{idOf: make(map[vertex.Vertex]int)}
}

// id returns v's id, assigning a fresh dense id and adjacency set on
// first reference.
func (b *builder) id(v vertex.Vertex) int {
	if id, ok := b.idOf[v]; ok {
		return id
	}

	id := len(b.vertexOf)
	b.idOf[v] = id
	b.vertexOf = append(b.vertexOf, v)
	b.adj = append(b.adj, treeset.NewWith(utils.IntComparator))

	return id
}

// edge records u -> v ("if u is included, v must be included too"),
// assigning ids to both endpoints as needed.
func (b *builder) edge(u, v vertex.Vertex) {
	ui := b.id(u)
	vi := b.id(v)
	if ui == vi {
		return // never record a self-loop; no vertex kind needs one
	}
	b.adj[ui].Add(vi)
}

// edgesTo records u -> r for every reference r, mapped onto its
// vertex via toVertex.
func (b *builder) edgesTo(u vertex.Vertex, refs []ast.Reference) {
	for _, r := range refs {
		b.edge(u, toVertex(r))
	}
}

// toVertex maps a usage reference onto the use-side vertex it denotes,
// per the kind correspondence spec.md §4.2 defines for usages().
func toVertex(r ast.Reference) vertex.Vertex {
	switch r.Kind {
	case ast.RefMethodSpec:
		return vertex.Vertex{Kind: vertex.MethodSpec, Name: r.Name}
	case ast.RefFunction:
		return vertex.Vertex{Kind: vertex.Function, Name: r.Name}
	case ast.RefDomainFunction:
		return vertex.DomainFunctionVertex(r.Name)
	case ast.RefPredicateSig:
		return vertex.Vertex{Kind: vertex.PredicateSig, Name: r.Name}
	case ast.RefPredicateBody:
		return vertex.Vertex{Kind: vertex.PredicateBody, Name: r.Name}
	case ast.RefField:
		return vertex.Vertex{Kind: vertex.Field, Name: r.Name}
	default: // ast.RefDomainType
		return vertex.DomainTypeVertex(r.Domain, r.TypeArgsKey)
	}
}

func usagesOf(nodes []*ast.Node) []ast.Reference {
	var out []ast.Reference
	for _, n := range nodes {
		out = append(out, ast.Usages(n)...)
	}

	return out
}

// Build walks program per the edge rules of spec.md §4.2 and returns
// the resulting Index. isolate selects the important-node set; a nil
// isolate uses DefaultIsolate.
//
// Members are walked in a fixed order — Methods, then Functions, then
// Predicates, then Fields, then Domains — so that, for a fixed input
// Program, id assignment (and therefore every downstream ordering
// decision that depends on it, including the cut engine's
// first-visited-wins tie-break) is deterministic. See SPEC_FULL.md
// Open Question 2.
func Build(program *ast.Program, isolate Isolate) (*Index, error) {
	if isolate == nil {
		isolate = DefaultIsolate
	}

	b := newBuilder()
	always := vertex.AlwaysVertex
	b.id(always)

	for _, m := range program.Methods {
		def, err := vertex.DefVertex(m)
		if err != nil {
			return nil, err
		}
		use, err := vertex.UseVertex(m)
		if err != nil {
			return nil, err
		}
		b.edge(def, always)
		b.edge(use, always)

		specRefs := append(append(usagesOf(m.Pre), usagesOf(m.Post)...), usagesOf(m.Formals)...)
		b.edgesTo(use, specRefs)

		if m.HasBody {
			bodyRefs := append(ast.Usages(m.Body), specRefs...)
			b.edgesTo(def, bodyRefs)
		}
	}

	for _, f := range program.Functions {
		def, err := vertex.DefVertex(f)
		if err != nil {
			return nil, err
		}
		b.edge(def, always)

		refs := append(ast.Usages(f.Body), append(usagesOf(f.Pre), append(usagesOf(f.Post), usagesOf(f.Formals)...)...)...)
		b.edgesTo(def, refs)
	}

	for _, p := range program.Predicates {
		def, err := vertex.DefVertex(p)
		if err != nil {
			return nil, err
		}
		use, err := vertex.UseVertex(p)
		if err != nil {
			return nil, err
		}
		b.edge(def, always)
		b.edge(use, always)
		b.edge(def, use)

		b.edgesTo(use, usagesOf(p.Formals))
		if p.HasBody {
			b.edgesTo(def, ast.Usages(p.Body))
		}
	}

	for _, fl := range program.Fields {
		def, err := vertex.DefVertex(fl)
		if err != nil {
			return nil, err
		}
		b.edge(def, always)
	}

	for _, d := range program.Domains {
		for _, fn := range d.Functions {
			fv := vertex.DomainFunctionVertex(fn.Name)
			b.edgesTo(fv, ast.Usages(fn.Decl))
		}

		for _, ax := range d.Axioms {
			av := vertex.DomainAxiomVertex(d.Name, ax.ID)
			refs := ast.Usages(ax.Exp)
			if len(refs) == 0 {
				b.edge(always, av)

				continue
			}

			for _, r := range refs {
				rv := toVertex(r)
				b.edge(rv, av)
				b.edge(av, rv)
			}
		}
	}

	important, err := importantNodes(b, program, isolate)
	if err != nil {
		return nil, err
	}

	return finish(b, important), nil
}

// importantNodes projects isolate over the program's members, in
// declaration order, returning the ids of their definition vertices.
func importantNodes(b *builder, program *ast.Program, isolate Isolate) ([]int, error) {
	var ids []int
	add := func(m ast.Member) error {
		if !isolate(m) {
			return nil
		}
		def, err := vertex.DefVertex(m)
		if err != nil {
			return err
		}
		ids = append(ids, b.id(def))

		return nil
	}

	for _, m := range program.Methods {
		if err := add(m); err != nil {
			return nil, err
		}
	}
	for _, f := range program.Functions {
		if err := add(f); err != nil {
			return nil, err
		}
	}
	for _, p := range program.Predicates {
		if err := add(p); err != nil {
			return nil, err
		}
	}
	for _, fl := range program.Fields {
		if err := add(fl); err != nil {
			return nil, err
		}
	}

	return ids, nil
}

// finish materializes the builder's treeset-backed adjacency into the
// plain sorted [][]int the rest of the chopper consumes.
func finish(b *builder, important []int) *Index {
	n := len(b.vertexOf)
	edges := make([][]int, n)
	for i, set := range b.adj {
		vals := set.Values()
		succ := make([]int, len(vals))
		for j, v := range vals {
			succ[j] = v.(int)
		}
		edges[i] = succ
	}

	return &Index{
		N:              n,
		Edges:          edges,
		vertexOf:       b.vertexOf,
		idOf:           b.idOf,
		ImportantNodes: important,
	}
}
