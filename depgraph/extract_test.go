package depgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jamestiotio/silver/ast"
	"github.com/jamestiotio/silver/depgraph"
	"github.com/jamestiotio/silver/vertex"
)

func idFor(t *testing.T, idx *depgraph.Index, v vertex.Vertex) int {
	t.Helper()
	id, ok := idx.IDOf(v)
	assert.True(t, ok, "expected vertex %s to exist", v)

	return id
}

func TestBuild_TwoIndependentMethods(t *testing.T) {
	a := &ast.Method{Name: "A", HasBody: true, Body: ast.FieldRef("f")}
	b := &ast.Method{Name: "B", HasBody: true, Body: ast.FieldRef("g")}
	prog := &ast.Program{
		Methods: []*ast.Method{a, b},
		Fields:  []*ast.Field{{Name: "f"}, {Name: "g"}},
	}

	idx, err := depgraph.Build(prog, nil)
	assert.NoError(t, err)
	assert.Len(t, idx.ImportantNodes, 2)

	aID := idFor(t, idx, vertex.Vertex{Kind: vertex.Method, Name: "A"})
	fID := idFor(t, idx, vertex.Vertex{Kind: vertex.Field, Name: "f"})
	assert.Contains(t, idx.Edges[aID], fID)
}

func TestBuild_CallerPullsOnlySpec(t *testing.T) {
	// method A() requires acc(f) { B() }
	a := &ast.Method{
		Name: "A", HasBody: true,
		Pre:  []*ast.Node{ast.FieldRef("f")},
		Body: ast.Comp(ast.Call("B")),
	}
	// method B() requires acc(g) { ... }
	b := &ast.Method{
		Name: "B", HasBody: true,
		Pre: []*ast.Node{ast.FieldRef("g")},
	}
	prog := &ast.Program{
		Methods: []*ast.Method{a, b},
		Fields:  []*ast.Field{{Name: "f"}, {Name: "g"}},
	}

	idx, err := depgraph.Build(prog, nil)
	assert.NoError(t, err)

	defA := idFor(t, idx, vertex.Vertex{Kind: vertex.Method, Name: "A"})
	useB := idFor(t, idx, vertex.Vertex{Kind: vertex.MethodSpec, Name: "B"})
	defB := idFor(t, idx, vertex.Vertex{Kind: vertex.Method, Name: "B"})

	assert.Contains(t, idx.Edges[defA], useB)
	assert.NotContains(t, idx.Edges[defA], defB, "caller must not pull the callee body")
}

func TestBuild_FoldForcesPredicateBody(t *testing.T) {
	a := &ast.Method{Name: "A", HasBody: true, Body: ast.Comp(ast.Unfold("P"))}
	p := &ast.Predicate{Name: "P", HasBody: true, Body: ast.Comp()}
	prog := &ast.Program{Methods: []*ast.Method{a}, Predicates: []*ast.Predicate{p}}

	idx, err := depgraph.Build(prog, nil)
	assert.NoError(t, err)

	defA := idFor(t, idx, vertex.Vertex{Kind: vertex.Method, Name: "A"})
	bodyP := idFor(t, idx, vertex.Vertex{Kind: vertex.PredicateBody, Name: "P"})
	assert.Contains(t, idx.Edges[defA], bodyP)
}

func TestBuild_EmptyReferenceAxiomIsAlwaysIncluded(t *testing.T) {
	d := &ast.Domain{
		Name: "D",
		Axioms: []*ast.DomainAxiom{
			{ID: "ax1", Exp: ast.Comp()}, // no references
		},
	}
	prog := &ast.Program{Domains: []*ast.Domain{d}}

	idx, err := depgraph.Build(prog, nil)
	assert.NoError(t, err)

	alwaysID := idFor(t, idx, vertex.AlwaysVertex)
	axID := idFor(t, idx, vertex.DomainAxiomVertex("D", "ax1"))
	assert.Contains(t, idx.Edges[alwaysID], axID)
}

func TestBuild_UnsupportedMemberRejected(t *testing.T) {
	// depgraph.Build only walks the typed member slices of ast.Program,
	// so it cannot be handed an unsupported member; this checks the
	// DefVertex guard whose error Build returns unchanged.
	_, err := vertex.DefVertex(nil)
	assert.Error(t, err)
}

func TestBuild_DuplicateImportantNodesTolerated(t *testing.T) {
	a := &ast.Method{Name: "A", HasBody: true}
	prog := &ast.Program{Methods: []*ast.Method{a}}

	idx, err := depgraph.Build(prog, func(m ast.Member) bool { return true })
	assert.NoError(t, err)
	assert.Len(t, idx.ImportantNodes, 1)
}
