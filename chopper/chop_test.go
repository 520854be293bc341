package chopper_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamestiotio/silver/ast"
	"github.com/jamestiotio/silver/chopper"
)

func sortedPrograms(t *testing.T, out []*ast.Program) []*ast.Program {
	t.Helper()
	key := func(p *ast.Program) string {
		switch {
		case len(p.Methods) > 0:
			return "method:" + p.Methods[0].Name
		case len(p.Functions) > 0:
			return "function:" + p.Functions[0].Name
		default:
			return ""
		}
	}
	sort.Slice(out, func(i, j int) bool { return key(out[i]) < key(out[j]) })

	return out
}

func methodNames(t *testing.T, out []*ast.Program) []string {
	t.Helper()
	var names []string
	for _, p := range out {
		for _, m := range p.Methods {
			names = append(names, m.Name)
		}
	}

	return names
}

func TestChop_EmptySelectionYieldsEmptyOutput(t *testing.T) {
	out, metrics, err := chopper.Chop(&ast.Program{})
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, chopper.Metrics{}, metrics)
}

func TestChop_RejectsNonPositiveBound(t *testing.T) {
	prog := &ast.Program{Methods: []*ast.Method{{Name: "A", HasBody: true}}}
	_, _, err := chopper.Chop(prog, chopper.WithBound(-1))
	assert.ErrorIs(t, err, chopper.ErrInvalidBound)
}

func TestChop_TwoIndependentMethods(t *testing.T) {
	// spec.md §8 scenario 1.
	a := &ast.Method{Name: "A", HasBody: true, Body: ast.FieldRef("f")}
	b := &ast.Method{Name: "B", HasBody: true, Body: ast.FieldRef("g")}
	prog := &ast.Program{
		Methods: []*ast.Method{a, b},
		Fields:  []*ast.Field{{Name: "f"}, {Name: "g"}},
	}

	out, metrics, err := chopper.Chop(prog)
	require.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, 2, metrics.MaxNumberOfParts)
	assert.Nil(t, metrics.TimeSCC, "≤2 important nodes must skip the SCC condenser")

	var withA, withB *ast.Program
	for _, p := range out {
		if len(p.Methods) == 1 && p.Methods[0].Name == "A" {
			withA = p
		}
		if len(p.Methods) == 1 && p.Methods[0].Name == "B" {
			withB = p
		}
	}
	require.NotNil(t, withA)
	require.NotNil(t, withB)
	assert.Len(t, withA.Fields, 1)
	assert.Equal(t, "f", withA.Fields[0].Name)
	assert.Len(t, withB.Fields, 1)
	assert.Equal(t, "g", withB.Fields[0].Name)
}

func TestChop_CallerPullsOnlySpec(t *testing.T) {
	// spec.md §8 scenario 2.
	a := &ast.Method{
		Name: "A", HasBody: true,
		Pre:  []*ast.Node{ast.FieldRef("f")},
		Body: ast.Comp(ast.Call("B")),
	}
	b := &ast.Method{
		Name: "B", HasBody: true,
		Pre: []*ast.Node{ast.FieldRef("g")},
	}
	prog := &ast.Program{
		Methods: []*ast.Method{a, b},
		Fields:  []*ast.Field{{Name: "f"}, {Name: "g"}},
	}

	out, _, err := chopper.Chop(prog)
	require.NoError(t, err)
	require.Len(t, out, 2)

	var withA *ast.Program
	for _, p := range out {
		for _, m := range p.Methods {
			if m.Name == "A" {
				withA = p
			}
		}
	}
	require.NotNil(t, withA)

	for _, m := range withA.Methods {
		if m.Name == "B" {
			assert.False(t, m.HasBody, "A's sub-program must see only B's spec, never its body")
		}
	}
}

func TestChop_FoldForcesBody(t *testing.T) {
	// spec.md §8 scenario 3.
	a := &ast.Method{Name: "A", HasBody: true, Body: ast.Comp(ast.Unfold("P"))}
	p := &ast.Predicate{Name: "P", HasBody: true, Body: ast.Comp()}
	prog := &ast.Program{Methods: []*ast.Method{a}, Predicates: []*ast.Predicate{p}}

	out, _, err := chopper.Chop(prog)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Len(t, out[0].Predicates, 1)
	assert.True(t, out[0].Predicates[0].HasBody)
}

func TestChop_BoundMergesLightest(t *testing.T) {
	// spec.md §8 scenario 4: three isolated methods of equal weight,
	// bound = 2.
	prog := &ast.Program{Methods: []*ast.Method{
		{Name: "A", HasBody: true},
		{Name: "B", HasBody: true},
		{Name: "C", HasBody: true},
	}}

	out, metrics, err := chopper.Chop(prog, chopper.WithBound(2))
	require.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, 2, metrics.PartsAfterMerge)

	names := methodNames(t, out)
	assert.ElementsMatch(t, []string{"A", "B", "C"}, names)
}

func TestChop_CycleUnderSCCWithThreeFunctions(t *testing.T) {
	// Three mutually-dependent functions push |importantNodes| past the
	// ≤2 short circuit, exercising the SCC condenser.
	f := &ast.Function{Name: "f", Body: ast.App("g")}
	g := &ast.Function{Name: "g", Body: ast.App("h")}
	h := &ast.Function{Name: "h", Body: ast.App("f")}
	prog := &ast.Program{Functions: []*ast.Function{f, g, h}}

	out, metrics, err := chopper.Chop(prog)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.NotNil(t, metrics.TimeSCC, "more than 2 important nodes must run the SCC condenser")
	assert.Len(t, out[0].Functions, 3)
}

func TestChop_CycleUnderSCCTwoFunctionsTakesShortCircuit(t *testing.T) {
	// spec.md §8 scenario 5.
	f := &ast.Function{Name: "f", Body: ast.App("f")}
	g := &ast.Function{Name: "g", Pre: []*ast.Node{ast.App("f")}}
	prog := &ast.Program{Functions: []*ast.Function{f, g}}

	out, metrics, err := chopper.Chop(prog)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Nil(t, metrics.TimeSCC)
	assert.Len(t, out[0].Functions, 2)
}

func TestChop_AxiomWithNoReferencesAlwaysIncluded(t *testing.T) {
	// spec.md §8 scenario 6.
	d := &ast.Domain{
		Name: "D",
		Functions: []*ast.DomainFunc{
			{Name: "df", Decl: ast.Comp()},
		},
		Axioms: []*ast.DomainAxiom{
			{ID: "ax1", Exp: ast.Comp()}, // no references
		},
	}
	a := &ast.Method{Name: "A", HasBody: true, Body: ast.DomainApp("df")}
	prog := &ast.Program{Methods: []*ast.Method{a}, Domains: []*ast.Domain{d}}

	out, _, err := chopper.Chop(prog)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Len(t, out[0].Domains, 1)

	var axiomIDs []string
	for _, ax := range out[0].Domains[0].Axioms {
		axiomIDs = append(axiomIDs, ax.ID)
	}
	assert.Contains(t, axiomIDs, "ax1")
}

func TestChop_PredicateSigOnlyOmitsBody(t *testing.T) {
	a := &ast.Method{
		Name: "A", HasBody: true,
		Body: ast.Comp(ast.Access("P")),
	}
	p := &ast.Predicate{Name: "P", HasBody: true, Body: ast.Comp()}
	prog := &ast.Program{Methods: []*ast.Method{a}, Predicates: []*ast.Predicate{p}}

	// The default isolate also selects P, whose body vertex A never
	// reaches, so P roots a second sub-program of its own.
	out, _, err := chopper.Chop(prog)
	require.NoError(t, err)
	require.Len(t, out, 2)

	var withA *ast.Program
	for _, sub := range out {
		if len(sub.Methods) == 1 && sub.Methods[0].Name == "A" {
			withA = sub
		}
	}
	require.NotNil(t, withA)
	require.Len(t, withA.Predicates, 1)
	assert.False(t, withA.Predicates[0].HasBody)
}

func TestChop_DuplicateImportantNodesDoNotDuplicateOutput(t *testing.T) {
	a := &ast.Method{Name: "A", HasBody: true}
	prog := &ast.Program{Methods: []*ast.Method{a}}

	out, _, err := chopper.Chop(prog, chopper.WithIsolate(func(ast.Member) bool { return true }))
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestChop_MetadataPreservedAcrossOutputs(t *testing.T) {
	a := &ast.Method{Name: "A", HasBody: true, Body: ast.FieldRef("f")}
	b := &ast.Method{Name: "B", HasBody: true, Body: ast.FieldRef("g")}
	prog := &ast.Program{
		Methods:  []*ast.Method{a, b},
		Fields:   []*ast.Field{{Name: "f"}, {Name: "g"}},
		Metadata: map[string]string{"source": "batch.sil"},
	}

	out, _, err := chopper.Chop(prog)
	require.NoError(t, err)
	for _, p := range out {
		assert.Equal(t, "batch.sil", p.Metadata["source"])
	}
}

func TestChop_IsolateKindSelectsOnlyMethods(t *testing.T) {
	a := &ast.Method{Name: "A", HasBody: true}
	f := &ast.Function{Name: "f", Body: ast.Comp()}
	prog := &ast.Program{Methods: []*ast.Method{a}, Functions: []*ast.Function{f}}

	out, _, err := chopper.Chop(prog, chopper.WithIsolate(chopper.IsolateKind[*ast.Method]()))
	require.NoError(t, err)

	var sawFunction bool
	for _, p := range out {
		if len(p.Functions) > 0 {
			sawFunction = true
		}
	}
	assert.False(t, sawFunction, "a function never selected as important should not surface as a root")
}

func TestChop_DeterministicAcrossRepeatedCalls(t *testing.T) {
	// spec.md §8 property 5: identical inputs must produce byte-equal
	// sub-program structure, so two independent Chop calls over the
	// same program must diff to nothing.
	build := func() *ast.Program {
		return &ast.Program{
			Methods: []*ast.Method{
				{Name: "A", HasBody: true, Pre: []*ast.Node{ast.FieldRef("f")}, Body: ast.Comp(ast.Call("B"))},
				{Name: "B", HasBody: true, Pre: []*ast.Node{ast.FieldRef("g")}},
			},
			Fields: []*ast.Field{{Name: "f"}, {Name: "g"}},
		}
	}

	first, _, err := chopper.Chop(build())
	require.NoError(t, err)
	second, _, err := chopper.Chop(build())
	require.NoError(t, err)

	diff := cmp.Diff(sortedPrograms(t, first), sortedPrograms(t, second))
	assert.Empty(t, diff, "repeated Chop calls over identical input must not diverge")
}
