package ast

// Kind classifies an expression-tree Node. Only the shapes spec.md
// §4.2 calls out as reference-producing get their own Kind; everything
// else (blocks, conjunctions, let-bindings, arithmetic) is Composite —
// structurally present for traversal, but contributing no reference of
// its own.
type Kind int

const (
	// Composite is a structural node: its Children must still be
	// walked, but the node itself never yields a Reference.
	Composite Kind = iota

	// MethodCall is a call site `m(...)`; yields a reference to
	// MethodSpec(m) (callers only ever need the callee's spec).
	MethodCall

	// FuncApp is a function application `f(...)`; yields Function(f).
	FuncApp

	// DomainFuncApp is a domain function application `df(...)`;
	// yields DomainFunction(df).
	DomainFuncApp

	// PredicateAccess is `acc(p(...))` or a bare predicate mention
	// that does not fold/unfold it; yields PredicateSig(p).
	PredicateAccess

	// Unfolding is `fold p(...)`, `unfold p(...)`, or
	// `unfolding p(...) in ...`; yields PredicateBody(p), the one
	// place a user demands the full predicate body (spec.md §4.2).
	Unfolding

	// FieldAccess is `e.f`; yields Field(f).
	FieldAccess

	// TypeRef is a type node possibly naming a domain, with its own
	// (possibly generic, possibly nested) type arguments; yields
	// DomainType(Domain, args) for every domain type encountered,
	// including recursively through NamedTypeArgs (spec.md §4.2).
	TypeRef
)

// TypeArg is one named type-parameter binding of a TypeRef node, e.g.
// binding formal parameter "K" to the concrete type Value in
// `Map[K, V]` instantiated as `Map[Int, Bool]`.
type TypeArg struct {
	Param string
	Value *Node
}

// Node is the single generic expression-tree type every member body,
// specification, and domain declaration is built from.
type Node struct {
	Kind Kind

	// Name is the referenced identifier; its meaning depends on Kind
	// (method/function/domain-function/predicate/field name). Unused
	// for Composite.
	Name string

	// Domain names the owning domain for a TypeRef node.
	Domain string

	// Children holds sub-expressions that must still be walked
	// regardless of this node's own Kind (call arguments, operands,
	// block statements, the body of an Unfolding's `in` clause, ...).
	Children []*Node

	// NamedTypeArgs holds the type-argument map for a TypeRef node.
	// Each argument's Value is itself walked (recursively yielding
	// nested DomainType references) per spec.md §4.2.
	NamedTypeArgs []TypeArg
}

// Comp builds a structural node wrapping the given children.
func Comp(children ...*Node) *Node {
	return &Node{Kind: Composite, Children: children}
}

// Call builds a MethodCall node.
func Call(name string, args ...*Node) *Node {
	return &Node{Kind: MethodCall, Name: name, Children: args}
}

// App builds a FuncApp node.
func App(name string, args ...*Node) *Node {
	return &Node{Kind: FuncApp, Name: name, Children: args}
}

// DomainApp builds a DomainFuncApp node.
func DomainApp(name string, args ...*Node) *Node {
	return &Node{Kind: DomainFuncApp, Name: name, Children: args}
}

// Access builds a PredicateAccess node.
func Access(name string, args ...*Node) *Node {
	return &Node{Kind: PredicateAccess, Name: name, Children: args}
}

// Unfold builds an Unfolding node (covers fold/unfold/unfolding-in alike).
func Unfold(name string, rest ...*Node) *Node {
	return &Node{Kind: Unfolding, Name: name, Children: rest}
}

// FieldRef builds a FieldAccess node.
func FieldRef(name string) *Node {
	return &Node{Kind: FieldAccess, Name: name}
}

// Type builds a TypeRef node. A nil or empty domain models a
// non-domain (built-in) type: it still recurses into its type
// arguments but yields no DomainType reference for itself.
func Type(domain string, args ...TypeArg) *Node {
	return &Node{Kind: TypeRef, Domain: domain, NamedTypeArgs: args}
}

// Arg is sugar for constructing a TypeArg.
func Arg(param string, value *Node) TypeArg {
	return TypeArg{Param: param, Value: value}
}
