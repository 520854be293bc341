package ast

import (
	"sort"
	"strings"
)

// RefKind classifies a Reference produced by Usages. It mirrors the
// use-side vertex kinds of spec.md §3, but ast deliberately does not
// import package vertex: ast is the leaf of the dependency chain, and
// package depgraph is the one place RefKind gets mapped onto
// vertex.Kind while building graph edges.
type RefKind int

const (
	RefMethodSpec RefKind = iota
	RefFunction
	RefDomainFunction
	RefPredicateSig
	RefPredicateBody
	RefField
	RefDomainType
)

// Reference is one dependency a Node subtree demands, as extracted by
// Usages. Name identifies the target member for every kind except
// RefDomainType, where Domain names the instantiated domain and
// TypeArgsKey is a stable, order-independent-by-position (but
// parameter-name-keyed) identity string for the particular
// instantiation, so `Map[K:Int,V:Bool]` and a second occurrence of the
// same instantiation collapse onto one DomainType vertex.
type Reference struct {
	Kind        RefKind
	Name        string
	Domain      string
	TypeArgsKey string
}

// Usages walks n's subtree and collects every Reference it demands,
// per the rules of spec.md §4.2:
//
//   - method calls             -> RefMethodSpec
//   - function applications    -> RefFunction
//   - domain function applications -> RefDomainFunction
//   - predicate accesses       -> RefPredicateSig
//   - fold/unfold/unfolding    -> RefPredicateBody
//   - field accesses           -> RefField
//   - every type node descended into, for any domain type encountered
//     (including type arguments of generic types, recursively) -> RefDomainType
//
// A nil n yields no references. Node trees are parser output: bounded
// in practice by source size and never graph-cyclic, so this walk is a
// plain recursion (contrast the dependency graph itself, which spec.md
// §9 requires be walked iteratively because it may contain cycles).
func Usages(n *Node) []Reference {
	var out []Reference
	walk(n, &out)

	return out
}

func walk(n *Node, out *[]Reference) {
	if n == nil {
		return
	}

	switch n.Kind {
	case MethodCall:
		*out = append(*out, Reference{Kind: RefMethodSpec, Name: n.Name})
	case FuncApp:
		*out = append(*out, Reference{Kind: RefFunction, Name: n.Name})
	case DomainFuncApp:
		*out = append(*out, Reference{Kind: RefDomainFunction, Name: n.Name})
	case PredicateAccess:
		*out = append(*out, Reference{Kind: RefPredicateSig, Name: n.Name})
	case Unfolding:
		*out = append(*out, Reference{Kind: RefPredicateBody, Name: n.Name})
	case FieldAccess:
		*out = append(*out, Reference{Kind: RefField, Name: n.Name})
	case TypeRef:
		if n.Domain != "" {
			*out = append(*out, Reference{
				Kind:        RefDomainType,
				Domain:      n.Domain,
				TypeArgsKey: typeArgsKey(n.NamedTypeArgs),
			})
		}
		// Recurse into type arguments regardless of whether this
		// TypeRef itself named a domain, so a non-domain generic
		// wrapper (e.g. a built-in Seq[D]) still surfaces D.
		for _, a := range n.NamedTypeArgs {
			walk(a.Value, out)
		}
	}

	for _, c := range n.Children {
		walk(c, out)
	}
}

// typeArgsKey computes a stable, parameter-name-ordered signature for a
// type-argument map so that two structurally identical instantiations
// produce identical keys irrespective of the order NamedTypeArgs was
// constructed in.
func typeArgsKey(args []TypeArg) string {
	if len(args) == 0 {
		return ""
	}

	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Param + "=" + valueKey(a.Value)
	}
	sort.Strings(parts)

	return strings.Join(parts, ",")
}

// valueKey renders a single type-argument value into the signature
// fragment used by typeArgsKey: a domain name plus its own nested
// argument key for a TypeRef, or the bare name otherwise (a built-in
// type, e.g. "Int").
func valueKey(v *Node) string {
	if v == nil {
		return "?"
	}
	if v.Kind == TypeRef {
		if v.Domain == "" {
			return typeArgsKey(v.NamedTypeArgs)
		}

		return v.Domain + "<" + typeArgsKey(v.NamedTypeArgs) + ">"
	}

	return v.Name
}
