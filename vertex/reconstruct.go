package vertex

import "github.com/jamestiotio/silver/ast"

// Inverse implements the reconstruction contract of spec.md §4.1/§6:
// given the original program and a vertex set (represented as a
// membership map, the form package depgraph's callers naturally have
// after flattening a cut/merge result), emit the sub-program those
// vertices denote.
//
// Rules (spec.md §4.1):
//   - A Method with its Method vertex present contributes its full
//     body; one with only MethodSpec present contributes a
//     body-stripped stub. If both are present, the full-body form
//     wins.
//   - Predicates obey the symmetric PredicateBody/PredicateSig rule.
//   - Functions and Fields are included whole when their (sole)
//     vertex is present.
//   - For each domain with at least one present DomainType,
//     DomainFunction, or DomainAxiom vertex, exactly one domain
//     declaration is emitted, populated with only the present
//     functions/axioms.
//   - Program.Metadata is copied onto the result verbatim.
//
// Returns ErrMissingReference if present names a member or
// domain-function/axiom absent from program — a malformed input per
// spec.md §7, not recovered locally.
func Inverse(program *ast.Program, present map[Vertex]bool) (*ast.Program, error) {
	out := &ast.Program{Metadata: program.Metadata}
	consumed := make(map[Vertex]bool, len(present))

	for _, m := range program.Methods {
		def, _ := DefVertex(m)
		use, _ := UseVertex(m)
		hasDef, hasUse := present[def], present[use]
		if !hasDef && !hasUse {
			continue
		}
		consumed[def] = true
		consumed[use] = true

		if hasDef && def.Kind == Method {
			out.Methods = append(out.Methods, m)
		} else {
			out.Methods = append(out.Methods, &ast.Method{
				Name: m.Name, HasBody: false,
				Pre: m.Pre, Post: m.Post, Formals: m.Formals,
			})
		}
	}

	for _, p := range program.Predicates {
		def, _ := DefVertex(p)
		use, _ := UseVertex(p)
		hasDef, hasUse := present[def], present[use]
		if !hasDef && !hasUse {
			continue
		}
		consumed[def] = true
		consumed[use] = true

		if hasDef && def.Kind == PredicateBody {
			out.Predicates = append(out.Predicates, p)
		} else {
			out.Predicates = append(out.Predicates, &ast.Predicate{
				Name: p.Name, HasBody: false, Formals: p.Formals,
			})
		}
	}

	for _, f := range program.Functions {
		def, _ := DefVertex(f)
		if present[def] {
			consumed[def] = true
			out.Functions = append(out.Functions, f)
		}
	}

	for _, fl := range program.Fields {
		def, _ := DefVertex(fl)
		if present[def] {
			consumed[def] = true
			out.Fields = append(out.Fields, fl)
		}
	}

	for _, d := range program.Domains {
		included := false
		var fns []*ast.DomainFunc
		for _, fn := range d.Functions {
			v := DomainFunctionVertex(fn.Name)
			if present[v] {
				consumed[v] = true
				fns = append(fns, fn)
				included = true
			}
		}

		var axs []*ast.DomainAxiom
		for _, ax := range d.Axioms {
			v := DomainAxiomVertex(d.Name, ax.ID)
			if present[v] {
				consumed[v] = true
				axs = append(axs, ax)
				included = true
			}
		}

		if !included {
			for v, ok := range present {
				if ok && v.Kind == DomainType && v.Domain == d.Name {
					included = true

					break
				}
			}
		}

		if included {
			out.Domains = append(out.Domains, &ast.Domain{Name: d.Name, Functions: fns, Axioms: axs})
		}
	}

	for v, ok := range present {
		if !ok || v.Kind == Always || v.Kind == DomainType {
			continue
		}
		if !consumed[v] {
			return nil, ErrMissingReference
		}
	}

	return out, nil
}
