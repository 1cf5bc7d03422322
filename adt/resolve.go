package adt

import (
	"martianoff/sumtypes/adterr"
)

// resolver binds pending field types once every grouping construct of a
// DeclareAll call has been captured. Lookup order: the construct's own
// constructors and categories, the sum type names of the set (own name
// first), then the enclosing scope chain.
type resolver struct {
	scope *Scope
	sums  map[string]*SumType
}

func newResolver(scope *Scope, shells []*shell) *resolver {
	if scope == nil {
		scope = Universe
	}
	r := &resolver{scope: scope, sums: make(map[string]*SumType, len(shells))}
	for _, sh := range shells {
		r.sums[sh.sum.name] = sh.sum
	}
	return r
}

// resolveShell fills in the field types of every constructor in sh and
// returns one error per field it could not resolve.
func (r *resolver) resolveShell(sh *shell) []error {
	var errs []error
	for i, p := range sh.c.ctors {
		ctor := sh.sum.ctors[i]
		for j, f := range p.fields {
			t, missing := r.resolve(sh, f.ref)
			if t == nil {
				errs = append(errs, adterr.NewUnresolvedTypeError(sh.sum.name, missing, ctor.name))
				continue
			}
			ctor.fields[j].Type = t
		}
	}
	return errs
}

// resolve returns the type ref stands for, or nil and the name that could
// not be found.
func (r *resolver) resolve(sh *shell, ref TypeRef) (Type, string) {
	switch ref := ref.(type) {
	case *listRef:
		elem, missing := r.resolve(sh, ref.elem)
		if elem == nil {
			return nil, missing
		}
		return &ListType{Elem: elem}, ""
	case *Placeholder:
		return r.lookup(sh, ref.name)
	case Type:
		return ref, ""
	}
	return r.lookup(sh, ref.TypeName())
}

func (r *resolver) lookup(sh *shell, name string) (Type, string) {
	if t, ok := sh.symbols[name]; ok {
		return t, ""
	}
	if name == sh.sum.name {
		return sh.sum, ""
	}
	if s, ok := r.sums[name]; ok {
		return s, ""
	}
	if t, ok := r.scope.Lookup(name); ok {
		return t, ""
	}
	return nil, name
}
