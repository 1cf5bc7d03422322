package adt

import (
	"martianoff/sumtypes/adterr"
)

// Declaration pairs a sum type name with the body that captures its binding
// statements. It is used with DeclareAll.
type Declaration struct {
	Name string
	Body func(d *Decl)
}

// Declare opens a layered grouping construct named name, runs body to
// capture its statements, and on close resolves every field type and
// materializes the sum type. Names not declared in body are looked up in
// scope; a nil scope means Universe.
//
// Declaration is atomic: on any error no SumType is returned.
func Declare(name string, scope *Scope, body func(d *Decl)) (*SumType, error) {
	sums, err := DeclareAll(scope, Declaration{Name: name, Body: body})
	if err != nil {
		return nil, err
	}
	return sums[0], nil
}

// DeclareFlat is like Declare for the flat form, where every constructor is
// a direct member of the sum type.
func DeclareFlat(name string, scope *Scope, body func(d *FlatDecl)) (*SumType, error) {
	c := newCapture(name)
	if body != nil && c.err == nil {
		body(&FlatDecl{c: c})
	}
	c.closed = true
	if c.err != nil {
		return nil, c.err
	}
	sums, err := materialize(scope, []*capture{c})
	if err != nil {
		return nil, err
	}
	return sums[0], nil
}

// DeclareAll declares several layered sum types together. Besides their own
// members, the declarations may reference each other by sum type name, so
// mutually recursive types need no particular order. The result has one
// SumType per declaration, in order.
func DeclareAll(scope *Scope, decls ...Declaration) ([]*SumType, error) {
	captures := make([]*capture, 0, len(decls))
	seen := make(map[string]bool, len(decls))
	for _, decl := range decls {
		c := newCapture(decl.Name)
		if seen[decl.Name] {
			c.fail(adterr.TypeInvalidName, decl.Name, "sum type %q is declared twice", decl.Name)
		}
		seen[decl.Name] = true
		if decl.Body != nil && c.err == nil {
			decl.Body(&Decl{FlatDecl{c: c}})
		}
		c.closed = true
		if c.err != nil {
			return nil, c.err
		}
		captures = append(captures, c)
	}
	return materialize(scope, captures)
}
