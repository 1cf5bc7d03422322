package adt

import (
	"reflect"
)

// TypeRef names a field type at declaration time. A TypeRef is either an
// already resolved Type or a pending reference (a *Placeholder, or a list of
// one) that the resolver binds when the declaration closes.
type TypeRef interface {
	TypeName() string
}

// Type is a resolved field type.
type Type interface {
	TypeRef
	// Accepts reports whether v may be stored in a field of this type.
	Accepts(v any) bool
}

// ExternalType is a type defined outside any declaration, such as a Go
// numeric or string type.
type ExternalType struct {
	name   string
	accept func(any) bool
}

// External creates an ExternalType named name that admits the values accept
// returns true for.
func External(name string, accept func(v any) bool) *ExternalType {
	return &ExternalType{name: name, accept: accept}
}

// TypeFor returns an ExternalType admitting values assignable to T.
func TypeFor[T any]() *ExternalType {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	return External(rt.String(), func(v any) bool {
		if v == nil {
			switch rt.Kind() {
			case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
				return true
			}
			return false
		}
		return reflect.TypeOf(v).AssignableTo(rt)
	})
}

func (t *ExternalType) TypeName() string { return t.name }

func (t *ExternalType) Accepts(v any) bool { return t.accept(v) }

func (t *ExternalType) String() string { return t.name }

var (
	// Int admits every Go integer kind.
	Int = External("int", isInt)
	// Float admits float32 and float64.
	Float = External("float", isFloat)
	// Real admits any integer or floating point value.
	Real = External("real", func(v any) bool { return isInt(v) || isFloat(v) })
	// String admits values of string kind.
	String = External("string", func(v any) bool { return kindOf(v) == reflect.String })
	// Bool admits values of bool kind.
	Bool = External("bool", func(v any) bool { return kindOf(v) == reflect.Bool })
	// Any admits everything, including nil.
	Any = External("any", func(any) bool { return true })
)

func kindOf(v any) reflect.Kind {
	if v == nil {
		return reflect.Invalid
	}
	return reflect.TypeOf(v).Kind()
}

func isInt(v any) bool {
	switch kindOf(v) {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(v any) bool {
	k := kindOf(v)
	return k == reflect.Float32 || k == reflect.Float64
}

// ListType is a homogeneous list field type. Values are stored as List.
type ListType struct {
	Elem Type
}

func (t *ListType) TypeName() string { return "list[" + t.Elem.TypeName() + "]" }

func (t *ListType) Accepts(v any) bool {
	l, ok := v.(List)
	if !ok {
		return false
	}
	accepted := true
	l.Range(func(_ int, e any) bool {
		accepted = t.Elem.Accepts(e)
		return accepted
	})
	return accepted
}

// pending list element, resolved with the rest of the declaration
type listRef struct {
	elem TypeRef
}

func (r *listRef) TypeName() string { return "list[" + r.elem.TypeName() + "]" }

// ListOf declares a list field whose elements are of type elem. elem may be a
// pending reference.
func ListOf(elem TypeRef) TypeRef {
	if t, ok := elem.(Type); ok {
		return &ListType{Elem: t}
	}
	return &listRef{elem: elem}
}
