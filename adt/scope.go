package adt

import "fmt"

// Scope is a lexical environment consulted for names not declared inside a
// grouping construct. Lookups walk the parent chain outward.
type Scope struct {
	parent *Scope
	names  map[string]Type
	frozen bool
}

// NewScope creates an empty scope nested in parent. A nil parent creates a
// root scope.
func NewScope(parent *Scope) *Scope {
	return &Scope{parent: parent, names: make(map[string]Type)}
}

// Define binds name to t in s and returns s. Scopes are meant to be filled
// before they are handed to Declare; defining into a frozen scope panics.
func (s *Scope) Define(name string, t Type) *Scope {
	if s.frozen {
		panic(fmt.Sprintf("adt: scope is frozen, cannot define %q", name))
	}
	s.names[name] = t
	return s
}

// Lookup finds name in s or the nearest enclosing scope.
func (s *Scope) Lookup(name string) (Type, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if t, ok := cur.names[name]; ok {
			return t, true
		}
	}
	return nil, false
}

// Parent returns the enclosing scope, or nil for a root.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Universe is the frozen root scope holding the predeclared external types.
// Extend it with NewScope(Universe).
var Universe = newUniverse()

func newUniverse() *Scope {
	s := NewScope(nil)
	s.Define("int", Int).Define("int64", Int)
	s.Define("float", Float).Define("float64", Float)
	s.Define("real", Real)
	s.Define("string", String).Define("str", String)
	s.Define("bool", Bool)
	s.Define("any", Any)
	s.frozen = true
	return s
}
