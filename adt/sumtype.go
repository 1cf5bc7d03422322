package adt

import (
	"fmt"
	"strings"

	"github.com/benbjohnson/immutable"
	"golang.org/x/exp/slices"
)

// Member is a direct member of a SumType: a *Constructor or a *Category.
type Member interface {
	Type
	Name() string
	Sum() *SumType
}

// SumType is a closed set of constructors, optionally grouped into
// categories. It is immutable once Declare returns and safe for concurrent
// use.
type SumType struct {
	name       string
	members    []Member
	ctors      []*Constructor
	categories []*Category

	// name -> *Constructor or *Category
	index *immutable.SortedMap
}

func (s *SumType) Name() string { return s.name }

func (s *SumType) TypeName() string { return s.name }

// Accepts reports whether v is an Instance of one of s's constructors.
func (s *SumType) Accepts(v any) bool {
	inst, ok := v.(*Instance)
	return ok && inst != nil && inst.ctor.sum == s
}

// Members returns the direct members in declaration order.
func (s *SumType) Members() []Member { return slices.Clone(s.members) }

// Constructors returns every constructor in declaration order, including
// those that belong to a category.
func (s *SumType) Constructors() []*Constructor { return slices.Clone(s.ctors) }

// Categories returns the categories in declaration order.
func (s *SumType) Categories() []*Category { return slices.Clone(s.categories) }

// Lookup finds a constructor or category by name.
func (s *SumType) Lookup(name string) (Type, bool) {
	v, ok := s.index.Get(name)
	if !ok {
		return nil, false
	}
	return v.(Type), true
}

// Constructor finds a constructor by name, whether or not it belongs to a
// category.
func (s *SumType) Constructor(name string) (*Constructor, bool) {
	t, ok := s.Lookup(name)
	if !ok {
		return nil, false
	}
	c, ok := t.(*Constructor)
	return c, ok
}

// MustConstructor is like Constructor but panics if name is not a
// constructor of s.
func (s *SumType) MustConstructor(name string) *Constructor {
	c, ok := s.Constructor(name)
	if !ok {
		panic(fmt.Sprintf("adt: %s has no constructor %q", s.name, name))
	}
	return c
}

// Category finds a category by name.
func (s *SumType) Category(name string) (*Category, bool) {
	t, ok := s.Lookup(name)
	if !ok {
		return nil, false
	}
	c, ok := t.(*Category)
	return c, ok
}

// String renders the structure of s, one direct member per line.
func (s *SumType) String() string {
	var sb strings.Builder
	sb.WriteString(s.name)
	for _, m := range s.members {
		sb.WriteString("\n  ")
		switch m := m.(type) {
		case *Constructor:
			sb.WriteString(m.signature())
		case *Category:
			sb.WriteString(m.name)
			sb.WriteString(" = ")
			for i, c := range m.ctors {
				if i > 0 {
					sb.WriteString(" | ")
				}
				sb.WriteString(c.signature())
			}
		}
	}
	return sb.String()
}

// Category is an intermediate super-variant whose only subtypes are its
// member constructors.
type Category struct {
	name  string
	sum   *SumType
	ctors []*Constructor
}

func (c *Category) Name() string { return c.name }

func (c *Category) TypeName() string { return c.name }

func (c *Category) Sum() *SumType { return c.sum }

// Accepts reports whether v is an Instance of one of c's constructors.
func (c *Category) Accepts(v any) bool {
	inst, ok := v.(*Instance)
	return ok && inst != nil && inst.ctor.category == c
}

// Constructors returns the members of c in the order they were grouped.
func (c *Category) Constructors() []*Constructor { return slices.Clone(c.ctors) }

// Constructor finds a member of c by name.
func (c *Category) Constructor(name string) (*Constructor, bool) {
	i := slices.IndexFunc(c.ctors, func(ctor *Constructor) bool { return ctor.name == name })
	if i < 0 {
		return nil, false
	}
	return c.ctors[i], true
}

func (c *Category) String() string { return c.sum.name + "." + c.name }

// FieldInfo describes one resolved constructor field.
type FieldInfo struct {
	Name string
	Type Type
}

// Constructor is one named variant of a SumType.
type Constructor struct {
	name       string
	sum        *SumType
	category   *Category
	fields     []FieldInfo
	positional bool
	unit       *Instance
}

func (c *Constructor) Name() string { return c.name }

func (c *Constructor) TypeName() string { return c.name }

func (c *Constructor) Sum() *SumType { return c.sum }

// Category returns the category c belongs to, or nil if c is a direct member
// of its sum type.
func (c *Constructor) Category() *Category { return c.category }

// Accepts reports whether v was built by c.
func (c *Constructor) Accepts(v any) bool {
	inst, ok := v.(*Instance)
	return ok && inst != nil && inst.ctor == c
}

// Fields returns the declared fields in order.
func (c *Constructor) Fields() []FieldInfo { return slices.Clone(c.fields) }

// Arity returns the number of declared fields.
func (c *Constructor) Arity() int { return len(c.fields) }

// Positional reports whether c was declared with positional fields. Zero-field
// constructors are positional.
func (c *Constructor) Positional() bool { return c.positional }

func (c *Constructor) fieldIndex(name string) int {
	return slices.IndexFunc(c.fields, func(f FieldInfo) bool { return f.Name == name })
}

func (c *Constructor) String() string {
	if c.category != nil {
		return c.category.String() + "." + c.name
	}
	return c.sum.name + "." + c.name
}

func (c *Constructor) signature() string {
	var sb strings.Builder
	sb.WriteString(c.name)
	sb.WriteByte('(')
	for i, f := range c.fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		if !c.positional {
			sb.WriteString(f.Name)
			sb.WriteByte(' ')
		}
		sb.WriteString(f.Type.TypeName())
	}
	sb.WriteByte(')')
	return sb.String()
}
