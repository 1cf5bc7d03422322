package adt

import (
	"fmt"
	"unicode"

	"martianoff/sumtypes/adterr"
)

// DirectName is the binding name that attaches constructors directly to the
// sum type instead of to a category.
const DirectName = "_"

// Field is one declared constructor field: positional (see Pos) or named
// (see Named).
type Field struct {
	name string
	ref  TypeRef
}

// Pos declares a positional field. Positional fields are named f0, f1, ...
func Pos(ref TypeRef) Field {
	return Field{ref: ref}
}

// Named declares a field with an explicit name.
func Named(name string, ref TypeRef) Field {
	return Field{name: name, ref: ref}
}

// Placeholder stands for a name used inside a grouping construct before its
// meaning is known. Calling it declares a constructor; otherwise it is
// resolved as a type when the declaration closes.
type Placeholder struct {
	name       string
	c          *capture
	fields     []Field
	positional bool
	called     bool
}

func (p *Placeholder) TypeName() string { return p.name }

// Call gives the placeholder its field list, declaring it as a constructor.
// All fields must be positional or all named.
func (p *Placeholder) Call(fields ...Field) *Placeholder {
	p.c.call(p, fields)
	return p
}

type categoryGroup struct {
	name    string
	members []*Placeholder
}

// capture records the binding statements of one grouping construct in order.
type capture struct {
	sum        string
	refs       map[string]*Placeholder
	ctors      []*Placeholder
	categories []*categoryGroup
	categoryOf map[*Placeholder]string
	err        error
	closed     bool
}

func newCapture(sum string) *capture {
	c := &capture{
		sum:        sum,
		refs:       make(map[string]*Placeholder),
		categoryOf: make(map[*Placeholder]string),
	}
	if !validName(sum) {
		c.fail(adterr.TypeInvalidName, sum, "invalid sum type name %q", sum)
	}
	return c
}

func (c *capture) fail(t adterr.ErrorType, name, format string, args ...any) {
	if c.err == nil {
		c.err = adterr.NewDeclarationError(t, c.sum, name, fmt.Sprintf(format, args...))
	}
}

func (c *capture) ensureOpen() {
	if c.closed {
		panic(fmt.Sprintf("adt: declaration of %s used after it was closed", c.sum))
	}
}

func (c *capture) ref(name string) *Placeholder {
	c.ensureOpen()
	if p, ok := c.refs[name]; ok {
		return p
	}
	p := &Placeholder{name: name, c: c}
	if !validName(name) {
		c.fail(adterr.TypeInvalidName, name, "invalid name %q", name)
		return p
	}
	c.refs[name] = p
	return p
}

func (c *capture) category(name string) *categoryGroup {
	for _, cat := range c.categories {
		if cat.name == name {
			return cat
		}
	}
	return nil
}

func (c *capture) call(p *Placeholder, fields []Field) {
	c.ensureOpen()
	if c.err != nil {
		return
	}
	if p.c != c {
		c.fail(adterr.TypeInvalidName, p.name, "placeholder %q belongs to the declaration of %s", p.name, p.c.sum)
		return
	}
	if p.called {
		c.fail(adterr.TypeConstructorAlreadyBound, p.name, "constructor %q already has its fields", p.name)
		return
	}
	if p.name == c.sum {
		c.fail(adterr.TypeInvalidName, p.name, "constructor %q has the name of its sum type", p.name)
		return
	}
	if c.category(p.name) != nil {
		c.fail(adterr.TypeConstructorAlreadyBound, p.name, "%q is already bound to a category", p.name)
		return
	}

	named, positional := 0, 0
	for _, f := range fields {
		if f.name == "" {
			positional++
		} else {
			named++
		}
	}
	if named > 0 && positional > 0 {
		c.fail(adterr.TypeAmbiguousFieldForm, p.name, "constructor %q mixes positional and named fields", p.name)
		return
	}

	resolved := make([]Field, len(fields))
	seen := make(map[string]bool, len(fields))
	for i, f := range fields {
		if f.ref == nil {
			c.fail(adterr.TypeInvalidName, p.name, "field %d of %q has no type", i, p.name)
			return
		}
		if f.name == "" {
			f.name = fmt.Sprintf("f%d", i)
		} else if !validName(f.name) {
			c.fail(adterr.TypeInvalidName, p.name, "invalid field name %q in %q", f.name, p.name)
			return
		}
		if seen[f.name] {
			c.fail(adterr.TypeDuplicateField, p.name, "field %q is declared twice in %q", f.name, p.name)
			return
		}
		seen[f.name] = true
		resolved[i] = f
	}

	p.fields = resolved
	p.positional = named == 0
	p.called = true
	c.ctors = append(c.ctors, p)
}

func (c *capture) bind(name string, members []*Placeholder) {
	c.ensureOpen()
	if c.err != nil {
		return
	}
	if name != DirectName {
		if !validName(name) {
			c.fail(adterr.TypeInvalidName, name, "invalid category name %q", name)
			return
		}
		if c.category(name) != nil {
			c.fail(adterr.TypeConstructorAlreadyBound, name, "category %q is already bound", name)
			return
		}
		if p, ok := c.refs[name]; ok && p.called {
			c.fail(adterr.TypeConstructorAlreadyBound, name, "%q is already bound to a constructor", name)
			return
		}
		if name == c.sum {
			c.fail(adterr.TypeConstructorAlreadyBound, name, "category %q has the name of its sum type", name)
			return
		}
	}
	if len(members) == 0 {
		c.fail(adterr.TypeEmptyCategory, name, "binding %q groups no constructors", name)
		return
	}

	for _, m := range members {
		if m == nil || m.c != c {
			c.fail(adterr.TypeInvalidName, name, "binding %q lists a placeholder from another declaration", name)
			return
		}
		if name != DirectName && m.name == name {
			c.fail(adterr.TypeConstructorAlreadyBound, name, "category %q lists a constructor of the same name", name)
			return
		}
		if owner, ok := c.categoryOf[m]; ok {
			c.fail(adterr.TypeConstructorAlreadyBound, m.name, "constructor %q already belongs to %s", m.name, owner)
			return
		}
		if !m.called {
			// A bare member declares a zero-field constructor.
			if c.call(m, nil); c.err != nil {
				return
			}
		}
		c.categoryOf[m] = name
	}
	if name != DirectName {
		c.categories = append(c.categories, &categoryGroup{name: name, members: members})
	}
}

func validName(name string) bool {
	if name == "" || name[0] == '_' {
		return false
	}
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}

// FlatDecl records the statements of a flat declaration: every constructor
// is a direct member of the sum type.
type FlatDecl struct {
	c *capture
}

// Ref returns the placeholder for name. The same placeholder is returned for
// the same name within one declaration.
func (d *FlatDecl) Ref(name string) *Placeholder {
	return d.c.ref(name)
}

// Ctor declares a constructor named name with the given fields.
func (d *FlatDecl) Ctor(name string, fields ...Field) *Placeholder {
	d.c.ensureOpen()
	if p, ok := d.c.refs[name]; ok && p.called {
		d.c.fail(adterr.TypeDuplicateConstructor, name, "constructor %q is already declared", name)
		return p
	}
	return d.c.ref(name).Call(fields...)
}

// Decl records the statements of a layered declaration, which may group
// constructors into categories.
type Decl struct {
	FlatDecl
}

// Bind records `name = m1 | m2 | ...`. With name DirectName the members
// become direct members of the sum type; otherwise they form the category
// name. Members that were never called are declared as zero-field
// constructors.
func (d *Decl) Bind(name string, members ...*Placeholder) {
	d.c.bind(name, members)
}

// Err returns the first error recorded so far, if any.
func (d *FlatDecl) Err() error {
	return d.c.err
}
