package adt

import (
	"fmt"
	"reflect"

	"github.com/benbjohnson/immutable"
	"golang.org/x/exp/slices"

	"martianoff/sumtypes/adterr"
)

// Instance is an immutable value built by a Constructor. Instances with the
// same constructor and equal fields are Equal.
type Instance struct {
	ctor   *Constructor
	values *immutable.List
}

// New builds an Instance from positional values, one per declared field.
// Values for list fields may be Go slices; they are copied into a List.
func (c *Constructor) New(values ...any) (*Instance, error) {
	if len(values) != len(c.fields) {
		return nil, adterr.NewArityError(c.name, len(c.fields), len(values))
	}
	if c.unit != nil {
		return c.unit, nil
	}
	b := immutable.NewListBuilder(emptyList)
	for i, f := range c.fields {
		v, err := c.admit(f, values[i])
		if err != nil {
			return nil, err
		}
		b.Append(v)
	}
	return &Instance{ctor: c, values: b.List()}, nil
}

// NewNamed builds an Instance from values keyed by field name. Positional
// fields use their generated names (f0, f1, ...).
func (c *Constructor) NewNamed(values map[string]any) (*Instance, error) {
	if len(values) != len(c.fields) {
		return nil, adterr.NewArityError(c.name, len(c.fields), len(values))
	}
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if c.fieldIndex(name) < 0 {
			return nil, adterr.NewConstructionError(adterr.TypeUnknownField, c.name, "", fmt.Sprintf("no field named %q", name))
		}
	}
	ordered := make([]any, len(c.fields))
	for i, f := range c.fields {
		ordered[i] = values[f.Name]
	}
	return c.New(ordered...)
}

// MustNew is like New but panics on error. It is meant for building
// constant values whose shape is known to be right.
func (c *Constructor) MustNew(values ...any) *Instance {
	inst, err := c.New(values...)
	if err != nil {
		panic(err)
	}
	return inst
}

func (c *Constructor) admit(f FieldInfo, v any) (any, error) {
	if _, ok := f.Type.(*ListType); ok {
		v = toList(v)
	}
	if !f.Type.Accepts(v) {
		return nil, adterr.NewConstructionError(adterr.TypeFieldTypeMismatch, c.name, f.Name,
			fmt.Sprintf("expected %s, got %s", f.Type.TypeName(), describe(v)))
	}
	return v, nil
}

func describe(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case *Instance:
		if v == nil {
			return "nil"
		}
		return v.ctor.String()
	case List:
		return fmt.Sprintf("list of %d", v.Len())
	}
	return reflect.TypeOf(v).String()
}

// Constructor returns the constructor that built i.
func (i *Instance) Constructor() *Constructor { return i.ctor }

// Len returns the number of fields.
func (i *Instance) Len() int { return i.values.Len() }

// At returns the value of the field at index n. It panics if n is out of range.
func (i *Instance) At(n int) any { return i.values.Get(n) }

// Field returns the value of the named field.
func (i *Instance) Field(name string) (any, bool) {
	n := i.ctor.fieldIndex(name)
	if n < 0 {
		return nil, false
	}
	return i.values.Get(n), true
}

// Values copies the field values into a new slice, in declared order.
func (i *Instance) Values() []any {
	out := make([]any, 0, i.Len())
	iter := i.values.Iterator()
	for !iter.Done() {
		_, v := iter.Next()
		out = append(out, v)
	}
	return out
}

// Equal reports whether other is an Instance of the same constructor with
// equal field values.
func (i *Instance) Equal(other any) bool {
	o, ok := other.(*Instance)
	if !ok {
		return false
	}
	if i == nil || o == nil {
		return i == o
	}
	if i == o {
		return true
	}
	if i.ctor != o.ctor {
		return false
	}
	for n := 0; n < i.Len(); n++ {
		if !Equal(i.At(n), o.At(n)) {
			return false
		}
	}
	return true
}

// Equal compares two field values structurally: Instances by constructor and
// fields, Lists element-wise, numbers by value whatever their Go kind (so 10
// equals 10.0, as both are real), and anything else with reflect.DeepEqual.
func Equal(a, b any) bool {
	switch a := a.(type) {
	case *Instance:
		return a.Equal(b)
	case List:
		o, ok := b.(List)
		return ok && a.Equal(o)
	}
	if isNumber(a) && isNumber(b) {
		return numberEqual(reflect.ValueOf(a), reflect.ValueOf(b))
	}
	return reflect.DeepEqual(a, b)
}

func isNumber(v any) bool { return isInt(v) || isFloat(v) }

func numberEqual(a, b reflect.Value) bool {
	switch {
	case a.CanInt() && b.CanInt():
		return a.Int() == b.Int()
	case a.CanUint() && b.CanUint():
		return a.Uint() == b.Uint()
	case a.CanInt() && b.CanUint():
		return a.Int() >= 0 && uint64(a.Int()) == b.Uint()
	case a.CanUint() && b.CanInt():
		return b.Int() >= 0 && a.Uint() == uint64(b.Int())
	}
	return asFloat(a) == asFloat(b)
}

func asFloat(v reflect.Value) float64 {
	switch {
	case v.CanInt():
		return float64(v.Int())
	case v.CanUint():
		return float64(v.Uint())
	}
	return v.Float()
}
