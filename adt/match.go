package adt

import (
	"fmt"

	"golang.org/x/exp/slices"

	"martianoff/sumtypes/adterr"
)

// Pattern is a shape tested against a value by Match.
type Pattern interface {
	bind(v any, b *Bindings) bool
	check(seen map[string]bool) error
}

type wildPattern struct{}

// Wild matches any value and binds nothing.
func Wild() Pattern { return wildPattern{} }

func (wildPattern) bind(any, *Bindings) bool { return true }

func (wildPattern) check(map[string]bool) error { return nil }

type capturePattern struct {
	name string
}

// Capture matches any value and binds it to name. Capture("_") behaves like
// Wild.
func Capture(name string) Pattern {
	if name == DirectName {
		return wildPattern{}
	}
	return capturePattern{name: name}
}

func (p capturePattern) bind(v any, b *Bindings) bool {
	b.add(p.name, v)
	return true
}

func (p capturePattern) check(seen map[string]bool) error {
	return checkName(p.name, seen)
}

func checkName(name string, seen map[string]bool) error {
	if name == "" {
		return adterr.NewPatternError("capture with an empty name")
	}
	if seen[name] {
		return adterr.NewPatternError(fmt.Sprintf("name %q is captured more than once", name))
	}
	seen[name] = true
	return nil
}

type ctorPattern struct {
	ctor *Constructor
	subs []Pattern
}

// Is matches Instances built by ctor whose fields match subs in order. Fields
// beyond the last sub-pattern are not checked, so Is(ctor) only tests the
// constructor.
func Is(ctor *Constructor, subs ...Pattern) Pattern {
	return ctorPattern{ctor: ctor, subs: subs}
}

func (p ctorPattern) bind(v any, b *Bindings) bool {
	inst, ok := v.(*Instance)
	if !ok || inst == nil || inst.ctor != p.ctor {
		return false
	}
	for i, sub := range p.subs {
		if !sub.bind(inst.At(i), b) {
			return false
		}
	}
	return true
}

func (p ctorPattern) check(seen map[string]bool) error {
	if p.ctor == nil {
		return adterr.NewPatternError("constructor pattern without a constructor")
	}
	if len(p.subs) > p.ctor.Arity() {
		return adterr.NewPatternError(fmt.Sprintf("%s takes %d field(s), pattern has %d", p.ctor.name, p.ctor.Arity(), len(p.subs)))
	}
	for _, sub := range p.subs {
		if sub == nil {
			return adterr.NewPatternError(fmt.Sprintf("nil sub-pattern in %s", p.ctor.name))
		}
		if err := sub.check(seen); err != nil {
			return err
		}
	}
	return nil
}

type typePattern struct {
	t    Type
	name string
}

// OfType matches values t accepts and binds them to name. An empty name or
// "_" binds nothing. With a Category it matches any of its members.
func OfType(t Type, name string) Pattern {
	return typePattern{t: t, name: name}
}

func (p typePattern) bind(v any, b *Bindings) bool {
	if !p.t.Accepts(v) {
		return false
	}
	if p.name != "" && p.name != DirectName {
		b.add(p.name, v)
	}
	return true
}

func (p typePattern) check(seen map[string]bool) error {
	if p.t == nil {
		return adterr.NewPatternError("type pattern without a type")
	}
	if p.name == "" || p.name == DirectName {
		return nil
	}
	return checkName(p.name, seen)
}

type litPattern struct {
	v any
}

// Lit matches values Equal to v.
func Lit(v any) Pattern { return litPattern{v: v} }

func (p litPattern) bind(v any, _ *Bindings) bool { return Equal(p.v, v) }

func (litPattern) check(map[string]bool) error { return nil }

// Validate reports whether p is well formed: constructor patterns have no
// more sub-patterns than fields and no name is captured twice.
func Validate(p Pattern) error {
	if p == nil {
		return adterr.NewPatternError("nil pattern")
	}
	return p.check(make(map[string]bool))
}

// Matches tests a single pattern. A malformed pattern never matches; use
// Validate to tell why.
func Matches(v any, p Pattern) (Bindings, bool) {
	if Validate(p) != nil {
		return Bindings{}, false
	}
	var b Bindings
	if !p.bind(v, &b) {
		return Bindings{}, false
	}
	return b, true
}

// Case is one arm of a Match.
type Case[R any] struct {
	pattern Pattern
	body    func(Bindings) (R, error)
}

// On pairs a pattern with the body run when it is the first to match.
func On[R any](p Pattern, body func(b Bindings) (R, error)) Case[R] {
	return Case[R]{pattern: p, body: body}
}

// Match evaluates cases top to bottom and returns the result of the first
// case whose pattern matches v. If none does, the error is NoMatchingCase
// carrying v. Errors returned by a body are passed through unchanged.
func Match[R any](v any, cases ...Case[R]) (R, error) {
	var zero R
	for i, c := range cases {
		if err := Validate(c.pattern); err != nil {
			return zero, fmt.Errorf("case %d: %w", i, err)
		}
		if c.body == nil {
			return zero, fmt.Errorf("case %d: %w", i, adterr.NewPatternError("case has no body"))
		}
	}
	for _, c := range cases {
		var b Bindings
		if c.pattern.bind(v, &b) {
			return c.body(b)
		}
	}
	return zero, adterr.NewNoMatchError(v)
}

// Bindings holds the values captured by a matching pattern, in pattern order.
type Bindings struct {
	names  []string
	values []any
}

func (b *Bindings) add(name string, v any) {
	b.names = append(b.names, name)
	b.values = append(b.values, v)
}

// Lookup returns the value bound to name.
func (b Bindings) Lookup(name string) (any, bool) {
	i := slices.Index(b.names, name)
	if i < 0 {
		return nil, false
	}
	return b.values[i], true
}

// Get returns the value bound to name, or nil.
func (b Bindings) Get(name string) any {
	v, _ := b.Lookup(name)
	return v
}

// Instance returns the value bound to name if it is an Instance, or nil.
func (b Bindings) Instance(name string) *Instance {
	inst, _ := b.Get(name).(*Instance)
	return inst
}

// List returns the value bound to name if it is a List, or an empty List.
func (b Bindings) List(name string) List {
	l, _ := b.Get(name).(List)
	return l
}

// Names returns the bound names in pattern order.
func (b Bindings) Names() []string { return slices.Clone(b.names) }

func (b Bindings) Len() int { return len(b.names) }
