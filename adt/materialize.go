package adt

import (
	"github.com/benbjohnson/immutable"

	"martianoff/sumtypes/adterr"
)

// shell is a sum type whose constructors exist but whose field types are not
// yet resolved. Shells never escape a failed declaration.
type shell struct {
	c       *capture
	sum     *SumType
	symbols map[string]Type
}

func newShell(c *capture) *shell {
	sh := &shell{
		c:       c,
		sum:     &SumType{name: c.sum},
		symbols: make(map[string]Type, len(c.ctors)+len(c.categories)),
	}

	categories := make(map[string]*Category, len(c.categories))
	for _, g := range c.categories {
		cat := &Category{name: g.name, sum: sh.sum}
		categories[g.name] = cat
		sh.sum.categories = append(sh.sum.categories, cat)
		sh.symbols[g.name] = cat
	}

	ctorOf := make(map[*Placeholder]*Constructor, len(c.ctors))
	for _, p := range c.ctors {
		ctor := &Constructor{
			name:       p.name,
			sum:        sh.sum,
			positional: p.positional,
			fields:     make([]FieldInfo, len(p.fields)),
		}
		for i, f := range p.fields {
			ctor.fields[i].Name = f.name
		}
		if owner, ok := c.categoryOf[p]; ok && owner != DirectName {
			ctor.category = categories[owner]
		}
		ctorOf[p] = ctor
		sh.sum.ctors = append(sh.sum.ctors, ctor)
		sh.symbols[p.name] = ctor
	}

	for _, g := range c.categories {
		cat := categories[g.name]
		for _, m := range g.members {
			cat.ctors = append(cat.ctors, ctorOf[m])
		}
	}
	return sh
}

// seal finishes a resolved shell: direct members in declaration order, the
// name index and zero-field singletons.
func (sh *shell) seal() *SumType {
	s := sh.sum
	emitted := make(map[*Category]bool, len(s.categories))
	b := immutable.NewSortedMapBuilder(immutable.NewSortedMap(nil))
	for _, ctor := range s.ctors {
		b.Set(ctor.name, ctor)
		if ctor.Arity() == 0 {
			ctor.unit = &Instance{ctor: ctor, values: emptyList}
		}
		if ctor.category == nil {
			s.members = append(s.members, ctor)
		} else if !emitted[ctor.category] {
			emitted[ctor.category] = true
			s.members = append(s.members, ctor.category)
		}
	}
	for _, cat := range s.categories {
		b.Set(cat.name, cat)
	}
	s.index = b.Map()
	return s
}

func materialize(scope *Scope, captures []*capture) ([]*SumType, error) {
	shells := make([]*shell, len(captures))
	for i, c := range captures {
		shells[i] = newShell(c)
	}

	r := newResolver(scope, shells)
	var errs []error
	for _, sh := range shells {
		errs = append(errs, r.resolveShell(sh)...)
	}
	switch len(errs) {
	case 0:
	case 1:
		return nil, errs[0]
	default:
		return nil, &adterr.MultiError{Errors: errs}
	}

	sums := make([]*SumType, len(shells))
	for i, sh := range shells {
		sums[i] = sh.seal()
	}
	return sums, nil
}
