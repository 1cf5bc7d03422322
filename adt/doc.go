// Package adt declares algebraic data types at run time and deconstructs
// their values by structural pattern matching.
//
// A declaration captures binding statements inside a body function. Names
// that are not known yet are referenced through placeholders and resolved
// when the body returns, first against the declaration itself, then against
// the sum type's own name, then against the enclosing Scope:
//
//	tree, err := adt.DeclareFlat("Tree", nil, func(d *adt.FlatDecl) {
//		d.Ctor("Empty")
//		d.Ctor("Leaf", adt.Pos(d.Ref("int")))
//		d.Ctor("Node", adt.Named("left", d.Ref("Tree")), adt.Named("right", d.Ref("Tree")))
//	})
//
// The layered form (Declare) also groups constructors into categories:
//
//	d.Bind("BinOp", d.Ref("Add"), d.Ref("Sub"), d.Ref("Mul"), d.Ref("Div"))
//
// Values are built with Constructor.New and matched with Match:
//
//	depth, err := adt.Match(t,
//		adt.On(adt.Is(empty), func(adt.Bindings) (int, error) { return 0, nil }),
//		adt.On(adt.Is(leaf, adt.Wild()), func(adt.Bindings) (int, error) { return 1, nil }),
//		...
//	)
//
// Sum types, categories, constructors and instances are immutable once
// created and may be shared between goroutines without locking.
package adt
