// Package tree declares a binary tree sum type and measures tree depth by
// structural matching.
package tree

import (
	"fmt"

	"martianoff/sumtypes/adt"
)

// Tree is the declared sum type together with its constructors.
type Tree struct {
	Sum   *adt.SumType
	Empty *adt.Constructor
	Leaf  *adt.Constructor
	Node  *adt.Constructor
}

// Declare materializes
//
//	Tree = Empty() | Leaf(int) | Node(left Tree, right Tree)
func Declare() (*Tree, error) {
	sum, err := adt.DeclareFlat("Tree", nil, func(d *adt.FlatDecl) {
		d.Ctor("Empty")
		d.Ctor("Leaf", adt.Pos(d.Ref("int")))
		d.Ctor("Node", adt.Named("left", d.Ref("Tree")), adt.Named("right", d.Ref("Tree")))
	})
	if err != nil {
		return nil, fmt.Errorf("declaring Tree: %w", err)
	}
	return &Tree{
		Sum:   sum,
		Empty: sum.MustConstructor("Empty"),
		Leaf:  sum.MustConstructor("Leaf"),
		Node:  sum.MustConstructor("Node"),
	}, nil
}

// Depth counts the Node levels above the deepest subtree: Empty and Leaf
// have depth 0, a Node one more than its deeper child.
func (t *Tree) Depth(v any) (int, error) {
	return adt.Match(v,
		adt.On(adt.Is(t.Empty), func(adt.Bindings) (int, error) {
			return 0, nil
		}),
		adt.On(adt.Is(t.Leaf, adt.Wild()), func(adt.Bindings) (int, error) {
			return 0, nil
		}),
		adt.On(adt.Is(t.Node, adt.Capture("left"), adt.Capture("right")), func(b adt.Bindings) (int, error) {
			l, err := t.Depth(b.Get("left"))
			if err != nil {
				return 0, err
			}
			r, err := t.Depth(b.Get("right"))
			if err != nil {
				return 0, err
			}
			return 1 + max(l, r), nil
		}),
	)
}

// Sample builds Node(Empty(), Node(Leaf(1), Leaf(2))).
func (t *Tree) Sample() *adt.Instance {
	return t.Node.MustNew(t.Empty.MustNew(), t.Node.MustNew(t.Leaf.MustNew(1), t.Leaf.MustNew(2)))
}

// Balanced builds a complete tree with the given number of levels, counting
// the leaves as a level, whose leaves are numbered left to right from 1. Its
// depth is levels-1.
func (t *Tree) Balanced(levels int) *adt.Instance {
	next := 0
	var build func(d int) *adt.Instance
	build = func(d int) *adt.Instance {
		switch {
		case d <= 0:
			return t.Empty.MustNew()
		case d == 1:
			next++
			return t.Leaf.MustNew(next)
		}
		left := build(d - 1)
		return t.Node.MustNew(left, build(d-1))
	}
	return build(levels)
}
