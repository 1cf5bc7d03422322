package adt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"martianoff/sumtypes/adt"
)

func declareTree(t *testing.T) *adt.SumType {
	t.Helper()
	tree, err := adt.DeclareFlat("Tree", nil, func(d *adt.FlatDecl) {
		d.Ctor("Empty")
		d.Ctor("Leaf", adt.Pos(d.Ref("int")))
		d.Ctor("Node", adt.Named("left", d.Ref("Tree")), adt.Named("right", d.Ref("Tree")))
	})
	require.NoError(t, err)
	return tree
}

func declareCalc(t *testing.T) *adt.SumType {
	t.Helper()
	calc, err := adt.Declare("Calc", nil, func(d *adt.Decl) {
		d.Bind(adt.DirectName, d.Ctor("Code", adt.Named("stms", adt.ListOf(d.Ref("Stmt")))))
		d.Bind("Stmt",
			d.Ctor("Assign", adt.Named("name", d.Ref("string")), adt.Named("value", d.Ref("Expr"))),
			d.Ctor("Print", adt.Named("value", d.Ref("Expr"))),
		)
		d.Bind("Expr",
			d.Ctor("Binary", adt.Named("op", d.Ref("BinOp")), adt.Named("left", d.Ref("Expr")), adt.Named("right", d.Ref("Expr"))),
			d.Ctor("Unary", adt.Named("op", d.Ref("UnOp")), adt.Named("value", d.Ref("Expr"))),
			d.Ctor("Number", adt.Named("value", d.Ref("real"))),
			d.Ctor("Variable", adt.Named("name", d.Ref("string"))),
		)
		d.Bind("BinOp", d.Ref("Add"), d.Ref("Sub"), d.Ref("Mul"), d.Ref("Div"))
		d.Bind("UnOp", d.Ref("Pos"), d.Ref("Neg"))
	})
	require.NoError(t, err)
	return calc
}
