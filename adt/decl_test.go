package adt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"martianoff/sumtypes/adt"
	"martianoff/sumtypes/adterr"
)

func TestDeclareFlat(t *testing.T) {
	tree := declareTree(t)

	assert.Equal(t, "Tree", tree.Name())
	require.Len(t, tree.Members(), 3)
	assert.Empty(t, tree.Categories())

	var names []string
	for _, c := range tree.Constructors() {
		names = append(names, c.Name())
		assert.Same(t, tree, c.Sum())
		assert.Nil(t, c.Category())
	}
	assert.Equal(t, []string{"Empty", "Leaf", "Node"}, names)

	leaf := tree.MustConstructor("Leaf")
	assert.True(t, leaf.Positional())
	require.Len(t, leaf.Fields(), 1)
	assert.Equal(t, "f0", leaf.Fields()[0].Name)
	assert.Same(t, adt.Int, leaf.Fields()[0].Type)

	node := tree.MustConstructor("Node")
	assert.False(t, node.Positional())
	fields := node.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "left", fields[0].Name)
	assert.Equal(t, "right", fields[1].Name)
	assert.Same(t, tree, fields[0].Type)

	empty := tree.MustConstructor("Empty")
	assert.Equal(t, 0, empty.Arity())
	assert.True(t, empty.Positional())
}

func TestDeclareLayered(t *testing.T) {
	calc := declareCalc(t)

	var members []string
	for _, m := range calc.Members() {
		members = append(members, m.Name())
	}
	assert.Equal(t, []string{"Code", "Stmt", "Expr", "BinOp", "UnOp"}, members)

	binOp, ok := calc.Category("BinOp")
	require.True(t, ok)
	var ops []string
	for _, c := range binOp.Constructors() {
		ops = append(ops, c.Name())
		assert.Same(t, binOp, c.Category())
		assert.Equal(t, 0, c.Arity())
	}
	assert.Equal(t, []string{"Add", "Sub", "Mul", "Div"}, ops)

	// The narrow and the wide name resolve to the same constructor.
	narrow, ok := binOp.Constructor("Div")
	require.True(t, ok)
	wide, ok := calc.Constructor("Div")
	require.True(t, ok)
	assert.Same(t, narrow, wide)

	code := calc.MustConstructor("Code")
	assert.Nil(t, code.Category())
	listType, ok := code.Fields()[0].Type.(*adt.ListType)
	require.True(t, ok)
	stmt, _ := calc.Category("Stmt")
	assert.Same(t, stmt, listType.Elem)
	assert.Equal(t, "list[Stmt]", listType.TypeName())

	binary := calc.MustConstructor("Binary")
	expr, _ := calc.Category("Expr")
	assert.Same(t, binOp, binary.Fields()[0].Type)
	assert.Same(t, expr, binary.Fields()[1].Type)

	_, ok = calc.Constructor("Stmt")
	assert.False(t, ok, "a category is not a constructor")
	_, ok = calc.Category("Add")
	assert.False(t, ok, "a constructor is not a category")
}

func TestSumTypeString(t *testing.T) {
	calc := declareCalc(t)
	expected := `Calc
  Code(stms list[Stmt])
  Stmt = Assign(name string, value Expr) | Print(value Expr)
  Expr = Binary(op BinOp, left Expr, right Expr) | Unary(op UnOp, value Expr) | Number(value real) | Variable(name string)
  BinOp = Add() | Sub() | Mul() | Div()
  UnOp = Pos() | Neg()`
	assert.Equal(t, expected, calc.String())

	tree := declareTree(t)
	assert.Equal(t, "Tree\n  Empty()\n  Leaf(int)\n  Node(left Tree, right Tree)", tree.String())
}

func TestDeclarationErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    func(d *adt.Decl)
		errType adterr.ErrorType
	}{
		{
			name: "duplicate constructor",
			body: func(d *adt.Decl) {
				d.Ctor("Leaf", adt.Pos(d.Ref("int")))
				d.Ctor("Leaf", adt.Pos(d.Ref("string")))
			},
			errType: adterr.TypeDuplicateConstructor,
		},
		{
			name: "mixed positional and named fields",
			body: func(d *adt.Decl) {
				d.Ctor("Node", adt.Pos(d.Ref("int")), adt.Named("right", d.Ref("int")))
			},
			errType: adterr.TypeAmbiguousFieldForm,
		},
		{
			name: "placeholder called twice",
			body: func(d *adt.Decl) {
				leaf := d.Ref("Leaf")
				leaf.Call(adt.Pos(d.Ref("int")))
				leaf.Call(adt.Pos(d.Ref("int")))
			},
			errType: adterr.TypeConstructorAlreadyBound,
		},
		{
			name: "constructor in two categories",
			body: func(d *adt.Decl) {
				d.Bind("BinOp", d.Ref("Add"), d.Ref("Sub"))
				d.Bind("Other", d.Ref("Add"))
			},
			errType: adterr.TypeConstructorAlreadyBound,
		},
		{
			name: "category bound twice",
			body: func(d *adt.Decl) {
				d.Bind("BinOp", d.Ref("Add"))
				d.Bind("BinOp", d.Ref("Sub"))
			},
			errType: adterr.TypeConstructorAlreadyBound,
		},
		{
			name: "category named like a constructor",
			body: func(d *adt.Decl) {
				d.Ctor("Add")
				d.Bind("Add", d.Ref("Sub"))
			},
			errType: adterr.TypeConstructorAlreadyBound,
		},
		{
			name: "category lists a member of its own name",
			body: func(d *adt.Decl) {
				d.Bind("X", d.Ref("X"), d.Ref("Y"))
			},
			errType: adterr.TypeConstructorAlreadyBound,
		},
		{
			name: "category lists a called member of its own name",
			body: func(d *adt.Decl) {
				d.Bind("X", d.Ctor("X", adt.Pos(d.Ref("int"))))
			},
			errType: adterr.TypeConstructorAlreadyBound,
		},
		{
			name: "constructor named like a category",
			body: func(d *adt.Decl) {
				d.Bind("BinOp", d.Ref("Add"))
				d.Ctor("BinOp")
			},
			errType: adterr.TypeConstructorAlreadyBound,
		},
		{
			name: "duplicate field name",
			body: func(d *adt.Decl) {
				d.Ctor("Pair", adt.Named("a", d.Ref("int")), adt.Named("a", d.Ref("int")))
			},
			errType: adterr.TypeDuplicateField,
		},
		{
			name: "reserved name",
			body: func(d *adt.Decl) {
				d.Ctor("_hidden")
			},
			errType: adterr.TypeInvalidName,
		},
		{
			name: "constructor named like its sum type",
			body: func(d *adt.Decl) {
				d.Ctor("T")
			},
			errType: adterr.TypeInvalidName,
		},
		{
			name: "empty category",
			body: func(d *adt.Decl) {
				d.Bind("Nothing")
			},
			errType: adterr.TypeEmptyCategory,
		},
		{
			name: "unresolved field type",
			body: func(d *adt.Decl) {
				d.Ctor("Print", adt.Named("value", d.Ref("Exprr")))
			},
			errType: adterr.TypeUnresolvedType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum, err := adt.Declare("T", nil, tt.body)
			require.Error(t, err)
			assert.Nil(t, sum, "a failed declaration produces no sum type")
			assert.True(t, adterr.Is(err, tt.errType), "got %v", err)
		})
	}
}

func TestFirstDeclarationErrorWins(t *testing.T) {
	_, err := adt.Declare("T", nil, func(d *adt.Decl) {
		d.Ctor("A", adt.Pos(d.Ref("int")), adt.Named("x", d.Ref("int")))
		d.Ctor("B")
		d.Ctor("B")
	})
	require.Error(t, err)
	var declErr *adterr.DeclarationError
	require.ErrorAs(t, err, &declErr)
	assert.Equal(t, adterr.TypeAmbiguousFieldForm, declErr.Type())
	assert.Equal(t, "A", declErr.Name)
}

func TestUnresolvedTypeCarriesContext(t *testing.T) {
	_, err := adt.DeclareFlat("Tree", nil, func(d *adt.FlatDecl) {
		d.Ctor("Leaf", adt.Pos(d.Ref("Int")))
	})
	var unresolved *adterr.UnresolvedTypeError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, "Int", unresolved.Name)
	assert.Equal(t, "Leaf", unresolved.Constructor)
	assert.Equal(t, "Tree", unresolved.SumType)

	_, err = adt.DeclareFlat("Tree", nil, func(d *adt.FlatDecl) {
		d.Ctor("Leaf", adt.Pos(d.Ref("Int")))
		d.Ctor("Node", adt.Pos(adt.ListOf(d.Ref("Tre"))))
	})
	var multi *adterr.MultiError
	require.ErrorAs(t, err, &multi)
	require.Len(t, multi.Errors, 2)
	assert.Contains(t, multi.Errors[1].Error(), `Tree.Node: unresolved type "Tre"`)
}

func TestForwardReferences(t *testing.T) {
	// Stmt refers to Expr before Expr is bound; Expr refers back to Stmt.
	sum, err := adt.Declare("Lang", nil, func(d *adt.Decl) {
		d.Bind("Stmt", d.Ctor("Eval", adt.Pos(d.Ref("Expr"))))
		d.Bind("Expr", d.Ctor("Block", adt.Pos(adt.ListOf(d.Ref("Stmt")))), d.Ctor("Lit", adt.Pos(d.Ref("int"))))
	})
	require.NoError(t, err)
	expr, _ := sum.Category("Expr")
	stmt, _ := sum.Category("Stmt")
	assert.Same(t, expr, sum.MustConstructor("Eval").Fields()[0].Type)
	assert.Same(t, stmt, sum.MustConstructor("Block").Fields()[0].Type.(*adt.ListType).Elem)

	// A field may name a constructor declared later.
	sum, err = adt.DeclareFlat("Pair", nil, func(d *adt.FlatDecl) {
		d.Ctor("Wrap", adt.Pos(d.Ref("Inner")))
		d.Ctor("Inner")
	})
	require.NoError(t, err)
	assert.Same(t, sum.MustConstructor("Inner"), sum.MustConstructor("Wrap").Fields()[0].Type)
}

func TestDeclareAllMutualRecursion(t *testing.T) {
	sums, err := adt.DeclareAll(nil,
		adt.Declaration{Name: "Stmt", Body: func(d *adt.Decl) {
			d.Ctor("ExprStmt", adt.Pos(d.Ref("Expr")))
		}},
		adt.Declaration{Name: "Expr", Body: func(d *adt.Decl) {
			d.Ctor("Lambda", adt.Pos(adt.ListOf(d.Ref("Stmt"))))
			d.Ctor("Const", adt.Pos(d.Ref("int")))
		}},
	)
	require.NoError(t, err)
	require.Len(t, sums, 2)
	stmt, expr := sums[0], sums[1]
	assert.Same(t, expr, stmt.MustConstructor("ExprStmt").Fields()[0].Type)
	assert.Same(t, stmt, expr.MustConstructor("Lambda").Fields()[0].Type.(*adt.ListType).Elem)

	_, err = adt.DeclareAll(nil,
		adt.Declaration{Name: "A", Body: func(d *adt.Decl) { d.Ctor("X") }},
		adt.Declaration{Name: "A", Body: func(d *adt.Decl) { d.Ctor("Y") }},
	)
	assert.True(t, adterr.Is(err, adterr.TypeInvalidName))
}

func TestResolutionPriority(t *testing.T) {
	scope := adt.NewScope(adt.Universe)
	external := adt.External("Leaf", func(any) bool { return true })
	scope.Define("Leaf", external)
	scope.Define("Tree", adt.External("Tree", func(any) bool { return true }))

	tree, err := adt.DeclareFlat("Tree", scope, func(d *adt.FlatDecl) {
		d.Ctor("Leaf", adt.Pos(d.Ref("int")))
		d.Ctor("Box", adt.Pos(d.Ref("Leaf")), adt.Pos(d.Ref("Tree")))
	})
	require.NoError(t, err)
	box := tree.MustConstructor("Box")
	assert.Same(t, tree.MustConstructor("Leaf"), box.Fields()[0].Type, "own constructors shadow the scope")
	assert.Same(t, tree, box.Fields()[1].Type, "own sum type name shadows the scope")
}

func TestScopeChain(t *testing.T) {
	outer := adt.NewScope(adt.Universe)
	celsius := adt.TypeFor[float64]()
	outer.Define("Celsius", celsius)
	inner := adt.NewScope(outer)
	assert.Same(t, outer, inner.Parent())

	sum, err := adt.DeclareFlat("Reading", inner, func(d *adt.FlatDecl) {
		d.Ctor("Sample", adt.Named("temp", d.Ref("Celsius")), adt.Named("label", d.Ref("string")))
	})
	require.NoError(t, err)
	fields := sum.MustConstructor("Sample").Fields()
	assert.Same(t, celsius, fields[0].Type)
	assert.Same(t, adt.String, fields[1].Type)

	assert.Panics(t, func() { adt.Universe.Define("x", adt.Int) })
}

func TestResolvedTypesPassThrough(t *testing.T) {
	sum, err := adt.DeclareFlat("Box", nil, func(d *adt.FlatDecl) {
		d.Ctor("Ints", adt.Pos(adt.ListOf(adt.Int)))
		d.Ctor("Raw", adt.Pos(adt.Any))
	})
	require.NoError(t, err)
	lt := sum.MustConstructor("Ints").Fields()[0].Type.(*adt.ListType)
	assert.Same(t, adt.Int, lt.Elem)
	assert.Same(t, adt.Any, sum.MustConstructor("Raw").Fields()[0].Type)
}

func TestDeclarationsAreIndependent(t *testing.T) {
	first := declareTree(t)
	second := declareTree(t)
	assert.NotSame(t, first, second)
	assert.NotSame(t, first.MustConstructor("Leaf"), second.MustConstructor("Leaf"))

	leaf := second.MustConstructor("Leaf").MustNew(1)
	assert.False(t, first.Accepts(leaf))
	assert.True(t, second.Accepts(leaf))
}

func TestDeclUsedAfterClose(t *testing.T) {
	var escaped *adt.Decl
	_, err := adt.Declare("T", nil, func(d *adt.Decl) {
		d.Ctor("A")
		escaped = d
	})
	require.NoError(t, err)
	assert.Panics(t, func() { escaped.Ctor("B") })
	assert.Panics(t, func() { escaped.Bind("C", escaped.Ref("D")) })
}

func TestDeclErr(t *testing.T) {
	_, err := adt.Declare("T", nil, func(d *adt.Decl) {
		assert.NoError(t, d.Err())
		d.Ctor("A")
		d.Ctor("A")
		assert.True(t, adterr.Is(d.Err(), adterr.TypeDuplicateConstructor))
	})
	require.Error(t, err)
}

func TestInvalidSumTypeName(t *testing.T) {
	called := false
	_, err := adt.Declare("", nil, func(d *adt.Decl) { called = true })
	assert.True(t, adterr.Is(err, adterr.TypeInvalidName))
	assert.False(t, called)
}
