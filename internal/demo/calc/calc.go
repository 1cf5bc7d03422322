// Package calc declares a small statement and expression language as a
// layered sum type, and evaluates its programs by structural matching.
//
//	Calc
//	  Code(stms list[Stmt])
//	  Stmt   = Assign(name string, value Expr) | Print(value Expr)
//	  Expr   = Binary(op BinOp, left Expr, right Expr) | Unary(op UnOp, value Expr)
//	         | Number(value real) | Variable(name string)
//	  BinOp  = Add | Sub | Mul | Div
//	  UnOp   = Pos | Neg
package calc

import (
	"fmt"

	"martianoff/sumtypes/adt"
)

// Calc is the declared sum type with direct handles on its members.
type Calc struct {
	Sum *adt.SumType

	Stmt  *adt.Category
	Expr  *adt.Category
	BinOp *adt.Category
	UnOp  *adt.Category

	Code     *adt.Constructor
	Assign   *adt.Constructor
	Print    *adt.Constructor
	Binary   *adt.Constructor
	Unary    *adt.Constructor
	Number   *adt.Constructor
	Variable *adt.Constructor
	Add      *adt.Constructor
	Sub      *adt.Constructor
	Mul      *adt.Constructor
	Div      *adt.Constructor
	Pos      *adt.Constructor
	Neg      *adt.Constructor
}

// Declare materializes the Calc sum type.
func Declare() (*Calc, error) {
	sum, err := adt.Declare("Calc", nil, func(d *adt.Decl) {
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
	if err != nil {
		return nil, fmt.Errorf("declaring Calc: %w", err)
	}

	c := &Calc{Sum: sum}
	c.Stmt, _ = sum.Category("Stmt")
	c.Expr, _ = sum.Category("Expr")
	c.BinOp, _ = sum.Category("BinOp")
	c.UnOp, _ = sum.Category("UnOp")
	for name, dst := range map[string]**adt.Constructor{
		"Code": &c.Code, "Assign": &c.Assign, "Print": &c.Print,
		"Binary": &c.Binary, "Unary": &c.Unary, "Number": &c.Number, "Variable": &c.Variable,
		"Add": &c.Add, "Sub": &c.Sub, "Mul": &c.Mul, "Div": &c.Div,
		"Pos": &c.Pos, "Neg": &c.Neg,
	} {
		*dst = sum.MustConstructor(name)
	}
	return c, nil
}

// Sample builds the program
//
//	x = 10
//	print x / 2
func (c *Calc) Sample() *adt.Instance {
	return c.Code.MustNew([]*adt.Instance{
		c.Assign.MustNew("x", c.Number.MustNew(10.0)),
		c.Print.MustNew(c.Binary.MustNew(c.Div.MustNew(), c.Variable.MustNew("x"), c.Number.MustNew(2.0))),
	})
}
