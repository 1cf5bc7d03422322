package calc

import (
	"errors"
	"fmt"
	"io"
	"log"
	"reflect"
	"strconv"

	"golang.org/x/exp/slices"

	"martianoff/sumtypes/adt"
)

// ErrDivisionByZero is returned when the right operand of Div evaluates to 0.
var ErrDivisionByZero = errors.New("division by zero")

// UndefinedVariableError reports a Variable read before any Assign to it.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable %q", e.Name)
}

// Interpreter runs Calc programs. Variables persist across calls to Exec.
type Interpreter struct {
	calc *Calc
	env  map[string]float64
	out  io.Writer

	// Log, if set, receives one line per executed statement.
	Log *log.Logger
}

// NewInterpreter returns an Interpreter whose Print statements write to out.
func (c *Calc) NewInterpreter(out io.Writer) *Interpreter {
	return &Interpreter{calc: c, env: make(map[string]float64), out: out}
}

// Exec runs a Code program or a single statement.
func (in *Interpreter) Exec(v any) error {
	c := in.calc
	_, err := adt.Match(v,
		adt.On(adt.Is(c.Code, adt.Capture("stms")), func(b adt.Bindings) (struct{}, error) {
			var err error
			b.List("stms").Range(func(i int, stmt any) bool {
				if err = in.Exec(stmt); err != nil {
					err = fmt.Errorf("statement %d: %w", i+1, err)
				}
				return err == nil
			})
			return struct{}{}, err
		}),
		adt.On(adt.Is(c.Assign, adt.Capture("name"), adt.Capture("value")), func(b adt.Bindings) (struct{}, error) {
			x, err := in.Eval(b.Get("value"))
			if err != nil {
				return struct{}{}, err
			}
			name := b.Get("name").(string)
			in.env[name] = x
			in.logf("%s = %s", name, Format(x))
			return struct{}{}, nil
		}),
		adt.On(adt.Is(c.Print, adt.Capture("value")), func(b adt.Bindings) (struct{}, error) {
			x, err := in.Eval(b.Get("value"))
			if err != nil {
				return struct{}{}, err
			}
			in.logf("print %v", b.Get("value"))
			_, err = fmt.Fprintln(in.out, Format(x))
			return struct{}{}, err
		}),
	)
	return err
}

// Eval computes the value of an expression in the current environment.
func (in *Interpreter) Eval(v any) (float64, error) {
	c := in.calc
	return adt.Match(v,
		adt.On(adt.Is(c.Number, adt.Capture("value")), func(b adt.Bindings) (float64, error) {
			return toFloat(b.Get("value")), nil
		}),
		adt.On(adt.Is(c.Variable, adt.Capture("name")), func(b adt.Bindings) (float64, error) {
			name := b.Get("name").(string)
			x, ok := in.env[name]
			if !ok {
				return 0, &UndefinedVariableError{Name: name}
			}
			return x, nil
		}),
		adt.On(adt.Is(c.Unary, adt.Capture("op"), adt.Capture("value")), func(b adt.Bindings) (float64, error) {
			x, err := in.Eval(b.Get("value"))
			if err != nil {
				return 0, err
			}
			return in.unary(b.Get("op"), x)
		}),
		adt.On(adt.Is(c.Binary, adt.Capture("op"), adt.Capture("left"), adt.Capture("right")), func(b adt.Bindings) (float64, error) {
			l, err := in.Eval(b.Get("left"))
			if err != nil {
				return 0, err
			}
			r, err := in.Eval(b.Get("right"))
			if err != nil {
				return 0, err
			}
			return in.binary(b.Get("op"), l, r)
		}),
	)
}

func (in *Interpreter) unary(op any, x float64) (float64, error) {
	c := in.calc
	return adt.Match(op,
		adt.On(adt.Is(c.Pos), func(adt.Bindings) (float64, error) { return x, nil }),
		adt.On(adt.Is(c.Neg), func(adt.Bindings) (float64, error) { return -x, nil }),
	)
}

func (in *Interpreter) binary(op any, l, r float64) (float64, error) {
	c := in.calc
	return adt.Match(op,
		adt.On(adt.Is(c.Add), func(adt.Bindings) (float64, error) { return l + r, nil }),
		adt.On(adt.Is(c.Sub), func(adt.Bindings) (float64, error) { return l - r, nil }),
		adt.On(adt.Is(c.Mul), func(adt.Bindings) (float64, error) { return l * r, nil }),
		adt.On(adt.Is(c.Div), func(adt.Bindings) (float64, error) {
			if r == 0 {
				return 0, ErrDivisionByZero
			}
			return l / r, nil
		}),
	)
}

// Lookup returns the current value of a variable.
func (in *Interpreter) Lookup(name string) (float64, bool) {
	x, ok := in.env[name]
	return x, ok
}

// Vars returns the defined variable names in sorted order.
func (in *Interpreter) Vars() []string {
	names := make([]string, 0, len(in.env))
	for name := range in.env {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (in *Interpreter) logf(format string, args ...any) {
	if in.Log != nil {
		in.Log.Printf(format, args...)
	}
}

// Format renders a number the way Print does: the shortest representation
// that reads back to the same value.
func Format(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func toFloat(v any) float64 {
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return float64(rv.Int())
	case rv.CanUint():
		return float64(rv.Uint())
	case rv.CanFloat():
		return rv.Float()
	}
	return 0
}
