package adt

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// String renders i as its constructor name followed by the field values in
// declared order, e.g. Node(Leaf(1), Empty()).
func (i *Instance) String() string {
	var sb strings.Builder
	writeValue(&sb, i, false)
	return sb.String()
}

// Format implements fmt.Formatter. %v and %s render like String; %+v also
// shows the names of named fields, e.g. Assign(name="x", value=Number(10)).
func (i *Instance) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		var sb strings.Builder
		writeValue(&sb, i, f.Flag('+'))
		io.WriteString(f, sb.String())
	case 'q':
		io.WriteString(f, strconv.Quote(i.String()))
	default:
		fmt.Fprintf(f, "%%!%c(adt.Instance=%s)", verb, i.String())
	}
}

func writeValue(sb *strings.Builder, v any, named bool) {
	switch v := v.(type) {
	case *Instance:
		if v == nil {
			sb.WriteString("<nil>")
			return
		}
		sb.WriteString(v.ctor.name)
		sb.WriteByte('(')
		for n := 0; n < v.Len(); n++ {
			if n > 0 {
				sb.WriteString(", ")
			}
			if named && !v.ctor.positional {
				sb.WriteString(v.ctor.fields[n].Name)
				sb.WriteByte('=')
			}
			writeValue(sb, v.At(n), named)
		}
		sb.WriteByte(')')
	case List:
		sb.WriteByte('[')
		v.Range(func(n int, e any) bool {
			if n > 0 {
				sb.WriteString(", ")
			}
			writeValue(sb, e, named)
			return true
		})
		sb.WriteByte(']')
	case string:
		sb.WriteString(strconv.Quote(v))
	default:
		fmt.Fprint(sb, v)
	}
}
