package adt

import (
	"reflect"
	"strings"

	"github.com/benbjohnson/immutable"
)

var emptyList = immutable.NewList()

// List is a persistent list used for list-typed fields. The zero value is an
// empty list.
type List struct {
	l *immutable.List
}

// NewList creates a List holding values in order.
func NewList(values ...any) List {
	b := immutable.NewListBuilder(emptyList)
	for _, v := range values {
		b.Append(v)
	}
	return List{b.List()}
}

func (l List) Len() int {
	if l.l == nil {
		return 0
	}
	return l.l.Len()
}

// At returns the element at index i. It panics if i is out of range.
func (l List) At(i int) any { return l.l.Get(i) }

// Append returns a new List with v added; l is not modified.
func (l List) Append(v any) List {
	if l.l == nil {
		return List{emptyList.Append(v)}
	}
	return List{l.l.Append(v)}
}

// Range calls f for each element in order. If f returns false, iteration stops.
func (l List) Range(f func(int, any) bool) {
	if l.l == nil {
		return
	}
	iter := l.l.Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if !f(i, v) {
			return
		}
	}
}

// Values copies the elements into a new slice.
func (l List) Values() []any {
	out := make([]any, 0, l.Len())
	l.Range(func(_ int, v any) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Equal compares element-wise using Equal.
func (l List) Equal(other List) bool {
	if l.Len() != other.Len() {
		return false
	}
	for i := 0; i < l.Len(); i++ {
		if !Equal(l.At(i), other.At(i)) {
			return false
		}
	}
	return true
}

func (l List) String() string {
	var sb strings.Builder
	writeValue(&sb, l, false)
	return sb.String()
}

// toList copies a Go slice or array into a List. Other values are returned
// unchanged.
func toList(v any) any {
	if _, ok := v.(List); ok || v == nil {
		return v
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return v
	}
	b := immutable.NewListBuilder(emptyList)
	for i := 0; i < rv.Len(); i++ {
		b.Append(rv.Index(i).Interface())
	}
	return List{b.List()}
}
