// Package adterr defines the errors reported while declaring, constructing
// and matching algebraic data types.
package adterr

import (
	"fmt"
	"strings"
)

// ErrorType defines the category of the error.
type ErrorType string

const (
	TypeDuplicateConstructor    ErrorType = "DuplicateConstructor"
	TypeAmbiguousFieldForm      ErrorType = "AmbiguousFieldForm"
	TypeConstructorAlreadyBound ErrorType = "ConstructorAlreadyBound"
	TypeDuplicateField          ErrorType = "DuplicateField"
	TypeInvalidName             ErrorType = "InvalidName"
	TypeEmptyCategory           ErrorType = "EmptyCategory"
	TypeUnresolvedType          ErrorType = "UnresolvedType"
	TypeArityMismatch           ErrorType = "ArityMismatch"
	TypeUnknownField            ErrorType = "UnknownField"
	TypeFieldTypeMismatch       ErrorType = "FieldTypeMismatch"
	TypeInvalidPattern          ErrorType = "InvalidPattern"
	TypeNoMatchingCase          ErrorType = "NoMatchingCase"
)

// Error is the interface for all ADT errors.
type Error interface {
	error
	Type() ErrorType
}

// BaseError provides common fields for ADT errors.
type BaseError struct {
	Msg     string
	ErrType ErrorType
}

func (e *BaseError) Error() string {
	return fmt.Sprintf("[%s] %s", e.ErrType, e.Msg)
}

func (e *BaseError) Type() ErrorType {
	return e.ErrType
}

// DeclarationError is raised while a grouping construct is being captured.
// The SumType it belongs to is never produced.
type DeclarationError struct {
	BaseError
	SumType string
	Name    string
}

func (e *DeclarationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.ErrType, e.SumType, e.Msg)
}

// UnresolvedTypeError reports a field type that no tier of the resolver could bind.
type UnresolvedTypeError struct {
	BaseError
	SumType     string
	Name        string
	Constructor string
}

func (e *UnresolvedTypeError) Error() string {
	return fmt.Sprintf("[%s] %s.%s: unresolved type %q", e.ErrType, e.SumType, e.Constructor, e.Name)
}

// ConstructionError is raised by a construction call. The constructor is left intact.
type ConstructionError struct {
	BaseError
	Constructor string
	Field       string
}

func (e *ConstructionError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s.%s: %s", e.ErrType, e.Constructor, e.Field, e.Msg)
	}
	return fmt.Sprintf("[%s] %s: %s", e.ErrType, e.Constructor, e.Msg)
}

// ArityError reports a construction call with the wrong number of values.
type ArityError struct {
	BaseError
	Constructor string
	Want        int
	Got         int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("[%s] %s takes %d field(s), got %d", e.ErrType, e.Constructor, e.Want, e.Got)
}

// NoMatchError carries the value that no case accepted.
type NoMatchError struct {
	BaseError
	Value any
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("[%s] no case matched %v", e.ErrType, e.Value)
}

// MultiError collects multiple ADT errors.
type MultiError struct {
	Errors []error
}

func (m *MultiError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d error(s) occurred:\n", len(m.Errors)))
	for _, err := range m.Errors {
		sb.WriteString(fmt.Sprintf("- %v\n", err))
	}
	return sb.String()
}

func (m *MultiError) Type() ErrorType {
	if len(m.Errors) > 0 {
		if ae, ok := m.Errors[0].(Error); ok {
			return ae.Type()
		}
	}
	return "MultiError"
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (m *MultiError) Unwrap() []error {
	return m.Errors
}

// Is reports whether err, or any error it wraps, is an ADT error of type t.
// The whole chain is searched, including every branch of joined errors.
func Is(err error, t ErrorType) bool {
	if err == nil {
		return false
	}
	if ae, ok := err.(Error); ok && ae.Type() == t {
		if _, multi := ae.(*MultiError); !multi {
			return true
		}
	}
	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			if Is(e, t) {
				return true
			}
		}
	case interface{ Unwrap() error }:
		return Is(u.Unwrap(), t)
	}
	return false
}

// NewDeclarationError creates a DeclarationError.
func NewDeclarationError(t ErrorType, sumType, name, msg string) *DeclarationError {
	return &DeclarationError{
		BaseError: BaseError{
			Msg:     msg,
			ErrType: t,
		},
		SumType: sumType,
		Name:    name,
	}
}

// NewUnresolvedTypeError creates an UnresolvedTypeError.
func NewUnresolvedTypeError(sumType, name, constructor string) *UnresolvedTypeError {
	return &UnresolvedTypeError{
		BaseError: BaseError{
			Msg:     fmt.Sprintf("type %q is not declared in %s or any enclosing scope", name, sumType),
			ErrType: TypeUnresolvedType,
		},
		SumType:     sumType,
		Name:        name,
		Constructor: constructor,
	}
}

// NewConstructionError creates a ConstructionError.
func NewConstructionError(t ErrorType, constructor, field, msg string) *ConstructionError {
	return &ConstructionError{
		BaseError: BaseError{
			Msg:     msg,
			ErrType: t,
		},
		Constructor: constructor,
		Field:       field,
	}
}

// NewArityError creates an ArityError.
func NewArityError(constructor string, want, got int) *ArityError {
	return &ArityError{
		BaseError: BaseError{
			Msg:     fmt.Sprintf("expected %d field(s), got %d", want, got),
			ErrType: TypeArityMismatch,
		},
		Constructor: constructor,
		Want:        want,
		Got:         got,
	}
}

// NewPatternError creates an InvalidPattern error.
func NewPatternError(msg string) *BaseError {
	return &BaseError{
		Msg:     msg,
		ErrType: TypeInvalidPattern,
	}
}

// NewNoMatchError creates a NoMatchingCase error for v.
func NewNoMatchError(v any) *NoMatchError {
	return &NoMatchError{
		BaseError: BaseError{
			Msg:     "no case matched",
			ErrType: TypeNoMatchingCase,
		},
		Value: v,
	}
}
