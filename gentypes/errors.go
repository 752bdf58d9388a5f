package gentypes

import (
	"fmt"

	"golang.org/x/xerrors"
)

// InternalError is thrown for a broken invariant of this package itself,
// e.g. reading a TypeVariable's bounds before Freeze. A caller should never
// need to recover from one; it indicates a bug in this package or in a
// DeclarationProvider that violates its contract.
type InternalError interface {
	error
	IsInternalError()
}

// InvalidArgumentError is returned or panicked with when an operation is
// given a Type or Element instance that was not produced by this package,
// or a value that is otherwise structurally invalid (an empty Intersection,
// an out-of-range primitive or none kind, an unboxedType call on a
// non-boxed Declared).
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.Message)
}

func (*InvalidArgumentError) IsUserError() {}

func newInvalidArgument(format string, args ...any) *InvalidArgumentError {
	return &InvalidArgumentError{Message: fmt.Sprintf(format, args...)}
}

// MissingOperandError is returned when a required input was absent and the
// operation does not document null/zero tolerance.
type MissingOperandError struct {
	Operand string
}

func (e *MissingOperandError) Error() string {
	return fmt.Sprintf("missing operand: %s", e.Operand)
}

func (*MissingOperandError) IsUserError() {}

func newMissingOperand(operand string) *MissingOperandError {
	return &MissingOperandError{Operand: operand}
}

// IllegalStateError indicates a TypeVariable's bounds were read before being
// frozen, or frozen twice. This is always a programming error, never a
// consequence of bad user input, so operations panic with this type rather
// than returning it.
type IllegalStateError struct {
	Message string
}

func (e *IllegalStateError) Error() string {
	return fmt.Sprintf("illegal state: %s", e.Message)
}

func (*IllegalStateError) IsInternalError() {}

func newIllegalState(format string, args ...any) *IllegalStateError {
	return &IllegalStateError{Message: fmt.Sprintf(format, args...)}
}

// UnsupportedError indicates a declaration referenced a method or
// constructor type parameter (this package models class-level generics
// only), or that an operation outside this package's scope was invoked
// (subsignature, direct supertype enumeration, assignability, member-of).
type UnsupportedError struct {
	Operation string
	Cause     error
}

func (e *UnsupportedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("unsupported: %s: %s", e.Operation, e.Cause.Error())
	}
	return fmt.Sprintf("unsupported: %s", e.Operation)
}

func (e *UnsupportedError) Unwrap() error {
	return e.Cause
}

func (*UnsupportedError) IsUserError() {}

func newUnsupported(operation string) *UnsupportedError {
	return &UnsupportedError{Operation: operation}
}

// wrapf produces an error that satisfies errors.Is/As against cause via
// xerrors, following runtime/errors.MemoryError's Unwrap pattern. Used for
// the "should be unreachable" internal errors this package panics with,
// so a recovered panic value still exposes the underlying cause.
func wrapf(cause error, format string, args ...any) error {
	return xerrors.Errorf(format+": %w", append(args, cause)...)
}
