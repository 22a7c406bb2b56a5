/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package expr

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies compile and evaluation failures. A kind is itself an error so
// that errors.Is(err, expr.ErrDivisionByZero) matches any *Error of that kind.
type ErrorKind int

const (
	// ErrUnsupportedConstruct reports an unknown operator, relational node kind or function.
	ErrUnsupportedConstruct ErrorKind = iota + 1
	// ErrArity reports a wrong operand count.
	ErrArity
	// ErrTypeMismatch reports operand types the operator does not accept.
	ErrTypeMismatch

	// ErrDivisionByZero is raised by /, /INT and MOD with a zero divisor.
	ErrDivisionByZero
	// ErrDomain reports an argument outside a function's domain, such as SQRT(-1).
	ErrDomain
	// ErrNumericOverflow reports a result that does not fit its declared type.
	ErrNumericOverflow
	// ErrMissingWindow reports a window accessor evaluated on a row without window metadata.
	ErrMissingWindow
	// ErrSchemaMismatch reports a row that does not conform to the compiled field references.
	ErrSchemaMismatch
	// ErrUdf reports a failed user-defined function invocation.
	ErrUdf
)

var errorKindNames = map[ErrorKind]string{
	ErrUnsupportedConstruct: "UNSUPPORTED_CONSTRUCT",
	ErrArity:                "ARITY",
	ErrTypeMismatch:         "TYPE_MISMATCH",
	ErrDivisionByZero:       "DIVISION_BY_ZERO",
	ErrDomain:               "DOMAIN",
	ErrNumericOverflow:      "NUMERIC_OVERFLOW",
	ErrMissingWindow:        "MISSING_WINDOW",
	ErrSchemaMismatch:       "SCHEMA_MISMATCH",
	ErrUdf:                  "UDF",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

func (k ErrorKind) Error() string {
	return k.String()
}

// IsCompileTime reports whether k is raised while compiling.
func (k ErrorKind) IsCompileTime() bool {
	return k >= ErrUnsupportedConstruct && k <= ErrTypeMismatch
}

// Error is the error returned by compilation and evaluation.
type Error struct {
	Kind ErrorKind
	// Construct names the offending operator, function or node kind.
	Construct string
	Message   string
	Cause     error
}

// NewError creates an error of kind raised by construct.
func NewError(kind ErrorKind, construct string, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Construct: construct, Message: fmt.Sprintf(format, args...)}
}

// WrapError is NewError with an underlying cause.
func WrapError(kind ErrorKind, construct string, cause error, format string, args ...interface{}) *Error {
	e := NewError(kind, construct, format, args...)
	e.Cause = cause
	return e
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s] %s: %s", e.Kind, e.Construct, e.Message)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches a target ErrorKind.
func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsCompileError reports whether err was raised while compiling.
func IsCompileError(err error) bool {
	k, ok := KindOf(err)
	return ok && k.IsCompileTime()
}

// IsEvaluationError reports whether err was raised while evaluating a row.
func IsEvaluationError(err error) bool {
	k, ok := KindOf(err)
	return ok && !k.IsCompileTime()
}

func arityError(op Op, want string, got int) *Error {
	return NewError(ErrArity, op.String(), "expects %s, got %d", want, got)
}

func typeError(op Op, format string, args ...interface{}) *Error {
	return NewError(ErrTypeMismatch, op.String(), format, args...)
}
