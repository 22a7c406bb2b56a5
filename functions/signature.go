package functions

import (
	"fmt"
	"strings"

	"github.com/rulego/streamexpr/types"
)

// Signature declares the SQL types a function accepts and returns. When Variadic is
// set the last parameter may repeat any number of times, including zero.
type Signature struct {
	Params   []types.SQLType
	Variadic bool
	Return   types.SQLType
}

// NewSignature is shorthand for a fixed-arity signature.
func NewSignature(ret types.SQLType, params ...types.SQLType) Signature {
	return Signature{Params: params, Return: ret}
}

// Check validates argument types against the signature.
func (s Signature) Check(argTypes []types.SQLType) error {
	if s.Variadic && len(s.Params) == 0 {
		return fmt.Errorf("variadic signature has no parameter type to repeat")
	}
	required := len(s.Params)
	if s.Variadic && required > 0 {
		required--
	}
	if len(argTypes) < required || (!s.Variadic && len(argTypes) > required) {
		return fmt.Errorf("expects %s, got %d arguments", s.arityText(), len(argTypes))
	}
	for i, at := range argTypes {
		want := s.paramAt(i)
		if !at.AssignableTo(want) {
			return fmt.Errorf("argument %d: %s is not assignable to %s", i+1, at, want)
		}
	}
	return nil
}

func (s Signature) paramAt(i int) types.SQLType {
	if i < len(s.Params) {
		return s.Params[i]
	}
	return s.Params[len(s.Params)-1]
}

func (s Signature) arityText() string {
	n := len(s.Params)
	if s.Variadic {
		return fmt.Sprintf("at least %d arguments", n-1)
	}
	return fmt.Sprintf("%d arguments", n)
}

// String renders the signature as "(VARCHAR, BIGINT...) -> VARCHAR".
func (s Signature) String() string {
	parts := make([]string, len(s.Params))
	for i, p := range s.Params {
		parts[i] = p.String()
	}
	if s.Variadic && len(parts) > 0 {
		parts[len(parts)-1] += "..."
	}
	return "(" + strings.Join(parts, ", ") + ") -> " + s.Return.String()
}
