package functions

import (
	"fmt"

	"github.com/rulego/streamexpr/types"
)

// BaseFunction carries the metadata shared by every function implementation.
type BaseFunction struct {
	name        string
	fnType      FunctionType
	category    string
	description string
	signature   Signature
}

// NewBaseFunction creates the metadata of a function
func NewBaseFunction(name string, fnType FunctionType, category, description string, sig Signature) *BaseFunction {
	return &BaseFunction{
		name:        name,
		fnType:      fnType,
		category:    category,
		description: description,
		signature:   sig,
	}
}

func (bf *BaseFunction) GetName() string {
	return bf.name
}

func (bf *BaseFunction) GetType() FunctionType {
	return bf.fnType
}

func (bf *BaseFunction) GetCategory() string {
	return bf.category
}

func (bf *BaseFunction) GetDescription() string {
	return bf.description
}

func (bf *BaseFunction) Signature() Signature {
	return bf.signature
}

// Validate checks argument types against the declared signature.
func (bf *BaseFunction) Validate(argTypes []types.SQLType) error {
	if err := bf.signature.Check(argTypes); err != nil {
		return fmt.Errorf("function %s %s", bf.name, err)
	}
	return nil
}

// anyNil reports whether a NULL argument was passed. Built-in functions return
// NULL for NULL input.
func anyNil(args []interface{}) bool {
	for _, a := range args {
		if a == nil {
			return true
		}
	}
	return false
}
