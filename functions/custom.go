package functions

import "fmt"

// Executor is the body of a CustomFunction.
type Executor func(ctx *FunctionContext, args []interface{}) (interface{}, error)

// CustomFunction wraps a Go closure as a Function
type CustomFunction struct {
	*BaseFunction
	executor Executor
}

// NewCustomFunction wraps executor. It fails when executor is nil or the
// signature is variadic without a parameter type.
func NewCustomFunction(name string, fnType FunctionType, category, description string, sig Signature, executor Executor) (*CustomFunction, error) {
	if executor == nil {
		return nil, fmt.Errorf("function %s has no executor", name)
	}
	if sig.Variadic && len(sig.Params) == 0 {
		return nil, fmt.Errorf("function %s: variadic signature has no parameter type to repeat", name)
	}
	return &CustomFunction{
		BaseFunction: NewBaseFunction(name, fnType, category, description, sig),
		executor:     executor,
	}, nil
}

func (f *CustomFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return f.executor(ctx, args)
}

// RegisterCustomFunction registers a Go closure in the default registry
func RegisterCustomFunction(name string, fnType FunctionType, category, description string, sig Signature, executor Executor) error {
	fn, err := NewCustomFunction(name, fnType, category, description, sig, executor)
	if err != nil {
		return err
	}
	return Register(fn)
}
