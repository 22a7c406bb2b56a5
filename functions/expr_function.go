package functions

import (
	"fmt"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/rulego/streamexpr/types"
	"github.com/shopspring/decimal"
)

// ExprFunction is a function whose body is an expr-lang program over named
// parameters, for example "a * b + 1". The program is compiled once against the
// parameter types and shared by every invocation.
type ExprFunction struct {
	*BaseFunction
	params  []string
	source  string
	program *vm.Program
}

// NewExprFunction compiles body with one variable per entry of params, typed by
// the matching entry of sig.Params. Variadic signatures are not supported.
func NewExprFunction(name, description string, params []string, sig Signature, body string) (*ExprFunction, error) {
	if sig.Variadic {
		return nil, fmt.Errorf("function %s: expression bodies cannot be variadic", name)
	}
	if len(params) != len(sig.Params) {
		return nil, fmt.Errorf("function %s: %d parameter names for %d parameter types", name, len(params), len(sig.Params))
	}
	env := make(map[string]interface{}, len(params))
	for i, p := range params {
		if _, dup := env[p]; dup {
			return nil, fmt.Errorf("function %s: duplicate parameter %s", name, p)
		}
		env[p] = zeroOf(sig.Params[i])
	}
	opts := []expr.Option{expr.Env(env)}
	if sig.Return == types.Boolean {
		opts = append(opts, expr.AsBool())
	}
	program, err := expr.Compile(body, opts...)
	if err != nil {
		return nil, fmt.Errorf("function %s: compile %q: %w", name, body, err)
	}
	return &ExprFunction{
		BaseFunction: NewBaseFunction(name, TypeCustom, "expression", description, sig),
		params:       params,
		source:       body,
		program:      program,
	}, nil
}

// Source returns the expression body.
func (f *ExprFunction) Source() string {
	return f.source
}

func (f *ExprFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	if len(args) != len(f.params) {
		return nil, fmt.Errorf("function %s expects %d arguments, got %d", f.GetName(), len(f.params), len(args))
	}
	if anyNil(args) {
		return nil, nil
	}
	env := make(map[string]interface{}, len(args))
	for i, p := range f.params {
		env[p] = exprArg(args[i])
	}
	return expr.Run(f.program, env)
}

// RegisterExprFunction compiles and registers an expression function in the default registry.
func RegisterExprFunction(name, description string, params []string, sig Signature, body string) error {
	fn, err := NewExprFunction(name, description, params, sig, body)
	if err != nil {
		return err
	}
	return Register(fn)
}

func zeroOf(t types.SQLType) interface{} {
	switch {
	case t == types.Boolean:
		return false
	case t.IsExactInteger():
		return int64(0)
	case t.IsApproximate(), t == types.Decimal:
		return float64(0)
	case t.IsCharacter(), t == types.Symbol:
		return ""
	case t.IsDateTime():
		return time.Time{}
	}
	return nil
}

// exprArg maps payloads expr-lang has no operators for onto ones it has.
func exprArg(v interface{}) interface{} {
	if d, ok := v.(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return v
}
