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
	"github.com/rulego/streamexpr/functions"
	"github.com/rulego/streamexpr/types"
)

// UdfCall invokes a registered function through the handle resolved at compile
// time. Operands are evaluated eagerly and passed as payloads, nil for NULL.
type UdfCall struct {
	call
	fn functions.Function
}

// NewUdfCall checks the operand types against fn's signature and its return type
// against typ.
func NewUdfCall(fn functions.Function, typ types.SQLType, operands ...Expression) (*UdfCall, error) {
	name := fn.GetName()
	sig := fn.Signature()
	argTypes := operandTypes(operands)
	required := len(sig.Params)
	if sig.Variadic && required > 0 {
		required--
	}
	if len(argTypes) < required || (!sig.Variadic && len(argTypes) > required) {
		return nil, NewError(ErrArity, name, "signature %s, got %d operands", sig, len(argTypes))
	}
	if err := fn.Validate(argTypes); err != nil {
		return nil, WrapError(ErrTypeMismatch, name, err, "signature %s", sig)
	}
	if sig.Return != types.Any && !sig.Return.AssignableTo(typ) && !(sig.Return.IsNumeric() && typ.IsNumeric()) {
		return nil, NewError(ErrTypeMismatch, name, "returns %s, declared %s", sig.Return, typ)
	}
	return &UdfCall{call: newCall(OpUserDefined, typ, operands), fn: fn}, nil
}

// Function returns the resolved handle.
func (u *UdfCall) Function() functions.Function { return u.fn }

func (u *UdfCall) Evaluate(row *types.Row) (types.Value, error) {
	args := make([]interface{}, len(u.operands))
	for i, o := range u.operands {
		v, err := o.Evaluate(row)
		if err != nil {
			return types.Value{}, err
		}
		args[i] = v.Interface()
	}
	raw, err := u.fn.Execute(&functions.FunctionContext{Window: row.Window()}, args)
	if err != nil {
		return types.Value{}, WrapError(ErrUdf, u.fn.GetName(), err, "invocation failed")
	}
	v, err := types.NewValue(u.typ, raw)
	if err != nil {
		return types.Value{}, WrapError(ErrUdf, u.fn.GetName(), err, "result %v is not a %s", raw, u.typ)
	}
	return v, nil
}

func (u *UdfCall) String() string {
	return formatCall(u.fn.GetName(), u.operands)
}
