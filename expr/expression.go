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
	"math"
	"strconv"
	"strings"

	"github.com/rulego/streamexpr/types"
)

// Expression is an immutable compiled expression node. Evaluate is a pure function
// of the node and the row, except for clock reads by CURRENT_* and LOCAL* calls.
// Expressions may be evaluated concurrently.
type Expression interface {
	// Type returns the declared result type.
	Type() types.SQLType
	// Evaluate computes the value of the expression for row.
	Evaluate(row *types.Row) (types.Value, error)
	String() string
}

// Call is an Expression applying an operator to operands.
type Call interface {
	Expression
	Op() Op
	// Operands returns a copy of the operand list.
	Operands() []Expression
}

// Literal is a constant fixed at compile time.
type Literal struct {
	value types.Value
}

func NewLiteral(v types.Value) *Literal {
	return &Literal{value: v}
}

func (l *Literal) Type() types.SQLType { return l.value.Type() }

// Value returns the constant.
func (l *Literal) Value() types.Value { return l.value }

func (l *Literal) Evaluate(*types.Row) (types.Value, error) {
	return l.value, nil
}

func (l *Literal) String() string {
	if l.value.Type().IsCharacter() && !l.value.IsNull() {
		return "'" + l.value.String() + "'"
	}
	return l.value.String()
}

// FieldRef reads the input field at a zero-based index.
type FieldRef struct {
	index int
	typ   types.SQLType
}

func NewFieldRef(index int, typ types.SQLType) *FieldRef {
	return &FieldRef{index: index, typ: typ}
}

func (f *FieldRef) Type() types.SQLType { return f.typ }

func (f *FieldRef) Index() int { return f.index }

// Evaluate returns the field unchanged. A missing field or a value of another type
// is an ErrSchemaMismatch.
func (f *FieldRef) Evaluate(row *types.Row) (types.Value, error) {
	v, ok := row.Get(f.index)
	if !ok {
		return types.Value{}, NewError(ErrSchemaMismatch, f.String(), "row has %d fields", row.Len())
	}
	if v.Type() != f.typ {
		return types.Value{}, NewError(ErrSchemaMismatch, f.String(), "expected %s, row holds %s", f.typ, v.Type())
	}
	return v, nil
}

func (f *FieldRef) String() string {
	return "$" + strconv.Itoa(f.index)
}

// call holds the parts shared by operator nodes.
type call struct {
	op       Op
	typ      types.SQLType
	operands []Expression
}

func (c *call) Op() Op              { return c.op }
func (c *call) Type() types.SQLType { return c.typ }

func (c *call) Operands() []Expression {
	ops := make([]Expression, len(c.operands))
	copy(ops, c.operands)
	return ops
}

func (c *call) String() string {
	return formatCall(c.op.String(), c.operands)
}

func formatCall(name string, operands []Expression) string {
	parts := make([]string, len(operands))
	for i, o := range operands {
		parts[i] = o.String()
	}
	return name + "(" + strings.Join(parts, ", ") + ")"
}

func newCall(op Op, typ types.SQLType, operands []Expression) call {
	ops := make([]Expression, len(operands))
	copy(ops, operands)
	return call{op: op, typ: typ, operands: ops}
}

// ScalarCall is a null-propagating operator: all operands are evaluated, and when
// any of them is NULL the result is NULL of the declared type without running the
// operator itself.
type ScalarCall struct {
	call
	fn scalarFunc
}

type scalarFunc func(args []types.Value) (types.Value, error)

func newScalarCall(op Op, typ types.SQLType, operands []Expression, fn scalarFunc) *ScalarCall {
	return &ScalarCall{call: newCall(op, typ, operands), fn: fn}
}

func (c *ScalarCall) Evaluate(row *types.Row) (types.Value, error) {
	args := make([]types.Value, len(c.operands))
	hasNull := false
	for i, o := range c.operands {
		v, err := o.Evaluate(row)
		if err != nil {
			return types.Value{}, err
		}
		hasNull = hasNull || v.IsNull()
		args[i] = v
	}
	if hasNull {
		return types.Null(c.typ), nil
	}
	return c.fn(args)
}

func operandTypes(operands []Expression) []types.SQLType {
	ts := make([]types.SQLType, len(operands))
	for i, o := range operands {
		ts[i] = o.Type()
	}
	return ts
}

// narrow converts a computed value to the declared type of op.
func narrow(op Op, typ types.SQLType, v types.Value) (types.Value, error) {
	out, err := v.CastTo(typ)
	if err != nil {
		return types.Value{}, WrapError(ErrNumericOverflow, op.String(), err, "result %s does not fit %s", v, typ)
	}
	return out, nil
}

// finite reports whether v has a DECIMAL representation. Only NaN and infinite
// approximate values do not.
func finite(v types.Value) bool {
	if !v.Type().IsApproximate() {
		return true
	}
	f := v.Float64()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
