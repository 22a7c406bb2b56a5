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
	"github.com/rulego/streamexpr/types"
)

// Logical is an n-ary AND or OR with three-valued logic. Operands are evaluated left
// to right and evaluation stops at the first operand that decides the result:
// FALSE for AND, TRUE for OR.
type Logical struct {
	call
}

func NewLogical(op Op, operands ...Expression) (*Logical, error) {
	if op != OpAnd && op != OpOr {
		return nil, typeError(op, "not a logical connective")
	}
	if len(operands) < 2 {
		return nil, arityError(op, "at least 2 operands", len(operands))
	}
	for i, o := range operands {
		if o.Type() != types.Boolean {
			return nil, typeError(op, "operand %d is %s, want BOOLEAN", i+1, o.Type())
		}
	}
	return &Logical{call: newCall(op, types.Boolean, operands)}, nil
}

func (l *Logical) Evaluate(row *types.Row) (types.Value, error) {
	// AND stops on FALSE, OR stops on TRUE.
	decisive := l.op == OpOr
	sawNull := false
	for _, o := range l.operands {
		v, err := o.Evaluate(row)
		if err != nil {
			return types.Value{}, err
		}
		if v.IsNull() {
			sawNull = true
			continue
		}
		if v.Bool() == decisive {
			return types.NewBoolean(decisive), nil
		}
	}
	if sawNull {
		return types.Null(types.Boolean), nil
	}
	return types.NewBoolean(!decisive), nil
}

// NullTest is IS NULL or IS NOT NULL. It never returns NULL.
type NullTest struct {
	call
}

func NewNullTest(op Op, operands ...Expression) (*NullTest, error) {
	if op != OpIsNull && op != OpIsNotNull {
		return nil, typeError(op, "not a null test")
	}
	if len(operands) != 1 {
		return nil, arityError(op, "1 operand", len(operands))
	}
	return &NullTest{call: newCall(op, types.Boolean, operands)}, nil
}

func (n *NullTest) Evaluate(row *types.Row) (types.Value, error) {
	v, err := n.operands[0].Evaluate(row)
	if err != nil {
		return types.Value{}, err
	}
	return types.NewBoolean(v.IsNull() == (n.op == OpIsNull)), nil
}

// Case is a searched CASE. Branches are tried in order and only the result of the
// first branch whose condition is TRUE is evaluated.
type Case struct {
	call
	whens []Expression
	thens []Expression
	els   Expression
}

// NewCase builds a CASE from the planner's flattened operand list
// [cond1, result1, cond2, result2, ..., else]. An odd count carries an ELSE.
func NewCase(typ types.SQLType, operands ...Expression) (*Case, error) {
	if len(operands) < 2 {
		return nil, arityError(OpCase, "at least one WHEN branch", len(operands))
	}
	c := &Case{call: newCall(OpCase, typ, operands)}
	n := len(operands)
	if n%2 == 1 {
		c.els = operands[n-1]
		n--
	}
	for i := 0; i < n; i += 2 {
		cond, result := operands[i], operands[i+1]
		if cond.Type() != types.Boolean {
			return nil, typeError(OpCase, "WHEN condition %d is %s, want BOOLEAN", i/2+1, cond.Type())
		}
		if !resultFits(result.Type(), typ) {
			return nil, typeError(OpCase, "THEN result %d is %s, not convertible to %s", i/2+1, result.Type(), typ)
		}
		c.whens = append(c.whens, cond)
		c.thens = append(c.thens, result)
	}
	if c.els != nil && !resultFits(c.els.Type(), typ) {
		return nil, typeError(OpCase, "ELSE result is %s, not convertible to %s", c.els.Type(), typ)
	}
	return c, nil
}

func resultFits(from, to types.SQLType) bool {
	return from.AssignableTo(to) || (from.IsNumeric() && to.IsNumeric())
}

func (c *Case) Evaluate(row *types.Row) (types.Value, error) {
	for i, cond := range c.whens {
		v, err := cond.Evaluate(row)
		if err != nil {
			return types.Value{}, err
		}
		if !v.IsNull() && v.Bool() {
			return c.result(c.thens[i], row)
		}
	}
	if c.els != nil {
		return c.result(c.els, row)
	}
	return types.Null(c.typ), nil
}

func (c *Case) result(e Expression, row *types.Row) (types.Value, error) {
	v, err := e.Evaluate(row)
	if err != nil {
		return types.Value{}, err
	}
	return narrow(OpCase, c.typ, v)
}
