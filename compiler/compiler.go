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

package compiler

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/rulego/streamexpr/expr"
	"github.com/rulego/streamexpr/functions"
	"github.com/rulego/streamexpr/logger"
	"github.com/rulego/streamexpr/rel"
	"github.com/rulego/streamexpr/rex"
	"github.com/rulego/streamexpr/types"
	"github.com/rulego/streamexpr/utils/timex"
)

// Compiler turns planner expression trees into executable expressions.
// A Compiler holds no per-compilation state and may be shared.
type Compiler struct {
	registry *functions.FunctionRegistry
	clock    timex.Clock
	location *time.Location
	log      logger.Logger
}

// New creates a compiler. Without options it resolves user-defined functions in
// functions.Default(), reads the system clock and computes LOCAL* values in UTC.
func New(opts ...Option) *Compiler {
	c := &Compiler{
		registry: functions.Default(),
		clock:    timex.SystemClock,
		location: time.UTC,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.GetDefault()
	}
	c.log = logger.WithPrefix(c.log, "compiler")
	return c
}

// CompileRel compiles the scalar expressions of a relational node. A filter
// yields its single BOOLEAN condition, a project yields one expression per
// output column in order. Other node kinds are rejected.
func (c *Compiler) CompileRel(node rel.Node) ([]expr.Expression, error) {
	exprs, err := c.compileRel(node)
	if err != nil {
		c.log.Warn("rejected %s node: %v", relKind(node), err)
		return nil, err
	}
	c.log.Debug("compiled %s node into %d expressions", node.RelType(), len(exprs))
	return exprs, nil
}

func (c *Compiler) compileRel(node rel.Node) ([]expr.Expression, error) {
	switch n := node.(type) {
	case *rel.Filter:
		if n == nil || n.Condition == nil {
			return nil, expr.NewError(expr.ErrArity, rel.KindFilter, "missing condition")
		}
		cond, err := c.Compile(n.Condition)
		if err != nil {
			return nil, errors.Wrap(err, "filter condition")
		}
		if cond.Type() != types.Boolean {
			return nil, expr.NewError(expr.ErrTypeMismatch, rel.KindFilter,
				"condition %s has type %s, want BOOLEAN", cond, cond.Type())
		}
		return []expr.Expression{cond}, nil
	case *rel.Project:
		if n == nil || len(n.Projects) == 0 {
			return nil, expr.NewError(expr.ErrArity, rel.KindProject, "no output columns")
		}
		exprs := make([]expr.Expression, len(n.Projects))
		for i, p := range n.Projects {
			e, err := c.Compile(p)
			if err != nil {
				return nil, errors.Wrapf(err, "project column %s", n.FieldName(i))
			}
			exprs[i] = e
		}
		return exprs, nil
	}
	return nil, expr.NewError(expr.ErrUnsupportedConstruct, relKind(node), "unsupported relational node")
}

func relKind(node rel.Node) string {
	if node == nil {
		return "<nil>"
	}
	return node.RelType()
}

// Compile builds the executable form of one planner expression. Operands are
// compiled before the call that consumes them.
func (c *Compiler) Compile(node rex.Node) (expr.Expression, error) {
	switch n := node.(type) {
	case *rex.Literal:
		if n == nil {
			break
		}
		return c.compileLiteral(n)
	case *rex.InputRef:
		if n == nil {
			break
		}
		if n.Index < 0 {
			return nil, expr.NewError(expr.ErrTypeMismatch, n.String(), "negative field index")
		}
		return expr.NewFieldRef(n.Index, n.SQLType), nil
	case *rex.Call:
		if n == nil {
			break
		}
		return c.compileCall(n)
	}
	return nil, expr.NewError(expr.ErrUnsupportedConstruct, fmt.Sprintf("%T", node), "unsupported expression node")
}

func (c *Compiler) compileLiteral(l *rex.Literal) (expr.Expression, error) {
	v, err := types.NewValue(l.SQLType, normalizeLiteral(l.SQLType, l.Value))
	if err != nil {
		return nil, expr.WrapError(expr.ErrTypeMismatch, "literal", err, "cannot represent %v as %s", l.Value, l.SQLType)
	}
	return expr.NewLiteral(v), nil
}

// normalizeLiteral unwraps planner-specific literal payloads.
func normalizeLiteral(t types.SQLType, v interface{}) interface{} {
	switch x := v.(type) {
	case rex.NlsString:
		return x.Value
	case *rex.NlsString:
		if x == nil {
			return nil
		}
		return x.Value
	case rex.Calendar:
		return x.Local()
	case *rex.Calendar:
		if x == nil {
			return nil
		}
		return x.Local()
	case []byte:
		if t.IsCharacter() {
			return string(x)
		}
	case fmt.Stringer:
		if t.IsCharacter() || t == types.Symbol {
			return x.String()
		}
	}
	return v
}

func (c *Compiler) compileCall(call *rex.Call) (expr.Expression, error) {
	operands := make([]expr.Expression, len(call.Operands))
	for i, o := range call.Operands {
		e, err := c.Compile(o)
		if err != nil {
			return nil, err
		}
		operands[i] = e
	}
	if op, ok := LookupOperator(call.Operator.Name); ok {
		return builders[op](c, op, call.SQLType, operands)
	}
	if call.Operator.UserDefined {
		fn, ok := c.registry.Get(call.Operator.Name)
		if !ok {
			return nil, expr.NewError(expr.ErrUnsupportedConstruct, call.Operator.Name, "unknown function")
		}
		return built(expr.NewUdfCall(fn, call.SQLType, operands...))
	}
	return nil, expr.NewError(expr.ErrUnsupportedConstruct, call.Operator.Name, "unsupported operator")
}
