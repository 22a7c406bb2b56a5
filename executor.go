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

package streamexpr

import (
	"time"

	"github.com/pkg/errors"

	"github.com/rulego/streamexpr/compiler"
	"github.com/rulego/streamexpr/expr"
	"github.com/rulego/streamexpr/functions"
	"github.com/rulego/streamexpr/logger"
	"github.com/rulego/streamexpr/rel"
	"github.com/rulego/streamexpr/types"
	"github.com/rulego/streamexpr/utils/timex"
)

// Executor evaluates the compiled scalar expressions of one filter or project
// node against rows. After New returns, an Executor is immutable and may be used
// from any number of goroutines.
//
// Example:
//
//	ex, err := streamexpr.New(rel.NewFilter(cond), streamexpr.WithLogLevel(logger.WARN))
//	if err != nil {
//		return err
//	}
//	ok, err := ex.Matches(types.NewRow(types.NewInteger(25)))
type Executor struct {
	kind    string
	columns []string
	exprs   []expr.Expression

	// set by options, read only during New
	log      logger.Logger
	level    *logger.Level
	registry *functions.FunctionRegistry
	clock    timex.Clock
	location *time.Location
}

// New compiles node. Every arity, type and unsupported construct error is
// reported here, never per row.
func New(node rel.Node, options ...Option) (*Executor, error) {
	e := &Executor{}
	for _, option := range options {
		option(e)
	}
	if e.log == nil {
		e.log = logger.GetDefault()
	}
	if e.level != nil {
		e.log.SetLevel(*e.level)
	}

	c := compiler.New(
		compiler.WithRegistry(e.registry),
		compiler.WithClock(e.clock),
		compiler.WithLocation(e.location),
		compiler.WithLogger(e.log),
	)
	exprs, err := c.CompileRel(node)
	if err != nil {
		return nil, errors.Wrap(err, "streamexpr: compile")
	}
	e.kind = node.RelType()
	e.exprs = exprs
	if p, ok := node.(*rel.Project); ok {
		e.columns = make([]string, len(exprs))
		for i := range exprs {
			e.columns[i] = p.FieldName(i)
		}
	}
	e.log = logger.WithPrefix(e.log, "executor")
	e.log.Debug("prepared %s executor: %v", e.kind, e.exprs)
	return e, nil
}

// Prepare is a lifecycle hook for hosts that open executors explicitly.
func (e *Executor) Prepare() error {
	return nil
}

// Close releases nothing and always succeeds. Execute keeps working after Close.
func (e *Executor) Close() error {
	return nil
}

// Kind returns the relational node kind, rel.KindFilter or rel.KindProject.
func (e *Executor) Kind() string {
	return e.kind
}

// Expressions returns the compiled expressions in output order.
func (e *Executor) Expressions() []expr.Expression {
	out := make([]expr.Expression, len(e.exprs))
	copy(out, e.exprs)
	return out
}

// Columns returns the output column names of a project executor, nil for a filter.
func (e *Executor) Columns() []string {
	if e.columns == nil {
		return nil
	}
	out := make([]string, len(e.columns))
	copy(out, e.columns)
	return out
}

// Execute evaluates every expression against row and returns one value per
// expression, in order. A filter yields a single BOOLEAN. The first failing
// expression aborts the row.
func (e *Executor) Execute(row *types.Row) ([]types.Value, error) {
	out := make([]types.Value, len(e.exprs))
	for i, x := range e.exprs {
		v, err := x.Evaluate(row)
		if err != nil {
			return nil, errors.WithMessagef(err, "streamexpr: %s expression %d", e.kind, i)
		}
		out[i] = v
	}
	return out, nil
}

// Matches evaluates a filter against row. Only TRUE keeps the row; FALSE and
// NULL both reject it.
func (e *Executor) Matches(row *types.Row) (bool, error) {
	if e.kind != rel.KindFilter {
		return false, expr.NewError(expr.ErrUnsupportedConstruct, e.kind, "Matches requires a filter executor")
	}
	v, err := e.exprs[0].Evaluate(row)
	if err != nil {
		return false, errors.WithMessage(err, "streamexpr: filter")
	}
	return !v.IsNull() && v.Bool(), nil
}
