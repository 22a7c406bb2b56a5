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

/*
Package streamexpr compiles the scalar expressions of planned filter and project
nodes once and evaluates them against many rows.

A planner hands over a rel.Filter or rel.Project whose expressions are rex trees of
literals, input references and operator calls. New compiles them into an Executor:

	age := rex.NewInputRef(0, types.Integer)
	cond := rex.NewCall(rex.Op("AND"), types.Boolean,
		rex.NewCall(rex.Op(">"), types.Boolean, age, rex.NewLiteral(types.Integer, 18)),
		rex.NewCall(rex.Op("IS NOT NULL"), types.Boolean, age))

	ex, err := streamexpr.New(rel.NewFilter(cond))
	if err != nil {
		// arity, type and unsupported construct errors surface here
	}
	ok, err := ex.Matches(types.NewRow(types.NewInteger(25)))

Evaluation follows SQL three-valued logic. NULL propagates through scalar
functions, AND/OR short-circuit and CASE evaluates only the branch it selects.
Data-dependent failures such as division by zero are returned per row as
*expr.Error values that can be classified with errors.Is:

	if errors.Is(err, expr.ErrDivisionByZero) { ... }

User-defined functions are registered in a functions.FunctionRegistry, either as
Go closures (functions.RegisterCustomFunction) or as expr-lang programs
(functions.RegisterExprFunction), and referenced with rex.UDF.

An Executor holds no mutable state and is safe for concurrent use.
*/
package streamexpr
