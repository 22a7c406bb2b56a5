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

// Package compiler translates planner expression trees (package rex) attached to
// filter and project nodes (package rel) into executable expressions (package expr).
//
// Built-in operators are resolved through a closed table keyed by the planner's
// token. Calls marked user-defined fall back to a functions.FunctionRegistry,
// with the signature checked once at compile time:
//
//	c := compiler.New(compiler.WithRegistry(reg))
//	exprs, err := c.CompileRel(rel.NewFilter(cond))
//
// All arity and type checking happens here, so a compiled expression only fails
// at evaluation time for data-dependent reasons.
package compiler
