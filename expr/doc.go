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
Package expr holds compiled scalar expressions and their evaluation.

An Expression is an immutable tree built bottom-up by the compiler. Leaves are
Literal and FieldRef. Inner nodes are operator calls identified by the closed Op
enum, a searched Case, window accessors and UdfCall.

Evaluation follows SQL semantics:

  - AND and OR use three-valued logic and stop at the first deciding operand.
  - Comparison, arithmetic, math, string and date/time operators propagate NULL:
    any NULL operand yields NULL of the declared type.
  - IS NULL and IS NOT NULL never return NULL.
  - CASE evaluates only the result of the first branch whose condition is TRUE.
  - Window accessors read the window attached to the row, not its columns.

Every failure is an *Error. Its Kind tells compile-time misuse (ErrArity,
ErrTypeMismatch, ErrUnsupportedConstruct) from data errors raised while evaluating
a row (ErrDivisionByZero, ErrDomain, ErrNumericOverflow, ErrMissingWindow,
ErrSchemaMismatch, ErrUdf):

	if errors.Is(err, expr.ErrDivisionByZero) {
		// drop the row
	}
*/
package expr
