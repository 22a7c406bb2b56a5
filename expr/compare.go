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

// NewComparison builds =, <>, >, >=, < or <= over two comparable operands.
func NewComparison(op Op, typ types.SQLType, operands ...Expression) (*ScalarCall, error) {
	var test func(cmp int) bool
	switch op {
	case OpEquals:
		test = func(cmp int) bool { return cmp == 0 }
	case OpNotEquals:
		test = func(cmp int) bool { return cmp != 0 }
	case OpGreaterThan:
		test = func(cmp int) bool { return cmp > 0 }
	case OpGreaterThanOrEqual:
		test = func(cmp int) bool { return cmp >= 0 }
	case OpLessThan:
		test = func(cmp int) bool { return cmp < 0 }
	case OpLessThanOrEqual:
		test = func(cmp int) bool { return cmp <= 0 }
	default:
		return nil, typeError(op, "not a comparison")
	}
	if len(operands) != 2 {
		return nil, arityError(op, "2 operands", len(operands))
	}
	if typ != types.Boolean {
		return nil, typeError(op, "declared type %s, want BOOLEAN", typ)
	}
	l, r := operands[0].Type(), operands[1].Type()
	if !types.Comparable(l, r) {
		return nil, typeError(op, "cannot compare %s with %s", l, r)
	}
	return newScalarCall(op, typ, operands, func(args []types.Value) (types.Value, error) {
		cmp, err := types.Compare(args[0], args[1])
		if err != nil {
			return types.Value{}, WrapError(ErrSchemaMismatch, op.String(), err, "incomparable operands")
		}
		return types.NewBoolean(test(cmp)), nil
	}), nil
}
