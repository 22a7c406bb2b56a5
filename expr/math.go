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

	"github.com/shopspring/decimal"

	"github.com/rulego/streamexpr/types"
)

// NewMath builds ABS(x), SQRT(x) or ROUND(x[, places]).
func NewMath(op Op, typ types.SQLType, operands ...Expression) (*ScalarCall, error) {
	switch op {
	case OpAbs, OpSqrt:
		if len(operands) != 1 {
			return nil, arityError(op, "1 operand", len(operands))
		}
	case OpRound:
		if len(operands) != 1 && len(operands) != 2 {
			return nil, arityError(op, "1 or 2 operands", len(operands))
		}
		if len(operands) == 2 && !operands[1].Type().IsExactInteger() {
			return nil, typeError(op, "places is %s, want an integer type", operands[1].Type())
		}
	default:
		return nil, typeError(op, "not a math function")
	}
	if !operands[0].Type().IsNumeric() {
		return nil, typeError(op, "operand is %s, want a numeric type", operands[0].Type())
	}
	if !typ.IsNumeric() {
		return nil, typeError(op, "declared type %s is not numeric", typ)
	}

	var fn scalarFunc
	switch op {
	case OpAbs:
		fn = func(args []types.Value) (types.Value, error) {
			x := args[0]
			switch {
			case x.Type() == types.Decimal:
				return narrow(op, typ, types.NewDecimal(x.Decimal().Abs()))
			case x.Type().IsApproximate():
				return narrow(op, typ, types.NewDouble(math.Abs(x.Float64())))
			}
			i := x.Int64()
			if i == math.MinInt64 {
				return types.Value{}, NewError(ErrNumericOverflow, op.String(), "ABS(%d) overflows BIGINT", i)
			}
			if i < 0 {
				i = -i
			}
			return narrow(op, typ, types.NewBigInt(i))
		}
	case OpSqrt:
		fn = func(args []types.Value) (types.Value, error) {
			f := args[0].AsFloat64()
			if f < 0 {
				return types.Value{}, NewError(ErrDomain, op.String(), "square root of negative number %v", f)
			}
			return narrow(op, typ, types.NewDouble(math.Sqrt(f)))
		}
	default:
		fn = func(args []types.Value) (types.Value, error) {
			places := int64(0)
			if len(args) == 2 {
				places = args[1].Int64()
			}
			x := args[0]
			if (x.Type().IsExactInteger() && places >= 0) || !finite(x) {
				return narrow(op, typ, x)
			}
			rounded := roundDecimal(x.AsDecimal(), places)
			if x.Type().IsApproximate() {
				return narrow(op, typ, types.NewDouble(rounded.InexactFloat64()))
			}
			return narrow(op, typ, types.NewDecimal(rounded))
		}
	}
	return newScalarCall(op, typ, operands, fn), nil
}

// roundDecimal rounds d half away from zero to places fractional digits. Places
// past the digits of d leave it unchanged or collapse it to zero.
func roundDecimal(d decimal.Decimal, places int64) decimal.Decimal {
	scale := -int64(d.Exponent())
	if places >= scale {
		return d
	}
	if intDigits := int64(d.NumDigits()) - scale; -places > intDigits || places < math.MinInt32 {
		return decimal.Zero
	}
	return d.Round(int32(places))
}
