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

	"github.com/rulego/streamexpr/types"
	"github.com/shopspring/decimal"
)

// decimalDivisionScale is the number of fractional digits kept by DECIMAL division.
const decimalDivisionScale = 10

// NewArithmetic builds +, -, *, /, /INT or MOD. + and - also accept a single operand
// as unary plus and minus. The result is computed in the widest operand domain
// (BIGINT, then DOUBLE, then DECIMAL) and converted to the declared type.
func NewArithmetic(op Op, typ types.SQLType, operands ...Expression) (*ScalarCall, error) {
	switch op {
	case OpPlus, OpMinus:
		if len(operands) != 1 && len(operands) != 2 {
			return nil, arityError(op, "1 or 2 operands", len(operands))
		}
	case OpMultiply, OpDivide, OpIntegerDivide, OpMod:
		if len(operands) != 2 {
			return nil, arityError(op, "2 operands", len(operands))
		}
	default:
		return nil, typeError(op, "not an arithmetic operator")
	}
	if !typ.IsNumeric() {
		return nil, typeError(op, "declared type %s is not numeric", typ)
	}
	for i, o := range operands {
		if !o.Type().IsNumeric() {
			return nil, typeError(op, "operand %d is %s, want a numeric type", i+1, o.Type())
		}
	}
	if len(operands) == 1 {
		return newScalarCall(op, typ, operands, func(args []types.Value) (types.Value, error) {
			if op == OpPlus {
				return narrow(op, typ, args[0])
			}
			v, err := negate(args[0])
			if err != nil {
				return types.Value{}, err
			}
			return narrow(op, typ, v)
		}), nil
	}
	domain := types.WidestNumeric(operands[0].Type(), operands[1].Type())
	return newScalarCall(op, typ, operands, func(args []types.Value) (types.Value, error) {
		var (
			v   types.Value
			err error
		)
		switch {
		case domain == types.Decimal:
			if !finite(args[0]) || !finite(args[1]) {
				return types.Value{}, NewError(ErrDomain, op.String(), "%s %s %s has no DECIMAL value", args[0], op, args[1])
			}
			v, err = decimalArith(op, args[0].AsDecimal(), args[1].AsDecimal())
		case domain.IsApproximate():
			v, err = floatArith(op, args[0].AsFloat64(), args[1].AsFloat64())
		default:
			v, err = intArith(op, args[0].AsInt64(), args[1].AsInt64())
		}
		if err != nil {
			return types.Value{}, err
		}
		return narrow(op, typ, v)
	}), nil
}

func negate(v types.Value) (types.Value, error) {
	switch {
	case v.Type() == types.Decimal:
		return types.NewDecimal(v.Decimal().Neg()), nil
	case v.Type().IsApproximate():
		return types.NewDouble(-v.Float64()), nil
	}
	if v.Int64() == math.MinInt64 {
		return types.Value{}, NewError(ErrNumericOverflow, OpMinus.String(), "cannot negate %d", v.Int64())
	}
	return types.NewBigInt(-v.Int64()), nil
}

func intArith(op Op, a, b int64) (types.Value, error) {
	overflow := func() (types.Value, error) {
		return types.Value{}, NewError(ErrNumericOverflow, op.String(), "%d %s %d overflows BIGINT", a, op, b)
	}
	switch op {
	case OpPlus:
		s := a + b
		if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
			return overflow()
		}
		return types.NewBigInt(s), nil
	case OpMinus:
		s := a - b
		if (a >= 0 && b < 0 && s < 0) || (a < 0 && b > 0 && s >= 0) {
			return overflow()
		}
		return types.NewBigInt(s), nil
	case OpMultiply:
		if a == 0 || b == 0 {
			return types.NewBigInt(0), nil
		}
		p := a * b
		if p/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
			return overflow()
		}
		return types.NewBigInt(p), nil
	}
	if b == 0 {
		return types.Value{}, NewError(ErrDivisionByZero, op.String(), "division by zero")
	}
	if op == OpMod {
		if b == -1 {
			return types.NewBigInt(0), nil
		}
		return types.NewBigInt(a % b), nil
	}
	if a == math.MinInt64 && b == -1 {
		return overflow()
	}
	return types.NewBigInt(a / b), nil
}

func floatArith(op Op, a, b float64) (types.Value, error) {
	var r float64
	switch op {
	case OpPlus:
		r = a + b
	case OpMinus:
		r = a - b
	case OpMultiply:
		r = a * b
	default:
		if b == 0 {
			return types.Value{}, NewError(ErrDivisionByZero, op.String(), "division by zero")
		}
		switch op {
		case OpDivide:
			r = a / b
		case OpIntegerDivide:
			r = math.Trunc(a / b)
		default:
			r = math.Mod(a, b)
		}
	}
	if math.IsInf(r, 0) && !math.IsInf(a, 0) && !math.IsInf(b, 0) {
		return types.Value{}, NewError(ErrNumericOverflow, op.String(), "%v %s %v overflows DOUBLE", a, op, b)
	}
	return types.NewDouble(r), nil
}

func decimalArith(op Op, a, b decimal.Decimal) (types.Value, error) {
	switch op {
	case OpPlus:
		return types.NewDecimal(a.Add(b)), nil
	case OpMinus:
		return types.NewDecimal(a.Sub(b)), nil
	case OpMultiply:
		return types.NewDecimal(a.Mul(b)), nil
	}
	if b.IsZero() {
		return types.Value{}, NewError(ErrDivisionByZero, op.String(), "division by zero")
	}
	switch op {
	case OpDivide:
		return types.NewDecimal(a.DivRound(b, decimalDivisionScale)), nil
	case OpIntegerDivide:
		q, _ := a.QuoRem(b, 0)
		return types.NewDecimal(q), nil
	}
	return types.NewDecimal(a.Mod(b)), nil
}
