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
	"time"

	"github.com/rulego/streamexpr/types"
	"github.com/rulego/streamexpr/utils/timex"
)

// defaultClockPrecision is the number of fractional second digits kept by clock
// functions called without an explicit precision.
const defaultClockPrecision = 3

// NewReinterpret changes the type of its operand without changing its meaning:
// date/time values become epoch milliseconds (TIME counts from midnight), integers
// widen, and integers become TIMESTAMP, TIME or DATE read as epoch milliseconds.
func NewReinterpret(typ types.SQLType, operands ...Expression) (*ScalarCall, error) {
	op := OpReinterpret
	if len(operands) != 1 {
		return nil, arityError(op, "1 operand", len(operands))
	}
	from := operands[0].Type()
	var fn scalarFunc
	switch {
	case from == typ:
		fn = func(args []types.Value) (types.Value, error) { return args[0], nil }
	case from.IsDateTime() && typ.IsExactInteger():
		fn = func(args []types.Value) (types.Value, error) {
			return narrow(op, typ, types.NewBigInt(args[0].Time().UnixMilli()))
		}
	case from.IsExactInteger() && typ.IsExactInteger() && from.AssignableTo(typ):
		fn = func(args []types.Value) (types.Value, error) { return narrow(op, typ, args[0]) }
	case from.IsExactInteger() && typ.IsDateTime():
		fn = func(args []types.Value) (types.Value, error) {
			return types.NewValue(typ, time.UnixMilli(args[0].Int64()).UTC())
		}
	default:
		return nil, typeError(op, "cannot reinterpret %s as %s", from, typ)
	}
	return newScalarCall(op, typ, operands, fn), nil
}

// NewCeilFloor builds CEIL or FLOOR. With two operands it aligns a date/time value
// to a time unit symbol (YEAR through MILLISECOND). With one numeric operand it rounds
// to an integral value.
func NewCeilFloor(op Op, typ types.SQLType, operands ...Expression) (*ScalarCall, error) {
	if op != OpCeil && op != OpFloor {
		return nil, typeError(op, "not CEIL or FLOOR")
	}
	switch len(operands) {
	case 1:
		return newNumericCeilFloor(op, typ, operands)
	case 2:
	default:
		return nil, arityError(op, "1 or 2 operands", len(operands))
	}
	if !operands[0].Type().IsDateTime() {
		return nil, typeError(op, "operand 1 is %s, want a date/time type", operands[0].Type())
	}
	if !typ.IsDateTime() {
		return nil, typeError(op, "declared type %s, want a date/time type", typ)
	}
	unit, err := unitOperand(op, operands[1])
	if err != nil {
		return nil, err
	}
	if !unit.CanAlign() {
		return nil, typeError(op, "cannot align to %s", unit)
	}
	align := timex.Floor
	if op == OpCeil {
		align = timex.Ceil
	}
	return newScalarCall(op, typ, operands, func(args []types.Value) (types.Value, error) {
		t, err := align(args[0].Time(), unit)
		if err != nil {
			return types.Value{}, WrapError(ErrDomain, op.String(), err, "align %s", args[0])
		}
		return types.NewValue(typ, t)
	}), nil
}

func newNumericCeilFloor(op Op, typ types.SQLType, operands []Expression) (*ScalarCall, error) {
	if !operands[0].Type().IsNumeric() {
		return nil, typeError(op, "operand is %s, want a numeric type", operands[0].Type())
	}
	if !typ.IsNumeric() {
		return nil, typeError(op, "declared type %s is not numeric", typ)
	}
	return newScalarCall(op, typ, operands, func(args []types.Value) (types.Value, error) {
		x := args[0]
		switch {
		case x.Type() == types.Decimal:
			if op == OpCeil {
				return narrow(op, typ, types.NewDecimal(x.Decimal().Ceil()))
			}
			return narrow(op, typ, types.NewDecimal(x.Decimal().Floor()))
		case x.Type().IsApproximate():
			if op == OpCeil {
				return narrow(op, typ, types.NewDouble(math.Ceil(x.Float64())))
			}
			return narrow(op, typ, types.NewDouble(math.Floor(x.Float64())))
		}
		return narrow(op, typ, x)
	}), nil
}

// NewExtract builds EXTRACT(unit, value). value is a date/time or BIGINT epoch
// milliseconds.
func NewExtract(typ types.SQLType, operands ...Expression) (*ScalarCall, error) {
	op := OpExtract
	if len(operands) != 2 {
		return nil, arityError(op, "2 operands", len(operands))
	}
	unit, err := unitOperand(op, operands[0])
	if err != nil {
		return nil, err
	}
	from := operands[1].Type()
	if !from.IsDateTime() && !from.IsExactInteger() {
		return nil, typeError(op, "operand 2 is %s, want a date/time or epoch milliseconds", from)
	}
	if !typ.IsExactInteger() {
		return nil, typeError(op, "declared type %s, want an integer type", typ)
	}
	return newScalarCall(op, typ, operands, func(args []types.Value) (types.Value, error) {
		var t time.Time
		if args[1].Type().IsDateTime() {
			t = args[1].Time()
		} else {
			t = time.UnixMilli(args[1].Int64()).UTC()
		}
		n, err := timex.Extract(t, unit)
		if err != nil {
			return types.Value{}, WrapError(ErrDomain, op.String(), err, "extract %s", unit)
		}
		return narrow(op, typ, types.NewBigInt(n))
	}), nil
}

// unitOperand reads a time unit from a SYMBOL literal.
func unitOperand(op Op, e Expression) (timex.TimeUnit, error) {
	lit, ok := e.(*Literal)
	if !ok || lit.Type() != types.Symbol || lit.Value().IsNull() {
		return 0, typeError(op, "time unit must be a SYMBOL literal, got %s", e)
	}
	unit, err := timex.ParseTimeUnit(lit.Value().Str())
	if err != nil {
		return 0, WrapError(ErrTypeMismatch, op.String(), err, "invalid time unit")
	}
	return unit, nil
}

// ClockCall reads the clock: CURRENT_DATE, CURRENT_TIME and CURRENT_TIMESTAMP in
// UTC, LOCALTIME and LOCALTIMESTAMP as wall clock time in the session location.
type ClockCall struct {
	call
	clock     timex.Clock
	loc       *time.Location
	precision int
}

// NewClockCall builds a clock read. LOCALTIME and LOCALTIMESTAMP accept an optional
// integer literal precision (0 to 9 fractional second digits). A nil clock reads
// the system clock and a nil location means UTC.
func NewClockCall(op Op, typ types.SQLType, clock timex.Clock, loc *time.Location, operands ...Expression) (*ClockCall, error) {
	var want []types.SQLType
	switch op {
	case OpLocalTime:
		want = []types.SQLType{types.Time}
	case OpLocalTimestamp:
		want = []types.SQLType{types.Timestamp}
	case OpCurrentTime, OpCurrentTimestamp:
		want = []types.SQLType{types.Time, types.Timestamp}
	case OpCurrentDate:
		want = []types.SQLType{types.Date}
	default:
		return nil, typeError(op, "not a clock function")
	}
	if !containsType(want, typ) {
		return nil, typeError(op, "declared type %s is not supported", typ)
	}
	precision := defaultClockPrecision
	switch {
	case len(operands) == 0:
	case len(operands) == 1 && (op == OpLocalTime || op == OpLocalTimestamp):
		lit, ok := operands[0].(*Literal)
		if !ok || !lit.Type().IsExactInteger() || lit.Value().IsNull() {
			return nil, typeError(op, "precision must be an integer literal, got %s", operands[0])
		}
		p := lit.Value().Int64()
		if p < 0 || p > 9 {
			return nil, typeError(op, "precision %d out of range 0..9", p)
		}
		precision = int(p)
	case op == OpLocalTime || op == OpLocalTimestamp:
		return nil, arityError(op, "0 or 1 operands", len(operands))
	default:
		return nil, arityError(op, "0 operands", len(operands))
	}
	if clock == nil {
		clock = timex.SystemClock
	}
	if loc == nil {
		loc = time.UTC
	}
	return &ClockCall{call: newCall(op, typ, operands), clock: clock, loc: loc, precision: precision}, nil
}

func (c *ClockCall) Evaluate(*types.Row) (types.Value, error) {
	now := c.clock.Now()
	var wall time.Time
	if c.op == OpLocalTime || c.op == OpLocalTimestamp {
		w := now.In(c.loc)
		wall = time.Date(w.Year(), w.Month(), w.Day(), w.Hour(), w.Minute(), w.Second(), w.Nanosecond(), time.UTC)
	} else {
		wall = now.UTC()
	}
	return types.NewValue(c.typ, timex.TruncatePrecision(wall, c.precision))
}

func containsType(ts []types.SQLType, t types.SQLType) bool {
	for _, x := range ts {
		if x == t {
			return true
		}
	}
	return false
}
