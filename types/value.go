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

package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rulego/streamexpr/utils/cast"
	"github.com/shopspring/decimal"
)

const (
	DateLayout      = "2006-01-02"
	TimeLayout      = "15:04:05"
	TimestampLayout = "2006-01-02 15:04:05.000"
)

// epoch is the date part TIME values are anchored to.
var epoch = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

// Value is a scalar tagged with its declared SQL type. A NULL value keeps its type.
//
// Payloads by type family:
//   - BOOLEAN: bool
//   - TINYINT, SMALLINT, INTEGER, BIGINT: int64
//   - FLOAT, DOUBLE: float64
//   - DECIMAL: decimal.Decimal
//   - CHAR, VARCHAR, SYMBOL: string
//   - DATE, TIME, TIMESTAMP: time.Time in UTC
//
// The zero Value is a NULL BOOLEAN.
type Value struct {
	typ     SQLType
	notNull bool
	v       interface{}
}

// Null returns the NULL value of type t.
func Null(t SQLType) Value {
	return Value{typ: t}
}

// NewBoolean returns a non-NULL BOOLEAN.
func NewBoolean(b bool) Value {
	return Value{typ: Boolean, notNull: true, v: b}
}

// NewBigInt returns a non-NULL BIGINT.
func NewBigInt(i int64) Value {
	return Value{typ: BigInt, notNull: true, v: i}
}

// NewInteger returns a non-NULL INTEGER.
func NewInteger(i int32) Value {
	return Value{typ: Integer, notNull: true, v: int64(i)}
}

// NewDouble returns a non-NULL DOUBLE.
func NewDouble(f float64) Value {
	return Value{typ: Double, notNull: true, v: f}
}

// NewDecimal returns a non-NULL DECIMAL.
func NewDecimal(d decimal.Decimal) Value {
	return Value{typ: Decimal, notNull: true, v: d}
}

// NewVarchar returns a non-NULL VARCHAR.
func NewVarchar(s string) Value {
	return Value{typ: Varchar, notNull: true, v: s}
}

// NewChar returns a non-NULL CHAR.
func NewChar(s string) Value {
	return Value{typ: Char, notNull: true, v: s}
}

// NewSymbol returns a planner flag literal. Symbols are upper-cased.
func NewSymbol(s string) Value {
	return Value{typ: Symbol, notNull: true, v: strings.ToUpper(s)}
}

// NewDate returns the DATE holding the calendar date of t in its own location.
func NewDate(t time.Time) Value {
	return Value{typ: Date, notNull: true, v: dateOf(t)}
}

// NewTime returns the TIME holding the wall clock of t in its own location.
func NewTime(t time.Time) Value {
	return Value{typ: Time, notNull: true, v: timeOfDay(t)}
}

// NewTimestamp returns a TIMESTAMP for the instant t.
func NewTimestamp(t time.Time) Value {
	return Value{typ: Timestamp, notNull: true, v: t.UTC()}
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func timeOfDay(t time.Time) time.Time {
	h, m, s := t.Clock()
	return time.Date(1970, 1, 1, h, m, s, t.Nanosecond(), time.UTC)
}

// NewValue converts raw into a value of type t. A nil raw yields NULL of t.
// Integers are range-checked against the declared width. DATE accepts epoch days,
// TIME accepts milliseconds of the day and TIMESTAMP accepts epoch milliseconds when
// given as integers.
func NewValue(t SQLType, raw interface{}) (Value, error) {
	if raw == nil {
		return Null(t), nil
	}
	if v, ok := raw.(Value); ok {
		return v.CastTo(t)
	}
	switch {
	case t == Boolean:
		b, err := cast.ToBoolE(raw)
		if err != nil {
			return Value{}, err
		}
		return NewBoolean(b), nil
	case t.IsExactInteger():
		i, err := cast.ToInt64E(raw)
		if err != nil {
			return Value{}, err
		}
		return newInt(t, i)
	case t == Float:
		f, err := cast.ToFloat64E(raw)
		if err != nil {
			return Value{}, err
		}
		return Value{typ: Float, notNull: true, v: float64(float32(f))}, nil
	case t == Double:
		f, err := cast.ToFloat64E(raw)
		if err != nil {
			return Value{}, err
		}
		return NewDouble(f), nil
	case t == Decimal:
		d, err := cast.ToDecimalE(raw)
		if err != nil {
			return Value{}, err
		}
		return NewDecimal(d), nil
	case t == Char || t == Varchar:
		s, err := cast.ToStringE(raw)
		if err != nil {
			return Value{}, err
		}
		return Value{typ: t, notNull: true, v: s}, nil
	case t == Symbol:
		s, err := cast.ToStringE(raw)
		if err != nil {
			return Value{}, err
		}
		return NewSymbol(s), nil
	case t.IsDateTime():
		return newDateTime(t, raw)
	}
	return Value{}, fmt.Errorf("cannot build a value of type %s", t)
}

// MustValue is like NewValue but panics on error. Intended for tests and constants.
func MustValue(t SQLType, raw interface{}) Value {
	v, err := NewValue(t, raw)
	if err != nil {
		panic(err)
	}
	return v
}

func newInt(t SQLType, i int64) (Value, error) {
	var lo, hi int64
	switch t {
	case TinyInt:
		lo, hi = math.MinInt8, math.MaxInt8
	case SmallInt:
		lo, hi = math.MinInt16, math.MaxInt16
	case Integer:
		lo, hi = math.MinInt32, math.MaxInt32
	default:
		lo, hi = math.MinInt64, math.MaxInt64
	}
	if i < lo || i > hi {
		return Value{}, fmt.Errorf("value %d out of range for %s", i, t)
	}
	return Value{typ: t, notNull: true, v: i}, nil
}

func newDateTime(t SQLType, raw interface{}) (Value, error) {
	var ts time.Time
	switch v := raw.(type) {
	case time.Time:
		ts = v
	case *time.Time:
		if v == nil {
			return Null(t), nil
		}
		ts = *v
	case int, int32, int64:
		n, err := cast.ToInt64E(v)
		if err != nil {
			return Value{}, err
		}
		switch t {
		case Date:
			ts = epoch.AddDate(0, 0, int(n))
		case Time:
			ts = epoch.Add(time.Duration(n) * time.Millisecond)
		default:
			ts = time.UnixMilli(n)
		}
	case string:
		parsed, err := parseDateTime(t, v)
		if err != nil {
			return Value{}, err
		}
		ts = parsed
	default:
		parsed, err := cast.ToTimeE(raw)
		if err != nil {
			return Value{}, err
		}
		ts = parsed
	}
	switch t {
	case Date:
		return NewDate(ts), nil
	case Time:
		return NewTime(ts), nil
	}
	return NewTimestamp(ts), nil
}

func parseDateTime(t SQLType, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t == Time {
		for _, layout := range []string{"15:04:05.999999999", "15:04:05", "15:04"} {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed, nil
			}
		}
	}
	for _, layout := range []string{DateLayout, TimestampLayout, "2006-01-02 15:04:05"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, nil
		}
	}
	return cast.ToTimeE(s)
}

// Type returns the declared type of v.
func (v Value) Type() SQLType {
	return v.typ
}

// IsNull reports whether v is NULL.
func (v Value) IsNull() bool {
	return !v.notNull
}

// Bool returns the BOOLEAN payload, or false.
func (v Value) Bool() bool {
	b, _ := v.v.(bool)
	return b
}

// Int64 returns the integer payload, or 0.
func (v Value) Int64() int64 {
	i, _ := v.v.(int64)
	return i
}

// Float64 returns the floating point payload, or 0.
func (v Value) Float64() float64 {
	f, _ := v.v.(float64)
	return f
}

// Decimal returns the DECIMAL payload, or zero.
func (v Value) Decimal() decimal.Decimal {
	d, _ := v.v.(decimal.Decimal)
	return d
}

// Str returns the character or symbol payload, or "".
func (v Value) Str() string {
	s, _ := v.v.(string)
	return s
}

// Time returns the date/time payload, or the zero time.
func (v Value) Time() time.Time {
	t, _ := v.v.(time.Time)
	return t
}

// Interface returns the raw payload, nil for NULL.
func (v Value) Interface() interface{} {
	if v.IsNull() {
		return nil
	}
	return v.v
}

// AsInt64 widens or truncates any numeric payload to int64.
func (v Value) AsInt64() int64 {
	switch x := v.v.(type) {
	case int64:
		return x
	case float64:
		return int64(x)
	case decimal.Decimal:
		return x.IntPart()
	}
	return 0
}

// AsFloat64 converts any numeric payload to float64.
func (v Value) AsFloat64() float64 {
	switch x := v.v.(type) {
	case int64:
		return float64(x)
	case float64:
		return x
	case decimal.Decimal:
		return x.InexactFloat64()
	}
	return 0
}

// AsDecimal converts any numeric payload to an exact decimal.
func (v Value) AsDecimal() decimal.Decimal {
	switch x := v.v.(type) {
	case int64:
		return decimal.NewFromInt(x)
	case float64:
		return decimal.NewFromFloat(x)
	case decimal.Decimal:
		return x
	}
	return decimal.Zero
}

// CastTo converts v to type t. NULL stays NULL with the new type.
func (v Value) CastTo(t SQLType) (Value, error) {
	if v.typ == t {
		return v, nil
	}
	if v.IsNull() {
		return Null(t), nil
	}
	switch {
	case t.IsExactInteger() && v.typ.IsApproximate():
		f := v.Float64()
		if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt64 || f < math.MinInt64 {
			return Value{}, fmt.Errorf("value %v out of range for %s", f, t)
		}
		return newInt(t, int64(f))
	case t.IsExactInteger() && v.typ == Decimal:
		return NewValue(t, v.Decimal().Truncate(0))
	case v.typ == Date && t == Timestamp:
		return NewTimestamp(v.Time()), nil
	case v.typ == Timestamp && t == Date:
		return NewDate(v.Time()), nil
	case v.typ == Timestamp && t == Time:
		return NewTime(v.Time()), nil
	case t.IsCharacter():
		return Value{typ: t, notNull: true, v: v.String()}, nil
	}
	return NewValue(t, v.v)
}

// Equal reports whether a and b have the same type, nullness and payload.
func (v Value) Equal(o Value) bool {
	if v.typ != o.typ || v.IsNull() != o.IsNull() {
		return false
	}
	if v.IsNull() {
		return true
	}
	switch x := v.v.(type) {
	case decimal.Decimal:
		return x.Equal(o.Decimal())
	case time.Time:
		return x.Equal(o.Time())
	}
	return v.v == o.v
}

// String renders v as SQL-ish text. NULL renders as "NULL".
func (v Value) String() string {
	if v.IsNull() {
		return "NULL"
	}
	switch x := v.v.(type) {
	case bool:
		if x {
			return "TRUE"
		}
		return "FALSE"
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case decimal.Decimal:
		return x.String()
	case string:
		return x
	case time.Time:
		switch v.typ {
		case Date:
			return x.Format(DateLayout)
		case Time:
			return x.Format(TimeLayout)
		}
		return x.Format(TimestampLayout)
	}
	return fmt.Sprintf("%v", v.v)
}
