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
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNullKeepsType 测试NULL值保留声明类型
func TestNullKeepsType(t *testing.T) {
	for _, typ := range []SQLType{Boolean, TinyInt, Integer, BigInt, Double, Decimal, Varchar, Date, Timestamp} {
		v, err := NewValue(typ, nil)
		require.NoError(t, err)
		assert.True(t, v.IsNull(), typ.String())
		assert.Equal(t, typ, v.Type())
		assert.Nil(t, v.Interface())
		assert.Equal(t, "NULL", v.String())
	}
	assert.True(t, Value{}.IsNull())
	assert.Equal(t, Boolean, Value{}.Type())
}

func TestNewValue(t *testing.T) {
	tests := []struct {
		name    string
		typ     SQLType
		raw     interface{}
		want    Value
		wantErr bool
	}{
		{"bool from bool", Boolean, true, NewBoolean(true), false},
		{"bool from string", Boolean, "false", NewBoolean(false), false},
		{"integer from int", Integer, 42, NewInteger(42), false},
		{"bigint from string", BigInt, "123", NewBigInt(123), false},
		{"tinyint overflow", TinyInt, 300, Value{}, true},
		{"integer overflow", Integer, int64(1) << 40, Value{}, true},
		{"integer from fractional decimal", Integer, decimal.RequireFromString("1.5"), Value{}, true},
		{"bigint from fractional float", BigInt, 1.9, Value{}, true},
		{"bigint from whole float", BigInt, 4.0, NewBigInt(4), false},
		{"double from int", Double, 3, NewDouble(3), false},
		{"double from decimal", Double, decimal.RequireFromString("2.5"), NewDouble(2.5), false},
		{"decimal from string", Decimal, "10.25", NewDecimal(decimal.RequireFromString("10.25")), false},
		{"decimal from float", Decimal, 0.1, NewDecimal(decimal.RequireFromString("0.1")), false},
		{"decimal from garbage", Decimal, "abc", Value{}, true},
		{"varchar from bytes", Varchar, []byte("ada"), NewVarchar("ada"), false},
		{"char from int", Char, 7, NewChar("7"), false},
		{"symbol upper-cased", Symbol, "leading", NewSymbol("LEADING"), false},
		{"date from string", Date, "2024-03-05", NewDate(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)), false},
		{"date from epoch days", Date, 1, NewDate(time.Date(1970, 1, 2, 0, 0, 0, 0, time.UTC)), false},
		{"time from string", Time, "12:30:15", NewTime(time.Date(0, 1, 1, 12, 30, 15, 0, time.UTC)), false},
		{"time from millis of day", Time, int64(3600000), NewTime(time.Date(1970, 1, 1, 1, 0, 0, 0, time.UTC)), false},
		{"timestamp from millis", Timestamp, int64(1000), NewTimestamp(time.Unix(1, 0)), false},
		{"timestamp from string", Timestamp, "2024-01-02 03:04:05", NewTimestamp(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)), false},
		{"any is not constructible", Any, 1, Value{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewValue(tt.typ, tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s(%s), got %s(%s)", tt.want.Type(), tt.want, got.Type(), got)
		})
	}
}

// TestNewValueDeterministic 相同输入总是得到相同的值
func TestNewValueDeterministic(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	in := time.Date(2024, 6, 30, 22, 0, 0, 0, loc)
	a := MustValue(Date, in)
	b := MustValue(Date, in)
	assert.True(t, a.Equal(b))
	assert.Equal(t, "2024-06-30", a.String())
}

func TestCastTo(t *testing.T) {
	v, err := NewDouble(3.9).CastTo(Integer)
	require.NoError(t, err)
	assert.True(t, NewInteger(3).Equal(v))

	v, err = NewDecimal(decimal.RequireFromString("-7.8")).CastTo(BigInt)
	require.NoError(t, err)
	assert.True(t, NewBigInt(-7).Equal(v))

	v, err = Null(Integer).CastTo(Varchar)
	require.NoError(t, err)
	assert.True(t, v.IsNull())
	assert.Equal(t, Varchar, v.Type())

	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	v, err = NewTimestamp(ts).CastTo(Date)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", v.String())

	v, err = NewInteger(12).CastTo(Varchar)
	require.NoError(t, err)
	assert.True(t, NewVarchar("12").Equal(v))

	_, err = NewDouble(1e30).CastTo(BigInt)
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want int
	}{
		{"int less", NewInteger(1), NewBigInt(2), -1},
		{"int vs double", NewInteger(2), NewDouble(1.5), 1},
		{"decimal vs int", NewDecimal(decimal.RequireFromString("2.0")), NewInteger(2), 0},
		{"strings", NewVarchar("abc"), NewChar("abd"), -1},
		{"bools", NewBoolean(true), NewBoolean(false), 1},
		{"dates", MustValue(Date, "2024-01-02"), MustValue(Date, "2024-01-01"), 1},
		{"date vs timestamp", MustValue(Date, "2024-01-02"), MustValue(Timestamp, "2024-01-02 00:00:00"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compare(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Compare(NewVarchar("1"), NewInteger(1))
	assert.Error(t, err)
	_, err = Compare(Null(Integer), NewInteger(1))
	assert.Error(t, err)
	_, err = Compare(MustValue(Time, "10:00:00"), MustValue(Timestamp, "2024-01-01 10:00:00"))
	assert.Error(t, err)
}

func TestSQLTypeFamilies(t *testing.T) {
	assert.True(t, TinyInt.AssignableTo(BigInt))
	assert.False(t, BigInt.AssignableTo(Integer))
	assert.True(t, Integer.AssignableTo(Decimal))
	assert.True(t, Decimal.AssignableTo(Double))
	assert.True(t, Char.AssignableTo(Varchar))
	assert.True(t, Date.AssignableTo(Timestamp))
	assert.True(t, Timestamp.AssignableTo(Any))
	assert.False(t, Varchar.AssignableTo(Integer))

	assert.Equal(t, Decimal, WidestNumeric(Integer, Decimal))
	assert.Equal(t, Double, WidestNumeric(Double, BigInt))
	assert.Equal(t, BigInt, WidestNumeric(SmallInt, BigInt))

	typ, err := ParseSQLType("int")
	require.NoError(t, err)
	assert.Equal(t, Integer, typ)
	typ, err = ParseSQLType(" timestamp ")
	require.NoError(t, err)
	assert.Equal(t, Timestamp, typ)
	_, err = ParseSQLType("blob")
	assert.Error(t, err)
	assert.Equal(t, "SQLType(99)", SQLType(99).String())
}

func TestRow(t *testing.T) {
	values := []Value{NewInteger(1), NewVarchar("a")}
	row := NewRow(values...)
	values[0] = NewInteger(99)

	v, ok := row.Get(0)
	require.True(t, ok)
	assert.True(t, NewInteger(1).Equal(v), "row must not alias the caller's slice")
	_, ok = row.Get(2)
	assert.False(t, ok)
	_, ok = row.Get(-1)
	assert.False(t, ok)
	assert.Equal(t, 2, row.Len())
	assert.Nil(t, row.Window())

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	windowed := row.WithWindow(NewTimeSlot(start, start.Add(time.Minute)))
	assert.NotNil(t, windowed.Window())
	assert.Nil(t, row.Window(), "WithWindow must not modify the receiver")
	assert.Equal(t, "[1, a]", row.String())
}
