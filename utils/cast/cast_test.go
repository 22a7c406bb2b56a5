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

package cast

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInt64E(t *testing.T) {
	tests := []struct {
		name   string
		input  interface{}
		expect int64
		hasErr bool
	}{
		{"int", 123, 123, false},
		{"int8", int8(-12), -12, false},
		{"uint32", uint32(123), 123, false},
		{"uint64 overflow", uint64(math.MaxUint64), 0, true},
		{"whole float64", 12.0, 12, false},
		{"whole float32", float32(-3), -3, false},
		{"fractional float64", 12.9, 0, true},
		{"fractional float32", float32(0.5), 0, true},
		{"float64 out of range", 1e19, 0, true},
		{"float64 NaN", math.NaN(), 0, true},
		{"string", "456", 456, false},
		{"bad string", "abc", 0, true},
		{"whole decimal", decimal.NewFromInt(77), 77, false},
		{"fractional decimal", decimal.RequireFromString("1.5"), 0, true},
		{"huge decimal", decimal.RequireFromString("1e30"), 0, true},
		{"bool", true, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToInt64E(tt.input)
			if tt.hasErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expect, got)
		})
	}
}

func TestToFloat64E(t *testing.T) {
	f, err := ToFloat64E(decimal.RequireFromString("2.25"))
	require.NoError(t, err)
	assert.Equal(t, 2.25, f)

	f, err = ToFloat64E("3.5")
	require.NoError(t, err)
	assert.Equal(t, 3.5, f)

	_, err = ToFloat64E("x")
	assert.Error(t, err)
}

func TestToDecimalE(t *testing.T) {
	tests := []struct {
		name   string
		input  interface{}
		expect string
		hasErr bool
	}{
		{"decimal", decimal.RequireFromString("1.25"), "1.25", false},
		{"float64", 0.1, "0.1", false},
		{"float32", float32(0.5), "0.5", false},
		{"string", "123.456", "123.456", false},
		{"int", 42, "42", false},
		{"int64", int64(-7), "-7", false},
		{"Inf", math.Inf(1), "", true},
		{"garbage", "1.2.3", "", true},
		{"struct", struct{}{}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToDecimalE(tt.input)
			if tt.hasErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expect, got.String())
		})
	}

	var nilDec *decimal.Decimal
	_, err := ToDecimalE(nilDec)
	assert.Error(t, err)
}

func TestToStringE(t *testing.T) {
	s, err := ToStringE([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, "abc", s)

	s, err = ToStringE(12)
	require.NoError(t, err)
	assert.Equal(t, "12", s)

	assert.Equal(t, "true", ToString(true))
}

func TestToBoolE(t *testing.T) {
	b, err := ToBoolE("true")
	require.NoError(t, err)
	assert.True(t, b)

	b, err = ToBoolE(0)
	require.NoError(t, err)
	assert.False(t, b)
}

func TestToTimeE(t *testing.T) {
	got, err := ToTimeE("2024-03-01 10:20:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC), got.UTC())
	assert.Equal(t, time.UTC, got.Location())

	_, err = ToTimeE("not a time")
	assert.Error(t, err)
}
