/*
 * Copyright 2024 The RuleGo Authors.
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

// Package cast converts loosely typed Go scalars into the payload domains used by
// types.Value. It delegates to spf13/cast and adds decimal support.
package cast

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	spfcast "github.com/spf13/cast"
)

// ToBoolE converts x to bool.
func ToBoolE(x any) (bool, error) {
	return spfcast.ToBoolE(x)
}

// ToInt64E converts x to int64. Decimals and floats are accepted only when they
// carry no fractional part.
func ToInt64E(x any) (int64, error) {
	switch v := x.(type) {
	case decimal.Decimal:
		if !v.Equal(v.Truncate(0)) {
			return 0, fmt.Errorf("unable to cast %s to int64: fractional part", v.String())
		}
		if v.GreaterThan(decimal.NewFromInt(math.MaxInt64)) || v.LessThan(decimal.NewFromInt(math.MinInt64)) {
			return 0, fmt.Errorf("unable to cast %s to int64: out of range", v.String())
		}
		return v.IntPart(), nil
	case float64:
		return floatToInt64(v)
	case float32:
		return floatToInt64(float64(v))
	case uint64:
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("unable to cast %d to int64: out of range", v)
		}
	}
	return spfcast.ToInt64E(x)
}

func floatToInt64(f float64) (int64, error) {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return 0, fmt.Errorf("unable to cast %v to int64", f)
	case f != math.Trunc(f):
		return 0, fmt.Errorf("unable to cast %v to int64: fractional part", f)
	case f >= math.MaxInt64 || f < math.MinInt64:
		return 0, fmt.Errorf("unable to cast %v to int64: out of range", f)
	}
	return int64(f), nil
}

// ToFloat64E converts x to float64.
func ToFloat64E(x any) (float64, error) {
	if d, ok := x.(decimal.Decimal); ok {
		return d.InexactFloat64(), nil
	}
	return spfcast.ToFloat64E(x)
}

// ToDecimalE converts x to an exact decimal. Floats go through their shortest
// decimal representation.
func ToDecimalE(x any) (decimal.Decimal, error) {
	switch v := x.(type) {
	case decimal.Decimal:
		return v, nil
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero, fmt.Errorf("unable to cast nil *decimal.Decimal")
		}
		return *v, nil
	case float32:
		return decimal.NewFromFloat32(v), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero, fmt.Errorf("unable to cast %v to decimal", v)
		}
		return decimal.NewFromFloat(v), nil
	case string:
		return decimal.NewFromString(v)
	case fmt.Stringer:
		return decimal.NewFromString(v.String())
	}
	i, err := spfcast.ToInt64E(x)
	if err != nil {
		return decimal.Zero, fmt.Errorf("unable to cast %#v of type %T to decimal", x, x)
	}
	return decimal.NewFromInt(i), nil
}

// ToStringE converts x to string. Byte slices and fmt.Stringer values are accepted.
func ToStringE(x any) (string, error) {
	return spfcast.ToStringE(x)
}

// ToTimeE converts x to a time. Strings without a zone are read as UTC.
func ToTimeE(x any) (time.Time, error) {
	return spfcast.ToTimeInDefaultLocationE(x, time.UTC)
}

// ToString converts x to string, returning "" when x cannot be converted.
func ToString(x any) string {
	return spfcast.ToString(x)
}
