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
	"strings"
)

// Compare orders two non-NULL values of comparable types. It returns -1, 0 or +1.
// Numeric values of different types are compared in their widest common domain.
func Compare(a, b Value) (int, error) {
	if a.IsNull() || b.IsNull() {
		return 0, fmt.Errorf("cannot compare NULL values")
	}
	if !Comparable(a.typ, b.typ) {
		return 0, fmt.Errorf("cannot compare %s with %s", a.typ, b.typ)
	}
	switch {
	case a.typ.IsNumeric():
		return compareNumeric(a, b), nil
	case a.typ.IsCharacter(), a.typ == Symbol:
		return strings.Compare(a.Str(), b.Str()), nil
	case a.typ == Boolean:
		return compareBool(a.Bool(), b.Bool()), nil
	default:
		return a.Time().Compare(b.Time()), nil
	}
}

func compareNumeric(a, b Value) int {
	domain := WidestNumeric(a.typ, b.typ)
	if domain == Decimal && !a.typ.IsApproximate() && !b.typ.IsApproximate() {
		return a.AsDecimal().Cmp(b.AsDecimal())
	}
	switch domain {
	case Decimal, Float, Double:
		x, y := a.AsFloat64(), b.AsFloat64()
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	}
	x, y := a.Int64(), b.Int64()
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}
