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

// SQLType is the declared SQL scalar type of a value or expression.
type SQLType int

const (
	Boolean SQLType = iota
	TinyInt
	SmallInt
	Integer
	BigInt
	Float
	Double
	Decimal
	Char
	Varchar
	Date
	Time
	Timestamp
	// Symbol carries planner flag literals such as TRIM's LEADING or a time unit name.
	Symbol
	// Any is only meaningful in function signatures and accepts every type.
	Any
)

var sqlTypeNames = [...]string{
	Boolean:   "BOOLEAN",
	TinyInt:   "TINYINT",
	SmallInt:  "SMALLINT",
	Integer:   "INTEGER",
	BigInt:    "BIGINT",
	Float:     "FLOAT",
	Double:    "DOUBLE",
	Decimal:   "DECIMAL",
	Char:      "CHAR",
	Varchar:   "VARCHAR",
	Date:      "DATE",
	Time:      "TIME",
	Timestamp: "TIMESTAMP",
	Symbol:    "SYMBOL",
	Any:       "ANY",
}

var sqlTypeAliases = map[string]SQLType{
	"BOOL":      Boolean,
	"INT":       Integer,
	"INT8":      BigInt,
	"LONG":      BigInt,
	"REAL":      Float,
	"NUMERIC":   Decimal,
	"STRING":    Varchar,
	"TEXT":      Varchar,
	"CHARACTER": Char,
	"DATETIME":  Timestamp,
}

// String returns the canonical SQL name of the type.
func (t SQLType) String() string {
	if t < 0 || int(t) >= len(sqlTypeNames) {
		return fmt.Sprintf("SQLType(%d)", int(t))
	}
	return sqlTypeNames[t]
}

// ParseSQLType resolves a type name, case-insensitively, including a few common aliases.
func ParseSQLType(name string) (SQLType, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range sqlTypeNames {
		if n == upper {
			return SQLType(i), nil
		}
	}
	if t, ok := sqlTypeAliases[upper]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("unknown SQL type %q", name)
}

// IsExactInteger reports whether t is one of the integer widths.
func (t SQLType) IsExactInteger() bool {
	return t == TinyInt || t == SmallInt || t == Integer || t == BigInt
}

// IsApproximate reports whether t is a binary floating point type.
func (t SQLType) IsApproximate() bool {
	return t == Float || t == Double
}

// IsNumeric reports whether t supports arithmetic.
func (t SQLType) IsNumeric() bool {
	return t.IsExactInteger() || t.IsApproximate() || t == Decimal
}

// IsCharacter reports whether t is CHAR or VARCHAR.
func (t SQLType) IsCharacter() bool {
	return t == Char || t == Varchar
}

// IsDateTime reports whether t is DATE, TIME or TIMESTAMP.
func (t SQLType) IsDateTime() bool {
	return t == Date || t == Time || t == Timestamp
}

// integerRank orders the integer widths for widening checks.
func (t SQLType) integerRank() int {
	switch t {
	case TinyInt:
		return 1
	case SmallInt:
		return 2
	case Integer:
		return 3
	case BigInt:
		return 4
	}
	return 0
}

// AssignableTo reports whether a value of type t may be passed where target is expected
// without an explicit conversion.
func (t SQLType) AssignableTo(target SQLType) bool {
	switch {
	case t == target, target == Any:
		return true
	case t.IsCharacter() && target.IsCharacter():
		return true
	case t.IsExactInteger() && target.IsExactInteger():
		return t.integerRank() <= target.integerRank()
	case t.IsExactInteger() && target == Decimal:
		return true
	case (t.IsExactInteger() || t == Decimal || t == Float) && target == Double:
		return true
	case t.IsExactInteger() && target == Float:
		return true
	case t == Date && target == Timestamp:
		return true
	}
	return false
}

// Comparable reports whether values of types a and b can be ordered against each other.
func Comparable(a, b SQLType) bool {
	switch {
	case a.IsNumeric() && b.IsNumeric():
		return true
	case a.IsCharacter() && b.IsCharacter():
		return true
	case a == Boolean && b == Boolean:
		return true
	case a == Symbol && b == Symbol:
		return true
	case a.IsDateTime() && b.IsDateTime():
		return a == b || (a != Time && b != Time)
	}
	return false
}

// WidestNumeric returns the type arithmetic between a and b is carried out in:
// DECIMAL wins over approximate types, which win over integers.
func WidestNumeric(a, b SQLType) SQLType {
	switch {
	case a == Decimal || b == Decimal:
		return Decimal
	case a == Double || b == Double:
		return Double
	case a == Float || b == Float:
		return Float
	case a.integerRank() >= b.integerRank():
		return a
	}
	return b
}
