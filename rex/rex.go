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

// Package rex models the scalar expressions a query planner hands to the compiler:
// literals, input field references and operator calls, each with a declared SQL type.
//
// Node is a closed union. Only the types in this package implement it.
package rex

import (
	"fmt"
	"strings"
	"time"

	"github.com/rulego/streamexpr/types"
)

// Node is a planner scalar expression.
type Node interface {
	// Type returns the declared SQL type of the node.
	Type() types.SQLType
	String() string
	rexNode()
}

// Literal is a constant. Value holds a loosely typed Go scalar (string, int, float64,
// decimal.Decimal, time.Time, NlsString, Calendar, ...) that the compiler
// normalizes to SQLType. A nil Value is NULL.
type Literal struct {
	SQLType types.SQLType
	Value   interface{}
}

// InputRef references the field at Index of the input row.
type InputRef struct {
	Index   int
	SQLType types.SQLType
}

// Operator identifies the function or operator of a Call. Name is the planner's
// token, for example "+", "AND", "IS NOT NULL" or "TUMBLE_START".
type Operator struct {
	Name string
	// UserDefined marks a scalar function registered by the host.
	UserDefined bool
}

// Call applies Operator to Operands. SQLType is the declared result type.
type Call struct {
	Operator Operator
	Operands []Node
	SQLType  types.SQLType
}

// Op returns the built-in operator named name.
func Op(name string) Operator {
	return Operator{Name: name}
}

// UDF returns the user-defined function operator named name.
func UDF(name string) Operator {
	return Operator{Name: name, UserDefined: true}
}

func NewLiteral(t types.SQLType, v interface{}) *Literal {
	return &Literal{SQLType: t, Value: v}
}

// NewSymbol returns a flag literal such as a TRIM mode or a time unit.
func NewSymbol(name string) *Literal {
	return &Literal{SQLType: types.Symbol, Value: strings.ToUpper(name)}
}

func NewInputRef(index int, t types.SQLType) *InputRef {
	return &InputRef{Index: index, SQLType: t}
}

func NewCall(op Operator, t types.SQLType, operands ...Node) *Call {
	return &Call{Operator: op, Operands: operands, SQLType: t}
}

func (l *Literal) Type() types.SQLType  { return l.SQLType }
func (r *InputRef) Type() types.SQLType { return r.SQLType }
func (c *Call) Type() types.SQLType     { return c.SQLType }

func (*Literal) rexNode()  {}
func (*InputRef) rexNode() {}
func (*Call) rexNode()     {}

func (l *Literal) String() string {
	if l.Value == nil {
		return "null:" + l.SQLType.String()
	}
	if l.SQLType.IsCharacter() {
		return fmt.Sprintf("'%v':%s", l.Value, l.SQLType)
	}
	return fmt.Sprintf("%v:%s", l.Value, l.SQLType)
}

func (r *InputRef) String() string {
	return fmt.Sprintf("$%d", r.Index)
}

func (c *Call) String() string {
	args := make([]string, len(c.Operands))
	for i, o := range c.Operands {
		args[i] = o.String()
	}
	return fmt.Sprintf("%s(%s)", c.Operator.Name, strings.Join(args, ", "))
}

// NlsString is a character literal carrying national language settings. Only
// Value is significant for evaluation.
type NlsString struct {
	Value     string
	Charset   string
	Collation string
}

func (s NlsString) String() string {
	return s.Value
}

// Calendar is a point in time interpreted in a zone. As a DATE literal it denotes
// the calendar date of Time in Location.
type Calendar struct {
	Time     time.Time
	Location *time.Location
}

// Local returns Time in Location, or in UTC when Location is nil.
func (c Calendar) Local() time.Time {
	if c.Location == nil {
		return c.Time.UTC()
	}
	return c.Time.In(c.Location)
}
