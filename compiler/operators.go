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

package compiler

import (
	"strings"

	"github.com/rulego/streamexpr/expr"
	"github.com/rulego/streamexpr/types"
)

// operatorTable maps planner tokens, upper-cased, to operators.
var operatorTable = map[string]expr.Op{
	"AND": expr.OpAnd,
	"OR":  expr.OpOr,

	"=":  expr.OpEquals,
	"<>": expr.OpNotEquals,
	"!=": expr.OpNotEquals,
	">":  expr.OpGreaterThan,
	">=": expr.OpGreaterThanOrEqual,
	"<":  expr.OpLessThan,
	"<=": expr.OpLessThanOrEqual,

	"+":    expr.OpPlus,
	"-":    expr.OpMinus,
	"*":    expr.OpMultiply,
	"/":    expr.OpDivide,
	"/INT": expr.OpIntegerDivide,
	"MOD":  expr.OpMod,

	"ABS":   expr.OpAbs,
	"SQRT":  expr.OpSqrt,
	"ROUND": expr.OpRound,

	"||":               expr.OpConcat,
	"POSITION":         expr.OpPosition,
	"CHAR_LENGTH":      expr.OpCharLength,
	"CHARACTER_LENGTH": expr.OpCharLength,
	"LENGTH":           expr.OpCharLength,
	"UPPER":            expr.OpUpper,
	"LOWER":            expr.OpLower,
	"TRIM":             expr.OpTrim,
	"SUBSTRING":        expr.OpSubstring,
	"OVERLAY":          expr.OpOverlay,
	"INITCAP":          expr.OpInitCap,

	"REINTERPRET":       expr.OpReinterpret,
	"CEIL":              expr.OpCeil,
	"FLOOR":             expr.OpFloor,
	"EXTRACT":           expr.OpExtract,
	"EXTRACT_DATE":      expr.OpExtract,
	"LOCALTIME":         expr.OpLocalTime,
	"LOCALTIMESTAMP":    expr.OpLocalTimestamp,
	"CURRENT_TIME":      expr.OpCurrentTime,
	"CURRENT_TIMESTAMP": expr.OpCurrentTimestamp,
	"CURRENT_DATE":      expr.OpCurrentDate,

	"CASE":        expr.OpCase,
	"IS NULL":     expr.OpIsNull,
	"IS NOT NULL": expr.OpIsNotNull,

	"HOP":           expr.OpHop,
	"TUMBLE":        expr.OpTumble,
	"SESSION":       expr.OpSession,
	"HOP_START":     expr.OpHopStart,
	"TUMBLE_START":  expr.OpTumbleStart,
	"SESSION_START": expr.OpSessionStart,
	"HOP_END":       expr.OpHopEnd,
	"TUMBLE_END":    expr.OpTumbleEnd,
	"SESSION_END":   expr.OpSessionEnd,
}

// LookupOperator resolves a planner token case-insensitively. Runs of blanks
// inside multi-word tokens such as "IS  NOT NULL" are collapsed.
func LookupOperator(token string) (expr.Op, bool) {
	op, ok := operatorTable[strings.Join(strings.Fields(strings.ToUpper(token)), " ")]
	return op, ok
}

// builder constructs the expression of one operator from compiled operands.
type builder func(c *Compiler, op expr.Op, typ types.SQLType, operands []expr.Expression) (expr.Expression, error)

var builders = map[expr.Op]builder{}

func init() {
	register := func(b builder, ops ...expr.Op) {
		for _, op := range ops {
			builders[op] = b
		}
	}
	register(buildLogical, expr.OpAnd, expr.OpOr)
	register(buildComparison, expr.OpEquals, expr.OpNotEquals, expr.OpGreaterThan,
		expr.OpGreaterThanOrEqual, expr.OpLessThan, expr.OpLessThanOrEqual)
	register(buildArithmetic, expr.OpPlus, expr.OpMinus, expr.OpMultiply, expr.OpDivide,
		expr.OpIntegerDivide, expr.OpMod)
	register(buildMath, expr.OpAbs, expr.OpSqrt, expr.OpRound)
	register(buildString, expr.OpConcat, expr.OpPosition, expr.OpCharLength, expr.OpUpper,
		expr.OpLower, expr.OpTrim, expr.OpSubstring, expr.OpOverlay, expr.OpInitCap)
	register(buildReinterpret, expr.OpReinterpret)
	register(buildCeilFloor, expr.OpCeil, expr.OpFloor)
	register(buildExtract, expr.OpExtract)
	register(buildClock, expr.OpLocalTime, expr.OpLocalTimestamp, expr.OpCurrentTime,
		expr.OpCurrentTimestamp, expr.OpCurrentDate)
	register(buildCase, expr.OpCase)
	register(buildNullTest, expr.OpIsNull, expr.OpIsNotNull)
	register(buildWindowCall, expr.OpHop, expr.OpTumble, expr.OpSession)
	register(buildWindowAccessor, expr.OpHopStart, expr.OpTumbleStart, expr.OpSessionStart,
		expr.OpHopEnd, expr.OpTumbleEnd, expr.OpSessionEnd)
}

// built drops the concrete pointer type so a failed constructor yields a nil interface.
func built[T expr.Expression](e T, err error) (expr.Expression, error) {
	if err != nil {
		return nil, err
	}
	return e, nil
}

func buildLogical(_ *Compiler, op expr.Op, typ types.SQLType, operands []expr.Expression) (expr.Expression, error) {
	if typ != types.Boolean {
		return nil, expr.NewError(expr.ErrTypeMismatch, op.String(), "declared type %s, want BOOLEAN", typ)
	}
	return built(expr.NewLogical(op, operands...))
}

func buildNullTest(_ *Compiler, op expr.Op, typ types.SQLType, operands []expr.Expression) (expr.Expression, error) {
	if typ != types.Boolean {
		return nil, expr.NewError(expr.ErrTypeMismatch, op.String(), "declared type %s, want BOOLEAN", typ)
	}
	return built(expr.NewNullTest(op, operands...))
}

func buildComparison(_ *Compiler, op expr.Op, typ types.SQLType, operands []expr.Expression) (expr.Expression, error) {
	return built(expr.NewComparison(op, typ, operands...))
}

func buildArithmetic(_ *Compiler, op expr.Op, typ types.SQLType, operands []expr.Expression) (expr.Expression, error) {
	return built(expr.NewArithmetic(op, typ, operands...))
}

func buildMath(_ *Compiler, op expr.Op, typ types.SQLType, operands []expr.Expression) (expr.Expression, error) {
	return built(expr.NewMath(op, typ, operands...))
}

func buildString(_ *Compiler, op expr.Op, typ types.SQLType, operands []expr.Expression) (expr.Expression, error) {
	return built(expr.NewString(op, typ, operands...))
}

func buildReinterpret(_ *Compiler, _ expr.Op, typ types.SQLType, operands []expr.Expression) (expr.Expression, error) {
	return built(expr.NewReinterpret(typ, operands...))
}

func buildCeilFloor(_ *Compiler, op expr.Op, typ types.SQLType, operands []expr.Expression) (expr.Expression, error) {
	return built(expr.NewCeilFloor(op, typ, operands...))
}

func buildExtract(_ *Compiler, _ expr.Op, typ types.SQLType, operands []expr.Expression) (expr.Expression, error) {
	return built(expr.NewExtract(typ, operands...))
}

func buildClock(c *Compiler, op expr.Op, typ types.SQLType, operands []expr.Expression) (expr.Expression, error) {
	return built(expr.NewClockCall(op, typ, c.clock, c.location, operands...))
}

func buildCase(_ *Compiler, _ expr.Op, typ types.SQLType, operands []expr.Expression) (expr.Expression, error) {
	return built(expr.NewCase(typ, operands...))
}

func buildWindowCall(_ *Compiler, op expr.Op, typ types.SQLType, operands []expr.Expression) (expr.Expression, error) {
	return built(expr.NewWindowCall(op, typ, operands...))
}

func buildWindowAccessor(_ *Compiler, op expr.Op, typ types.SQLType, operands []expr.Expression) (expr.Expression, error) {
	return built(expr.NewWindowAccessor(op, typ, operands...))
}
