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

import "fmt"

// Op identifies a built-in operator. The set is closed. Adding an operator means
// adding a constant here and a builder in the compiler's operator table.
type Op int

const (
	OpAnd Op = iota
	OpOr

	OpEquals
	OpNotEquals
	OpGreaterThan
	OpGreaterThanOrEqual
	OpLessThan
	OpLessThanOrEqual

	OpPlus
	OpMinus
	OpMultiply
	OpDivide
	OpIntegerDivide
	OpMod

	OpAbs
	OpSqrt
	OpRound

	OpConcat
	OpPosition
	OpCharLength
	OpUpper
	OpLower
	OpTrim
	OpSubstring
	OpOverlay
	OpInitCap

	OpReinterpret
	OpCeil
	OpFloor
	OpExtract
	OpLocalTime
	OpLocalTimestamp
	OpCurrentTime
	OpCurrentTimestamp
	OpCurrentDate

	OpCase
	OpIsNull
	OpIsNotNull

	OpHop
	OpTumble
	OpSession
	OpHopStart
	OpTumbleStart
	OpSessionStart
	OpHopEnd
	OpTumbleEnd
	OpSessionEnd

	// OpUserDefined tags calls to registered functions.
	OpUserDefined

	numOps
)

var opNames = [numOps]string{
	OpAnd:                "AND",
	OpOr:                 "OR",
	OpEquals:             "=",
	OpNotEquals:          "<>",
	OpGreaterThan:        ">",
	OpGreaterThanOrEqual: ">=",
	OpLessThan:           "<",
	OpLessThanOrEqual:    "<=",
	OpPlus:               "+",
	OpMinus:              "-",
	OpMultiply:           "*",
	OpDivide:             "/",
	OpIntegerDivide:      "/INT",
	OpMod:                "MOD",
	OpAbs:                "ABS",
	OpSqrt:               "SQRT",
	OpRound:              "ROUND",
	OpConcat:             "||",
	OpPosition:           "POSITION",
	OpCharLength:         "CHAR_LENGTH",
	OpUpper:              "UPPER",
	OpLower:              "LOWER",
	OpTrim:               "TRIM",
	OpSubstring:          "SUBSTRING",
	OpOverlay:            "OVERLAY",
	OpInitCap:            "INITCAP",
	OpReinterpret:        "REINTERPRET",
	OpCeil:               "CEIL",
	OpFloor:              "FLOOR",
	OpExtract:            "EXTRACT",
	OpLocalTime:          "LOCALTIME",
	OpLocalTimestamp:     "LOCALTIMESTAMP",
	OpCurrentTime:        "CURRENT_TIME",
	OpCurrentTimestamp:   "CURRENT_TIMESTAMP",
	OpCurrentDate:        "CURRENT_DATE",
	OpCase:               "CASE",
	OpIsNull:             "IS NULL",
	OpIsNotNull:          "IS NOT NULL",
	OpHop:                "HOP",
	OpTumble:             "TUMBLE",
	OpSession:            "SESSION",
	OpHopStart:           "HOP_START",
	OpTumbleStart:        "TUMBLE_START",
	OpSessionStart:       "SESSION_START",
	OpHopEnd:             "HOP_END",
	OpTumbleEnd:          "TUMBLE_END",
	OpSessionEnd:         "SESSION_END",
	OpUserDefined:        "UDF",
}

// String returns the canonical SQL token of op.
func (op Op) String() string {
	if op < 0 || op >= numOps {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opNames[op]
}

// Ops returns every built-in operator, OpUserDefined excluded.
func Ops() []Op {
	ops := make([]Op, 0, numOps-1)
	for op := Op(0); op < numOps; op++ {
		if op != OpUserDefined {
			ops = append(ops, op)
		}
	}
	return ops
}
