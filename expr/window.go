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
	"github.com/rulego/streamexpr/types"
)

// WindowCall is a group window constructor (HOP, TUMBLE or SESSION). Grouping is
// performed by the host runtime. Evaluated per row, the call yields its time
// operand as the declared type.
type WindowCall struct {
	call
}

func NewWindowCall(op Op, typ types.SQLType, operands ...Expression) (*WindowCall, error) {
	if op != OpHop && op != OpTumble && op != OpSession {
		return nil, typeError(op, "not a window constructor")
	}
	if len(operands) < 1 {
		return nil, arityError(op, "at least 1 operand", len(operands))
	}
	if !operands[0].Type().IsDateTime() {
		return nil, typeError(op, "time operand is %s, want a date/time type", operands[0].Type())
	}
	if !typ.IsDateTime() {
		return nil, typeError(op, "declared type %s, want a date/time type", typ)
	}
	return &WindowCall{call: newCall(op, typ, operands)}, nil
}

func (w *WindowCall) Evaluate(row *types.Row) (types.Value, error) {
	v, err := w.operands[0].Evaluate(row)
	if err != nil {
		return types.Value{}, err
	}
	return narrow(w.op, w.typ, v)
}

// WindowAccessor reads the start or end of the window attached to the row
// (HOP_START, TUMBLE_END, ...). Operands given by the planner are kept for display
// and never evaluated.
type WindowAccessor struct {
	call
	end bool
}

func NewWindowAccessor(op Op, typ types.SQLType, operands ...Expression) (*WindowAccessor, error) {
	var end bool
	switch op {
	case OpHopStart, OpTumbleStart, OpSessionStart:
	case OpHopEnd, OpTumbleEnd, OpSessionEnd:
		end = true
	default:
		return nil, typeError(op, "not a window accessor")
	}
	if typ != types.Timestamp && typ != types.Date && typ != types.Time {
		return nil, typeError(op, "declared type %s, want a date/time type", typ)
	}
	return &WindowAccessor{call: newCall(op, typ, operands), end: end}, nil
}

func (w *WindowAccessor) Evaluate(row *types.Row) (types.Value, error) {
	slot := row.Window()
	if slot == nil {
		return types.Value{}, NewError(ErrMissingWindow, w.op.String(), "row carries no window metadata")
	}
	v := slot.StartValue()
	if w.end {
		v = slot.EndValue()
	}
	return narrow(w.op, w.typ, v)
}
