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
	"strings"
)

// Row is one execution-time record: ordered values, one per schema column, plus
// optional window metadata. A Row is never modified after construction.
type Row struct {
	values []Value
	window *TimeSlot
}

// NewRow creates a row without window metadata. The values slice is copied.
func NewRow(values ...Value) *Row {
	vs := make([]Value, len(values))
	copy(vs, values)
	return &Row{values: vs}
}

// WithWindow returns a row sharing r's values with slot attached.
func (r *Row) WithWindow(slot *TimeSlot) *Row {
	return &Row{values: r.values, window: slot}
}

// Len returns the number of columns.
func (r *Row) Len() int {
	if r == nil {
		return 0
	}
	return len(r.values)
}

// Get returns the value at the zero-based index i.
func (r *Row) Get(i int) (Value, bool) {
	if r == nil || i < 0 || i >= len(r.values) {
		return Value{}, false
	}
	return r.values[i], true
}

// Values returns a copy of the row's values.
func (r *Row) Values() []Value {
	if r == nil {
		return nil
	}
	vs := make([]Value, len(r.values))
	copy(vs, r.values)
	return vs
}

// Window returns the attached window metadata, nil when the row was not produced by
// a windowed operator.
func (r *Row) Window() *TimeSlot {
	if r == nil {
		return nil
	}
	return r.window
}

func (r *Row) String() string {
	if r == nil {
		return "[]"
	}
	parts := make([]string, len(r.values))
	for i, v := range r.values {
		parts[i] = v.String()
	}
	s := "[" + strings.Join(parts, ", ") + "]"
	if r.window != nil {
		s += " window=" + r.window.String()
	}
	return s
}
