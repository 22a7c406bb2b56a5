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
	"time"
)

// TimeSlot is the window metadata attached to a row produced by a tumbling,
// hopping or session window: the half-open interval [Start, End).
type TimeSlot struct {
	Start time.Time
	End   time.Time
}

func NewTimeSlot(start, end time.Time) *TimeSlot {
	return &TimeSlot{
		Start: start.UTC(),
		End:   end.UTC(),
	}
}

// Contains checks if given time is within slot range
func (ts *TimeSlot) Contains(t time.Time) bool {
	if ts == nil {
		return false
	}
	return !t.Before(ts.Start) && t.Before(ts.End)
}

// Duration returns the window length.
func (ts *TimeSlot) Duration() time.Duration {
	if ts == nil {
		return 0
	}
	return ts.End.Sub(ts.Start)
}

// StartValue returns the window start as a TIMESTAMP value.
func (ts *TimeSlot) StartValue() Value {
	if ts == nil {
		return Null(Timestamp)
	}
	return NewTimestamp(ts.Start)
}

// EndValue returns the window end as a TIMESTAMP value.
func (ts *TimeSlot) EndValue() Value {
	if ts == nil {
		return Null(Timestamp)
	}
	return NewTimestamp(ts.End)
}

func (ts *TimeSlot) String() string {
	if ts == nil {
		return "[]"
	}
	return fmt.Sprintf("[%s, %s)", ts.Start.Format(TimestampLayout), ts.End.Format(TimestampLayout))
}
