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

/*
Package types defines the scalar data model shared by the compiler and the evaluator.

# Core Types

	SQLType  - closed enum of SQL scalar types (BOOLEAN ... TIMESTAMP, SYMBOL)
	Value    - a payload tagged with its SQLType; NULL keeps its type
	Row      - ordered Values plus optional window metadata
	TimeSlot - [start, end) of the window a row was produced by

# Building Values

	v := types.NewVarchar("ada")
	n := types.Null(types.Integer)        // NULL INTEGER
	d, err := types.NewValue(types.Date, "2024-01-02")

NewValue is the single normalization entry point: it accepts loosely typed Go scalars
and produces the canonical payload for the declared type, so the same input always
yields the same Value.

# Rows

	row := types.NewRow(types.NewInteger(25), types.NewVarchar("ada"))
	windowed := row.WithWindow(types.NewTimeSlot(start, end))
*/
package types
