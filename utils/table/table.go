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

package table

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rulego/streamexpr/types"
)

// minWidth is the narrowest column printed.
const minWidth = 4

// Print writes rows to stdout, see Fprint.
func Print(columns []string, rows [][]types.Value) {
	_ = Fprint(os.Stdout, columns, rows)
}

// Fprint renders executor output as a bordered text table followed by a row count.
// Missing trailing cells print blank; NULL prints as NULL.
//
//	+--------+------+
//	| name   | len  |
//	+--------+------+
//	| ada    | 3    |
//	+--------+------+
//	(1 rows)
func Fprint(w io.Writer, columns []string, rows [][]types.Value) error {
	cells := make([][]string, len(rows))
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = max(minWidth, utf8.RuneCountInString(col))
	}
	for r, row := range rows {
		cells[r] = make([]string, len(columns))
		for i := range columns {
			if i >= len(row) {
				continue
			}
			s := row[i].String()
			cells[r][i] = s
			widths[i] = max(widths[i], utf8.RuneCountInString(s))
		}
	}

	var b strings.Builder
	border := borderLine(widths)
	b.WriteString(border)
	writeLine(&b, columns, widths)
	b.WriteString(border)
	for _, line := range cells {
		writeLine(&b, line, widths)
	}
	if len(rows) > 0 {
		b.WriteString(border)
	}
	fmt.Fprintf(&b, "(%d rows)\n", len(rows))
	_, err := io.WriteString(w, b.String())
	return err
}

func borderLine(widths []int) string {
	var b strings.Builder
	b.WriteByte('+')
	for _, width := range widths {
		b.WriteString(strings.Repeat("-", width+2))
		b.WriteByte('+')
	}
	b.WriteByte('\n')
	return b.String()
}

func writeLine(b *strings.Builder, cells []string, widths []int) {
	b.WriteByte('|')
	for i, width := range widths {
		b.WriteByte(' ')
		b.WriteString(cells[i])
		b.WriteString(strings.Repeat(" ", width-utf8.RuneCountInString(cells[i])))
		b.WriteString(" |")
	}
	b.WriteByte('\n')
}
