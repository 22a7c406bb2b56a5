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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/streamexpr/types"
)

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	err := Fprint(&buf, []string{"name", "EXPR$1"}, [][]types.Value{
		{types.NewVarchar("ada"), types.NewBigInt(3)},
		{types.NewVarchar("zoë"), types.Null(types.BigInt)},
		{types.NewVarchar("x")},
	})
	require.NoError(t, err)
	want := "" +
		"+------+--------+\n" +
		"| name | EXPR$1 |\n" +
		"+------+--------+\n" +
		"| ada  | 3      |\n" +
		"| zoë  | NULL   |\n" +
		"| x    |        |\n" +
		"+------+--------+\n" +
		"(3 rows)\n"
	assert.Equal(t, want, buf.String())
}

func TestFprintEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, []string{"a"}, nil))
	assert.Equal(t, "+------+\n| a    |\n+------+\n(0 rows)\n", buf.String())
}

func TestPrintDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		Print(nil, nil)
	})
}
