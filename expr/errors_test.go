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
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	compile := []ErrorKind{ErrUnsupportedConstruct, ErrArity, ErrTypeMismatch}
	evaluation := []ErrorKind{ErrDivisionByZero, ErrDomain, ErrNumericOverflow, ErrMissingWindow, ErrSchemaMismatch, ErrUdf}
	for _, k := range compile {
		assert.True(t, k.IsCompileTime(), k.String())
		assert.True(t, IsCompileError(NewError(k, "x", "m")))
		assert.False(t, IsEvaluationError(NewError(k, "x", "m")))
	}
	for _, k := range evaluation {
		assert.False(t, k.IsCompileTime(), k.String())
		assert.True(t, IsEvaluationError(NewError(k, "x", "m")))
	}
	assert.Equal(t, "ErrorKind(99)", ErrorKind(99).String())
}

func TestErrorWrapping(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := WrapError(ErrUdf, "md5", cause, "invocation failed")
	assert.Equal(t, "[UDF] md5: invocation failed: root cause", err.Error())
	assert.ErrorIs(t, err, cause)

	wrapped := errors.Wrapf(err, "column %d", 2)
	assert.ErrorIs(t, wrapped, ErrUdf)
	assert.NotErrorIs(t, wrapped, ErrDomain)
	kind, ok := KindOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, ErrUdf, kind)

	_, ok = KindOf(cause)
	assert.False(t, ok)
	assert.False(t, IsCompileError(cause))
	assert.False(t, IsEvaluationError(nil))
}

func TestOpNames(t *testing.T) {
	seen := map[string]bool{}
	for _, op := range Ops() {
		name := op.String()
		assert.NotEmpty(t, name)
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true
		assert.NotEqual(t, OpUserDefined, op)
	}
	assert.Equal(t, "IS NOT NULL", OpIsNotNull.String())
	assert.Equal(t, "/INT", OpIntegerDivide.String())
	assert.Equal(t, "Op(-1)", Op(-1).String())
}
