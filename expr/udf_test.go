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
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/streamexpr/functions"
	"github.com/rulego/streamexpr/types"
)

func mustCustom(t *testing.T, name string, sig functions.Signature, body functions.Executor) functions.Function {
	t.Helper()
	fn, err := functions.NewCustomFunction(name, functions.TypeCustom, "test", "", sig, body)
	require.NoError(t, err)
	return fn
}

func TestUdfCall(t *testing.T) {
	var seen []interface{}
	concat := mustCustom(t, "join2", functions.NewSignature(types.Varchar, types.Varchar, types.BigInt),
		func(ctx *functions.FunctionContext, args []interface{}) (interface{}, error) {
			seen = args
			return fmt.Sprintf("%v-%v", args[0], args[1]), nil
		})

	e, err := NewUdfCall(concat, types.Varchar, str("a"), lit(types.NewInteger(3)))
	require.NoError(t, err)
	assert.Equal(t, OpUserDefined, e.Op())
	assert.Equal(t, "join2('a', 3)", e.String())
	assert.Same(t, concat, e.Function())

	got := eval(t, e, nil)
	assert.Equal(t, types.Varchar, got.Type())
	assert.Equal(t, "a-3", got.Str())
	assert.Equal(t, []interface{}{"a", int64(3)}, seen)

	got = eval(t, e, types.NewRow())
	assert.Equal(t, "a-3", got.Str())

	// NULL operands reach the function as nil
	e, err = NewUdfCall(concat, types.Varchar, lit(types.Null(types.Varchar)), bigint(1))
	require.NoError(t, err)
	assert.Equal(t, "<nil>-1", eval(t, e, nil).Str())
}

func TestUdfCallResultConversion(t *testing.T) {
	fn := mustCustom(t, "answer", functions.NewSignature(types.BigInt),
		func(ctx *functions.FunctionContext, args []interface{}) (interface{}, error) { return 42, nil })
	e, err := NewUdfCall(fn, types.Integer)
	require.NoError(t, err)
	got := eval(t, e, nil)
	assert.Equal(t, types.Integer, got.Type())
	assert.Equal(t, int64(42), got.Int64())

	nothing := mustCustom(t, "nothing", functions.NewSignature(types.Varchar),
		func(ctx *functions.FunctionContext, args []interface{}) (interface{}, error) { return nil, nil })
	e, err = NewUdfCall(nothing, types.Varchar)
	require.NoError(t, err)
	got = eval(t, e, nil)
	assert.True(t, got.IsNull())
	assert.Equal(t, types.Varchar, got.Type())
}

func TestUdfCallRejectsFractionalIntegerResult(t *testing.T) {
	var result interface{}
	fn := mustCustom(t, "ratio", functions.NewSignature(types.BigInt),
		func(ctx *functions.FunctionContext, args []interface{}) (interface{}, error) { return result, nil })
	e, err := NewUdfCall(fn, types.BigInt)
	require.NoError(t, err)

	result = 2.7
	_, err = e.Evaluate(nil)
	assertKind(t, err, ErrUdf)

	result = 3.0
	assert.Equal(t, int64(3), eval(t, e, nil).Int64())
}

func TestUdfCallWindowContext(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	fn := mustCustom(t, "window_len", functions.NewSignature(types.BigInt),
		func(ctx *functions.FunctionContext, args []interface{}) (interface{}, error) {
			if ctx.Window == nil {
				return nil, nil
			}
			return ctx.Window.Duration().Milliseconds(), nil
		})
	e, err := NewUdfCall(fn, types.BigInt)
	require.NoError(t, err)

	row := types.NewRow().WithWindow(types.NewTimeSlot(t0, t0.Add(time.Second)))
	assert.Equal(t, int64(1000), eval(t, e, row).Int64())
	assert.True(t, eval(t, e, types.NewRow()).IsNull())
}

func TestUdfCallErrors(t *testing.T) {
	failing := mustCustom(t, "failing", functions.NewSignature(types.BigInt),
		func(ctx *functions.FunctionContext, args []interface{}) (interface{}, error) {
			return nil, errors.New("boom")
		})
	e, err := NewUdfCall(failing, types.BigInt)
	require.NoError(t, err)
	_, err = e.Evaluate(nil)
	assertKind(t, err, ErrUdf)
	assert.Contains(t, err.Error(), "boom")

	wrongResult := mustCustom(t, "wrong_result", functions.NewSignature(types.BigInt),
		func(ctx *functions.FunctionContext, args []interface{}) (interface{}, error) { return "abc", nil })
	e, err = NewUdfCall(wrongResult, types.BigInt)
	require.NoError(t, err)
	_, err = e.Evaluate(nil)
	assertKind(t, err, ErrUdf)

	sig := functions.NewSignature(types.Varchar, types.Varchar)
	fn := mustCustom(t, "one_arg", sig, func(*functions.FunctionContext, []interface{}) (interface{}, error) { return "", nil })
	_, err = NewUdfCall(fn, types.Varchar)
	assertKind(t, err, ErrArity)
	_, err = NewUdfCall(fn, types.Varchar, str("a"), str("b"))
	assertKind(t, err, ErrArity)
	_, err = NewUdfCall(fn, types.Varchar, bigint(1))
	assertKind(t, err, ErrTypeMismatch)
	_, err = NewUdfCall(fn, types.Date, str("a"))
	assertKind(t, err, ErrTypeMismatch)

	_, err = NewUdfCall(functions.NewMd5Function(), types.Varchar, str("x"))
	assert.NoError(t, err)
}

func TestUdfOperandErrorStopsCall(t *testing.T) {
	called := false
	fn := mustCustom(t, "f", functions.NewSignature(types.BigInt, types.BigInt),
		func(*functions.FunctionContext, []interface{}) (interface{}, error) {
			called = true
			return 1, nil
		})
	e, err := NewUdfCall(fn, types.BigInt, boom{types.BigInt})
	require.NoError(t, err)
	_, err = e.Evaluate(nil)
	assert.ErrorIs(t, err, errBoom)
	assert.False(t, called)
}

// rawFunction skips the constructor checks of CustomFunction.
type rawFunction struct {
	*functions.BaseFunction
}

func (rawFunction) Execute(*functions.FunctionContext, []interface{}) (interface{}, error) {
	return int64(1), nil
}

func TestUdfCallEmptyVariadicSignature(t *testing.T) {
	fn := rawFunction{functions.NewBaseFunction("anything", functions.TypeCustom, "test", "",
		functions.Signature{Variadic: true, Return: types.BigInt})}
	require.NotPanics(t, func() {
		_, err := NewUdfCall(fn, types.BigInt, bigint(1))
		assertKind(t, err, ErrTypeMismatch)
	})
}
