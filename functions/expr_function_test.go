package functions

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/streamexpr/types"
)

func TestExprFunction(t *testing.T) {
	area, err := NewExprFunction("area", "rectangle area", []string{"w", "h"},
		NewSignature(types.Double, types.Double, types.Double), "w * h")
	require.NoError(t, err)
	assert.Equal(t, "w * h", area.Source())
	assert.Equal(t, TypeCustom, area.GetType())

	got, err := area.Execute(&FunctionContext{}, []interface{}{2.5, 4.0})
	require.NoError(t, err)
	assert.Equal(t, 10.0, got)

	got, err = area.Execute(&FunctionContext{}, []interface{}{decimal.RequireFromString("1.5"), 2.0})
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)

	got, err = area.Execute(&FunctionContext{}, []interface{}{nil, 2.0})
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = area.Execute(&FunctionContext{}, []interface{}{1.0})
	assert.Error(t, err)
}

func TestExprFunctionStringsAndBool(t *testing.T) {
	greet, err := NewExprFunction("greet", "", []string{"name"},
		NewSignature(types.Varchar, types.Varchar), `"hello " + name`)
	require.NoError(t, err)
	got, err := greet.Execute(&FunctionContext{}, []interface{}{"ada"})
	require.NoError(t, err)
	assert.Equal(t, "hello ada", got)

	adult, err := NewExprFunction("adult", "", []string{"age"},
		NewSignature(types.Boolean, types.BigInt), "age >= 18")
	require.NoError(t, err)
	got, err = adult.Execute(&FunctionContext{}, []interface{}{int64(20)})
	require.NoError(t, err)
	assert.Equal(t, true, got)
}

func TestExprFunctionCompileErrors(t *testing.T) {
	sig := NewSignature(types.Double, types.Double)
	_, err := NewExprFunction("bad", "", []string{"x"}, sig, "x +")
	assert.Error(t, err, "syntax")

	_, err = NewExprFunction("bad", "", []string{"x", "y"}, sig, "x")
	assert.Error(t, err, "name count")

	_, err = NewExprFunction("bad", "", []string{"x", "x"}, NewSignature(types.Double, types.Double, types.Double), "x")
	assert.Error(t, err, "duplicate name")

	_, err = NewExprFunction("bad", "", []string{"x"}, sig, "unknown_var * 2")
	assert.Error(t, err, "unknown variable")

	_, err = NewExprFunction("bad", "", []string{"x"},
		Signature{Params: []types.SQLType{types.Double}, Variadic: true, Return: types.Double}, "x")
	assert.Error(t, err, "variadic")

	_, err = NewExprFunction("bad", "", []string{"s"}, NewSignature(types.Boolean, types.Varchar), "s + 's'")
	assert.Error(t, err, "non boolean body for BOOLEAN")
}

func TestExprFunctionConcurrent(t *testing.T) {
	inc, err := NewExprFunction("inc", "", []string{"x"}, NewSignature(types.BigInt, types.BigInt), "x + 1")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int64) {
			defer wg.Done()
			got, err := inc.Execute(&FunctionContext{}, []interface{}{n})
			assert.NoError(t, err)
			assert.EqualValues(t, n+1, got)
		}(int64(i))
	}
	wg.Wait()
}
