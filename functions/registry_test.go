package functions

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/streamexpr/types"
)

func noop(ctx *FunctionContext, args []interface{}) (interface{}, error) { return nil, nil }

func TestRegistryEdgeCases(t *testing.T) {
	reg := NewFunctionRegistry()
	assert.False(t, reg.Unregister("not_exist"))

	err := RegisterCustomFunction("", TypeCustom, "", "", Signature{}, noop)
	assert.Error(t, err, "empty name")

	err = RegisterCustomFunction("nil_body", TypeCustom, "", "", Signature{}, nil)
	assert.Error(t, err, "nil executor")

	fn, err := NewCustomFunction("dup", TypeCustom, "", "", Signature{}, noop)
	require.NoError(t, err)
	require.NoError(t, reg.Register(fn))
	assert.Error(t, reg.Register(fn), "duplicate name")

	assert.Error(t, reg.Register(nil))
}

func TestRegistryCaseInsensitive(t *testing.T) {
	reg := NewFunctionRegistry()
	fn, err := NewCustomFunction("MyFunc", TypeCustom, "test", "", NewSignature(types.BigInt), noop)
	require.NoError(t, err)
	require.NoError(t, reg.Register(fn))

	for _, name := range []string{"myfunc", "MYFUNC", "MyFunc"} {
		got, ok := reg.Get(name)
		assert.True(t, ok, name)
		assert.Same(t, fn, got)
	}
	assert.Contains(t, reg.ListAll(), "myfunc")
	assert.Len(t, reg.GetByType(TypeCustom), 1)

	assert.True(t, reg.Unregister("MYFUNC"))
	_, ok := reg.Get("myfunc")
	assert.False(t, ok)
	assert.Empty(t, reg.GetByType(TypeCustom))
}

func TestRegistryConcurrentAccess(t *testing.T) {
	reg := NewFunctionRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			fn, _ := NewCustomFunction(string(rune('a'+n)), TypeCustom, "", "", Signature{}, noop)
			_ = reg.Register(fn)
			reg.Get("a")
			reg.ListAll()
		}(i)
	}
	wg.Wait()
	assert.Len(t, reg.ListAll(), 20)
}

func TestDefaultRegistryBuiltins(t *testing.T) {
	for _, name := range []string{"md5", "sha256", "hex2dec", "dec2hex", "power", "ln"} {
		fn, ok := Default().Get(name)
		require.True(t, ok, name)
		assert.NotEmpty(t, fn.GetDescription())
	}
	assert.NotEmpty(t, GetByType(TypeMath))
}

func TestGlobalRegisterCustomFunction(t *testing.T) {
	err := RegisterCustomFunction("triple_it", TypeCustom, "math", "x * 3",
		NewSignature(types.BigInt, types.BigInt),
		func(ctx *FunctionContext, args []interface{}) (interface{}, error) {
			return args[0].(int64) * 3, nil
		})
	require.NoError(t, err)
	defer Unregister("triple_it")

	fn, ok := Get("TRIPLE_IT")
	require.True(t, ok)
	require.NoError(t, fn.Validate([]types.SQLType{types.Integer}))
	got, err := fn.Execute(&FunctionContext{}, []interface{}{int64(4)})
	require.NoError(t, err)
	assert.Equal(t, int64(12), got)
}
