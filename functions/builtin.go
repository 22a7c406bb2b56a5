package functions

import (
	"crypto/md5"
	"crypto/sha256"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rulego/streamexpr/types"
	"github.com/rulego/streamexpr/utils/cast"
)

// Md5Function calculates MD5 hash value
type Md5Function struct {
	*BaseFunction
}

func NewMd5Function() *Md5Function {
	return &Md5Function{
		BaseFunction: NewBaseFunction("md5", TypeString, "hash", "Calculate MD5 hash value",
			NewSignature(types.Varchar, types.Varchar)),
	}
}

func (f *Md5Function) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	if anyNil(args) {
		return nil, nil
	}
	str, err := cast.ToStringE(args[0])
	if err != nil {
		return nil, fmt.Errorf("md5 requires string input")
	}
	return fmt.Sprintf("%x", md5.Sum([]byte(str))), nil
}

// Sha256Function calculates SHA256 hash value
type Sha256Function struct {
	*BaseFunction
}

func NewSha256Function() *Sha256Function {
	return &Sha256Function{
		BaseFunction: NewBaseFunction("sha256", TypeString, "hash", "Calculate SHA256 hash value",
			NewSignature(types.Varchar, types.Varchar)),
	}
}

func (f *Sha256Function) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	if anyNil(args) {
		return nil, nil
	}
	str, err := cast.ToStringE(args[0])
	if err != nil {
		return nil, fmt.Errorf("sha256 requires string input")
	}
	return fmt.Sprintf("%x", sha256.Sum256([]byte(str))), nil
}

// Hex2DecFunction parses a hexadecimal string
type Hex2DecFunction struct {
	*BaseFunction
}

func NewHex2DecFunction() *Hex2DecFunction {
	return &Hex2DecFunction{
		BaseFunction: NewBaseFunction("hex2dec", TypeConversion, "conversion", "Convert hexadecimal to decimal",
			NewSignature(types.BigInt, types.Varchar)),
	}
}

func (f *Hex2DecFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	if anyNil(args) {
		return nil, nil
	}
	hexStr := strings.TrimPrefix(strings.ToLower(cast.ToString(args[0])), "0x")
	val, err := strconv.ParseInt(hexStr, 16, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid hex string: %v", args[0])
	}
	return val, nil
}

// Dec2HexFunction formats an integer in hexadecimal
type Dec2HexFunction struct {
	*BaseFunction
}

func NewDec2HexFunction() *Dec2HexFunction {
	return &Dec2HexFunction{
		BaseFunction: NewBaseFunction("dec2hex", TypeConversion, "conversion", "Convert decimal to hexadecimal",
			NewSignature(types.Varchar, types.BigInt)),
	}
}

func (f *Dec2HexFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	if anyNil(args) {
		return nil, nil
	}
	val, err := cast.ToInt64E(args[0])
	if err != nil {
		return nil, err
	}
	return strconv.FormatInt(val, 16), nil
}

// PowerFunction raises x to the power y
type PowerFunction struct {
	*BaseFunction
}

func NewPowerFunction() *PowerFunction {
	return &PowerFunction{
		BaseFunction: NewBaseFunction("power", TypeMath, "math", "Calculate x to the power of y",
			NewSignature(types.Double, types.Double, types.Double)),
	}
}

func (f *PowerFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	if anyNil(args) {
		return nil, nil
	}
	x, err := cast.ToFloat64E(args[0])
	if err != nil {
		return nil, err
	}
	y, err := cast.ToFloat64E(args[1])
	if err != nil {
		return nil, err
	}
	result := math.Pow(x, y)
	if math.IsNaN(result) {
		return nil, fmt.Errorf("power: %v ^ %v is not a real number", x, y)
	}
	return result, nil
}

// LnFunction calculates the natural logarithm
type LnFunction struct {
	*BaseFunction
}

func NewLnFunction() *LnFunction {
	return &LnFunction{
		BaseFunction: NewBaseFunction("ln", TypeMath, "math", "Calculate natural logarithm",
			NewSignature(types.Double, types.Double)),
	}
}

func (f *LnFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	if anyNil(args) {
		return nil, nil
	}
	val, err := cast.ToFloat64E(args[0])
	if err != nil {
		return nil, err
	}
	if val <= 0 {
		return nil, fmt.Errorf("ln: value must be positive")
	}
	return math.Log(val), nil
}

func init() {
	_ = Register(NewMd5Function())
	_ = Register(NewSha256Function())
	_ = Register(NewHex2DecFunction())
	_ = Register(NewDec2HexFunction())
	_ = Register(NewPowerFunction())
	_ = Register(NewLnFunction())
}
