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
Package functions is the registry of user-defined scalar functions that compiled
expressions may call by name.

A function declares a typed Signature. The compiler resolves the function once,
checks the signature against the compiled operand types and stores the handle in
the expression tree, so evaluation never looks anything up.

# Registering functions

Go closures:

	err := functions.RegisterCustomFunction("double_it", functions.TypeCustom, "math", "x * 2",
		functions.NewSignature(types.BigInt, types.BigInt),
		func(ctx *functions.FunctionContext, args []interface{}) (interface{}, error) {
			return args[0].(int64) * 2, nil
		})

expr-lang programs, compiled once at registration:

	err := functions.RegisterExprFunction("area", "w * h", []string{"w", "h"},
		functions.NewSignature(types.Double, types.Double, types.Double), "w * h")

Arguments are the operand payloads (bool, int64, float64, decimal.Decimal, string,
time.Time) and nil for NULL. Results are converted to the return type declared
at the call site. Functions must be free of side effects and safe for concurrent use.

# Built-in functions

The default registry ships md5, sha256, hex2dec, dec2hex, power and ln.
*/
package functions
