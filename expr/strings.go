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
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rulego/streamexpr/types"
)

// Trim flags carried by the first operand of the three-operand TRIM.
const (
	TrimBoth     = "BOTH"
	TrimLeading  = "LEADING"
	TrimTrailing = "TRAILING"
)

// NewString builds one of the character functions. Positions and lengths count
// characters, not bytes, and positions start at 1.
//
//	s1 || s2 [|| ...]
//	POSITION(needle, haystack[, from])    0 when absent
//	CHAR_LENGTH(s)
//	UPPER(s), LOWER(s), INITCAP(s)
//	TRIM(s) or TRIM(flag, chars, s)       flag is BOTH, LEADING or TRAILING
//	SUBSTRING(s, start[, length])         a negative start counts from the end
//	OVERLAY(s, replacement, start[, length])
func NewString(op Op, typ types.SQLType, operands ...Expression) (*ScalarCall, error) {
	var (
		params []types.SQLType
		opt    int
		fn     scalarFunc
	)
	chr, integer := types.Varchar, types.BigInt
	switch op {
	case OpConcat:
		if len(operands) < 2 {
			return nil, arityError(op, "at least 2 operands", len(operands))
		}
		for range operands {
			params = append(params, chr)
		}
		fn = func(args []types.Value) (types.Value, error) {
			var b strings.Builder
			for _, a := range args {
				b.WriteString(a.Str())
			}
			return narrow(op, typ, types.NewVarchar(b.String()))
		}
	case OpPosition:
		params, opt = []types.SQLType{chr, chr, integer}, 1
		fn = func(args []types.Value) (types.Value, error) {
			from := int64(1)
			if len(args) == 3 {
				from = args[2].Int64()
			}
			return narrow(op, typ, types.NewBigInt(position(args[0].Str(), args[1].Str(), from)))
		}
	case OpCharLength:
		params = []types.SQLType{chr}
		fn = func(args []types.Value) (types.Value, error) {
			return narrow(op, typ, types.NewBigInt(int64(utf8.RuneCountInString(args[0].Str()))))
		}
	case OpUpper, OpLower, OpInitCap:
		params = []types.SQLType{chr}
		conv := map[Op]func(string) string{OpUpper: strings.ToUpper, OpLower: strings.ToLower, OpInitCap: initCap}[op]
		fn = func(args []types.Value) (types.Value, error) {
			return narrow(op, typ, types.NewVarchar(conv(args[0].Str())))
		}
	case OpTrim:
		return newTrim(typ, operands)
	case OpSubstring:
		params, opt = []types.SQLType{chr, integer, integer}, 1
		fn = func(args []types.Value) (types.Value, error) {
			length := int64(-1)
			if len(args) == 3 {
				length = args[2].Int64()
				if length < 0 {
					return types.Value{}, NewError(ErrDomain, op.String(), "negative substring length %d", length)
				}
			}
			return narrow(op, typ, types.NewVarchar(substring(args[0].Str(), args[1].Int64(), length)))
		}
	case OpOverlay:
		params, opt = []types.SQLType{chr, chr, integer, integer}, 1
		fn = func(args []types.Value) (types.Value, error) {
			length := int64(utf8.RuneCountInString(args[1].Str()))
			if len(args) == 4 {
				length = args[3].Int64()
			}
			return narrow(op, typ, types.NewVarchar(overlay(args[0].Str(), args[1].Str(), args[2].Int64(), length)))
		}
	default:
		return nil, typeError(op, "not a string function")
	}
	if op != OpConcat {
		if len(operands) > len(params) || len(operands) < len(params)-opt {
			if opt == 0 {
				return nil, arityError(op, itoaOperands(len(params)), len(operands))
			}
			return nil, arityError(op, itoaOperands(len(params)-opt)+" or "+itoaOperands(len(params)), len(operands))
		}
	}
	if err := checkFamilies(op, operands, params); err != nil {
		return nil, err
	}
	if err := checkDeclared(op, typ, op != OpPosition && op != OpCharLength); err != nil {
		return nil, err
	}
	return newScalarCall(op, typ, operands, fn), nil
}

func newTrim(typ types.SQLType, operands []Expression) (*ScalarCall, error) {
	op := OpTrim
	switch len(operands) {
	case 1:
		if err := checkFamilies(op, operands, []types.SQLType{types.Varchar}); err != nil {
			return nil, err
		}
		if err := checkDeclared(op, typ, true); err != nil {
			return nil, err
		}
		return newScalarCall(op, typ, operands, func(args []types.Value) (types.Value, error) {
			return narrow(op, typ, types.NewVarchar(strings.Trim(args[0].Str(), " ")))
		}), nil
	case 3:
	default:
		return nil, arityError(op, "1 or 3 operands", len(operands))
	}
	if err := checkFamilies(op, operands, []types.SQLType{types.Symbol, types.Varchar, types.Varchar}); err != nil {
		return nil, err
	}
	if err := checkDeclared(op, typ, true); err != nil {
		return nil, err
	}
	return newScalarCall(op, typ, operands, func(args []types.Value) (types.Value, error) {
		s, cutset := args[2].Str(), args[1].Str()
		switch args[0].Str() {
		case TrimBoth:
			s = strings.Trim(s, cutset)
		case TrimLeading:
			s = strings.TrimLeft(s, cutset)
		case TrimTrailing:
			s = strings.TrimRight(s, cutset)
		default:
			return types.Value{}, NewError(ErrDomain, op.String(), "unknown trim flag %s", args[0].Str())
		}
		return narrow(op, typ, types.NewVarchar(s))
	}), nil
}

// checkFamilies matches operand types against parameter families: any character
// type for VARCHAR, any integer type for BIGINT, SYMBOL exactly.
func checkFamilies(op Op, operands []Expression, params []types.SQLType) error {
	for i, o := range operands {
		want, got := params[i], o.Type()
		ok := false
		switch {
		case want.IsCharacter():
			ok = got.IsCharacter()
		case want.IsExactInteger():
			ok = got.IsExactInteger()
		default:
			ok = got == want
		}
		if !ok {
			return typeError(op, "operand %d is %s, want %s", i+1, got, familyName(want))
		}
	}
	return nil
}

func familyName(t types.SQLType) string {
	switch {
	case t.IsCharacter():
		return "a character type"
	case t.IsExactInteger():
		return "an integer type"
	case t.IsNumeric():
		return "a numeric type"
	case t.IsDateTime():
		return "a date/time type"
	}
	return t.String()
}

func checkDeclared(op Op, typ types.SQLType, character bool) error {
	if character && !typ.IsCharacter() {
		return typeError(op, "declared type %s, want a character type", typ)
	}
	if !character && !typ.IsExactInteger() {
		return typeError(op, "declared type %s, want an integer type", typ)
	}
	return nil
}

func itoaOperands(n int) string {
	if n == 1 {
		return "1 operand"
	}
	return strconv.Itoa(n) + " operands"
}

func position(needle, haystack string, from int64) int64 {
	h := []rune(haystack)
	if from < 1 {
		from = 1
	}
	start := from - 1
	if start > int64(len(h)) {
		return 0
	}
	rest := string(h[start:])
	idx := strings.Index(rest, needle)
	if idx < 0 {
		return 0
	}
	return start + int64(utf8.RuneCountInString(rest[:idx])) + 1
}

// substring takes length characters (all when length < 0) from the 1-based start.
// A negative start counts back from the end of s. Start 0 yields "".
func substring(s string, start, length int64) string {
	r := []rune(s)
	n := int64(len(r))
	if start < 0 {
		start += n + 1
	}
	if start <= 0 || start > n {
		return ""
	}
	begin := start - 1
	end := n
	if length >= 0 && length < n-begin {
		end = begin + length
	}
	return string(r[begin:end])
}

func overlay(s, replacement string, start, length int64) string {
	r := []rune(s)
	n := int64(len(r))
	if start < 1 {
		start = 1
	}
	begin := start - 1
	if begin > n {
		begin = n
	}
	end := begin
	switch {
	case length > n-begin:
		end = n
	case length > 0:
		end = begin + length
	}
	return string(r[:begin]) + replacement + string(r[end:])
}

// initCap upper-cases the first letter of every whitespace separated word and
// lower-cases the rest.
func initCap(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	startOfWord := true
	for _, c := range s {
		if unicode.IsSpace(c) {
			startOfWord = true
			b.WriteRune(c)
			continue
		}
		if startOfWord {
			b.WriteRune(unicode.ToUpper(c))
		} else {
			b.WriteRune(unicode.ToLower(c))
		}
		startOfWord = false
	}
	return b.String()
}
