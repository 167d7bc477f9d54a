// Copyright 2024 The omg-idl-gen Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package render is the template-driven traversal of the module table
// (spec.md §4.5): for every module it walks types, then sub-modules, then
// constants, handing each off to a named text/template with a context
// object built from the IR.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gauntl3t12/omg-idl-gen/internal/ir"
)

// labelCaser normalizes the synthesized "LABEL" prefix to upper case
// independent of host locale, so union-variant identifiers are stable
// across platforms — the literal word is already upper case, but this
// keeps the transform locale-proof if it ever grows beyond ASCII.
var labelCaser = cases.Upper(language.Und)

// renderScopedName emits a ScopedName per spec.md §3: a relative name
// joins its components with "::"; an absolute name prefixes the first
// component with the project-root marker "crate::".
func renderScopedName(n ir.ScopedName) string {
	if len(n.Components) == 0 {
		return ""
	}
	if !n.Absolute {
		return strings.Join(n.Components, "::")
	}
	return "crate::" + strings.Join(n.Components, "::")
}

// renderType renders a TypeSpec to its target-language token, per
// spec.md §4.5's type-rendering rules.
func renderType(t ir.TypeSpec) string {
	switch v := t.(type) {
	case ir.Primitive:
		return atomToken(v.Atom)
	case *ir.StringType:
		return "String"
	case *ir.WideStringType:
		return "String"
	case *ir.SequenceType:
		return "Vec<" + renderType(v.Element) + ">"
	case *ir.ArrayType:
		return renderArray(v)
	case ir.ScopedNameType:
		return renderScopedName(v.Name)
	case ir.NoneType:
		return ""
	default:
		return ""
	}
}

func atomToken(a ir.Atom) string {
	switch a {
	case ir.F32:
		return "f32"
	case ir.F64:
		return "f64"
	case ir.F128:
		return "f128"
	case ir.I16:
		return "i16"
	case ir.I32:
		return "i32"
	case ir.I64:
		return "i64"
	case ir.U16:
		return "u16"
	case ir.U32:
		return "u32"
	case ir.U64:
		return "u64"
	case ir.Char, ir.WideChar:
		return "char"
	case ir.Boolean:
		return "bool"
	case ir.Octet:
		return "u8"
	default:
		return ""
	}
}

// renderArray renders `Array(T, [d1,...,dn])` as
// `[[[T;d1 as usize];d2 as usize];...;dn as usize]` — opening brackets
// equal in count to the dimension-list length, each dimension appended
// as `;<expr> as usize]` since a Rust array length must be `usize`.
func renderArray(a *ir.ArrayType) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("[", len(a.Dims)))
	b.WriteString(renderType(a.Element))
	for _, d := range a.Dims {
		b.WriteByte(';')
		b.WriteString(renderValue(d))
		b.WriteString(" as usize]")
	}
	return b.String()
}

// renderValue renders a ValueExpr as source text, concatenating operands
// in parse order with no added whitespace or parenthesization beyond what
// a Brace node carries — see spec.md §4.1's rationale.
func renderValue(v ir.ValueExpr) string {
	switch e := v.(type) {
	case ir.DecLiteral:
		return e.Lexeme
	case ir.OctLiteral:
		return e.Lexeme
	case ir.HexLiteral:
		return e.Lexeme
	case ir.CharLiteral:
		return e.Lexeme
	case ir.WideCharLiteral:
		return e.Lexeme
	case ir.StringLiteral:
		return e.Lexeme
	case ir.WideStringLiteral:
		return e.Lexeme
	case ir.BooleanLiteral:
		if e.Value {
			return "true"
		}
		return "false"
	case *ir.FloatLiteral:
		return renderFloat(e)
	case *ir.UnaryOp:
		return string(e.Op) + renderValue(e.Operand)
	case *ir.BinaryOp:
		return string(e.Op) + renderValue(e.Right)
	case *ir.Expr:
		return renderValue(e.Left) + renderValue(e.Right)
	case *ir.Brace:
		return "(" + renderValue(e.Inner) + ")"
	case ir.ScopedNameExpr:
		return renderScopedName(e.Name)
	case ir.NoneExpr:
		return ""
	default:
		return ""
	}
}

func renderFloat(f *ir.FloatLiteral) string {
	get := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	return fmt.Sprintf("%s.%se%s%s", get(f.Integral), get(f.Fractional), get(f.Exponent), get(f.Suffix))
}

// labelName synthesizes a union-variant identifier from a case label,
// per spec.md §9's acknowledged-heuristic transform: a label whose
// rendered text starts with a digit (a decimal, hex or octal literal)
// renders as "LABEL<text>" (legal identifiers cannot start with a digit);
// a default label renders as "default"; anything else (a named constant,
// a signed or parenthesized expression) is passed through as-is.
func labelName(l ir.SwitchLabel) string {
	switch v := l.(type) {
	case ir.DefaultLabel:
		return "default"
	case ir.Label:
		text := renderValue(v.Value)
		if text != "" && text[0] >= '0' && text[0] <= '9' {
			return labelCaser.String("label") + text
		}
		return text
	default:
		return ""
	}
}
