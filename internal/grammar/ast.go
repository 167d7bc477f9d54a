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

package grammar

import "github.com/alecthomas/participle/v2/lexer"

// Specification is the root production: a sequence of top-level
// definitions, in source order.
type Specification struct {
	Pos         lexer.Position
	Definitions []*Definition `parser:"@@*"`
}

// Definition dispatches on the handful of productions legal at file or
// module-body scope.
type Definition struct {
	Pos     lexer.Position
	Include *IncludeDirective `parser:"(  @@"`
	Module  *ModuleDcl        `parser:" | @@"`
	Struct  *StructDef        `parser:" | @@ \";\""`
	Union   *UnionDef         `parser:" | @@ \";\""`
	Enum    *EnumDcl          `parser:" | @@ \";\""`
	Typedef *TypedefDcl       `parser:" | @@ \";\""`
	Const   *ConstDcl         `parser:" | @@ \";\"  )"`
}

// ModuleDcl is `module id { definition* };`.
type ModuleDcl struct {
	Pos  lexer.Position
	Name string        `parser:"\"module\" @Ident"`
	Body []*Definition `parser:"\"{\" @@* \"}\" \";\"?"`
}

// IncludeDirective is `#include "path"` or `#include <path>`.
type IncludeDirective struct {
	Pos    lexer.Position
	Quoted *string    `parser:"\"#\" \"include\" (  @String"`
	Angle  *AnglePath `parser:"                   | @@ )"`
}

// AnglePath is the `<...>` spelling of an include path, reassembled from
// its identifier and separator tokens by Text.
type AnglePath struct {
	Pos   lexer.Position
	Parts []string `parser:"\"<\" @(Ident | \".\" | \"/\")* \">\""`
}

// Text joins the path's parts back into a single logical filename.
func (a *AnglePath) Text() string {
	out := ""
	for _, p := range a.Parts {
		out += p
	}
	return out
}

// StructDef is `struct id { member+ }`.
type StructDef struct {
	Pos     lexer.Position
	Name    string    `parser:"\"struct\" @Ident"`
	Members []*Member `parser:"\"{\" @@* \"}\""`
}

// Member is `type_spec declarator (, declarator)* ;`.
type Member struct {
	Pos         lexer.Position
	Type        *TypeSpec     `parser:"@@"`
	Declarators []*Declarator `parser:"@@ ( \",\" @@ )* \";\""`
}

// Declarator is a simple identifier or an identifier with one or more
// fixed array dimensions.
type Declarator struct {
	Pos  lexer.Position
	Name string            `parser:"@Ident"`
	Dims []*FixedArraySize `parser:"@@*"`
}

// FixedArraySize is one `[const_expr]` array-dimension suffix.
type FixedArraySize struct {
	Pos  lexer.Position
	Size *ConstExpr `parser:"\"[\" @@ \"]\""`
}

// UnionDef is `union id switch(switch_type_spec) { case+ };`.
type UnionDef struct {
	Pos          lexer.Position
	Name         string    `parser:"\"union\" @Ident"`
	Discriminant *TypeSpec `parser:"\"switch\" \"(\" @@ \")\""`
	Cases        []*Case   `parser:"\"{\" @@* \"}\""`
}

// Case is one or more labels sharing a single element spec.
type Case struct {
	Pos     lexer.Position
	Labels  []*CaseLabel `parser:"@@+"`
	Element *ElementSpec `parser:"@@ \";\""`
}

// CaseLabel is `case const_expr :` or `default :`.
type CaseLabel struct {
	Pos     lexer.Position
	Value   *ConstExpr `parser:"(  \"case\" @@ \":\""`
	Default bool       `parser:" | @\"default\" \":\" )"`
}

// ElementSpec is the `type_spec declarator` pair a union case selects.
type ElementSpec struct {
	Pos  lexer.Position
	Type *TypeSpec   `parser:"@@"`
	Decl *Declarator `parser:"@@"`
}

// EnumDcl is `enum id { enumerator (, enumerator)* ,? };`.
type EnumDcl struct {
	Pos         lexer.Position
	Name        string   `parser:"\"enum\" @Ident"`
	Enumerators []string `parser:"\"{\" @Ident ( \",\" @Ident )* \",\"? \"}\""`
}

// TypedefDcl is `typedef type_spec declarator (, declarator)*;`.
type TypedefDcl struct {
	Pos         lexer.Position
	Type        *TypeSpec     `parser:"\"typedef\" @@"`
	Declarators []*Declarator `parser:"@@ ( \",\" @@ )*"`
}

// ConstDcl is `const type_spec id = const_expr;`.
type ConstDcl struct {
	Pos   lexer.Position
	Type  *TypeSpec  `parser:"\"const\" @@"`
	Name  string     `parser:"@Ident"`
	Value *ConstExpr `parser:"\"=\" @@"`
}

// TypeSpec is every legal type-specifier production: the primitive
// keywords, the template type (string/wstring, disambiguated by
// StringType.Kind), sequence, and a scoped-name reference to a
// previously declared type.
type TypeSpec struct {
	Pos        lexer.Position
	Float      bool        `parser:"(  @\"float\""`
	Double     bool        `parser:" | @\"double\""`
	LongDouble bool        `parser:" | ( \"long\" @\"double\" )"`
	ULongLong  bool        `parser:" | ( \"unsigned\" \"long\" @\"long\" )"`
	ULong      bool        `parser:" | ( \"unsigned\" @\"long\" )"`
	UShort     bool        `parser:" | ( \"unsigned\" @\"short\" )"`
	LongLong   bool        `parser:" | ( \"long\" @\"long\" )"`
	Long       bool        `parser:" | @\"long\""`
	Short      bool        `parser:" | @\"short\""`
	CharT      bool        `parser:" | @\"char\""`
	WCharT     bool        `parser:" | @\"wchar\""`
	Boolean    bool        `parser:" | @\"boolean\""`
	Octet      bool        `parser:" | @\"octet\""`
	String     *StringType `parser:" | @@"`
	Sequence   *Sequence   `parser:" | @@"`
	Scoped     *ScopedName `parser:" | @@ )"`
}

// StringType is `string` / `string<bound>` / `wstring` / `wstring<bound>`;
// Kind captures which keyword was written and Bound the optional bound.
type StringType struct {
	Pos   lexer.Position
	Kind  string     `parser:"@( \"string\" | \"wstring\" )"`
	Bound *ConstExpr `parser:"( \"<\" @@ \">\" )?"`
}

// Sequence is `sequence<type_spec>` or `sequence<type_spec, bound>`.
type Sequence struct {
	Pos     lexer.Position
	Element *TypeSpec  `parser:"\"sequence\" \"<\" @@"`
	Bound   *ConstExpr `parser:"( \",\" @@ )? \">\""`
}

// ScopedName is a possibly-rooted `::`-separated identifier path.
type ScopedName struct {
	Pos        lexer.Position
	Absolute   bool     `parser:"@\"::\"?"`
	Components []string `parser:"@Ident ( \"::\" @Ident )*"`
}

// ConstExpr is `unary_expr (or_expr|xor_expr|and_expr|shift_expr|add_expr|
// mult_expr)?` — a head expression with an optional trailing operator
// production wrapping its right-hand operand. This is not left-recursive:
// the grammar already shapes it as two sequential, optional slots, which
// is exactly what the analyzer's Expr(left, right) IR node mirrors.
type ConstExpr struct {
	Pos  lexer.Position
	Head *UnaryExpr     `parser:"@@"`
	Tail *OperatorRight `parser:"@@?"`
}

// OperatorRight is the tagged union of trailing binary-operator
// productions; each wraps exactly the right-hand operand.
type OperatorRight struct {
	Pos    lexer.Position
	Or     *ConstExpr `parser:"(  \"|\" @@"`
	Xor    *ConstExpr `parser:" | \"^\" @@"`
	And    *ConstExpr `parser:" | \"&\" @@"`
	LShift *ConstExpr `parser:" | \"<\" \"<\" @@"`
	RShift *ConstExpr `parser:" | \">\" \">\" @@"`
	Add    *ConstExpr `parser:" | \"+\" @@"`
	Sub    *ConstExpr `parser:" | \"-\" @@"`
	Mul    *ConstExpr `parser:" | \"*\" @@"`
	Div    *ConstExpr `parser:" | \"/\" @@"`
	Mod    *ConstExpr `parser:" | \"%\" @@  )"`
}

// UnaryExpr is an optionally-signed primary expression.
type UnaryExpr struct {
	Pos     lexer.Position
	Op      string       `parser:"@( \"-\" | \"+\" | \"~\" )?"`
	Primary *PrimaryExpr `parser:"@@"`
}

// PrimaryExpr dispatches on a scoped name, a literal, or a parenthesized
// sub-expression.
type PrimaryExpr struct {
	Pos     lexer.Position
	Name    *ScopedName `parser:"(  @@"`
	Literal *Literal    `parser:" | @@"`
	Nested  *ConstExpr  `parser:" | \"(\" @@ \")\"  )"`
}

// Literal is any one of the IDL literal forms.
type Literal struct {
	Pos     lexer.Position
	Float   *FloatLit `parser:"(  @@"`
	Hex     *string   `parser:" | @Hex"`
	Octal   *string   `parser:" | @Octal"`
	Decimal *string   `parser:" | @Decimal"`
	WString *string   `parser:" | @WString"`
	String  *string   `parser:" | @String"`
	WChar   *string   `parser:" | @WChar"`
	Char    *string   `parser:" | @Char"`
	Bool    *string   `parser:" | @( \"TRUE\" | \"FALSE\" )  )"`
}

// FloatLit holds a floating point literal as one lexeme.
// Lexing captures the whole token; splitting it into parts is the
// analyzer's job (see internal/walk), matching the reference grammar's
// own `floating_pt_literal` production which exposes the subparts as
// separate child nodes.
type FloatLit struct {
	Pos   lexer.Position
	Value string `parser:"@Float"`
}
