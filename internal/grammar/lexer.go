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

// Package grammar is the external parser collaborator: a PEG-style,
// struct-tag grammar over the OMG IDL subset (modules, structs, unions,
// enums, typedefs, constants, #include), built on participle. The rest of
// the generator never sees raw tokens — it consumes the typed AST this
// package produces.
package grammar

import "github.com/alecthomas/participle/v2/lexer"

var idlLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
	{Name: "Keyword", Pattern: `(?i)\b(module|struct|union|switch|case|default|enum|typedef|const|include|unsigned|long|short|float|double|char|wchar|boolean|octet|string|wstring|sequence|TRUE|FALSE)\b`},
	{Name: "Float", Pattern: `[0-9]+\.[0-9]*([eE][+-]?[0-9]+)?[fFlLdD]?|\.[0-9]+([eE][+-]?[0-9]+)?[fFlLdD]?|[0-9]+[eE][+-]?[0-9]+[fFlLdD]?`},
	{Name: "Hex", Pattern: `0[xX][0-9a-fA-F]+`},
	{Name: "Octal", Pattern: `0[0-7]+`},
	{Name: "Decimal", Pattern: `[0-9]+`},
	{Name: "WString", Pattern: `L"([^"\\]|\\.)*"`},
	{Name: "String", Pattern: `"([^"\\]|\\.)*"`},
	{Name: "WChar", Pattern: `L'([^'\\]|\\.)'`},
	{Name: "Char", Pattern: `'([^'\\]|\\.)'`},
	{Name: "ScopeSep", Pattern: `::`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[{}()\[\];,:=.+\-*/%~^&|<>#]`},
	{Name: "Whitespace", Pattern: `\s+`},
})
