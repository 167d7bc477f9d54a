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

package ir

// Atom enumerates the primitive type-specifier atoms.
type Atom int

const (
	F32 Atom = iota
	F64
	F128
	I16
	I32
	I64
	U16
	U32
	U64
	Char
	WideChar
	Boolean
	Octet
)

// TypeSpec is the tagged variant for a type specifier.
type TypeSpec interface {
	typeSpec()
}

// Primitive wraps one of the Atom constants.
type Primitive struct{ Atom Atom }

// StringType is `string` or `string<bound>`. The bound is parsed (and any
// parse error in it still fails generation) but the reference renderer
// ignores it and always emits the unbounded form — a documented truncation,
// not an error.
type StringType struct{ Bound ValueExpr } // Bound is nil when absent

// WideStringType is the wide-character counterpart of StringType.
type WideStringType struct{ Bound ValueExpr }

// SequenceType is `sequence<T>` or `sequence<T, bound>`. As with
// StringType, a present bound is lowered (validating it as a constant
// expression) and then discarded: sequences are always emitted unbounded.
type SequenceType struct{ Element TypeSpec }

// ArrayType wraps a base type with one dimension expression per array
// dimension, outermost first as written in source.
type ArrayType struct {
	Element TypeSpec
	Dims    []ValueExpr
}

// ScopedNameType is a reference to a previously-declared type.
type ScopedNameType struct{ Name ScopedName }

// NoneType is the sentinel for a missing type (only used internally by the
// lowerer when a production is malformed and the walker chooses to recover
// rather than abort the whole generation).
type NoneType struct{}

func (Primitive) typeSpec()       {}
func (*StringType) typeSpec()     {}
func (*WideStringType) typeSpec() {}
func (*SequenceType) typeSpec()   {}
func (*ArrayType) typeSpec()      {}
func (ScopedNameType) typeSpec()  {}
func (NoneType) typeSpec()        {}
