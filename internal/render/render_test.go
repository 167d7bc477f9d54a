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

package render

import (
	"strings"
	"testing"

	"github.com/gauntl3t12/omg-idl-gen/internal/ir"
)

func mustRender(t *testing.T, root *ir.Module) string {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	out, err := r.Render(root)
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	return out
}

func TestRenderDoubleModuleDepth(t *testing.T) {
	root := ir.NewModule(nil)
	aName, bName := "A", "B"
	a := root.LookupOrCreateModule(aName)
	b := a.LookupOrCreateModule(bName)
	b.AddType("Foo", &ir.StructDcl{
		Name: "Foo",
		Members: []ir.StructMember{
			{Name: "m_l1", Type: ir.Primitive{Atom: ir.I32}},
			{Name: "m_l2", Type: ir.Primitive{Atom: ir.I32}},
			{Name: "m_d", Type: ir.Primitive{Atom: ir.F64}},
		},
	})

	out := mustRender(t, root)

	for _, want := range []string{
		"pub mod A {",
		"pub mod B {",
		"pub struct Foo {",
		"pub m_l1: i32,",
		"pub m_d: f64,",
		"pub fn new(",
		"pub fn m_l1(&self)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRenderEnumVariants(t *testing.T) {
	root := ir.NewModule(nil)
	root.AddType("Foo", &ir.EnumDcl{
		Name: "Foo",
		Enumerators: []ir.Enumerator{
			{Name: "VARIANT0"}, {Name: "VARIANT1"}, {Name: "VARIANT2"},
		},
	})

	out := mustRender(t, root)
	for _, want := range []string{
		"pub enum Foo {",
		"VARIANT0,",
		"VARIANT1,",
		"VARIANT2,",
		"pub fn as_str(&self)",
		"pub fn parse(value: &str)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRenderModuleUseDiffModule(t *testing.T) {
	root := ir.NewModule(nil)
	a := root.LookupOrCreateModule("A")
	a.AddType("Foo", &ir.StructDcl{Name: "Foo"})
	a.AddConst("length", &ir.ConstDcl{Name: "length", Type: ir.Primitive{Atom: ir.I32}, Value: ir.DecLiteral{Lexeme: "20"}})

	b := root.LookupOrCreateModule("B")
	b.AddType("FooSeq", &ir.TypedefDcl{
		Name: "FooSeq",
		Type: &ir.SequenceType{Element: ir.ScopedNameType{Name: ir.ScopedName{Components: []string{"A", "Foo"}, Absolute: true}}},
	})
	b.AddType("Foo", &ir.TypedefDcl{
		Name: "Foo",
		Type: &ir.ArrayType{
			Element: ir.ScopedNameType{Name: ir.ScopedName{Components: []string{"A", "Foo"}, Absolute: true}},
			Dims:    []ir.ValueExpr{ir.ScopedNameExpr{Name: ir.ScopedName{Components: []string{"A", "length"}, Absolute: true}}},
		},
	})

	out := mustRender(t, root)
	if !strings.Contains(out, "pub type FooSeq = Vec<crate::A::Foo>;") {
		t.Fatalf("expected FooSeq typedef rendering, got:\n%s", out)
	}
	if !strings.Contains(out, "pub type Foo = [crate::A::Foo;crate::A::length as usize];") {
		t.Fatalf("expected Foo array typedef rendering, got:\n%s", out)
	}
}

func TestRenderUnionMembers(t *testing.T) {
	root := ir.NewModule(nil)
	root.AddType("Foo", &ir.UnionDcl{
		Name:         "Foo",
		Discriminant: ir.Primitive{Atom: ir.I32},
		Cases: []ir.SwitchCase{
			{Labels: []ir.SwitchLabel{ir.Label{Value: ir.DecLiteral{Lexeme: "0"}}}, Element: ir.SwitchElement{Name: "l", Type: ir.Primitive{Atom: ir.I32}}},
			{Labels: []ir.SwitchLabel{ir.Label{Value: ir.DecLiteral{Lexeme: "1"}}, ir.Label{Value: ir.DecLiteral{Lexeme: "2"}}}, Element: ir.SwitchElement{Name: "s", Type: ir.Primitive{Atom: ir.I16}}},
			{Labels: []ir.SwitchLabel{ir.DefaultLabel{}}, Element: ir.SwitchElement{Name: "o", Type: ir.Primitive{Atom: ir.Octet}}},
		},
	})

	out := mustRender(t, root)
	for _, want := range []string{
		"LABEL0{ l: i32 },",
		"LABEL1{ s: i16 },",
		"LABEL2{ s: i16 },",
		"default{ o: u8 },",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRenderConstOpAnd(t *testing.T) {
	root := ir.NewModule(nil)
	root.AddConst("X", &ir.ConstDcl{
		Name: "X",
		Type: ir.Primitive{Atom: ir.I32},
		Value: &ir.Expr{
			Left:  ir.HexLiteral{Lexeme: "0xF0"},
			Right: &ir.BinaryOp{Op: ir.And, Right: ir.HexLiteral{Lexeme: "0x0F"}},
		},
	})

	out := mustRender(t, root)
	if !strings.Contains(out, "pub const X: i32 = 0xF0&0x0F;") {
		t.Fatalf("expected operator-preserving const rendering, got:\n%s", out)
	}
}

func TestRenderEmptyModuleBody(t *testing.T) {
	root := ir.NewModule(nil)
	root.LookupOrCreateModule("Empty")

	out := mustRender(t, root)
	if !strings.Contains(out, "pub mod Empty {") {
		t.Fatalf("expected an empty module block, got:\n%s", out)
	}
}
