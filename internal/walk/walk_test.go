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

package walk

import (
	"testing"

	"github.com/kr/pretty"

	"github.com/gauntl3t12/omg-idl-gen/internal/grammar"
	"github.com/gauntl3t12/omg-idl-gen/internal/ir"
	"github.com/gauntl3t12/omg-idl-gen/internal/loader"
)

func mustWalk(t *testing.T, src string, l loader.Loader) *Walker {
	t.Helper()
	spec, err := grammar.Parse("t.idl", src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	w := New(l, nil)
	w.WalkRoot(spec)
	if len(w.Errs) != 0 {
		t.Fatalf("unexpected walk errors: %v", w.Errs)
	}
	return w
}

func TestWalkDoubleModuleDepth(t *testing.T) {
	w := mustWalk(t, `module A { module B { struct Foo { long m_l1; long m_l2; double m_d; }; }; };`, nil)

	a, ok := w.Root.Modules.Get("A")
	if !ok {
		t.Fatalf("expected module A at root")
	}
	b, ok := a.(*ir.Module).Modules.Get("B")
	if !ok {
		t.Fatalf("expected module B inside A")
	}
	dcl, ok := b.(*ir.Module).LookupType("Foo")
	if !ok {
		t.Fatalf("expected struct Foo inside B")
	}
	s := dcl.(*ir.StructDcl)
	if len(s.Members) != 3 {
		t.Fatalf("expected 3 members, got:\n%# v", pretty.Formatter(s.Members))
	}
	if s.Members[0].Name != "m_l1" || s.Members[2].Name != "m_d" {
		t.Fatalf("unexpected member order:\n%# v", pretty.Formatter(s.Members))
	}
	if s.Members[2].Type.(ir.Primitive).Atom != ir.F64 {
		t.Fatalf("expected m_d to be F64, got %#v", s.Members[2].Type)
	}
}

func TestWalkUnionMembersLabelsAndDefault(t *testing.T) {
	w := mustWalk(t, `union Foo switch(long) { case 0: long l; case 1: case 2: short s; default: octet o; };`, nil)

	dcl, ok := w.Root.LookupType("Foo")
	if !ok {
		t.Fatalf("expected union Foo")
	}
	u := dcl.(*ir.UnionDcl)
	if len(u.Cases) != 3 {
		t.Fatalf("expected 3 cases, got %d", len(u.Cases))
	}
	if _, ok := u.Cases[1].Labels[0].(ir.Label); !ok {
		t.Fatalf("expected case 1 to carry a Label, got %#v", u.Cases[1].Labels[0])
	}
	if _, ok := u.Cases[2].Labels[0].(ir.DefaultLabel); !ok {
		t.Fatalf("expected third case to be default, got %#v", u.Cases[2].Labels[0])
	}
}

func TestWalkFirstDeclarationWins(t *testing.T) {
	w := mustWalk(t, `enum Color { RED }; enum Color { BLUE, GREEN };`, nil)

	dcl, ok := w.Root.LookupType("Color")
	if !ok {
		t.Fatalf("expected Color to be declared")
	}
	e := dcl.(*ir.EnumDcl)
	if len(e.Enumerators) != 1 || e.Enumerators[0].Name != "RED" {
		t.Fatalf("expected first declaration (RED) to win, got %#v", e.Enumerators)
	}
}

func TestWalkIncludeIdempotence(t *testing.T) {
	mem := loader.Memory{
		"inner.idl": `struct Shared { long v; };`,
	}
	w := mustWalk(t, `#include "inner.idl" #include "inner.idl" struct Other { long w; };`, mem)

	if len(w.Root.TypeNames()) != 2 {
		t.Fatalf("expected exactly 2 types (Shared once, Other), got %v", w.Root.TypeNames())
	}
	if w.Root.TypeNames()[0] != "Shared" || w.Root.TypeNames()[1] != "Other" {
		t.Fatalf("expected Shared before Other, got %v", w.Root.TypeNames())
	}
}

func TestWalkConstOpAndPreservesLexemesAndOperator(t *testing.T) {
	w := mustWalk(t, `const long X = 0xF0 & 0x0F;`, nil)

	c, ok := w.Root.LookupConst("X")
	if !ok {
		t.Fatalf("expected const X")
	}
	expr, ok := c.Value.(*ir.Expr)
	if !ok {
		t.Fatalf("expected top-level Expr node, got %#v", c.Value)
	}
	left, ok := expr.Left.(ir.HexLiteral)
	if !ok || left.Lexeme != "0xF0" {
		t.Fatalf("expected left operand HexLiteral 0xF0, got %#v", expr.Left)
	}
	right, ok := expr.Right.(*ir.BinaryOp)
	if !ok || right.Op != ir.And {
		t.Fatalf("expected right operand BinaryOp And, got %#v", expr.Right)
	}
	rightLit, ok := right.Right.(ir.HexLiteral)
	if !ok || rightLit.Lexeme != "0x0F" {
		t.Fatalf("expected right-hand literal 0x0F, got %#v", right.Right)
	}
}

func TestWalkArrayTypedefDimensions(t *testing.T) {
	w := mustWalk(t, `module A { const long length = 20; struct Foo { long m; }; }; module B { typedef sequence<A::Foo> FooSeq; typedef A::Foo Foo[A::length]; };`, nil)

	a, _ := w.Root.Modules.Get("A")
	b, _ := w.Root.Modules.Get("B")

	if _, ok := a.(*ir.Module).LookupConst("length"); !ok {
		t.Fatalf("expected const length inside A")
	}

	seqDcl, ok := b.(*ir.Module).LookupType("FooSeq")
	if !ok {
		t.Fatalf("expected typedef FooSeq inside B")
	}
	seq, ok := seqDcl.(*ir.TypedefDcl).Type.(*ir.SequenceType)
	if !ok {
		t.Fatalf("expected FooSeq to be a SequenceType, got %#v", seqDcl.(*ir.TypedefDcl).Type)
	}
	elemName, ok := seq.Element.(ir.ScopedNameType)
	if !ok || elemName.Name.Components[0] != "A" || elemName.Name.Components[1] != "Foo" {
		t.Fatalf("expected sequence element A::Foo, got %#v", seq.Element)
	}

	arrDcl, ok := b.(*ir.Module).LookupType("Foo")
	if !ok {
		t.Fatalf("expected typedef Foo inside B")
	}
	arr, ok := arrDcl.(*ir.TypedefDcl).Type.(*ir.ArrayType)
	if !ok {
		t.Fatalf("expected Foo to be an ArrayType, got %#v", arrDcl.(*ir.TypedefDcl).Type)
	}
	if len(arr.Dims) != 1 {
		t.Fatalf("expected a single dimension, got %d", len(arr.Dims))
	}
	dimName, ok := arr.Dims[0].(ir.ScopedNameExpr)
	if !ok || dimName.Name.Components[1] != "length" {
		t.Fatalf("expected dimension A::length, got %#v", arr.Dims[0])
	}
}
