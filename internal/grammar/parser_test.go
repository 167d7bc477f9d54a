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

import "testing"

func TestParseModuleNesting(t *testing.T) {
	spec, err := Parse("t.idl", `module A { module B { struct Foo { long m_l; }; }; };`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(spec.Definitions) != 1 || spec.Definitions[0].Module == nil {
		t.Fatalf("expected a single module definition, got %#v", spec.Definitions)
	}
	outer := spec.Definitions[0].Module
	if outer.Name != "A" {
		t.Fatalf("expected outer module A, got %q", outer.Name)
	}
	if len(outer.Body) != 1 || outer.Body[0].Module == nil || outer.Body[0].Module.Name != "B" {
		t.Fatalf("expected nested module B, got %#v", outer.Body)
	}
	inner := outer.Body[0].Module
	if len(inner.Body) != 1 || inner.Body[0].Struct == nil || inner.Body[0].Struct.Name != "Foo" {
		t.Fatalf("expected struct Foo inside B, got %#v", inner.Body)
	}
}

func TestParseUnionSwitchCaseDefault(t *testing.T) {
	spec, err := Parse("t.idl", `union Foo switch(long) { case 0: long l; case 1: case 2: short s; default: octet o; };`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	u := spec.Definitions[0].Union
	if u == nil || u.Name != "Foo" {
		t.Fatalf("expected union Foo, got %#v", spec.Definitions[0])
	}
	if len(u.Cases) != 3 {
		t.Fatalf("expected 3 case arms, got %d", len(u.Cases))
	}
	if len(u.Cases[1].Labels) != 2 {
		t.Fatalf("expected the second arm to carry two labels (case 1, case 2), got %d", len(u.Cases[1].Labels))
	}
	if !u.Cases[2].Labels[0].Default {
		t.Fatalf("expected the third arm's label to be default")
	}
}

func TestParseConstExprBinaryOperator(t *testing.T) {
	spec, err := Parse("t.idl", `const long X = 0xF0 & 0x0F;`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	c := spec.Definitions[0].Const
	if c == nil || c.Name != "X" {
		t.Fatalf("expected const X, got %#v", spec.Definitions[0])
	}
	if c.Value.Tail == nil || c.Value.Tail.And == nil {
		t.Fatalf("expected a trailing And operator-right production, got %#v", c.Value)
	}
}

func TestParseBooleanLiteralCaseSensitivePayload(t *testing.T) {
	spec, err := Parse("t.idl", `const boolean X = TRUE;`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	c := spec.Definitions[0].Const
	lit := c.Value.Head.Primary.Literal
	if lit == nil || lit.Bool == nil || *lit.Bool != "TRUE" {
		t.Fatalf("expected literal Bool to capture the exact source text TRUE, got %#v", lit)
	}
}

func TestParseIncludeQuotedAndAngle(t *testing.T) {
	spec, err := Parse("t.idl", `#include "inner.idl"`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	inc := spec.Definitions[0].Include
	if inc == nil || inc.Quoted == nil || *inc.Quoted != `"inner.idl"` {
		t.Fatalf("expected quoted include token \"inner.idl\", got %#v", inc)
	}

	spec, err = Parse("t.idl", `#include <sub/inner.idl>`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	inc = spec.Definitions[0].Include
	if inc == nil || inc.Angle == nil || inc.Angle.Text() != "sub/inner.idl" {
		t.Fatalf("expected angle include path sub/inner.idl, got %#v", inc)
	}
}

func TestParseScopedNameAbsolute(t *testing.T) {
	spec, err := Parse("t.idl", `typedef ::A::Foo AbsAlias;`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	td := spec.Definitions[0].Typedef
	scoped := td.Type.Scoped
	if scoped == nil || !scoped.Absolute {
		t.Fatalf("expected an absolute scoped name, got %#v", scoped)
	}
	if len(scoped.Components) != 2 || scoped.Components[0] != "A" || scoped.Components[1] != "Foo" {
		t.Fatalf("expected components [A Foo], got %#v", scoped.Components)
	}
}
