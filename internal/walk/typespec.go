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
	"github.com/gauntl3t12/omg-idl-gen/internal/grammar"
	"github.com/gauntl3t12/omg-idl-gen/internal/ierrors"
	"github.com/gauntl3t12/omg-idl-gen/internal/ir"
)

// lowerTypeSpec lowers any type-specifier production into a TypeSpec.
// A present string/wstring/sequence bound is still lowered — a malformed
// bound still fails generation. A string bound is kept in the Bound field
// and a sequence bound is dropped; the renderer emits the unbounded form
// either way.
func (w *Walker) lowerTypeSpec(t *grammar.TypeSpec) (ir.TypeSpec, error) {
	if t == nil {
		return ir.NoneType{}, nil
	}
	switch {
	case t.Float:
		return ir.Primitive{Atom: ir.F32}, nil
	case t.Double:
		return ir.Primitive{Atom: ir.F64}, nil
	case t.LongDouble:
		return ir.Primitive{Atom: ir.F128}, nil
	case t.ULongLong:
		return ir.Primitive{Atom: ir.U64}, nil
	case t.ULong:
		return ir.Primitive{Atom: ir.U32}, nil
	case t.UShort:
		return ir.Primitive{Atom: ir.U16}, nil
	case t.LongLong:
		return ir.Primitive{Atom: ir.I64}, nil
	case t.Long:
		return ir.Primitive{Atom: ir.I32}, nil
	case t.Short:
		return ir.Primitive{Atom: ir.I16}, nil
	case t.CharT:
		return ir.Primitive{Atom: ir.Char}, nil
	case t.WCharT:
		return ir.Primitive{Atom: ir.WideChar}, nil
	case t.Boolean:
		return ir.Primitive{Atom: ir.Boolean}, nil
	case t.Octet:
		return ir.Primitive{Atom: ir.Octet}, nil
	case t.String != nil:
		bound, err := w.lowerConstExpr(t.String.Bound)
		if err != nil {
			return nil, err
		}
		if t.String.Kind == "wstring" {
			return &ir.WideStringType{Bound: boundOrNil(bound)}, nil
		}
		return &ir.StringType{Bound: boundOrNil(bound)}, nil
	case t.Sequence != nil:
		elem, err := w.lowerTypeSpec(t.Sequence.Element)
		if err != nil {
			return nil, err
		}
		if t.Sequence.Bound != nil {
			if _, err := w.lowerConstExpr(t.Sequence.Bound); err != nil {
				return nil, err
			}
		}
		return &ir.SequenceType{Element: elem}, nil
	case t.Scoped != nil:
		return ir.ScopedNameType{Name: lowerScopedName(t.Scoped)}, nil
	default:
		return nil, ierrors.NewParseError(posFrom(t.Pos), "type_spec has no alternative set")
	}
}

// boundOrNil turns a lowered-but-discarded bound expression into the nil
// Bound StringType/WideStringType expects when no bound was present.
func boundOrNil(v ir.ValueExpr) ir.ValueExpr {
	if _, ok := v.(ir.NoneExpr); ok {
		return nil
	}
	return v
}

// lowerSwitchTypeSpec lowers a union discriminant with lowerTypeSpec's
// general dispatch. No restriction to integer, char, boolean or octet
// types is applied: the grammar parses the discriminant as a full
// TypeSpec, and a float, string or sequence discriminant is lowered like
// any other type.
func (w *Walker) lowerSwitchTypeSpec(t *grammar.TypeSpec) (ir.TypeSpec, error) {
	return w.lowerTypeSpec(t)
}

// lowerDeclaratorType wraps base in an ArrayType for each fixed-array
// dimension declared on decl, outermost first as written in source.
func (w *Walker) lowerDeclaratorType(base ir.TypeSpec, decl *grammar.Declarator) (ir.TypeSpec, error) {
	if len(decl.Dims) == 0 {
		return base, nil
	}
	dims := make([]ir.ValueExpr, 0, len(decl.Dims))
	for _, d := range decl.Dims {
		v, err := w.lowerConstExpr(d.Size)
		if err != nil {
			return nil, err
		}
		dims = append(dims, v)
	}
	return &ir.ArrayType{Element: base, Dims: dims}, nil
}
