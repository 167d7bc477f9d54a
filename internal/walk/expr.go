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

// Package walk lowers the participle parse tree (internal/grammar) into
// the analyzer's IR (internal/ir) and, via Walker, drives the top-level
// declaration traversal that populates a module table.
package walk

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/gauntl3t12/omg-idl-gen/internal/grammar"
	"github.com/gauntl3t12/omg-idl-gen/internal/ierrors"
	"github.com/gauntl3t12/omg-idl-gen/internal/ir"
	"github.com/gauntl3t12/omg-idl-gen/internal/token"
)

// posFrom adapts a participle lexer.Position (attached to every grammar
// node) to this package's own token.Position, so diagnostics never leak
// the parser's position type across the walk/grammar boundary.
func posFrom(p lexer.Position) token.Position {
	return token.Position{Filename: p.Filename, Offset: p.Offset, Line: p.Line, Column: p.Column}
}

// lowerConstExpr lowers a const_expr production into a ValueExpr,
// matching the asymmetric Expr(left,right) + BinaryOp(op,right) encoding
// spec.md §4.1 requires: a present Tail yields Expr{Left, Right}; an
// absent Tail passes the head through unwrapped.
func (w *Walker) lowerConstExpr(e *grammar.ConstExpr) (ir.ValueExpr, error) {
	if e == nil {
		return ir.NoneExpr{}, nil
	}
	left, err := w.lowerUnaryExpr(e.Head)
	if err != nil {
		return nil, err
	}
	if e.Tail == nil {
		return left, nil
	}
	right, err := w.lowerOperatorRight(e.Tail)
	if err != nil {
		return nil, err
	}
	return &ir.Expr{Left: left, Right: right}, nil
}

func (w *Walker) lowerUnaryExpr(u *grammar.UnaryExpr) (ir.ValueExpr, error) {
	if u == nil {
		return nil, ierrors.NewParseError(token.NoPos, "empty unary_expr")
	}
	operand, err := w.lowerPrimaryExpr(u.Primary)
	if err != nil {
		return nil, err
	}
	switch u.Op {
	case "-":
		return &ir.UnaryOp{Op: ir.Neg, Operand: operand}, nil
	case "+":
		return &ir.UnaryOp{Op: ir.Pos, Operand: operand}, nil
	case "~":
		return &ir.UnaryOp{Op: ir.Inverse, Operand: operand}, nil
	default:
		return operand, nil
	}
}

func (w *Walker) lowerOperatorRight(o *grammar.OperatorRight) (ir.ValueExpr, error) {
	switch {
	case o.Or != nil:
		return w.binaryOp(ir.Or, o.Or)
	case o.Xor != nil:
		return w.binaryOp(ir.Xor, o.Xor)
	case o.And != nil:
		return w.binaryOp(ir.And, o.And)
	case o.LShift != nil:
		return w.binaryOp(ir.LShift, o.LShift)
	case o.RShift != nil:
		return w.binaryOp(ir.RShift, o.RShift)
	case o.Add != nil:
		return w.binaryOp(ir.Add, o.Add)
	case o.Sub != nil:
		return w.binaryOp(ir.Sub, o.Sub)
	case o.Mul != nil:
		return w.binaryOp(ir.Mul, o.Mul)
	case o.Div != nil:
		return w.binaryOp(ir.Div, o.Div)
	case o.Mod != nil:
		return w.binaryOp(ir.Mod, o.Mod)
	default:
		return nil, ierrors.NewParseError(posFrom(o.Pos), "malformed operator-right production")
	}
}

func (w *Walker) binaryOp(op ir.BinaryOperator, right *grammar.ConstExpr) (ir.ValueExpr, error) {
	r, err := w.lowerConstExpr(right)
	if err != nil {
		return nil, err
	}
	return &ir.BinaryOp{Op: op, Right: r}, nil
}

func (w *Walker) lowerPrimaryExpr(p *grammar.PrimaryExpr) (ir.ValueExpr, error) {
	if p == nil {
		return nil, ierrors.NewParseError(token.NoPos, "empty primary_expr")
	}
	switch {
	case p.Name != nil:
		return ir.ScopedNameExpr{Name: lowerScopedName(p.Name)}, nil
	case p.Literal != nil:
		return w.lowerLiteral(p.Literal)
	case p.Nested != nil:
		inner, err := w.lowerConstExpr(p.Nested)
		if err != nil {
			return nil, err
		}
		return &ir.Brace{Inner: inner}, nil
	default:
		return nil, ierrors.NewParseError(posFrom(p.Pos), "primary_expr has no alternative set")
	}
}

func (w *Walker) lowerLiteral(l *grammar.Literal) (ir.ValueExpr, error) {
	switch {
	case l.Float != nil:
		return lowerFloatLexeme(l.Float.Value), nil
	case l.Hex != nil:
		return ir.HexLiteral{Lexeme: *l.Hex}, nil
	case l.Octal != nil:
		return ir.OctLiteral{Lexeme: *l.Octal}, nil
	case l.Decimal != nil:
		return ir.DecLiteral{Lexeme: *l.Decimal}, nil
	case l.WString != nil:
		return ir.WideStringLiteral{Lexeme: *l.WString}, nil
	case l.String != nil:
		return ir.StringLiteral{Lexeme: *l.String}, nil
	case l.WChar != nil:
		return ir.WideCharLiteral{Lexeme: *l.WChar}, nil
	case l.Char != nil:
		return ir.CharLiteral{Lexeme: *l.Char}, nil
	case l.Bool != nil:
		// Only an exact-case "TRUE" folds true; this mirrors the
		// reference implementation's literal string match rather than a
		// case-insensitive comparison.
		return ir.BooleanLiteral{Value: *l.Bool == "TRUE"}, nil
	default:
		return nil, ierrors.NewParseError(posFrom(l.Pos), "literal has no alternative set")
	}
}

// lowerFloatLexeme splits a scanned float token into the four named
// subparts the IR's FloatLiteral expects, mirroring the reference
// grammar's own floating_pt_literal production (which exposes these as
// separate child nodes rather than one lexeme).
func lowerFloatLexeme(lexeme string) ir.ValueExpr {
	rest := lexeme
	var suffix *string
	if n := len(rest); n > 0 {
		switch rest[n-1] {
		case 'f', 'F', 'l', 'L', 'd', 'D':
			s := rest[n-1:]
			suffix = &s
			rest = rest[:n-1]
		}
	}
	var exponent *string
	if idx := strings.IndexAny(rest, "eE"); idx >= 0 {
		e := rest[idx+1:]
		exponent = &e
		rest = rest[:idx]
	}
	integral, fractional := rest, ""
	if idx := strings.IndexByte(rest, '.'); idx >= 0 {
		integral, fractional = rest[:idx], rest[idx+1:]
	}
	var ip, fp *string
	if integral != "" {
		ip = &integral
	}
	fractionalCopy := fractional
	fp = &fractionalCopy
	return &ir.FloatLiteral{Integral: ip, Fractional: fp, Exponent: exponent, Suffix: suffix}
}

func lowerScopedName(n *grammar.ScopedName) ir.ScopedName {
	return ir.ScopedName{Components: append([]string(nil), n.Components...), Absolute: n.Absolute}
}
