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
	"log"
	"strings"

	"github.com/gauntl3t12/omg-idl-gen/internal/grammar"
	"github.com/gauntl3t12/omg-idl-gen/internal/ierrors"
	"github.com/gauntl3t12/omg-idl-gen/internal/ir"
	"github.com/gauntl3t12/omg-idl-gen/internal/loader"
)

// Walker drives the top-level declaration traversal (spec.md §4.3): it
// owns the module table being populated, the file loader serving
// #include, and a verbose trace logger.
type Walker struct {
	Root   *ir.Module
	Loader loader.Loader
	Logger *log.Logger

	// included records the absolute/resolved path of every file already
	// walked, so a transitive re-#include is a no-op rather than
	// re-parsed work — a performance complement to, not a substitute
	// for, the module table's own first-declaration-wins semantics.
	included map[string]bool

	// Errs accumulates ParseError/FileNotFound diagnostics raised by
	// recognized-but-malformed productions. The walker never aborts on
	// these: spec.md §7's best-effort-emit posture means an error here
	// is recorded and traversal continues.
	Errs ierrors.List
}

// New constructs a Walker with an empty root module.
func New(l loader.Loader, logger *log.Logger) *Walker {
	return &Walker{
		Root:     ir.NewModule(nil),
		Loader:   l,
		Logger:   logger,
		included: make(map[string]bool),
	}
}

func (w *Walker) trace(scope []string, format string, args ...interface{}) {
	if w.Logger == nil {
		return
	}
	indent := strings.Repeat("   ", len(scope))
	w.Logger.Printf(indent+format, args...)
}

// WalkRoot walks every top-level definition of a freshly parsed file at
// the root scope. This is the driver's entry point for the main IDL file.
func (w *Walker) WalkRoot(spec *grammar.Specification) {
	w.walkDefs(nil, spec.Definitions)
}

func (w *Walker) walkDefs(scope []string, defs []*grammar.Definition) {
	for _, d := range defs {
		w.walkDef(scope, d)
	}
}

// walkDef dispatches a single definition. Per spec.md §4.3, unrecognized
// or malformed content never aborts the run: a lowering failure is
// recorded in Errs and traversal moves on to the next sibling.
func (w *Walker) walkDef(scope []string, d *grammar.Definition) {
	switch {
	case d.Module != nil:
		w.walkModule(scope, d.Module)
	case d.Struct != nil:
		w.walkStruct(scope, d.Struct)
	case d.Union != nil:
		w.walkUnion(scope, d.Union)
	case d.Enum != nil:
		w.walkEnum(scope, d.Enum)
	case d.Typedef != nil:
		w.walkTypedef(scope, d.Typedef)
	case d.Const != nil:
		w.walkConst(scope, d.Const)
	case d.Include != nil:
		w.walkInclude(scope, d.Include)
	}
}

func (w *Walker) walkModule(scope []string, m *grammar.ModuleDcl) {
	w.trace(scope, "module %s", m.Name)
	newScope := append(append([]string(nil), scope...), m.Name)
	w.lookupOrCreateModule(newScope)
	w.walkDefs(newScope, m.Body)
}

// lookupOrCreateModule descends from the root, materializing any absent
// intermediate module, matching spec.md §4.4's lookup_or_create.
func (w *Walker) lookupOrCreateModule(scope []string) *ir.Module {
	cur := w.Root
	for _, name := range scope {
		cur = cur.LookupOrCreateModule(name)
	}
	return cur
}

func (w *Walker) walkStruct(scope []string, s *grammar.StructDef) {
	w.trace(scope, "struct %s", s.Name)
	var members []ir.StructMember
	for _, m := range s.Members {
		base, err := w.lowerTypeSpec(m.Type)
		if err != nil {
			w.Errs.Add(err.(ierrors.Error))
			continue
		}
		for _, decl := range m.Declarators {
			mt, err := w.lowerDeclaratorType(base, decl)
			if err != nil {
				w.Errs.Add(err.(ierrors.Error))
				continue
			}
			members = append(members, ir.StructMember{Type: mt, Name: decl.Name})
		}
	}
	mod := w.lookupOrCreateModule(scope)
	mod.AddType(s.Name, &ir.StructDcl{Name: s.Name, Members: members})
}

func (w *Walker) walkUnion(scope []string, u *grammar.UnionDef) {
	w.trace(scope, "union %s", u.Name)
	disc, err := w.lowerSwitchTypeSpec(u.Discriminant)
	if err != nil {
		w.Errs.Add(err.(ierrors.Error))
		disc = ir.NoneType{}
	}
	var cases []ir.SwitchCase
	for _, c := range u.Cases {
		var labels []ir.SwitchLabel
		for _, l := range c.Labels {
			if l.Default {
				labels = append(labels, ir.DefaultLabel{})
				continue
			}
			v, err := w.lowerConstExpr(l.Value)
			if err != nil {
				w.Errs.Add(err.(ierrors.Error))
				continue
			}
			labels = append(labels, ir.Label{Value: v})
		}
		elemType, err := w.lowerTypeSpec(c.Element.Type)
		if err != nil {
			w.Errs.Add(err.(ierrors.Error))
			continue
		}
		elemType, err = w.lowerDeclaratorType(elemType, c.Element.Decl)
		if err != nil {
			w.Errs.Add(err.(ierrors.Error))
			continue
		}
		cases = append(cases, ir.SwitchCase{
			Labels:  labels,
			Element: ir.SwitchElement{Type: elemType, Name: c.Element.Decl.Name},
		})
	}
	mod := w.lookupOrCreateModule(scope)
	mod.AddType(u.Name, &ir.UnionDcl{Name: u.Name, Discriminant: disc, Cases: cases})
}

func (w *Walker) walkEnum(scope []string, e *grammar.EnumDcl) {
	w.trace(scope, "enum %s", e.Name)
	enumerators := make([]ir.Enumerator, len(e.Enumerators))
	for i, name := range e.Enumerators {
		enumerators[i] = ir.Enumerator{Name: name}
	}
	mod := w.lookupOrCreateModule(scope)
	mod.AddType(e.Name, &ir.EnumDcl{Name: e.Name, Enumerators: enumerators})
}

func (w *Walker) walkTypedef(scope []string, t *grammar.TypedefDcl) {
	base, err := w.lowerTypeSpec(t.Type)
	if err != nil {
		w.Errs.Add(err.(ierrors.Error))
		return
	}
	mod := w.lookupOrCreateModule(scope)
	for _, decl := range t.Declarators {
		w.trace(scope, "typedef %s", decl.Name)
		dt, err := w.lowerDeclaratorType(base, decl)
		if err != nil {
			w.Errs.Add(err.(ierrors.Error))
			continue
		}
		mod.AddType(decl.Name, &ir.TypedefDcl{Name: decl.Name, Type: dt})
	}
}

func (w *Walker) walkConst(scope []string, c *grammar.ConstDcl) {
	w.trace(scope, "const %s", c.Name)
	t, err := w.lowerTypeSpec(c.Type)
	if err != nil {
		w.Errs.Add(err.(ierrors.Error))
		return
	}
	v, err := w.lowerConstExpr(c.Value)
	if err != nil {
		w.Errs.Add(err.(ierrors.Error))
		return
	}
	mod := w.lookupOrCreateModule(scope)
	mod.AddConst(c.Name, &ir.ConstDcl{Name: c.Name, Type: t, Value: v})
}

func (w *Walker) walkInclude(scope []string, inc *grammar.IncludeDirective) {
	path := includePath(inc)
	w.trace(scope, "#include %q", path)

	text, resolved, err := w.Loader.Load(path)
	if err != nil {
		w.Errs.Add(ierrors.NewFileNotFound(posFrom(inc.Pos), path))
		return
	}
	if w.included[resolved] {
		return
	}
	w.included[resolved] = true

	spec, err := grammar.Parse(path, text)
	if err != nil {
		w.Errs.Add(ierrors.NewParseError(posFrom(inc.Pos), "parsing included file %s: %v", path, err))
		return
	}
	// Includes expand in place, under the current scope, at the point of
	// the directive (spec.md §4.3 "Include").
	w.walkDefs(scope, spec.Definitions)
}

func includePath(inc *grammar.IncludeDirective) string {
	if inc.Quoted != nil {
		return strings.Trim(*inc.Quoted, `"`)
	}
	if inc.Angle != nil {
		return inc.Angle.Text()
	}
	return ""
}
