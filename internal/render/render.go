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
	"text/template"

	"github.com/gauntl3t12/omg-idl-gen/internal/ierrors"
	"github.com/gauntl3t12/omg-idl-gen/internal/ir"
)

// Renderer walks an *ir.Module tree depth-first and produces target
// source via the six named templates. It holds no state across calls:
// every Render call is independent, per spec.md §5.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded template set.
func New() (*Renderer, error) {
	t, err := newTemplateSet()
	if err != nil {
		return nil, ierrors.NewRenderError("render", err)
	}
	return &Renderer{tmpl: t}, nil
}

// Render renders the root module. The root itself is never wrapped in a
// module declaration (spec.md §4.5); only its descendants are.
func (r *Renderer) Render(root *ir.Module) (string, error) {
	return r.renderModule(root, 0)
}

type structField struct {
	Name    string
	TypeStr string
}

type unionMember struct {
	Name        string
	ElementID   string
	ElementType string
}

func (r *Renderer) renderModule(m *ir.Module, level int) (string, error) {
	add := 0
	if m.Name != nil {
		add = 1
	}
	contentLevel := level + add

	var body strings.Builder
	for _, name := range m.TypeNames() {
		dcl, _ := m.LookupType(name)
		text, err := r.renderTypeDcl(name, dcl, contentLevel)
		if err != nil {
			return "", err
		}
		body.WriteString(text)
		body.WriteByte('\n')
	}
	for _, name := range m.ModuleNames() {
		child, _ := m.Modules.Get(name)
		text, err := r.renderModule(child.(*ir.Module), contentLevel)
		if err != nil {
			return "", err
		}
		body.WriteString(text)
		body.WriteByte('\n')
	}
	for _, name := range m.ConstNames() {
		cnst, _ := m.LookupConst(name)
		text, err := r.renderConst(cnst, contentLevel)
		if err != nil {
			return "", err
		}
		body.WriteString(text)
		body.WriteByte('\n')
	}

	ctx := struct {
		IndentLevel       int
		ModuleName        string
		ModuleInformation string
	}{IndentLevel: level, ModuleInformation: body.String()}
	if m.Name != nil {
		ctx.ModuleName = *m.Name
	}

	var out strings.Builder
	if err := r.tmpl.ExecuteTemplate(&out, "module.tmpl", ctx); err != nil {
		return "", ierrors.NewRenderError("module.tmpl", err)
	}
	return out.String(), nil
}

func (r *Renderer) renderTypeDcl(name string, dcl ir.TypeDcl, level int) (string, error) {
	switch d := dcl.(type) {
	case *ir.StructDcl:
		return r.renderStruct(d, level)
	case *ir.UnionDcl:
		return r.renderUnion(d, level)
	case *ir.EnumDcl:
		return r.renderEnum(d, level)
	case *ir.TypedefDcl:
		return r.renderTypedef(d, level)
	case ir.NoneDcl:
		return "", nil
	default:
		_ = name
		return "", nil
	}
}

func (r *Renderer) renderStruct(d *ir.StructDcl, level int) (string, error) {
	fields := make([]structField, len(d.Members))
	for i, m := range d.Members {
		fields[i] = structField{Name: m.Name, TypeStr: renderType(m.Type)}
	}
	ctx := struct {
		IndentLevel int
		StructName  string
		Fields      []structField
	}{IndentLevel: level, StructName: d.Name, Fields: fields}
	var out strings.Builder
	if err := r.tmpl.ExecuteTemplate(&out, "struct.tmpl", ctx); err != nil {
		return "", ierrors.NewRenderError("struct.tmpl", err)
	}
	return out.String(), nil
}

func (r *Renderer) renderEnum(d *ir.EnumDcl, level int) (string, error) {
	variants := make([]string, len(d.Enumerators))
	for i, e := range d.Enumerators {
		variants[i] = e.Name
	}
	ctx := struct {
		IndentLevel int
		EnumName    string
		Variants    []string
	}{IndentLevel: level, EnumName: d.Name, Variants: variants}
	var out strings.Builder
	if err := r.tmpl.ExecuteTemplate(&out, "enum.tmpl", ctx); err != nil {
		return "", ierrors.NewRenderError("enum.tmpl", err)
	}
	return out.String(), nil
}

func (r *Renderer) renderUnion(d *ir.UnionDcl, level int) (string, error) {
	var members []unionMember
	for _, c := range d.Cases {
		for _, l := range c.Labels {
			members = append(members, unionMember{
				Name:        labelName(l),
				ElementID:   c.Element.Name,
				ElementType: renderType(c.Element.Type),
			})
		}
	}
	ctx := struct {
		IndentLevel  int
		UnionName    string
		UnionMembers []unionMember
	}{IndentLevel: level, UnionName: d.Name, UnionMembers: members}
	var out strings.Builder
	if err := r.tmpl.ExecuteTemplate(&out, "union_switch.tmpl", ctx); err != nil {
		return "", ierrors.NewRenderError("union_switch.tmpl", err)
	}
	return out.String(), nil
}

func (r *Renderer) renderTypedef(d *ir.TypedefDcl, level int) (string, error) {
	ctx := struct {
		IndentLevel int
		TypedefName string
		TypedefType string
	}{IndentLevel: level, TypedefName: d.Name, TypedefType: renderType(d.Type)}
	var out strings.Builder
	if err := r.tmpl.ExecuteTemplate(&out, "typedef.tmpl", ctx); err != nil {
		return "", ierrors.NewRenderError("typedef.tmpl", err)
	}
	return out.String(), nil
}

func (r *Renderer) renderConst(d *ir.ConstDcl, level int) (string, error) {
	ctx := struct {
		IndentLevel int
		ConstName   string
		ConstType   string
		ConstValue  string
	}{IndentLevel: level, ConstName: d.Name, ConstType: renderType(d.Type), ConstValue: renderValue(d.Value)}
	var out strings.Builder
	if err := r.tmpl.ExecuteTemplate(&out, "const.tmpl", ctx); err != nil {
		return "", ierrors.NewRenderError("const.tmpl", err)
	}
	return out.String(), nil
}
