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
	"embed"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// newTemplateSet parses the six named templates spec.md §4.5 requires
// (module, struct, enum, union_switch, typedef, const), wiring sprig's
// helper funcmap the way google-gapid's gapil/template package wires its
// own Functions registry into a stdlib text/template.Template — here
// `repeat` is the one sprig helper the template bodies actually call, for
// level-based indentation; the rest of the funcmap is attached for any
// future template that needs it.
func newTemplateSet() (*template.Template, error) {
	return template.New("render").Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/*.tmpl")
}
