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

import "github.com/emirpasic/gods/maps/linkedhashmap"

// Module is one node of the hierarchical module table: a named (or, at the
// root, unnamed) scope owning nested modules, type declarations, and
// constants, each in first-declaration order.
//
// The three linkedhashmap.Map fields are keyed by the bare (unqualified)
// identifier. Insertion order is preserved by construction, which is what
// lets the renderer reproduce the source's declaration order byte for
// byte; a plain Go map would not give that guarantee.
type Module struct {
	// Name is nil for the root module, which has no enclosing identifier.
	Name *string

	Modules   *linkedhashmap.Map // string -> *Module
	Types     *linkedhashmap.Map // string -> TypeDcl
	Constants *linkedhashmap.Map // string -> *ConstDcl

	// Included is allocated empty by NewModule and is not written by the
	// walker; include idempotence is tracked in walk.Walker's own set of
	// resolved paths.
	Included map[string]bool
}

// NewModule constructs an empty module. A nil name denotes the root.
func NewModule(name *string) *Module {
	return &Module{
		Name:      name,
		Modules:   linkedhashmap.New(),
		Types:     linkedhashmap.New(),
		Constants: linkedhashmap.New(),
		Included:  make(map[string]bool),
	}
}

// LookupOrCreateModule returns the direct child module named ident,
// creating and inserting it (at the end of insertion order) if absent.
// Reopening a module across separate `module ident { ... }` blocks, or
// across a #include boundary, resolves to the same *Module instance —
// this is what makes declarations inside it cumulative rather than
// shadowing.
func (m *Module) LookupOrCreateModule(ident string) *Module {
	if existing, ok := m.Modules.Get(ident); ok {
		return existing.(*Module)
	}
	child := NewModule(&ident)
	m.Modules.Put(ident, child)
	return child
}

// AddType registers a type declaration under ident. It reports whether the
// declaration was newly added: on a name collision the existing
// declaration is left untouched and ok is false, implementing
// first-declaration-wins.
func (m *Module) AddType(ident string, decl TypeDcl) (ok bool) {
	if _, exists := m.Types.Get(ident); exists {
		return false
	}
	m.Types.Put(ident, decl)
	return true
}

// AddConst registers a constant declaration under ident, with the same
// first-declaration-wins semantics as AddType.
func (m *Module) AddConst(ident string, decl *ConstDcl) (ok bool) {
	if _, exists := m.Constants.Get(ident); exists {
		return false
	}
	m.Constants.Put(ident, decl)
	return true
}

// LookupType resolves ident against this module's own Types table only; it
// does not search enclosing or nested scopes. Name resolution across the
// scope chain is the analyzer's responsibility, not the table's.
func (m *Module) LookupType(ident string) (TypeDcl, bool) {
	v, ok := m.Types.Get(ident)
	if !ok {
		return nil, false
	}
	return v.(TypeDcl), true
}

// LookupConst mirrors LookupType for constants.
func (m *Module) LookupConst(ident string) (*ConstDcl, bool) {
	v, ok := m.Constants.Get(ident)
	if !ok {
		return nil, false
	}
	return v.(*ConstDcl), true
}

// ModuleNames returns the direct child module identifiers in declaration
// order.
func (m *Module) ModuleNames() []string {
	keys := m.Modules.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// TypeNames returns the type identifiers declared directly in this module,
// in declaration order.
func (m *Module) TypeNames() []string {
	keys := m.Types.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// ConstNames returns the constant identifiers declared directly in this
// module, in declaration order.
func (m *Module) ConstNames() []string {
	keys := m.Constants.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}
