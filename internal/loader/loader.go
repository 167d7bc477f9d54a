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

// Package loader is the external file-loader collaborator: it resolves a
// logical filename (the root IDL file, or a #include path) against a
// configured search root and yields its text.
package loader

import (
	"os"
	"path/filepath"
)

// Loader is the contract the analyzer depends on. It is intentionally
// narrow — load(path) -> text | failure — so the driver can substitute an
// in-memory loader in tests without touching a real filesystem.
type Loader interface {
	// Load resolves name against the loader's search root and returns its
	// contents, plus the absolute path it resolved to (used for include
	// idempotence bookkeeping).
	Load(name string) (text string, resolved string, err error)
}

// FS is the filesystem-backed Loader: every name is resolved relative to
// SearchPath.
type FS struct {
	SearchPath string
}

// New returns a Loader rooted at searchPath.
func New(searchPath string) *FS {
	return &FS{SearchPath: searchPath}
}

func (f *FS) Load(name string) (string, string, error) {
	full := filepath.Join(f.SearchPath, name)
	data, err := os.ReadFile(full)
	if err != nil {
		return "", "", err
	}
	abs, err := filepath.Abs(full)
	if err != nil {
		abs = full
	}
	return string(data), abs, nil
}

// Memory is an in-memory Loader keyed by logical name, used by tests that
// exercise #include without touching a real filesystem.
type Memory map[string]string

func (m Memory) Load(name string) (string, string, error) {
	text, ok := m[name]
	if !ok {
		return "", "", os.ErrNotExist
	}
	return text, name, nil
}
