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

// Package driver orchestrates parse -> walk -> render -> write for one
// generation call (spec.md §4.6, §5). Every call owns its own walker,
// module table, loader and template environment; nothing here is shared
// across calls.
package driver

import (
	"io"
	"log"

	"github.com/gauntl3t12/omg-idl-gen/internal/grammar"
	"github.com/gauntl3t12/omg-idl-gen/internal/ierrors"
	"github.com/gauntl3t12/omg-idl-gen/internal/loader"
	"github.com/gauntl3t12/omg-idl-gen/internal/render"
	"github.com/gauntl3t12/omg-idl-gen/internal/token"
	"github.com/gauntl3t12/omg-idl-gen/internal/walk"
)

// Config is the generation request: where to look for the root file and
// its includes, which file to start from, and whether to trace the
// walker's descent. Mirrors spec.md §6 Configuration.
type Config struct {
	SearchPath string
	IDLFile    string
	Verbose    bool
}

// Generate parses cfg.IDLFile from cfg.SearchPath, lowers it into a
// module table, renders the table, and writes the result to w. It returns
// the first fatal error encountered (file-not-found on the root file,
// a grammar rejection of the root file, or a render/write failure);
// recoverable per-declaration errors are logged, not returned, per
// spec.md §7's best-effort-emit posture.
func Generate(w io.Writer, cfg Config, logger *log.Logger) error {
	l := loader.New(cfg.SearchPath)

	text, _, err := l.Load(cfg.IDLFile)
	if err != nil {
		return ierrors.NewFileNotFound(token.NoPos, cfg.IDLFile)
	}

	spec, err := grammar.Parse(cfg.IDLFile, text)
	if err != nil {
		return ierrors.NewParseError(token.NoPos, "parsing %s: %v", cfg.IDLFile, err)
	}

	var traceLogger *log.Logger
	if cfg.Verbose {
		traceLogger = logger
	}
	walker := walk.New(l, traceLogger)
	walker.WalkRoot(spec)

	for _, e := range walker.Errs {
		if logger != nil {
			logger.Printf("warning: %s", e.Error())
		}
	}

	r, err := render.New()
	if err != nil {
		return err
	}
	out, err := r.Render(walker.Root)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out); err != nil {
		return ierrors.NewWriteError(cfg.IDLFile, err)
	}
	return nil
}
