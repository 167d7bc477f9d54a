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

// Package ierrors defines the generator's error taxonomy: ParseError,
// FileNotFound, RenderError and WriteError, each carrying source position
// context where available.
package ierrors

import (
	"fmt"
	"strings"

	"github.com/gauntl3t12/omg-idl-gen/internal/token"
)

// Error is the common interface satisfied by every diagnostic the generator
// produces. Position returns token.NoPos for errors with no source context
// (e.g. a write failure to stdout).
type Error interface {
	error
	Position() token.Position
}

// Message holds a printf-style format and its arguments so the final text
// can be assembled lazily, without losing the raw arguments.
type Message struct {
	format string
	args   []interface{}
}

func newMessage(format string, args []interface{}) Message {
	return Message{format: format, args: args}
}

func (m Message) Error() string { return fmt.Sprintf(m.format, m.args...) }

// ParseError reports that the grammar rejected the input, or that a walker
// encountered a parse node whose shape did not match the expected
// production.
type ParseError struct {
	Message
	Pos token.Position
}

func NewParseError(pos token.Position, format string, args ...interface{}) *ParseError {
	return &ParseError{Message: newMessage(format, args), Pos: pos}
}

func (e *ParseError) Position() token.Position { return e.Pos }

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message.Error())
}

// FileNotFound reports that the loader could not produce text for a
// requested include path.
type FileNotFound struct {
	Path string
	Pos  token.Position
}

func NewFileNotFound(pos token.Position, path string) *FileNotFound {
	return &FileNotFound{Path: path, Pos: pos}
}

func (e *FileNotFound) Position() token.Position { return e.Pos }

func (e *FileNotFound) Error() string {
	return fmt.Sprintf("%s: file not found: %s", e.Pos, e.Path)
}

// RenderError reports that the template engine failed: a missing template,
// a bad context, or an I/O failure during template evaluation.
type RenderError struct {
	Template string
	Cause    error
}

func NewRenderError(template string, cause error) *RenderError {
	return &RenderError{Template: template, Cause: cause}
}

func (e *RenderError) Position() token.Position { return token.NoPos }

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %q: %v", e.Template, e.Cause)
}

func (e *RenderError) Unwrap() error { return e.Cause }

// WriteError reports that the output sink rejected bytes.
type WriteError struct {
	Dest  string
	Cause error
}

func NewWriteError(dest string, cause error) *WriteError {
	return &WriteError{Dest: dest, Cause: cause}
}

func (e *WriteError) Position() token.Position { return token.NoPos }

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Dest, e.Cause)
}

func (e *WriteError) Unwrap() error { return e.Cause }

// List collects zero or more Errors so the driver can report every failure
// from a generation run rather than stopping at the first one.
type List []Error

func (l *List) Add(err Error) {
	if err == nil {
		return
	}
	*l = append(*l, err)
}

func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

func (l List) Error() string {
	var b strings.Builder
	for i, e := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Error())
	}
	return b.String()
}

func (l List) Position() token.Position {
	if len(l) == 0 {
		return token.NoPos
	}
	return l[0].Position()
}
