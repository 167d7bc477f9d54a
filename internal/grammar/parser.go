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

import (
	"github.com/alecthomas/participle/v2"
)

var idlParser = participle.MustBuild[Specification](
	participle.Lexer(idlLexer),
	participle.CaseInsensitive("Keyword"),
	participle.Elide("Whitespace", "Comment", "BlockComment"),
	participle.UseLookahead(4),
)

// Parse runs the grammar over source text, naming the source filename in
// any resulting error for diagnostic context.
func Parse(filename, text string) (*Specification, error) {
	return idlParser.ParseString(filename, text)
}
