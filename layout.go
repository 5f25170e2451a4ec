/*
Copyright 2025 The Antfly Contributors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package jsontext

// Structural prefix layout: the list separator, line break and indentation
// written before a token's payload. All helpers write into the front of an
// already reserved region and return the byte count used, which never
// exceeds maxPrefixLen.

// maxPrefixLen bounds the structural prefix of the next token at the current
// nesting level.
func (w *Writer) maxPrefixLen() int {
	if !w.opts.Indented {
		return 1
	}
	return 1 + len(w.opts.Newline) + w.nesting()*w.opts.IndentWidth
}

// valuePrefix lays out the prefix for a scalar value or container start.
// A value directly following its property name gets no prefix at all.
func (w *Writer) valuePrefix(region []byte) int {
	if w.pending {
		return 0
	}
	n := 0
	if w.depth > 0 {
		region[0] = ','
		n = 1
	}
	if w.opts.Indented && w.last != tokenNone {
		n += w.newlineIndent(region[n:], w.nesting())
	}
	return n
}

// namePrefix lays out the prefix for a property name.
func (w *Writer) namePrefix(region []byte) int {
	n := 0
	if w.depth > 0 {
		region[0] = ','
		n = 1
	}
	if w.opts.Indented && w.last != tokenNone {
		n += w.newlineIndent(region[n:], w.nesting())
	}
	return n
}

// endPrefix lays out the prefix for a container end: a line break and
// indentation one level out, unless the container is empty (its start token
// was the last one written) or output is compact. Never a separator.
func (w *Writer) endPrefix(region []byte, start tokenKind) int {
	if !w.opts.Indented || w.last == start {
		return 0
	}
	return w.newlineIndent(region, w.nesting()-1)
}

// commentPrefix lays out the prefix for a comment: indentation but never a
// separator. A comment between a property name and its value stays inline.
func (w *Writer) commentPrefix(region []byte) int {
	if !w.opts.Indented || w.last == tokenNone || w.pending {
		return 0
	}
	return w.newlineIndent(region, w.nesting())
}

func (w *Writer) newlineIndent(region []byte, level int) int {
	n := copy(region, w.opts.Newline)
	fill := level * w.opts.IndentWidth
	for i := 0; i < fill; i++ {
		region[n+i] = w.opts.IndentChar
	}
	if fill > 0 {
		n += fill
	}
	return n
}
