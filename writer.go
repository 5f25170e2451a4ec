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

import (
	"fmt"
	"strings"
)

type tokenKind uint8

const (
	tokenNone tokenKind = iota
	tokenStartObject
	tokenStartArray
	tokenEndObject
	tokenEndArray
	tokenPropertyName
	tokenString
	tokenNumber
	tokenTrue
	tokenFalse
	tokenNull
	tokenComment
)

// Writer emits JSON text incrementally into a Sink.
//
// Every operation validates structural legality, reserves a bounded region
// from the sink once, writes punctuation and payload, and commits the exact
// byte count. A failed operation commits nothing, but output from earlier
// operations is never unwound: a writer that returned an error should be
// discarded (or Reset).
//
// A Writer is not safe for concurrent use.
type Writer struct {
	sink Sink
	opts Options

	// depth magnitude is the current nesting level. A negative sign means
	// the next token is the first item of its container, so no list
	// separator precedes it.
	depth     int
	last      tokenKind
	stack     bitStack
	pending   bool // a property name has been written and awaits its value
	haveRoot  bool // a complete top-level value has been written
	committed int64
}

// NewWriter returns a Writer bound to sink.
func NewWriter(sink Sink, opts ...Option) *Writer {
	w := &Writer{sink: sink}
	for _, o := range opts {
		o(&w.opts)
	}
	w.opts.normalize()
	return w
}

// Reset zeroes the writer's structural state and attaches a new sink,
// keeping the configuration.
func (w *Writer) Reset(sink Sink) {
	w.sink = sink
	w.depth = 0
	w.last = tokenNone
	w.stack.reset()
	w.pending = false
	w.haveRoot = false
	w.committed = 0
}

// BytesCommitted returns the cumulative number of bytes committed to the
// sink over the writer's lifetime.
func (w *Writer) BytesCommitted() int64 { return w.committed }

// Depth returns the current container nesting level.
func (w *Writer) Depth() int { return w.nesting() }

// Flush forwards to the sink when it buffers internally (see Flusher). The
// writer itself holds no cross-call buffer, so this is otherwise a no-op.
func (w *Writer) Flush() error {
	if f, ok := w.sink.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

func (w *Writer) nesting() int {
	if w.depth < 0 {
		return -w.depth
	}
	return w.depth
}

// checkValue validates that a value (or container start) may appear here.
func (w *Writer) checkValue() error {
	if w.opts.SkipValidation {
		return nil
	}
	if w.stack.len() == 0 {
		if w.haveRoot {
			return ErrMultipleTopLevelValues
		}
		return nil
	}
	if w.stack.topIsObject() && !w.pending {
		return ErrExpectedPropertyName
	}
	return nil
}

func (w *Writer) checkName() error {
	if w.opts.SkipValidation {
		return nil
	}
	if !w.stack.topIsObject() {
		return ErrPropertyOutsideObject
	}
	if w.pending {
		return fmt.Errorf("%w: previous name has no value", ErrPropertyOutsideObject)
	}
	return nil
}

// commitValue finishes a completed value token: commits n bytes and flips
// the depth sign so the next sibling is separated.
func (w *Writer) commitValue(kind tokenKind, n int) {
	w.sink.Commit(n)
	w.committed += int64(n)
	w.depth = w.nesting()
	w.last = kind
	w.pending = false
	if w.stack.len() == 0 {
		w.haveRoot = true
	}
}

// BeginObject opens an object value.
func (w *Writer) BeginObject() error { return w.beginContainer(true) }

// BeginArray opens an array value.
func (w *Writer) BeginArray() error { return w.beginContainer(false) }

// BeginObjectField writes a property name and opens an object as its value.
func (w *Writer) BeginObjectField(name string) error {
	if err := w.WritePropertyName(name); err != nil {
		return err
	}
	return w.BeginObject()
}

// BeginArrayField writes a property name and opens an array as its value.
func (w *Writer) BeginArrayField(name string) error {
	if err := w.WritePropertyName(name); err != nil {
		return err
	}
	return w.BeginArray()
}

func (w *Writer) beginContainer(isObject bool) error {
	if !w.opts.SkipValidation {
		if err := w.checkValue(); err != nil {
			return err
		}
		if w.nesting()+1 > w.opts.MaxDepth {
			return fmt.Errorf("%w: %d", ErrDepthExceeded, w.nesting()+1)
		}
	}
	region, err := w.sink.Reserve(w.maxPrefixLen() + 1)
	if err != nil {
		return err
	}
	n := w.valuePrefix(region)
	if isObject {
		region[n] = '{'
	} else {
		region[n] = '['
	}
	n++
	w.sink.Commit(n)
	w.committed += int64(n)
	w.stack.push(isObject)
	w.depth = -(w.nesting() + 1)
	if isObject {
		w.last = tokenStartObject
	} else {
		w.last = tokenStartArray
	}
	w.pending = false
	return nil
}

// EndObject closes the innermost open object.
func (w *Writer) EndObject() error { return w.endContainer(true) }

// EndArray closes the innermost open array.
func (w *Writer) EndArray() error { return w.endContainer(false) }

func (w *Writer) endContainer(isObject bool) error {
	if !w.opts.SkipValidation {
		if w.stack.len() == 0 {
			return ErrEmptyStack
		}
		if w.pending {
			return ErrExpectedPropertyValue
		}
		if w.stack.topIsObject() != isObject {
			return ErrMismatchedContainer
		}
	}
	start, end := tokenStartObject, tokenEndObject
	closing := byte('}')
	if !isObject {
		start, end = tokenStartArray, tokenEndArray
		closing = ']'
	}
	region, err := w.sink.Reserve(w.maxPrefixLen() + 1)
	if err != nil {
		return err
	}
	n := w.endPrefix(region, start)
	region[n] = closing
	n++
	w.sink.Commit(n)
	w.committed += int64(n)
	if m := w.nesting(); m > 0 {
		w.stack.pop()
		w.depth = m - 1
	}
	w.last = end
	w.pending = false
	if w.stack.len() == 0 {
		w.haveRoot = true
	}
	return nil
}

// WritePropertyName writes an object property name followed by a colon. The
// name is escaped under the writer's policy.
func (w *Writer) WritePropertyName(name string) error {
	return w.writeName(name)
}

// WritePropertyNameBytes is WritePropertyName for a UTF-8 byte slice.
func (w *Writer) WritePropertyNameBytes(name []byte) error {
	return w.writeName(string(name))
}

// WritePropertyNameEncoded writes a name that was escaped up front with
// EncodeName, skipping the escape scan entirely.
func (w *Writer) WritePropertyNameEncoded(name EncodedName) error {
	if err := w.checkName(); err != nil {
		return err
	}
	region, err := w.sink.Reserve(w.maxPrefixLen() + len(name.escaped) + 4)
	if err != nil {
		return err
	}
	n := w.namePrefix(region)
	region[n] = '"'
	n++
	n += copy(region[n:], name.escaped)
	n += w.closeName(region[n:])
	w.finishName(n)
	return nil
}

func (w *Writer) writeName(name string) error {
	if len(name) > MaxTokenSize {
		return fmt.Errorf("%w: name is %d bytes", ErrTokenTooLarge, len(name))
	}
	if err := w.checkName(); err != nil {
		return err
	}
	first := w.opts.Escaper.FirstIndex(name)
	bound := len(name)
	if first >= 0 {
		bound = maxEscapedLen(len(name), first)
	}
	region, err := w.sink.Reserve(w.maxPrefixLen() + bound + 4)
	if err != nil {
		return err
	}
	n := w.namePrefix(region)
	region[n] = '"'
	n++
	if first < 0 {
		n += copy(region[n:], name)
	} else {
		n += len(appendEscaped(region[n:n], name, w.opts.Escaper, first))
	}
	n += w.closeName(region[n:])
	w.finishName(n)
	return nil
}

// closeName writes the quote and colon after a name's payload.
func (w *Writer) closeName(region []byte) int {
	region[0] = '"'
	region[1] = ':'
	if w.opts.Indented {
		region[2] = ' '
		return 3
	}
	return 2
}

func (w *Writer) finishName(n int) {
	w.sink.Commit(n)
	w.committed += int64(n)
	w.depth = w.nesting()
	w.last = tokenPropertyName
	w.pending = true
}

// WriteComment emits text wrapped in a block comment. Comments are not JSON
// grammar: they never receive a list separator and a conformant reader must
// be configured to accept them. The text must not contain "*/".
func (w *Writer) WriteComment(text string) error {
	if len(text) > MaxTokenSize {
		return fmt.Errorf("%w: comment is %d bytes", ErrTokenTooLarge, len(text))
	}
	if strings.Contains(text, "*/") {
		return ErrInvalidCommentValue
	}
	region, err := w.sink.Reserve(w.maxPrefixLen() + len(text) + 4)
	if err != nil {
		return err
	}
	n := w.commentPrefix(region)
	n += copy(region[n:], "/*")
	n += copy(region[n:], text)
	n += copy(region[n:], "*/")
	w.sink.Commit(n)
	w.committed += int64(n)
	w.last = tokenComment
	return nil
}
