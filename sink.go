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
	"io"
)

// Sink is the append-only byte destination a Writer targets.
//
// The writer interacts with a sink through exactly one Reserve followed by
// exactly one Commit per write operation. Reserve returns a writable region
// of at least n bytes; Commit marks the first used bytes of the most recent
// region as written, where used is never larger than the reserved count.
// Committed bytes are never read back or rewritten.
type Sink interface {
	Reserve(n int) ([]byte, error)
	Commit(used int)
}

// Flusher is implemented by sinks that buffer committed bytes internally.
// Writer.Flush forwards to it.
type Flusher interface {
	Flush() error
}

// Buffer is a growable in-memory Sink.
//
// The zero value is ready to use. Buffer is also handy as a building block
// for custom sinks, since Reserve never fails.
type Buffer struct {
	data []byte
}

var _ Sink = (*Buffer)(nil)

func (b *Buffer) Reserve(n int) ([]byte, error) {
	if free := cap(b.data) - len(b.data); free < n {
		grown := make([]byte, len(b.data), growCap(cap(b.data), len(b.data)+n))
		copy(grown, b.data)
		b.data = grown
	}
	return b.data[len(b.data) : len(b.data)+n], nil
}

func (b *Buffer) Commit(used int) {
	b.data = b.data[:len(b.data)+used]
}

// Bytes returns the committed contents. The slice is invalidated by the next
// Reserve or Reset.
func (b *Buffer) Bytes() []byte { return b.data }

// String returns the committed contents as a string.
func (b *Buffer) String() string { return string(b.data) }

// Len returns the number of committed bytes.
func (b *Buffer) Len() int { return len(b.data) }

// Reset discards the committed contents but keeps the allocation.
func (b *Buffer) Reset() { b.data = b.data[:0] }

func growCap(oldCap, need int) int {
	newCap := oldCap * 2
	if newCap < 64 {
		newCap = 64
	}
	for newCap < need {
		newCap *= 2
	}
	return newCap
}

// FixedBuffer is a Sink over a caller-supplied slice that never grows.
// Reserve fails with ErrSinkExhausted once the remaining capacity cannot
// satisfy a reservation, which makes it suitable for strict output limits.
type FixedBuffer struct {
	data []byte
	used int
}

var _ Sink = (*FixedBuffer)(nil)

// NewFixedBuffer returns a FixedBuffer writing into buf.
func NewFixedBuffer(buf []byte) *FixedBuffer {
	return &FixedBuffer{data: buf}
}

func (b *FixedBuffer) Reserve(n int) ([]byte, error) {
	if len(b.data)-b.used < n {
		return nil, fmt.Errorf("%w: need %d bytes, %d remain", ErrSinkExhausted, n, len(b.data)-b.used)
	}
	return b.data[b.used : b.used+n], nil
}

func (b *FixedBuffer) Commit(used int) {
	b.used += used
}

// Bytes returns the committed prefix of the underlying slice.
func (b *FixedBuffer) Bytes() []byte { return b.data[:b.used] }

// Len returns the number of committed bytes.
func (b *FixedBuffer) Len() int { return b.used }

// StreamSink adapts an io.Writer to the Sink protocol. Reserved regions come
// from an internal scratch buffer; Commit forwards them to the writer.
//
// Because Commit cannot fail, a write error is held and surfaced by the next
// Reserve (wrapped in ErrSinkExhausted) and by Flush. Once an error has been
// observed the sink refuses further reservations.
type StreamSink struct {
	w       io.Writer
	scratch []byte
	err     error
}

var _ Sink = (*StreamSink)(nil)
var _ Flusher = (*StreamSink)(nil)

// NewStreamSink returns a StreamSink forwarding committed bytes to w.
func NewStreamSink(w io.Writer) *StreamSink {
	return &StreamSink{w: w}
}

func (s *StreamSink) Reserve(n int) ([]byte, error) {
	if s.err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSinkExhausted, s.err)
	}
	if cap(s.scratch) < n {
		s.scratch = make([]byte, growCap(cap(s.scratch), n))
	}
	return s.scratch[:n], nil
}

func (s *StreamSink) Commit(used int) {
	if s.err != nil || used == 0 {
		return
	}
	if _, err := s.w.Write(s.scratch[:used]); err != nil {
		s.err = err
	}
}

// Flush reports any write error encountered so far. The underlying writer's
// own buffering, if any, is not flushed here.
func (s *StreamSink) Flush() error { return s.err }
