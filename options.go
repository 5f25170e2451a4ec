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

// DefaultMaxDepth is the nesting ceiling applied when no explicit maximum is
// configured.
const DefaultMaxDepth = 1000

// Newline selects the line terminator used in indented mode.
type Newline string

const (
	NewlineLF   Newline = "\n"
	NewlineCRLF Newline = "\r\n"
)

// Options is the immutable configuration of a Writer, fixed at construction.
type Options struct {
	// Indented enables pretty-printed output with one token per line.
	Indented bool

	// IndentWidth is the number of fill characters per nesting level in
	// indented mode. Values outside [0, 16] are clamped.
	IndentWidth int

	// IndentChar is the fill character, ' ' or '\t'. Any other value falls
	// back to a space.
	IndentChar byte

	// Newline is the line terminator used in indented mode.
	Newline Newline

	// MaxDepth is the container nesting ceiling. Zero selects
	// DefaultMaxDepth.
	MaxDepth int

	// SkipValidation disables JSON grammar checks, trading safety for
	// throughput at trusted call sites. Input-validity checks (comment
	// delimiters, number grammar, non-finite floats, token size) remain in
	// force. It also permits writing multiple top-level values.
	SkipValidation bool

	// Escaper selects which characters of string payloads must be written as
	// escape sequences. Nil selects DefaultEscaper.
	Escaper Escaper
}

// Option mutates Options during NewWriter.
type Option func(*Options)

// WithIndent enables indented output with width fill characters per level.
func WithIndent(width int) Option {
	return func(o *Options) {
		o.Indented = true
		o.IndentWidth = width
	}
}

// WithIndentChar sets the indentation fill character, ' ' or '\t'.
func WithIndentChar(c byte) Option {
	return func(o *Options) { o.IndentChar = c }
}

// WithNewline sets the line terminator for indented mode.
func WithNewline(nl Newline) Option {
	return func(o *Options) { o.Newline = nl }
}

// WithMaxDepth overrides the container nesting ceiling.
func WithMaxDepth(n int) Option {
	return func(o *Options) { o.MaxDepth = n }
}

// WithEscaper installs an escaping policy.
func WithEscaper(e Escaper) Option {
	return func(o *Options) { o.Escaper = e }
}

// WithoutValidation disables JSON grammar checks.
func WithoutValidation() Option {
	return func(o *Options) { o.SkipValidation = true }
}

func (o *Options) normalize() {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.Escaper == nil {
		o.Escaper = DefaultEscaper
	}
	if o.Newline != NewlineCRLF {
		o.Newline = NewlineLF
	}
	if o.IndentChar != ' ' && o.IndentChar != '\t' {
		o.IndentChar = ' '
	}
	switch {
	case o.IndentWidth < 0:
		o.IndentWidth = 0
	case o.IndentWidth > 16:
		o.IndentWidth = 16
	}
}
