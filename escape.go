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
	"math"
	"unicode/utf16"
	"unicode/utf8"
)

// Escaper decides which characters of a string payload must be written as
// escape sequences instead of being copied verbatim.
//
// FirstIndex returns the byte offset of the first code unit of s requiring
// escaping, or -1 when all of s is safe. An implementation must be
// consistent: rescanning the remainder of a string must flag the same
// positions, and it must flag every control character, '"', '\\' and every
// invalid UTF-8 byte, since those are required for well-formed output.
type Escaper interface {
	FirstIndex(s string) int
}

var (
	// DefaultEscaper emits the minimal escaping required by RFC 8259:
	// control characters, the quote and the backslash. Invalid UTF-8 bytes
	// are written as the escape sequence �.
	DefaultEscaper Escaper = defaultEscaper{}

	// HTMLEscaper additionally escapes '<', '>', '&', U+2028 and U+2029 so
	// the output can be embedded in HTML script blocks.
	HTMLEscaper Escaper = htmlEscaper{}

	// ASCIIEscaper additionally escapes every rune outside the ASCII range,
	// using surrogate pairs for runes above the Basic Multilingual Plane.
	ASCIIEscaper Escaper = asciiEscaper{}
)

// A single code unit expands to at most 6 output bytes: the worst case is a
// control character becoming \u00XX. Multi-byte runes expand by a smaller
// per-byte factor (a 4-byte rune becomes a 12-byte surrogate pair).
const maxEscapeExpansion = 6

// MaxTokenSize is the largest accepted length, in bytes, for a single string,
// property name or comment payload. It keeps the worst-case escaped form
// addressable with 32-bit arithmetic.
const MaxTokenSize = math.MaxInt32 / maxEscapeExpansion

// maxEscapedLen bounds the escaped length of an n-byte string whose first
// escape-worthy unit sits at index first (first >= 0).
func maxEscapedLen(n, first int) int {
	return first + (n-first)*maxEscapeExpansion
}

const hexDigits = "0123456789abcdef"

// safeSet holds true for ASCII characters that may appear in a JSON string
// without escaping: everything except the control characters, the double
// quote and the backslash.
var safeSet = [utf8.RuneSelf]bool{
	' ':      true,
	'!':      true,
	'"':      false,
	'#':      true,
	'$':      true,
	'%':      true,
	'&':      true,
	'\'':     true,
	'(':      true,
	')':      true,
	'*':      true,
	'+':      true,
	',':      true,
	'-':      true,
	'.':      true,
	'/':      true,
	'0':      true,
	'1':      true,
	'2':      true,
	'3':      true,
	'4':      true,
	'5':      true,
	'6':      true,
	'7':      true,
	'8':      true,
	'9':      true,
	':':      true,
	';':      true,
	'<':      true,
	'=':      true,
	'>':      true,
	'?':      true,
	'@':      true,
	'A':      true,
	'B':      true,
	'C':      true,
	'D':      true,
	'E':      true,
	'F':      true,
	'G':      true,
	'H':      true,
	'I':      true,
	'J':      true,
	'K':      true,
	'L':      true,
	'M':      true,
	'N':      true,
	'O':      true,
	'P':      true,
	'Q':      true,
	'R':      true,
	'S':      true,
	'T':      true,
	'U':      true,
	'V':      true,
	'W':      true,
	'X':      true,
	'Y':      true,
	'Z':      true,
	'[':      true,
	'\\':     false,
	']':      true,
	'^':      true,
	'_':      true,
	'`':      true,
	'a':      true,
	'b':      true,
	'c':      true,
	'd':      true,
	'e':      true,
	'f':      true,
	'g':      true,
	'h':      true,
	'i':      true,
	'j':      true,
	'k':      true,
	'l':      true,
	'm':      true,
	'n':      true,
	'o':      true,
	'p':      true,
	'q':      true,
	'r':      true,
	's':      true,
	't':      true,
	'u':      true,
	'v':      true,
	'w':      true,
	'x':      true,
	'y':      true,
	'z':      true,
	'{':      true,
	'|':      true,
	'}':      true,
	'~':      true,
	'\u007f': true,
}

var htmlSafeSet = func() [utf8.RuneSelf]bool {
	t := safeSet
	t['<'] = false
	t['>'] = false
	t['&'] = false
	return t
}()

type defaultEscaper struct{}

func (defaultEscaper) FirstIndex(s string) int {
	for i := 0; i < len(s); {
		if b := s[i]; b < utf8.RuneSelf {
			if !safeSet[b] {
				return i
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

type htmlEscaper struct{}

func (htmlEscaper) FirstIndex(s string) int {
	for i := 0; i < len(s); {
		if b := s[i]; b < utf8.RuneSelf {
			if !htmlSafeSet[b] {
				return i
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		// Line and paragraph separators terminate statements inside
		// <script> blocks even though they are legal in JSON strings.
		if r == '\u2028' || r == '\u2029' {
			return i
		}
		i += size
	}
	return -1
}

type asciiEscaper struct{}

func (asciiEscaper) FirstIndex(s string) int {
	for i := 0; i < len(s); i++ {
		if b := s[i]; b >= utf8.RuneSelf || !safeSet[b] {
			return i
		}
	}
	return -1
}

// appendEscaped appends the escaped form of s to dst under policy e.
// first is the already-computed index of the first unit needing escaping.
// The result is bounded by maxEscapedLen(len(s), first).
func appendEscaped(dst []byte, s string, e Escaper, first int) []byte {
	idx := first
	for {
		if idx < 0 {
			return append(dst, s...)
		}
		dst = append(dst, s[:idx]...)
		s = s[idx:]
		if b := s[0]; b < utf8.RuneSelf {
			switch b {
			case '"':
				dst = append(dst, '\\', '"')
			case '\\':
				dst = append(dst, '\\', '\\')
			case '\n':
				dst = append(dst, '\\', 'n')
			case '\r':
				dst = append(dst, '\\', 'r')
			case '\t':
				dst = append(dst, '\\', 't')
			case '\b':
				dst = append(dst, '\\', 'b')
			case '\f':
				dst = append(dst, '\\', 'f')
			default:
				// Remaining control characters and policy extras such
				// as '<' under HTMLEscaper.
				dst = append(dst, '\\', 'u', '0', '0', hexDigits[b>>4], hexDigits[b&0xf])
			}
			s = s[1:]
		} else {
			r, size := utf8.DecodeRuneInString(s)
			switch {
			case r == utf8.RuneError && size == 1:
				dst = append(dst, '\\', 'u', 'f', 'f', 'f', 'd')
			case r > 0xffff:
				hi, lo := utf16.EncodeRune(r)
				dst = appendUnicodeEscape(dst, uint16(hi))
				dst = appendUnicodeEscape(dst, uint16(lo))
			default:
				dst = appendUnicodeEscape(dst, uint16(r))
			}
			s = s[size:]
		}
		idx = e.FirstIndex(s)
	}
}

func appendUnicodeEscape(dst []byte, u uint16) []byte {
	return append(dst, '\\', 'u',
		hexDigits[u>>12&0xf], hexDigits[u>>8&0xf], hexDigits[u>>4&0xf], hexDigits[u&0xf])
}

// EncodedName is a property name escaped once up front, for callers that
// write the same name repeatedly.
type EncodedName struct {
	escaped string
}

// EncodeName escapes name under policy e (nil selects DefaultEscaper).
func EncodeName(name string, e Escaper) (EncodedName, error) {
	if len(name) > MaxTokenSize {
		return EncodedName{}, ErrTokenTooLarge
	}
	if e == nil {
		e = DefaultEscaper
	}
	first := e.FirstIndex(name)
	if first < 0 {
		return EncodedName{escaped: name}, nil
	}
	buf := getScratch(maxEscapedLen(len(name), first))
	out := appendEscaped(buf.data[:0], name, e, first)
	enc := EncodedName{escaped: string(out)}
	putScratch(buf)
	return enc, nil
}

// String returns the escaped name without surrounding quotes.
func (n EncodedName) String() string { return n.escaped }
