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

import "fmt"

// WriteString writes s as a JSON string value, escaping it under the
// writer's policy. The common case of text needing no escapes is copied
// verbatim after a single scan.
func (w *Writer) WriteString(s string) error {
	return w.writeString(s)
}

// WriteStringBytes is WriteString for a UTF-8 byte slice.
func (w *Writer) WriteStringBytes(b []byte) error {
	return w.writeString(string(b))
}

func (w *Writer) writeString(s string) error {
	if len(s) > MaxTokenSize {
		return fmt.Errorf("%w: string is %d bytes", ErrTokenTooLarge, len(s))
	}
	if err := w.checkValue(); err != nil {
		return err
	}
	first := w.opts.Escaper.FirstIndex(s)
	bound := len(s)
	if first >= 0 {
		bound = maxEscapedLen(len(s), first)
	}
	region, err := w.sink.Reserve(w.maxPrefixLen() + bound + 2)
	if err != nil {
		return err
	}
	n := w.valuePrefix(region)
	region[n] = '"'
	n++
	if first < 0 {
		n += copy(region[n:], s)
	} else {
		n += len(appendEscaped(region[n:n], s, w.opts.Escaper, first))
	}
	region[n] = '"'
	n++
	w.commitValue(tokenString, n)
	return nil
}
