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

// WriteRawValue copies a caller-rendered JSON value verbatim into the
// output, applying normal separator and indentation layout around it.
//
// The bytes are trusted to be a single well-formed JSON value; the writer
// only rejects empty input. This is the escape hatch for payloads rendered
// by another encoder.
func (w *Writer) WriteRawValue(raw []byte) error {
	if len(raw) == 0 {
		return ErrEmptyRawValue
	}
	if len(raw) > MaxTokenSize {
		return fmt.Errorf("%w: raw value is %d bytes", ErrTokenTooLarge, len(raw))
	}
	if err := w.checkValue(); err != nil {
		return err
	}
	region, err := w.sink.Reserve(w.maxPrefixLen() + len(raw))
	if err != nil {
		return err
	}
	n := w.valuePrefix(region)
	n += copy(region[n:], raw)
	w.commitValue(tokenString, n)
	return nil
}

// WriteRawValueField writes name and a caller-rendered JSON value.
func (w *Writer) WriteRawValueField(name string, raw []byte) error {
	if len(raw) == 0 {
		return ErrEmptyRawValue
	}
	if err := w.WritePropertyName(name); err != nil {
		return err
	}
	return w.WriteRawValue(raw)
}
