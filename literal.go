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
	"math"
	"time"

	"github.com/cloudwego/base64x"
	"github.com/google/uuid"
)

// maxTimeLen covers an RFC 3339 timestamp across Go's full time range:
// a 12-digit year, nanosecond fraction and a numeric zone offset fit well
// under this ceiling, quotes included.
const maxTimeLen = 64

// The dashed hexadecimal UUID form is exactly 36 bytes, 38 quoted.
const uuidLen = 36

// WriteBool writes true or false.
func (w *Writer) WriteBool(v bool) error {
	if err := w.checkValue(); err != nil {
		return err
	}
	region, err := w.sink.Reserve(w.maxPrefixLen() + 5)
	if err != nil {
		return err
	}
	n := w.valuePrefix(region)
	kind := tokenTrue
	if v {
		n += copy(region[n:], "true")
	} else {
		n += copy(region[n:], "false")
		kind = tokenFalse
	}
	w.commitValue(kind, n)
	return nil
}

// WriteNull writes the null literal.
func (w *Writer) WriteNull() error {
	if err := w.checkValue(); err != nil {
		return err
	}
	region, err := w.sink.Reserve(w.maxPrefixLen() + 4)
	if err != nil {
		return err
	}
	n := w.valuePrefix(region)
	n += copy(region[n:], "null")
	w.commitValue(tokenNull, n)
	return nil
}

// WriteTime writes t as a quoted RFC 3339 timestamp with nanosecond
// precision. Trailing zeros of the fractional second are trimmed.
func (w *Writer) WriteTime(t time.Time) error {
	if err := w.checkValue(); err != nil {
		return err
	}
	region, err := w.sink.Reserve(w.maxPrefixLen() + maxTimeLen)
	if err != nil {
		return err
	}
	n := w.valuePrefix(region)
	region[n] = '"'
	n++
	n += len(t.AppendFormat(region[n:n], time.RFC3339Nano))
	region[n] = '"'
	n++
	w.commitValue(tokenString, n)
	return nil
}

// WriteUUID writes u as a quoted dashed hexadecimal string.
func (w *Writer) WriteUUID(u uuid.UUID) error {
	if err := w.checkValue(); err != nil {
		return err
	}
	region, err := w.sink.Reserve(w.maxPrefixLen() + uuidLen + 2)
	if err != nil {
		return err
	}
	n := w.valuePrefix(region)
	region[n] = '"'
	n++
	n += copy(region[n:], u.String())
	region[n] = '"'
	n++
	w.commitValue(tokenString, n)
	return nil
}

// WriteBase64 writes data as a quoted standard-alphabet base64 string of
// exactly ceil(len(data)/3)*4 payload bytes.
func (w *Writer) WriteBase64(data []byte) error {
	if len(data) > (math.MaxInt32-2)/4*3 {
		return fmt.Errorf("%w: %d bytes of binary data", ErrTokenTooLarge, len(data))
	}
	if err := w.checkValue(); err != nil {
		return err
	}
	encoded := base64x.StdEncoding.EncodedLen(len(data))
	region, err := w.sink.Reserve(w.maxPrefixLen() + encoded + 2)
	if err != nil {
		return err
	}
	n := w.valuePrefix(region)
	region[n] = '"'
	n++
	base64x.StdEncoding.Encode(region[n:n+encoded], data)
	n += encoded
	region[n] = '"'
	n++
	w.commitValue(tokenString, n)
	return nil
}
