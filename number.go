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
	"strconv"

	"github.com/shopspring/decimal"
)

// Rendered length ceilings, asserted by the reservation arithmetic.
// "-9223372036854775808" is 20 bytes; the shortest round-trippable decimal
// form of a float64 needs at most 25 bytes ("-2.2250738585072014e-308").
const (
	maxIntLen   = 20
	maxFloatLen = 32
)

// WriteInt writes v as a JSON number.
func (w *Writer) WriteInt(v int64) error {
	if err := w.checkValue(); err != nil {
		return err
	}
	region, err := w.sink.Reserve(w.maxPrefixLen() + maxIntLen)
	if err != nil {
		return err
	}
	n := w.valuePrefix(region)
	n += len(strconv.AppendInt(region[n:n], v, 10))
	w.commitValue(tokenNumber, n)
	return nil
}

// WriteInt32 writes v as a JSON number.
func (w *Writer) WriteInt32(v int32) error { return w.WriteInt(int64(v)) }

// WriteUint writes v as a JSON number.
func (w *Writer) WriteUint(v uint64) error {
	if err := w.checkValue(); err != nil {
		return err
	}
	region, err := w.sink.Reserve(w.maxPrefixLen() + maxIntLen)
	if err != nil {
		return err
	}
	n := w.valuePrefix(region)
	n += len(strconv.AppendUint(region[n:n], v, 10))
	w.commitValue(tokenNumber, n)
	return nil
}

// WriteUint32 writes v as a JSON number.
func (w *Writer) WriteUint32(v uint32) error { return w.WriteUint(uint64(v)) }

// WriteFloat64 writes v in its shortest round-trippable decimal form.
// NaN and infinities fail with ErrNonFiniteNumber: JSON has no literal for
// non-finite numbers.
func (w *Writer) WriteFloat64(v float64) error { return w.writeFloat(v, 64) }

// WriteFloat32 writes v in its shortest round-trippable decimal form.
func (w *Writer) WriteFloat32(v float32) error { return w.writeFloat(float64(v), 32) }

func (w *Writer) writeFloat(v float64, bits int) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %v", ErrNonFiniteNumber, v)
	}
	if err := w.checkValue(); err != nil {
		return err
	}
	region, err := w.sink.Reserve(w.maxPrefixLen() + maxFloatLen)
	if err != nil {
		return err
	}
	n := w.valuePrefix(region)
	n += len(strconv.AppendFloat(region[n:n], v, 'g', -1, bits))
	w.commitValue(tokenNumber, n)
	return nil
}

// WriteDecimal writes d as a JSON number in its scientific-free string
// representation. Trailing fractional zeros are normalized away, so
// 1.50 renders as 1.5. Decimals are always finite, so no non-finite
// check applies.
func (w *Writer) WriteDecimal(d decimal.Decimal) error {
	if err := w.checkValue(); err != nil {
		return err
	}
	s := d.String()
	region, err := w.sink.Reserve(w.maxPrefixLen() + len(s))
	if err != nil {
		return err
	}
	n := w.valuePrefix(region)
	n += copy(region[n:], s)
	w.commitValue(tokenNumber, n)
	return nil
}

// WriteRawNumber copies a caller-rendered number verbatim after checking it
// against the RFC 8259 number grammar.
func (w *Writer) WriteRawNumber(num []byte) error {
	if len(num) > MaxTokenSize {
		return fmt.Errorf("%w: number is %d bytes", ErrTokenTooLarge, len(num))
	}
	if !validNumber(num) {
		return fmt.Errorf("%w: %q", ErrInvalidNumberFormat, num)
	}
	if err := w.checkValue(); err != nil {
		return err
	}
	region, err := w.sink.Reserve(w.maxPrefixLen() + len(num))
	if err != nil {
		return err
	}
	n := w.valuePrefix(region)
	n += copy(region[n:], num)
	w.commitValue(tokenNumber, n)
	return nil
}

// validNumber reports whether b matches the RFC 8259 number grammar:
// an optional minus sign, an integer part with no redundant leading zero,
// an optional fraction and an optional exponent.
func validNumber(b []byte) bool {
	i := 0
	if i < len(b) && b[i] == '-' {
		i++
	}
	switch {
	case i == len(b):
		return false
	case b[i] == '0':
		i++
	case b[i] >= '1' && b[i] <= '9':
		for i < len(b) && b[i] >= '0' && b[i] <= '9' {
			i++
		}
	default:
		return false
	}
	if i < len(b) && b[i] == '.' {
		i++
		if i == len(b) || b[i] < '0' || b[i] > '9' {
			return false
		}
		for i < len(b) && b[i] >= '0' && b[i] <= '9' {
			i++
		}
	}
	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		i++
		if i < len(b) && (b[i] == '+' || b[i] == '-') {
			i++
		}
		if i == len(b) || b[i] < '0' || b[i] > '9' {
			return false
		}
		for i < len(b) && b[i] >= '0' && b[i] <= '9' {
			i++
		}
	}
	return i == len(b)
}
