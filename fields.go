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

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Name+value conveniences, one per scalar kind. Each is the corresponding
// WritePropertyName followed by the value write; input-validity checks that
// could fail the value run up front, so a bad value never commits a dangling
// name.

// WriteStringField writes name and a string value.
func (w *Writer) WriteStringField(name, value string) error {
	if len(value) > MaxTokenSize {
		return fmt.Errorf("%w: string is %d bytes", ErrTokenTooLarge, len(value))
	}
	if err := w.WritePropertyName(name); err != nil {
		return err
	}
	return w.WriteString(value)
}

// WriteIntField writes name and an integer value.
func (w *Writer) WriteIntField(name string, value int64) error {
	if err := w.WritePropertyName(name); err != nil {
		return err
	}
	return w.WriteInt(value)
}

// WriteUintField writes name and an unsigned integer value.
func (w *Writer) WriteUintField(name string, value uint64) error {
	if err := w.WritePropertyName(name); err != nil {
		return err
	}
	return w.WriteUint(value)
}

// WriteFloat64Field writes name and a double-precision value.
func (w *Writer) WriteFloat64Field(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %v", ErrNonFiniteNumber, value)
	}
	if err := w.WritePropertyName(name); err != nil {
		return err
	}
	return w.WriteFloat64(value)
}

// WriteFloat32Field writes name and a single-precision value.
func (w *Writer) WriteFloat32Field(name string, value float32) error {
	v64 := float64(value)
	if math.IsNaN(v64) || math.IsInf(v64, 0) {
		return fmt.Errorf("%w: %v", ErrNonFiniteNumber, value)
	}
	if err := w.WritePropertyName(name); err != nil {
		return err
	}
	return w.WriteFloat32(value)
}

// WriteDecimalField writes name and a decimal value.
func (w *Writer) WriteDecimalField(name string, value decimal.Decimal) error {
	if err := w.WritePropertyName(name); err != nil {
		return err
	}
	return w.WriteDecimal(value)
}

// WriteBoolField writes name and a boolean value.
func (w *Writer) WriteBoolField(name string, value bool) error {
	if err := w.WritePropertyName(name); err != nil {
		return err
	}
	return w.WriteBool(value)
}

// WriteNullField writes name and a null value.
func (w *Writer) WriteNullField(name string) error {
	if err := w.WritePropertyName(name); err != nil {
		return err
	}
	return w.WriteNull()
}

// WriteTimeField writes name and an RFC 3339 timestamp value.
func (w *Writer) WriteTimeField(name string, value time.Time) error {
	if err := w.WritePropertyName(name); err != nil {
		return err
	}
	return w.WriteTime(value)
}

// WriteUUIDField writes name and a UUID value.
func (w *Writer) WriteUUIDField(name string, value uuid.UUID) error {
	if err := w.WritePropertyName(name); err != nil {
		return err
	}
	return w.WriteUUID(value)
}

// WriteBase64Field writes name and binary data as a base64 string value.
func (w *Writer) WriteBase64Field(name string, data []byte) error {
	if len(data) > (math.MaxInt32-2)/4*3 {
		return fmt.Errorf("%w: %d bytes of binary data", ErrTokenTooLarge, len(data))
	}
	if err := w.WritePropertyName(name); err != nil {
		return err
	}
	return w.WriteBase64(data)
}

// WriteRawNumberField writes name and a caller-rendered number value.
func (w *Writer) WriteRawNumberField(name string, num []byte) error {
	if len(num) > MaxTokenSize {
		return fmt.Errorf("%w: number is %d bytes", ErrTokenTooLarge, len(num))
	}
	if !validNumber(num) {
		return fmt.Errorf("%w: %q", ErrInvalidNumberFormat, num)
	}
	if err := w.WritePropertyName(name); err != nil {
		return err
	}
	return w.WriteRawNumber(num)
}
