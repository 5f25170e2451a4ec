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

import "errors"

// Grammar violations: the caller asked for a token that is illegal at the
// writer's current position. These are suppressed by SkipValidation. Output
// already committed before the failing call is not rolled back; a writer that
// returned a grammar error should be discarded.
var (
	// ErrDepthExceeded is returned when opening a container would nest
	// deeper than the configured MaxDepth.
	ErrDepthExceeded = errors.New("jsontext: maximum nesting depth exceeded")

	// ErrMismatchedContainer is returned when EndObject or EndArray does not
	// match the innermost open container.
	ErrMismatchedContainer = errors.New("jsontext: container end does not match open container")

	// ErrEmptyStack is returned when EndObject or EndArray is called with no
	// container open.
	ErrEmptyStack = errors.New("jsontext: no container is open")

	// ErrPropertyOutsideObject is returned when a property name is written
	// outside an object, or directly after another property name.
	ErrPropertyOutsideObject = errors.New("jsontext: property name not valid here")

	// ErrExpectedPropertyName is returned when a value is written inside an
	// object without a preceding property name.
	ErrExpectedPropertyName = errors.New("jsontext: property name required before value")

	// ErrExpectedPropertyValue is returned when a container is closed while
	// the last written property name still has no value.
	ErrExpectedPropertyValue = errors.New("jsontext: property value required before container end")

	// ErrMultipleTopLevelValues is returned when a second top-level value is
	// written while validation is enabled.
	ErrMultipleTopLevelValues = errors.New("jsontext: JSON text may contain only one top-level value")
)

// Input validity failures protect sink and memory-size invariants and are
// enforced even when validation is skipped.
var (
	// ErrTokenTooLarge is returned when an input is so large that the
	// worst-case escaped or encoded form cannot be bounded safely.
	ErrTokenTooLarge = errors.New("jsontext: token exceeds maximum size")

	// ErrInvalidCommentValue is returned when comment text contains the
	// closing delimiter "*/".
	ErrInvalidCommentValue = errors.New("jsontext: comment text contains */")

	// ErrInvalidNumberFormat is returned when a pre-formatted number does not
	// satisfy the RFC 8259 number grammar.
	ErrInvalidNumberFormat = errors.New("jsontext: malformed number")

	// ErrNonFiniteNumber is returned for NaN and infinite floating-point
	// values, which have no JSON representation.
	ErrNonFiniteNumber = errors.New("jsontext: NaN and Inf cannot be written as JSON")

	// ErrEmptyRawValue is returned when WriteRawValue is given no bytes.
	ErrEmptyRawValue = errors.New("jsontext: raw value must not be empty")
)

// ErrSinkExhausted is returned when the sink cannot satisfy a reservation.
// Nothing is committed for the failing operation.
var ErrSinkExhausted = errors.New("jsontext: sink cannot satisfy reservation")
