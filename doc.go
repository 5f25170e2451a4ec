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

// Package jsontext implements an incremental, single-pass JSON text writer.
//
// A Writer emits well-formed JSON directly into a Sink without building an
// intermediate document tree. Every write operation first validates that the
// token is legal at the current position, then computes an upper bound on the
// bytes it may produce, reserves that much space from the sink in a single
// call, writes punctuation and payload, and commits the exact count used.
// Small writes never allocate.
//
// Basic usage:
//
//	var buf jsontext.Buffer
//	w := jsontext.NewWriter(&buf)
//	w.BeginObject()
//	w.WriteStringField("name", "antfly")
//	w.WriteIntField("count", 3)
//	w.EndObject()
//	fmt.Println(buf.String()) // {"name":"antfly","count":3}
//
// Writers validate JSON grammar by default: property names outside objects,
// values where a name is expected, mismatched container ends and nesting
// beyond MaxDepth all fail with sentinel errors that can be matched with
// errors.Is. Validation can be disabled with SkipValidation for trusted call
// sites, which also relaxes the single-top-level-value rule for streaming
// sequences of values.
//
// Text escaping is pluggable through the Escaper interface; DefaultEscaper
// produces minimal RFC 8259 escapes, HTMLEscaper additionally escapes
// characters that are unsafe inside <script> blocks, and ASCIIEscaper forces
// pure-ASCII output.
//
// A Writer must not be shared between goroutines.
package jsontext
