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
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func writeOne(t *testing.T, fn func(w *Writer) error) string {
	t.Helper()
	var buf Buffer
	w := NewWriter(&buf)
	require.NoError(t, fn(w))
	return buf.String()
}

func TestWriteIntegers(t *testing.T) {
	tests := []struct {
		name string
		fn   func(w *Writer) error
		want string
	}{
		{"zero", func(w *Writer) error { return w.WriteInt(0) }, "0"},
		{"positive", func(w *Writer) error { return w.WriteInt(42) }, "42"},
		{"min int64", func(w *Writer) error { return w.WriteInt(math.MinInt64) }, "-9223372036854775808"},
		{"max int64", func(w *Writer) error { return w.WriteInt(math.MaxInt64) }, "9223372036854775807"},
		{"max uint64", func(w *Writer) error { return w.WriteUint(math.MaxUint64) }, "18446744073709551615"},
		{"int32", func(w *Writer) error { return w.WriteInt32(-7) }, "-7"},
		{"uint32", func(w *Writer) error { return w.WriteUint32(7) }, "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, writeOne(t, tt.fn))
		})
	}
}

func TestWriteFloats(t *testing.T) {
	tests := []struct {
		name string
		fn   func(w *Writer) error
		want string
	}{
		{"simple", func(w *Writer) error { return w.WriteFloat64(3.5) }, "3.5"},
		{"negative fraction", func(w *Writer) error { return w.WriteFloat64(-0.25) }, "-0.25"},
		{"integral", func(w *Writer) error { return w.WriteFloat64(2) }, "2"},
		{"float32 precision", func(w *Writer) error { return w.WriteFloat32(0.1) }, "0.1"},
		{"large magnitude", func(w *Writer) error { return w.WriteFloat64(1e21) }, "1e+21"},
		{"smallest subnormal", func(w *Writer) error { return w.WriteFloat64(5e-324) }, "5e-324"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, writeOne(t, tt.fn))
		})
	}
}

func TestWriteFloatNonFinite(t *testing.T) {
	var buf Buffer
	w := NewWriter(&buf)
	require.ErrorIs(t, w.WriteFloat64(math.NaN()), ErrNonFiniteNumber)
	require.ErrorIs(t, w.WriteFloat64(math.Inf(1)), ErrNonFiniteNumber)
	require.ErrorIs(t, w.WriteFloat64(math.Inf(-1)), ErrNonFiniteNumber)
	require.ErrorIs(t, w.WriteFloat32(float32(math.Inf(1))), ErrNonFiniteNumber)
	require.Equal(t, 0, buf.Len())

	// The check precedes the name write in field form.
	require.NoError(t, w.BeginObject())
	require.ErrorIs(t, w.WriteFloat64Field("x", math.NaN()), ErrNonFiniteNumber)
	require.NoError(t, w.EndObject())
	require.Equal(t, "{}", buf.String())
}

func TestWriteDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.5", "1.5"},
		{"-0.001", "-0.001"},
		{"12345678901234567890.123456789", "12345678901234567890.123456789"},
		{"1.50", "1.5"},
		{"0", "0"},
	}
	for _, tt := range tests {
		d := decimal.RequireFromString(tt.in)
		got := writeOne(t, func(w *Writer) error { return w.WriteDecimal(d) })
		require.Equal(t, tt.want, got, "input %s", tt.in)
	}
}

func TestWriteRawNumber(t *testing.T) {
	valid := []string{"0", "-0", "7", "-12", "1.5", "0.0001", "1e6", "1E6", "1e+6", "1.5e-3", "123.456e78"}
	for _, num := range valid {
		got := writeOne(t, func(w *Writer) error { return w.WriteRawNumber([]byte(num)) })
		require.Equal(t, num, got)
	}

	invalid := []string{"", "-", "+1", "01", "00", ".5", "1.", "1.e5", "1e", "1e+", "0x10", "NaN", "Infinity", "1 "}
	for _, num := range invalid {
		var buf Buffer
		w := NewWriter(&buf)
		require.ErrorIs(t, w.WriteRawNumber([]byte(num)), ErrInvalidNumberFormat, "input %q", num)
		require.Equal(t, 0, buf.Len())
	}
}

func TestWriteBoolAndNull(t *testing.T) {
	require.Equal(t, "true", writeOne(t, func(w *Writer) error { return w.WriteBool(true) }))
	require.Equal(t, "false", writeOne(t, func(w *Writer) error { return w.WriteBool(false) }))
	require.Equal(t, "null", writeOne(t, func(w *Writer) error { return w.WriteNull() }))
}

func TestWriteTime(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			"whole seconds utc",
			time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC),
			`"2024-01-15T10:30:45Z"`,
		},
		{
			"nanoseconds trimmed",
			time.Date(2024, 1, 15, 10, 30, 45, 123000000, time.UTC),
			`"2024-01-15T10:30:45.123Z"`,
		},
		{
			"zone offset",
			time.Date(2024, 6, 1, 9, 0, 0, 0, time.FixedZone("CEST", 2*3600)),
			`"2024-06-01T09:00:00+02:00"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := writeOne(t, func(w *Writer) error { return w.WriteTime(tt.in) })
			require.Equal(t, tt.want, got)
		})
	}
}

func TestWriteUUID(t *testing.T) {
	u := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	got := writeOne(t, func(w *Writer) error { return w.WriteUUID(u) })
	require.Equal(t, `"6ba7b810-9dad-11d1-80b4-00c04fd430c8"`, got)

	got = writeOne(t, func(w *Writer) error {
		if err := w.BeginObject(); err != nil {
			return err
		}
		if err := w.WriteUUIDField("id", u); err != nil {
			return err
		}
		return w.EndObject()
	})
	require.Equal(t, `{"id":"6ba7b810-9dad-11d1-80b4-00c04fd430c8"}`, got)
}

func TestWriteBase64(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"empty", nil, `""`},
		{"short", []byte{0, 1, 2}, `"AAEC"`},
		{"padding one", []byte{0, 1, 2, 3}, `"AAECAw=="`},
		{"padding two", []byte{0, 1, 2, 3, 4}, `"AAECAwQ="`},
		{"text", []byte("antfly"), `"YW50Zmx5"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := writeOne(t, func(w *Writer) error { return w.WriteBase64(tt.in) })
			require.Equal(t, tt.want, got)
		})
	}
}

func TestReservationsNeverUndershoot(t *testing.T) {
	// A sink that fails the test if a commit exceeds its reservation.
	type op func(w *Writer) error
	ops := []op{
		func(w *Writer) error { return w.BeginObject() },
		func(w *Writer) error { return w.WriteStringField("s", "needs \"escaping\"\n") },
		func(w *Writer) error { return w.WriteIntField("i", math.MinInt64) },
		func(w *Writer) error { return w.WriteFloat64Field("f", -1.797e308) },
		func(w *Writer) error { return w.WriteTimeField("t", time.Now()) },
		func(w *Writer) error { return w.WriteBase64Field("b", []byte("abcdefgh")) },
		func(w *Writer) error { return w.WriteComment("note") },
		func(w *Writer) error { return w.EndObject() },
	}

	sink := &strictSink{t: t}
	w := NewWriter(sink, WithIndent(4))
	for _, o := range ops {
		require.NoError(t, o(w))
	}
}

// strictSink enforces the one-Reserve-one-Commit protocol.
type strictSink struct {
	t        *testing.T
	buf      Buffer
	reserved int
	pending  bool
}

func (s *strictSink) Reserve(n int) ([]byte, error) {
	if s.pending {
		s.t.Fatal("Reserve called twice without Commit")
	}
	s.pending = true
	s.reserved = n
	return s.buf.Reserve(n)
}

func (s *strictSink) Commit(used int) {
	if !s.pending {
		s.t.Fatal("Commit without Reserve")
	}
	if used > s.reserved {
		s.t.Fatalf("committed %d bytes of a %d byte reservation", used, s.reserved)
	}
	s.pending = false
	s.buf.Commit(used)
}
