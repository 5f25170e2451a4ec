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
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"
)

func writeOneString(t *testing.T, e Escaper, s string) string {
	t.Helper()
	var buf Buffer
	w := NewWriter(&buf, WithEscaper(e))
	require.NoError(t, w.WriteString(s))
	return buf.String()
}

func TestEscapeDefault(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", `"hello"`},
		{"empty", "", `""`},
		{"quote", `say "hi"`, `"say \"hi\""`},
		{"backslash", `a\b`, `"a\\b"`},
		{"short escapes", "a\n\r\t\b\fb", `"a\n\r\t\b\fb"`},
		{"other control", "a\x01b", `"a\u0001b"`},
		{"delete is safe", "a\x7fb", "\"a\x7fb\""},
		{"html left alone", `<a href="x">&`, `"<a href=\"x\">&"`},
		{"multibyte left alone", "héllo 世界", `"héllo 世界"`},
		{"astral left alone", "a\U0001F600b", "\"a\U0001F600b\""},
		{"invalid utf8 replaced", "a\xffb", `"a\ufffdb"`},
		{"truncated rune replaced", "a\xe4\xb8", `"a\ufffd\ufffd"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, writeOneString(t, DefaultEscaper, tt.in))
		})
	}
}

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"angle brackets", "<script>", `"\u003cscript\u003e"`},
		{"ampersand", "a&b", `"a\u0026b"`},
		{"line separator", "a\u2028b", `"a\u2028b"`},
		{"paragraph separator", "a\u2029b", `"a\u2029b"`},
		{"normal multibyte kept", "héllo", `"héllo"`},
		{"required escapes still applied", "a\"b", `"a\"b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, writeOneString(t, HTMLEscaper, tt.in))
		})
	}
}

func TestEscapeASCII(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii kept", "plain text", `"plain text"`},
		{"latin escaped", "héllo", `"h\u00e9llo"`},
		{"cjk escaped", "世", `"\u4e16"`},
		{"astral becomes surrogate pair", "\U0001F600", `"\ud83d\ude00"`},
		{"invalid utf8 replaced", "\xff", `"\ufffd"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, writeOneString(t, ASCIIEscaper, tt.in))
		})
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	// Valid UTF-8 inputs must decode back to themselves under every policy.
	inputs := []string{
		"",
		"plain",
		`quotes " and \ slashes`,
		"tabs\tand\nnewlines",
		"控制\x01字符",
		"emoji \U0001F680 and accents é",
		strings.Repeat("xyz\"", 100),
	}
	escapers := map[string]Escaper{
		"default": DefaultEscaper,
		"html":    HTMLEscaper,
		"ascii":   ASCIIEscaper,
	}

	for name, e := range escapers {
		for _, in := range inputs {
			var buf Buffer
			w := NewWriter(&buf, WithEscaper(e))
			require.NoError(t, w.BeginObject())
			require.NoError(t, w.WriteStringField("v", in))
			require.NoError(t, w.EndObject())

			var got map[string]string
			require.NoError(t, sonic.Unmarshal(buf.Bytes(), &got), "policy %s input %q", name, in)
			require.Equal(t, in, got["v"], "policy %s", name)
		}
	}
}

func TestEscapedNames(t *testing.T) {
	var buf Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.BeginObject())
	require.NoError(t, w.WritePropertyName("line\nbreak"))
	require.NoError(t, w.WriteInt(1))
	require.NoError(t, w.EndObject())
	require.Equal(t, "{\"line\\nbreak\":1}", buf.String())
}

func TestEncodeName(t *testing.T) {
	enc, err := EncodeName("plain", nil)
	require.NoError(t, err)
	require.Equal(t, "plain", enc.String())

	enc, err = EncodeName("a\"b", DefaultEscaper)
	require.NoError(t, err)
	require.Equal(t, `a\"b`, enc.String())

	// A pre-encoded name must render identically to the scanning path.
	var scanned, encoded Buffer
	w := NewWriter(&scanned)
	require.NoError(t, w.BeginObject())
	require.NoError(t, w.WritePropertyName("wi\tld"))
	require.NoError(t, w.WriteNull())
	require.NoError(t, w.EndObject())

	pre, err := EncodeName("wi\tld", DefaultEscaper)
	require.NoError(t, err)
	w = NewWriter(&encoded)
	require.NoError(t, w.BeginObject())
	require.NoError(t, w.WritePropertyNameEncoded(pre))
	require.NoError(t, w.WriteNull())
	require.NoError(t, w.EndObject())

	require.Equal(t, scanned.String(), encoded.String())
}

func TestMaxEscapedLenIsAnUpperBound(t *testing.T) {
	inputs := []string{"\x00", "\"\"\"", "héllo", "\U0001F600", "mixed \x01 é \U0001F600 \xff"}
	for _, in := range inputs {
		for _, e := range []Escaper{DefaultEscaper, HTMLEscaper, ASCIIEscaper} {
			first := e.FirstIndex(in)
			if first < 0 {
				continue
			}
			out := appendEscaped(nil, in, e, first)
			require.LessOrEqual(t, len(out), maxEscapedLen(len(in), first), "input %q", in)
		}
	}
}
