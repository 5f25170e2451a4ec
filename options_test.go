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

	"github.com/stretchr/testify/require"
)

func TestOptionsNormalization(t *testing.T) {
	t.Run("indent width clamps high", func(t *testing.T) {
		var buf Buffer
		w := NewWriter(&buf, WithIndent(100))
		require.NoError(t, w.BeginArray())
		require.NoError(t, w.WriteInt(1))
		require.NoError(t, w.EndArray())
		require.Equal(t, "[\n"+strings.Repeat(" ", 16)+"1\n]", buf.String())
	})

	t.Run("negative indent width clamps to bare newlines", func(t *testing.T) {
		var buf Buffer
		w := NewWriter(&buf, WithIndent(-5))
		require.NoError(t, w.BeginArray())
		require.NoError(t, w.WriteInt(1))
		require.NoError(t, w.EndArray())
		require.Equal(t, "[\n1\n]", buf.String())
	})

	t.Run("unknown fill character falls back to space", func(t *testing.T) {
		var buf Buffer
		w := NewWriter(&buf, WithIndent(1), WithIndentChar('x'))
		require.NoError(t, w.BeginArray())
		require.NoError(t, w.WriteInt(1))
		require.NoError(t, w.EndArray())
		require.Equal(t, "[\n 1\n]", buf.String())
	})

	t.Run("unknown newline falls back to LF", func(t *testing.T) {
		var buf Buffer
		w := NewWriter(&buf, WithIndent(1), WithNewline(Newline("\v")))
		require.NoError(t, w.BeginArray())
		require.NoError(t, w.EndArray())
		require.Equal(t, "[]", buf.String())
		require.NoError(t, w.Flush())
	})

	t.Run("zero max depth selects default", func(t *testing.T) {
		var buf Buffer
		w := NewWriter(&buf)
		for i := 0; i < DefaultMaxDepth; i++ {
			require.NoError(t, w.BeginArray())
		}
		require.ErrorIs(t, w.BeginArray(), ErrDepthExceeded)
	})
}
