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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitStack(t *testing.T) {
	var s bitStack
	require.Equal(t, 0, s.len())
	require.False(t, s.topIsObject())

	s.push(true)
	require.True(t, s.topIsObject())
	s.push(false)
	require.False(t, s.topIsObject())
	require.Equal(t, 2, s.len())

	s.pop()
	require.True(t, s.topIsObject())
	s.pop()
	require.Equal(t, 0, s.len())
}

func TestBitStackWordBoundary(t *testing.T) {
	// Alternate kinds across several backing words and verify the pattern
	// survives pops.
	var s bitStack
	const depth = 200
	for i := 0; i < depth; i++ {
		s.push(i%3 == 0)
	}
	require.Equal(t, depth, s.len())
	for i := depth - 1; i >= 0; i-- {
		require.Equal(t, i%3 == 0, s.topIsObject(), "level %d", i)
		s.pop()
	}
}

func TestBitStackReusesWordsAfterReset(t *testing.T) {
	var s bitStack
	for i := 0; i < 70; i++ {
		s.push(true)
	}
	s.reset()
	require.Equal(t, 0, s.len())

	// Stale bits from the previous generation must not leak through.
	s.push(false)
	require.False(t, s.topIsObject())
}
