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

// bitStack records the kind of every open container, one bit per nesting
// level: 1 for objects, 0 for arrays. It is an index-addressed growable bit
// array, so pushing and popping never allocate once the backing words cover
// the current depth.
type bitStack struct {
	words []uint64
	n     int
}

func (s *bitStack) push(isObject bool) {
	word, bit := s.n/64, uint(s.n%64)
	if word >= len(s.words) {
		s.words = append(s.words, 0)
	}
	if isObject {
		s.words[word] |= 1 << bit
	} else {
		s.words[word] &^= 1 << bit
	}
	s.n++
}

// pop removes the top bit. Callers check emptiness first.
func (s *bitStack) pop() {
	s.n--
}

// topIsObject reports whether the innermost open container is an object.
// False when the stack is empty.
func (s *bitStack) topIsObject() bool {
	if s.n == 0 {
		return false
	}
	i := s.n - 1
	return s.words[i/64]&(1<<uint(i%64)) != 0
}

func (s *bitStack) len() int { return s.n }

func (s *bitStack) reset() {
	s.n = 0
}
