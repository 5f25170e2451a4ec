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

import "sync"

// Transient escape buffers. Lifetime is strictly nested inside the single
// operation that requested one; buffers grown past oversizedScratch are not
// kept warm in the pool.
const (
	scratchBaseSize  = 256
	oversizedScratch = 1 << 16
)

type scratchBuffer struct {
	data []byte
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuffer{data: make([]byte, 0, scratchBaseSize)} },
}

func getScratch(n int) *scratchBuffer {
	s := scratchPool.Get().(*scratchBuffer)
	if cap(s.data) < n {
		s.data = make([]byte, 0, growCap(cap(s.data), n))
	}
	return s
}

func putScratch(s *scratchBuffer) {
	if cap(s.data) > oversizedScratch {
		s.data = make([]byte, 0, scratchBaseSize)
	}
	scratchPool.Put(s)
}
