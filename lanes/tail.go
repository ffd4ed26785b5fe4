// Copyright 2025 The vpicgo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lanes

// ProcessBlocks walks size elements in blocks of width.
//
// It calls:
//   - fullFn(offset) for each complete block (offset is the starting index)
//   - tailFn(offset, count) once for the remainder if size is not a multiple
//     of width
//
// Example, scaling an array with 4-wide vectors:
//
//	k := float32(1.5)
//	s := v4.BroadcastFloat(k)
//	lanes.ProcessBlocks(len(x), v4.N,
//	    func(off int) {
//	        v4.LoadFloat(x[off:]).Mul(s).Store(x[off:])
//	    },
//	    func(off, count int) {
//	        for i := off; i < off+count; i++ {
//	            x[i] *= k
//	        }
//	    },
//	)
func ProcessBlocks(size, width int, fullFn func(offset int), tailFn func(offset, count int)) {
	if width <= 0 {
		return
	}

	// Process full blocks
	fullBlocks := size / width
	for i := range fullBlocks {
		fullFn(i * width)
	}

	// Process tail if any
	remaining := size % width
	if remaining > 0 && tailFn != nil {
		tailFn(fullBlocks*width, remaining)
	}
}

// PaddedSize rounds size up to the next multiple of width. Particle arrays
// are allocated with this size so every block can use full-width loads.
func PaddedSize(size, width int) int {
	if width <= 0 {
		return size
	}
	return ((size + width - 1) / width) * width
}

// IsPadded returns true if size is a multiple of width.
func IsPadded(size, width int) bool {
	if width <= 0 {
		return true
	}
	return size%width == 0
}

// AlignDown rounds n down to a multiple of width: the number of elements
// covered by full blocks.
func AlignDown(n, width int) int {
	if width <= 0 {
		return n
	}
	return n - n%width
}
