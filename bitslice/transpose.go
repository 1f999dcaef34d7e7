// Copyright 2025 go-bitslice Authors
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

package bitslice

// Transpose converts a batch of values into bit-sliced form at the full
// width of T. Plane b of the result holds bit b of every value: bit i of
// plane b equals bit b of values[i].
//
// Inverse of (*Lanes).Values: Transpose(v).Values() == v for every batch of
// at most PlaneBits values.
//
// Example:
//
//	l, err := bitslice.Transpose([]uint8{1, 2, 3})
//	// l.Plane(0) == 0b101 (bit 0 of 1, 2, 3)
//	// l.Plane(1) == 0b110 (bit 1 of 1, 2, 3)
func Transpose[T Unsigned](values []T) (*Lanes[T], error) {
	// Full width: no value of T can have set bits at or above Width[T](),
	// so the range check cannot fire.
	return transpose(values, Width[T](), false)
}

// TransposeWidth converts a batch into bit-sliced form at an explicit lane
// width narrower than (or equal to) the width of T. Any value with set bits
// at or above width fails fast with a RangeError before any output exists.
//
// The width must be in [1, Width[T]()].
func TransposeWidth[T Unsigned](values []T, width int) (*Lanes[T], error) {
	return transpose(values, width, false)
}

// TransposeTruncate is TransposeWidth with explicit truncation: each value
// is masked to its low width bits instead of being rejected. Bits at or
// above width are discarded and are not recoverable from the result.
func TransposeTruncate[T Unsigned](values []T, width int) (*Lanes[T], error) {
	return transpose(values, width, true)
}

func transpose[T Unsigned](values []T, width int, truncate bool) (*Lanes[T], error) {
	if width < 1 || width > Width[T]() {
		return nil, &widthError{width: width, max: Width[T]()}
	}
	if len(values) > PlaneBits {
		return nil, &CapacityError{Lanes: len(values), Capacity: PlaneBits}
	}
	if !truncate && width < Width[T]() {
		for i, v := range values {
			if uint64(v)>>width != 0 {
				return nil, &RangeError{Index: i, Value: uint64(v), Width: width}
			}
		}
	}

	l := newLanes[T](len(values), width)
	for b := 0; b < width; b++ {
		var p Plane
		for i, v := range values {
			p |= Plane((uint64(v)>>b)&1) << i
		}
		l.planes[b] = p
	}
	return l, nil
}

// Values converts the batch back to conventional layout, allocating the
// result. Value i is reassembled from bit i of every plane.
func (l *Lanes[T]) Values() []T {
	return l.AppendValues(nil)
}

// AppendValues appends the batch's values in conventional layout to dst and
// returns the extended slice, following the append-style convention for
// reusing caller buffers.
func (l *Lanes[T]) AppendValues(dst []T) []T {
	for i := 0; i < l.n; i++ {
		var v uint64
		for b, p := range l.planes {
			v |= uint64((p>>i)&1) << b
		}
		dst = append(dst, T(v))
	}
	return dst
}
