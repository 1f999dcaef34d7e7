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

// Package bitslice implements a transposed ("bit-sliced") representation of
// batches of fixed-width unsigned integers and arithmetic over that form.
//
// A batch of N values of width W is stored as W plane words: plane b holds
// bit b of every value, one bit per lane. Addition then runs as a single
// ripple-carry pass over the W planes using only AND/OR/XOR, computing all
// N scalar additions at once instead of one at a time.
//
// Basic usage:
//
//	a, _ := bitslice.Transpose([]uint32{1, 2, 3, 4})
//	b, _ := bitslice.Transpose([]uint32{10, 20, 30, 40})
//
//	sum, carry, _ := bitslice.Add(a, b)
//	fmt.Println(sum.Values()) // [11 22 33 44]
//	fmt.Println(carry)        // 0: no lane overflowed
//
// All operations are pure: inputs are never mutated, outputs are freshly
// allocated or written into a caller-owned destination (AddInto). There is
// no shared or global state anywhere in the package.
package bitslice

import "unsafe"

// Unsigned is the constraint for element types a batch may hold. The element
// type fixes the batch's bit width: uint8 batches transpose into 8 planes,
// uint16 into 16, uint32 into 32.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32
}

// Plane is one bit-plane of a batch: bit i of a Plane is the bit of lane i
// at this plane's significance. A Plane doubles as the carry-out vector of
// Add, where bit i reports overflow of lane i.
type Plane uint32

// PlaneBits is the plane capacity: the maximum number of lanes a single
// Plane word can encode. Batches longer than PlaneBits are rejected with a
// CapacityError; multi-word planes are deliberately not supported.
const PlaneBits = 32

// Width returns the number of bits in element type T (8, 16 or 32).
func Width[T Unsigned]() int {
	var dummy T
	return int(unsafe.Sizeof(dummy)) * 8
}

// Lanes is the bit-sliced form of a value batch: width planes of n bits
// each. Plane b, bit i holds bit b of value i.
//
// Lanes instances should not be created directly; use Transpose,
// TransposeWidth, TransposeTruncate or Zero instead. A Lanes value is
// immutable through its own API: only AddInto writes to one, and only when
// the caller passes it as the destination.
type Lanes[T Unsigned] struct {
	// planes holds one word per bit position, least significant first.
	// len(planes) == width.
	planes []Plane

	// n is the lane count: the number of values encoded in each plane.
	n int

	// width is the effective bit width of every lane, at most Width[T]().
	width int
}

// NumLanes returns the number of values encoded in the batch.
func (l *Lanes[T]) NumLanes() int {
	return l.n
}

// Width returns the effective bit width of every lane.
func (l *Lanes[T]) Width() int {
	return l.width
}

// Plane returns plane b. Panics if b is outside [0, Width()).
func (l *Lanes[T]) Plane(b int) Plane {
	return l.planes[b]
}

// Planes returns a copy of the underlying plane words, least significant
// first. This is primarily for inspection and testing.
func (l *Lanes[T]) Planes() []Plane {
	out := make([]Plane, len(l.planes))
	copy(out, l.planes)
	return out
}

// newLanes allocates an all-zero batch of the given shape. Shape must have
// been validated by the caller.
func newLanes[T Unsigned](n, width int) *Lanes[T] {
	return &Lanes[T]{
		planes: make([]Plane, width),
		n:      n,
		width:  width,
	}
}

// Zero returns the all-zero batch of n lanes at the full width of T: the
// additive identity for Add.
func Zero[T Unsigned](n int) (*Lanes[T], error) {
	if n < 0 || n > PlaneBits {
		return nil, &CapacityError{Lanes: n, Capacity: PlaneBits}
	}
	return newLanes[T](n, Width[T]()), nil
}
