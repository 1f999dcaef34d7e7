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

import (
	"errors"
	"fmt"
)

// All errors in this package are precondition violations: they are raised
// before any output is allocated or written, so a caller may treat them as
// non-recoverable but side-effect-free. There is no retry semantic.

var (
	// ErrCapacity is the class of all CapacityError values, for errors.Is.
	ErrCapacity = errors.New("lane count exceeds plane capacity")

	// ErrRange is the class of all RangeError values, for errors.Is.
	ErrRange = errors.New("value exceeds lane width")

	// ErrShape is the class of all ShapeError values, for errors.Is.
	ErrShape = errors.New("operand shapes differ")

	// ErrWidth is returned when a requested lane width is outside
	// [1, Width[T]()].
	ErrWidth = errors.New("width out of range")
)

// CapacityError indicates a requested lane count larger than a single plane
// word can encode.
type CapacityError struct {
	Lanes    int
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("bitslice: %d lanes exceed plane capacity %d", e.Lanes, e.Capacity)
}

func (e *CapacityError) Unwrap() error { return ErrCapacity }

// RangeError indicates an input value with set bits at or above the
// requested lane width, in fail-fast mode. Use TransposeTruncate for the
// explicit truncating alternative.
type RangeError struct {
	Index int
	Value uint64
	Width int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("bitslice: value %d at index %d does not fit in %d bits", e.Value, e.Index, e.Width)
}

func (e *RangeError) Unwrap() error { return ErrRange }

// ShapeError indicates Add operands whose widths or lane counts differ.
// No partial computation is attempted.
type ShapeError struct {
	WidthA, WidthB int
	LanesA, LanesB int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("bitslice: shape mismatch: %d bits x %d lanes vs %d bits x %d lanes",
		e.WidthA, e.LanesA, e.WidthB, e.LanesB)
}

func (e *ShapeError) Unwrap() error { return ErrShape }

// widthError carries the offending width; callers match it via ErrWidth.
type widthError struct {
	width int
	max   int
}

func (e *widthError) Error() string {
	return fmt.Sprintf("bitslice: width %d out of range [1,%d]", e.width, e.max)
}

func (e *widthError) Unwrap() error { return ErrWidth }
