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
	"math/rand"
	"testing"
)

func randomValues[T Unsigned](r *rand.Rand, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(r.Uint64())
	}
	return out
}

func checkRoundTrip[T Unsigned](t *testing.T, values []T) {
	t.Helper()

	l, err := Transpose(values)
	if err != nil {
		t.Fatalf("Transpose() error: %v", err)
	}
	if l.NumLanes() != len(values) {
		t.Fatalf("NumLanes() = %d, want %d", l.NumLanes(), len(values))
	}
	if l.Width() != Width[T]() {
		t.Fatalf("Width() = %d, want %d", l.Width(), Width[T]())
	}

	got := l.Values()
	if len(got) != len(values) {
		t.Fatalf("Values() returned %d values, want %d", len(got), len(values))
	}
	for i := range values {
		if got[i] != values[i] {
			t.Errorf("Values()[%d] = %d, want %d", i, got[i], values[i])
		}
	}
}

func testRoundTrip[T Unsigned](t *testing.T) {
	r := rand.New(rand.NewSource(42))

	// Every legal lane count, random values.
	for n := 0; n <= PlaneBits; n++ {
		checkRoundTrip(t, randomValues[T](r, n))
	}

	// Edge patterns: all zeros, all ones.
	var maxVal T
	maxVal--
	for _, v := range []T{0, maxVal} {
		values := make([]T, PlaneBits)
		for i := range values {
			values[i] = v
		}
		checkRoundTrip(t, values)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Run("uint8", testRoundTrip[uint8])
	t.Run("uint16", testRoundTrip[uint16])
	t.Run("uint32", testRoundTrip[uint32])
}

func TestRoundTripExhaustiveSingleLane8(t *testing.T) {
	for v := 0; v < 256; v++ {
		checkRoundTrip(t, []uint8{uint8(v)})
	}
}

func TestTransposeKnownPlanes(t *testing.T) {
	// values: 1 = 0b01, 2 = 0b10, 3 = 0b11
	// plane 0 collects bit 0 of each lane, plane 1 collects bit 1.
	l, err := Transpose([]uint8{1, 2, 3})
	if err != nil {
		t.Fatalf("Transpose() error: %v", err)
	}

	want := []Plane{0b101, 0b110, 0, 0, 0, 0, 0, 0}
	got := l.Planes()
	if len(got) != len(want) {
		t.Fatalf("Planes() returned %d planes, want %d", len(got), len(want))
	}
	for b := range want {
		if got[b] != want[b] {
			t.Errorf("Plane(%d) = %#b, want %#b", b, got[b], want[b])
		}
	}
}

func TestTransposeCapacity(t *testing.T) {
	t.Run("uint8", testTransposeCapacity[uint8])
	t.Run("uint16", testTransposeCapacity[uint16])
	t.Run("uint32", testTransposeCapacity[uint32])
}

func testTransposeCapacity[T Unsigned](t *testing.T) {
	values := make([]T, PlaneBits+1)

	l, err := Transpose(values)
	if err == nil {
		t.Fatal("Transpose() with 33 lanes succeeded, want capacity error")
	}
	if l != nil {
		t.Errorf("Transpose() returned non-nil lanes alongside error")
	}
	if !errors.Is(err, ErrCapacity) {
		t.Errorf("errors.Is(err, ErrCapacity) = false for %v", err)
	}

	var ce *CapacityError
	if !errors.As(err, &ce) {
		t.Fatalf("error %v is not a *CapacityError", err)
	}
	if ce.Lanes != PlaneBits+1 || ce.Capacity != PlaneBits {
		t.Errorf("CapacityError = %+v, want Lanes=%d Capacity=%d", ce, PlaneBits+1, PlaneBits)
	}
}

func TestTransposeWidthRange(t *testing.T) {
	tests := []struct {
		name    string
		values  []uint8
		width   int
		wantIdx int
	}{
		{
			name:    "first value too wide",
			values:  []uint8{0x1F},
			width:   4,
			wantIdx: 0,
		},
		{
			name:    "later value too wide",
			values:  []uint8{1, 2, 16, 3},
			width:   4,
			wantIdx: 2,
		},
		{
			name:    "boundary value",
			values:  []uint8{8},
			width:   3,
			wantIdx: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TransposeWidth(tt.values, tt.width)
			if !errors.Is(err, ErrRange) {
				t.Fatalf("TransposeWidth() error = %v, want range error", err)
			}
			var re *RangeError
			if !errors.As(err, &re) {
				t.Fatalf("error %v is not a *RangeError", err)
			}
			if re.Index != tt.wantIdx {
				t.Errorf("RangeError.Index = %d, want %d", re.Index, tt.wantIdx)
			}
			if re.Width != tt.width {
				t.Errorf("RangeError.Width = %d, want %d", re.Width, tt.width)
			}
		})
	}
}

func TestTransposeWidthOK(t *testing.T) {
	values := []uint16{0, 7, 15, 9}

	l, err := TransposeWidth(values, 4)
	if err != nil {
		t.Fatalf("TransposeWidth() error: %v", err)
	}
	if l.Width() != 4 {
		t.Fatalf("Width() = %d, want 4", l.Width())
	}

	got := l.Values()
	for i := range values {
		if got[i] != values[i] {
			t.Errorf("Values()[%d] = %d, want %d", i, got[i], values[i])
		}
	}
}

func TestTransposeTruncate(t *testing.T) {
	// Truncation keeps only the low width bits, explicitly.
	l, err := TransposeTruncate([]uint8{0xFF, 0x10, 0x0F}, 4)
	if err != nil {
		t.Fatalf("TransposeTruncate() error: %v", err)
	}

	want := []uint8{0x0F, 0x00, 0x0F}
	got := l.Values()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d] = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestTransposeWidthArgument(t *testing.T) {
	tests := []struct {
		name  string
		width int
	}{
		{"zero", 0},
		{"negative", -1},
		{"wider than element", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TransposeWidth([]uint8{1}, tt.width)
			if !errors.Is(err, ErrWidth) {
				t.Errorf("TransposeWidth(width=%d) error = %v, want width error", tt.width, err)
			}
		})
	}
}

func TestAppendValues(t *testing.T) {
	l, err := Transpose([]uint32{10, 20, 30})
	if err != nil {
		t.Fatalf("Transpose() error: %v", err)
	}

	dst := make([]uint32, 0, 8)
	dst = append(dst, 99)
	dst = l.AppendValues(dst)

	want := []uint32{99, 10, 20, 30}
	if len(dst) != len(want) {
		t.Fatalf("AppendValues() len = %d, want %d", len(dst), len(want))
	}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestTransposeDoesNotMutateInput(t *testing.T) {
	values := []uint8{1, 2, 3, 4}
	orig := append([]uint8(nil), values...)

	if _, err := Transpose(values); err != nil {
		t.Fatalf("Transpose() error: %v", err)
	}
	for i := range orig {
		if values[i] != orig[i] {
			t.Errorf("input mutated at %d: %d != %d", i, values[i], orig[i])
		}
	}
}

func TestWidth(t *testing.T) {
	if got := Width[uint8](); got != 8 {
		t.Errorf("Width[uint8]() = %d, want 8", got)
	}
	if got := Width[uint16](); got != 16 {
		t.Errorf("Width[uint16]() = %d, want 16", got)
	}
	if got := Width[uint32](); got != 32 {
		t.Errorf("Width[uint32]() = %d, want 32", got)
	}
}

func BenchmarkTranspose(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	values := randomValues[uint32](r, PlaneBits)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Transpose(values); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkValues(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	l, err := Transpose(randomValues[uint32](r, PlaneBits))
	if err != nil {
		b.Fatal(err)
	}

	dst := make([]uint32, 0, PlaneBits)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		dst = l.AppendValues(dst[:0])
	}
	_ = dst
}
