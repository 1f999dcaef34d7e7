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

// Add computes the lane-wise sum of two batches in bit-sliced form.
//
// It runs a single ripple-carry full adder across the planes, least
// significant first. Each step acts on whole plane words, so one pass of
// Width() boolean steps performs all NumLanes() scalar additions at once:
//
//	partial = a[p] XOR b[p] XOR carry
//	carry   = (a[p] AND b[p]) OR (carry AND (a[p] XOR b[p]))
//
// The returned sum holds each lane's addition modulo 2^Width(). Bit i of
// the carry plane is set exactly when lane i overflowed, i.e. the true sum
// reached 2^Width(); the overflow magnitude itself is not represented.
//
// Operands must agree in width and lane count, otherwise a ShapeError is
// returned and nothing is computed. Lanes never interfere: no output bit
// depends on any lane's value outside its own bit column.
func Add[T Unsigned](a, b *Lanes[T]) (*Lanes[T], Plane, error) {
	if err := checkShape(a, b); err != nil {
		return nil, 0, err
	}
	dst := newLanes[T](a.n, a.width)
	carry := rippleAdd(dst.planes, a.planes, b.planes)
	return dst, carry, nil
}

// AddInto is Add writing the sum into a caller-owned destination. All three
// batches must share one shape; on error nothing is written. dst may alias
// a or b: each plane is read before its slot is overwritten.
func AddInto[T Unsigned](dst, a, b *Lanes[T]) (Plane, error) {
	if err := checkShape(a, b); err != nil {
		return 0, err
	}
	if err := checkShape(dst, a); err != nil {
		return 0, err
	}
	return rippleAdd(dst.planes, a.planes, b.planes), nil
}

// rippleAdd runs the carry chain over the planes in increasing significance
// order. The chain is inherently sequential: each plane's carry-out feeds
// the next plane's carry-in.
func rippleAdd(sum, a, b []Plane) Plane {
	var carry Plane
	for p := range a {
		ap, bp := a[p], b[p]
		halfSum := ap ^ bp
		sum[p] = halfSum ^ carry
		carry = (ap & bp) | (carry & halfSum)
	}
	return carry
}

func checkShape[T Unsigned](a, b *Lanes[T]) error {
	if a.width != b.width || a.n != b.n {
		return &ShapeError{
			WidthA: a.width, WidthB: b.width,
			LanesA: a.n, LanesB: b.n,
		}
	}
	return nil
}
