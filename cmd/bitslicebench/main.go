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

// Command bitslicebench times bit-sliced batch addition over random inputs
// and renders a sample of the results.
//
// Each batch is a pair of random value slices; the driver transposes them
// into bit-plane form, runs the ripple-carry lane adder, transposes back,
// and cross-checks every lane against ordinary scalar addition.
//
// Usage:
//
//	bitslicebench -width 32 -lanes 8 -batches 10000
//	bitslicebench -width 8 -binary          # render lanes in binary
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"runtime"
	"time"

	"github.com/ajroetker/go-bitslice/batch"
	"github.com/ajroetker/go-bitslice/bitslice"
	"github.com/ajroetker/go-bitslice/workerpool"
)

var (
	width   = flag.Int("width", 32, "integer width: 8, 16 or 32")
	lanes   = flag.Int("lanes", 8, "values per batch (max 32)")
	batches = flag.Int("batches", 10000, "number of batches to add")
	seed    = flag.Int64("seed", 1, "random seed")
	show    = flag.Int("show", 4, "result rows to render")
	binary  = flag.Bool("binary", false, "render values in binary instead of decimal")
	workers = flag.Int("workers", 0, "workers for the parallel run (0 = GOMAXPROCS)")
)

func main() {
	flag.Parse()
	log.SetFlags(0)

	fmt.Printf("vector unit: %s, GOMAXPROCS: %d\n", bitslice.CurrentName(), runtime.GOMAXPROCS(0))

	switch *width {
	case 8:
		run[uint8]()
	case 16:
		run[uint16]()
	case 32:
		run[uint32]()
	default:
		log.Fatalf("unsupported width %d (want 8, 16 or 32)", *width)
	}
}

func run[T bitslice.Unsigned]() {
	if *lanes < 1 || *lanes > bitslice.PlaneBits {
		log.Fatalf("lanes must be in [1,%d], got %d", bitslice.PlaneBits, *lanes)
	}
	if *batches < 1 {
		log.Fatalf("batches must be positive, got %d", *batches)
	}

	r := rand.New(rand.NewSource(*seed))
	pairs := make([]batch.Pair[T], *batches)
	for i := range pairs {
		pairs[i] = batch.Pair[T]{
			A: randomValues[T](r, *lanes),
			B: randomValues[T](r, *lanes),
		}
	}

	start := time.Now()
	results, err := batch.Sum(pairs)
	if err != nil {
		log.Fatalf("sequential run failed: %v", err)
	}
	sequential := time.Since(start)

	pool := workerpool.New(*workers)
	defer pool.Close()

	start = time.Now()
	parallel, err := batch.SumParallel(pool, pairs)
	if err != nil {
		log.Fatalf("parallel run failed: %v", err)
	}
	elapsed := time.Since(start)

	mismatches := verify(pairs, results) + verify(pairs, parallel)

	total := *batches * *lanes
	fmt.Printf("width %d, %d batches x %d lanes (%d additions)\n", bitslice.Width[T](), *batches, *lanes, total)
	fmt.Printf("sequential: %v (%.1f Madd/s)\n", sequential, rate(total, sequential))
	fmt.Printf("parallel:   %v (%.1f Madd/s, %d workers)\n", elapsed, rate(total, elapsed), pool.NumWorkers())
	if mismatches > 0 {
		log.Fatalf("%d lanes disagree with scalar addition", mismatches)
	}
	fmt.Println("all lanes verified against scalar addition")

	for i := 0; i < min(*show, len(results)); i++ {
		renderRow(pairs[i], results[i])
	}
}

func randomValues[T bitslice.Unsigned](r *rand.Rand, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(r.Uint64())
	}
	return out
}

// verify cross-checks every lane of every result against scalar addition
// and returns the number of disagreeing lanes.
func verify[T bitslice.Unsigned](pairs []batch.Pair[T], results []batch.Result[T]) int {
	mismatches := 0
	for i, p := range pairs {
		for j := range p.A {
			if results[i].Sum[j] != p.A[j]+p.B[j] {
				mismatches++
			}
			wantCarry := uint64(p.A[j])+uint64(p.B[j]) >= 1<<bitslice.Width[T]()
			if (results[i].Carry>>j&1 == 1) != wantCarry {
				mismatches++
			}
		}
	}
	return mismatches
}

func rate(additions int, d time.Duration) float64 {
	return float64(additions) / d.Seconds() / 1e6
}

func renderRow[T bitslice.Unsigned](p batch.Pair[T], res batch.Result[T]) {
	for j := range p.A {
		overflow := ""
		if res.Carry>>j&1 == 1 {
			overflow = " (overflow)"
		}
		if *binary {
			w := bitslice.Width[T]()
			fmt.Printf("  %0*b + %0*b = %0*b%s\n", w, p.A[j], w, p.B[j], w, res.Sum[j], overflow)
		} else {
			fmt.Printf("  %d + %d = %d%s\n", p.A[j], p.B[j], res.Sum[j], overflow)
		}
	}
	fmt.Println()
}
