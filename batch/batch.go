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

// Package batch runs many independent bit-sliced additions, each a full
// transpose -> add -> untranspose pipeline over conventional value slices.
//
// Pipelines are independent of each other and may run in parallel; the
// carry chain inside each addition stays sequential. On any error all
// results are discarded: callers never observe partially computed batches.
package batch

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-bitslice/bitslice"
	"github.com/ajroetker/go-bitslice/workerpool"
)

// Pair is one addition job: two equally long value slices.
type Pair[T bitslice.Unsigned] struct {
	A, B []T
}

// Result is the outcome of one Pair: lane-wise sums modulo 2^W, and the
// carry plane whose bit i flags overflow of lane i.
type Result[T bitslice.Unsigned] struct {
	Sum   []T
	Carry bitslice.Plane
}

func addPair[T bitslice.Unsigned](p Pair[T]) (Result[T], error) {
	la, err := bitslice.Transpose(p.A)
	if err != nil {
		return Result[T]{}, err
	}
	lb, err := bitslice.Transpose(p.B)
	if err != nil {
		return Result[T]{}, err
	}

	sum, carry, err := bitslice.Add(la, lb)
	if err != nil {
		return Result[T]{}, err
	}
	return Result[T]{Sum: sum.Values(), Carry: carry}, nil
}

// Sum computes every pair sequentially. The first failing pair aborts the
// whole batch and no results are returned.
func Sum[T bitslice.Unsigned](pairs []Pair[T]) ([]Result[T], error) {
	results := make([]Result[T], len(pairs))
	for i, p := range pairs {
		r, err := addPair(p)
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", i, err)
		}
		results[i] = r
	}
	return results, nil
}

// SumParallel computes the pairs over the given worker pool, chunked into
// contiguous ranges. Results are positionally stable. If any pair fails,
// the whole batch fails and no results are returned.
func SumParallel[T bitslice.Unsigned](pool *workerpool.Pool, pairs []Pair[T]) ([]Result[T], error) {
	results := make([]Result[T], len(pairs))
	errs := make([]error, len(pairs))

	pool.ParallelFor(len(pairs), func(start, end int) {
		for i := start; i < end; i++ {
			results[i], errs[i] = addPair(pairs[i])
		}
	})

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", i, err)
		}
	}
	return results, nil
}

// SumContext computes the pairs concurrently with bounded parallelism and
// context cancellation. The first error (or ctx cancellation) cancels the
// remaining pairs and fails the batch.
func SumContext[T bitslice.Unsigned](ctx context.Context, pairs []Pair[T]) ([]Result[T], error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	results := make([]Result[T], len(pairs))
	for i, p := range pairs {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := addPair(p)
			if err != nil {
				return fmt.Errorf("pair %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
