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

// Package factorize provides a prime sieve and integer factorization.
//
// It is a standalone utility: it shares no types or call paths with the
// bitslice arithmetic packages in this repository.
package factorize

// Primes returns all primes up to and including limit, in ascending order,
// using the sieve of Eratosthenes. Returns nil for limit < 2.
func Primes(limit int) []int {
	if limit < 2 {
		return nil
	}

	composite := make([]bool, limit+1)
	for p := 2; p*p <= limit; p++ {
		if composite[p] {
			continue
		}
		for m := p * p; m <= limit; m += p {
			composite[m] = true
		}
	}

	var primes []int
	for p := 2; p <= limit; p++ {
		if !composite[p] {
			primes = append(primes, p)
		}
	}
	return primes
}

// Factorize returns the prime factorization of n in ascending order, with
// repeated factors repeated in the result. Returns nil for n < 2.
func Factorize(n uint64) []uint64 {
	if n < 2 {
		return nil
	}

	var factors []uint64
	for n%2 == 0 {
		factors = append(factors, 2)
		n /= 2
	}
	for p := uint64(3); p*p <= n; p += 2 {
		for n%p == 0 {
			factors = append(factors, p)
			n /= p
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}
