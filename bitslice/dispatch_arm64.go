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

//go:build arm64

package bitslice

import "golang.org/x/sys/cpu"

func init() {
	// NEON (ASIMD) is part of the arm64 baseline, but darwin does not
	// populate the HWCAP-derived flags, so treat the baseline as NEON.
	if cpu.ARM64.HasASIMD || !cpu.Initialized {
		currentLevel = VectorNEON
	} else {
		currentLevel = VectorScalar
	}
}
