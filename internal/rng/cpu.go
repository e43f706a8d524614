// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rng

import "github.com/klauspost/cpuid"

// HardwareAccelerated reports whether the host CPU exposes the AES-NI
// instruction set that Deterministic's keystream relies on for speed.
// crypto/aes transparently falls back to a constant-time software
// implementation when AES-NI is absent, so Deterministic remains correct
// either way; this is purely a diagnostic for callers deciding whether a
// large fuzzing campaign should prefer Source over Deterministic.
func HardwareAccelerated() bool {
	return cpuid.CPU.AES
}
