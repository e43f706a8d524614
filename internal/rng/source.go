// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rng

import "math/rand/v2"

// Source is the production mangle.RNG, backed by math/rand/v2's ChaCha8
// generator. Unlike Deterministic, its output is not guaranteed stable
// across Go releases and is unsuitable for replaying a recorded crash;
// use it for live fuzzing campaigns, and Deterministic for reproduction.
type Source struct {
	rnd *rand.Rand
}

// NewSource constructs a Source seeded from a 32-byte key, typically read
// from a crypto/rand stream at process start.
func NewSource(seed [32]byte) *Source {
	return &Source{rnd: rand.New(rand.NewChaCha8(seed))}
}

// Rnd returns a uniform value in [lo, hi].
func (s *Source) Rnd(lo, hi uint64) uint64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	span := hi - lo + 1
	if span == 0 {
		return s.rnd.Uint64()
	}
	return lo + s.rnd.Uint64N(span)
}

// Rnd64 returns a uniform value over the full uint64 range.
func (s *Source) Rnd64() uint64 { return s.rnd.Uint64() }

// RndPrintable returns a uniform byte in [0x20, 0x7E].
func (s *Source) RndPrintable() byte {
	return byte(s.Rnd(0x20, 0x7E))
}

// RndBuf fills dst with uniform random bytes.
func (s *Source) RndBuf(dst []byte) {
	for i := range dst {
		dst[i] = byte(s.rnd.Uint32())
	}
}

// RndBufPrintable fills dst with uniform random bytes in [0x20, 0x7E].
func (s *Source) RndBufPrintable(dst []byte) {
	for i := range dst {
		dst[i] = s.RndPrintable()
	}
}
