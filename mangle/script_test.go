// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package mangle

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// wantBytes fails the test with a readable diff if got != want.
func wantBytes(t *testing.T, got, want []byte) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bytes mismatch (-want +got):\n%s", diff)
	}
}

// scriptRNG replays a fixed, scripted sequence of answers, so that a test
// can pin down exactly which offsets, widths, and bytes an operator will
// observe. Each queue is consumed in FIFO order; running a queue dry fails
// the test immediately rather than silently falling back to a zero value.
type scriptRNG struct {
	t          *testing.T
	rnds       []uint64 // consumed by Rnd, in order
	bufs       [][]byte // consumed by RndBuf/RndBufPrintable, in order
	printables []byte   // consumed by RndPrintable, in order
}

func (s *scriptRNG) Rnd(lo, hi uint64) uint64 {
	if len(s.rnds) == 0 {
		s.t.Fatalf("Rnd(%d, %d): script exhausted", lo, hi)
	}
	v := s.rnds[0]
	s.rnds = s.rnds[1:]
	if v < lo || v > hi {
		s.t.Fatalf("Rnd(%d, %d): scripted value %d out of range", lo, hi, v)
	}
	return v
}

func (s *scriptRNG) Rnd64() uint64 {
	if len(s.rnds) == 0 {
		s.t.Fatalf("Rnd64(): script exhausted")
	}
	v := s.rnds[0]
	s.rnds = s.rnds[1:]
	return v
}

func (s *scriptRNG) RndPrintable() byte {
	if len(s.printables) == 0 {
		s.t.Fatalf("RndPrintable(): script exhausted")
	}
	v := s.printables[0]
	s.printables = s.printables[1:]
	return v
}

func (s *scriptRNG) RndBuf(dst []byte) {
	if len(s.bufs) == 0 {
		s.t.Fatalf("RndBuf(%d): script exhausted", len(dst))
	}
	src := s.bufs[0]
	s.bufs = s.bufs[1:]
	if len(src) != len(dst) {
		s.t.Fatalf("RndBuf(%d): scripted buf has length %d", len(dst), len(src))
	}
	copy(dst, src)
}

func (s *scriptRNG) RndBufPrintable(dst []byte) { s.RndBuf(dst) }

// stubResizer is a Resizer that merely records the sizes it was asked to
// set; the backing buffer already has capacity maxFileSz, so no
// reallocation is required.
type stubResizer struct {
	sizes []int
}

func (r *stubResizer) SetSize(n int) { r.sizes = append(r.sizes, n) }

// newTestContext builds a Context over a maxFileSz-capacity buffer
// preloaded with initial, driven by rng and a stubResizer, with
// mutationsPerRun forced to 1 so exactly one operator runs per
// MangleContent call.
func newTestContext(t *testing.T, initial []byte, maxFileSz int, rng RNG, opts ...Option) (*Context, *stubResizer) {
	t.Helper()
	buf := make([]byte, len(initial), maxFileSz)
	copy(buf, initial)
	rs := &stubResizer{}
	allOpts := append([]Option{WithMutationsPerRun(1)}, opts...)
	c := NewContext(buf, maxFileSz, rng, rs, allOpts...)
	return c, rs
}
