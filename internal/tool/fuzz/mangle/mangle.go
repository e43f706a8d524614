// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build gofuzz
// +build gofuzz

// Package mangle wires the mutator up to a concrete fuzz target: the
// flate decoder kept in this module as a stand-in for "some parser under
// test". go-fuzz supplies data as an undifferentiated byte string; Fuzz
// treats its header as a (seed, mutationsPerRun, onlyPrintable,
// resize-script) tuple rather than deriving everything from a hash of
// the whole input, so go-fuzz's own mutation of that header doubles as
// mutation of mangle's own knobs, not just of the corpus body.
package mangle

import (
	"bytes"

	"github.com/dsnet/mangle/flate"
	gmangle "github.com/dsnet/mangle/mangle"
	"github.com/dsnet/mangle/internal/rng"
)

const maxFileSz = 1 << 16

// Fuzz decodes data as:
//
//	[8]byte  seed            little-endian, ChaCha8 key material
//	byte     mutationsPerRun  mapped into [1, 16]
//	byte     flags            bit 0: onlyPrintable; bits 1-3: resize-script length (0-7)
//	[]int8   resize-script    as many signed deltas as flags bits 1-3 give,
//	                          applied to the buffer length before mangling
//	[]byte   corpus           the remaining bytes, the seed corpus entry itself
//
// A data value too short to hold the fixed-width header is rejected
// outright; go-fuzz will not keep feeding back inputs that never get
// past this point.
func Fuzz(data []byte) int {
	const headerSz = 8 + 1 + 1
	if len(data) < headerSz {
		return -1
	}

	var seed [32]byte
	copy(seed[:8], data[:8])
	mutationsPerRun := uint64(data[8])%16 + 1
	flags := data[9]
	onlyPrintable := flags&1 != 0
	scriptLen := int(flags >> 1 & 0x7)
	data = data[headerSz:]

	if len(data) < scriptLen {
		return -1
	}
	script := make([]int8, scriptLen)
	for i := range script {
		script[i] = int8(data[i])
	}
	data = data[scriptLen:]

	if len(data) == 0 {
		return -1
	}
	if testDecoder(data) {
		return 1 // Favor inputs the decoder accepts outright.
	}

	size := len(data)
	for _, delta := range script {
		size += int(delta)
		if size < 1 {
			size = 1
		}
		if size > maxFileSz {
			size = maxFileSz
		}
	}

	buf := make([]byte, len(data), maxFileSz)
	copy(buf, data)
	resizer := &sliceResizer{buf: &buf}
	resizer.SetSize(size)

	ctx := gmangle.NewContext(buf, maxFileSz, rng.NewSource(seed), resizer,
		gmangle.WithMutationsPerRun(mutationsPerRun),
		gmangle.WithOnlyPrintable(onlyPrintable))
	gmangle.MangleContent(ctx)

	testDecoder(ctx.Bytes())
	return 0
}

// testDecoder runs the flate decoder to completion and reports whether it
// accepted data without error. A returned error is an expected outcome
// for malformed input; a panic is the bug this harness exists to surface.
// flate.DecodeAndClassify recovers a decoder panic into OutcomeOther (a
// bytes.Reader never fails on its own), and testDecoder re-panics with
// that classification so go-fuzz records the input as a crash.
func testDecoder(data []byte) bool {
	_, outcome := flate.DecodeAndClassify(bytes.NewReader(data))
	if outcome == flate.OutcomeOther {
		panic("flate: decoder panicked (outcome " + outcome.String() + ")")
	}
	return outcome == flate.OutcomeAccepted
}

// sliceResizer adjusts the logical length of a capacity-preallocated
// slice in place.
type sliceResizer struct {
	buf *[]byte
}

func (r *sliceResizer) SetSize(n int) { *r.buf = (*r.buf)[:n] }
