// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package mangle

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/dsnet/mangle/internal/rng"
)

// TestShrinkCompactsPartially demonstrates the faithfully-preserved
// upstream quirk in Shrink/Move: because Move's length is clamped against
// size-off-1 (not size-off) using the *already-shrunk* size, a shrink that
// removes a prefix shorter than half the buffer only compacts part of the
// tail, leaving a few stale trailing bytes behind. This is not a defect in
// this port; it reproduces the original algorithm exactly (see the doc
// comment on move in buffer.go).
func TestShrinkCompactsPartially(t *testing.T) {
	original := []byte("ABCDEFGHIJ") // 10 bytes
	srng := &scriptRNG{t: t, rnds: []uint64{2, 0}}  // length=2, off=0
	c, _ := newTestContext(t, original, 16, srng)

	opShrink(c, false)

	if c.Size() != 8 {
		t.Fatalf("Size() = %d, want 8", c.Size())
	}
	want := []byte("CDEFGFGH")
	if !bytes.Equal(c.Bytes(), want) {
		t.Errorf("Bytes() = %q, want %q", c.Bytes(), want)
	}
}

func TestMemSetFillsRange(t *testing.T) {
	srng := &scriptRNG{t: t, rnds: []uint64{2, 3, 0xAB}} // off=2, sz=3, fill byte
	c, _ := newTestContext(t, []byte{1, 2, 3, 4, 5, 6}, 16, srng)

	opMemSet(c, false)

	want := []byte{1, 2, 0xAB, 0xAB, 0xAB, 6}
	if !bytes.Equal(c.Bytes(), want) {
		t.Errorf("Bytes() = % X, want % X", c.Bytes(), want)
	}
}

func TestRandomFillsRange(t *testing.T) {
	srng := &scriptRNG{
		t:    t,
		rnds: []uint64{1, 2}, // off=1, len=2
		bufs: [][]byte{{0xDE, 0xAD}},
	}
	c, _ := newTestContext(t, []byte{1, 2, 3, 4}, 16, srng)

	opRandom(c, false)

	want := []byte{1, 0xDE, 0xAD, 4}
	if !bytes.Equal(c.Bytes(), want) {
		t.Errorf("Bytes() = % X, want % X", c.Bytes(), want)
	}
}

func TestDictionaryInsertGrowsBuffer(t *testing.T) {
	d := sliceDict{[]byte("HELLO")}
	srng := &scriptRNG{
		t:    t,
		rnds: []uint64{1, 0}, // off=1, entry index=0
		// inflate's gap-fill is fully overwritten by the entry that follows
		// it, so its content doesn't matter; only its length (5) does.
		bufs: [][]byte{make([]byte, 5)},
	}
	c, _ := newTestContext(t, []byte{0xAA, 0xBB, 0xCC}, 16, srng, WithDictionary(d))

	opDictionaryInsert(c, false)

	// move's size-off-1 clamp shifts only 0xBB right; 0xCC is not carried
	// along, and the new last byte keeps the zeroed backing storage.
	want := []byte{0xAA, 'H', 'E', 'L', 'L', 'O', 0xBB, 0x00}
	if !bytes.Equal(c.Bytes(), want) {
		t.Errorf("Bytes() = % X, want % X", c.Bytes(), want)
	}
	if c.Size() != 8 {
		t.Errorf("Size() = %d, want 8", c.Size())
	}
}

func TestASCIIValWritesDecimal(t *testing.T) {
	v := int64(-1234567)
	srng := &scriptRNG{t: t, rnds: []uint64{uint64(v), 0}} // Rnd64 draw, then off=0
	c, _ := newTestContext(t, make([]byte, 16), 16, srng)

	opASCIIVal(c, false)

	s := strconv.FormatInt(v, 10)
	if got := string(c.Bytes()[:len(s)]); got != s {
		t.Errorf("Bytes()[:len(s)] = %q, want %q", got, s)
	}
}

// TestMangleContentNeverPanics is a broad smoke test: across many seeds
// and buffer shapes, repeated sessions must never panic, and the logical
// size must always stay in range.
func TestMangleContentNeverPanics(t *testing.T) {
	shapes := []struct {
		initial   []byte
		maxFileSz int
	}{
		{[]byte{0x00}, 1},
		{[]byte{0x00}, 64},
		{bytes.Repeat([]byte{0x41}, 16), 32},
		{bytes.Repeat([]byte{0x00}, 200), 256},
	}
	d := sliceDict{[]byte("token"), []byte("GET / HTTP/1.1")}

	for _, shape := range shapes {
		for _, seed := range seeds {
			func() {
				defer func() {
					if r := recover(); r != nil {
						t.Fatalf("seed %d, maxFileSz %d: panic: %v", seed, shape.maxFileSz, r)
					}
				}()
				buf := make([]byte, len(shape.initial), shape.maxFileSz)
				copy(buf, shape.initial)
				c := NewContext(buf, shape.maxFileSz, rng.NewDeterministic(seed), &stubResizer{}, WithDictionary(d))
				for i := 0; i < 20; i++ {
					MangleContent(c)
				}
			}()
		}
	}
}
