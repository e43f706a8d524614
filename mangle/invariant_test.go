// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package mangle

import (
	"bytes"
	"testing"

	"github.com/dsnet/mangle/internal/magic"
	"github.com/dsnet/mangle/internal/rng"
)

// newFuzzingContext builds a Context whose buffer is preallocated to
// maxFileSz capacity up front, so a stubResizer's bookkeeping-only
// SetSize is sufficient: Context never needs to reallocate underneath it.
func newFuzzingContext(initial []byte, maxFileSz int, seed int64, opts ...Option) *Context {
	buf := make([]byte, len(initial), maxFileSz)
	copy(buf, initial)
	r := rng.NewDeterministic(seed)
	return NewContext(buf, maxFileSz, r, &stubResizer{}, opts...)
}

var seeds = []int64{1, 2, 3, 42, 1000, 7777, -5, 99999}

// TestInvariantSizeBounds checks property 1: 1 <= size <= maxFileSz holds
// after any number of sessions.
func TestInvariantSizeBounds(t *testing.T) {
	const maxFileSz = 256
	for _, seed := range seeds {
		c := newFuzzingContext(bytes.Repeat([]byte{0x41}, 32), maxFileSz, seed)
		for i := 0; i < 50; i++ {
			MangleContent(c)
			if c.Size() < 1 || c.Size() > maxFileSz {
				t.Fatalf("seed %d, iter %d: size = %d, out of [1, %d]", seed, i, c.Size(), maxFileSz)
			}
		}
	}
}

// TestInvariantNoOpWhenZeroMutations checks property 4: with
// mutationsPerRun == 0, MangleContent never touches the buffer.
func TestInvariantNoOpWhenZeroMutations(t *testing.T) {
	for _, seed := range seeds {
		initial := []byte("the quick brown fox jumps over the lazy dog")
		c := newFuzzingContext(append([]byte{}, initial...), 256, seed, WithMutationsPerRun(0))
		MangleContent(c)
		if !bytes.Equal(c.Bytes(), initial) {
			t.Fatalf("seed %d: buffer changed despite mutationsPerRun=0: %q != %q", seed, c.Bytes(), initial)
		}
	}
}

// TestInvariantPrintablePreserved checks property 3: once onlyPrintable is
// set, a buffer that started entirely printable stays entirely printable.
func TestInvariantPrintablePreserved(t *testing.T) {
	const maxFileSz = 256
	for _, seed := range seeds {
		c := newFuzzingContext(bytes.Repeat([]byte("printable seed text "), 4), maxFileSz, seed, WithOnlyPrintable(true))
		for i := 0; i < 50; i++ {
			MangleContent(c)
			for j, b := range c.Bytes() {
				if b < 0x20 || b > 0x7E {
					t.Fatalf("seed %d, iter %d: byte %d = %#x, not printable", seed, i, j, b)
				}
			}
		}
	}
}

// TestInvariantShrinkSizeOneNoOp checks property 8: Shrink on size == 1 is
// a no-op.
func TestInvariantShrinkSizeOneNoOp(t *testing.T) {
	c := newFuzzingContext([]byte{0x42}, 16, 1)
	opShrink(c, false)
	if c.Size() != 1 || c.Bytes()[0] != 0x42 {
		t.Fatalf("Shrink on size 1 mutated the context: size=%d bytes=% X", c.Size(), c.Bytes())
	}
}

// TestInvariantExpandBoundedByMaxFileSz checks property 9: Expand never
// grows the buffer past maxFileSz.
func TestInvariantExpandBoundedByMaxFileSz(t *testing.T) {
	const maxFileSz = 20
	for _, seed := range seeds {
		c := newFuzzingContext(bytes.Repeat([]byte{0x01}, 10), maxFileSz, seed)
		for i := 0; i < 30; i++ {
			opExpand(c, false)
			if c.Size() > maxFileSz {
				t.Fatalf("seed %d, iter %d: size = %d exceeds maxFileSz %d", seed, i, c.Size(), maxFileSz)
			}
		}
	}
}

// TestInvariantCloneByteSwapLaw checks property 6: applying CloneByte
// twice with the same two offsets restores the original bytes.
func TestInvariantCloneByteSwapLaw(t *testing.T) {
	c := newFuzzingContext([]byte{0x10, 0x20, 0x30, 0x40}, 16, 1)
	original := append([]byte{}, c.Bytes()...)

	rng := &scriptRNG{t: t, rnds: []uint64{1, 3, 1, 3}}
	c2, _ := newTestContext(t, original, 16, rng)
	opCloneByte(c2, false)
	opCloneByte(c2, false)

	if !bytes.Equal(c2.Bytes(), original) {
		t.Fatalf("double CloneByte(1, 3) = % X, want % X", c2.Bytes(), original)
	}
}

// TestInvariantMagicWritesExactEntry checks property 7: Magic writes
// exactly one table entry, bit-exact, at the chosen offset.
func TestInvariantMagicWritesExactEntry(t *testing.T) {
	for _, seed := range seeds {
		c := newFuzzingContext(bytes.Repeat([]byte{0xFF}, 64), 128, seed)
		before := append([]byte{}, c.Bytes()...)
		opMagic(c, false)

		// Replay opMagic's two draws (offset, then table index) from an
		// identically seeded source to learn which entry it chose.
		replay := rng.NewDeterministic(seed)
		off := int(replay.Rnd(0, uint64(len(before)-1)))
		e := magic.Table[replay.Rnd(0, uint64(len(magic.Table)-1))]
		n := e.Size
		if n > len(before)-off {
			n = len(before) - off
		}
		want := append([]byte{}, before...)
		copy(want[off:off+n], e.Val[:n])
		if !bytes.Equal(c.Bytes(), want) {
			t.Fatalf("seed %d: Magic at offset %d = % X, want entry % X written there", seed, off, c.Bytes(), e.Val[:e.Size])
		}
	}
}

// TestInvariantTailPreserved checks property 2: MangleContent never writes
// past the logically valid region. The tail is seeded with a distinct
// sentinel byte up front, and every byte at or beyond the largest size the
// Context has ever had (the initial size or any size passed to the
// Resizer) must still hold it. Bytes between the current size and that
// high-water mark were legitimately written while they were in range and
// are left alone when a later shrink drops them.
func TestInvariantTailPreserved(t *testing.T) {
	const maxFileSz = 64
	const sentinel = 0xAA
	for _, seed := range seeds {
		buf := make([]byte, maxFileSz)
		copy(buf, bytes.Repeat([]byte{0x41}, 16))
		for i := 16; i < maxFileSz; i++ {
			buf[i] = sentinel
		}
		buf = buf[:16]

		r := rng.NewDeterministic(seed)
		rs := &stubResizer{}
		c := NewContext(buf, maxFileSz, r, rs)
		highWater := c.Size()
		for i := 0; i < 50; i++ {
			MangleContent(c)
			for _, n := range rs.sizes {
				if n > highWater {
					highWater = n
				}
			}
			full := c.Bytes()[:cap(c.Bytes())]
			for j := highWater; j < maxFileSz; j++ {
				if full[j] != sentinel {
					t.Fatalf("seed %d, iter %d: byte %d beyond high-water size %d = %#x, want sentinel %#x", seed, i, j, highWater, full[j], byte(sentinel))
				}
			}
		}
	}
}

// TestInvariantEmptyDictionaryFallsBackToBit checks property 5 for
// Dictionary, for many RNG tapes. DictionaryInsert's fallback is checked
// by TestEmptyDictionaryFallback.
func TestInvariantEmptyDictionaryFallsBackToBit(t *testing.T) {
	for _, seed := range seeds {
		tape := []uint64{}
		r := rng.NewDeterministic(seed)
		for i := 0; i < 2; i++ {
			tape = append(tape, r.Rnd(0, 1<<30))
		}

		buf := []byte{0x11, 0x22, 0x33, 0x44}
		rngA := &scriptRNG{t: t, rnds: append([]uint64{}, tape[0]%4, tape[1]%8)}
		cA, _ := newTestContext(t, append([]byte{}, buf...), 16, rngA)
		opDictionary(cA, false)

		rngB := &scriptRNG{t: t, rnds: append([]uint64{}, tape[0]%4, tape[1]%8)}
		cB, _ := newTestContext(t, append([]byte{}, buf...), 16, rngB)
		opBit(cB, false)

		if !bytes.Equal(cA.Bytes(), cB.Bytes()) {
			t.Fatalf("seed %d: Dictionary(empty) != Bit: % X != % X", seed, cA.Bytes(), cB.Bytes())
		}
	}
}
