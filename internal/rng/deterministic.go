// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package rng supplies the concrete mangle.RNG implementations: a
// production source backed by math/rand/v2, and a Deterministic source
// whose output is fixed by seed and stable across Go versions, for
// reproducible test tapes and replayable crash cases.
package rng

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

// Deterministic implements mangle.RNG with an AES-CTR-style keystream
// keyed off a single seed. Unlike math/rand, whose output is not
// guaranteed stable across Go releases, Deterministic's output depends
// only on the seed and the sequence of calls made against it — so a
// recorded (seed, call sequence) pair reproduces a crash indefinitely.
type Deterministic struct {
	block cipher.Block
	ctr   [aes.BlockSize]byte
	blk   [aes.BlockSize]byte
	pos   int
}

// NewDeterministic constructs a Deterministic source from seed.
func NewDeterministic(seed int64) *Deterministic {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(seed))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		panic(err) // unreachable: fixed 16-byte key always succeeds
	}
	d := &Deterministic{block: block}
	d.pos = len(d.blk) // force a block refill on first use
	return d
}

// next returns the next pseudo-random byte from the keystream, refilling
// and advancing the counter as needed.
func (d *Deterministic) next() byte {
	if d.pos >= len(d.blk) {
		d.block.Encrypt(d.blk[:], d.ctr[:])
		for i := len(d.ctr) - 1; i >= 0; i-- {
			d.ctr[i]++
			if d.ctr[i] != 0 {
				break
			}
		}
		d.pos = 0
	}
	b := d.blk[d.pos]
	d.pos++
	return b
}

// next64 draws eight bytes from the keystream as a little-endian uint64.
func (d *Deterministic) next64() uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(d.next()) << (8 * uint(i))
	}
	return v
}

// Rnd returns a uniform value in [lo, hi], following the same
// modulo-reduction approach as the reference implementation: not
// perfectly uniform at the extremes of the uint64 range, but adequate for
// a mutation fuzzer's RNG.
func (d *Deterministic) Rnd(lo, hi uint64) uint64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	span := hi - lo + 1
	if span == 0 { // lo == 0, hi == maxUint64
		return d.next64()
	}
	return lo + d.next64()%span
}

// Rnd64 returns a uniform value over the full uint64 range.
func (d *Deterministic) Rnd64() uint64 { return d.next64() }

// RndPrintable returns a uniform byte in [0x20, 0x7E].
func (d *Deterministic) RndPrintable() byte {
	return byte(d.Rnd(0x20, 0x7E))
}

// RndBuf fills dst with pseudo-random bytes drawn from the keystream.
func (d *Deterministic) RndBuf(dst []byte) {
	for i := range dst {
		dst[i] = d.next()
	}
}

// RndBufPrintable fills dst with pseudo-random bytes in [0x20, 0x7E].
func (d *Deterministic) RndBufPrintable(dst []byte) {
	for i := range dst {
		dst[i] = d.RndPrintable()
	}
}
