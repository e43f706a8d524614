// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package mangle

// RNG is the uniform integer oracle that every operator draws from. The
// core never seeds or reseeds an RNG; it only ever calls the methods
// below on whatever instance the Context was constructed with.
//
// An RNG need not be safe for concurrent use. Per Context, it is used by
// exactly one goroutine at a time; thread-safety, if ever required, is
// obtained by giving each concurrent fuzzing worker its own Context and
// its own RNG, never by sharing one.
type RNG interface {
	// Rnd returns a uniform random value in [lo, hi], inclusive.
	Rnd(lo, hi uint64) uint64

	// Rnd64 returns a uniform random value over the full uint64 range.
	Rnd64() uint64

	// RndPrintable returns a uniform random byte in [0x20, 0x7E].
	RndPrintable() byte

	// RndBuf fills dst with uniform random bytes.
	RndBuf(dst []byte)

	// RndBufPrintable fills dst with uniform random bytes in [0x20, 0x7E].
	RndBufPrintable(dst []byte)
}

// Dictionary is an ordered, indexable sequence of byte strings supplied by
// the caller (protocol tokens, keywords, magic headers). It replaces the
// doubly-linked list the original mangle.c walks in
// mangle_DictionaryNoCheck: indexing here is assumed O(1).
//
// A nil Dictionary is treated the same as one with Len() == 0.
type Dictionary interface {
	// Len reports the number of entries.
	Len() int

	// At returns the byte string at position i. It must not be retained
	// or mutated by the caller; operators only ever read from it.
	At(i int) []byte
}

// Resizer is the external primitive that adjusts a Context's logical
// size. It mirrors honggfuzz's input_setSize: it may grow or shrink the
// addressable region, must leave bytes [0, min(oldSize, newSize))
// unchanged, and is assumed synchronous. The core never calls SetSize
// with a value greater than the Context's maxFileSz.
//
// If a Resizer cannot satisfy a request, it must panic; the core has no
// way to signal resize failure through MangleContent's signature, which
// returns nothing by design, and does not attempt to restore the prior
// size on failure.
type Resizer interface {
	SetSize(newSize int)
}
