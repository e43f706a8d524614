// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package mangle

// MangleContent is the sole public entry point: it mutates ctx in place by
// first always running a distinguished resize step, then stacking between
// one and ctx.mutationsPerRun uniformly-chosen primitive operators.
//
// MangleContent has no return value and signals no error; the only
// recoverable failure modes are caller contract violations (see
// NewContext), which panic rather than return an error.
func MangleContent(ctx *Context) {
	if ctx.mutationsPerRun == 0 {
		return
	}
	resize(ctx, ctx.onlyPrintable)

	k := ctx.rng.Rnd(1, ctx.mutationsPerRun)
	for i := uint64(0); i < k; i++ {
		choice := ctx.rng.Rnd(0, uint64(len(operators)-1))
		operators[choice](ctx, ctx.onlyPrintable)
	}
}

// resize is the distinguished operator MangleContent always runs first. It
// either jumps to a uniform random size anywhere in [1, maxFileSz], or
// nudges the current size by a small random delta in [-8, +8] \ {0}; when
// growing, the newly addressable tail is filled with fresh random bytes.
func resize(c *Context, printable bool) {
	oldSize := c.size
	v := c.rng.Rnd(0, 16)

	var newSize int
	switch {
	case v == 0:
		newSize = int(c.rng.Rnd(1, uint64(c.maxFileSz)))
	case v >= 1 && v <= 8:
		newSize = oldSize + int(v)
	default: // v in [9, 16]
		newSize = oldSize + 8 - int(v)
	}

	if newSize < 1 {
		newSize = 1
	}
	if newSize > c.maxFileSz {
		newSize = c.maxFileSz
	}

	c.setSize(newSize)
	if newSize > oldSize {
		tail := c.buffer[oldSize:newSize]
		if printable {
			c.rng.RndBufPrintable(tail)
		} else {
			c.rng.RndBuf(tail)
		}
	}
}
