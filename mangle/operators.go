// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package mangle

import (
	"math/bits"
	"strconv"

	"github.com/dsnet/mangle/internal/magic"
)

// operator is one of the sixteen primitive mutations. Every operator reads
// whatever offsets, lengths, and values it needs from c.rng, performs its
// transformation, and — if printable is set — coerces its own writes into
// [0x20, 0x7E] before returning.
type operator func(c *Context, printable bool)

// operators lists all sixteen primitives in table order; MangleContent
// selects among them uniformly by index.
var operators = [...]operator{
	opBit,
	opBytes,
	opMagic,
	opIncByte,
	opDecByte,
	opNegByte,
	opAddSub,
	opDictionary,
	opDictionaryInsert,
	opMemMove,
	opMemSet,
	opRandom,
	opCloneByte,
	opExpand,
	opShrink,
	opASCIIVal,
}

// randOff picks a uniform offset in [0, size).
func (c *Context) randOff() int {
	return int(c.rng.Rnd(0, uint64(c.size-1)))
}

func opBit(c *Context, printable bool) {
	off := c.randOff()
	bit := uint(c.rng.Rnd(0, 7))
	b := c.buffer[off] ^ (1 << bit)
	buf := [1]byte{b}
	if printable {
		turnToPrintable(buf[:])
	}
	c.overwrite(buf[:], off)
}

func opBytes(c *Context, printable bool) {
	off := c.randOff()
	n := int(c.rng.Rnd(1, 8))
	// The stack buffer is always filled to its full width; only the first
	// n bytes of it are ever copied out. Do not shrink this to n bytes.
	var buf [8]byte
	c.rng.RndBuf(buf[:])
	if printable {
		turnToPrintable(buf[:n])
	}
	c.overwrite(buf[:n], off)
}

func opMagic(c *Context, printable bool) {
	off := c.randOff()
	e := magic.Table[c.rng.Rnd(0, uint64(len(magic.Table)-1))]
	buf := e.Val
	if printable {
		turnToPrintable(buf[:e.Size])
	}
	c.overwrite(buf[:e.Size], off)
}

func opIncByte(c *Context, printable bool) {
	off := c.randOff()
	b := c.buffer[off]
	if printable {
		b = byte((int(b)-printableLo+1)%printableN) + printableLo
	} else {
		b++
	}
	c.buffer[off] = b
}

func opDecByte(c *Context, printable bool) {
	off := c.randOff()
	b := c.buffer[off]
	if printable {
		b = byte((int(b)-printableLo+printableN-1)%printableN) + printableLo
	} else {
		b--
	}
	c.buffer[off] = b
}

func opNegByte(c *Context, printable bool) {
	off := c.randOff()
	b := c.buffer[off]
	if printable {
		b = byte(printableHi-printableLo-(int(b)-printableLo)) + printableLo
	} else {
		b = ^b
	}
	c.buffer[off] = b
}

// addSubWidths lists the four word widths AddSub may operate on; selection
// is uniform on the index (the exponent), not on the width directly.
var addSubWidths = [4]int{1, 2, 4, 8}

func opAddSub(c *Context, printable bool) {
	off := c.randOff()
	varLen := addSubWidths[c.rng.Rnd(0, 3)]
	if c.size-off < varLen {
		varLen = 1
	}
	delta := int64(c.rng.Rnd(0, 8192)) - 4096
	foreign := c.rng.Rnd(0, 1) == 1

	var buf [8]byte
	copy(buf[:varLen], c.buffer[off:off+varLen])

	if foreign && varLen > 1 {
		swapInPlace(buf[:varLen])
	}
	v := signedFromLE(buf[:varLen])
	v += delta
	putSignedLE(buf[:varLen], v)
	if foreign && varLen > 1 {
		swapInPlace(buf[:varLen])
	}

	if printable {
		turnToPrintable(buf[:varLen])
	}
	c.overwrite(buf[:varLen], off)
}

// swapInPlace reverses the byte order of buf, whose length must be 2, 4, or
// 8 — the three multi-byte widths AddSub can select.
func swapInPlace(buf []byte) {
	switch len(buf) {
	case 2:
		v := uint16(buf[0]) | uint16(buf[1])<<8
		v = bits.ReverseBytes16(v)
		buf[0], buf[1] = byte(v), byte(v>>8)
	case 4:
		v := uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
		v = bits.ReverseBytes32(v)
		buf[0], buf[1], buf[2], buf[3] = byte(v), byte(v>>8), byte(v>>16), byte(v>>24)
	case 8:
		var v uint64
		for i := 7; i >= 0; i-- {
			v = v<<8 | uint64(buf[i])
		}
		v = bits.ReverseBytes64(v)
		for i := 0; i < 8; i++ {
			buf[i] = byte(v)
			v >>= 8
		}
	}
}

// signedFromLE decodes buf (length 1, 2, 4, or 8) as a little-endian signed
// integer, sign-extended to 64 bits.
func signedFromLE(buf []byte) int64 {
	switch len(buf) {
	case 1:
		return int64(int8(buf[0]))
	case 2:
		return int64(int16(uint16(buf[0]) | uint16(buf[1])<<8))
	case 4:
		return int64(int32(uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24))
	case 8:
		var v uint64
		for i := 7; i >= 0; i-- {
			v = v<<8 | uint64(buf[i])
		}
		return int64(v)
	}
	panic(Error("signedFromLE: invalid width"))
}

// putSignedLE encodes v as a little-endian integer of the given width,
// wrapping on overflow (Go's signed-integer conversions and shifts are
// defined modulo 2^n, giving the wrapping arithmetic AddSub requires
// without any explicit masking).
func putSignedLE(buf []byte, v int64) {
	switch len(buf) {
	case 1:
		buf[0] = byte(int8(v))
	case 2:
		u := uint16(int16(v))
		buf[0], buf[1] = byte(u), byte(u>>8)
	case 4:
		u := uint32(int32(v))
		buf[0], buf[1], buf[2], buf[3] = byte(u), byte(u>>8), byte(u>>16), byte(u>>24)
	case 8:
		u := uint64(v)
		for i := 0; i < 8; i++ {
			buf[i] = byte(u)
			u >>= 8
		}
	default:
		panic(Error("putSignedLE: invalid width"))
	}
}

func opDictionary(c *Context, printable bool) {
	if c.dictCount() == 0 {
		opBit(c, printable)
		return
	}
	off := c.randOff()
	i := int(c.rng.Rnd(0, uint64(c.dictCount()-1)))
	entry := c.dictionary.At(i)
	n := c.overwrite(entry, off)
	if printable {
		turnToPrintable(c.buffer[off : off+n])
	}
}

func opDictionaryInsert(c *Context, printable bool) {
	if c.dictCount() == 0 {
		opBit(c, printable)
		return
	}
	off := c.randOff()
	i := int(c.rng.Rnd(0, uint64(c.dictCount()-1)))
	entry := c.dictionary.At(i)
	c.inflate(off, len(entry), false)
	n := c.overwrite(entry, off)
	if printable {
		turnToPrintable(c.buffer[off : off+n])
	}
}

func opMemMove(c *Context, printable bool) {
	offFrom := c.randOff()
	offTo := c.randOff()
	length := int(c.rng.Rnd(0, uint64(c.size)))
	c.move(offFrom, offTo, length)
}

func opMemSet(c *Context, printable bool) {
	off := c.randOff()
	sz := int(c.rng.Rnd(1, uint64(c.size-off)))
	var b byte
	if printable {
		b = c.rng.RndPrintable()
	} else {
		b = byte(c.rng.Rnd(0, 255))
	}
	for i := off; i < off+sz; i++ {
		c.buffer[i] = b
	}
}

func opRandom(c *Context, printable bool) {
	off := c.randOff()
	length := int(c.rng.Rnd(1, uint64(c.size-off)))
	if printable {
		c.rng.RndBufPrintable(c.buffer[off : off+length])
	} else {
		c.rng.RndBuf(c.buffer[off : off+length])
	}
}

func opCloneByte(c *Context, printable bool) {
	off1 := c.randOff()
	off2 := c.randOff()
	c.buffer[off1], c.buffer[off2] = c.buffer[off2], c.buffer[off1]
	if printable {
		turnToPrintable(c.buffer[off1 : off1+1])
		turnToPrintable(c.buffer[off2 : off2+1])
	}
}

func opExpand(c *Context, printable bool) {
	off := c.randOff()
	length := int(c.rng.Rnd(1, uint64(c.size-off)))
	c.inflate(off, length, printable)
}

func opShrink(c *Context, printable bool) {
	if c.size <= 1 {
		return
	}
	length := int(c.rng.Rnd(1, uint64(c.size-1)))
	off := int(c.rng.Rnd(0, uint64(length)))
	newSize := c.size - length
	c.setSize(newSize)
	c.move(off+length, off, newSize)
}

func opASCIIVal(c *Context, printable bool) {
	v := int64(c.rng.Rnd64())
	s := strconv.FormatInt(v, 10)
	off := c.randOff()
	buf := []byte(s)
	if printable {
		turnToPrintable(buf)
	}
	c.overwrite(buf, off)
}
