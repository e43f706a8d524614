// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package magic holds the static table of interesting integer constants
// that the Magic operator overwrites into a buffer. The table is pure,
// read-only data shared by every mangle.Context; it mirrors the
// mangleMagicVals table of honggfuzz's mangle.c byte-for-byte.
package magic

// Entry is one candidate integer constant, left-aligned in Val and valid
// for the first Size bytes.
type Entry struct {
	Val  [8]byte
	Size int
}

// Table holds all 221 magic entries, grouped by size and by
// native/big-endian/little-endian intent, in the same order as the
// original C table.
var Table = [...]Entry{
	// 1B - No endianness
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 1},
	{Val: [8]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 1},
	{Val: [8]byte{0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 1},
	{Val: [8]byte{0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 1},
	{Val: [8]byte{0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 1},
	{Val: [8]byte{0x05, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 1},
	{Val: [8]byte{0x06, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 1},
	{Val: [8]byte{0x07, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 1},
	{Val: [8]byte{0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 1},
	{Val: [8]byte{0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 1},
	{Val: [8]byte{0x0A, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 1},
	{Val: [8]byte{0x0B, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 1},
	{Val: [8]byte{0x0C, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 1},
	{Val: [8]byte{0x0D, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 1},
	{Val: [8]byte{0x0E, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 1},
	{Val: [8]byte{0x0F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 1},
	{Val: [8]byte{0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 1},
	{Val: [8]byte{0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 1},
	{Val: [8]byte{0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 1},
	{Val: [8]byte{0x7E, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 1},
	{Val: [8]byte{0x7F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 1},
	{Val: [8]byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 1},
	{Val: [8]byte{0x81, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 1},
	{Val: [8]byte{0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 1},
	{Val: [8]byte{0xFE, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 1},
	{Val: [8]byte{0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 1},
	// 2B - NE
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x01, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x80, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	// 2B - BE
	{Val: [8]byte{0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x00, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x00, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x00, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x00, 0x05, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x00, 0x06, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x00, 0x07, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x00, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x00, 0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x00, 0x0A, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x00, 0x0B, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x00, 0x0C, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x00, 0x0D, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x00, 0x0E, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x00, 0x0F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x00, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x00, 0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x00, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x00, 0x7E, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x00, 0x7F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x00, 0x81, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x00, 0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x00, 0xFE, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x00, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x7E, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x7F, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x80, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0xFF, 0xFE, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	// 2B - LE
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x05, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x06, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x07, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x0A, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x0B, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x0C, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x0D, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x0E, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x0F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x7E, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x7F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x81, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0xFE, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0xFF, 0x7E, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0xFF, 0x7F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0x01, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	{Val: [8]byte{0xFE, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 2},
	// 4B - NE
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x01, 0x01, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x80, 0x80, 0x80, 0x80, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	// 4B - BE
	{Val: [8]byte{0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x03, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x05, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x06, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x07, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x08, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x09, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x0A, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x0B, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x0C, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x0D, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x0E, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x0F, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x20, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x7E, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x7F, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x81, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x00, 0x00, 0x00, 0xC0, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x00, 0x00, 0x00, 0xFE, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x00, 0x00, 0x00, 0xFF, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x7E, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x7F, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x80, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0xFF, 0xFF, 0xFF, 0xFE, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	// 4B - LE
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x05, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x06, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x07, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x0A, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x0B, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x0C, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x0D, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x0E, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x0F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x7E, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x7F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x81, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0xFE, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0xFF, 0xFF, 0xFF, 0x7E, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0xFF, 0xFF, 0xFF, 0x7F, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0x01, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	{Val: [8]byte{0xFE, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00}, Size: 4},
	// 8B - NE
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 8},
	{Val: [8]byte{0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01}, Size: 8},
	{Val: [8]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}, Size: 8},
	{Val: [8]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, Size: 8},
	// 8B - BE
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01}, Size: 8},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02}, Size: 8},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03}, Size: 8},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x04}, Size: 8},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x05}, Size: 8},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x06}, Size: 8},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x07}, Size: 8},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x08}, Size: 8},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x09}, Size: 8},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0A}, Size: 8},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0B}, Size: 8},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0C}, Size: 8},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0D}, Size: 8},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0E}, Size: 8},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0F}, Size: 8},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10}, Size: 8},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x20}, Size: 8},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x40}, Size: 8},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x7E}, Size: 8},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x7F}, Size: 8},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80}, Size: 8},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x81}, Size: 8},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xC0}, Size: 8},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xFE}, Size: 8},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xFF}, Size: 8},
	{Val: [8]byte{0x7E, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, Size: 8},
	{Val: [8]byte{0x7F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, Size: 8},
	{Val: [8]byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 8},
	{Val: [8]byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01}, Size: 8},
	{Val: [8]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFE}, Size: 8},
	// 8B - LE
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 8},
	{Val: [8]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 8},
	{Val: [8]byte{0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 8},
	{Val: [8]byte{0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 8},
	{Val: [8]byte{0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 8},
	{Val: [8]byte{0x05, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 8},
	{Val: [8]byte{0x06, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 8},
	{Val: [8]byte{0x07, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 8},
	{Val: [8]byte{0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 8},
	{Val: [8]byte{0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 8},
	{Val: [8]byte{0x0A, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 8},
	{Val: [8]byte{0x0B, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 8},
	{Val: [8]byte{0x0C, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 8},
	{Val: [8]byte{0x0D, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 8},
	{Val: [8]byte{0x0E, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 8},
	{Val: [8]byte{0x0F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 8},
	{Val: [8]byte{0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 8},
	{Val: [8]byte{0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 8},
	{Val: [8]byte{0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 8},
	{Val: [8]byte{0x7E, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 8},
	{Val: [8]byte{0x7F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 8},
	{Val: [8]byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 8},
	{Val: [8]byte{0x81, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 8},
	{Val: [8]byte{0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 8},
	{Val: [8]byte{0xFE, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 8},
	{Val: [8]byte{0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Size: 8},
	{Val: [8]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x7E}, Size: 8},
	{Val: [8]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x7F}, Size: 8},
	{Val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80}, Size: 8},
	{Val: [8]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80}, Size: 8},
	{Val: [8]byte{0xFE, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, Size: 8},
}
