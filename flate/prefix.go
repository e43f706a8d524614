// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package flate

// maxHuffBits is the longest code length DEFLATE ever produces (RFC 1951
// section 3.2.7).
const maxHuffBits = 15

const (
	maxNumCLenSyms = 19
	maxNumLitSyms  = 286
	maxNumDistSyms = 30
)

// rangeCode is a base value plus a count of extra bits to read and add,
// the shape RFC section 3.2.5's length and distance tables share.
type rangeCode struct {
	base uint32
	bits uint32
}

var (
	lenLUT  [maxNumLitSyms - 257]rangeCode // RFC section 3.2.5
	distLUT [maxNumDistSyms]rangeCode      // RFC section 3.2.5

	fixedLitTree  huffmanDecoder // RFC section 3.2.6
	fixedDistTree huffmanDecoder // RFC section 3.2.6
)

// clenLens gives the order in which a dynamic block's 3-bit code-length
// code lengths are transmitted (RFC section 3.2.7); it is not the usual
// symbol order because short codes are assigned to the lengths judged
// most likely to appear.
var clenLens = [maxNumCLenSyms]uint{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

func init() {
	for i, base := 0, 3; i < len(lenLUT)-1; i++ {
		nb := uint(i/4 - 1)
		if i < 4 {
			nb = 0
		}
		lenLUT[i] = rangeCode{base: uint32(base), bits: uint32(nb)}
		base += 1 << nb
	}
	lenLUT[len(lenLUT)-1] = rangeCode{base: 258, bits: 0}

	for i, base := 0, 1; i < len(distLUT); i++ {
		nb := uint(i/2 - 1)
		if i < 2 {
			nb = 0
		}
		distLUT[i] = rangeCode{base: uint32(base), bits: uint32(nb)}
		base += 1 << nb
	}

	litLens := make([]uint, 288)
	for i := 0; i < 144; i++ {
		litLens[i] = 8
	}
	for i := 144; i < 256; i++ {
		litLens[i] = 9
	}
	for i := 256; i < 280; i++ {
		litLens[i] = 7
	}
	for i := 280; i < 288; i++ {
		litLens[i] = 8
	}
	if err := fixedLitTree.init(litLens); err != nil {
		panic(err)
	}

	distLens := make([]uint, 32)
	for i := range distLens {
		distLens[i] = 5
	}
	if err := fixedDistTree.init(distLens); err != nil {
		panic(err)
	}
}

// huffmanDecoder is a canonical Huffman decoder built from a per-symbol
// list of code lengths. Unlike a chunked lookup table, it decodes one
// bit at a time, comparing the bits read so far against the first code
// of each length; it trades some throughput for a much smaller,
// easier-to-audit implementation, which is the right tradeoff for a
// decoder whose job is to be a fuzz target rather than a hot path.
type huffmanDecoder struct {
	counts  [maxHuffBits + 1]uint16
	symbols []uint16 // symbols sorted by (code length, symbol value)
}

// init builds the canonical decode table from lens, a per-symbol code
// length where 0 means "symbol unused". It follows the classic
// count/offset canonical-code construction used by minimal DEFLATE
// decoders (e.g. zlib's puff.c): codes of a given length are assigned to
// symbols in increasing symbol order, and the first code of each length
// is twice the code that follows the last code of the previous length.
func (h *huffmanDecoder) init(lens []uint) error {
	for i := range h.counts {
		h.counts[i] = 0
	}
	for _, n := range lens {
		if n > maxHuffBits {
			return ErrCorrupt
		}
		h.counts[n]++
	}
	h.counts[0] = 0

	var offsets [maxHuffBits + 1]uint16
	for n := 1; n < maxHuffBits; n++ {
		offsets[n+1] = offsets[n] + h.counts[n]
	}

	if cap(h.symbols) < len(lens) {
		h.symbols = make([]uint16, len(lens))
	} else {
		h.symbols = h.symbols[:len(lens)]
	}
	next := offsets
	for sym, n := range lens {
		if n == 0 {
			continue
		}
		h.symbols[next[n]] = uint16(sym)
		next[n]++
	}
	return nil
}

// decode reads the next symbol from br, one bit at a time, panicking
// with ErrCorrupt if no code of any length matches (an incomplete tree,
// or simply a bit-misaligned stream following earlier mutation). An
// over-subscribed tree is not rejected; it decodes to some symbol.
func (h *huffmanDecoder) decode(br *bitReader) uint {
	var code, first, index int
	for length := 1; length <= maxHuffBits; length++ {
		code |= int(br.ReadBits(1))
		count := int(h.counts[length])
		if code-first < count {
			return uint(h.symbols[index+(code-first)])
		}
		index += count
		first = (first + count) << 1
		code <<= 1
	}
	panic(ErrCorrupt)
}
