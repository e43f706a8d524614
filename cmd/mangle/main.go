// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command mangle demonstrates the mutator: it loads a seed corpus file
// (optionally DEFLATE- or XZ-compressed) and an optional dictionary, runs
// one or more mutation sessions over it, and reports what changed.
package main

import (
	"bytes"
	cryptorand "crypto/rand"
	"flag"
	"fmt"
	"hash/crc32"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/dsnet/golib/hashutil"
	"github.com/dsnet/golib/strconv"
	kflate "github.com/klauspost/compress/flate"
	"github.com/ulikunitz/xz"

	"github.com/dsnet/mangle/internal/dictionary"
	"github.com/dsnet/mangle/internal/rng"
	"github.com/dsnet/mangle/mangle"
)

func main() {
	var (
		fInput     = flag.String("input", "", "seed corpus file (required)")
		fCompress  = flag.String("compress", "none", "compression of -input: none, flate, or xz")
		fDict      = flag.String("dict", "", "optional dictionary file")
		fDictXZ    = flag.Bool("dict-xz", false, "treat -dict as XZ-compressed")
		fMaxSize   = flag.String("max-size", "64Ki", "maximum size the mutator may grow the buffer to")
		fSessions  = flag.Int("sessions", 1, "number of stacked MangleContent sessions to run")
		fMutPerRun = flag.Uint64("mutations-per-run", 6, "maximum stacked mutations per session")
		fPrintable = flag.Bool("printable", false, "restrict output to printable ASCII")
		fSeed      = flag.Int64("seed", 0, "deterministic RNG seed; 0 seeds from crypto/rand")
		fOutput    = flag.String("output", "", "write the mutated buffer here instead of stdout")
		fHardware  = flag.Bool("show-hardware", false, "report whether AES-NI acceleration is available and exit")
	)
	flag.Parse()

	if *fHardware {
		fmt.Printf("AES-NI available: %v\n", rng.HardwareAccelerated())
		return
	}
	if *fInput == "" {
		fmt.Fprintln(os.Stderr, "mangle: -input is required")
		os.Exit(2)
	}

	seed, err := loadSeed(*fInput, *fCompress)
	if err != nil {
		fatalf("loading input: %v", err)
	}

	maxSize, err := strconv.ParsePrefix(*fMaxSize, strconv.AutoParse)
	if err != nil {
		fatalf("parsing -max-size: %v", err)
	}
	if int(maxSize) < len(seed) {
		fatalf("-max-size (%d) smaller than input (%d bytes)", int(maxSize), len(seed))
	}

	var opts []mangle.Option
	opts = append(opts, mangle.WithMutationsPerRun(*fMutPerRun))
	opts = append(opts, mangle.WithOnlyPrintable(*fPrintable))
	if *fDict != "" {
		var d dictionary.Slice
		if *fDictXZ {
			d, err = dictionary.LoadXZ(*fDict)
		} else {
			d, err = dictionary.Load(*fDict)
		}
		if err != nil {
			fatalf("loading dictionary: %v", err)
		}
		opts = append(opts, mangle.WithDictionary(d))
		fmt.Fprintf(os.Stderr, "loaded %d dictionary entries\n", d.Len())
	}

	buf := make([]byte, len(seed), int(maxSize))
	copy(buf, seed)
	r := newSource(*fSeed)
	resizer := &growResizer{buf: &buf}
	ctx := mangle.NewContext(buf, int(maxSize), r, resizer, opts...)

	for i := 0; i < *fSessions; i++ {
		mangle.MangleContent(ctx)
	}

	report(seed, ctx.Bytes())

	out := os.Stdout
	if *fOutput != "" {
		f, err := os.Create(*fOutput)
		if err != nil {
			fatalf("creating -output: %v", err)
		}
		defer f.Close()
		out = f
	}
	if _, err := out.Write(ctx.Bytes()); err != nil {
		fatalf("writing output: %v", err)
	}
}

// loadSeed reads path, decompressing it first if compress names a codec.
func loadSeed(path, compress string) ([]byte, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(compress) {
	case "", "none":
		return raw, nil
	case "flate":
		r := kflate.NewReader(bytes.NewReader(raw))
		defer r.Close()
		return ioutil.ReadAll(r)
	case "xz":
		r, err := xz.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, err
		}
		return ioutil.ReadAll(r)
	default:
		return nil, fmt.Errorf("unknown -compress value %q", compress)
	}
}

// report prints a summary of how much the mutator changed the corpus,
// including a combined CRC-32 covering both the unchanged prefix and the
// rest of the mutated buffer — one digest computed incrementally from two
// pieces rather than over the whole buffer at once, to exercise the same
// incremental-checksum-combining path a streaming mutation pipeline would
// use when it can only see one chunk of output at a time.
func report(before, after []byte) {
	prefixLen := commonPrefixLen(before, after)
	crc1 := crc32.ChecksumIEEE(after[:prefixLen])
	crc2 := crc32.ChecksumIEEE(after[prefixLen:])
	combined := hashutil.CombineCRC32(crc32.IEEE, crc1, crc2, int64(len(after)-prefixLen))

	fmt.Fprintf(os.Stderr, "input size: %s -> output size: %s\n",
		strconv.FormatPrefix(float64(len(before)), strconv.Base1024, 0),
		strconv.FormatPrefix(float64(len(after)), strconv.Base1024, 0))
	fmt.Fprintf(os.Stderr, "unchanged prefix: %d bytes\n", prefixLen)
	fmt.Fprintf(os.Stderr, "combined crc32: %#08x (full-buffer crc32: %#08x)\n",
		combined, crc32.ChecksumIEEE(after))
}

func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func newSource(seed int64) mangle.RNG {
	if seed == 0 {
		var s [32]byte
		if _, err := io.ReadFull(cryptorand.Reader, s[:]); err != nil {
			fatalf("seeding RNG: %v", err)
		}
		return rng.NewSource(s)
	}
	return rng.NewDeterministic(seed)
}

// growResizer re-slices buf in place. buf is always allocated with
// capacity maxFileSz up front, so SetSize never needs to reallocate.
type growResizer struct {
	buf *[]byte
}

func (r *growResizer) SetSize(n int) { *r.buf = (*r.buf)[:n] }

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "mangle: "+format+"\n", args...)
	os.Exit(1)
}
