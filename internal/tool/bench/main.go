// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command bench measures mutation throughput: how many bytes per second
// MangleContent can chew through across a range of buffer and dictionary
// sizes, and how that scales with mutationsPerRun.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dsnet/golib/strconv"

	"github.com/dsnet/mangle/flate"
	"github.com/dsnet/mangle/internal/dictionary"
	"github.com/dsnet/mangle/internal/rng"
	"github.com/dsnet/mangle/mangle"
)

func main() {
	var (
		fSize       = flag.String("size", "4Ki", "size of the buffer to mutate, e.g. 4Ki, 1Mi")
		fMaxSize    = flag.String("max-size", "64Ki", "maximum size the mutator may grow the buffer to")
		fRuns       = flag.Int("runs", 1e5, "number of MangleContent sessions to run")
		fMutRun     = flag.Uint64("mutations-per-run", 6, "maximum stacked mutations per session")
		fDict       = flag.String("dict", "", "optional newline-delimited dictionary file")
		fSeed       = flag.Int64("seed", 1, "deterministic RNG seed")
		fPrintOnly  = flag.Bool("printable", false, "restrict output to printable ASCII")
		fDecodeFrac = flag.Float64("decode-fraction", 0.01, "fraction of runs to pipe through flate.Reader and classify")
	)
	flag.Parse()

	size, err := parseSize(*fSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bench: %v\n", err)
		os.Exit(1)
	}
	maxSize, err := parseSize(*fMaxSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bench: %v\n", err)
		os.Exit(1)
	}

	var opts []mangle.Option
	opts = append(opts, mangle.WithMutationsPerRun(*fMutRun))
	opts = append(opts, mangle.WithOnlyPrintable(*fPrintOnly))
	if *fDict != "" {
		d, err := dictionary.Load(*fDict)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bench: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, mangle.WithDictionary(d))
		fmt.Printf("DICTIONARY: %d entries from %s\n", d.Len(), *fDict)
	}

	buf := make([]byte, size, maxSize)
	r := rng.NewDeterministic(*fSeed)
	resizer := &growResizer{buf: &buf}
	ctx := mangle.NewContext(buf, maxSize, r, resizer, opts...)

	fmt.Printf("RUNS: %s\n", strconv.FormatPrefix(float64(*fRuns), strconv.Base1000, 0))
	fmt.Printf("INITIAL SIZE: %s, MAX SIZE: %s\n",
		strconv.FormatPrefix(float64(size), strconv.Base1024, 0),
		strconv.FormatPrefix(float64(maxSize), strconv.Base1024, 0))

	// decodeEvery paces how often a mutated buffer is piped through the
	// reference decoder: at decode-fraction=1 every run is decoded, at 0
	// none are, matching the fuzz harness's every-run testDecoder but
	// without paying its cost on every throughput sample.
	decodeEvery := 0
	if *fDecodeFrac > 0 {
		decodeEvery = int(1 / *fDecodeFrac)
		if decodeEvery < 1 {
			decodeEvery = 1
		}
	}
	var outcomes [4]int // indexed by flate.Outcome

	ts := time.Now()
	var totalBytes int64
	for i := 0; i < *fRuns; i++ {
		mangle.MangleContent(ctx)
		totalBytes += int64(ctx.Size())

		if decodeEvery > 0 && i%decodeEvery == 0 {
			_, outcome := flate.DecodeAndClassify(bytes.NewReader(ctx.Bytes()))
			outcomes[outcome]++
		}
	}
	elapsed := time.Since(ts)

	throughput := float64(totalBytes) / elapsed.Seconds()
	fmt.Printf("RUNTIME: %v\n", elapsed)
	fmt.Printf("THROUGHPUT: %sB/s\n", strconv.FormatPrefix(throughput, strconv.Base1024, 2))

	if decodeEvery > 0 {
		total := outcomes[flate.OutcomeAccepted] + outcomes[flate.OutcomeTruncated] +
			outcomes[flate.OutcomeCorrupt] + outcomes[flate.OutcomeOther]
		fmt.Printf("DECODED: %d of %d runs (every %dth)\n", total, *fRuns, decodeEvery)
		fmt.Printf("  %s: %d\n", flate.OutcomeAccepted, outcomes[flate.OutcomeAccepted])
		fmt.Printf("  %s: %d\n", flate.OutcomeTruncated, outcomes[flate.OutcomeTruncated])
		fmt.Printf("  %s: %d\n", flate.OutcomeCorrupt, outcomes[flate.OutcomeCorrupt])
		fmt.Printf("  %s: %d\n", flate.OutcomeOther, outcomes[flate.OutcomeOther])
	}
}

// growResizer re-slices buf in place. buf is always allocated with
// capacity maxSize up front, so SetSize never needs to reallocate.
type growResizer struct {
	buf *[]byte
}

func (r *growResizer) SetSize(n int) { *r.buf = (*r.buf)[:n] }

// parseSize accepts a human-readable byte count such as "4Ki" or "64Mi"
// and returns it as an int.
func parseSize(s string) (int, error) {
	n, err := strconv.ParsePrefix(s, strconv.AutoParse)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
