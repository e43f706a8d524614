// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package dictionary

import (
	"bufio"
	"io"
	"os"

	"github.com/klauspost/compress/flate"
	"github.com/ulikunitz/xz"
)

// Load reads a newline-delimited dictionary file, one entry per line,
// ignoring blank lines. It mirrors honggfuzz's plain-text dictionary
// format rather than AFL's quoted `"token"` syntax.
func Load(path string) (Slice, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return scan(f)
}

// LoadXZ reads an XZ-compressed dictionary file, decompressing it before
// splitting it into entries. Large curated dictionaries (protocol token
// lists, keyword corpora) are often shipped compressed; this avoids
// requiring callers to stage a decompressed copy on disk first.
func LoadXZ(path string) (Slice, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, err := xz.NewReader(f)
	if err != nil {
		return nil, Error("LoadXZ: " + err.Error())
	}
	return scan(r)
}

// LoadFlate reads a raw DEFLATE-compressed dictionary file.
func LoadFlate(path string) (Slice, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := flate.NewReader(f)
	defer r.Close()
	return scan(r)
}

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "dictionary: " + string(e) }

func scan(r io.Reader) (Slice, error) {
	var s Slice
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		entry := make([]byte, len(line))
		copy(entry, line)
		s = append(s, entry)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return s, nil
}
