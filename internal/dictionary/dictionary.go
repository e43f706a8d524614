// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package dictionary provides concrete mangle.Dictionary implementations
// and loaders for building one from an external corpus of byte strings.
package dictionary

// Slice is a mangle.Dictionary backed by a plain slice, giving O(1)
// indexed lookup in place of the doubly-linked list the original mutator
// walked to reach a chosen entry.
type Slice [][]byte

// Len reports the number of entries.
func (s Slice) Len() int { return len(s) }

// At returns the entry at position i. The caller must not mutate it.
func (s Slice) At(i int) []byte { return s[i] }
