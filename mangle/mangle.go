// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package mangle implements a fuzzing input mutator.
//
// Given a byte buffer representing a candidate test input, MangleContent
// applies a randomized, bounded sequence of semantic-preserving-or-breaking
// transformations ("mangles") to produce a new candidate, suitable for
// feedback-driven fuzzing. It is a direct port of the mutation routines
// found in honggfuzz's mangle.c, restated in terms of an injected RNG,
// Dictionary, and Resizer rather than global state and a C run_t.
//
// The package does not decide when to mutate, does not judge mutation
// quality, and does not guarantee that its output differs from its input.
package mangle

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "mangle: " + string(e) }
