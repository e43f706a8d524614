// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package mangle

// Context is the opaque aggregate passed by reference to every operator.
// It owns none of the storage it references: buffer, dictionary, rng, and
// resizer are all supplied by the caller and torn down externally. A
// Context is reused across many calls to MangleContent and is safe to use
// from exactly one goroutine at a time (see RNG).
type Context struct {
	buffer []byte // capacity maxFileSz, logically valid in [0, size)
	size   int    // 1 <= size <= maxFileSz

	maxFileSz int

	dictionary      Dictionary
	mutationsPerRun uint64
	onlyPrintable   bool

	rng     RNG
	resizer Resizer
}

// Option configures a Context at construction time.
type Option func(*Context)

// WithDictionary supplies the dictionary of byte strings used by the
// Dictionary and DictionaryInsert operators. The default is an empty
// dictionary, which makes both operators fall back to Bit.
func WithDictionary(d Dictionary) Option {
	return func(c *Context) { c.dictionary = d }
}

// WithMutationsPerRun bounds the number of operators stacked per session.
// A value of 0 makes MangleContent a no-op. The default is 6, honggfuzz's
// historical default.
func WithMutationsPerRun(n uint64) Option {
	return func(c *Context) { c.mutationsPerRun = n }
}

// WithOnlyPrintable restricts every byte the mutator writes to the
// printable ASCII range [0x20, 0x7E].
func WithOnlyPrintable(v bool) Option {
	return func(c *Context) { c.onlyPrintable = v }
}

type nilDictionary struct{}

func (nilDictionary) Len() int        { return 0 }
func (nilDictionary) At(i int) []byte { return nil }

// NewContext constructs a Context over buffer, whose capacity must be at
// least maxFileSz; buffer[:size] (size is len(buffer) at call time) holds
// the initial content. rng and resizer are required collaborators: rng is
// consulted by every operator, and resizer is invoked whenever an
// operator needs to grow or shrink the logical size.
//
// NewContext panics if len(buffer) is 0 or greater than maxFileSz, or if
// rng or resizer is nil — these are caller contract violations, not
// recoverable conditions.
func NewContext(buffer []byte, maxFileSz int, rng RNG, resizer Resizer, opts ...Option) *Context {
	if len(buffer) == 0 {
		panic(Error("NewContext: buffer must have length >= 1"))
	}
	if len(buffer) > maxFileSz {
		panic(Error("NewContext: buffer longer than maxFileSz"))
	}
	if rng == nil {
		panic(Error("NewContext: rng must not be nil"))
	}
	if resizer == nil {
		panic(Error("NewContext: resizer must not be nil"))
	}
	c := &Context{
		buffer:          buffer[:cap(buffer)],
		size:            len(buffer),
		maxFileSz:       maxFileSz,
		dictionary:      nilDictionary{},
		mutationsPerRun: 6,
		rng:             rng,
		resizer:         resizer,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.dictionary == nil {
		c.dictionary = nilDictionary{}
	}
	return c
}

// Bytes returns the logically valid region of the Context's buffer,
// buffer[:size]. The returned slice aliases the Context's storage and is
// invalidated by the next call to MangleContent.
func (c *Context) Bytes() []byte { return c.buffer[:c.size] }

// Size reports the current logical length.
func (c *Context) Size() int { return c.size }

// MaxSize reports the hard upper bound set at construction.
func (c *Context) MaxSize() int { return c.maxFileSz }

// dictCount reports the number of dictionary entries, treating a nil
// Dictionary as empty.
func (c *Context) dictCount() int {
	if c.dictionary == nil {
		return 0
	}
	return c.dictionary.Len()
}

// setSize asks the injected Resizer to adjust the logical size and
// records the result. newSize must already be clamped to [1, maxFileSz]
// by the caller.
func (c *Context) setSize(newSize int) {
	c.resizer.SetSize(newSize)
	c.size = newSize
}
