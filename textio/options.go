// SPDX-License-Identifier: MIT

// Package textio: functional configuration for text rendering.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Read-back symmetry requires the separator and terminator to be
//     whitespace; WithSeparator enforces a non-empty separator, everything
//     else is left to the caller.
package textio

import "strings"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSeparator is written between two consecutive values.
	DefaultSeparator = " "

	// DefaultTerminator is written after the last value of a row.
	DefaultTerminator = ""

	// DefaultVerb is the fmt verb used to render one value.
	DefaultVerb = "%v"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSeparatorEmpty = "textio: WithSeparator: separator must be non-empty"
	panicVerbInvalid    = "textio: WithVerb: verb must start with '%'"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	sep  string // DefaultSeparator
	term string // DefaultTerminator
	verb string // DefaultVerb
}

// Separator returns the configured separator.
func (o Options) Separator() string { return o.sep }

// Terminator returns the configured row terminator.
func (o Options) Terminator() string { return o.term }

// Verb returns the configured fmt verb.
func (o Options) Verb() string { return o.verb }

func defaultOptions() Options {
	return Options{
		sep:  DefaultSeparator,
		term: DefaultTerminator,
		verb: DefaultVerb,
	}
}

// WithSeparator sets the string written between values.
// Panics on an empty separator (values would run together).
func WithSeparator(sep string) Option {
	if sep == "" {
		panic(panicSeparatorEmpty)
	}

	return func(o *Options) { o.sep = sep }
}

// WithTerminator sets the string written after each row (may be empty).
func WithTerminator(term string) Option {
	return func(o *Options) { o.term = term }
}

// WithVerb sets the fmt verb used per value, e.g. "%g" or "%.3f".
// Panics when verb is not a fmt directive.
func WithVerb(verb string) Option {
	if !strings.HasPrefix(verb, "%") {
		panic(panicVerbInvalid)
	}

	return func(o *Options) { o.verb = verb }
}

// Gather resolves opts over the defaults, applying them left to right.
func Gather(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
