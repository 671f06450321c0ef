/*
Package segment is about breaking up Unicode text into its elements.

Description

From the Unicode Consortium:

A string of Unicode‐encoded text often needs to be broken up into
text elements programmatically. Common examples of text elements
include what users think of as characters, words, lines (more
precisely, where line breaks are allowed), and sentences. The
precise determination of text elements may vary according to orthographic
conventions for a given script or language. The goal
of matching user perceptions cannot always be met exactly because
the text alone does not always contain enough information to
unambiguously decide boundaries.

Unicode Standard Annex #29 defines the default boundary rules for
grapheme clusters, words and sentences. The sub-packages of this module
implement those rule sets; this base package provides the driver that
turns any of them into a sequence of segments.

Typical Usage

Segmenter provides an interface similar to bufio.Scanner for walking the
segments of an in-memory text buffer. Successive calls to a segmenter's
Next method step through the segments; clients read the current segment
with Span, Bytes or Text.

	seg := segment.NewSegmenter(grapheme.NewBreaker())
	seg.InitString("Hello World🇩🇪!")
	for seg.Next() {
	    // do something with seg.Text() or seg.Span()
	}

The breaking logic itself is supplied by a Breaker. Breakers walk the
code-points of the input strictly forward and decide for every position
between two adjacent code-points whether a boundary exists there. Each
rule set keeps its transient scan state as a small value, created afresh
for every segmentation run; the immutable code-point class tables are
shared process-wide. Segmenters for different buffers may therefore run
concurrently without locking.

How it works

The segmenter decodes the input buffer code-point by code-point and hands
each one to its breaker, together with the not yet decoded remainder of
the buffer for rule sets that need bounded lookahead. No code-point is
decoded more than once and no boundary decision is revisited, so a run is
a single O(n) pass and abandoning a segmenter mid-scan is always valid.

This is a deliberate departure from implementing UAX rules as sets of
concurrently active recognizer automata: the Annex's rule tables, with
their ordered more-specific-overrides-general structure, map directly
onto one forward pass with a couple of counters and flags. The per-rule-set
step functions live in the sub-packages and are plain value
transformations, which keeps them testable without any driver at all.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.
*/
package segment

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
