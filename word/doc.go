/*
Package word implements Unicode Annex #29 word breaking.

UAX#29 is the Unicode Annex for breaking text into graphemes, words
and sentences.
It defines code-point classes and sets of rules
for how to place break points and break inhibitors.
This package is about word breaking.

Typical Usage with a Segmenter

Clients instantiate a word breaker and use it as the breaking engine for a
segmenter.

  onWords := word.NewBreaker()
  segmenter := segment.NewSegmenter(onWords)
  segmenter.InitString("Good morning, Dave!")
  for segmenter.Next() {
      w := segmenter.Text()
      …
  }

Word breaking in the sense of UAX#29 splits text into words and into the
runs of punctuation and spacing between them; the segments tile the text.
Clients who are only interested in the words proper can use the convenience
function Words, which filters the in-between segments out.

Attention

Before using word breakers, clients will have to initialize the classes
and rules.

  SetupWordClasses()

This initializes all the code-point range tables. Initialization is
not done beforehand, as it consumes quite some memory.
As word breaking involves knowledge of emoji classes, a call to
SetupWordClasses() will in turn call emoji.SetupEmojiClasses().

Conformance

This breaker passes all tests for word breaking of UAX#29
(WordBreakTest.txt).

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2026 The gonlp/segment authors

*/
package word

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to gonlp.segment .
func tracer() tracing.Trace {
	return tracing.Select("gonlp.segment")
}

// Version is the Unicode version this package conforms to.
const Version = "13.0.0"
