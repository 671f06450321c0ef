/*
Package sentence implements Unicode Annex #29 sentence breaking.

UAX#29 is the Unicode Annex for breaking text into graphemes, words
and sentences.
It defines code-point classes and sets of rules
for how to place break points and break inhibitors.
This package is about sentence breaking.

Typical Usage with a Segmenter

Clients instantiate a sentence breaker and use it as the breaking engine
for a segmenter.

  onSentences := sentence.NewBreaker()
  segmenter := segment.NewSegmenter(onSentences)
  segmenter.InitString("Good morning, Dave! This is HAL.")
  for segmenter.Next() {
      s := segmenter.Text()
      …
  }

Sentence segments tile the text: spacing after a terminating punctuation
mark belongs to the preceding sentence.

Attention

Before using sentence breakers, clients will have to initialize the
classes and rules.

  SetupSentenceClasses()

This initializes all the code-point range tables. Initialization is
not done beforehand, as it consumes quite some memory.

Conformance

This breaker implements the default (untailored) sentence boundary
specification and passes all tests for sentence breaking of UAX#29
(SentenceBreakTest.txt). Note that the default rules are deliberately
conservative: an abbreviation such as “Mr.” followed by an uppercase
letter ends a sentence.

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2026 The gonlp/segment authors

*/
package sentence

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to gonlp.segment .
func tracer() tracing.Trace {
	return tracing.Select("gonlp.segment")
}

// Version is the Unicode version this package conforms to.
const Version = "13.0.0"
