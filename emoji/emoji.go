/*
Package emoji implements Unicode UTS #51 emoji classes.

The grapheme and word rule sets of UAX #29 refer to the Extended_Pictographic
property from UTS #51; this package carries the property data for it and for
the related component classes.

Attention

Before using emoji classes, clients will have to initialize them.

	SetupEmojiClasses()

This initializes all the code-point range tables. Initialization is
not done beforehand, as it consumes quite some memory. The breakers of this
module call it transparently.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.
*/
package emoji

import (
	"sync"
	"unicode"
)

//go:generate go run ./internal/generator

// ClassForRune gets the emoji class for a Unicode code-point.
// Will return Other if the code-point has no emoji class.
func ClassForRune(r rune) Class {
	for c := Class(0); c <= Extended_PictographicClass; c++ {
		rt := rangeFromClass[c]
		if rt != nil && unicode.Is(rt, r) {
			return c
		}
	}
	return Other
}

var setupOnce sync.Once

// SetupEmojiClasses is the top-level preparation function:
// Create code-point classes for emoji handling.
// (Concurrency-safe).
func SetupEmojiClasses() {
	setupOnce.Do(setupEmojiClasses)
}
