package segment

import "fmt"

// A Span addresses one segment of an input buffer as a half-open byte
// range [Start,End). Spans produced by a Segmenter partition the buffer:
// the End of each span equals the Start of its successor, the first span
// starts at 0 and the last one ends at the buffer's length.
type Span struct {
	Start int
	End   int
}

// Len returns the length of the span in bytes.
func (sp Span) Len() int {
	return sp.End - sp.Start
}

// IsEmpty reports whether the span covers no bytes.
func (sp Span) IsEmpty() bool {
	return sp.End <= sp.Start
}

func (sp Span) String() string {
	return fmt.Sprintf("[%d,%d)", sp.Start, sp.End)
}
