package grapheme

import (
	"errors"
	"strings"
	"testing"

	"github.com/gonlp/segment"
	"github.com/gonlp/segment/internal/tracing"
)

func TestGraphemeString1(t *testing.T) {
	tracing.SetTestingLog(t)
	s, err := StringFromString("世界")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("expected length of grapheme string '世界' to be 2, is %d", s.Len())
	}
	if s.Nth(1) != "界" {
		t.Errorf("expected 2nd grapheme to be '界', is '%s'", s.Nth(1))
	}
	if len(s.Nth(1)) != 3 {
		t.Errorf("expected 2nd grapheme to be 3 bytes long, is %d", len(s.Nth(1)))
	}
}

func TestGraphemeStringEmpty(t *testing.T) {
	tracing.SetTestingLog(t)
	s, err := StringFromString("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("expected empty grapheme string to have length 0, is %d", s.Len())
	}
}

func TestGraphemeStringCombining(t *testing.T) {
	tracing.SetTestingLog(t)
	s, err := StringFromString("déjà")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 4 {
		t.Errorf("expected grapheme string to have length 4, is %d", s.Len())
	}
	if s.Nth(1) != "é" {
		t.Errorf("expected 2nd grapheme to be 'é', is '%+q'", s.Nth(1))
	}
}

func TestGraphemeStringMid(t *testing.T) {
	tracing.SetTestingLog(t)
	input := strings.Repeat("🇩🇪x", 50) // 450 bytes, forces the mid version
	s, err := StringFromString(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 100 {
		t.Errorf("expected grapheme string to have length 100, is %d", s.Len())
	}
	if s.Nth(0) != "🇩🇪" {
		t.Errorf("expected 1st grapheme to be a flag, is '%+q'", s.Nth(0))
	}
	if s.Nth(99) != "x" {
		t.Errorf("expected last grapheme to be 'x', is '%+q'", s.Nth(99))
	}
}

func TestGraphemeStringOutOfBounds(t *testing.T) {
	tracing.SetTestingLog(t)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected out-of-bounds access to grapheme string to panic")
		}
	}()
	s, err := StringFromString("ab")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Nth(2)
}

func TestGraphemeStringInvalidInput(t *testing.T) {
	tracing.SetTestingLog(t)
	inputs := [][]byte{
		{0x80, 'o', 'k'},           // invalid prefix
		{'a', 'b', 0xff, 'c', 'd'}, // invalid byte mid-string
		{'o', 'k', 0xc3},           // truncated rune at the end
	}
	for _, input := range inputs {
		s, err := StringFromBytes(input)
		if !errors.Is(err, segment.ErrInvalidUTF8) {
			t.Errorf("expected ErrInvalidUTF8 for %+q, have %v", input, err)
		}
		if s != nil {
			t.Errorf("expected no grapheme string for %+q", input)
		}
	}
}
