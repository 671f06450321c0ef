package emoji

import (
	"testing"
	"unicode"

	"github.com/gonlp/segment/internal/tracing"
)

func TestEmojiClasses(t *testing.T) {
	tracing.SetTestingLog(t)
	SetupEmojiClasses()
	if c := ClassForRune(0x1f600); c != Extended_PictographicClass { // 😀
		t.Errorf("GRINNING FACE should be Extended_Pictographic, is %s", c)
	}
	if c := ClassForRune(0x1f3fb); c != Emoji_ModifierClass {
		t.Errorf("skin tone modifier should be Emoji_Modifier, is %s", c)
	}
	if c := ClassForRune('#'); c != Emoji_ComponentClass {
		t.Errorf("'#' should be Emoji_Component, is %s", c)
	}
	if c := ClassForRune('a'); c != Other {
		t.Errorf("'a' should be Other, is %s", c)
	}
	if !unicode.Is(Extended_Pictographic, '☕') {
		t.Error("HOT BEVERAGE should be in the Extended_Pictographic table")
	}
	if c := Extended_PictographicClass; c.String() != "Extended_Pictographic" {
		t.Errorf("unexpected class name %s", c)
	}
	if c := Emoji_ModifierClass; c.String() != "Emoji_Modifier" {
		t.Errorf("unexpected class name %s", c)
	}
	if c := Emoji_ComponentClass; c.String() != "Emoji_Component" {
		t.Errorf("unexpected class name %s", c)
	}
}
