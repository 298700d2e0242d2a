package emoji_test

import (
	"testing"

	"github.com/Ichigo-Labs/unisegp/emoji"
)

func TestExtendedPictographic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r        rune
		expected bool
	}{
		{'a', false},
		{'#', false},
		{'©', true},
		{'®', true},
		{0x2764, true},
		{0x1f426, true},
		{0x1f600, true},
		{0x1f3fb, false},
		{0x1f1ef, false},
	}
	for _, test := range tests {
		if got := emoji.ExtendedPictographic(test.r); got != test.expected {
			t.Errorf("ExtendedPictographic(%U) = %v, expected %v", test.r, got, test.expected)
		}
	}
}

func TestEmojiProperties(t *testing.T) {
	t.Parallel()

	if !emoji.Emoji('#') {
		t.Error("# is Emoji (keycap base)")
	}
	if emoji.Emoji('a') {
		t.Error("a is not Emoji")
	}
	if !emoji.Emoji(0x1f600) {
		t.Error("grinning face is Emoji")
	}
	if !emoji.EmojiPresentation(0x1f600) {
		t.Error("grinning face defaults to emoji presentation")
	}
	if emoji.EmojiPresentation('#') {
		t.Error("# defaults to text presentation")
	}
	if !emoji.EmojiModifierBase(0x1f466) {
		t.Error("boy is a modifier base")
	}
	if emoji.EmojiModifierBase(0x1f600) {
		t.Error("grinning face is not a modifier base")
	}
	if !emoji.EmojiModifier(0x1f3fb) || emoji.EmojiModifier('a') {
		t.Error("EmojiModifier is the skin tone range")
	}
	if !emoji.EmojiComponent(0x1f3fb) || !emoji.EmojiComponent('#') {
		t.Error("skin tones and keycap bases are components")
	}
	if emoji.EmojiComponent('a') {
		t.Error("a is not a component")
	}
}
