// Package emoji reports the UTS #51 emoji properties.
//
// Extended_Pictographic comes from the packed property database, since
// the segmentation engines consult it on the hot path (GB11, WB3c,
// LB30b). The remaining properties are range tables generated from
// emoji-data.txt.
//
// See https://www.unicode.org/reports/tr51/.
package emoji

import (
	"unicode"

	"github.com/Ichigo-Labs/unisegp/internal/ucd"
)

// ExtendedPictographic reports the Extended_Pictographic property of r.
func ExtendedPictographic(r rune) bool {
	return ucd.Value(r, ucd.ColExtendedPictographic) != ""
}

// Emoji reports the Emoji property of r.
func Emoji(r rune) bool {
	return unicode.Is(_Emoji, r)
}

// EmojiPresentation reports the Emoji_Presentation property of r:
// emoji shown in emoji style by default.
func EmojiPresentation(r rune) bool {
	return unicode.Is(_EmojiPresentation, r)
}

// EmojiModifierBase reports the Emoji_Modifier_Base property of r:
// emoji that can take a skin tone modifier.
func EmojiModifierBase(r rune) bool {
	return unicode.Is(_EmojiModifierBase, r)
}

// EmojiModifier reports the Emoji_Modifier property of r, the skin tone
// modifiers U+1F3FB..U+1F3FF.
func EmojiModifier(r rune) bool {
	return r >= 0x1F3FB && r <= 0x1F3FF
}

// EmojiComponent reports the Emoji_Component property of r: code points
// that appear in emoji sequences but are not emoji on their own.
func EmojiComponent(r rune) bool {
	return unicode.Is(_EmojiComponent, r)
}
