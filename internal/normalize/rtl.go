// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"regexp"
	"strings"
)

// rtlRun matches a maximal contiguous run of Arabic-block characters,
// covering the Persian letters پ چ ژ گ as well.
var rtlRun = regexp.MustCompile(`[\x{0600}-\x{06FF}]+`)

// ReverseRTLRuns reverses every maximal contiguous Arabic-script run in
// text character by character, returning the corrected text and the number
// of runs reversed.
//
// The extractor lays RTL glyphs out left to right visually, so each run
// arrives as a mirror image of its logical order. This runs exactly once
// over the whole document, before segmentation. It is distinct from
// ReverseWordOrder, which reorders whole tokens inside an
// already-segmented gloss span; the two must never be applied to the same
// unit.
func ReverseRTLRuns(text string) (string, int) {
	runs := 0
	text = rtlRun.ReplaceAllStringFunc(text, func(run string) string {
		runs++
		return reverseRunes(run)
	})
	return text, runs
}

// ReverseWordOrder reverses the token order of a multi-word RTL gloss span.
// Tokens are whitespace-separated. Reversal is self-inverse; a single-word
// span is returned unchanged.
func ReverseWordOrder(span string) string {
	words := strings.Fields(span)
	if len(words) <= 1 {
		return span
	}
	for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
		words[i], words[j] = words[j], words[i]
	}
	return strings.Join(words, " ")
}

// ContainsRTL reports whether s contains at least one Arabic-block character.
func ContainsRTL(s string) bool {
	for _, r := range s {
		if IsRTL(r) {
			return true
		}
	}
	return false
}

// IsRTL reports whether r falls in the Arabic block (U+0600-U+06FF).
func IsRTL(r rune) bool {
	return r >= 0x0600 && r <= 0x06FF
}

func reverseRunes(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
