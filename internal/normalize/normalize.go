// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize repairs the encoding damage left by PDF text
// extraction: script-crossed Cyrillic homoglyphs, Arabic Presentation Forms
// glyphs, and right-to-left runs emitted in visual (mirrored) order.
//
// Substitution is literal and atomic per call: a returned document never
// contains a partially converted sequence. Re-running Normalize on already
// clean text is a no-op.
package normalize

import "strings"

// Stats records per-key replacement counts from one Normalize call.
// Diagnostic only; correctness does not depend on it.
type Stats struct {
	// Replacements maps each malformed key that occurred to its count.
	Replacements map[string]int

	// Total is the sum of all replacement counts.
	Total int
}

// Normalize replaces every occurrence of every malformed sequence in text
// with its canonical form. Maps are applied entry by entry; keys within a
// map and across the supplied maps are disjoint, so order does not matter.
func Normalize(text string, maps ...CharacterMap) (string, Stats) {
	stats := Stats{Replacements: make(map[string]int)}

	for _, m := range maps {
		for malformed, canonical := range m {
			n := strings.Count(text, malformed)
			if n == 0 {
				continue
			}
			text = strings.ReplaceAll(text, malformed, canonical)
			stats.Replacements[malformed] += n
			stats.Total += n
		}
	}

	return text, stats
}
