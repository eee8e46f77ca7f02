// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

// CleanResult summarizes one full cleaning pass for diagnostics.
type CleanResult struct {
	// Cyrillic counts homoglyph substitutions.
	Cyrillic Stats

	// Arabic counts presentation-form substitutions.
	Arabic Stats

	// RTLRuns is the number of Arabic-script runs reversed.
	RTLRuns int
}

// Clean runs the full document-cleaning pass: Cyrillic homoglyph
// substitution, Arabic presentation-form substitution, then RTL run
// reversal. The run reversal must follow the substitutions because
// presentation-form glyphs arrive in visual order and only their base-form
// replacements can be meaningfully reordered.
func Clean(text string, cyrillic, arabic CharacterMap) (string, CleanResult) {
	var res CleanResult
	text, res.Cyrillic = Normalize(text, cyrillic)
	text, res.Arabic = Normalize(text, arabic)
	text, res.RTLRuns = ReverseRTLRuns(text)
	return text, res
}
