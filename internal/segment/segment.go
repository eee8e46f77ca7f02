// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package segment partitions cleaned dictionary text into raw entry blocks.
//
// A single line-oriented pass tracks whether an entry is accumulating.
// Candidate headword lines are validated with a bounded lookahead before
// they are accepted as entry boundaries, because body text legitimately
// contains short uppercase runs (acronyms, emphasis) that match the
// headword pattern alone. Every true entry head is immediately followed by
// either a Perso-Arabic attestation or an etymology abbreviation;
// incidental uppercase text is not.
package segment

import (
	"regexp"
	"strings"

	"github.com/tajiklex/farhang/internal/normalize"
)

// DefaultLookaheadWindow is the number of characters inspected after a
// headword match when validating an entry boundary.
const DefaultLookaheadWindow = 100

// headwordPattern matches a candidate entry head: two or more uppercase
// Tajik Cyrillic letters, optionally extended by a roman-numeral homonym
// marker or a //-delimited cross-reference, followed by whitespace.
var headwordPattern = regexp.MustCompile(`^\s*([А-ЯЁӢҚҒҲЎҶ]{2,}(?:\s+[IVX]+|//[А-ЯЁӢҚҒҲЎҶ]+)*)\s+`)

// markerShape matches the etymology-marker shape at the start of text: a
// lowercase Tajik Cyrillic token of up to seven characters ending in a
// period, then whitespace.
var markerShape = regexp.MustCompile(`^[а-яёӣқғҳўҷ][а-яёӣқғҳўҷ.\-]{0,6}\.\s`)

// pageMarker matches the page-boundary lines inserted by the upstream
// extractor. They are stripped before segmentation; page numbers are not
// retained.
var pageMarker = regexp.MustCompile(`^--- PAGE \d+ ---$`)

// Block is a raw entry: the header line plus its accumulated body lines.
// Blocks are transient; the extractor consumes them immediately.
type Block struct {
	// Header is the full first line of the entry, trimmed.
	Header string

	// Body holds the continuation lines in source order, trimmed.
	Body []string
}

// Summary holds counts from one segmentation pass.
type Summary struct {
	// Entries is the number of accepted entry boundaries.
	Entries int

	// FalsePositives counts headword-shaped lines rejected by the
	// validation lookahead and kept as body text.
	FalsePositives int

	// Discarded counts lines seen before the first accepted entry.
	Discarded int

	// PageMarkers counts stripped page-boundary lines.
	PageMarkers int
}

// MatchHeadword tests line against the headword pattern. On a match it
// returns the captured headword and the offset of the first character
// after the whole match.
func MatchHeadword(line string) (headword string, end int, ok bool) {
	loc := headwordPattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return "", 0, false
	}
	return line[loc[2]:loc[3]], loc[1], true
}

// Split partitions lines into raw entry blocks. A lookaheadWindow of zero
// or less uses DefaultLookaheadWindow. Zero accepted headers yield an
// empty block sequence, not an error; every line is either a header, body
// text of some block, or pre-entry noise.
func Split(lines []string, lookaheadWindow int) ([]Block, Summary) {
	if lookaheadWindow <= 0 {
		lookaheadWindow = DefaultLookaheadWindow
	}

	var (
		blocks  []Block
		summary Summary
		current *Block
	)

	flush := func() {
		if current != nil {
			blocks = append(blocks, *current)
			summary.Entries++
			current = nil
		}
	}

	appendBody := func(line string) {
		if current != nil {
			current.Body = append(current.Body, strings.TrimSpace(line))
		} else {
			summary.Discarded++
		}
	}

	for _, line := range lines {
		if pageMarker.MatchString(strings.TrimSpace(line)) {
			summary.PageMarkers++
			continue
		}

		_, end, ok := MatchHeadword(line)
		if !ok {
			appendBody(line)
			continue
		}

		if !validBoundary(line[end:], lookaheadWindow) {
			summary.FalsePositives++
			appendBody(line)
			continue
		}

		flush()
		current = &Block{Header: strings.TrimSpace(line)}
	}

	flush()
	return blocks, summary
}

// validBoundary inspects a window of the text following a headword match.
// The match is a true entry boundary only if the window contains an
// Arabic-block character or starts with an etymology-marker shape.
func validBoundary(rest string, window int) bool {
	runes := []rune(rest)
	if len(runes) > window {
		runes = runes[:window]
	}
	check := string(runes)

	return normalize.ContainsRTL(check) || markerShape.MatchString(check)
}
